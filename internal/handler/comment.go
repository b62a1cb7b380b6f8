package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/blogs-server/internal/model"
	"github.com/deppfellow/blogs-server/internal/server"
	"github.com/deppfellow/blogs-server/internal/service"
)

// CommentHandler serves the comment routes. Both are public.
type CommentHandler struct {
	Handler
	comments *service.CommentService
}

func NewCommentHandler(s *server.Server, comments *service.CommentService) *CommentHandler {
	return &CommentHandler{
		Handler:  NewHandler(s),
		comments: comments,
	}
}

// ListComments handles GET /comments/:blogId.
func (h *CommentHandler) ListComments(c echo.Context, req *model.ListCommentsRequest) ([]model.Comment, error) {
	return h.comments.ListByBlog(c.Request().Context(), req)
}

// CreateComment handles POST /comments.
func (h *CommentHandler) CreateComment(c echo.Context, req *model.CreateCommentRequest) (*model.InsertAck, error) {
	return h.comments.Create(c.Request().Context(), req)
}
