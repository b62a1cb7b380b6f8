package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/blogs-server/internal/model"
	"github.com/deppfellow/blogs-server/internal/server"
	"github.com/deppfellow/blogs-server/internal/service"
)

// BlogHandler serves the blog routes.
type BlogHandler struct {
	Handler
	blogs *service.BlogService
}

func NewBlogHandler(s *server.Server, blogs *service.BlogService) *BlogHandler {
	return &BlogHandler{
		Handler: NewHandler(s),
		blogs:   blogs,
	}
}

// ListBlogs handles GET /allBlogs.
func (h *BlogHandler) ListBlogs(c echo.Context, _ *model.ListBlogsRequest) ([]model.Blog, error) {
	return h.blogs.List(c.Request().Context())
}

// GetBlog handles GET /allBlogs/:id. An unknown id yields null, not 404.
func (h *BlogHandler) GetBlog(c echo.Context, req *model.BlogIDRequest) (*model.Blog, error) {
	return h.blogs.Get(c.Request().Context(), req)
}

// CreateBlog handles POST /blog.
func (h *BlogHandler) CreateBlog(c echo.Context, req *model.CreateBlogRequest) (*model.InsertAck, error) {
	return h.blogs.Create(c.Request().Context(), req)
}

// UpdateBlog handles PUT /blogs/:id.
func (h *BlogHandler) UpdateBlog(c echo.Context, req *model.UpdateBlogRequest) (*model.UpdateAck, error) {
	return h.blogs.Update(c.Request().Context(), req)
}
