package handler

import (
	"github.com/deppfellow/blogs-server/internal/server"
	"github.com/deppfellow/blogs-server/internal/service"
)

// Handlers groups all HTTP handlers so the router is wired from one object.
type Handlers struct {
	Blog     *BlogHandler
	Comment  *CommentHandler
	Wishlist *WishlistHandler
	Health   *HealthHandler
	OpenAPI  *OpenAPIHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Blog:     NewBlogHandler(s, services.Blog),
		Comment:  NewCommentHandler(s, services.Comment),
		Wishlist: NewWishlistHandler(s, services.Wishlist),
		Health:   NewHealthHandler(s),
		OpenAPI:  NewOpenAPIHandler(s),
	}
}
