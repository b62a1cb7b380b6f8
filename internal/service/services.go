package service

import (
	"github.com/deppfellow/blogs-server/internal/access"
	"github.com/deppfellow/blogs-server/internal/repository"
	"github.com/deppfellow/blogs-server/internal/server"
)

// Services groups the business logic used by handlers and middleware.
type Services struct {
	// Auth is nil when the access policy protects no route.
	Auth     access.Verifier
	Blog     *BlogService
	Comment  *CommentService
	Wishlist *WishlistService
}

// NewServices wires every service to its repositories.
//
// The Clerk verifier is only built when some route needs it, so the open
// profile can run without a secret key.
func NewServices(s *server.Server, repos *repository.Repositories, policy access.Policy) *Services {
	services := &Services{
		Blog:     NewBlogService(repos.Blog),
		Comment:  NewCommentService(repos.Comment, nil),
		Wishlist: NewWishlistService(repos.Wishlist),
	}

	if s.Job != nil {
		services.Comment = NewCommentService(repos.Comment, s.Job)
	}

	if policy.ProtectsAny() {
		services.Auth = NewAuthService(s)
	}

	return services
}
