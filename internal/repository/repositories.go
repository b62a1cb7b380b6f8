package repository

import (
	"github.com/deppfellow/blogs-server/internal/database"
	"github.com/deppfellow/blogs-server/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Blog     BlogRepository
	Comment  CommentRepository
	Wishlist WishlistRepository
}

// NewRepositories builds the MongoDB repositories on the server's database.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Blog:     NewBlogRepository(s.DB.Collection(database.BlogsCollection)),
		Comment:  NewCommentRepository(s.DB.Collection(database.CommentsCollection)),
		Wishlist: NewWishlistRepository(s.DB.Collection(database.WishlistCollection)),
	}
}
