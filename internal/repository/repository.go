// Package repository handles all interactions with the document store.
//
// Each resource has a narrow interface (find, findOne, insertOne, updateOne,
// deleteOne) and a MongoDB implementation, so services and tests never touch
// the driver directly.
package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/deppfellow/blogs-server/internal/model"
)

// BlogRepository stores blog posts.
type BlogRepository interface {
	FindAll(ctx context.Context) ([]model.Blog, error)
	// FindByID returns nil, nil when no blog has that id.
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Blog, error)
	Insert(ctx context.Context, blog *model.Blog) (*model.InsertAck, error)
	// Upsert merges fields into the blog with that id, creating it if missing.
	Upsert(ctx context.Context, id primitive.ObjectID, req *model.UpdateBlogRequest) (*model.UpdateAck, error)
}

// CommentRepository stores append-only comments.
type CommentRepository interface {
	// FindByBlog returns the blog's comments, newest first.
	FindByBlog(ctx context.Context, blogID primitive.ObjectID) ([]model.Comment, error)
	Insert(ctx context.Context, comment *model.Comment) (*model.InsertAck, error)
}

// WishlistRepository stores per-user wishlist items.
type WishlistRepository interface {
	// FindOne returns nil, nil when the pair is not in the wishlist.
	FindOne(ctx context.Context, blogID, userEmail string) (*model.WishlistItem, error)
	FindByEmail(ctx context.Context, userEmail string) ([]model.WishlistItem, error)
	Insert(ctx context.Context, item *model.WishlistItem) (*model.InsertAck, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) (*model.DeleteAck, error)
}
