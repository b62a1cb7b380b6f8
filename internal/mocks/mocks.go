// Package mocks provides in-memory repositories and fakes for tests.
package mocks

import (
	"context"
	"errors"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/deppfellow/blogs-server/internal/access"
	"github.com/deppfellow/blogs-server/internal/model"
)

// BlogRepository is an in-memory repository.BlogRepository.
// Err, when set, is returned by every call.
type BlogRepository struct {
	mu    sync.Mutex
	blogs []model.Blog
	Err   error
}

func NewBlogRepository(blogs ...model.Blog) *BlogRepository {
	return &BlogRepository{blogs: blogs}
}

func (r *BlogRepository) FindAll(context.Context) ([]model.Blog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	return append([]model.Blog{}, r.blogs...), nil
}

func (r *BlogRepository) FindByID(_ context.Context, id primitive.ObjectID) (*model.Blog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	for i := range r.blogs {
		if r.blogs[i].ID == id {
			blog := r.blogs[i]
			return &blog, nil
		}
	}
	return nil, nil
}

func (r *BlogRepository) Insert(_ context.Context, blog *model.Blog) (*model.InsertAck, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	stored := *blog
	stored.ID = primitive.NewObjectID()
	r.blogs = append(r.blogs, stored)
	return &model.InsertAck{Acknowledged: true, InsertedID: stored.ID}, nil
}

// Upsert applies the request field by field, like a $set.
func (r *BlogRepository) Upsert(_ context.Context, id primitive.ObjectID, req *model.UpdateBlogRequest) (*model.UpdateAck, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}

	for i := range r.blogs {
		if r.blogs[i].ID == id {
			before := r.blogs[i]
			applyUpdate(&r.blogs[i], req)
			modified := int64(0)
			if !blogsEqual(before, r.blogs[i]) {
				modified = 1
			}
			return &model.UpdateAck{Acknowledged: true, MatchedCount: 1, ModifiedCount: modified}, nil
		}
	}

	blog := model.Blog{ID: id}
	applyUpdate(&blog, req)
	r.blogs = append(r.blogs, blog)
	return &model.UpdateAck{Acknowledged: true, UpsertedCount: 1, UpsertedID: &id}, nil
}

func applyUpdate(b *model.Blog, req *model.UpdateBlogRequest) {
	if req.Title != nil {
		b.Title = *req.Title
	}
	if req.Image != nil {
		b.Image = *req.Image
	}
	if req.Category != nil {
		b.Category = *req.Category
	}
	if req.ShortDescription != nil {
		b.ShortDescription = *req.ShortDescription
	}
	if req.Body != nil {
		b.Body = *req.Body
	}
	if req.Author != nil {
		author := *req.Author
		b.Author = &author
	}
	if req.Tags != nil {
		b.Tags = append([]string{}, (*req.Tags)...)
	}
}

func blogsEqual(a, b model.Blog) bool {
	if a.Title != b.Title || a.Image != b.Image || a.Category != b.Category ||
		a.ShortDescription != b.ShortDescription || a.Body != b.Body || len(a.Tags) != len(b.Tags) {
		return false
	}
	for i := range a.Tags {
		if a.Tags[i] != b.Tags[i] {
			return false
		}
	}
	if (a.Author == nil) != (b.Author == nil) {
		return false
	}
	return a.Author == nil || *a.Author == *b.Author
}

// CommentRepository is an in-memory repository.CommentRepository.
type CommentRepository struct {
	mu       sync.Mutex
	comments []model.Comment
	Err      error
}

func NewCommentRepository(comments ...model.Comment) *CommentRepository {
	return &CommentRepository{comments: comments}
}

func (r *CommentRepository) FindByBlog(_ context.Context, blogID primitive.ObjectID) ([]model.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	out := []model.Comment{}
	for _, c := range r.comments {
		if c.BlogID == blogID {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *CommentRepository) Insert(_ context.Context, comment *model.Comment) (*model.InsertAck, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	stored := *comment
	stored.ID = primitive.NewObjectID()
	r.comments = append(r.comments, stored)
	return &model.InsertAck{Acknowledged: true, InsertedID: stored.ID}, nil
}

// All returns a copy of every stored comment in insertion order.
func (r *CommentRepository) All() []model.Comment {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]model.Comment{}, r.comments...)
}

// WishlistRepository is an in-memory repository.WishlistRepository.
type WishlistRepository struct {
	mu    sync.Mutex
	items []model.WishlistItem
	Err   error
}

func NewWishlistRepository(items ...model.WishlistItem) *WishlistRepository {
	return &WishlistRepository{items: items}
}

func (r *WishlistRepository) FindOne(_ context.Context, blogID, userEmail string) (*model.WishlistItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	for _, item := range r.items {
		if item.BlogID == blogID && item.UserEmail == userEmail {
			found := item
			return &found, nil
		}
	}
	return nil, nil
}

func (r *WishlistRepository) FindByEmail(_ context.Context, userEmail string) ([]model.WishlistItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	out := []model.WishlistItem{}
	for _, item := range r.items {
		if item.UserEmail == userEmail {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *WishlistRepository) Insert(_ context.Context, item *model.WishlistItem) (*model.InsertAck, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	stored := *item
	stored.ID = primitive.NewObjectID()
	r.items = append(r.items, stored)
	return &model.InsertAck{Acknowledged: true, InsertedID: stored.ID}, nil
}

func (r *WishlistRepository) DeleteByID(_ context.Context, id primitive.ObjectID) (*model.DeleteAck, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	for i, item := range r.items {
		if item.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return &model.DeleteAck{Acknowledged: true, DeletedCount: 1}, nil
		}
	}
	return &model.DeleteAck{Acknowledged: true, DeletedCount: 0}, nil
}

// Len reports how many items are stored.
func (r *WishlistRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items)
}

// Verifier accepts exactly one token.
type Verifier struct {
	Token    string
	Identity access.Identity
	Calls    int
	mu       sync.Mutex
}

func (v *Verifier) Verify(_ context.Context, token string) (*access.Identity, error) {
	v.mu.Lock()
	v.Calls++
	v.mu.Unlock()
	if token != v.Token {
		return nil, access.ErrUnauthorized
	}
	id := v.Identity
	return &id, nil
}

// Notifier records comment notifications.
type Notifier struct {
	mu       sync.Mutex
	Comments []model.Comment
	Err      error
}

func (n *Notifier) NotifyComment(_ context.Context, comment *model.Comment) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.Comments = append(n.Comments, *comment)
	return n.Err
}

// ErrStoreDown can be assigned to a repository's Err to simulate an outage.
var ErrStoreDown = errors.New("store down")
