package service

import (
	"context"

	"github.com/deppfellow/blogs-server/internal/errs"
	"github.com/deppfellow/blogs-server/internal/model"
	"github.com/deppfellow/blogs-server/internal/repository"
)

// BlogService reads, creates and upserts blog posts.
type BlogService struct {
	repo repository.BlogRepository
}

func NewBlogService(repo repository.BlogRepository) *BlogService {
	return &BlogService{repo: repo}
}

func (s *BlogService) List(ctx context.Context) ([]model.Blog, error) {
	return s.repo.FindAll(ctx)
}

// Get returns nil without error when no blog has the id.
func (s *BlogService) Get(ctx context.Context, req *model.BlogIDRequest) (*model.Blog, error) {
	id, err := parseObjectID("id", req.ID)
	if err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, id)
}

func (s *BlogService) Create(ctx context.Context, req *model.CreateBlogRequest) (*model.InsertAck, error) {
	return s.repo.Insert(ctx, req.Blog())
}

// Update merges the present fields into the blog, creating it at that id if it
// does not exist. A request without any field is rejected.
func (s *BlogService) Update(ctx context.Context, req *model.UpdateBlogRequest) (*model.UpdateAck, error) {
	id, err := parseObjectID("id", req.ID)
	if err != nil {
		return nil, err
	}

	if len(req.SetDocument()) == 0 {
		return nil, errs.NewMissingFieldsError(errs.FieldError{
			Field: "body",
			Error: "at least one blog field is required",
		})
	}

	return s.repo.Upsert(ctx, id, req)
}
