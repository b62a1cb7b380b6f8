package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/deppfellow/blogs-server/internal/model"
	"github.com/deppfellow/blogs-server/internal/repository"
)

// CommentNotifier is told about every stored comment.
type CommentNotifier interface {
	NotifyComment(ctx context.Context, comment *model.Comment) error
}

// CommentService lists and appends comments.
type CommentService struct {
	repo     repository.CommentRepository
	notifier CommentNotifier
	now      func() time.Time
}

// NewCommentService builds a CommentService. notifier may be nil.
func NewCommentService(repo repository.CommentRepository, notifier CommentNotifier) *CommentService {
	return &CommentService{
		repo:     repo,
		notifier: notifier,
		now:      time.Now,
	}
}

// ListByBlog returns the blog's comments, newest first.
func (s *CommentService) ListByBlog(ctx context.Context, req *model.ListCommentsRequest) ([]model.Comment, error) {
	blogID, err := parseObjectID("blogId", req.BlogID)
	if err != nil {
		return nil, err
	}
	return s.repo.FindByBlog(ctx, blogID)
}

// Create stamps the comment with the server time and stores it.
//
// A failed notification is logged; the comment is already stored.
func (s *CommentService) Create(ctx context.Context, req *model.CreateCommentRequest) (*model.InsertAck, error) {
	blogID, err := parseObjectID("blogId", req.BlogID)
	if err != nil {
		return nil, err
	}

	comment := &model.Comment{
		BlogID:    blogID,
		Username:  req.Username,
		UserPhoto: req.UserPhoto,
		Email:     req.Email,
		Comment:   req.Comment,
		CreatedAt: s.now().UTC(),
	}

	ack, err := s.repo.Insert(ctx, comment)
	if err != nil {
		return nil, err
	}
	comment.ID = ack.InsertedID

	if s.notifier != nil {
		if err := s.notifier.NotifyComment(ctx, comment); err != nil {
			zerolog.Ctx(ctx).Error().
				Err(err).
				Str("comment_id", comment.ID.Hex()).
				Msg("failed to enqueue comment notification")
		}
	}

	return ack, nil
}
