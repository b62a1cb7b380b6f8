package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/deppfellow/blogs-server/internal/errs"
	"github.com/deppfellow/blogs-server/internal/model"
	"github.com/deppfellow/blogs-server/internal/repository"
)

// WishlistService manages per-user wishlists keyed by email.
type WishlistService struct {
	repo repository.WishlistRepository
}

func NewWishlistService(repo repository.WishlistRepository) *WishlistService {
	return &WishlistService{repo: repo}
}

// Add stores the item unless the user already has that blog in their wishlist.
//
// The check and the insert are separate round trips, so two concurrent adds of
// the same pair can both succeed.
func (s *WishlistService) Add(ctx context.Context, req *model.AddWishlistItemRequest) (*model.WishlistItem, error) {
	existing, err := s.repo.FindOne(ctx, req.BlogID, req.UserEmail)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		zerolog.Ctx(ctx).Debug().
			Str("blog_id", req.BlogID).
			Str("existing_id", existing.ID.Hex()).
			Msg("wishlist item already exists")
		return nil, errs.NewDuplicateWishlistItemError()
	}

	item := req.Item()
	ack, err := s.repo.Insert(ctx, item)
	if err != nil {
		return nil, err
	}
	item.ID = ack.InsertedID

	return item, nil
}

// ListByEmail returns the items whose userEmail matches exactly.
func (s *WishlistService) ListByEmail(ctx context.Context, req *model.GetWishlistRequest) ([]model.WishlistItem, error) {
	return s.repo.FindByEmail(ctx, req.Email)
}

// Remove deletes an item by id. Ownership is not checked.
func (s *WishlistService) Remove(ctx context.Context, req *model.RemoveWishlistItemRequest) (*model.DeleteAck, error) {
	id, err := parseObjectID("id", req.ID)
	if err != nil {
		return nil, err
	}
	return s.repo.DeleteByID(ctx, id)
}
