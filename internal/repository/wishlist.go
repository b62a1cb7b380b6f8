package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/deppfellow/blogs-server/internal/model"
)

type mongoWishlistRepository struct {
	coll *mongo.Collection
}

// NewWishlistRepository returns a WishlistRepository backed by coll.
func NewWishlistRepository(coll *mongo.Collection) WishlistRepository {
	return &mongoWishlistRepository{coll: coll}
}

func (r *mongoWishlistRepository) FindOne(ctx context.Context, blogID, userEmail string) (*model.WishlistItem, error) {
	var item model.WishlistItem
	err := r.coll.FindOne(ctx, bson.D{
		{Key: "blogId", Value: blogID},
		{Key: "userEmail", Value: userEmail},
	}).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find wishlist item: %w", err)
	}
	return &item, nil
}

func (r *mongoWishlistRepository) FindByEmail(ctx context.Context, userEmail string) ([]model.WishlistItem, error) {
	cursor, err := r.coll.Find(ctx, bson.D{{Key: "userEmail", Value: userEmail}})
	if err != nil {
		return nil, fmt.Errorf("find wishlist: %w", err)
	}

	items := []model.WishlistItem{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("decode wishlist: %w", err)
	}
	return items, nil
}

func (r *mongoWishlistRepository) Insert(ctx context.Context, item *model.WishlistItem) (*model.InsertAck, error) {
	res, err := r.coll.InsertOne(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("insert wishlist item: %w", err)
	}
	return insertAck(res), nil
}

func (r *mongoWishlistRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) (*model.DeleteAck, error) {
	res, err := r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return nil, fmt.Errorf("delete wishlist item %s: %w", id.Hex(), err)
	}
	// deleteOne with a write concern is acknowledged whenever it returns without error.
	return &model.DeleteAck{Acknowledged: true, DeletedCount: res.DeletedCount}, nil
}
