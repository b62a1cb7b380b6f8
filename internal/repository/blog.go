package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/deppfellow/blogs-server/internal/model"
)

type mongoBlogRepository struct {
	coll *mongo.Collection
}

// NewBlogRepository returns a BlogRepository backed by coll.
func NewBlogRepository(coll *mongo.Collection) BlogRepository {
	return &mongoBlogRepository{coll: coll}
}

func (r *mongoBlogRepository) FindAll(ctx context.Context) ([]model.Blog, error) {
	cursor, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("find blogs: %w", err)
	}

	blogs := []model.Blog{}
	if err := cursor.All(ctx, &blogs); err != nil {
		return nil, fmt.Errorf("decode blogs: %w", err)
	}
	return blogs, nil
}

func (r *mongoBlogRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Blog, error) {
	var blog model.Blog
	err := r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&blog)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find blog %s: %w", id.Hex(), err)
	}
	return &blog, nil
}

func (r *mongoBlogRepository) Insert(ctx context.Context, blog *model.Blog) (*model.InsertAck, error) {
	res, err := r.coll.InsertOne(ctx, blog)
	if err != nil {
		return nil, fmt.Errorf("insert blog: %w", err)
	}
	return insertAck(res), nil
}

func (r *mongoBlogRepository) Upsert(ctx context.Context, id primitive.ObjectID, req *model.UpdateBlogRequest) (*model.UpdateAck, error) {
	res, err := r.coll.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: id}},
		bson.D{{Key: "$set", Value: req.SetDocument()}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return nil, fmt.Errorf("upsert blog %s: %w", id.Hex(), err)
	}

	// The v1 driver reports unacknowledged writes as mongo.ErrUnacknowledgedWrite.
	ack := &model.UpdateAck{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
	}
	if oid, ok := res.UpsertedID.(primitive.ObjectID); ok {
		ack.UpsertedID = &oid
	}
	return ack, nil
}

func insertAck(res *mongo.InsertOneResult) *model.InsertAck {
	ack := &model.InsertAck{Acknowledged: true}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		ack.InsertedID = oid
	}
	return ack
}
