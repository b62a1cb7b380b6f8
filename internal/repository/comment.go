package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/deppfellow/blogs-server/internal/model"
)

type mongoCommentRepository struct {
	coll *mongo.Collection
}

// NewCommentRepository returns a CommentRepository backed by coll.
func NewCommentRepository(coll *mongo.Collection) CommentRepository {
	return &mongoCommentRepository{coll: coll}
}

func (r *mongoCommentRepository) FindByBlog(ctx context.Context, blogID primitive.ObjectID) ([]model.Comment, error) {
	cursor, err := r.coll.Find(ctx,
		bson.D{{Key: "blogId", Value: blogID}},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("find comments of %s: %w", blogID.Hex(), err)
	}

	comments := []model.Comment{}
	if err := cursor.All(ctx, &comments); err != nil {
		return nil, fmt.Errorf("decode comments: %w", err)
	}
	return comments, nil
}

func (r *mongoCommentRepository) Insert(ctx context.Context, comment *model.Comment) (*model.InsertAck, error) {
	res, err := r.coll.InsertOne(ctx, comment)
	if err != nil {
		return nil, fmt.Errorf("insert comment: %w", err)
	}
	return insertAck(res), nil
}
