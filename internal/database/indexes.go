package database

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// IndexSpec describes one index to ensure on a collection.
type IndexSpec struct {
	Collection string
	Name       string
	Keys       bson.D
}

// Indexes lists the indexes the read paths rely on.
//
// The wishlist index is not unique: duplicates are prevented by
// a check before insert, so concurrent adds of the same (blogId, userEmail)
// can still both succeed.
var Indexes = []IndexSpec{
	{
		Collection: CommentsCollection,
		Name:       "blogId_createdAt",
		Keys:       bson.D{{Key: "blogId", Value: 1}, {Key: "createdAt", Value: -1}},
	},
	{
		Collection: WishlistCollection,
		Name:       "userEmail_blogId",
		Keys:       bson.D{{Key: "userEmail", Value: 1}, {Key: "blogId", Value: 1}},
	},
}

// EnsureIndexes creates any missing index in Indexes.
//
// createIndexes is idempotent for an identical definition, so this runs on every start.
func EnsureIndexes(ctx context.Context, logger *zerolog.Logger, db *Database) error {
	for _, idx := range Indexes {
		model := mongo.IndexModel{
			Keys:    idx.Keys,
			Options: options.Index().SetName(idx.Name),
		}
		if _, err := db.Collection(idx.Collection).Indexes().CreateOne(ctx, model); err != nil {
			return fmt.Errorf("ensuring index %s on %s: %w", idx.Name, idx.Collection, err)
		}
		logger.Info().
			Str("collection", idx.Collection).
			Str("index", idx.Name).
			Msg("ensured index")
	}
	return nil
}
