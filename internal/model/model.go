// Package model holds the documents stored in MongoDB and the request
// payloads that create or change them.
package model

import (
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// validate is shared by every request type; validator caches struct metadata.
var validate = validator.New()

// InsertAck acknowledges an insertOne.
type InsertAck struct {
	Acknowledged bool               `json:"acknowledged"`
	InsertedID   primitive.ObjectID `json:"insertedId"`
}

// UpdateAck acknowledges an updateOne (with or without upsert).
type UpdateAck struct {
	Acknowledged  bool                `json:"acknowledged"`
	MatchedCount  int64               `json:"matchedCount"`
	ModifiedCount int64               `json:"modifiedCount"`
	UpsertedCount int64               `json:"upsertedCount"`
	UpsertedID    *primitive.ObjectID `json:"upsertedId"`
}

// DeleteAck acknowledges a deleteOne. DeletedCount is 0 when nothing matched.
type DeleteAck struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}
