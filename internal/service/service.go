// Package service contains the business logic.
//
// It sits between the handler and repository layers. It receives validated
// requests from the handlers, turns path and body identifiers into store ids,
// and calls repository methods to read and write documents.
package service

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/deppfellow/blogs-server/internal/errs"
)

// parseObjectID converts a hex id from a request into a store id.
// field names the request field in the error returned to the client.
func parseObjectID(field, value string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(value)
	if err != nil {
		return primitive.NilObjectID, errs.NewInvalidIDError(field, value)
	}
	return id, nil
}
