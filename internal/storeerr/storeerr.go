// Package storeerr handles document store driver errors.
//
// It classifies errors from the MongoDB driver and converts them
// into application HTTP errors (e.g., a duplicate key becomes a
// "Bad Request" while a network failure becomes "store unavailable").
package storeerr

import (
	"context"
	"errors"
	"regexp"

	"go.mongodb.org/mongo-driver/mongo"
)

// Code is the category of a store error.
type Code string

const (
	DuplicateKey Code = "duplicate_key"
	NoDocuments  Code = "no_documents"
	Unavailable  Code = "unavailable"
	Other        Code = "other"
)

// Error is a classified store error. It keeps the driver error for Unwrap.
type Error struct {
	Code Code
	// Collection and Index are parsed from duplicate key messages when present.
	Collection string
	Index      string
	driverErr  error
}

func (e *Error) Error() string {
	return "store error (" + string(e.Code) + "): " + e.driverErr.Error()
}

func (e *Error) Unwrap() error {
	return e.driverErr
}

// duplicateKeyPattern matches "collection: <db>.<coll> index: <name>" in E11000 messages.
var duplicateKeyPattern = regexp.MustCompile(`collection: [^.\s]+\.(\S+) index: (\S+)`)

// Classify wraps err into an *Error describing what went wrong.
func Classify(err error) *Error {
	var storeErr *Error
	if errors.As(err, &storeErr) {
		return storeErr
	}

	classified := &Error{Code: Other, driverErr: err}

	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		classified.Code = NoDocuments

	case mongo.IsDuplicateKeyError(err):
		classified.Code = DuplicateKey
		if m := duplicateKeyPattern.FindStringSubmatch(err.Error()); len(m) == 3 {
			classified.Collection = m[1]
			classified.Index = m[2]
		}

	case mongo.IsTimeout(err),
		mongo.IsNetworkError(err),
		errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, mongo.ErrClientDisconnected):
		classified.Code = Unavailable
	}

	return classified
}

// ErrCode reports the Code for err, or Other if it is not a store error.
func ErrCode(err error) Code {
	return Classify(err).Code
}
