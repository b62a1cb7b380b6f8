package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Comment is a document of the comments collection. Comments are append-only.
type Comment struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	BlogID    primitive.ObjectID `bson:"blogId" json:"blogId"`
	Username  string             `bson:"username" json:"username"`
	UserPhoto string             `bson:"userPhoto,omitempty" json:"userPhoto,omitempty"`
	Email     string             `bson:"email,omitempty" json:"email,omitempty"`
	Comment   string             `bson:"comment" json:"comment"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// ListCommentsRequest addresses the comments of one blog.
type ListCommentsRequest struct {
	BlogID string `param:"blogId" json:"-" validate:"required"`
}

func (r *ListCommentsRequest) Validate() error {
	return validate.Struct(r)
}

// CreateCommentRequest is the body of POST /comments.
type CreateCommentRequest struct {
	BlogID    string `json:"blogId" validate:"required"`
	Username  string `json:"username" validate:"required,max=100"`
	UserPhoto string `json:"userPhoto" validate:"omitempty,max=2048"`
	Email     string `json:"email" validate:"omitempty,email"`
	Comment   string `json:"comment" validate:"required,max=5000"`
}

func (r *CreateCommentRequest) Validate() error {
	return validate.Struct(r)
}
