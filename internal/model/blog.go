package model

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Author is the embedded author metadata of a blog post.
type Author struct {
	Name  string `bson:"name,omitempty" json:"name,omitempty" validate:"omitempty,max=120"`
	Email string `bson:"email,omitempty" json:"email,omitempty" validate:"omitempty,email"`
	Photo string `bson:"photo,omitempty" json:"photo,omitempty" validate:"omitempty,max=2048"`
}

// Blog is a document of the blogs collection.
type Blog struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title            string             `bson:"title,omitempty" json:"title,omitempty"`
	Image            string             `bson:"image,omitempty" json:"image,omitempty"`
	Category         string             `bson:"category,omitempty" json:"category,omitempty"`
	ShortDescription string             `bson:"shortDescription,omitempty" json:"shortDescription,omitempty"`
	Body             string             `bson:"body,omitempty" json:"body,omitempty"`
	Author           *Author            `bson:"author,omitempty" json:"author,omitempty"`
	Tags             []string           `bson:"tags,omitempty" json:"tags,omitempty"`
}

// BlogIDRequest addresses one blog by its path id.
type BlogIDRequest struct {
	ID string `param:"id" json:"-" validate:"required"`
}

func (r *BlogIDRequest) Validate() error {
	return validate.Struct(r)
}

// ListBlogsRequest has no parameters; it exists so the route goes through the
// same bind/validate pipeline as every other route.
type ListBlogsRequest struct{}

func (r *ListBlogsRequest) Validate() error {
	return nil
}

// CreateBlogRequest carries a new blog. No field is required.
type CreateBlogRequest struct {
	Title            string   `json:"title" validate:"omitempty,max=300"`
	Image            string   `json:"image" validate:"omitempty,max=2048"`
	Category         string   `json:"category" validate:"omitempty,max=100"`
	ShortDescription string   `json:"shortDescription" validate:"omitempty,max=1000"`
	Body             string   `json:"body"`
	Author           *Author  `json:"author"`
	Tags             []string `json:"tags" validate:"omitempty,dive,max=50"`
}

func (r *CreateBlogRequest) Validate() error {
	return validate.Struct(r)
}

// Blog converts the request into the document to insert.
func (r *CreateBlogRequest) Blog() *Blog {
	return &Blog{
		Title:            r.Title,
		Image:            r.Image,
		Category:         r.Category,
		ShortDescription: r.ShortDescription,
		Body:             r.Body,
		Author:           r.Author,
		Tags:             r.Tags,
	}
}

// UpdateBlogRequest carries a partial blog. Nil fields are left untouched.
type UpdateBlogRequest struct {
	ID               string    `param:"id" json:"-" validate:"required"`
	Title            *string   `json:"title" validate:"omitempty,max=300"`
	Image            *string   `json:"image" validate:"omitempty,max=2048"`
	Category         *string   `json:"category" validate:"omitempty,max=100"`
	ShortDescription *string   `json:"shortDescription" validate:"omitempty,max=1000"`
	Body             *string   `json:"body"`
	Author           *Author   `json:"author"`
	Tags             *[]string `json:"tags" validate:"omitempty,dive,max=50"`
}

func (r *UpdateBlogRequest) Validate() error {
	return validate.Struct(r)
}

// SetDocument builds the $set document from the fields present in the request.
// An empty result means the request changes nothing.
func (r *UpdateBlogRequest) SetDocument() bson.D {
	set := bson.D{}
	if r.Title != nil {
		set = append(set, bson.E{Key: "title", Value: *r.Title})
	}
	if r.Image != nil {
		set = append(set, bson.E{Key: "image", Value: *r.Image})
	}
	if r.Category != nil {
		set = append(set, bson.E{Key: "category", Value: *r.Category})
	}
	if r.ShortDescription != nil {
		set = append(set, bson.E{Key: "shortDescription", Value: *r.ShortDescription})
	}
	if r.Body != nil {
		set = append(set, bson.E{Key: "body", Value: *r.Body})
	}
	if r.Author != nil {
		set = append(set, bson.E{Key: "author", Value: r.Author})
	}
	if r.Tags != nil {
		set = append(set, bson.E{Key: "tags", Value: *r.Tags})
	}
	return set
}
