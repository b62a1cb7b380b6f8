package model

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WishlistItem is a document of the wishlist collection, owned by UserEmail.
//
// The blog fields are a snapshot taken when the item is added so the wishlist
// can be rendered without a join.
type WishlistItem struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	BlogID           string             `bson:"blogId" json:"blogId"`
	UserEmail        string             `bson:"userEmail" json:"userEmail"`
	Title            string             `bson:"title,omitempty" json:"title,omitempty"`
	Image            string             `bson:"image,omitempty" json:"image,omitempty"`
	Category         string             `bson:"category,omitempty" json:"category,omitempty"`
	ShortDescription string             `bson:"shortDescription,omitempty" json:"shortDescription,omitempty"`
}

// AddWishlistItemRequest is the body of POST /wishlist.
type AddWishlistItemRequest struct {
	BlogID           string `json:"blogId" validate:"required"`
	UserEmail        string `json:"userEmail" validate:"required,email"`
	Title            string `json:"title" validate:"omitempty,max=300"`
	Image            string `json:"image" validate:"omitempty,max=2048"`
	Category         string `json:"category" validate:"omitempty,max=100"`
	ShortDescription string `json:"shortDescription" validate:"omitempty,max=1000"`
}

func (r *AddWishlistItemRequest) Validate() error {
	return validate.Struct(r)
}

// Item converts the request into the document to insert.
func (r *AddWishlistItemRequest) Item() *WishlistItem {
	return &WishlistItem{
		BlogID:           r.BlogID,
		UserEmail:        r.UserEmail,
		Title:            r.Title,
		Image:            r.Image,
		Category:         r.Category,
		ShortDescription: r.ShortDescription,
	}
}

// GetWishlistRequest addresses one user's wishlist by email.
type GetWishlistRequest struct {
	Email string `param:"email" json:"-" validate:"required"`
}

func (r *GetWishlistRequest) Validate() error {
	return validate.Struct(r)
}

// RemoveWishlistItemRequest addresses one wishlist item by id.
type RemoveWishlistItemRequest struct {
	ID string `param:"id" json:"-" validate:"required"`
}

func (r *RemoveWishlistItemRequest) Validate() error {
	return validate.Struct(r)
}
