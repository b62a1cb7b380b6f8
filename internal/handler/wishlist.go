package handler

import (
	"net/url"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/blogs-server/internal/errs"
	"github.com/deppfellow/blogs-server/internal/model"
	"github.com/deppfellow/blogs-server/internal/server"
	"github.com/deppfellow/blogs-server/internal/service"
)

// WishlistHandler serves the wishlist routes.
type WishlistHandler struct {
	Handler
	wishlist *service.WishlistService
}

func NewWishlistHandler(s *server.Server, wishlist *service.WishlistService) *WishlistHandler {
	return &WishlistHandler{
		Handler:  NewHandler(s),
		wishlist: wishlist,
	}
}

// AddItem handles POST /wishlist and returns the stored item with its _id.
func (h *WishlistHandler) AddItem(c echo.Context, req *model.AddWishlistItemRequest) (*model.WishlistItem, error) {
	return h.wishlist.Add(c.Request().Context(), req)
}

// GetWishlist handles GET /wishlist/:email. Clients usually send the email
// percent-encoded ("alice%40example.com").
func (h *WishlistHandler) GetWishlist(c echo.Context, req *model.GetWishlistRequest) ([]model.WishlistItem, error) {
	email, err := unescapeParam(c, "email", req.Email)
	if err != nil {
		return nil, err
	}
	req.Email = email
	return h.wishlist.ListByEmail(c.Request().Context(), req)
}

// RemoveItem handles DELETE /wishlist/:id.
func (h *WishlistHandler) RemoveItem(c echo.Context, req *model.RemoveWishlistItemRequest) (*model.DeleteAck, error) {
	return h.wishlist.Remove(c.Request().Context(), req)
}

// unescapeParam decodes a path parameter. Echo matches routes against
// URL.RawPath when the request path had escapes, and then hands params back
// still encoded.
func unescapeParam(c echo.Context, field, value string) (string, error) {
	if c.Request().URL.RawPath == "" {
		return value, nil
	}
	decoded, err := url.PathUnescape(value)
	if err != nil {
		return "", errs.NewBadRequestError("Invalid "+field+" in path", true, nil,
			[]errs.FieldError{{Field: field, Error: "is not valid percent-encoding"}})
	}
	return decoded, nil
}
