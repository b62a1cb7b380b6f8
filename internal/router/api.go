package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/blogs-server/internal/access"
	"github.com/deppfellow/blogs-server/internal/handler"
	"github.com/deppfellow/blogs-server/internal/middleware"
	"github.com/deppfellow/blogs-server/internal/model"
)

type apiRoute struct {
	access.Route
	handler echo.HandlerFunc
}

// apiRoutes maps every access.KnownRoutes entry to its handler.
func apiRoutes(h *handler.Handlers) []apiRoute {
	blog := h.Blog
	comment := h.Comment
	wishlist := h.Wishlist

	return []apiRoute{
		{access.RouteRoot, handler.Root},

		{access.RouteListBlogs, handler.Handle(blog.Handler, blog.ListBlogs, http.StatusOK, &model.ListBlogsRequest{})},
		{access.RouteGetBlog, handler.Handle(blog.Handler, blog.GetBlog, http.StatusOK, &model.BlogIDRequest{})},
		{access.RouteCreateBlog, handler.Handle(blog.Handler, blog.CreateBlog, http.StatusOK, &model.CreateBlogRequest{})},
		{access.RouteUpdateBlog, handler.Handle(blog.Handler, blog.UpdateBlog, http.StatusOK, &model.UpdateBlogRequest{})},

		{access.RouteListComments, handler.Handle(comment.Handler, comment.ListComments, http.StatusOK, &model.ListCommentsRequest{})},
		{access.RouteCreateComment, handler.Handle(comment.Handler, comment.CreateComment, http.StatusOK, &model.CreateCommentRequest{})},

		{access.RouteAddWishlist, handler.Handle(wishlist.Handler, wishlist.AddItem, http.StatusOK, &model.AddWishlistItemRequest{})},
		{access.RouteGetWishlist, handler.Handle(wishlist.Handler, wishlist.GetWishlist, http.StatusOK, &model.GetWishlistRequest{})},
		{access.RouteRemoveWishlist, handler.Handle(wishlist.Handler, wishlist.RemoveItem, http.StatusOK, &model.RemoveWishlistItemRequest{})},
	}
}

// registerAPIRoutes adds every API route, putting RequireAuth in front of the
// ones the policy protects.
func registerAPIRoutes(r *echo.Echo, h *handler.Handlers, policy access.Policy, auth *middleware.AuthMiddleware) {
	for _, route := range apiRoutes(h) {
		var mws []echo.MiddlewareFunc
		if policy.Protects(route.Route) {
			mws = append(mws, auth.RequireAuth)
		}
		r.Add(route.Method, route.Path, route.handler, mws...)
	}
}
