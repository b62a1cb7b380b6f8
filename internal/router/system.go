package router

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/blogs-server/internal/handler"
)

// registerSystemRoutes registers the endpoints outside the blog API: the
// health status, the docs UI and the static files it loads.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/status", h.Health.CheckHealth)
	r.Static("/static", handler.OpenAPIDir)
	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
}
