package handler

import (
	"fmt"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/blogs-server/internal/server"
)

// OpenAPIDir holds openapi.html and openapi.json, served under /static.
const OpenAPIDir = "static"

// OpenAPIHandler serves the API documentation UI.
type OpenAPIHandler struct {
	Handler
}

func NewOpenAPIHandler(s *server.Server) *OpenAPIHandler {
	return &OpenAPIHandler{
		Handler: NewHandler(s),
	}
}

// ServeOpenAPIUI serves static/openapi.html without caching so doc edits show up immediately.
func (h *OpenAPIHandler) ServeOpenAPIUI(c echo.Context) error {
	c.Response().Header().Set("Cache-Control", "no-cache")

	page, err := os.ReadFile(OpenAPIDir + "/openapi.html")
	if err != nil {
		return fmt.Errorf("failed to read OpenAPI UI template: %w", err)
	}

	return c.HTML(http.StatusOK, string(page))
}
