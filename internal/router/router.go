// Package router initializes the HTTP router (using Echo).
//
// It registers the global middlewares, the API routes with their access
// policy, and the system routes.
package router

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/blogs-server/internal/handler"
	"github.com/deppfellow/blogs-server/internal/middleware"
	"github.com/deppfellow/blogs-server/internal/server"
	"github.com/deppfellow/blogs-server/internal/service"
	"github.com/deppfellow/blogs-server/internal/validation"
)

// NewRouter builds the Echo instance serving the whole API.
//
// It fails when the access policy in config is invalid, or when it protects
// routes but no verifier was built.
func NewRouter(s *server.Server, h *handler.Handlers, services *service.Services) (*echo.Echo, error) {
	policy, err := s.Config.AccessPolicy()
	if err != nil {
		return nil, fmt.Errorf("resolve access policy: %w", err)
	}
	if policy.ProtectsAny() && services.Auth == nil {
		return nil, fmt.Errorf("access profile %q protects routes but no verifier is configured", policy.Name())
	}

	middlewares := middleware.NewMiddlewares(s, services.Auth)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true
	router.JSONSerializer = validation.StrictJSONSerializer{}
	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	router.Use(
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middleware.RequestID(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
		middlewares.Global.RequestTimeout(),
	)

	registerAPIRoutes(router, h, policy, middlewares.Auth)
	registerSystemRoutes(router, h)

	s.Logger.Info().
		Str("profile", policy.Name()).
		Int("protected_routes", len(policy.Protected())).
		Msg("access policy applied")

	return router, nil
}
