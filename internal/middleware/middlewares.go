package middleware

import (
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/deppfellow/blogs-server/internal/access"
	"github.com/deppfellow/blogs-server/internal/server"
)

// Middlewares groups all middleware components used by the HTTP server, so
// the router is wired from one place.
type Middlewares struct {
	// Global holds CORS, request logging, recovery, secure headers, the
	// request deadline and the global error handler.
	Global *GlobalMiddlewares

	// Auth guards the routes marked protected by the access policy.
	Auth *AuthMiddleware

	// ContextEnhancer attaches the request-scoped logger.
	ContextEnhancer *ContextEnhancer

	// Tracing provides New Relic middleware and custom attributes.
	Tracing *TracingMiddleware
}

// NewMiddlewares constructs all middleware components.
//
// verifier may be nil when no route is protected. Tracing degrades into a
// no-op when New Relic is not configured.
func NewMiddlewares(s *server.Server, verifier access.Verifier) *Middlewares {
	var nrApp *newrelic.Application
	if s.LoggerService != nil {
		nrApp = s.LoggerService.GetApplication()
	}

	return &Middlewares{
		Global:          NewGlobalMiddlewares(s),
		Auth:            NewAuthMiddleware(s, verifier),
		ContextEnhancer: NewContextEnhancer(s),
		Tracing:         NewTracingMiddleware(s, nrApp),
	}
}
