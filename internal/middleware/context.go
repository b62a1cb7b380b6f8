package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"

	"github.com/deppfellow/blogs-server/internal/logger"
	"github.com/deppfellow/blogs-server/internal/server"
)

const (
	// Echo context keys set by RequireAuth.
	UserIDKey      = "user_id"
	UserRoleKey    = "user_role"
	PermissionsKey = "permissions"

	// LoggerKey stores the request-scoped logger in the Echo context.
	LoggerKey = "logger"
)

// ContextEnhancer builds the request-scoped logger.
type ContextEnhancer struct {
	server *server.Server
}

func NewContextEnhancer(s *server.Server) *ContextEnhancer {
	return &ContextEnhancer{server: s}
}

// EnhanceContext returns an Echo middleware that creates a child logger with
// request_id, method, path, ip and New Relic trace ids, and stores it in both
// the Echo context and the request context.
//
// Services read it back with zerolog.Ctx(ctx).
func (ce *ContextEnhancer) EnhanceContext() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			contextLogger := ce.server.Logger.With().
				Str("request_id", GetRequestID(c)).
				Str("method", c.Request().Method).
				Str("path", c.Path()).
				Str("ip", c.RealIP()).
				Logger()

			if txn := newrelic.FromContext(c.Request().Context()); txn != nil {
				contextLogger = logger.WithTraceContext(contextLogger, txn)
			}

			setLogger(c, &contextLogger)

			return next(c)
		}
	}
}

// setLogger replaces the request-scoped logger in both contexts.
func setLogger(c echo.Context, l *zerolog.Logger) {
	c.Set(LoggerKey, l)
	c.SetRequest(c.Request().WithContext(l.WithContext(c.Request().Context())))
}

// GetUserID returns the verified subject, or "" on public routes.
func GetUserID(c echo.Context) string {
	if userID, ok := c.Get(UserIDKey).(string); ok {
		return userID
	}
	return ""
}

// GetLogger retrieves the request-scoped logger from Echo context.
//
// If EnhanceContext did not run, it returns a no-op logger.
func GetLogger(c echo.Context) *zerolog.Logger {
	if logger, ok := c.Get(LoggerKey).(*zerolog.Logger); ok {
		return logger
	}

	logger := zerolog.Nop()
	return &logger
}
