package middleware

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/deppfellow/blogs-server/internal/errs"
	"github.com/deppfellow/blogs-server/internal/server"
	"github.com/deppfellow/blogs-server/internal/storeerr"
)

// GlobalMiddlewares groups the middleware applied to every route and the
// global error handler. It reads config through *server.Server.
type GlobalMiddlewares struct {
	server *server.Server
}

func NewGlobalMiddlewares(s *server.Server) *GlobalMiddlewares {
	return &GlobalMiddlewares{
		server: s,
	}
}

// CORS allows the configured browser origins.
func (global *GlobalMiddlewares) CORS() echo.MiddlewareFunc {
	return middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: global.server.Config.Server.CORSAllowedOrigins,
		AllowHeaders: []string{
			echo.HeaderOrigin,
			echo.HeaderContentType,
			echo.HeaderAccept,
			echo.HeaderAuthorization,
			RequestIDHeader,
		},
	})
}

// RequestLogger writes one "API" line per request, at a level chosen by status.
//
// When a handler returns an error the final status is only written later by
// GlobalErrorHandler, so it is derived from the error here.
// See https://github.com/labstack/echo/issues/2310#issuecomment-1288196898
func (global *GlobalMiddlewares) RequestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:     true,
		LogStatus:  true,
		LogError:   true,
		LogLatency: true,
		LogHost:    true,
		LogMethod:  true,
		LogURIPath: true,

		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			status := v.Status
			if v.Error != nil {
				status = statusFromError(v.Error)
			}

			logger := GetLogger(c)
			line := levelFor(logger, status)
			if status >= http.StatusInternalServerError {
				line = line.Err(v.Error)
			}
			if userID := GetUserID(c); userID != "" {
				line = line.Str("user_id", userID)
			}

			line.Int("status", status).
				Str("method", v.Method).
				Str("uri", v.URI).
				Str("host", v.Host).
				Str("ip", c.RealIP()).
				Str("user_agent", c.Request().UserAgent()).
				Dur("latency", v.Latency).
				Msg("API")
			return nil
		},
	})
}

// statusFromError predicts the status GlobalErrorHandler will send for err.
func statusFromError(err error) int {
	return toHTTPError(err).Status
}

// Recover turns handler panics into 500 responses.
func (global *GlobalMiddlewares) Recover() echo.MiddlewareFunc {
	return middleware.Recover()
}

// Secure adds the standard security headers.
func (global *GlobalMiddlewares) Secure() echo.MiddlewareFunc {
	return middleware.Secure()
}

// RequestTimeout puts server.request_timeout on every request context. Store
// calls that run out of time surface as STORE_UNAVAILABLE.
//
// A zero timeout disables the deadline.
func (global *GlobalMiddlewares) RequestTimeout() echo.MiddlewareFunc {
	timeout := global.server.Config.Server.RequestTimeout
	if timeout <= 0 {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return next
		}
	}

	return middleware.ContextTimeoutWithConfig(middleware.ContextTimeoutConfig{
		Timeout: timeout,
		ErrorHandler: func(err error, c echo.Context) error {
			if errors.Is(err, context.DeadlineExceeded) {
				GetLogger(c).Warn().
					Err(err).
					Dur("timeout", timeout).
					Msg("request deadline exceeded")
				return errs.NewStoreUnavailableError()
			}
			return err
		},
	})
}

// levelFor picks warn for client errors, error for server errors and info
// for everything else.
func levelFor(logger *zerolog.Logger, status int) *zerolog.Event {
	switch {
	case status >= http.StatusInternalServerError:
		return logger.Error()
	case status >= http.StatusBadRequest:
		return logger.Warn()
	default:
		return logger.Info()
	}
}

// toHTTPError normalizes any handler error into the response body.
//
// Unknown routes become NOT_FOUND, other echo errors keep their status and
// message, and everything else is classified by storeerr.
func toHTTPError(err error) *errs.HTTPError {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	var echoErr *echo.HTTPError
	if !errors.As(err, &echoErr) {
		if errors.As(storeerr.HandleError(err), &httpErr) {
			return httpErr
		}
		return errs.NewInternalServerError()
	}

	if echoErr.Code == http.StatusNotFound {
		return errs.NewNotFoundError("Route not found", false, nil)
	}
	message, ok := echoErr.Message.(string)
	if !ok {
		message = http.StatusText(echoErr.Code)
	}
	return &errs.HTTPError{
		Code:    errs.MakeUpperCaseWithUnderscores(http.StatusText(echoErr.Code)),
		Message: message,
		Status:  echoErr.Code,
	}
}

// GlobalErrorHandler renders every error as an errs.HTTPError body. The
// underlying error is logged with the request logger and never reaches the
// client.
func (global *GlobalMiddlewares) GlobalErrorHandler(err error, c echo.Context) {
	resp := toHTTPError(err)

	line := levelFor(GetLogger(c), resp.Status)
	if resp.Status >= http.StatusInternalServerError {
		line = line.Stack()
	}
	line.Err(err).
		Int("status", resp.Status).
		Str("error_code", resp.Code).
		Msg(resp.Message)

	if c.Response().Committed {
		return
	}
	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(resp.Status)
		return
	}
	_ = c.JSON(resp.Status, resp)
}
