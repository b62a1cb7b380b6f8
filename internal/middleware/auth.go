package middleware

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/blogs-server/internal/access"
	"github.com/deppfellow/blogs-server/internal/errs"
	"github.com/deppfellow/blogs-server/internal/server"
)

// AuthMiddleware rejects requests without a verifiable bearer token.
type AuthMiddleware struct {
	server   *server.Server
	verifier access.Verifier
}

// NewAuthMiddleware constructs an AuthMiddleware around verifier.
func NewAuthMiddleware(s *server.Server, verifier access.Verifier) *AuthMiddleware {
	return &AuthMiddleware{
		server:   s,
		verifier: verifier,
	}
}

// RequireAuth is an Echo middleware for protected routes.
//
//  1. It reads "Authorization: Bearer <token>".
//  2. It asks the verifier for the caller's identity.
//  3. On failure it returns a 401 and the handler never runs.
//  4. On success it stores the identity in the request context, sets user_id,
//     user_role and permissions on the Echo context and adds user_id to the
//     request logger.
func (auth *AuthMiddleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		logger := GetLogger(c)

		if auth.verifier == nil {
			logger.Error().
				Str("function", "RequireAuth").
				Msg("protected route reached without a configured verifier")
			return errs.NewUnauthorizedError(errs.UnauthorizedMessage, false)
		}

		token, err := access.BearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
		if err != nil {
			logger.Warn().
				Str("function", "RequireAuth").
				Dur("duration", time.Since(start)).
				Msg("missing or malformed bearer token")
			return errs.NewUnauthorizedError(errs.UnauthorizedMessage, false)
		}

		identity, err := auth.verifier.Verify(c.Request().Context(), token)
		if err != nil {
			logger.Warn().
				Err(err).
				Str("function", "RequireAuth").
				Dur("duration", time.Since(start)).
				Msg("token verification failed")
			return errs.NewUnauthorizedError(errs.UnauthorizedMessage, false)
		}

		c.Set(UserIDKey, identity.Subject)
		c.Set(UserRoleKey, identity.Role)
		c.Set(PermissionsKey, identity.Permissions)

		c.SetRequest(c.Request().WithContext(access.WithIdentity(c.Request().Context(), identity)))

		userLogger := logger.With().Str("user_id", identity.Subject).Logger()
		setLogger(c, &userLogger)

		userLogger.Info().
			Str("function", "RequireAuth").
			Dur("duration", time.Since(start)).
			Msg("user authenticated successfully")

		return next(c)
	}
}
