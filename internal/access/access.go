// Package access decides which routes require a verified identity and
// carries that identity through the request context.
//
// The route table is explicit: a Policy is a named set of protected
// (method, path) pairs. Handlers never check policy themselves; the router
// asks the Policy once per route at registration time.
package access

import (
	"context"
	"errors"
	"strings"
)

// ErrUnauthorized is returned for a missing, malformed or rejected credential.
var ErrUnauthorized = errors.New("unauthorized access")

// Identity is the verified claim attached to a request after token verification.
type Identity struct {
	// Subject is the stable user id issued by the identity provider.
	Subject     string
	SessionID   string
	Role        string
	Permissions []string
}

// Verifier turns a bearer token into an Identity or fails.
type Verifier interface {
	Verify(ctx context.Context, token string) (*Identity, error)
}

type identityKey struct{}

// WithIdentity returns a copy of ctx carrying id.
func WithIdentity(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFromContext returns the identity stored by WithIdentity, if any.
func IdentityFromContext(ctx context.Context) (*Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(*Identity)
	return id, ok && id != nil
}

// BearerToken extracts the token from an Authorization header value.
//
// The scheme match is case-insensitive; the token must be non-empty.
func BearerToken(header string) (string, error) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", ErrUnauthorized
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrUnauthorized
	}
	return token, nil
}
