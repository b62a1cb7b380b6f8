package service

import (
	"context"
	"sync"

	"github.com/clerk/clerk-sdk-go/v2"
	"github.com/clerk/clerk-sdk-go/v2/jwt"
	"github.com/pkg/errors"

	"github.com/deppfellow/blogs-server/internal/access"
	"github.com/deppfellow/blogs-server/internal/server"
)

// AuthService verifies Clerk session tokens.
//
// JSON web keys are fetched once per key id and cached for the life of the process.
type AuthService struct {
	server *server.Server
	keys   sync.Map // kid -> *clerk.JSONWebKey
}

// NewAuthService sets the Clerk secret key used to fetch the JWKS.
func NewAuthService(s *server.Server) *AuthService {
	clerk.SetKey(s.Config.Auth.SecretKey)
	return &AuthService{
		server: s,
	}
}

// Verify checks the token signature and claims and returns the caller's identity.
// Every failure wraps access.ErrUnauthorized.
func (a *AuthService) Verify(ctx context.Context, token string) (*access.Identity, error) {
	unverified, err := jwt.Decode(ctx, &jwt.DecodeParams{Token: token})
	if err != nil {
		return nil, errors.Wrapf(access.ErrUnauthorized, "decode token: %v", err)
	}

	jwk, err := a.jsonWebKey(ctx, unverified.KeyID)
	if err != nil {
		return nil, errors.Wrapf(access.ErrUnauthorized, "fetch json web key: %v", err)
	}

	claims, err := jwt.Verify(ctx, &jwt.VerifyParams{
		Token: token,
		JWK:   jwk,
	})
	if err != nil {
		return nil, errors.Wrapf(access.ErrUnauthorized, "verify token: %v", err)
	}

	return &access.Identity{
		Subject:     claims.Subject,
		SessionID:   claims.SessionID,
		Role:        claims.ActiveOrganizationRole,
		Permissions: claims.Claims.ActiveOrganizationPermissions,
	}, nil
}

func (a *AuthService) jsonWebKey(ctx context.Context, keyID string) (*clerk.JSONWebKey, error) {
	if cached, ok := a.keys.Load(keyID); ok {
		return cached.(*clerk.JSONWebKey), nil
	}

	jwk, err := jwt.GetJSONWebKey(ctx, &jwt.GetJSONWebKeyParams{KeyID: keyID})
	if err != nil {
		return nil, err
	}

	a.keys.Store(keyID, jwk)
	return jwk, nil
}
