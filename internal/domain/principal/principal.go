// Package principal carries the authenticated caller through
// context.Context, from the HTTP middleware down to the persistence
// adapters (the remote adapter forwards the access token to the
// collaborator and stamps the owner id on create).
package principal

import (
	"context"

	"serviceos/internal/domain/entities"
)

type ctxKey int

const (
	tokenKey ctxKey = iota
	userKey
)

// WithAccessToken returns a context carrying the caller's bearer token.
func WithAccessToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey, token)
}

// AccessTokenFrom returns the caller's bearer token, or "".
func AccessTokenFrom(ctx context.Context) string {
	if v, ok := ctx.Value(tokenKey).(string); ok {
		return v
	}
	return ""
}

// WithUser returns a context carrying the authenticated user.
func WithUser(ctx context.Context, user entities.AuthUser) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// UserFrom returns the authenticated user; a zero ID means none.
func UserFrom(ctx context.Context) entities.AuthUser {
	if v, ok := ctx.Value(userKey).(entities.AuthUser); ok {
		return v
	}
	return entities.AuthUser{}
}
