// Package authctx carries the caller's identity and bearer token through a request context,
// from the auth middleware down to the ERP backend client.
package authctx

import (
	"context"

	"golang.org/x/oauth2"
)

type contextKey string

const (
	tokenContextKey contextKey = "bearerToken"
	userContextKey  contextKey = "currentUser"
)

// CurrentUser is the caller as described by its token claims.
type CurrentUser struct {
	ID          string
	Email       string
	Role        string
	Fingerprint string
}

// WithToken stores the caller's bearer token.
func WithToken(ctx context.Context, token *oauth2.Token) context.Context {
	return context.WithValue(ctx, tokenContextKey, token)
}

// TokenFromContext returns the caller's bearer token, or nil.
func TokenFromContext(ctx context.Context) *oauth2.Token {
	token, _ := ctx.Value(tokenContextKey).(*oauth2.Token)
	return token
}

// WithCurrentUser stores the caller's identity.
func WithCurrentUser(ctx context.Context, user CurrentUser) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

// FromContext returns the caller's identity, or nil.
func FromContext(ctx context.Context) *CurrentUser {
	val, ok := ctx.Value(userContextKey).(CurrentUser)
	if !ok {
		return nil
	}
	return &val
}
