package middleware

import (
	"context"
)

type contextKey string

const usernameKey contextKey = "username"

// ContextWithUsername returns a new context carrying the authenticated username.
// This is intended for use in tests and middleware.
func ContextWithUsername(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, usernameKey, username)
}

// UsernameFromContext reports the username set by ExtractUsernameFromJWT, if any.
func UsernameFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(usernameKey).(string)
	if !ok || username == "" {
		return "", false
	}
	return username, true
}
