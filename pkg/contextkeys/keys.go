// Package contextkeys provides centralized context key definitions
//
// All context keys used across the application are defined here. This
// prevents typos, documents dependencies, and makes key usage discoverable.
package contextkeys

import "context"

// Key is the type for context keys to prevent collisions
type Key string

const (
	// UserKey contains the authenticated username
	// Set by: middleware.AuthMiddleware (pkg/middleware/auth.go)
	// Required by: review mutation handlers (pkg/api)
	// Type: string
	UserKey Key = "auth_user"

	// RequestIDKey contains the request ID string
	// Set by: httputil.RequestIDMiddleware
	// Used by: Logger
	// Type: string
	RequestIDKey Key = "request_id"
)

// WithUser adds the authenticated username to the context
func WithUser(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, UserKey, username)
}

// User retrieves the authenticated username from the context; the empty
// string means the request was not authenticated.
func User(ctx context.Context) string {
	if username, ok := ctx.Value(UserKey).(string); ok {
		return username
	}
	return ""
}

// WithRequestID adds a request ID to the context
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

// RequestID retrieves the request ID from the context
func RequestID(ctx context.Context) string {
	if id, ok := ctx.Value(RequestIDKey).(string); ok {
		return id
	}
	return ""
}
