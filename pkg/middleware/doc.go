// Package middleware provides HTTP middleware for request authentication.
//
// AuthMiddleware extracts a Bearer token from the Authorization header,
// verifies it through pkg/identity, and places the authenticated username
// into the request context via pkg/contextkeys. Guarded routes reject
// requests with a missing, malformed, invalid, or expired token with
// 403 Forbidden before any handler state is touched.
package middleware
