package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/platinummonkey/bookstand/pkg/contextkeys"
	"github.com/platinummonkey/bookstand/pkg/identity"
)

// Verifier checks a bearer token and returns the claims it carries.
// *identity.Issuer satisfies this.
type Verifier interface {
	Verify(token string, now time.Time) (identity.Claims, error)
}

// AuthMiddleware guards routes behind bearer token authentication
type AuthMiddleware struct {
	verifier Verifier
	now      func() time.Time
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(verifier Verifier) *AuthMiddleware {
	return &AuthMiddleware{
		verifier: verifier,
		now:      time.Now,
	}
}

// Handler wraps an HTTP handler with authentication. Verification failures
// reject the request before the wrapped handler runs, so guarded state is
// never touched on a bad token.
func (m *AuthMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Format: "Bearer <token>"
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			m.forbiddenResponse(w, "missing authorization header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			m.forbiddenResponse(w, "invalid authorization header format")
			return
		}

		claims, err := m.verifier.Verify(parts[1], m.now())
		if err != nil {
			m.forbiddenResponse(w, "invalid or expired token")
			return
		}

		ctx := contextkeys.WithUser(r.Context(), claims.Username)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AuthenticatedUser extracts the verified username from a request; the
// empty string means the request did not pass through Handler.
func AuthenticatedUser(r *http.Request) string {
	return contextkeys.User(r.Context())
}

// Token failures are Forbidden at this API boundary, not Unauthorized:
// 401 is reserved for bad login credentials.
func (m *AuthMiddleware) forbiddenResponse(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusForbidden)
	w.Write([]byte(`{"error":"` + message + `"}`))
}
