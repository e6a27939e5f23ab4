// Package middleware provides HTTP middlewares for admin token gating
// and request logging.
package middleware

import (
	"context"
	"net/http"
	"strings"
)

type ctxKey string

const adminKey ctxKey = "admin"

// ExtractToken pulls the admin token from the request headers. A Bearer
// scheme in Authorization wins, then the raw Authorization value, then
// X-Admin-Token.
func ExtractToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if token, ok := strings.CutPrefix(auth, "Bearer "); ok {
		return token
	}
	if auth != "" {
		return auth
	}
	return r.Header.Get("X-Admin-Token")
}

// TokenValidator decides whether a presented token belongs to the admin.
type TokenValidator interface {
	ValidToken(token string) bool
}

// WithAdminFlag derives the caller's role from the request token and
// stores it in the context. Read handlers use it to filter visibility
// instead of rejecting the request.
func WithAdminFlag(v TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), adminKey, v.ValidToken(ExtractToken(r)))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IsAdmin reports whether the request context carries an authenticated
// admin. Returns false if the flag was never set.
func IsAdmin(ctx context.Context) bool {
	isAdmin, _ := ctx.Value(adminKey).(bool)
	return isAdmin
}

// RequireAdmin guards mutating handlers: when the request token is not
// the admin token, it responds 401 before any storage is touched.
func RequireAdmin(v TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !v.ValidToken(ExtractToken(r)) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"error":"Unauthorized"}`))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
