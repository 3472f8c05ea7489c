package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/pkordes/trip-planner/internal/auth"
)

// NewAuthHandler returns a middleware that requires a valid HS256 bearer
// token and stores its subject as the request's user id (see auth.UserID).
//
// Paths that start with one of publicPrefixes pass through untouched; shared
// trip lists and the health check are readable without signing in.
func NewAuthHandler(secret []byte, publicPrefixes ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, p := range publicPrefixes {
				if strings.HasPrefix(r.URL.Path, p) {
					next.ServeHTTP(w, r)
					return
				}
			}
			if r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || strings.TrimSpace(token) == "" {
				writeError(w, http.StatusUnauthorized, "unauthorized", "missing bearer token")
				return
			}
			userID, err := auth.Verify(secret, strings.TrimSpace(token))
			if err != nil {
				writeError(w, http.StatusUnauthorized, "unauthorized", "invalid or expired token")
				return
			}
			next.ServeHTTP(w, r.WithContext(auth.WithUser(r.Context(), userID)))
		})
	}
}

// writeError writes the API's standard error envelope.
// Middleware runs outside the generated strict handlers, so it cannot use
// the generated response types.
func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]string{"code": code, "message": message},
	})
}
