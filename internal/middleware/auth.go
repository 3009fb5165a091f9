package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/evenly-app/evenly/internal/auth"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

// adminEmailKey is the context key for the authenticated admin's email.
const adminEmailKey contextKey = "admin_email"

// GetAdminEmail extracts the authenticated admin email from the context.
// Returns empty string if the request was not admin-authenticated.
func GetAdminEmail(ctx context.Context) string {
	email, _ := ctx.Value(adminEmailKey).(string)
	return email
}

// RequireAdmin returns a middleware that validates the Bearer JWT and
// requires the admin claim. The capability check lives here, in front of
// the services; the core computations know nothing about access control.
func RequireAdmin(jwtManager *auth.JWTManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeAuthError(w, auth.ErrMissingToken)
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				writeAuthError(w, auth.ErrInvalidToken)
				return
			}

			claims, err := jwtManager.Validate(parts[1])
			if err != nil {
				writeAuthError(w, err)
				return
			}
			if !claims.Admin {
				writeAuthError(w, auth.ErrInvalidToken)
				return
			}

			ctx := context.WithValue(r.Context(), adminEmailKey, claims.Email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func writeAuthError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}
