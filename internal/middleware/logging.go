package middleware

import (
	"log/slog"
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// Logging returns a middleware that logs every request with its status and
// duration. Errors surface as warn-level entries so they stand out.
func Logging() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			status := ww.Status()
			attrs := []any{
				"method", r.Method,
				"path", r.URL.Path,
				"status", status,
				"remote_addr", r.RemoteAddr,
				"duration_ms", time.Since(start).Milliseconds(),
			}
			if email := GetAdminEmail(r.Context()); email != "" {
				attrs = append(attrs, "admin", email)
			}

			if status >= http.StatusInternalServerError {
				slog.Error("Request failed", attrs...)
			} else if status >= http.StatusBadRequest {
				slog.Warn("Request rejected", attrs...)
			} else {
				slog.Info("Request completed", attrs...)
			}
		})
	}
}
