package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/evenly-app/evenly/internal/auth"
	"github.com/evenly-app/evenly/internal/config"
	"github.com/evenly-app/evenly/internal/server"
	"github.com/evenly-app/evenly/internal/service"
	"github.com/evenly-app/evenly/internal/storage/sqlite"
	"github.com/evenly-app/evenly/pkg/logging"
)

func main() {
	logging.Setup()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.DBPath)

	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)
	authenticator := auth.NewAdminAuthenticator(cfg.AdminEmail, cfg.AdminPasswordHash)

	svcs := server.Services{
		Auth:     service.NewAuthService(authenticator, jwtManager, slog.Default()),
		Ledger:   service.NewLedgerService(store),
		Users:    service.NewUserService(store),
		Expenses: service.NewExpenseService(store),
		Payments: service.NewPaymentService(store),
	}

	handler := corsMiddleware(server.NewRouter(svcs, jwtManager))

	// Wrap with h2c so HTTP/2 clients work without TLS termination in front.
	h2cHandler := h2c.NewHandler(handler, &http2.Server{})

	addr := ":" + cfg.Port
	slog.Info("Server starting", "address", addr, "url", fmt.Sprintf("http://localhost%s", addr))
	if err := http.ListenAndServe(addr, h2cHandler); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

// corsMiddleware adds CORS headers for browser access.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
