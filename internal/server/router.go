// Package server wires the HTTP API: a thin JSON adapter over the
// services. Request decoding, auth gating, and error mapping happen here;
// all domain decisions live in the service and calculator packages.
package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/evenly-app/evenly/internal/auth"
	"github.com/evenly-app/evenly/internal/middleware"
	"github.com/evenly-app/evenly/internal/service"
)

// Services bundles everything the router needs.
type Services struct {
	Auth     *service.AuthService
	Ledger   *service.LedgerService
	Users    *service.UserService
	Expenses *service.ExpenseService
	Payments *service.PaymentService
}

// NewRouter constructs the API HTTP router.
//
// Read endpoints are open to any group member; mutation endpoints sit
// behind the admin JWT gate.
func NewRouter(svcs Services, jwtManager *auth.JWTManager) http.Handler {
	h := &handlers{svcs: svcs}

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Metrics())
	r.Use(middleware.Logging())

	// Health endpoint is deliberately unauthenticated (used for infra checks).
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/login", h.login)

		r.Get("/overview", h.overview)
		r.Get("/users", h.listUsers)
		r.Get("/expenses", h.listExpenses)
		r.Get("/payments", h.listPayments)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAdmin(jwtManager))

			r.Post("/users", h.createUser)
			r.Delete("/users/{id}", h.deleteUser)

			r.Post("/expenses", h.createExpense)
			r.Delete("/expenses/{id}", h.deleteExpense)

			r.Post("/payments", h.createPayment)
			r.Post("/payments/settle", h.settleDebt)
			r.Delete("/payments/{id}", h.deletePayment)
		})
	})

	return r
}
