package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/evenly-app/evenly/internal/auth"
	"github.com/evenly-app/evenly/internal/service"
	"github.com/evenly-app/evenly/internal/storage"
)

type handlers struct {
	svcs Services
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type createUserRequest struct {
	Name string `json:"userName"`
}

type createExpenseRequest struct {
	Description    string   `json:"description"`
	TotalAmount    float64  `json:"totalAmount"`
	PayerID        string   `json:"payerId"`
	ParticipantIDs []string `json:"participantIds"`
	DateOfExpense  string   `json:"dateOfExpense"` // RFC 3339; empty means now
}

type createPaymentRequest struct {
	FromUserID    string  `json:"fromUserId"`
	ToUserID      string  `json:"toUserId"`
	Amount        float64 `json:"amount"`
	DateOfPayment string  `json:"dateOfPayment"` // RFC 3339; empty means now
}

func (h *handlers) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	token, err := h.svcs.Auth.Login(req.Email, req.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

func (h *handlers) overview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.svcs.Ledger.Overview(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toOverviewJSON(overview))
}

func (h *handlers) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.svcs.Users.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	out := make([]userJSON, len(users))
	for i, u := range users {
		out[i] = toUserJSON(u)
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *handlers) createUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	user, err := h.svcs.Users.Create(r.Context(), req.Name)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toUserJSON(user))
}

func (h *handlers) deleteUser(w http.ResponseWriter, r *http.Request) {
	if err := h.svcs.Users.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handlers) listExpenses(w http.ResponseWriter, r *http.Request) {
	expenses, err := h.svcs.Expenses.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	out := make([]expenseJSON, len(expenses))
	for i, e := range expenses {
		out[i] = toExpenseJSON(e)
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *handlers) createExpense(w http.ResponseWriter, r *http.Request) {
	var req createExpenseRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	date, err := parseOptionalDate(req.DateOfExpense)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	expense, err := h.svcs.Expenses.Create(r.Context(), service.CreateExpenseInput{
		Description:    req.Description,
		TotalAmount:    req.TotalAmount,
		PayerID:        req.PayerID,
		ParticipantIDs: req.ParticipantIDs,
		Date:           date,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toExpenseJSON(expense))
}

func (h *handlers) deleteExpense(w http.ResponseWriter, r *http.Request) {
	if err := h.svcs.Expenses.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handlers) listPayments(w http.ResponseWriter, r *http.Request) {
	payments, err := h.svcs.Payments.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	out := make([]paymentJSON, len(payments))
	for i, p := range payments {
		out[i] = toPaymentJSON(p)
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *handlers) createPayment(w http.ResponseWriter, r *http.Request) {
	var req createPaymentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	date, err := parseOptionalDate(req.DateOfPayment)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	payment, err := h.svcs.Payments.Create(r.Context(), service.CreatePaymentInput{
		FromUserID: req.FromUserID,
		ToUserID:   req.ToUserID,
		Amount:     req.Amount,
		Date:       date,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toPaymentJSON(payment))
}

// settleDebt records a payment for a suggested transfer, stamped now.
// It is the write half of the "settle" button on a simplified debt or a
// per-expense debt item.
func (h *handlers) settleDebt(w http.ResponseWriter, r *http.Request) {
	var req createPaymentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	payment, err := h.svcs.Payments.Create(r.Context(), service.CreatePaymentInput{
		FromUserID: req.FromUserID,
		ToUserID:   req.ToUserID,
		Amount:     req.Amount,
		Date:       time.Now().UTC(),
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toPaymentJSON(payment))
}

func (h *handlers) deletePayment(w http.ResponseWriter, r *http.Request) {
	if err := h.svcs.Payments.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

func parseOptionalDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	ts, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: must be RFC 3339", raw)
	}
	return ts, nil
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

// writeServiceError maps service and storage errors to HTTP statuses.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err)
	case errors.Is(err, service.ErrUserInvolved):
		writeError(w, http.StatusConflict, err)
	case errors.Is(err, storage.ErrNotFound):
		writeError(w, http.StatusNotFound, err)
	case errors.Is(err, auth.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, err)
	default:
		writeError(w, http.StatusInternalServerError, err)
	}
}
