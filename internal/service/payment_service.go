package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/evenly-app/evenly/internal/calculator"
	"github.com/evenly-app/evenly/internal/models"
	"github.com/evenly-app/evenly/internal/storage"
)

// CreatePaymentInput carries a request to record a settlement payment.
type CreatePaymentInput struct {
	FromUserID string
	ToUserID   string
	Amount     float64 // decimal currency, converted to cents before use
	Date       time.Time
}

// PaymentService manages settlement payments.
type PaymentService struct {
	store storage.Store
}

// NewPaymentService creates a new PaymentService with the given storage backend.
func NewPaymentService(store storage.Store) *PaymentService {
	return &PaymentService{store: store}
}

// Create validates and records a payment. Self-payments and non-positive
// amounts are rejected before any write.
func (s *PaymentService) Create(ctx context.Context, in CreatePaymentInput) (*models.Payment, error) {
	if in.FromUserID == "" || in.ToUserID == "" {
		return nil, fmt.Errorf("%w: both payer and receiver required", ErrInvalidInput)
	}
	if in.FromUserID == in.ToUserID {
		return nil, fmt.Errorf("%w: payer and receiver must differ", ErrInvalidInput)
	}

	amountCents := calculator.Cents(in.Amount)
	if amountCents <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", ErrInvalidInput)
	}

	for _, id := range []string{in.FromUserID, in.ToUserID} {
		user, err := s.store.GetUser(ctx, id)
		if err != nil {
			return nil, err
		}
		if user == nil {
			return nil, fmt.Errorf("%w: unknown user %s", ErrInvalidInput, id)
		}
	}

	date := in.Date
	if date.IsZero() {
		date = time.Now().UTC()
	}

	payment := &models.Payment{
		FromUserID:  in.FromUserID,
		ToUserID:    in.ToUserID,
		AmountCents: amountCents,
		Date:        date,
	}
	if err := s.store.CreatePayment(ctx, payment); err != nil {
		slog.Error("CreatePayment failed", "error", err)
		return nil, err
	}

	slog.Info("Payment created",
		"payment_id", payment.ID,
		"from", payment.FromUserID,
		"to", payment.ToUserID,
		"amount_cents", payment.AmountCents,
	)
	return payment, nil
}

// List returns all payments, oldest first.
func (s *PaymentService) List(ctx context.Context) ([]*models.Payment, error) {
	return s.store.ListPayments(ctx)
}

// Delete removes a payment by ID.
func (s *PaymentService) Delete(ctx context.Context, id string) error {
	if err := s.store.DeletePayment(ctx, id); err != nil {
		return err
	}
	slog.Info("Payment deleted", "payment_id", id)
	return nil
}
