package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/evenly-app/evenly/internal/calculator"
	"github.com/evenly-app/evenly/internal/models"
	"github.com/evenly-app/evenly/internal/storage"
)

// CreateExpenseInput carries a request to record a new expense.
type CreateExpenseInput struct {
	Description    string
	TotalAmount    float64 // decimal currency, converted to cents before use
	PayerID        string
	ParticipantIDs []string // equal-split participants, order fixes remainder cents
	Date           time.Time
}

// ExpenseService manages expense records and their splits.
type ExpenseService struct {
	store storage.Store
}

// NewExpenseService creates a new ExpenseService with the given storage backend.
func NewExpenseService(store storage.Store) *ExpenseService {
	return &ExpenseService{store: store}
}

// Create validates the input, allocates equal splits in exact cents, and
// persists the expense with its splits in one transaction. No partial
// write occurs on validation failure.
func (s *ExpenseService) Create(ctx context.Context, in CreateExpenseInput) (*models.Expense, error) {
	in.Description = strings.TrimSpace(in.Description)
	if in.Description == "" {
		return nil, fmt.Errorf("%w: description required", ErrInvalidInput)
	}
	if in.PayerID == "" {
		return nil, fmt.Errorf("%w: payer required", ErrInvalidInput)
	}
	if len(in.ParticipantIDs) == 0 {
		return nil, fmt.Errorf("%w: at least one participant required", ErrInvalidInput)
	}

	totalCents := calculator.Cents(in.TotalAmount)
	if totalCents <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", ErrInvalidInput)
	}

	if err := s.verifyUsers(ctx, append([]string{in.PayerID}, in.ParticipantIDs...)); err != nil {
		return nil, err
	}

	shares, err := calculator.AllocateEqualSplit(totalCents, in.ParticipantIDs)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	date := in.Date
	if date.IsZero() {
		date = time.Now().UTC()
	}

	expense := &models.Expense{
		Description: in.Description,
		TotalCents:  totalCents,
		PayerID:     in.PayerID,
		Date:        date,
	}
	for _, share := range shares {
		expense.Splits = append(expense.Splits, models.Split{
			UserID:    share.UserID,
			OwedCents: share.OwedCents,
		})
	}

	if err := s.store.CreateExpense(ctx, expense); err != nil {
		slog.Error("CreateExpense failed", "error", err)
		return nil, err
	}

	slog.Info("Expense created",
		"expense_id", expense.ID,
		"payer_id", expense.PayerID,
		"total_cents", expense.TotalCents,
		"participants", len(expense.Splits),
	)
	return expense, nil
}

// List returns all expenses with their splits, oldest first.
func (s *ExpenseService) List(ctx context.Context) ([]*models.Expense, error) {
	return s.store.ListExpenses(ctx)
}

// Delete removes an expense; its splits cascade with it.
func (s *ExpenseService) Delete(ctx context.Context, id string) error {
	if err := s.store.DeleteExpense(ctx, id); err != nil {
		return err
	}
	slog.Info("Expense deleted", "expense_id", id)
	return nil
}

func (s *ExpenseService) verifyUsers(ctx context.Context, ids []string) error {
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		user, err := s.store.GetUser(ctx, id)
		if err != nil {
			return err
		}
		if user == nil {
			return fmt.Errorf("%w: unknown user %s", ErrInvalidInput, id)
		}
	}
	return nil
}
