package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/evenly-app/evenly/internal/calculator"
	"github.com/evenly-app/evenly/internal/metrics"
	"github.com/evenly-app/evenly/internal/models"
	"github.com/evenly-app/evenly/internal/storage"
)

// Overview is the full derived view of the group ledger: net balances,
// the minimal settlement plan, and per-expense outstanding debts.
type Overview struct {
	Balances        []calculator.UserBalance
	SimplifiedDebts []calculator.Transfer

	// PerExpenseDebtsByExpense groups outstanding debts by originating
	// expense after chronological payment attribution.
	PerExpenseDebtsByExpense map[string][]calculator.DebtItem

	// PerExpenseDebtsFlat lists the same debts flat, for bulk settlement.
	PerExpenseDebtsFlat []calculator.DebtItem
}

// LedgerService derives the balance and debt views. It has no write path:
// every call loads one consistent snapshot and recomputes everything from
// scratch, so there is no cached state to invalidate.
type LedgerService struct {
	store storage.Store
}

// NewLedgerService creates a new LedgerService with the given storage backend.
func NewLedgerService(store storage.Store) *LedgerService {
	return &LedgerService{store: store}
}

// Overview computes the current ledger view from a fresh snapshot.
func (s *LedgerService) Overview(ctx context.Context) (*Overview, error) {
	snap, err := s.store.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	overview := deriveOverview(snap)
	metrics.RecomputeDuration.Observe(time.Since(start).Seconds())

	slog.Debug("Ledger recomputed",
		"users", len(snap.Users),
		"expenses", len(snap.Expenses),
		"payments", len(snap.Payments),
		"transfers", len(overview.SimplifiedDebts),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return overview, nil
}

// deriveOverview runs the pure computations over a snapshot.
func deriveOverview(snap *models.Snapshot) *Overview {
	users := make([]calculator.UserForBalance, len(snap.Users))
	for i, u := range snap.Users {
		users[i] = calculator.UserForBalance{ID: u.ID, Name: u.Name}
	}

	expenses := make([]calculator.ExpenseForBalance, len(snap.Expenses))
	for i, e := range snap.Expenses {
		splits := make([]calculator.SplitForBalance, len(e.Splits))
		for j, split := range e.Splits {
			splits[j] = calculator.SplitForBalance{UserID: split.UserID, OwedCents: split.OwedCents}
		}
		expenses[i] = calculator.ExpenseForBalance{
			ID:      e.ID,
			PayerID: e.PayerID,
			Date:    e.Date,
			Splits:  splits,
		}
	}

	payments := make([]calculator.PaymentForBalance, len(snap.Payments))
	for i, p := range snap.Payments {
		payments[i] = calculator.PaymentForBalance{
			FromUserID:  p.FromUserID,
			ToUserID:    p.ToUserID,
			AmountCents: p.AmountCents,
			Date:        p.Date,
		}
	}

	balances := calculator.ComputeBalances(users, expenses, payments)
	transfers := calculator.Simplify(balances)

	// With no settlement path left, any tiny residual balance is noise:
	// force everything to zero rather than display phantom debt.
	if len(transfers) == 0 {
		for i := range balances {
			balances[i].BalanceCents = 0
			balances[i].Balance = 0
		}
	}

	attribution := calculator.AttributePayments(expenses, payments)

	return &Overview{
		Balances:                 balances,
		SimplifiedDebts:          transfers,
		PerExpenseDebtsByExpense: attribution.ByExpense,
		PerExpenseDebtsFlat:      attribution.Flat,
	}
}
