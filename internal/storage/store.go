// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/evenly-app/evenly/internal/models"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

// Store defines the interface for ledger storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL,
// etc.) without changing the service layer.
//
// Referential integrity between users and the financial records is NOT
// enforced here: the service layer checks UserInvolved before deleting a
// user, matching the ownership rules of the domain.
type Store interface {
	// CreateUser persists a new user. The ID and CreatedAt fields are
	// populated by the store if unset.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUser retrieves a user by ID. Returns nil, nil if not found.
	GetUser(ctx context.Context, id string) (*models.User, error)

	// ListUsers retrieves all users ordered by creation time.
	ListUsers(ctx context.Context) ([]*models.User, error)

	// DeleteUser removes a user. Returns ErrNotFound if absent.
	// Callers must check UserInvolved first; the store deletes blindly.
	DeleteUser(ctx context.Context, id string) error

	// UserInvolved reports whether any expense, split, or payment
	// references the user.
	UserInvolved(ctx context.Context, id string) (bool, error)

	// CreateExpense persists an expense together with its splits in one
	// transaction. IDs and CreatedAt are populated by the store if unset.
	CreateExpense(ctx context.Context, expense *models.Expense) error

	// ListExpenses retrieves all expenses with their splits joined in,
	// ordered by expense date.
	ListExpenses(ctx context.Context) ([]*models.Expense, error)

	// DeleteExpense removes an expense and cascades its splits.
	// Returns ErrNotFound if absent.
	DeleteExpense(ctx context.Context, id string) error

	// CreatePayment persists a new payment. The ID and CreatedAt fields
	// are populated by the store if unset.
	CreatePayment(ctx context.Context, payment *models.Payment) error

	// ListPayments retrieves all payments ordered by payment date.
	ListPayments(ctx context.Context) ([]*models.Payment, error)

	// DeletePayment removes a payment. Returns ErrNotFound if absent.
	DeletePayment(ctx context.Context, id string) error

	// Snapshot returns one consistent read of users, expenses (with
	// splits), and payments for derived-view computation.
	Snapshot(ctx context.Context) (*models.Snapshot, error)

	// Close releases any resources held by the store.
	Close() error
}
