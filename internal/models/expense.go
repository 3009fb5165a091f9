package models

import "time"

// Expense represents a cost paid by one user on behalf of several.
// It owns a collection of Splits whose owed cents always sum to TotalCents.
type Expense struct {
	// ID is the unique identifier for the expense (UUID format).
	ID string

	// Description is the human-readable label (e.g., "Groceries").
	Description string

	// TotalCents is the full expense amount in integer cents.
	TotalCents int64

	// PayerID references the User who paid the expense.
	PayerID string

	// Date is when the expense occurred. Used for chronological ordering
	// and for attributing payments to the oldest outstanding debts.
	Date time.Time

	// Splits are the per-participant owed portions. Invariant: the owed
	// cents across all splits sum exactly to TotalCents.
	Splits []Split

	// CreatedAt is the Unix timestamp when the expense was recorded.
	CreatedAt int64
}

// Split is one participant's owed portion of an Expense.
// Splits are owned by their parent expense and cascade-deleted with it.
type Split struct {
	// ID is the unique identifier for the split (UUID format).
	ID string

	// ExpenseID references the owning Expense.
	ExpenseID string

	// UserID references the User who owes this portion.
	UserID string

	// OwedCents is the owed amount in integer cents.
	OwedCents int64
}
