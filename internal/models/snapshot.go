package models

// Snapshot is one consistent read of the full record set. The derived
// balance and debt views are recomputed from scratch over a snapshot on
// every read; nothing derived is ever persisted.
type Snapshot struct {
	Users    []*User
	Expenses []*Expense
	Payments []*Payment
}
