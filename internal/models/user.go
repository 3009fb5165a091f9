package models

// User represents a member of the shared-expense group.
//
// Users carry no credentials: the group ledger is maintained by an admin,
// and members are plain display entries referenced by expenses and payments.
type User struct {
	// ID is the unique identifier for the user (UUID format).
	ID string

	// Name is the display name of the user.
	Name string

	// CreatedAt is the Unix timestamp when the user was registered.
	CreatedAt int64
}
