package service

import "errors"

var (
	// ErrInvalidInput marks validation failures: missing fields,
	// non-positive amounts, self-payments, unknown users. Always wrapped
	// with detail; nothing is written when it fires.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUserInvolved is returned when deleting a user who is referenced
	// by any expense, split, or payment. Financial records are never
	// cascade-deleted for a user.
	ErrUserInvolved = errors.New("user is involved in expenses or payments")
)
