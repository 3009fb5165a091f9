package models

import "time"

// Payment represents a settlement transfer between two users.
// A payment reduces outstanding debt from the payer toward the receiver;
// it is independent of any specific expense unless attributed after the
// fact by the temporal debt allocator.
type Payment struct {
	// ID is the unique identifier for the payment (UUID format).
	ID string

	// FromUserID references the User who paid (debtor settling up).
	FromUserID string

	// ToUserID references the User who received the payment.
	ToUserID string

	// AmountCents is the payment amount in integer cents.
	AmountCents int64

	// Date is when the payment was made.
	Date time.Time

	// CreatedAt is the Unix timestamp when the payment was recorded.
	CreatedAt int64
}
