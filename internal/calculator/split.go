package calculator

import "fmt"

// SplitShare is one participant's allocated portion of an expense total.
type SplitShare struct {
	UserID    string
	OwedCents int64
}

// AllocateEqualSplit divides totalCents equally among the given
// participants, in cents, such that the shares reconstruct the total
// exactly. Every participant gets floor(total/N); the leftover cents are
// handed out one each to the first participants in the order supplied by
// the caller. Floating division never touches the amounts, so no cent is
// ever left unaccounted for.
func AllocateEqualSplit(totalCents int64, participantIDs []string) ([]SplitShare, error) {
	if len(participantIDs) == 0 {
		return nil, fmt.Errorf("must have at least one participant")
	}
	if totalCents < 0 {
		return nil, fmt.Errorf("total amount cannot be negative")
	}

	n := int64(len(participantIDs))
	base := totalCents / n
	remainder := totalCents - base*n

	shares := make([]SplitShare, len(participantIDs))
	for i, id := range participantIDs {
		owed := base
		if int64(i) < remainder {
			owed++
		}
		shares[i] = SplitShare{UserID: id, OwedCents: owed}
	}

	return shares, nil
}
