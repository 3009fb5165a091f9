// Package calculator implements the balance and debt computations for a
// shared-expense group. All functions are pure: they take an in-memory
// snapshot of the group's records and derive views from scratch, with every
// amount handled as integer cents.
package calculator

import "time"

// UserForBalance carries the minimal user information needed for balance
// calculations.
type UserForBalance struct {
	ID   string
	Name string
}

// SplitForBalance is one participant's owed portion of an expense.
type SplitForBalance struct {
	UserID    string
	OwedCents int64
}

// ExpenseForBalance carries the minimal expense information needed for
// balance calculations and temporal debt attribution.
type ExpenseForBalance struct {
	ID      string
	PayerID string
	Date    time.Time
	Splits  []SplitForBalance
}

// PaymentForBalance carries the minimal payment information needed for
// balance calculations and temporal debt attribution.
type PaymentForBalance struct {
	FromUserID  string // Who paid (debtor settling up)
	ToUserID    string // Who received (creditor being paid)
	AmountCents int64
	Date        time.Time
}

// UserBalance is one user's net position across all expenses and payments.
// Positive means the group owes the user; negative means the user owes.
type UserBalance struct {
	UserID       string
	UserName     string
	BalanceCents int64
	Balance      float64 // BalanceCents as a two-digit decimal, for display
}

// ComputeBalances folds the full set of expenses and payments into one net
// balance per user.
//
// Algorithm:
//   - For each split where the ower is not the payer: the payer's balance
//     rises by the owed cents, the ower's falls by the same. Self-splits
//     are no-ops.
//   - For each payment: the sender's balance rises, the receiver's falls.
//     A payment cancels debt, mirroring an expense in reverse.
//
// Users referenced by an expense or payment but missing from users are
// tracked too, appended in encounter order with an empty display name.
//
// The results sum to exactly zero: any residual cents left by upstream
// rounding are absorbed into the first entry of largest magnitude, so the
// conservation invariant holds deterministically.
func ComputeBalances(users []UserForBalance, expenses []ExpenseForBalance, payments []PaymentForBalance) []UserBalance {
	cents := make(map[string]int64, len(users))
	names := make(map[string]string, len(users))
	order := make([]string, 0, len(users))

	track := func(id string) {
		if _, ok := cents[id]; !ok {
			cents[id] = 0
			order = append(order, id)
		}
	}

	for _, u := range users {
		track(u.ID)
		names[u.ID] = u.Name
	}

	for _, e := range expenses {
		track(e.PayerID)
		for _, s := range e.Splits {
			track(s.UserID)
			if s.UserID == e.PayerID {
				continue // payer owing themselves nets out
			}
			cents[e.PayerID] += s.OwedCents
			cents[s.UserID] -= s.OwedCents
		}
	}

	for _, p := range payments {
		track(p.FromUserID)
		track(p.ToUserID)
		cents[p.FromUserID] += p.AmountCents
		cents[p.ToUserID] -= p.AmountCents
	}

	balances := make([]UserBalance, 0, len(order))
	var total int64
	for _, id := range order {
		balances = append(balances, UserBalance{
			UserID:       id,
			UserName:     names[id],
			BalanceCents: cents[id],
		})
		total += cents[id]
	}

	// Conservation: total debt must equal total credit. Force the sum to
	// zero by adjusting the first largest-magnitude balance by the exact
	// leftover, so rounding error lands on one deterministic user instead
	// of leaving the ledger globally inconsistent.
	if total != 0 && len(balances) > 0 {
		target := 0
		for i := 1; i < len(balances); i++ {
			if abs64(balances[i].BalanceCents) > abs64(balances[target].BalanceCents) {
				target = i
			}
		}
		balances[target].BalanceCents -= total
	}

	for i := range balances {
		balances[i].Balance = Decimal(balances[i].BalanceCents)
	}

	return balances
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
