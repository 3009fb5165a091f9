package calculator

import (
	"sort"
	"time"
)

// dateLayout is the wire format for dates. UTC-normalized RFC 3339 strings
// compare lexicographically in chronological order, which the attribution
// scan relies on.
const dateLayout = time.RFC3339

// DebtItem is the remaining debt one user owes another for a specific
// expense, after chronological payment attribution.
type DebtItem struct {
	ExpenseID      string
	Date           string // expense date, RFC 3339, for display and ordering
	FromUserID     string // the split owner who owes
	ToUserID       string // the expense payer who is owed
	RemainingCents int64
	Remaining      float64 // RemainingCents as a two-digit decimal
}

// DebtAttribution is the per-expense view of outstanding debts produced by
// AttributePayments. Only items with remaining cents survive.
type DebtAttribution struct {
	// ByExpense groups the remaining debt items by originating expense,
	// preserving chronological order within each group.
	ByExpense map[string][]DebtItem

	// Flat lists the same items in global chronological order, for bulk
	// "settle all" actions.
	Flat []DebtItem
}

type debtItem struct {
	expenseID      string
	date           string
	fromUserID     string
	toUserID       string
	remainingCents int64
}

// AttributePayments assigns each payment to the oldest outstanding
// per-expense debts between the same (from, to) pair, in chronological
// order.
//
// Every split where the ower differs from the payer seeds one debt item at
// its original owed amount. Payments are applied oldest first; each payment
// settles matching debt items oldest first, possibly spreading across
// several expenses, and never touches an item dated strictly after the
// payment itself. A payment whose (from, to) pair matches no item
// contributes nothing: its leftover cents are discarded rather than
// creating negative debt, so such a payment affects net balances but has no
// visible per-expense effect.
func AttributePayments(expenses []ExpenseForBalance, payments []PaymentForBalance) DebtAttribution {
	var items []debtItem
	for _, e := range expenses {
		for _, s := range e.Splits {
			if s.UserID == e.PayerID {
				continue
			}
			items = append(items, debtItem{
				expenseID:      e.ID,
				date:           e.Date.UTC().Format(dateLayout),
				fromUserID:     s.UserID,
				toUserID:       e.PayerID,
				remainingCents: s.OwedCents,
			})
		}
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].date < items[j].date
	})

	ordered := make([]PaymentForBalance, len(payments))
	copy(ordered, payments)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Date.Before(ordered[j].Date)
	})

	for _, p := range ordered {
		payDate := p.Date.UTC().Format(dateLayout)
		remaining := p.AmountCents
		for i := range items {
			if remaining == 0 {
				break
			}
			item := &items[i]
			if item.date > payDate {
				continue // a payment cannot settle a future debt
			}
			if item.fromUserID != p.FromUserID || item.toUserID != p.ToUserID || item.remainingCents == 0 {
				continue
			}
			applied := item.remainingCents
			if remaining < applied {
				applied = remaining
			}
			item.remainingCents -= applied
			remaining -= applied
		}
	}

	result := DebtAttribution{ByExpense: make(map[string][]DebtItem)}
	for _, item := range items {
		if item.remainingCents <= 0 {
			continue
		}
		out := DebtItem{
			ExpenseID:      item.expenseID,
			Date:           item.date,
			FromUserID:     item.fromUserID,
			ToUserID:       item.toUserID,
			RemainingCents: item.remainingCents,
			Remaining:      Decimal(item.remainingCents),
		}
		result.ByExpense[item.expenseID] = append(result.ByExpense[item.expenseID], out)
		result.Flat = append(result.Flat, out)
	}

	return result
}
