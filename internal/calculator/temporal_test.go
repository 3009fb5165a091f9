package calculator

import (
	"testing"
	"time"
)

func day(n int) time.Time {
	return time.Date(2024, 3, n, 0, 0, 0, 0, time.UTC)
}

func TestAttributePayments(t *testing.T) {
	expenses := []ExpenseForBalance{
		{
			ID: "groceries", PayerID: "A", Date: day(1),
			Splits: []SplitForBalance{
				{UserID: "A", OwedCents: 1000}, // self-split, no debt item
				{UserID: "B", OwedCents: 1000},
			},
		},
		{
			ID: "utilities", PayerID: "A", Date: day(5),
			Splits: []SplitForBalance{
				{UserID: "B", OwedCents: 500},
				{UserID: "C", OwedCents: 500},
			},
		},
	}

	t.Run("no payments leaves every debt outstanding", func(t *testing.T) {
		got := AttributePayments(expenses, nil)
		if len(got.Flat) != 3 {
			t.Fatalf("got %d debt items, want 3", len(got.Flat))
		}
		if len(got.ByExpense["groceries"]) != 1 || len(got.ByExpense["utilities"]) != 2 {
			t.Errorf("grouping = %+v", got.ByExpense)
		}
	})

	t.Run("payment settles oldest matching debt first", func(t *testing.T) {
		payments := []PaymentForBalance{
			{FromUserID: "B", ToUserID: "A", AmountCents: 1200, Date: day(10)},
		}
		got := AttributePayments(expenses, payments)

		// B's 12.00 clears the 10.00 groceries debt fully and eats 2.00
		// of the 5.00 utilities debt.
		if items := got.ByExpense["groceries"]; len(items) != 0 {
			t.Errorf("groceries debts remaining: %+v", items)
		}
		items := got.ByExpense["utilities"]
		if len(items) != 2 {
			t.Fatalf("utilities items = %+v, want 2", items)
		}
		for _, item := range items {
			switch item.FromUserID {
			case "B":
				if item.RemainingCents != 300 {
					t.Errorf("B utilities remaining = %d, want 300", item.RemainingCents)
				}
			case "C":
				if item.RemainingCents != 500 {
					t.Errorf("C utilities remaining = %d, want 500", item.RemainingCents)
				}
			default:
				t.Errorf("unexpected debtor %s", item.FromUserID)
			}
		}
	})

	t.Run("payment cannot settle a future debt", func(t *testing.T) {
		payments := []PaymentForBalance{
			// Paid after groceries but before utilities: only groceries
			// is eligible; the remainder is discarded.
			{FromUserID: "B", ToUserID: "A", AmountCents: 1200, Date: day(3)},
		}
		got := AttributePayments(expenses, payments)

		if items := got.ByExpense["groceries"]; len(items) != 0 {
			t.Errorf("groceries debts remaining: %+v", items)
		}
		for _, item := range got.ByExpense["utilities"] {
			if item.FromUserID == "B" && item.RemainingCents != 500 {
				t.Errorf("future utilities debt touched: remaining = %d", item.RemainingCents)
			}
		}
	})

	t.Run("unmatched payment pair contributes nothing", func(t *testing.T) {
		payments := []PaymentForBalance{
			{FromUserID: "C", ToUserID: "B", AmountCents: 9999, Date: day(10)},
		}
		got := AttributePayments(expenses, payments)
		if len(got.Flat) != 3 {
			t.Errorf("got %d debt items, want 3 untouched", len(got.Flat))
		}
	})

	t.Run("payments apply in chronological order regardless of input order", func(t *testing.T) {
		payments := []PaymentForBalance{
			// Listed newest first; attribution must still run oldest first.
			{FromUserID: "B", ToUserID: "A", AmountCents: 700, Date: day(12)},
			{FromUserID: "B", ToUserID: "A", AmountCents: 400, Date: day(2)},
		}
		got := AttributePayments(expenses, payments)

		// Day 2 payment: groceries only (utilities not incurred yet),
		// 1000 -> 600. Day 12 payment: clears the 600, then 100 into
		// utilities, 500 -> 400.
		if items := got.ByExpense["groceries"]; len(items) != 0 {
			t.Errorf("groceries debts remaining: %+v", items)
		}
		for _, item := range got.ByExpense["utilities"] {
			if item.FromUserID == "B" && item.RemainingCents != 400 {
				t.Errorf("B utilities remaining = %d, want 400", item.RemainingCents)
			}
		}
	})

	t.Run("remaining cents never go negative", func(t *testing.T) {
		payments := []PaymentForBalance{
			{FromUserID: "B", ToUserID: "A", AmountCents: 100000, Date: day(20)},
			{FromUserID: "C", ToUserID: "A", AmountCents: 100000, Date: day(20)},
		}
		got := AttributePayments(expenses, payments)
		if len(got.Flat) != 0 {
			t.Errorf("overpayment left debts: %+v", got.Flat)
		}
		// Surviving items are filtered to remaining > 0, so re-run with a
		// partial payment and check the invariant on what remains.
		got = AttributePayments(expenses, []PaymentForBalance{
			{FromUserID: "B", ToUserID: "A", AmountCents: 999, Date: day(20)},
		})
		for _, item := range got.Flat {
			if item.RemainingCents < 0 {
				t.Errorf("debt item %+v has negative remaining", item)
			}
		}
	})
}
