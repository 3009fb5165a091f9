package calculator

import "sort"

// Transfer is one suggested settlement payment produced by Simplify.
type Transfer struct {
	FromUserID  string
	FromName    string
	ToUserID    string
	ToName      string
	AmountCents int64
	Amount      float64 // AmountCents as a two-digit decimal, for display
}

type party struct {
	userID         string
	userName       string
	remainingCents int64
}

// Simplify reduces a set of net balances to an ordered list of transfers
// that settles every debt, minimizing the transfer count via greedy
// matching.
//
// Zero balances are dropped. Debtors and creditors are each sorted
// ascending by the magnitude of their remaining obligation, then the
// smallest-remaining debtor is repeatedly matched against the
// smallest-remaining creditor for min(debtor, creditor) cents until either
// queue empties. Given balances that sum to zero, both queues exhaust
// together.
//
// This is a fast O(n log n) approximation: the theoretical minimum
// transaction count is a subset-sum-style optimization not attempted here.
func Simplify(balances []UserBalance) []Transfer {
	var debtors, creditors []party
	for _, b := range balances {
		switch {
		case b.BalanceCents < 0:
			debtors = append(debtors, party{b.UserID, b.UserName, -b.BalanceCents})
		case b.BalanceCents > 0:
			creditors = append(creditors, party{b.UserID, b.UserName, b.BalanceCents})
		}
	}

	sort.SliceStable(debtors, func(i, j int) bool {
		return debtors[i].remainingCents < debtors[j].remainingCents
	})
	sort.SliceStable(creditors, func(i, j int) bool {
		return creditors[i].remainingCents < creditors[j].remainingCents
	})

	var transfers []Transfer
	for len(debtors) > 0 && len(creditors) > 0 {
		debtor := &debtors[0]
		creditor := &creditors[0]

		settle := debtor.remainingCents
		if creditor.remainingCents < settle {
			settle = creditor.remainingCents
		}

		if settle > 0 {
			transfers = append(transfers, Transfer{
				FromUserID:  debtor.userID,
				FromName:    debtor.userName,
				ToUserID:    creditor.userID,
				ToName:      creditor.userName,
				AmountCents: settle,
				Amount:      Decimal(settle),
			})
		}

		debtor.remainingCents -= settle
		creditor.remainingCents -= settle

		if debtor.remainingCents == 0 {
			debtors = debtors[1:]
		}
		if creditor.remainingCents == 0 {
			creditors = creditors[1:]
		}
	}

	return transfers
}
