package calculator

import "testing"

func TestSimplify(t *testing.T) {
	tests := []struct {
		name     string
		balances []UserBalance
		want     []Transfer
	}{
		{
			name: "smallest obligations settle first",
			balances: []UserBalance{
				{UserID: "A", UserName: "Alice", BalanceCents: 5000},
				{UserID: "B", UserName: "Bob", BalanceCents: -3000},
				{UserID: "C", UserName: "Charlie", BalanceCents: -2000},
			},
			// C(20) is the smallest debtor, so C settles against A first,
			// then B's 30 clears A's remaining 30. Two transfers, no leftover.
			want: []Transfer{
				{FromUserID: "C", FromName: "Charlie", ToUserID: "A", ToName: "Alice", AmountCents: 2000, Amount: 20},
				{FromUserID: "B", FromName: "Bob", ToUserID: "A", ToName: "Alice", AmountCents: 3000, Amount: 30},
			},
		},
		{
			name: "single pair",
			balances: []UserBalance{
				{UserID: "A", UserName: "Alice", BalanceCents: 3333},
				{UserID: "B", UserName: "Bob", BalanceCents: 0},
				{UserID: "C", UserName: "Charlie", BalanceCents: -3333},
			},
			want: []Transfer{
				{FromUserID: "C", FromName: "Charlie", ToUserID: "A", ToName: "Alice", AmountCents: 3333, Amount: 33.33},
			},
		},
		{
			name: "one debtor spread over two creditors",
			balances: []UserBalance{
				{UserID: "A", UserName: "Alice", BalanceCents: 1000},
				{UserID: "B", UserName: "Bob", BalanceCents: 2000},
				{UserID: "C", UserName: "Charlie", BalanceCents: -3000},
			},
			want: []Transfer{
				{FromUserID: "C", FromName: "Charlie", ToUserID: "A", ToName: "Alice", AmountCents: 1000, Amount: 10},
				{FromUserID: "C", FromName: "Charlie", ToUserID: "B", ToName: "Bob", AmountCents: 2000, Amount: 20},
			},
		},
		{
			name: "all zero balances yield no transfers",
			balances: []UserBalance{
				{UserID: "A", UserName: "Alice"},
				{UserID: "B", UserName: "Bob"},
			},
			want: nil,
		},
		{
			name:     "empty input",
			balances: nil,
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Simplify(tt.balances)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d transfers %+v, want %d", len(got), got, len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("transfer %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

// Replaying every emitted transfer against the original balances must drive
// each one to exactly zero, and every transfer must carry a positive amount.
func TestSimplifySettlesAllDebts(t *testing.T) {
	fixtures := [][]UserBalance{
		{
			{UserID: "A", BalanceCents: 6666},
			{UserID: "B", BalanceCents: -3333},
			{UserID: "C", BalanceCents: -3333},
		},
		{
			{UserID: "A", BalanceCents: 1},
			{UserID: "B", BalanceCents: -1},
		},
		{
			{UserID: "A", BalanceCents: 12345},
			{UserID: "B", BalanceCents: -45},
			{UserID: "C", BalanceCents: -300},
			{UserID: "D", BalanceCents: -12000},
		},
		{
			{UserID: "A", BalanceCents: 500},
			{UserID: "B", BalanceCents: 500},
			{UserID: "C", BalanceCents: -250},
			{UserID: "D", BalanceCents: -750},
		},
	}

	for _, balances := range fixtures {
		remaining := balanceByUser(balances)
		transfers := Simplify(balances)

		for _, tr := range transfers {
			if tr.AmountCents <= 0 {
				t.Errorf("transfer %+v has non-positive amount", tr)
			}
			remaining[tr.FromUserID] += tr.AmountCents
			remaining[tr.ToUserID] -= tr.AmountCents
		}

		for userID, cents := range remaining {
			if cents != 0 {
				t.Errorf("user %s left with %d cents after replaying transfers %+v", userID, cents, transfers)
			}
		}
	}
}
