package calculator

import "testing"

func TestAllocateEqualSplit(t *testing.T) {
	tests := []struct {
		name         string
		totalCents   int64
		participants []string
		wantErr      bool
		wantCents    []int64
	}{
		{
			name:         "10.00 across three gets extra cent to first",
			totalCents:   1000,
			participants: []string{"A", "B", "C"},
			wantCents:    []int64{334, 333, 333},
		},
		{
			name:         "exact division leaves no remainder",
			totalCents:   900,
			participants: []string{"A", "B", "C"},
			wantCents:    []int64{300, 300, 300},
		},
		{
			name:         "remainder spread over first two",
			totalCents:   1001,
			participants: []string{"A", "B", "C"},
			wantCents:    []int64{334, 334, 333},
		},
		{
			name:         "single participant takes everything",
			totalCents:   537,
			participants: []string{"A"},
			wantCents:    []int64{537},
		},
		{
			name:         "zero total allocates zero shares",
			totalCents:   0,
			participants: []string{"A", "B"},
			wantCents:    []int64{0, 0},
		},
		{
			name:         "total smaller than participant count",
			totalCents:   2,
			participants: []string{"A", "B", "C"},
			wantCents:    []int64{1, 1, 0},
		},
		{
			name:         "no participants should error",
			totalCents:   1000,
			participants: []string{},
			wantErr:      true,
		},
		{
			name:         "negative total should error",
			totalCents:   -100,
			participants: []string{"A"},
			wantErr:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shares, err := AllocateEqualSplit(tt.totalCents, tt.participants)
			if (err != nil) != tt.wantErr {
				t.Fatalf("AllocateEqualSplit() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}

			if len(shares) != len(tt.wantCents) {
				t.Fatalf("got %d shares, want %d", len(shares), len(tt.wantCents))
			}
			var sum int64
			for i, share := range shares {
				if share.UserID != tt.participants[i] {
					t.Errorf("share %d user = %s, want %s", i, share.UserID, tt.participants[i])
				}
				if share.OwedCents != tt.wantCents[i] {
					t.Errorf("share %d cents = %d, want %d", i, share.OwedCents, tt.wantCents[i])
				}
				sum += share.OwedCents
			}
			if sum != tt.totalCents {
				t.Errorf("shares sum to %d cents, want %d", sum, tt.totalCents)
			}
		})
	}
}

// Split-sum exactness: every allocation reconstructs the total in cents,
// no matter how awkward the division.
func TestAllocateEqualSplitExactness(t *testing.T) {
	participants := []string{"a", "b", "c", "d", "e", "f", "g"}
	for _, total := range []int64{0, 1, 99, 100, 101, 333, 1000, 12345, 99999} {
		for n := 1; n <= len(participants); n++ {
			shares, err := AllocateEqualSplit(total, participants[:n])
			if err != nil {
				t.Fatalf("AllocateEqualSplit(%d, %d participants) error: %v", total, n, err)
			}
			var sum int64
			for _, share := range shares {
				sum += share.OwedCents
			}
			if sum != total {
				t.Errorf("AllocateEqualSplit(%d, %d participants) sums to %d", total, n, sum)
			}
		}
	}
}
