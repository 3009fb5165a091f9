package calculator

import "math"

// centEpsilon is half a cent in currency units. Residual floating noise
// below this threshold is treated as exactly zero.
const centEpsilon = 0.005

// Cents converts a decimal currency amount to integer cents, rounding to
// the nearest cent. Amounts smaller than half a cent in magnitude snap to
// zero so upstream floating noise cannot leak into the ledger.
func Cents(amount float64) int64 {
	if math.Abs(amount) < centEpsilon {
		return 0
	}
	return int64(math.Round(amount * 100))
}

// Decimal converts integer cents back to a decimal currency amount with
// two fractional digits. Used only at display boundaries; all arithmetic
// stays in cents.
func Decimal(cents int64) float64 {
	return float64(cents) / 100
}
