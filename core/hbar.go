package core

import "math"

// TinybarsPerHbar is the integer scale factor between hbar and tinybar.
const TinybarsPerHbar int64 = 100_000_000

// Hbar is a signed amount of tinybars. Arithmetic is checked: an overflow is
// surfaced as ErrHbarOverflow rather than silently wrapped.
type Hbar int64

// HbarFromTinybars constructs an Hbar from a raw tinybar amount.
func HbarFromTinybars(tinybars int64) Hbar { return Hbar(tinybars) }

// HbarFrom constructs an Hbar from a whole-hbar amount, checked for overflow.
func HbarFrom(hbars int64) (Hbar, error) {
	if hbars != 0 && (hbars > math.MaxInt64/TinybarsPerHbar || hbars < math.MinInt64/TinybarsPerHbar) {
		return 0, ErrHbarOverflow
	}
	return Hbar(hbars * TinybarsPerHbar), nil
}

// AsTinybars returns the raw tinybar amount.
func (h Hbar) AsTinybars() int64 { return int64(h) }

// Add returns h+o, checked for signed 64-bit overflow.
func (h Hbar) Add(o Hbar) (Hbar, error) {
	sum := int64(h) + int64(o)
	if (o > 0 && sum < int64(h)) || (o < 0 && sum > int64(h)) {
		return 0, ErrHbarOverflow
	}
	return Hbar(sum), nil
}

// Negate returns -h, checked for the MinInt64 edge case (which has no
// positive counterpart in two's complement).
func (h Hbar) Negate() (Hbar, error) {
	if h == math.MinInt64 {
		return 0, ErrHbarOverflow
	}
	return -h, nil
}
