// Package buf provides overflow-safe arithmetic for element-slot counting.
//
// Slot counts flow into buffer allocations and into a packed metadata word
// that stores count<<1, so every count must survive both the multiplication
// by an element size and a one-bit left shift. The helpers here centralize
// those checks so callers never do unchecked arithmetic on sizes.
package buf

import (
	"fmt"
	"math"
)

// MaxSlots is the largest slot count that remains representable after the
// one-bit shift used by packed size+flag metadata words.
const MaxSlots = math.MaxInt >> 1

// AddOverflowSafe adds a and b, returning ok = false when the result would overflow int.
func AddOverflowSafe(a, b int) (int, bool) {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return 0, false
	case b < 0 && a < math.MinInt-b:
		return 0, false
	default:
		return a + b, true
	}
}

// MulOverflowSafe multiplies non-negative a and b, returning ok = false when
// either operand is negative or the result would overflow int.
func MulOverflowSafe(a, b int) (int, bool) {
	if a < 0 || b < 0 {
		return 0, false
	}
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > math.MaxInt/b {
		return 0, false
	}
	return a * b, true
}

// CheckSlotCount validates a requested slot count: it must be non-negative
// and small enough to pack into a size+flag word.
func CheckSlotCount(n int) error {
	if n < 0 {
		return fmt.Errorf("negative slot count: %d", n)
	}
	if n > MaxSlots {
		return fmt.Errorf("slot count %d exceeds max %d", n, MaxSlots)
	}
	return nil
}

// CheckSlotRange validates that n slots starting at off fit in a buffer of
// bufLen slots. Returns the end offset when valid.
func CheckSlotRange(bufLen, off, n int) (int, error) {
	if off < 0 || n < 0 {
		return 0, fmt.Errorf("negative range: off=%d n=%d", off, n)
	}
	end, ok := AddOverflowSafe(off, n)
	if !ok {
		return 0, fmt.Errorf("overflow: off=%d + n=%d", off, n)
	}
	if end > bufLen {
		return 0, fmt.Errorf("bounds: end=%d > len=%d", end, bufLen)
	}
	return end, nil
}
