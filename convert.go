package onebased

import "fmt"

// Convert converts an index to another width, checking that the position fits
// the target. Widening always succeeds; narrowing fails with a wrapped
// ErrOverflow when the position exceeds the target width's maximum. A
// zero-value input fails with a wrapped ErrZeroIndex rather than propagating
// an invalid index.
func Convert[To, From Unsigned](v Index[From]) (Index[To], error) {
	u := uint64(v.OneBased())
	if u == 0 {
		return Index[To]{}, fmt.Errorf("convert 1-based index: %w", ErrZeroIndex)
	}
	if u > uint64(maxValue[To]()) {
		return Index[To]{}, fmt.Errorf("convert 1-based index %d: %w", u, ErrOverflow)
	}
	return Index[To]{v: To(u)}, nil
}
