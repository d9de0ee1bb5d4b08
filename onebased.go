package onebased

import (
	"cmp"
	"strconv"
)

// Unsigned constrains the integer widths an Index can wrap.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

// Index is an immutable 1-based unsigned index of width T.
//
// The stored value is always >= 1 when the Index was produced by a
// constructor. Two Index values of the same width compare with == exactly
// when their positions are equal; this holds in both the 1-based and the
// 0-based projection, since the mapping between them is a strictly monotonic
// bijection.
//
// The zero value is invalid. See the package documentation.
type Index[T Unsigned] struct {
	v T
}

// Aliases for the common instantiations.
type (
	U8   = Index[uint8]
	U16  = Index[uint16]
	U32  = Index[uint32]
	U64  = Index[uint64]
	Uint = Index[uint]
)

// maxValue is the maximum representable value of T.
func maxValue[T Unsigned]() T {
	return ^T(0)
}

// FromOneBased creates an Index from a value that is already 1-based.
// Returns ErrZeroIndex if v is 0.
func FromOneBased[T Unsigned](v T) (Index[T], error) {
	if v == 0 {
		return Index[T]{}, ErrZeroIndex
	}
	return Index[T]{v: v}, nil
}

// FromZeroBased creates an Index from a 0-based value.
// Returns ErrOverflow if v is the maximum value of T, since v+1 would wrap.
func FromZeroBased[T Unsigned](v T) (Index[T], error) {
	if v == maxValue[T]() {
		return Index[T]{}, ErrOverflow
	}
	return Index[T]{v: v + 1}, nil
}

// OneBased returns the 1-based value. Never 0 for a constructor-produced
// Index.
func (i Index[T]) OneBased() T {
	return i.v
}

// ZeroBased returns the 0-based value.
func (i Index[T]) ZeroBased() T {
	return i.v - 1
}

// Compare orders indices by position. Suitable for slices.SortFunc.
func (i Index[T]) Compare(o Index[T]) int {
	return cmp.Compare(i.v, o.v)
}

// Less reports whether i is positioned before o.
func (i Index[T]) Less(o Index[T]) bool {
	return i.v < o.v
}

// String renders the 1-based value in decimal.
func (i Index[T]) String() string {
	return strconv.FormatUint(uint64(i.v), 10)
}
