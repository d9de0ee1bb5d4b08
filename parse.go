package onebased

import (
	"fmt"
	"math/bits"
	"strconv"
)

// bitSize is the width of T in bits.
func bitSize[T Unsigned]() int {
	return bits.Len64(uint64(maxValue[T]()))
}

// Parse parses s as a decimal 1-based index of width T.
//
// Syntax and range errors from strconv are returned wrapped (match with
// errors.As on *strconv.NumError); a syntactically valid "0" fails with
// ErrZeroIndex.
func Parse[T Unsigned](s string) (Index[T], error) {
	u, err := strconv.ParseUint(s, 10, bitSize[T]())
	if err != nil {
		return Index[T]{}, fmt.Errorf("parse 1-based index %q: %w", s, err)
	}
	if u == 0 {
		return Index[T]{}, fmt.Errorf("parse 1-based index %q: %w", s, ErrZeroIndex)
	}
	return Index[T]{v: T(u)}, nil
}
