package onebased

import "errors"

var (
	// ErrZeroIndex is returned when 0 is passed as a 1-based index.
	ErrZeroIndex = errors.New("0 passed as 1-based index")

	// ErrOverflow is returned when a value does not fit the target width,
	// e.g. the width's maximum passed as a 0-based index.
	ErrOverflow = errors.New("value overflows 1-based index width")
)
