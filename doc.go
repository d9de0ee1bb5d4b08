// Package onebased provides an unsigned integer value type that is always a
// 1-based index.
//
// Humans count from 1 (line numbers, spreadsheet rows, configuration
// entries); programs count from 0. Code that shuffles plain integers between
// the two conventions tends to grow off-by-one bugs, because nothing in the
// type system records which convention a value is in. Index pins the
// convention down: an Index always holds a 1-based position, can never hold
// zero, and converts to the 0-based form only through an explicit accessor.
//
// # Quick Start
//
//	// From a human-facing 1-based position
//	row, err := onebased.FromOneBased[uint32](5)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(row.ZeroBased()) // 4
//
//	// From a machine-facing 0-based offset
//	row, err = onebased.FromZeroBased[uint32](0)
//	fmt.Println(row.OneBased()) // 1
//
//	// From user input
//	row, err = onebased.Parse[uint32]("12")
//
// # Validity
//
// FromOneBased rejects 0 with ErrZeroIndex, since zero is not a 1-based
// position. FromZeroBased rejects the width's maximum value with ErrOverflow,
// since adding one would wrap. These are the only failure paths; neither
// constructor panics.
//
// The Go zero value Index{} is NOT a valid index. Always obtain values from
// FromOneBased, FromZeroBased, Parse, or one of the unmarshalers.
//
// # Widths
//
// Index is generic over the unsigned widths uint8 through uint64 plus uint.
// The aliases U8, U16, U32, U64 and Uint name the common instantiations.
package onebased
