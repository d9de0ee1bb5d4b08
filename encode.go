package onebased

// MarshalText implements encoding.TextMarshaler, rendering the 1-based value
// in decimal.
func (i Index[T]) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts exactly what
// Parse accepts.
func (i *Index[T]) UnmarshalText(text []byte) error {
	v, err := Parse[T](string(text))
	if err != nil {
		return err
	}
	*i = v
	return nil
}

// MarshalJSON encodes the index as a bare JSON number holding the 1-based
// value.
func (i Index[T]) MarshalJSON() ([]byte, error) {
	return []byte(i.String()), nil
}

// UnmarshalJSON decodes a bare JSON number. Zero and out-of-range values are
// rejected; no Index is constructed on failure.
func (i *Index[T]) UnmarshalJSON(data []byte) error {
	return i.UnmarshalText(data)
}
