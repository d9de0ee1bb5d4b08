package onebased

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert(t *testing.T) {
	t.Run("widen preserves position", func(t *testing.T) {
		v8, err := FromOneBased[uint8](1)
		require.NoError(t, err)

		v16, err := Convert[uint16](v8)
		require.NoError(t, err)
		assert.Equal(t, uint16(0), v16.ZeroBased())

		v32, err := Convert[uint32](v16)
		require.NoError(t, err)
		assert.Equal(t, uint32(0), v32.ZeroBased())

		v64, err := Convert[uint64](v32)
		require.NoError(t, err)
		assert.Equal(t, uint64(0), v64.ZeroBased())
	})

	t.Run("narrow in range", func(t *testing.T) {
		v64, err := FromOneBased[uint64](math.MaxUint8)
		require.NoError(t, err)

		v8, err := Convert[uint8](v64)
		require.NoError(t, err)
		assert.Equal(t, uint8(math.MaxUint8), v8.OneBased())
	})

	t.Run("narrow out of range fails", func(t *testing.T) {
		v32, err := FromOneBased[uint32](math.MaxUint16 + 1)
		require.NoError(t, err)
		_, err = Convert[uint16](v32)
		assert.ErrorIs(t, err, ErrOverflow)

		v64, err := FromOneBased[uint64](math.MaxUint32 + 1)
		require.NoError(t, err)
		_, err = Convert[uint32](v64)
		assert.ErrorIs(t, err, ErrOverflow)

		v16, err := FromOneBased[uint16](math.MaxUint8 + 1)
		require.NoError(t, err)
		_, err = Convert[uint8](v16)
		assert.ErrorIs(t, err, ErrOverflow)
	})

	t.Run("zero value input fails", func(t *testing.T) {
		var invalid Index[uint32]
		_, err := Convert[uint64](invalid)
		assert.ErrorIs(t, err, ErrZeroIndex)
	})
}
