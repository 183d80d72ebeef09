package chunk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidityLen(t *testing.T) {
	for _, tc := range []struct{ rows, want int }{
		{0, 0}, {1, 1}, {7, 1}, {8, 1}, {9, 2}, {16, 2}, {17, 3}, {100, 13},
	} {
		assert.Equal(t, tc.want, validityLen(tc.rows), "rows=%d", tc.rows)
	}
}

func TestValidityBit(t *testing.T) {
	// LSB-first within each byte.
	mask := []byte{0x13, 0x01}
	want := []bool{true, true, false, false, true, false, false, false, true}
	for i, w := range want {
		assert.Equal(t, w, validityBit(mask, i), "bit %d", i)
	}
}

func TestFillValidity(t *testing.T) {
	t.Run("nil mask means all valid", func(t *testing.T) {
		buf := make([]byte, 8)
		fillValidity(buf, 10, nil)
		assert.Equal(t, []byte{0xFF, 0xFF}, buf[:2])
		for i := 0; i < 10; i++ {
			assert.True(t, validityBit(buf, i), "row %d", i)
		}
	})

	t.Run("mask copied verbatim, tail bits included", func(t *testing.T) {
		buf := make([]byte, 8)
		fillValidity(buf, 5, []byte{0xF3})
		assert.Equal(t, byte(0xF3), buf[0])
	})
}
