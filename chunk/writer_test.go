package chunk

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/columnar"
)

func TestWriter_LayoutFixed(t *testing.T) {
	t.Run("non-nullable", func(t *testing.T) {
		buf, err := NewWriter(int64Meta(false), 0).Encode(columnar.NewInt64Batch([]int64{1, 2, 3}, nil))
		require.NoError(t, err)
		require.Len(t, buf, 3*8)
		assert.Equal(t, uint64(2), binary.LittleEndian.Uint64(buf[8:]))
	})

	t.Run("nullable pads the bitmap to 8 bytes", func(t *testing.T) {
		buf, err := NewWriter(int64Meta(true), 0).Encode(columnar.NewInt64Batch([]int64{1, 2, 3, 4, 5}, []byte{0x13}))
		require.NoError(t, err)
		require.Len(t, buf, 8+5*8)
		assert.Equal(t, byte(0x13), buf[0])
		assert.Equal(t, uint64(1), binary.LittleEndian.Uint64(buf[8:]))
	})

	t.Run("nullable without mask fills all-valid", func(t *testing.T) {
		buf, err := NewWriter(int64Meta(true), 0).Encode(columnar.NewInt64Batch([]int64{1, 2, 3}, nil))
		require.NoError(t, err)
		assert.Equal(t, byte(0xFF), buf[0])
	})
}

func TestWriter_LayoutVarlen(t *testing.T) {
	buf, err := NewWriter(stringMeta(false), 0).Encode(columnar.NewStringBatch([]string{"ab", "", "cde"}, nil))
	require.NoError(t, err)
	// 4 offsets then 5 payload bytes.
	require.Len(t, buf, 4*8+5)
	wantEnds := []uint64{0, 2, 2, 5}
	for i, want := range wantEnds {
		assert.Equal(t, want, binary.LittleEndian.Uint64(buf[i*8:]), "offset %d", i)
	}
	assert.Equal(t, "abcde", string(buf[4*8:]))
}

func TestWriter_EmptyBatch(t *testing.T) {
	for _, meta := range []*columnar.FieldMeta{int64Meta(false), stringMeta(false), jsonMeta(false)} {
		buf, err := NewWriter(meta, 0).Encode(&columnar.Batch{})
		require.NoError(t, err, meta.Type)
		if meta.Type == columnar.DataTypeInt64 {
			assert.Empty(t, buf)
		} else {
			require.Len(t, buf, 8) // single zero offset
			assert.Equal(t, uint64(0), binary.LittleEndian.Uint64(buf))
		}
	}
}

func TestWriter_ValidityErrors(t *testing.T) {
	t.Run("mask on non-nullable field", func(t *testing.T) {
		_, err := NewWriter(int64Meta(false), 0).Encode(columnar.NewInt64Batch([]int64{1, 2, 3}, []byte{0x07}))
		assert.ErrorIs(t, err, ErrLengthMismatch)
	})

	t.Run("mask length disagrees with rows", func(t *testing.T) {
		_, err := NewWriter(int64Meta(true), 0).Encode(columnar.NewInt64Batch(make([]int64, 9), []byte{0xFF}))
		assert.ErrorIs(t, err, ErrLengthMismatch)
	})
}

func TestWriter_ShapeErrors(t *testing.T) {
	t.Run("column shorter than rows", func(t *testing.T) {
		b := &columnar.Batch{Rows: 5, Int64s: []int64{1, 2, 3}}
		_, err := NewWriter(int64Meta(false), 0).Encode(b)
		assert.ErrorIs(t, err, ErrLengthMismatch)
	})

	t.Run("nil batch", func(t *testing.T) {
		_, err := NewWriter(int64Meta(false), 0).Encode(nil)
		assert.ErrorIs(t, err, ErrLengthMismatch)
	})

	t.Run("float vector without dim", func(t *testing.T) {
		meta := &columnar.FieldMeta{Name: "vec", ID: 2, Type: columnar.DataTypeFloatVector}
		_, err := NewWriter(meta, 0).Encode(columnar.NewFloatVectorBatch([]float32{1, 2}, 2, nil))
		assert.ErrorIs(t, err, ErrInvalidDim)
	})

	t.Run("unsupported type", func(t *testing.T) {
		meta := &columnar.FieldMeta{Name: "x", ID: 9, Type: columnar.DataTypeNone}
		_, err := NewWriter(meta, 0).Encode(&columnar.Batch{})
		assert.ErrorIs(t, err, ErrUnsupportedType)
	})
}
