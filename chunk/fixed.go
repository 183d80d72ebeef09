package chunk

import "unsafe"

// FixedWidthChunk holds scalar rows of a known element size, including
// dense float vectors (element size = 4 * dim).
type FixedWidthChunk struct {
	base
	elemSize int
	data     []byte // rows * elemSize payload bytes
}

// ElementSize returns the per-row payload size in bytes.
func (c *FixedWidthChunk) ElementSize() int { return c.elemSize }

// Span returns a zero-copy view over the rows selected by r (nil = all),
// plus a per-row validity indicator when the field is nullable (nil
// otherwise). The span borrows the chunk's backing memory.
//
// Payload bytes at null rows carry whatever placeholder the upstream
// decoder supplied; they are not guaranteed to be zero. Callers must
// consult the validity indicator, never the value, to detect nulls.
func (c *FixedWidthChunk) Span(r *Range) (Span, []bool, error) {
	start, count, err := c.resolve(r)
	if err != nil {
		return Span{}, nil, err
	}
	lo := start * c.elemSize
	hi := lo + count*c.elemSize
	return Span{
		data:     c.data[lo:hi:hi],
		elemSize: c.elemSize,
		rows:     count,
	}, c.validRange(start, count), nil
}

// Span is a borrowed, typed window over fixed-width rows.
type Span struct {
	data     []byte
	elemSize int
	rows     int
}

// Bytes returns the raw payload bytes of the span.
func (s Span) Bytes() []byte { return s.data }

// ElementSize returns the per-row size in bytes.
func (s Span) ElementSize() int { return s.elemSize }

// RowCount returns the number of rows in the span.
func (s Span) RowCount() int { return s.rows }

// Row returns the payload bytes of row i within the span.
func (s Span) Row(i int) []byte {
	lo := i * s.elemSize
	return s.data[lo : lo+s.elemSize : lo+s.elemSize]
}

// Float32s reinterprets the span as a flat float32 sequence. Used for dense
// float vector chunks, where each row contributes elemSize/4 values.
func (s Span) Float32s() ([]float32, error) {
	if s.elemSize%4 != 0 {
		return nil, ErrElementSize
	}
	return viewSlice[float32](s.data), nil
}

// AsSlice reinterprets a span as typed elements, zero-copy when the backing
// bytes are naturally aligned. Fails when sizeof(T) does not match the
// chunk's element size.
func AsSlice[T fixedElem](s Span) ([]T, error) {
	var zero T
	if int(unsafe.Sizeof(zero)) != s.elemSize {
		return nil, ErrElementSize
	}
	return viewSlice[T](s.data), nil
}
