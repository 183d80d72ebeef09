package chunk

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/hupe1980/columnar"
	"github.com/hupe1980/columnar/internal/conv"
)

// Writer translates one column batch into a single contiguous byte buffer
// whose layout matches the field's chunk variant (see the package doc for
// the section order). The buffer size is deterministic given the batch.
//
// A Writer is cheap to construct and carries no state between Encode calls.
type Writer struct {
	meta *columnar.FieldMeta
	dim  int
}

// NewWriter creates a writer for one field. dim is the element stride for
// dense vector types and is ignored for scalar fields.
func NewWriter(meta *columnar.FieldMeta, dim int) *Writer {
	return &Writer{meta: meta, dim: dim}
}

// Encode produces the encoded chunk layout for b. It fails fast, producing
// nothing, when the batch shape disagrees with the field descriptor or an
// offset computation would overflow.
func (w *Writer) Encode(b *columnar.Batch) ([]byte, error) {
	if b == nil || b.Rows < 0 {
		return nil, fmt.Errorf("%w: nil or negative batch", ErrLengthMismatch)
	}
	if err := w.checkValidity(b); err != nil {
		return nil, err
	}

	switch w.meta.Type {
	case columnar.DataTypeBool, columnar.DataTypeInt8, columnar.DataTypeInt16,
		columnar.DataTypeInt32, columnar.DataTypeInt64,
		columnar.DataTypeFloat, columnar.DataTypeDouble,
		columnar.DataTypeFloatVector:
		return w.encodeFixed(b)
	case columnar.DataTypeString, columnar.DataTypeVarChar:
		if len(b.Strings) != b.Rows {
			return nil, columnLenErr(w.meta, len(b.Strings), b.Rows)
		}
		return w.encodeVarlen(b, func(i int) int { return len(b.Strings[i]) },
			func(dst []byte, i int) { copy(dst, b.Strings[i]) })
	case columnar.DataTypeJSON:
		if len(b.JSONs) != b.Rows {
			return nil, columnLenErr(w.meta, len(b.JSONs), b.Rows)
		}
		return w.encodeVarlen(b, func(i int) int { return len(b.JSONs[i]) },
			func(dst []byte, i int) { copy(dst, b.JSONs[i]) })
	case columnar.DataTypeArray:
		return w.encodeArray(b)
	case columnar.DataTypeSparseFloatVector:
		if len(b.Sparse) != b.Rows {
			return nil, columnLenErr(w.meta, len(b.Sparse), b.Rows)
		}
		return w.encodeVarlen(b, func(i int) int { return len(b.Sparse[i]) * sparseEntrySize },
			func(dst []byte, i int) {
				for j, e := range b.Sparse[i] {
					binary.LittleEndian.PutUint32(dst[j*sparseEntrySize:], e.Index)
					binary.LittleEndian.PutUint32(dst[j*sparseEntrySize+4:], math.Float32bits(e.Value))
				}
			})
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, w.meta.Type)
	}
}

// checkValidity enforces the mask contract before any layout work happens.
func (w *Writer) checkValidity(b *columnar.Batch) error {
	if b.Validity == nil {
		return nil
	}
	if !w.meta.Nullable {
		return fmt.Errorf("%w: validity mask on non-nullable field %q", ErrLengthMismatch, w.meta.Name)
	}
	if len(b.Validity) != validityLen(b.Rows) {
		return fmt.Errorf("%w: mask has %d bytes, %d rows need %d",
			ErrLengthMismatch, len(b.Validity), b.Rows, validityLen(b.Rows))
	}
	return nil
}

// elemSize resolves the per-row byte size for fixed-width variants.
func (w *Writer) elemSize() (int, error) {
	return fixedElemSize(w.meta.Type, w.dim)
}

func fixedElemSize(t columnar.DataType, dim int) (int, error) {
	if t == columnar.DataTypeFloatVector {
		if dim <= 0 {
			return 0, fmt.Errorf("%w: dim=%d", ErrInvalidDim, dim)
		}
		return conv.MulInt(4, dim)
	}
	if esz := t.FixedSize(); esz > 0 {
		return esz, nil
	}
	return 0, fmt.Errorf("%w: %s is not fixed-width", ErrUnsupportedType, t)
}

// head computes the padded validity section size. The bitmap is padded to
// an 8-byte boundary so the sections after it stay naturally aligned for
// zero-copy reinterpretation.
func (w *Writer) head(rows int) int {
	if !w.meta.Nullable {
		return 0
	}
	return align8(validityLen(rows))
}

func align8(n int) int { return (n + 7) &^ 7 }

func (w *Writer) encodeFixed(b *columnar.Batch) ([]byte, error) {
	esz, err := w.elemSize()
	if err != nil {
		return nil, err
	}
	payloadLen, err := conv.MulInt(b.Rows, esz)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOffsetOverflow, err)
	}
	head := w.head(b.Rows)
	total, err := conv.AddInt(head, payloadLen)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOffsetOverflow, err)
	}

	buf := make([]byte, total)
	if w.meta.Nullable {
		fillValidity(buf, b.Rows, b.Validity)
	}
	p := buf[head:]

	switch w.meta.Type {
	case columnar.DataTypeBool:
		if len(b.Bools) != b.Rows {
			return nil, columnLenErr(w.meta, len(b.Bools), b.Rows)
		}
		for i, v := range b.Bools {
			if v {
				p[i] = 1
			}
		}
	case columnar.DataTypeInt8:
		if len(b.Int8s) != b.Rows {
			return nil, columnLenErr(w.meta, len(b.Int8s), b.Rows)
		}
		for i, v := range b.Int8s {
			p[i] = byte(v)
		}
	case columnar.DataTypeInt16:
		if len(b.Int16s) != b.Rows {
			return nil, columnLenErr(w.meta, len(b.Int16s), b.Rows)
		}
		for i, v := range b.Int16s {
			binary.LittleEndian.PutUint16(p[i*2:], uint16(v))
		}
	case columnar.DataTypeInt32:
		if len(b.Int32s) != b.Rows {
			return nil, columnLenErr(w.meta, len(b.Int32s), b.Rows)
		}
		for i, v := range b.Int32s {
			binary.LittleEndian.PutUint32(p[i*4:], uint32(v))
		}
	case columnar.DataTypeInt64:
		if len(b.Int64s) != b.Rows {
			return nil, columnLenErr(w.meta, len(b.Int64s), b.Rows)
		}
		for i, v := range b.Int64s {
			binary.LittleEndian.PutUint64(p[i*8:], uint64(v))
		}
	case columnar.DataTypeFloat:
		if len(b.Float32s) != b.Rows {
			return nil, columnLenErr(w.meta, len(b.Float32s), b.Rows)
		}
		for i, v := range b.Float32s {
			binary.LittleEndian.PutUint32(p[i*4:], math.Float32bits(v))
		}
	case columnar.DataTypeDouble:
		if len(b.Float64s) != b.Rows {
			return nil, columnLenErr(w.meta, len(b.Float64s), b.Rows)
		}
		for i, v := range b.Float64s {
			binary.LittleEndian.PutUint64(p[i*8:], math.Float64bits(v))
		}
	case columnar.DataTypeFloatVector:
		if len(b.Float32s) != b.Rows*w.dim {
			return nil, columnLenErr(w.meta, len(b.Float32s), b.Rows*w.dim)
		}
		for i, v := range b.Float32s {
			binary.LittleEndian.PutUint32(p[i*4:], math.Float32bits(v))
		}
	}
	return buf, nil
}

// encodeVarlen lays out any offsets+blob variant: rowLen reports each row's
// encoded byte length, fill writes row i into its pre-sliced destination.
// Offsets are built first (cumulative byte ends), then row payloads are
// appended contiguously. A null row contributes a zero-length slice
// (offset[i] == offset[i+1]) no matter what value the decoder supplied.
func (w *Writer) encodeVarlen(b *columnar.Batch, rowLen func(int) int, fill func([]byte, int)) ([]byte, error) {
	if b.Validity != nil {
		inner := rowLen
		rowLen = func(i int) int {
			if !validityBit(b.Validity, i) {
				return 0
			}
			return inner(i)
		}
	}

	head := w.head(b.Rows)
	offLen, err := conv.MulInt(b.Rows+1, 8)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOffsetOverflow, err)
	}

	blobLen := 0
	for i := 0; i < b.Rows; i++ {
		blobLen, err = conv.AddInt(blobLen, rowLen(i))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrOffsetOverflow, err)
		}
	}
	total := head + offLen
	if total, err = conv.AddInt(total, blobLen); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOffsetOverflow, err)
	}

	buf := make([]byte, total)
	if w.meta.Nullable {
		fillValidity(buf, b.Rows, b.Validity)
	}

	offs := buf[head : head+offLen]
	blob := buf[head+offLen:]
	end := uint64(0)
	binary.LittleEndian.PutUint64(offs, 0)
	for i := 0; i < b.Rows; i++ {
		n := rowLen(i)
		if n > 0 {
			fill(blob[end:end+uint64(n)], i)
			end += uint64(n)
		}
		binary.LittleEndian.PutUint64(offs[(i+1)*8:], end)
	}
	return buf, nil
}

func (w *Writer) encodeArray(b *columnar.Batch) ([]byte, error) {
	if len(b.Arrays) != b.Rows {
		return nil, columnLenErr(w.meta, len(b.Arrays), b.Rows)
	}
	et := w.meta.ElementType

	stringElems := et == columnar.DataTypeString || et == columnar.DataTypeVarChar
	esz := 0
	if !stringElems {
		var err error
		if esz, err = fixedElemSize(et, 0); err != nil {
			return nil, fmt.Errorf("array element: %w", err)
		}
	}

	for i := range b.Arrays {
		if b.Arrays[i].ElementType != et {
			return nil, fmt.Errorf("%w: row %d has %s, field declares %s",
				ErrElementMismatch, i, b.Arrays[i].ElementType, et)
		}
	}

	rowLen := func(i int) int {
		a := &b.Arrays[i]
		if !stringElems {
			return a.Len() * esz
		}
		n := 4 + 4*len(a.Strings)
		for _, s := range a.Strings {
			n += len(s)
		}
		return n
	}
	fill := func(dst []byte, i int) {
		a := &b.Arrays[i]
		if !stringElems {
			fillFixedElems(dst, a)
			return
		}
		binary.LittleEndian.PutUint32(dst, uint32(len(a.Strings)))
		ends := dst[4 : 4+4*len(a.Strings)]
		data := dst[4+4*len(a.Strings):]
		pos := uint32(0)
		for j, s := range a.Strings {
			copy(data[pos:], s)
			pos += uint32(len(s))
			binary.LittleEndian.PutUint32(ends[j*4:], pos)
		}
	}
	return w.encodeVarlen(b, rowLen, fill)
}

func fillFixedElems(dst []byte, a *columnar.ScalarArray) {
	switch a.ElementType {
	case columnar.DataTypeBool:
		for i, v := range a.Bools {
			if v {
				dst[i] = 1
			}
		}
	case columnar.DataTypeInt8:
		for i, v := range a.Int8s {
			dst[i] = byte(v)
		}
	case columnar.DataTypeInt16:
		for i, v := range a.Int16s {
			binary.LittleEndian.PutUint16(dst[i*2:], uint16(v))
		}
	case columnar.DataTypeInt32:
		for i, v := range a.Int32s {
			binary.LittleEndian.PutUint32(dst[i*4:], uint32(v))
		}
	case columnar.DataTypeInt64:
		for i, v := range a.Int64s {
			binary.LittleEndian.PutUint64(dst[i*8:], uint64(v))
		}
	case columnar.DataTypeFloat:
		for i, v := range a.Float32s {
			binary.LittleEndian.PutUint32(dst[i*4:], math.Float32bits(v))
		}
	case columnar.DataTypeDouble:
		for i, v := range a.Float64s {
			binary.LittleEndian.PutUint64(dst[i*8:], math.Float64bits(v))
		}
	}
}

func columnLenErr(meta *columnar.FieldMeta, got, want int) error {
	return fmt.Errorf("%w: field %q has %d values for %d rows",
		ErrLengthMismatch, meta.Name, got, want)
}
