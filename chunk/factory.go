package chunk

import (
	"fmt"
	"os"

	"github.com/hupe1980/columnar"
	"github.com/hupe1980/columnar/internal/conv"
	"github.com/hupe1980/columnar/internal/mmap"
)

// New encodes b and returns the matching chunk variant backed by a heap
// buffer the chunk owns. Dispatch is purely a function of the field's type
// tag (and element type for arrays); the payload is never probed.
func New(meta *columnar.FieldMeta, dim int, b *columnar.Batch, opts ...Option) (Chunk, error) {
	o := defaultOptions()
	for _, fn := range opts {
		fn(o)
	}

	buf, err := NewWriter(meta, dim).Encode(b)
	if err != nil {
		return nil, err
	}
	pay := &payload{data: buf, size: int64(len(buf)), mode: modeOwned}
	c, err := newFromEncoded(meta, dim, b.Rows, buf, pay)
	if err != nil {
		return nil, err
	}
	o.logger.Debug("chunk created",
		"field", meta.String(), "rows", b.Rows, "size", len(buf), "mapped", false)
	return c, nil
}

// NewMapped encodes b, writes the layout into f starting at offset, extends
// the file to the next page boundary, and returns a chunk borrowing a
// read-only mapping of that region. The chunk's Size() is the page-padded
// length; callers place the next chunk at offset + Size().
//
// The factory does not track previously placed chunks; offset bookkeeping
// belongs to the caller, and concurrent callers must target disjoint
// offset ranges.
func NewMapped(meta *columnar.FieldMeta, dim int, f *os.File, offset int64, b *columnar.Batch, opts ...Option) (Chunk, error) {
	o := defaultOptions()
	for _, fn := range opts {
		fn(o)
	}

	buf, err := NewWriter(meta, dim).Encode(b)
	if err != nil {
		return nil, err
	}
	return newMapped(meta, dim, b.Rows, f, offset, buf, o)
}

// NewMappedEncoded places an already encoded layout. It exists so callers
// that encode many fields concurrently (see package chunkfile) do not pay
// for a second encode; rows must match the batch the buffer was built from.
func NewMappedEncoded(meta *columnar.FieldMeta, dim, rows int, f *os.File, offset int64, encoded []byte, opts ...Option) (Chunk, error) {
	o := defaultOptions()
	for _, fn := range opts {
		fn(o)
	}
	return newMapped(meta, dim, rows, f, offset, encoded, o)
}

func newMapped(meta *columnar.FieldMeta, dim, rows int, f *os.File, offset int64, encoded []byte, o *options) (Chunk, error) {
	if f == nil {
		return nil, fmt.Errorf("%w: nil file", ErrInvalidFile)
	}
	page := int64(o.pageSize)
	if offset < 0 || offset%page != 0 {
		return nil, fmt.Errorf("%w: offset %d is not a multiple of page size %d",
			ErrInvalidFile, offset, page)
	}

	if len(encoded) > 0 {
		if _, err := f.WriteAt(encoded, offset); err != nil {
			return nil, fmt.Errorf("%w: write chunk at offset %d: %v", ErrInvalidFile, offset, err)
		}
	}

	// Round up to the next page boundary; the gap bytes are unspecified.
	padded := (int64(len(encoded)) + page - 1) / page * page

	// The mapping must be backed by real file length, padding included.
	fi, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("%w: stat: %v", ErrInvalidFile, err)
	}
	if fi.Size() < offset+padded {
		if err := f.Truncate(offset + padded); err != nil {
			return nil, fmt.Errorf("%w: extend to %d: %v", ErrInvalidFile, offset+padded, err)
		}
	}

	m, err := mmap.MapRegion(f, offset, padded)
	if err != nil {
		return nil, fmt.Errorf("map chunk region: %w", err)
	}
	pay := &payload{data: m.Bytes(), size: padded, mode: modeMapped, mapping: m}
	c, err := newFromEncoded(meta, dim, rows, m.Bytes(), pay)
	if err != nil {
		m.Close()
		return nil, err
	}
	o.logger.Debug("chunk created",
		"field", meta.String(), "rows", rows, "size", padded, "offset", offset, "mapped", true)
	return c, nil
}

// newFromEncoded binds an encoded layout to its chunk variant. The section
// boundaries are recomputed from (meta, dim, rows); for mapped chunks the
// buffer may be longer than the logical layout (page padding).
func newFromEncoded(meta *columnar.FieldMeta, dim, rows int, data []byte, pay *payload) (Chunk, error) {
	if rows < 0 {
		return nil, fmt.Errorf("%w: negative row count", ErrLengthMismatch)
	}

	head := 0
	var validity []byte
	if meta.Nullable {
		n := validityLen(rows)
		head = align8(n)
		if len(data) < head {
			return nil, ErrTruncated
		}
		validity = data[:n:n]
	}
	body := data[head:]
	b := base{meta: meta, rows: rows, validity: validity, pay: pay}

	switch meta.Type {
	case columnar.DataTypeBool, columnar.DataTypeInt8, columnar.DataTypeInt16,
		columnar.DataTypeInt32, columnar.DataTypeInt64,
		columnar.DataTypeFloat, columnar.DataTypeDouble,
		columnar.DataTypeFloatVector:
		esz, err := fixedElemSize(meta.Type, dim)
		if err != nil {
			return nil, err
		}
		n, err := conv.MulInt(rows, esz)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrOffsetOverflow, err)
		}
		if len(body) < n {
			return nil, ErrTruncated
		}
		return &FixedWidthChunk{base: b, elemSize: esz, data: body[:n:n]}, nil

	case columnar.DataTypeString, columnar.DataTypeVarChar:
		offs, blob, err := splitVarlen(body, rows)
		if err != nil {
			return nil, err
		}
		return &StringChunk{base: b, offsets: offs, blob: blob}, nil

	case columnar.DataTypeJSON:
		offs, blob, err := splitVarlen(body, rows)
		if err != nil {
			return nil, err
		}
		return &JSONChunk{StringChunk{base: b, offsets: offs, blob: blob}}, nil

	case columnar.DataTypeArray:
		et := meta.ElementType
		esz := 0
		if et != columnar.DataTypeString && et != columnar.DataTypeVarChar {
			var err error
			if esz, err = fixedElemSize(et, 0); err != nil {
				return nil, fmt.Errorf("array element: %w", err)
			}
		}
		offs, blob, err := splitVarlen(body, rows)
		if err != nil {
			return nil, err
		}
		return &ArrayChunk{base: b, elemType: et, elemSize: esz, offsets: offs, blob: blob}, nil

	case columnar.DataTypeSparseFloatVector:
		offs, blob, err := splitVarlen(body, rows)
		if err != nil {
			return nil, err
		}
		c := &SparseFloatChunk{base: b, offsets: offs, blob: blob}
		c.scanDim()
		return c, nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, meta.Type)
	}
}

// splitVarlen cuts an offsets+blob body, validating that the offsets are
// monotonically non-decreasing and land inside the buffer.
func splitVarlen(body []byte, rows int) ([]uint64, []byte, error) {
	offLen, err := conv.MulInt(rows+1, 8)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrOffsetOverflow, err)
	}
	if len(body) < offLen {
		return nil, nil, ErrTruncated
	}
	offs := viewSlice[uint64](body[:offLen])
	for i := 0; i < rows; i++ {
		if offs[i] > offs[i+1] {
			return nil, nil, fmt.Errorf("%w: offset %d decreases", ErrTruncated, i)
		}
	}
	last, err := conv.Uint64ToInt(offs[rows])
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrOffsetOverflow, err)
	}
	if len(body)-offLen < last {
		return nil, nil, ErrTruncated
	}
	blob := body[offLen : offLen+last : offLen+last]
	return offs, blob, nil
}
