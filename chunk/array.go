package chunk

import (
	"encoding/binary"
	"fmt"
	"unsafe"

	"github.com/hupe1980/columnar"
)

// ArrayChunk holds nested scalar arrays: a blob of per-row element
// encodings plus rows+1 offsets delimiting each row's encoding.
//
// Fixed-width elements are stored raw, element count = byte length / size.
// String elements are stored as a uint32 count, count cumulative uint32
// byte ends, then the concatenated element bytes.
type ArrayChunk struct {
	base
	elemType columnar.DataType
	elemSize int // 0 for string elements
	offsets  []uint64
	blob     []byte
}

// ElementType returns the scalar type of the array elements.
func (c *ArrayChunk) ElementType() columnar.DataType { return c.elemType }

// Views returns decoded array views over the rows selected by r (nil =
// all), plus a per-row validity indicator when the field is nullable. Views
// borrow the chunk's backing memory. A null row yields an empty array.
func (c *ArrayChunk) Views(r *Range) ([]ArrayView, []bool, error) {
	start, count, err := c.resolve(r)
	if err != nil {
		return nil, nil, err
	}
	views := make([]ArrayView, count)
	for i := 0; i < count; i++ {
		raw := c.blob[c.offsets[start+i]:c.offsets[start+i+1]]
		v, err := c.decodeRow(raw)
		if err != nil {
			return nil, nil, fmt.Errorf("row %d: %w", start+i, err)
		}
		views[i] = v
	}
	return views, c.validRange(start, count), nil
}

// ViewAt returns the decoded array view of the single row i.
func (c *ArrayChunk) ViewAt(i int) (ArrayView, error) {
	if err := c.rowIndex(i); err != nil {
		return ArrayView{}, err
	}
	return c.decodeRow(c.blob[c.offsets[i]:c.offsets[i+1]])
}

func (c *ArrayChunk) decodeRow(raw []byte) (ArrayView, error) {
	if c.elemSize > 0 {
		if len(raw)%c.elemSize != 0 {
			return ArrayView{}, ErrTruncated
		}
		return ArrayView{
			elemType: c.elemType,
			elemSize: c.elemSize,
			count:    len(raw) / c.elemSize,
			data:     raw,
		}, nil
	}

	// String elements: count prefix, cumulative ends, bytes.
	if len(raw) == 0 {
		return ArrayView{elemType: c.elemType}, nil
	}
	if len(raw) < 4 {
		return ArrayView{}, ErrTruncated
	}
	n := int(binary.LittleEndian.Uint32(raw))
	if len(raw) < 4+4*n {
		return ArrayView{}, ErrTruncated
	}
	ends := viewSlice[uint32](raw[4 : 4+4*n])
	data := raw[4+4*n:]
	if n > 0 && int(ends[n-1]) > len(data) {
		return ArrayView{}, ErrTruncated
	}
	return ArrayView{
		elemType: c.elemType,
		count:    n,
		ends:     ends,
		data:     data,
	}, nil
}

// ArrayView is a borrowed, decoded view of one array row.
type ArrayView struct {
	elemType columnar.DataType
	elemSize int
	count    int
	ends     []uint32 // string elements: cumulative byte ends, len == count
	data     []byte
}

// Len returns the number of elements in the row.
func (v ArrayView) Len() int { return v.count }

// ElementType returns the scalar type of the elements.
func (v ArrayView) ElementType() columnar.DataType { return v.elemType }

// StringAt returns element i of a string array as a zero-copy string view.
func (v ArrayView) StringAt(i int) (string, error) {
	if v.ends == nil {
		return "", ErrElementMismatch
	}
	if i < 0 || i >= v.count {
		return "", fmt.Errorf("%w: element=%d count=%d", ErrOutOfRange, i, v.count)
	}
	lo := uint32(0)
	if i > 0 {
		lo = v.ends[i-1]
	}
	return byteString(v.data[lo:v.ends[i]]), nil
}

// ArrayValues reinterprets a fixed-width array row as typed elements,
// zero-copy when the backing bytes are naturally aligned.
func ArrayValues[T fixedElem](v ArrayView) ([]T, error) {
	var zero T
	if v.elemSize == 0 {
		return nil, ErrElementMismatch
	}
	if int(unsafe.Sizeof(zero)) != v.elemSize {
		return nil, ErrElementSize
	}
	return viewSlice[T](v.data), nil
}
