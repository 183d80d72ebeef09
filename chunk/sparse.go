package chunk

import "github.com/hupe1980/columnar"

// sparseEntrySize is the packed byte size of one (index, value) pair.
const sparseEntrySize = 8

// SparseFloatChunk holds sparse float vector rows: per row, an ordered
// sequence of packed (uint32 index, float32 value) pairs. Rows may have
// differing nonzero counts; the payload size is the sum of per-row counts,
// not rows * dimension.
type SparseFloatChunk struct {
	base
	offsets []uint64
	blob    []byte
	dim     int // 1 + highest index observed, 0 for an all-empty chunk
}

// Dim returns the effective dimensionality: one past the highest index
// present in any row.
func (c *SparseFloatChunk) Dim() int { return c.dim }

// Rows returns zero-copy (index, value) sequences for the rows selected by
// r (nil = all), plus a per-row validity indicator when the field is
// nullable. The entry slices alias the chunk's backing memory. A null row
// yields an empty sequence.
func (c *SparseFloatChunk) Rows(r *Range) ([][]columnar.SparseEntry, []bool, error) {
	start, count, err := c.resolve(r)
	if err != nil {
		return nil, nil, err
	}
	rows := make([][]columnar.SparseEntry, count)
	for i := 0; i < count; i++ {
		lo := c.offsets[start+i]
		hi := c.offsets[start+i+1]
		rows[i] = viewSparse(c.blob[lo:hi])
	}
	return rows, c.validRange(start, count), nil
}

// RowAt returns the (index, value) sequence of the single row i.
func (c *SparseFloatChunk) RowAt(i int) ([]columnar.SparseEntry, error) {
	if err := c.rowIndex(i); err != nil {
		return nil, err
	}
	return viewSparse(c.blob[c.offsets[i]:c.offsets[i+1]]), nil
}

// scanDim computes the effective dimension at construction time so reads
// never rescan the payload.
func (c *SparseFloatChunk) scanDim() {
	maxIdx := -1
	for _, e := range viewSparse(c.blob) {
		if int(e.Index) > maxIdx {
			maxIdx = int(e.Index)
		}
	}
	c.dim = maxIdx + 1
}
