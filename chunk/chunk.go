package chunk

import (
	"fmt"
	"sync/atomic"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/columnar"
	"github.com/hupe1980/columnar/internal/mmap"
)

// Chunk is an immutable container for one column's worth of row data,
// either heap-owned or memory-mapped. The concrete type is one of
// FixedWidthChunk, StringChunk, JSONChunk, ArrayChunk or SparseFloatChunk;
// callers dispatch with a type switch.
type Chunk interface {
	// Field returns the descriptor the chunk was built for. The chunk holds
	// a read-only reference; callers must not mutate it.
	Field() *columnar.FieldMeta

	// RowCount returns the number of rows, fixed at construction.
	RowCount() int

	// Nullable reports whether the chunk stores a validity bitmap.
	Nullable() bool

	// Size returns the physical size of the backing region in bytes. For a
	// mapped chunk this is the page-padded size used for placing the next
	// chunk in the same file, not the logical payload size.
	Size() int64

	// Valid reports whether row i is non-null. Rows of a non-nullable chunk
	// are always valid; out-of-bounds rows report false.
	Valid(i int) bool

	// ValidRows returns the set of non-null row positions as a bitmap,
	// for filter pushdown above the chunk boundary.
	ValidRows() *roaring.Bitmap

	// Mapped reports whether the chunk borrows a memory-mapped file region.
	Mapped() bool

	// Close releases the backing memory: deallocation for a heap chunk,
	// unmapping for a mapped one. Idempotent. Views must not be used after
	// Close returns.
	Close() error
}

// Range selects a contiguous run of rows for a view accessor.
// A nil *Range passed to a view selects all rows.
type Range struct {
	Start int
	Count int
}

type ownership uint8

const (
	modeOwned ownership = iota
	modeMapped
)

// payload carries the backing memory and its release path. The release mode
// is fixed at construction (heap free vs munmap), never inferred.
type payload struct {
	data    []byte
	size    int64
	mode    ownership
	mapping *mmap.Mapping
	closed  atomic.Bool
}

func (p *payload) close() error {
	if p.closed.Swap(true) {
		return nil
	}
	if p.mode == modeMapped {
		return p.mapping.Close()
	}
	p.data = nil
	return nil
}

// base carries the state shared by all chunk variants.
type base struct {
	meta     *columnar.FieldMeta
	rows     int
	validity []byte // packed bitmap, nil when the field is non-nullable
	pay      *payload
}

func (c *base) Field() *columnar.FieldMeta { return c.meta }

func (c *base) RowCount() int { return c.rows }

func (c *base) Nullable() bool { return c.meta.Nullable }

func (c *base) Size() int64 { return c.pay.size }

func (c *base) Mapped() bool { return c.pay.mode == modeMapped }

func (c *base) Close() error { return c.pay.close() }

func (c *base) Valid(i int) bool {
	if i < 0 || i >= c.rows {
		return false
	}
	if c.validity == nil {
		return true
	}
	return validityBit(c.validity, i)
}

func (c *base) ValidRows() *roaring.Bitmap {
	bm := roaring.New()
	if c.validity == nil {
		if c.rows > 0 {
			bm.AddRange(0, uint64(c.rows))
		}
		return bm
	}
	for i := 0; i < c.rows; i++ {
		if validityBit(c.validity, i) {
			bm.Add(uint32(i))
		}
	}
	return bm
}

// resolve validates a requested row range against the chunk. A nil range
// selects all rows. A zero-count in-range request is valid and empty.
func (c *base) resolve(r *Range) (start, count int, err error) {
	if c.pay.closed.Load() {
		return 0, 0, ErrClosed
	}
	if r == nil {
		return 0, c.rows, nil
	}
	if r.Start < 0 || r.Count < 0 {
		return 0, 0, fmt.Errorf("%w: start=%d count=%d", ErrOutOfRange, r.Start, r.Count)
	}
	// Compared without adding so huge starts cannot wrap past the check.
	if r.Start > c.rows || r.Count > c.rows-r.Start {
		return 0, 0, fmt.Errorf("%w: start=%d count=%d rows=%d", ErrOutOfRange, r.Start, r.Count, c.rows)
	}
	return r.Start, r.Count, nil
}

// rowIndex validates a single-row access, mirroring resolve for the
// per-row accessors.
func (c *base) rowIndex(i int) error {
	if c.pay.closed.Load() {
		return ErrClosed
	}
	if i < 0 || i >= c.rows {
		return fmt.Errorf("%w: row=%d rows=%d", ErrOutOfRange, i, c.rows)
	}
	return nil
}

// validRange expands the validity bits for [start, start+count) into a
// boolean per row. Returns nil for non-nullable chunks; callers of those
// must not expect a validity array.
func (c *base) validRange(start, count int) []bool {
	if !c.meta.Nullable {
		return nil
	}
	out := make([]bool, count)
	if c.validity == nil {
		for i := range out {
			out[i] = true
		}
		return out
	}
	for i := range out {
		out[i] = validityBit(c.validity, start+i)
	}
	return out
}
