// Package chunk materializes decoded column batches into immutable,
// addressable chunks and exposes zero-copy, bounds-checked views over them.
//
// # Construction
//
// A Writer translates one columnar.Batch into a single contiguous byte
// buffer laid out for the field's physical variant. The factory functions
// New and NewMapped bind that buffer to the matching chunk type: New keeps
// the buffer on the heap, NewMapped writes it into a backing file at a
// page-aligned offset and maps the region back read-only.
//
//	meta := &columnar.FieldMeta{Name: "a", ID: 1, Type: columnar.DataTypeInt64}
//	c, err := chunk.New(meta, 0, columnar.NewInt64Batch(vals, nil))
//	if err != nil { ... }
//	defer c.Close()
//
//	fw := c.(*chunk.FixedWidthChunk)
//	span, valid, err := fw.Span(nil)
//
// Callers dispatch on the concrete chunk type with a type switch; the
// factory never returns a partially initialized chunk.
//
// # Physical layout
//
// Every encoded chunk is one contiguous region, in section order:
//
//	[validity bitmap]  ceil(rows/8) bytes, present iff the field is
//	                   nullable, padded to an 8-byte boundary
//	[offsets]          (rows+1) little-endian uint64 cumulative byte ends,
//	                   variable-length variants only
//	[payload]          row data, laid out per variant
//
// The validity bitmap packs one bit per row, LSB-first within each byte.
// Unused high bits of the final byte are unspecified; all readers bound
// their scans by the row count and never inspect whole trailing bytes.
//
// Multi-byte values are little-endian on disk. Zero-copy views reinterpret
// the backing bytes natively and assume a little-endian host, falling back
// to a copy when a section is not naturally aligned.
//
// # Concurrency
//
// Chunks are write-once, read-many. Views are pure functions of
// (chunk, range) and safe to request concurrently. Close releases the heap
// buffer or unmaps the file region exactly once; views must not be used
// after Close.
package chunk
