// Package chunkfile places multiple chunks in one backing file.
//
// Each chunk occupies a page-aligned region; the writer tracks the running
// offset so callers do not have to. The file's lifecycle (creation,
// deletion) stays with the caller.
package chunkfile

import (
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/columnar"
	"github.com/hupe1980/columnar/chunk"
)

// Field pairs a column batch with its descriptor for placement.
type Field struct {
	Meta  *columnar.FieldMeta
	Dim   int
	Batch *columnar.Batch
}

// Writer appends chunks to a single backing file at page-aligned offsets.
//
// A Writer is not safe for concurrent use; callers wanting parallel
// construction of one file use AppendFields, which encodes in parallel and
// places sequentially. Independent writers on disjoint files need no
// coordination.
type Writer struct {
	f      *os.File
	offset int64
	count  int
	opts   []chunk.Option
}

// NewWriter creates a writer that places chunks into f starting at offset 0.
func NewWriter(f *os.File, opts ...chunk.Option) *Writer {
	return &Writer{f: f, opts: opts}
}

// Offset returns the file offset where the next chunk will be placed.
// Always a multiple of the page size.
func (w *Writer) Offset() int64 { return w.offset }

// Len returns the number of chunks placed so far.
func (w *Writer) Len() int { return w.count }

// Append encodes the batch, places it at the current offset and advances
// past the page-padded region. The returned chunk is owned by the caller,
// who closes it when done; closing unmaps only that chunk's region.
func (w *Writer) Append(meta *columnar.FieldMeta, dim int, b *columnar.Batch) (chunk.Chunk, error) {
	c, err := chunk.NewMapped(meta, dim, w.f, w.offset, b, w.opts...)
	if err != nil {
		return nil, fmt.Errorf("chunkfile: append field %q: %w", meta.Name, err)
	}
	w.offset += c.Size()
	w.count++
	return c, nil
}

// AppendFields places one chunk per field. Encoding runs concurrently, one
// goroutine per field; placement stays sequential so offsets are assigned
// deterministically in field order. On any error no chunk is returned and
// already mapped chunks are closed.
func (w *Writer) AppendFields(fields []Field) ([]chunk.Chunk, error) {
	encoded := make([][]byte, len(fields))

	var g errgroup.Group
	for i, fd := range fields {
		i, fd := i, fd
		g.Go(func() error {
			buf, err := chunk.NewWriter(fd.Meta, fd.Dim).Encode(fd.Batch)
			if err != nil {
				return fmt.Errorf("chunkfile: encode field %q: %w", fd.Meta.Name, err)
			}
			encoded[i] = buf
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	chunks := make([]chunk.Chunk, 0, len(fields))
	for i, fd := range fields {
		c, err := chunk.NewMappedEncoded(fd.Meta, fd.Dim, fd.Batch.Rows, w.f, w.offset, encoded[i], w.opts...)
		if err != nil {
			for _, placed := range chunks {
				placed.Close()
			}
			return nil, fmt.Errorf("chunkfile: place field %q: %w", fd.Meta.Name, err)
		}
		w.offset += c.Size()
		w.count++
		chunks = append(chunks, c)
	}
	return chunks, nil
}
