package chunkfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/columnar"
	"github.com/hupe1980/columnar/chunk"
	"github.com/hupe1980/columnar/testutil"
)

func tempFile(t *testing.T) *os.File {
	t.Helper()
	f, err := os.Create(filepath.Join(t.TempDir(), "segment.bin"))
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })
	return f
}

func testFields(rng *testutil.RNG, rows int) ([]Field, []int64, []string, [][]columnar.SparseEntry) {
	ints := rng.Int64s(rows)
	strs := rng.Strings(rows, 16)
	sparse := rng.SparseRows(rows, 200, 0.1)
	fields := []Field{
		{
			Meta:  &columnar.FieldMeta{Name: "id", ID: 1, Type: columnar.DataTypeInt64},
			Batch: columnar.NewInt64Batch(ints, nil),
		},
		{
			Meta:  &columnar.FieldMeta{Name: "title", ID: 2, Type: columnar.DataTypeString},
			Batch: columnar.NewStringBatch(strs, nil),
		},
		{
			Meta:  &columnar.FieldMeta{Name: "embedding", ID: 3, Type: columnar.DataTypeSparseFloatVector},
			Batch: columnar.NewSparseBatch(sparse, nil),
		},
	}
	return fields, ints, strs, sparse
}

func verifyFields(t *testing.T, chunks []chunk.Chunk, ints []int64, strs []string, sparse [][]columnar.SparseEntry) {
	t.Helper()
	require.Len(t, chunks, 3)

	span, _, err := chunks[0].(*chunk.FixedWidthChunk).Span(nil)
	require.NoError(t, err)
	gotInts, err := chunk.AsSlice[int64](span)
	require.NoError(t, err)
	assert.Equal(t, ints, append([]int64(nil), gotInts...))

	gotStrs, _, err := chunks[1].(*chunk.StringChunk).StringViews(nil)
	require.NoError(t, err)
	assert.Equal(t, strs, gotStrs)

	gotSparse, _, err := chunks[2].(*chunk.SparseFloatChunk).Rows(nil)
	require.NoError(t, err)
	require.Len(t, gotSparse, len(sparse))
	for i := range sparse {
		require.Len(t, gotSparse[i], len(sparse[i]), "row %d", i)
		for j := range sparse[i] {
			assert.Equal(t, sparse[i][j], gotSparse[i][j], "row %d entry %d", i, j)
		}
	}
}

func TestWriter_Append(t *testing.T) {
	f := tempFile(t)
	w := NewWriter(f)
	fields, ints, strs, sparse := testFields(testutil.NewRNG(42), 500)

	var chunks []chunk.Chunk
	defer func() {
		for _, c := range chunks {
			c.Close()
		}
	}()
	for _, fd := range fields {
		c, err := w.Append(fd.Meta, fd.Dim, fd.Batch)
		require.NoError(t, err)
		chunks = append(chunks, c)
	}

	assert.Equal(t, 3, w.Len())
	page := int64(os.Getpagesize())
	assert.Zero(t, w.Offset()%page)

	var total int64
	for i, c := range chunks {
		assert.True(t, c.Mapped(), "chunk %d", i)
		assert.Zero(t, c.Size()%page, "chunk %d", i)
		total += c.Size()
	}
	assert.Equal(t, total, w.Offset())

	verifyFields(t, chunks, ints, strs, sparse)
}

func TestWriter_AppendFields(t *testing.T) {
	f := tempFile(t)
	w := NewWriter(f)
	fields, ints, strs, sparse := testFields(testutil.NewRNG(42), 500)

	chunks, err := w.AppendFields(fields)
	require.NoError(t, err)
	defer func() {
		for _, c := range chunks {
			c.Close()
		}
	}()

	assert.Equal(t, 3, w.Len())
	verifyFields(t, chunks, ints, strs, sparse)
}

func TestWriter_AppendFieldsMatchesSequential(t *testing.T) {
	// Same fields placed both ways must land at identical offsets.
	seq := tempFile(t)
	par := tempFile(t)

	seqFields, _, _, _ := testFields(testutil.NewRNG(1), 100)
	parFields, _, _, _ := testFields(testutil.NewRNG(1), 100)

	sw := NewWriter(seq)
	var seqChunks []chunk.Chunk
	for _, fd := range seqFields {
		c, err := sw.Append(fd.Meta, fd.Dim, fd.Batch)
		require.NoError(t, err)
		defer c.Close()
		seqChunks = append(seqChunks, c)
	}

	pw := NewWriter(par)
	parChunks, err := pw.AppendFields(parFields)
	require.NoError(t, err)
	defer func() {
		for _, c := range parChunks {
			c.Close()
		}
	}()

	assert.Equal(t, sw.Offset(), pw.Offset())
	require.Len(t, parChunks, len(seqChunks))
	for i := range seqChunks {
		assert.Equal(t, seqChunks[i].Size(), parChunks[i].Size(), "chunk %d", i)
	}
}

func TestWriter_AppendFieldsEncodeError(t *testing.T) {
	f := tempFile(t)
	w := NewWriter(f)

	fields, _, _, _ := testFields(testutil.NewRNG(3), 10)
	// Mask on a non-nullable field fails encoding.
	fields[1].Batch.Validity = []byte{0xFF, 0x03}

	chunks, err := w.AppendFields(fields)
	assert.Nil(t, chunks)
	assert.ErrorIs(t, err, chunk.ErrLengthMismatch)
	assert.Equal(t, 0, w.Len())
	assert.Zero(t, w.Offset())
}

func TestWriter_PageSizeOption(t *testing.T) {
	f := tempFile(t)
	big := 2 * os.Getpagesize()
	w := NewWriter(f, chunk.WithPageSize(big))

	meta := &columnar.FieldMeta{Name: "id", ID: 1, Type: columnar.DataTypeInt64}
	c, err := w.Append(meta, 0, columnar.NewInt64Batch([]int64{1, 2, 3}, nil))
	require.NoError(t, err)
	defer c.Close()

	assert.Equal(t, int64(big), c.Size())
	assert.Equal(t, int64(big), w.Offset())
}
