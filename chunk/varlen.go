package chunk

// StringChunk holds variable-length UTF-8 rows: a flat byte blob plus
// rows+1 monotonically non-decreasing offsets delimiting each row's slice.
type StringChunk struct {
	base
	offsets []uint64 // rows+1 cumulative byte ends into blob
	blob    []byte
}

// StringViews returns zero-copy string views over the rows selected by r
// (nil = all), plus a per-row validity indicator when the field is nullable.
// The strings alias the chunk's backing memory; they are valid only for the
// chunk's lifetime. A null row yields an empty string.
func (c *StringChunk) StringViews(r *Range) ([]string, []bool, error) {
	start, count, err := c.resolve(r)
	if err != nil {
		return nil, nil, err
	}
	views := make([]string, count)
	for i := 0; i < count; i++ {
		lo := c.offsets[start+i]
		hi := c.offsets[start+i+1]
		views[i] = byteString(c.blob[lo:hi])
	}
	return views, c.validRange(start, count), nil
}

// StringAt returns the single row i as a zero-copy string view.
func (c *StringChunk) StringAt(i int) (string, error) {
	if err := c.rowIndex(i); err != nil {
		return "", err
	}
	return byteString(c.blob[c.offsets[i]:c.offsets[i+1]]), nil
}

// BlobSize returns the total payload byte length, equal to the final offset.
func (c *StringChunk) BlobSize() int64 {
	return int64(c.offsets[c.rows])
}

// JSONChunk holds opaque byte documents in the same offsets+blob shape as
// StringChunk; values are not guaranteed to be valid UTF-8 text.
type JSONChunk struct {
	StringChunk
}

// DocViews returns borrowed byte-slice views over the documents selected by
// r (nil = all), plus a per-row validity indicator when the field is
// nullable. The slices alias the chunk's backing memory.
func (c *JSONChunk) DocViews(r *Range) ([][]byte, []bool, error) {
	start, count, err := c.resolve(r)
	if err != nil {
		return nil, nil, err
	}
	views := make([][]byte, count)
	for i := 0; i < count; i++ {
		lo := c.offsets[start+i]
		hi := c.offsets[start+i+1]
		views[i] = c.blob[lo:hi:hi]
	}
	return views, c.validRange(start, count), nil
}
