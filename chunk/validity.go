package chunk

// Validity bitmaps pack one bit per row, LSB-first within each byte. The
// tail bits of the final byte carry whatever the source decoder provided,
// so every reader bounds its scan by the row count instead of scanning
// whole bytes.

// validityLen returns the packed bitmap size for rows rows.
func validityLen(rows int) int {
	return (rows + 7) / 8
}

// validityBit reads bit i of a packed bitmap. The caller guarantees i is
// within the row count.
func validityBit(mask []byte, i int) bool {
	return mask[i>>3]&(1<<uint(i&7)) != 0
}

// fillValidity writes the bitmap section for rows rows into dst. A nil
// source mask means the batch carried no nulls: every row is marked valid,
// including the unused tail bits, which readers never consult.
func fillValidity(dst []byte, rows int, mask []byte) {
	n := validityLen(rows)
	if mask == nil {
		for i := 0; i < n; i++ {
			dst[i] = 0xFF
		}
		return
	}
	// Preserved byte-for-byte, tail bits included.
	copy(dst, mask[:n])
}
