package chunk

import (
	"unsafe"

	"github.com/hupe1980/columnar"
)

// fixedElem enumerates the element types a fixed-width payload can be
// reinterpreted as.
type fixedElem interface {
	~bool | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64 | ~uint32 | ~uint64
}

// viewSlice reinterprets b as []T. Zero-copy when b is naturally aligned
// for T; falls back to a copy otherwise (rare: only heap buffers with odd
// section offsets, mapped regions are page-aligned).
func viewSlice[T fixedElem](b []byte) []T {
	var zero T
	esz := int(unsafe.Sizeof(zero))
	n := len(b) / esz
	if n == 0 {
		return nil
	}
	if uintptr(unsafe.Pointer(&b[0]))%uintptr(unsafe.Alignof(zero)) == 0 {
		return unsafe.Slice((*T)(unsafe.Pointer(&b[0])), n)
	}
	out := make([]T, n)
	copy(unsafe.Slice((*byte)(unsafe.Pointer(&out[0])), n*esz), b[:n*esz])
	return out
}

// viewSparse reinterprets b as packed (index, value) pairs.
func viewSparse(b []byte) []columnar.SparseEntry {
	n := len(b) / sparseEntrySize
	if n == 0 {
		return nil
	}
	if uintptr(unsafe.Pointer(&b[0]))%unsafe.Alignof(columnar.SparseEntry{}) == 0 {
		return unsafe.Slice((*columnar.SparseEntry)(unsafe.Pointer(&b[0])), n)
	}
	out := make([]columnar.SparseEntry, n)
	copy(unsafe.Slice((*byte)(unsafe.Pointer(&out[0])), n*sparseEntrySize), b[:n*sparseEntrySize])
	return out
}

// byteString returns a string view over b without copying. The string
// aliases the chunk's backing memory and is bounded by its lifetime.
func byteString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(&b[0], len(b))
}
