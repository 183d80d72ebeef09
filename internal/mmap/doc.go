// Package mmap provides memory-mapped access to file regions for zero-copy
// chunk reads.
//
// # Overview
//
// The chunk factory writes an encoded chunk into a backing file and maps the
// written region back into memory. Mapping a region instead of the whole
// file lets many independently placed chunks share one file, each mapped and
// unmapped on its own.
//
// # Usage
//
//	m, err := mmap.MapRegion(f, offset, length)
//	if err != nil { ... }
//	defer m.Close()
//
//	// Zero-copy access to the region contents
//	data := m.Bytes()
//
//	// Provide kernel hints for access patterns
//	m.Advise(mmap.AccessSequential)
//
// The offset must be a multiple of the platform page size; this is the
// kernel's requirement, not a convention of this package.
//
// # Platform Support
//
//   - Unix (Linux, macOS, BSD): mmap(2) with madvise(2) for access hints
//   - Windows: CreateFileMapping/MapViewOfFile (madvise is a no-op)
//
// # Thread Safety
//
// Bytes is safe for concurrent read access. Close is idempotent and
// protected by an atomic flag, but callers must ensure no goroutine touches
// Bytes() after Close() returns.
package mmap
