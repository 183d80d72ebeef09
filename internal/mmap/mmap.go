package mmap

import (
	"os"
	"sync/atomic"
)

// Mapping represents a memory-mapped file region.
// It owns the underlying byte slice and is responsible for unmapping it.
type Mapping struct {
	data   []byte
	length int
	closed atomic.Bool
	// unmap is the platform-specific function to unmap the memory.
	unmap func([]byte) error
}

// MapRegion maps length bytes of f starting at offset, read-only and shared.
// The offset must be a multiple of the platform page size. A zero length
// yields an empty mapping whose Close is a no-op.
func MapRegion(f *os.File, offset, length int64) (*Mapping, error) {
	if f == nil {
		return nil, ErrNilFile
	}
	if length < 0 {
		return nil, ErrInvalidSize
	}
	if offset < 0 || offset%int64(os.Getpagesize()) != 0 {
		return nil, ErrInvalidOffset
	}
	if length == 0 {
		return &Mapping{data: nil, length: 0}, nil
	}

	// Platform-specific mapping
	data, unmapFunc, err := osMap(f, offset, int(length))
	if err != nil {
		return nil, err
	}

	return &Mapping{
		data:   data,
		length: int(length),
		unmap:  unmapFunc,
	}, nil
}

// Close unmaps the memory. It is idempotent.
func (m *Mapping) Close() error {
	if m.closed.Swap(true) {
		return nil // Already closed
	}
	if m.unmap != nil && m.data != nil {
		return m.unmap(m.data)
	}
	return nil
}

// Bytes returns the underlying byte slice.
// Warning: The slice is valid only until Close() is called.
// Accessing the slice after Close() results in undefined behavior (likely a crash).
func (m *Mapping) Bytes() []byte {
	if m.closed.Load() {
		return nil
	}
	return m.data
}

// Len returns the length of the mapping in bytes.
func (m *Mapping) Len() int {
	return m.length
}

// Closed reports whether the mapping has been unmapped.
func (m *Mapping) Closed() bool {
	return m.closed.Load()
}

// Advise provides hints to the kernel about how the memory will be accessed.
func (m *Mapping) Advise(pattern AccessPattern) error {
	if m.closed.Load() {
		return ErrClosed
	}
	if m.data == nil {
		return nil
	}
	return osAdvise(m.data, pattern)
}
