package mmap

import "errors"

// AccessPattern provides hints to the kernel about how the data will be accessed.
type AccessPattern int

const (
	// AccessDefault is the default access pattern (no specific advice).
	AccessDefault AccessPattern = iota
	// AccessSequential expects data to be accessed sequentially.
	AccessSequential
	// AccessRandom expects data to be accessed randomly.
	AccessRandom
	// AccessWillNeed expects data to be accessed in the near future.
	AccessWillNeed
	// AccessDontNeed expects data to not be accessed in the near future.
	AccessDontNeed
)

var (
	// ErrClosed is returned when attempting to access a closed mapping.
	ErrClosed = errors.New("mmap: mapping is closed")
	// ErrInvalidSize is returned when the requested length is negative.
	ErrInvalidSize = errors.New("mmap: invalid region size")
	// ErrInvalidOffset is returned when the offset is negative or not
	// page-aligned.
	ErrInvalidOffset = errors.New("mmap: invalid region offset")
	// ErrNilFile is returned when no backing file is supplied.
	ErrNilFile = errors.New("mmap: nil file")
)
