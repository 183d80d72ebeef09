//go:build windows

package mmap

import (
	"os"
	"unsafe"

	"golang.org/x/sys/windows"
)

func osMap(f *os.File, offset int64, length int) ([]byte, func([]byte) error, error) {
	if length == 0 {
		return nil, nil, nil
	}

	// The mapping object must cover the end of the requested view.
	maxSize := uint64(offset) + uint64(length)
	h, err := windows.CreateFileMapping(windows.Handle(f.Fd()), nil, windows.PAGE_READONLY,
		uint32(maxSize>>32), uint32(maxSize), nil)
	if err != nil {
		return nil, nil, err
	}
	// The view holds a reference; the handle can be closed immediately.
	defer windows.CloseHandle(h)

	addr, err := windows.MapViewOfFile(h, windows.FILE_MAP_READ,
		uint32(uint64(offset)>>32), uint32(uint64(offset)), uintptr(length))
	if err != nil {
		return nil, nil, err
	}

	data := unsafe.Slice((*byte)(unsafe.Pointer(addr)), length)

	return data, func(b []byte) error {
		return windows.UnmapViewOfFile(addr)
	}, nil
}

func osAdvise(data []byte, pattern AccessPattern) error {
	// Windows does not have a direct equivalent to madvise.
	// The OS page cache still works effectively for sequential access.
	_ = data
	_ = pattern
	return nil
}
