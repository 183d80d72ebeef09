package mmap

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapRegion_WholeFile(t *testing.T) {
	content := []byte("Hello, Mmap!")
	path := filepath.Join(t.TempDir(), "region")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	m, err := MapRegion(f, 0, int64(len(content)))
	require.NoError(t, err)
	defer m.Close()

	assert.Equal(t, len(content), m.Len())
	assert.Equal(t, content, m.Bytes())
}

func TestMapRegion_PageOffset(t *testing.T) {
	page := os.Getpagesize()

	// Two pages: first filled with 'a', second with 'b'.
	buf := make([]byte, 2*page)
	for i := 0; i < page; i++ {
		buf[i] = 'a'
		buf[page+i] = 'b'
	}
	path := filepath.Join(t.TempDir(), "region")
	require.NoError(t, os.WriteFile(path, buf, 0o600))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	m, err := MapRegion(f, int64(page), int64(page))
	require.NoError(t, err)
	defer m.Close()

	require.Equal(t, page, m.Len())
	assert.Equal(t, byte('b'), m.Bytes()[0])
	assert.Equal(t, byte('b'), m.Bytes()[page-1])
}

func TestMapRegion_Errors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "region")
	require.NoError(t, os.WriteFile(path, []byte("data"), 0o600))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	t.Run("nil file", func(t *testing.T) {
		_, err := MapRegion(nil, 0, 4)
		assert.ErrorIs(t, err, ErrNilFile)
	})

	t.Run("negative length", func(t *testing.T) {
		_, err := MapRegion(f, 0, -1)
		assert.ErrorIs(t, err, ErrInvalidSize)
	})

	t.Run("negative offset", func(t *testing.T) {
		_, err := MapRegion(f, -1, 4)
		assert.ErrorIs(t, err, ErrInvalidOffset)
	})

	t.Run("unaligned offset", func(t *testing.T) {
		_, err := MapRegion(f, 1, 4)
		assert.ErrorIs(t, err, ErrInvalidOffset)
	})
}

func TestMapRegion_EmptyAndClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "region")
	require.NoError(t, os.WriteFile(path, []byte("data"), 0o600))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	m, err := MapRegion(f, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, m.Len())
	assert.Nil(t, m.Bytes())
	require.NoError(t, m.Close())

	m2, err := MapRegion(f, 0, 4)
	require.NoError(t, err)
	require.NoError(t, m2.Close())
	// Idempotent
	require.NoError(t, m2.Close())
	assert.Nil(t, m2.Bytes())
	assert.True(t, m2.Closed())
	assert.ErrorIs(t, m2.Advise(AccessSequential), ErrClosed)
}

func TestMapRegion_Advise(t *testing.T) {
	page := os.Getpagesize()
	buf := make([]byte, page)
	path := filepath.Join(t.TempDir(), "region")
	require.NoError(t, os.WriteFile(path, buf, 0o600))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	m, err := MapRegion(f, 0, int64(page))
	require.NoError(t, err)
	defer m.Close()

	assert.NoError(t, m.Advise(AccessSequential))
	assert.NoError(t, m.Advise(AccessRandom))
}
