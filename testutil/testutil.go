package testutil

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/hupe1980/columnar"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Int63 returns a non-negative pseudo-random int64.
func (r *RNG) Int63() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Int63()
}

// Float32 returns, as a float32, a pseudo-random number in [0.0,1.0).
func (r *RNG) Float32() float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float32()
}

// Int64s generates n pseudo-random int64 values.
func (r *RNG) Int64s(n int) []int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]int64, n)
	for i := range out {
		out[i] = r.rand.Int63()
	}
	return out
}

// Strings generates n strings with lengths in [0, maxLen], including the
// occasional zero-length value.
func (r *RNG) Strings(n, maxLen int) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	const alphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	out := make([]string, n)
	for i := range out {
		l := r.rand.Intn(maxLen + 1)
		b := make([]byte, l)
		for j := range b {
			b[j] = alphabet[r.rand.Intn(len(alphabet))]
		}
		out[i] = string(b)
	}
	return out
}

// Docs generates n small JSON documents with distinct values.
func (r *RNG) Docs(n int) [][]byte {
	out := make([][]byte, n)
	for i := range out {
		out[i] = []byte(fmt.Sprintf(`{"key":"value-%d","n":%d}`, i, r.Intn(1000)))
	}
	return out
}

// SparseRows generates n sparse float vector rows. Each row holds a random
// number of nonzero entries up to density*dim, with strictly increasing
// indices below dim. Rows may be empty.
func (r *RNG) SparseRows(n, dim int, density float32) [][]columnar.SparseEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	maxNNZ := int(float32(dim) * density)
	if maxNNZ < 1 {
		maxNNZ = 1
	}
	out := make([][]columnar.SparseEntry, n)
	for i := range out {
		nnz := r.rand.Intn(maxNNZ + 1)
		row := make([]columnar.SparseEntry, 0, nnz)
		idx := -1
		for j := 0; j < nnz; j++ {
			// Leave headroom so the remaining entries can stay increasing.
			step := 1 + r.rand.Intn(max(1, (dim-idx-1)/(nnz-j)))
			idx += step
			if idx >= dim {
				break
			}
			row = append(row, columnar.SparseEntry{
				Index: uint32(idx),
				Value: r.rand.Float32(),
			})
		}
		out[i] = row
	}
	return out
}
