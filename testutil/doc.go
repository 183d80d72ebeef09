// Package testutil provides deterministic data generators for tests and
// benchmarks: a seeded, thread-safe RNG plus batch-shaped random columns
// (strings, documents, sparse vector rows).
package testutil
