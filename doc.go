// Package columnar implements a write-once, read-many columnar chunk engine.
//
// # Overview
//
// A chunk materializes one column's worth of decoded row data into a single
// contiguous memory region that a query or storage layer can read without
// deserializing rows individually. Chunks come in five physical layouts:
// fixed-width scalars, variable-length strings, semi-structured JSON
// documents, nested scalar arrays, and sparse float vectors.
//
// The root package holds the data model shared by all layers: field
// descriptors (FieldMeta), decoded column batches (Batch), and the scalar
// building blocks (DataType, SparseEntry, ScalarArray).
//
// # Subpackages
//
//   - chunk: chunk construction (Writer, factory) and the typed chunk
//     variants with their zero-copy view accessors.
//   - chunkfile: page-aligned placement of multiple chunks in one
//     backing file.
//   - event: the insert-event envelope boundary (fixed timestamp prefix).
//
// # Concurrency
//
// Construction is a synchronous, single-threaded pipeline per chunk. Once
// built, a chunk is immutable: any number of goroutines may request views
// concurrently without synchronization. Views borrow the chunk's backing
// memory and must not outlive it.
package columnar
