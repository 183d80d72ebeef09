package columnar

// ScalarArray is one row of an array column: an ordered sequence of scalar
// values of a single element type. Exactly one of the typed slices is
// populated, matching ElementType.
type ScalarArray struct {
	ElementType DataType

	Bools    []bool
	Int8s    []int8
	Int16s   []int16
	Int32s   []int32
	Int64s   []int64
	Float32s []float32
	Float64s []float64
	Strings  []string
}

// Len returns the number of elements in the array.
func (a *ScalarArray) Len() int {
	switch a.ElementType {
	case DataTypeBool:
		return len(a.Bools)
	case DataTypeInt8:
		return len(a.Int8s)
	case DataTypeInt16:
		return len(a.Int16s)
	case DataTypeInt32:
		return len(a.Int32s)
	case DataTypeInt64:
		return len(a.Int64s)
	case DataTypeFloat:
		return len(a.Float32s)
	case DataTypeDouble:
		return len(a.Float64s)
	case DataTypeString, DataTypeVarChar:
		return len(a.Strings)
	default:
		return 0
	}
}

// Batch is a fully materialized column batch: the typed values for one field
// in row order, plus an optional packed validity mask. Batches are produced
// by an upstream decoder; the engine only reads them.
//
// Exactly one typed slice is populated, matching the field's DataType.
// For FloatVector columns, Float32s holds rows*dim values flattened in row
// order.
type Batch struct {
	// Rows is the declared row count. Set by the constructors.
	Rows int

	// Validity is an optional packed null mask: one bit per row, LSB-first
	// within each byte, bit set meaning the row is non-null. A nil mask
	// means no nulls. Unused high bits of the final byte are unspecified.
	Validity []byte

	Bools    []bool
	Int8s    []int8
	Int16s   []int16
	Int32s   []int32
	Int64s   []int64
	Float32s []float32
	Float64s []float64
	Strings  []string
	JSONs    [][]byte
	Arrays   []ScalarArray
	Sparse   [][]SparseEntry
}

// NewBoolBatch builds a batch of boolean values.
func NewBoolBatch(vals []bool, mask []byte) *Batch {
	return &Batch{Rows: len(vals), Validity: mask, Bools: vals}
}

// NewInt8Batch builds a batch of int8 values.
func NewInt8Batch(vals []int8, mask []byte) *Batch {
	return &Batch{Rows: len(vals), Validity: mask, Int8s: vals}
}

// NewInt16Batch builds a batch of int16 values.
func NewInt16Batch(vals []int16, mask []byte) *Batch {
	return &Batch{Rows: len(vals), Validity: mask, Int16s: vals}
}

// NewInt32Batch builds a batch of int32 values.
func NewInt32Batch(vals []int32, mask []byte) *Batch {
	return &Batch{Rows: len(vals), Validity: mask, Int32s: vals}
}

// NewInt64Batch builds a batch of int64 values.
func NewInt64Batch(vals []int64, mask []byte) *Batch {
	return &Batch{Rows: len(vals), Validity: mask, Int64s: vals}
}

// NewFloatBatch builds a batch of float32 values.
func NewFloatBatch(vals []float32, mask []byte) *Batch {
	return &Batch{Rows: len(vals), Validity: mask, Float32s: vals}
}

// NewDoubleBatch builds a batch of float64 values.
func NewDoubleBatch(vals []float64, mask []byte) *Batch {
	return &Batch{Rows: len(vals), Validity: mask, Float64s: vals}
}

// NewStringBatch builds a batch of string values.
func NewStringBatch(vals []string, mask []byte) *Batch {
	return &Batch{Rows: len(vals), Validity: mask, Strings: vals}
}

// NewJSONBatch builds a batch of opaque JSON documents.
func NewJSONBatch(docs [][]byte, mask []byte) *Batch {
	return &Batch{Rows: len(docs), Validity: mask, JSONs: docs}
}

// NewArrayBatch builds a batch of scalar arrays.
func NewArrayBatch(vals []ScalarArray, mask []byte) *Batch {
	return &Batch{Rows: len(vals), Validity: mask, Arrays: vals}
}

// NewSparseBatch builds a batch of sparse float vector rows.
func NewSparseBatch(rows [][]SparseEntry, mask []byte) *Batch {
	return &Batch{Rows: len(rows), Validity: mask, Sparse: rows}
}

// NewFloatVectorBatch builds a batch of dense float vectors. The data slice
// holds the vectors flattened in row order; dim must divide its length.
func NewFloatVectorBatch(data []float32, dim int, mask []byte) *Batch {
	rows := 0
	if dim > 0 {
		rows = len(data) / dim
	}
	return &Batch{Rows: rows, Validity: mask, Float32s: data}
}
