package columnar

import "fmt"

// DataType is the semantic type tag of a column.
type DataType uint8

const (
	// DataTypeNone is the zero value and is never a valid column type.
	DataTypeNone DataType = iota
	DataTypeBool
	DataTypeInt8
	DataTypeInt16
	DataTypeInt32
	DataTypeInt64
	DataTypeFloat
	DataTypeDouble
	DataTypeString
	DataTypeVarChar
	DataTypeJSON
	DataTypeArray
	DataTypeFloatVector
	DataTypeSparseFloatVector
)

// String returns the string representation of the DataType.
func (t DataType) String() string {
	switch t {
	case DataTypeNone:
		return "None"
	case DataTypeBool:
		return "Bool"
	case DataTypeInt8:
		return "Int8"
	case DataTypeInt16:
		return "Int16"
	case DataTypeInt32:
		return "Int32"
	case DataTypeInt64:
		return "Int64"
	case DataTypeFloat:
		return "Float"
	case DataTypeDouble:
		return "Double"
	case DataTypeString:
		return "String"
	case DataTypeVarChar:
		return "VarChar"
	case DataTypeJSON:
		return "JSON"
	case DataTypeArray:
		return "Array"
	case DataTypeFloatVector:
		return "FloatVector"
	case DataTypeSparseFloatVector:
		return "SparseFloatVector"
	default:
		return fmt.Sprintf("DataType(%d)", uint8(t))
	}
}

// FixedSize returns the per-row payload size in bytes for fixed-width scalar
// types, or 0 when rows are variable length or the size depends on the
// vector dimension.
func (t DataType) FixedSize() int {
	switch t {
	case DataTypeBool, DataTypeInt8:
		return 1
	case DataTypeInt16:
		return 2
	case DataTypeInt32, DataTypeFloat:
		return 4
	case DataTypeInt64, DataTypeDouble:
		return 8
	default:
		return 0
	}
}

// IsVariable reports whether rows of this type have variable byte length.
func (t DataType) IsVariable() bool {
	switch t {
	case DataTypeString, DataTypeVarChar, DataTypeJSON, DataTypeArray, DataTypeSparseFloatVector:
		return true
	default:
		return false
	}
}

// FieldID identifies a field within a collection schema.
type FieldID int64

// Timestamp is the logical timestamp used by the insert-event envelope.
type Timestamp uint64

// FieldMeta is the immutable descriptor of a column. It is constructed by
// the caller and passed by reference into every chunk construction; the
// chunk holds a read-only reference for its lifetime.
type FieldMeta struct {
	Name string
	ID   FieldID
	Type DataType

	// ElementType is the scalar type of array elements. Only meaningful
	// when Type is DataTypeArray.
	ElementType DataType

	// Nullable controls whether the chunk stores a validity bitmap.
	Nullable bool
}

// String returns a short description of the field, for logging.
func (m *FieldMeta) String() string {
	if m.Type == DataTypeArray {
		return fmt.Sprintf("%s(%d):%s<%s>", m.Name, m.ID, m.Type, m.ElementType)
	}
	return fmt.Sprintf("%s(%d):%s", m.Name, m.ID, m.Type)
}

// SparseEntry is one (index, value) pair of a sparse float vector row.
// The in-memory layout is 8 bytes: a uint32 dimension index followed by a
// float32 value, both little-endian on disk.
type SparseEntry struct {
	Index uint32
	Value float32
}
