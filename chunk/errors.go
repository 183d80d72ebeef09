package chunk

import "errors"

var (
	// ErrUnsupportedType is returned when a FieldMeta names a type with no
	// known physical layout.
	ErrUnsupportedType = errors.New("chunk: unsupported data type")

	// ErrLengthMismatch is returned when a batch's declared row count
	// disagrees with its typed values or its validity mask.
	ErrLengthMismatch = errors.New("chunk: batch length mismatch")

	// ErrElementMismatch is returned when an array row's element type does
	// not match the field's declared element type.
	ErrElementMismatch = errors.New("chunk: array element type mismatch")

	// ErrOffsetOverflow is returned when an offset computation would exceed
	// the addressable size class.
	ErrOffsetOverflow = errors.New("chunk: offset overflow")

	// ErrOutOfRange is returned by view accessors for an out-of-bounds
	// (start, count) row range. The chunk itself remains valid.
	ErrOutOfRange = errors.New("chunk: row range out of bounds")

	// ErrElementSize is returned when a typed reinterpret does not match the
	// chunk's element size.
	ErrElementSize = errors.New("chunk: element size mismatch")

	// ErrClosed is returned when requesting views from a closed chunk.
	ErrClosed = errors.New("chunk: chunk is closed")

	// ErrInvalidFile is returned when the backing file or offset handed to
	// the mapped factory is unusable.
	ErrInvalidFile = errors.New("chunk: invalid backing file or offset")

	// ErrInvalidDim is returned when a vector type is constructed without a
	// positive dimension.
	ErrInvalidDim = errors.New("chunk: invalid vector dimension")

	// ErrTruncated is returned when an encoded buffer is shorter than its
	// layout requires.
	ErrTruncated = errors.New("chunk: encoded buffer truncated")
)
