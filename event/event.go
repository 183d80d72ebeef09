// Package event handles the insert-event envelope boundary.
//
// An insert event prefixes serialized column data with two fixed-width
// logical timestamps (the covered begin and end) before the columnar
// payload starts. The framing itself is produced and consumed outside the
// chunk engine; this package only knows the fixed-size prefix convention so
// integration code can strip it before handing the remainder to a decoder.
package event

import (
	"encoding/binary"
	"errors"

	"github.com/hupe1980/columnar"
)

const (
	// TimestampSize is the encoded size of one timestamp.
	TimestampSize = 8

	// HeaderSize is the fixed envelope prefix: begin and end timestamps.
	HeaderSize = 2 * TimestampSize
)

// ErrShortEnvelope is returned when the data cannot hold the timestamp
// prefix.
var ErrShortEnvelope = errors.New("event: envelope shorter than timestamp header")

// Wrap frames a columnar payload with its begin and end timestamps.
func Wrap(begin, end columnar.Timestamp, payload []byte) []byte {
	buf := make([]byte, HeaderSize+len(payload))
	binary.LittleEndian.PutUint64(buf[0:], uint64(begin))
	binary.LittleEndian.PutUint64(buf[TimestampSize:], uint64(end))
	copy(buf[HeaderSize:], payload)
	return buf
}

// Split strips the timestamp prefix and returns the remaining columnar
// payload. The payload aliases data; no bytes are copied.
func Split(data []byte) (begin, end columnar.Timestamp, payload []byte, err error) {
	if len(data) < HeaderSize {
		return 0, 0, nil, ErrShortEnvelope
	}
	begin = columnar.Timestamp(binary.LittleEndian.Uint64(data[0:]))
	end = columnar.Timestamp(binary.LittleEndian.Uint64(data[TimestampSize:]))
	return begin, end, data[HeaderSize:], nil
}
