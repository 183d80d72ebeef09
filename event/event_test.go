package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/columnar"
)

func TestWrapSplit(t *testing.T) {
	payload := []byte("columnar payload bytes")
	data := Wrap(columnar.Timestamp(100), columnar.Timestamp(200), payload)
	require.Len(t, data, HeaderSize+len(payload))

	begin, end, got, err := Split(data)
	require.NoError(t, err)
	assert.Equal(t, columnar.Timestamp(100), begin)
	assert.Equal(t, columnar.Timestamp(200), end)
	assert.Equal(t, payload, got)
}

func TestSplit_Aliases(t *testing.T) {
	data := Wrap(1, 2, []byte{0xAA, 0xBB})
	_, _, payload, err := Split(data)
	require.NoError(t, err)

	// Zero-copy: the payload view shares the envelope's backing array.
	data[HeaderSize] = 0xCC
	assert.Equal(t, byte(0xCC), payload[0])
}

func TestSplit_EmptyPayload(t *testing.T) {
	begin, end, payload, err := Split(Wrap(7, 8, nil))
	require.NoError(t, err)
	assert.Equal(t, columnar.Timestamp(7), begin)
	assert.Equal(t, columnar.Timestamp(8), end)
	assert.Empty(t, payload)
}

func TestSplit_Short(t *testing.T) {
	_, _, _, err := Split(make([]byte, HeaderSize-1))
	assert.ErrorIs(t, err, ErrShortEnvelope)
}
