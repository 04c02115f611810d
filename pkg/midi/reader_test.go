package midi

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReader_Offset(t *testing.T) {
	r := newTestReader([]byte{1, 2, 3, 4, 5, 6})

	b, err := r.ReadByte()
	require.NoError(t, err)
	assert.Equal(t, byte(1), b)
	assert.Equal(t, int64(1), r.Offset())

	buf := make([]byte, 2)
	_, err = r.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, []byte{2, 3}, buf)
	assert.Equal(t, int64(3), r.Offset())

	require.NoError(t, r.Discard(2))
	assert.Equal(t, int64(5), r.Offset())

	b, err = r.ReadByte()
	require.NoError(t, err)
	assert.Equal(t, byte(6), b)

	_, err = r.ReadByte()
	assert.Equal(t, io.EOF, err)
	assert.Equal(t, int64(6), r.Offset())
}

func TestReader_Short(t *testing.T) {
	r := newTestReader([]byte{1, 2})
	_, err := r.Read(make([]byte, 4))
	assert.Equal(t, io.ErrUnexpectedEOF, err)
	assert.Equal(t, int64(2), r.Offset())

	r = newTestReader([]byte{1, 2})
	assert.Equal(t, io.ErrUnexpectedEOF, r.Discard(3))
	assert.Equal(t, int64(2), r.Offset())

	r = newTestReader()
	assert.NoError(t, r.Discard(0))
}
