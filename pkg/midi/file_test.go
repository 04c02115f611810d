package midi

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	conductor := trackBytes(
		metaBytes(0, MetaSetTempo, 0x07, 0xA1, 0x20),
		endOfTrack(0),
	)
	melody := trackBytes(
		eventBytes(0, 0xC0, 1),
		eventBytes(0, 0x90, 60, 100),
		eventBytes(480, 0x80, 60, 0),
		endOfTrack(0),
	)
	trailing := trackBytes(endOfTrack(0))

	in := bytes.Join([][]byte{
		headerBytes(1, 2, 480),
		conductor,
		chunkBytes("XFIH", []byte{1, 2, 3}),
		melody,
		trailing,
	}, nil)

	d := NewDecoder(bytes.NewReader(in))
	f, err := d.Decode()
	require.NoError(t, err)

	assert.Equal(t, uint16(1), f.Header.Format)
	assert.Equal(t, uint16(2), f.Header.TrackCount)
	require.Len(t, f.Tracks, 2)
	assert.Len(t, f.Tracks[0].Events, 2)
	assert.Len(t, f.Tracks[1].Events, 4)

	require.Len(t, f.Unknown, 1)
	assert.Equal(t, uint32(3), f.Unknown[0].Length)

	assert.Equal(t, int64(len(in)-len(trailing)), d.Offset(), "chunks after the announced tracks stay unread")
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		err  error
	}{
		{"empty", nil, ErrFmtNotSupported},
		{"trackFirst", trackBytes(endOfTrack(0)), ErrFmtNotSupported},
		{"missingTracks", append(headerBytes(1, 3, 96), trackBytes(endOfTrack(0))...), ErrUnexpectedData},
		{"secondHeader", append(headerBytes(0, 1, 96), headerBytes(0, 1, 96)...), ErrUnexpectedData},
		{"truncatedTrack", append(headerBytes(0, 1, 96), []byte("MTrk\x00\x00\x00\x04\x00\xFF")...), ErrStreamTruncated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Decode(bytes.NewReader(tt.in))
			assert.Nil(t, f)
			assert.Equal(t, tt.err, errors.Cause(err))
		})
	}
}
