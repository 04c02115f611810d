package midi

import (
	"fmt"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type timeFormat int

const (
	MetricalTF timeFormat = iota + 1
	TimeCodeTF
)

const headerSize = 6

var (
	headerChunkID = [4]byte{0x4D, 0x54, 0x68, 0x64}
	trackChunkID  = [4]byte{0x4D, 0x54, 0x72, 0x6B}
)

// Chunk is one top-level record of the file: *HeaderChunk, *TrackChunk or *UnknownChunk.
type Chunk interface {
	// ID returns the 4-character tag the chunk was read with.
	ID() [4]byte
	// Size returns the length declared in the chunk's length field.
	Size() uint32

	chunk()
}

// HeaderChunk is the MThd record.
type HeaderChunk struct {
	Length       uint32
	Format       uint16
	TrackCount   uint16
	TimeDivision uint16
}

func (*HeaderChunk) ID() [4]byte    { return headerChunkID }
func (h *HeaderChunk) Size() uint32 { return h.Length }
func (*HeaderChunk) chunk()         {}

// TimeFormat tells how TimeDivision is to be read.
func (h *HeaderChunk) TimeFormat() timeFormat {
	if (h.TimeDivision & 0x8000) == 0 {
		return MetricalTF
	}
	return TimeCodeTF
}

// TicksPerQuarterNote returns the metrical time division.
// SMPTE time code divisions are not supported.
func (h *HeaderChunk) TicksPerQuarterNote() (uint16, error) {
	if h.TimeFormat() != MetricalTF {
		return 0, errors.Wrapf(ErrFmtNotSupported, "time code division %#04x", h.TimeDivision)
	}
	return h.TimeDivision & 0x7FFF, nil
}

func (h *HeaderChunk) String() string {
	return fmt.Sprintf("Header: format=%d tracks=%d division=%d", h.Format, h.TrackCount, h.TimeDivision)
}

// UnknownChunk is a chunk whose tag is not recognized. Its payload is skipped.
type UnknownChunk struct {
	Tag    [4]byte
	Length uint32
}

func (u *UnknownChunk) ID() [4]byte  { return u.Tag }
func (u *UnknownChunk) Size() uint32 { return u.Length }
func (*UnknownChunk) chunk()         {}

func (u *UnknownChunk) String() string {
	return fmt.Sprintf("Unknown %q: %d bytes skipped", u.Tag[:], u.Length)
}

// decodeHeader reads the MThd payload. The cursor is positioned right after the tag.
// Bytes past the six defined ones are skipped unread.
func decodeHeader(r *Reader) (Chunk, error) {
	l, err := readChunkLen(r)
	if err != nil {
		return nil, err
	}

	if l < headerSize {
		return nil, errors.Wrapf(ErrUnexpectedData, "header length %d, expected at least %d", l, headerSize)
	}

	h := &HeaderChunk{Length: l}

	if h.Format, err = readUint16(r, "header format"); err != nil {
		return nil, err
	}
	if h.TrackCount, err = readUint16(r, "header track count"); err != nil {
		return nil, err
	}
	if h.TimeDivision, err = readUint16(r, "header division"); err != nil {
		return nil, err
	}

	if extra := l - headerSize; extra > 0 {
		decoderLog.Debug("skipping header extension", zap.Uint32("bytes", extra))
		if err := r.Discard(int64(extra)); err != nil {
			return nil, readErr(err, "header extension")
		}
	}

	return h, nil
}

// decodeUnknown skips the payload of a chunk with an unrecognized tag.
func decodeUnknown(r *Reader, tag [4]byte) (Chunk, error) {
	l, err := readChunkLen(r)
	if err != nil {
		return nil, err
	}

	if err := r.Discard(int64(l)); err != nil {
		return nil, readErr(err, fmt.Sprintf("%q chunk payload", tag[:]))
	}

	return &UnknownChunk{Tag: tag, Length: l}, nil
}
