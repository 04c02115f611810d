package midi

import (
	"io"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// File is a fully decoded Standard MIDI File.
type File struct {
	Header  *HeaderChunk
	Tracks  []*TrackChunk
	Unknown []*UnknownChunk
}

// Decode reads the header chunk and then chunks until as many tracks as the
// header announces have been decoded. Chunks with unknown tags met on the way
// are kept in File.Unknown. Anything after the last announced track is left unread.
func (d *Decoder) Decode() (*File, error) {
	log := decoderLog.Named("file")

	c, err := d.NextChunk()
	if err == io.EOF {
		return nil, errors.Wrap(ErrFmtNotSupported, "empty stream")
	}
	if err != nil {
		return nil, err
	}

	header, ok := c.(*HeaderChunk)
	if !ok {
		id := c.ID()
		return nil, errors.Wrapf(ErrFmtNotSupported, "expected header chunk ID %v, got %v", headerChunkID, id)
	}

	f := &File{Header: header}
	f.Tracks = make([]*TrackChunk, 0, header.TrackCount)

	for len(f.Tracks) < int(header.TrackCount) {
		c, err := d.NextChunk()
		if err == io.EOF {
			return nil, errors.Wrapf(ErrUnexpectedData, "expected %d tracks, got %d", header.TrackCount, len(f.Tracks))
		}
		if err != nil {
			return nil, err
		}

		switch c := c.(type) {
		case *TrackChunk:
			f.Tracks = append(f.Tracks, c)
		case *UnknownChunk:
			log.Debug("skipped unknown chunk", zap.ByteString("id", c.Tag[:]), zap.Uint32("size", c.Length))
			f.Unknown = append(f.Unknown, c)
		case *HeaderChunk:
			return nil, errors.Wrapf(ErrUnexpectedData, "second header chunk after %d tracks", len(f.Tracks))
		}
	}

	log.Debug("decoded",
		zap.Uint16("format", header.Format),
		zap.Int("tracks", len(f.Tracks)),
		zap.Int("unknown", len(f.Unknown)))

	return f, nil
}

// Decode decodes a whole file from r.
func Decode(r io.Reader) (*File, error) {
	return NewDecoder(r).Decode()
}
