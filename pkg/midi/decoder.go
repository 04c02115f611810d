package midi

import (
	"io"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var decoderLog = zap.NewNop()

// SetLogger replaces the package logger, which discards everything by default.
func SetLogger(l *zap.Logger) {
	decoderLog = l
}

type chunkDecoder func(r *Reader) (Chunk, error)

var chunkDecoders = map[[4]byte]chunkDecoder{
	headerChunkID: decodeHeader,
	trackChunkID:  decodeTrack,
}

// Decoder reads a Standard MIDI File one chunk at a time.
// It owns its Reader exclusively and is not safe for concurrent use.
type Decoder struct {
	r *Reader
}

func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: NewReader(r)}
}

// NextChunk decodes the next chunk and consumes exactly its bytes.
// It returns io.EOF when the stream ends on a chunk boundary.
func (d *Decoder) NextChunk() (Chunk, error) {
	start := d.r.Offset()

	id, err := d.readID()
	if err != nil {
		return nil, err
	}

	decode, ok := chunkDecoders[id]
	if !ok {
		decode = func(r *Reader) (Chunk, error) {
			return decodeUnknown(r, id)
		}
	}

	c, err := decode(d.r)
	if err != nil {
		return nil, errors.Wrapf(err, "%q chunk at offset %d", id[:], start)
	}

	decoderLog.Debug("chunk",
		zap.ByteString("id", id[:]),
		zap.Uint32("size", c.Size()),
		zap.Int64("offset", start),
		zap.Int64("consumed", d.r.Offset()-start))

	return c, nil
}

// Offset returns the number of bytes consumed so far.
func (d *Decoder) Offset() int64 {
	return d.r.Offset()
}

func (d *Decoder) readID() ([4]byte, error) {
	var id [4]byte

	b, err := d.r.ReadByte()
	if err == io.EOF {
		// nothing left: a clean end of stream, not a truncated tag
		return id, io.EOF
	}
	if err != nil {
		return id, readErr(err, "chunk id")
	}
	id[0] = b

	if _, err := d.r.Read(id[1:]); err != nil {
		return id, readErr(err, "chunk id")
	}

	return id, nil
}
