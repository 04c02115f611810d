package midi

import (
	"bufio"
	"io"
	"io/ioutil"

	"github.com/Garik-/smf/config"
)

// Reader is the byte cursor every decoder reads from. It never seeks and counts
// the bytes consumed so far.
type Reader struct {
	reader *bufio.Reader
	n      int64
}

// NewReader wraps r in a buffered Reader unless it already is a *bufio.Reader.
func NewReader(r io.Reader) *Reader {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReaderSize(r, config.BufioSize)
	}
	return &Reader{reader: br}
}

// ReadByte reads and returns a single byte. At end of stream it returns io.EOF.
func (r *Reader) ReadByte() (byte, error) {
	b, err := r.reader.ReadByte()
	if err == nil {
		r.n++
	}
	return b, err
}

// Read reads exactly len(p) bytes into p.
// The error is EOF only if no bytes were read.
// If an EOF happens after reading some but not all the bytes,
// Read returns ErrUnexpectedEOF.
func (r *Reader) Read(p []byte) (n int, err error) {
	n, err = io.ReadFull(r.reader, p)
	r.n += int64(n)
	return n, err
}

// Discard skips the next n bytes.
func (r *Reader) Discard(n int64) error {
	m, err := io.CopyN(ioutil.Discard, r.reader, n)
	r.n += m
	if err == nil {
		return nil
	}
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}

// Offset returns the number of bytes consumed since the Reader was created.
func (r *Reader) Offset() int64 {
	return r.n
}
