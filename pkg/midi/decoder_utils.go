package midi

import (
	"encoding/binary"
	"io"
	"io/ioutil"
)

func readUint16(r *Reader, what string) (uint16, error) {
	var v uint16
	if err := binary.Read(r, binary.BigEndian, &v); err != nil {
		return 0, readErr(err, what)
	}
	return v, nil
}

// readChunkLen reads the 4-byte big-endian length that follows every chunk tag.
func readChunkLen(r *Reader) (uint32, error) {
	var l uint32
	if err := binary.Read(r, binary.BigEndian, &l); err != nil {
		return 0, readErr(err, "chunk length")
	}
	return l, nil
}

// readPayload reads exactly n raw bytes. The buffer grows with the data actually
// read, so a corrupt length does not allocate more than the stream holds.
func readPayload(r *Reader, n uint32, what string) ([]byte, error) {
	buf, err := ioutil.ReadAll(io.LimitReader(r, int64(n)))
	if err != nil {
		return nil, readErr(err, what)
	}
	if uint32(len(buf)) < n {
		return nil, readErr(io.ErrUnexpectedEOF, what)
	}
	return buf, nil
}
