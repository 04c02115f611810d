package midi

import (
	"bytes"
	"encoding/binary"
)

func appendVarint(dst []byte, v uint32) []byte {
	var tmp [5]byte
	i := len(tmp) - 1
	tmp[i] = byte(v & 0x7F)
	for v >>= 7; v > 0; v >>= 7 {
		i--
		tmp[i] = byte(v&0x7F) | 0x80
	}
	return append(dst, tmp[i:]...)
}

func chunkBytes(id string, payload []byte) []byte {
	b := make([]byte, 8, 8+len(payload))
	copy(b, id)
	binary.BigEndian.PutUint32(b[4:], uint32(len(payload)))
	return append(b, payload...)
}

func headerBytes(format, tracks, division uint16) []byte {
	payload := make([]byte, 6)
	binary.BigEndian.PutUint16(payload[0:], format)
	binary.BigEndian.PutUint16(payload[2:], tracks)
	binary.BigEndian.PutUint16(payload[4:], division)
	return chunkBytes("MThd", payload)
}

func trackBytes(events ...[]byte) []byte {
	return chunkBytes("MTrk", bytes.Join(events, nil))
}

func eventBytes(delta uint32, status byte, data ...byte) []byte {
	b := appendVarint(nil, delta)
	b = append(b, status)
	return append(b, data...)
}

func metaBytes(delta uint32, metaType byte, data ...byte) []byte {
	b := eventBytes(delta, 0xFF, metaType)
	b = appendVarint(b, uint32(len(data)))
	return append(b, data...)
}

func sysexBytes(delta uint32, data ...byte) []byte {
	b := eventBytes(delta, 0xF0)
	b = appendVarint(b, uint32(len(data)))
	return append(b, data...)
}

func endOfTrack(delta uint32) []byte {
	return metaBytes(delta, MetaEndOfTrack)
}

func newTestDecoder(parts ...[]byte) *Decoder {
	return NewDecoder(bytes.NewReader(bytes.Join(parts, nil)))
}

func newTestReader(parts ...[]byte) *Reader {
	return NewReader(bytes.NewReader(bytes.Join(parts, nil)))
}
