package midi

import "io"

// varLen reads a variable-length quantity at the current cursor position and returns
// its value together with the number of bytes it occupied. The byte count is not
// bounded; quantities longer than the usual four bytes keep shifting and overflow silently.
func varLen(r io.ByteReader) (val uint32, n uint32, err error) {
	buf := make([]byte, 0, 4)

	for lastByte := false; !lastByte; {
		b, err := r.ReadByte()
		if err != nil {
			return 0, uint32(len(buf)), err
		}
		buf = append(buf, b)
		lastByte = b>>7 == 0x0
	}

	val, _ = decodeVarint(buf)
	return val, uint32(len(buf)), nil
}

// decodeVarint decodes the first variable-length quantity in buf.
func decodeVarint(buf []byte) (x uint32, n int) {
	for _, b := range buf {
		x = x<<7 | uint32(b&0x7F)
		n++
		if b&0x80 == 0 {
			return x, n
		}
	}

	return x, n
}
