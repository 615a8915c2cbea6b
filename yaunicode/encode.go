package yaunicode

// The encoders write r as exactly count units of their encoding and return
// count. They do not validate r: callers size count with the matching length
// function, and a mismatched (r, count) pair yields masked bits of r rather
// than an error.
//
// An encoder returns -1 when buf is nil, 0 when count is not a length its
// encoding can produce, and -1 when buf is shorter than count.

// EncodeUTF8 writes r as count bytes, count in [1, 4].
func EncodeUTF8(buf []byte, r rune, count int) int {
	if buf == nil {
		return -1
	}

	if count < 1 || count > 4 {
		return 0
	}

	if len(buf) < count {
		return -1
	}

	c := uint32(r)

	switch count {
	case 1:
		buf[0] = byte(c & 0x7F)
	case 2:
		buf[0] = byte(c>>6&0x1F | 0xC0)
		buf[1] = byte(c&0x3F | 0x80)
	case 3:
		buf[0] = byte(c>>12&0x0F | 0xE0)
		buf[1] = byte(c>>6&0x3F | 0x80)
		buf[2] = byte(c&0x3F | 0x80)
	case 4:
		buf[0] = byte(c>>18&0x07 | 0xF0)
		buf[1] = byte(c>>12&0x3F | 0x80)
		buf[2] = byte(c>>6&0x3F | 0x80)
		buf[3] = byte(c&0x3F | 0x80)
	}

	return count
}

// EncodeUTF16 writes r as one unit or as a surrogate pair.
func EncodeUTF16(buf []uint16, r rune, count int) int {
	if buf == nil {
		return -1
	}

	if count != 1 && count != 2 {
		return 0
	}

	if len(buf) < count {
		return -1
	}

	c := uint32(r)

	if count == 1 {
		buf[0] = uint16(c)

		return 1
	}

	c -= supplementaryMin
	buf[0] = uint16(c>>10&surrogateMask | highSurrogateMin)
	buf[1] = uint16(c&surrogateMask | lowSurrogateMin)

	return 2
}

// EncodeUTF32 stores r unchanged.
func EncodeUTF32(buf []uint32, r rune, count int) int {
	if buf == nil {
		return -1
	}

	if count != 1 {
		return 0
	}

	if len(buf) < 1 {
		return -1
	}

	buf[0] = uint32(r)

	return 1
}
