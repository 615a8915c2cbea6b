package yaunicode

// Visitor is the object form of a visit callback. Pass Dispatch as the
// VisitFunc and the Visitor as the state:
//
//	yaunicode.DecodeUTF8[yaunicode.Visitor](units, 0, yaunicode.Dispatch, counter)
type Visitor interface {
	Visit(r rune) error
}

// Dispatch forwards r to v.
func Dispatch(r rune, v Visitor) error {
	return v.Visit(r)
}

// LengthCounter sums the destination code-unit length of every visited codepoint.
type LengthCounter struct {
	Encoding Encoding
	Total    int
}

func (c *LengthCounter) Visit(r rune) error {
	n := c.Encoding.CodeUnitLength(r)
	if n == 0 {
		return newError(KindInternalLengthMismatch, c.Encoding, -1, uint32(r))
	}

	c.Total += n

	return nil
}

type codec[U Unit] struct {
	encoding Encoding
	encode   func(buf []U, r rune, count int) int
}

var (
	utf8Codec  = codec[byte]{encoding: UTF8, encode: EncodeUTF8}
	utf16Codec = codec[uint16]{encoding: UTF16, encode: EncodeUTF16}
	utf32Codec = codec[uint32]{encoding: UTF32, encode: EncodeUTF32}
)

// Cursor encodes visited codepoints into a caller-provided slice.
type Cursor[U Unit] struct {
	units []U
	pos   int
	codec codec[U]
}

func NewUTF8Cursor(units []byte) *Cursor[byte] {
	return &Cursor[byte]{units: units, codec: utf8Codec}
}

func NewUTF16Cursor(units []uint16) *Cursor[uint16] {
	return &Cursor[uint16]{units: units, codec: utf16Codec}
}

func NewUTF32Cursor(units []uint32) *Cursor[uint32] {
	return &Cursor[uint32]{units: units, codec: utf32Codec}
}

// Visit writes r at the cursor and advances it. A codepoint the encoding
// cannot represent, or one that does not fit in the remaining slice, is
// KindInternalLengthMismatch and leaves the cursor where it was.
func (c *Cursor[U]) Visit(r rune) error {
	count := c.codec.encoding.CodeUnitLength(r)
	if count == 0 || count > len(c.units)-c.pos {
		return newError(KindInternalLengthMismatch, c.codec.encoding, c.pos, uint32(r))
	}

	c.pos += c.codec.encode(c.units[c.pos:], r, count)

	return nil
}

// Written returns the number of units written so far.
func (c *Cursor[U]) Written() int {
	return c.pos
}

// Units returns the written prefix of the underlying slice.
func (c *Cursor[U]) Units() []U {
	return c.units[:c.pos]
}
