//go:build !yaunicode_noalloc

package yaunicode

import (
	"encoding/binary"

	"golang.org/x/text/transform"
)

// Transformer converts byte-serialized code units of one encoding into
// another and implements transform.Transformer.
//
// It converts its whole input in a single Transform call, which suits
// transform.Bytes. Zero units are ordinary text and no terminator is written.
type Transformer struct {
	transform.NopResetter

	src      Encoding
	dst      Encoding
	order    binary.ByteOrder
	maxUnits int
}

// NewTransformer returns an uncapped Transformer. A nil order means little endian.
func NewTransformer(src, dst Encoding, order binary.ByteOrder) *Transformer {
	return defaultConverter.NewTransformer(src, dst, order)
}

// NewTransformer returns a Transformer whose output may not exceed
// c.MaxUnits destination units.
func (c *Converter) NewTransformer(src, dst Encoding, order binary.ByteOrder) *Transformer {
	if order == nil {
		order = binary.LittleEndian
	}

	return &Transformer{
		src:      src,
		dst:      dst,
		order:    order,
		maxUnits: c.MaxUnits,
	}
}

// Transform needs atEOF; a partial input gets transform.ErrShortSrc.
func (t *Transformer) Transform(dst, src []byte, atEOF bool) (int, int, error) {
	if !atEOF {
		return 0, 0, transform.ErrShortSrc
	}

	if t.dst.UnitSize() == 0 {
		return 0, 0, newError(KindInvalidArgument, t.dst, -1, 0)
	}

	decode, err := byteDecoder(src, t.src, t.order)
	if err != nil {
		return 0, 0, err
	}

	counter := &LengthCounter{Encoding: t.dst}
	if err := decode(counter); err != nil {
		return 0, 0, err
	}

	if t.maxUnits > 0 && counter.Total > t.maxUnits {
		return 0, 0, newError(KindAllocationFailure, t.dst, -1, 0)
	}

	size := counter.Total * t.dst.UnitSize()
	if size > len(dst) {
		return 0, 0, transform.ErrShortDst
	}

	sink := &byteSink{
		out:      dst[:size],
		encoding: t.dst,
		order:    t.order,
	}
	if err := decode(sink); err != nil {
		return 0, 0, err
	}

	return size, len(src), nil
}

// DecodeBytes decodes data as byte-serialized units of encoding and visits
// every codepoint. The whole of data is text: zero units do not terminate.
func DecodeBytes(data []byte, encoding Encoding, order binary.ByteOrder, v Visitor) error {
	if order == nil {
		order = binary.LittleEndian
	}

	decode, err := byteDecoder(data, encoding, order)
	if err != nil {
		return err
	}

	return decode(v)
}

// byteDecoder deserializes src once and returns a decoding pass that can be
// run any number of times.
func byteDecoder(src []byte, encoding Encoding, order binary.ByteOrder) (func(Visitor) error, error) {
	if encoding.UnitSize() == 0 {
		return nil, newError(KindInvalidArgument, encoding, -1, 0)
	}

	if len(src) == 0 {
		return func(Visitor) error { return nil }, nil
	}

	if rest := len(src) % encoding.UnitSize(); rest != 0 {
		return nil, newError(KindTruncatedSequence, encoding, len(src)/encoding.UnitSize(), 0)
	}

	switch encoding {
	case UTF16:
		units := make([]uint16, len(src)/2)
		for i := range units {
			units[i] = order.Uint16(src[2*i:])
		}

		return func(v Visitor) error {
			return DecodeUTF16[Visitor](units, len(units), Dispatch, v)
		}, nil
	case UTF32:
		units := make([]uint32, len(src)/4)
		for i := range units {
			units[i] = order.Uint32(src[4*i:])
		}

		return func(v Visitor) error {
			return DecodeUTF32[Visitor](units, len(units), Dispatch, v)
		}, nil
	default:
		return func(v Visitor) error {
			return DecodeUTF8[Visitor](src, len(src), Dispatch, v)
		}, nil
	}
}

// byteSink is the byte-serialized counterpart of Cursor.
type byteSink struct {
	out      []byte
	pos      int
	encoding Encoding
	order    binary.ByteOrder
}

func (s *byteSink) Visit(r rune) error {
	count := s.encoding.CodeUnitLength(r)
	width := count * s.encoding.UnitSize()

	if count == 0 || width > len(s.out)-s.pos {
		return newError(KindInternalLengthMismatch, s.encoding, s.pos, uint32(r))
	}

	switch s.encoding {
	case UTF8:
		EncodeUTF8(s.out[s.pos:], r, count)
	case UTF16:
		var pair [2]uint16

		EncodeUTF16(pair[:], r, count)

		for k, unit := range pair[:count] {
			s.order.PutUint16(s.out[s.pos+2*k:], unit)
		}
	case UTF32:
		var unit [1]uint32

		EncodeUTF32(unit[:], r, count)
		s.order.PutUint32(s.out[s.pos:], unit[0])
	}

	s.pos += width

	return nil
}
