//go:build !yaunicode_noalloc

package yaunicode

import (
	"github.com/YaCodeDev/GoYaUnishim/yaerrors"
)

// Converter runs the two-pass conversions. MaxUnits caps the destination
// units a single call may produce, counting the terminator of the Convert
// methods. 0 means no cap.
type Converter struct {
	MaxUnits int
}

func NewConverter(maxUnits int) *Converter {
	return &Converter{MaxUnits: maxUnits}
}

var defaultConverter = &Converter{}

// ConvertUTF8ToUTF16 converts a zero-terminated (or slice-terminated) UTF-8
// buffer into an exactly sized UTF-16 buffer ending with a zero unit.
func ConvertUTF8ToUTF16(units []byte) ([]uint16, yaerrors.Error) {
	return defaultConverter.UTF8ToUTF16(units, 0)
}

func ConvertUTF8ToUTF32(units []byte) ([]uint32, yaerrors.Error) {
	return defaultConverter.UTF8ToUTF32(units, 0)
}

func ConvertUTF16ToUTF8(units []uint16) ([]byte, yaerrors.Error) {
	return defaultConverter.UTF16ToUTF8(units, 0)
}

func ConvertUTF16ToUTF32(units []uint16) ([]uint32, yaerrors.Error) {
	return defaultConverter.UTF16ToUTF32(units, 0)
}

func ConvertUTF32ToUTF8(units []uint32) ([]byte, yaerrors.Error) {
	return defaultConverter.UTF32ToUTF8(units, 0)
}

func ConvertUTF32ToUTF16(units []uint32) ([]uint16, yaerrors.Error) {
	return defaultConverter.UTF32ToUTF16(units, 0)
}

func (c *Converter) UTF8ToUTF16(units []byte, bound int) ([]uint16, yaerrors.Error) {
	return convert(units, bound, UTF8, DecodeUTF8[Visitor], utf16Codec, c.MaxUnits)
}

func (c *Converter) UTF8ToUTF32(units []byte, bound int) ([]uint32, yaerrors.Error) {
	return convert(units, bound, UTF8, DecodeUTF8[Visitor], utf32Codec, c.MaxUnits)
}

func (c *Converter) UTF16ToUTF8(units []uint16, bound int) ([]byte, yaerrors.Error) {
	return convert(units, bound, UTF16, DecodeUTF16[Visitor], utf8Codec, c.MaxUnits)
}

func (c *Converter) UTF16ToUTF32(units []uint16, bound int) ([]uint32, yaerrors.Error) {
	return convert(units, bound, UTF16, DecodeUTF16[Visitor], utf32Codec, c.MaxUnits)
}

func (c *Converter) UTF32ToUTF8(units []uint32, bound int) ([]byte, yaerrors.Error) {
	return convert(units, bound, UTF32, DecodeUTF32[Visitor], utf8Codec, c.MaxUnits)
}

func (c *Converter) UTF32ToUTF16(units []uint32, bound int) ([]uint16, yaerrors.Error) {
	return convert(units, bound, UTF32, DecodeUTF32[Visitor], utf16Codec, c.MaxUnits)
}

// convert sizes the destination with a LengthCounter pass, then fills it
// with a Cursor pass over the same input.
func convert[S, D Unit](
	units []S,
	bound int,
	from Encoding,
	decode func([]S, int, VisitFunc[Visitor], Visitor) error,
	to codec[D],
	maxUnits int,
) ([]D, yaerrors.Error) {
	counter := &LengthCounter{Encoding: to.encoding}
	if err := decode(units, bound, Dispatch, counter); err != nil {
		return nil, convertError(err, from, to.encoding, "count")
	}

	buf, err := allocUnits[D](counter.Total, maxUnits, to.encoding)
	if err != nil {
		return nil, convertError(err, from, to.encoding, "allocate")
	}
	defer buf.release()

	cursor := buf.cursor(to)
	if err := decode(units, bound, Dispatch, cursor); err != nil {
		return nil, convertError(err, from, to.encoding, "encode")
	}

	if cursor.Written() != counter.Total {
		return nil, convertError(
			newError(KindInternalLengthMismatch, to.encoding, cursor.Written(), 0),
			from,
			to.encoding,
			"encode",
		)
	}

	return buf.freeze(), nil
}

func convertError(err error, from, to Encoding, stage string) yaerrors.Error {
	return yaerrors.FromErrorf(
		HTTPStatus(err),
		err,
		"[UNICODE] %s to %s: %s",
		from,
		to,
		stage,
	)
}
