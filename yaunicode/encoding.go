package yaunicode

import "strings"

// Encoding identifies one of the three supported Unicode encoding forms.
type Encoding uint8

const (
	UTF8 Encoding = iota + 1
	UTF16
	UTF32
)

func (e Encoding) String() string {
	switch e {
	case UTF8:
		return "utf-8"
	case UTF16:
		return "utf-16"
	case UTF32:
		return "utf-32"
	default:
		return "unknown"
	}
}

// UnitSize returns the width of one code unit in bytes, or 0 for an unknown encoding.
func (e Encoding) UnitSize() int {
	switch e {
	case UTF8:
		return 1
	case UTF16:
		return 2
	case UTF32:
		return 4
	default:
		return 0
	}
}

// CodeUnitLength dispatches to the length function of e.
// It returns 0 for an unknown encoding.
func (e Encoding) CodeUnitLength(r rune) int {
	switch e {
	case UTF8:
		return UTF8CodeUnitLength(r)
	case UTF16:
		return UTF16CodeUnitLength(r)
	case UTF32:
		return UTF32CodeUnitLength(r)
	default:
		return 0
	}
}

// ParseEncoding accepts "utf8", "utf-8", "utf_8" and the same spellings of
// utf-16 and utf-32, case-insensitively.
func ParseEncoding(name string) (Encoding, error) {
	normalized := strings.NewReplacer("-", "", "_", "").Replace(strings.ToLower(strings.TrimSpace(name)))

	switch normalized {
	case "utf8":
		return UTF8, nil
	case "utf16":
		return UTF16, nil
	case "utf32":
		return UTF32, nil
	default:
		return 0, ErrUnknownEncoding
	}
}

func (e *Encoding) UnmarshalText(text []byte) error {
	parsed, err := ParseEncoding(string(text))
	if err != nil {
		return err
	}

	*e = parsed

	return nil
}

func (e Encoding) MarshalText() ([]byte, error) {
	if e.UnitSize() == 0 {
		return nil, ErrUnknownEncoding
	}

	return []byte(e.String()), nil
}
