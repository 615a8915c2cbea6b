package yaunicode

const (
	// MaxRune is the largest Unicode scalar value.
	MaxRune = 0x10FFFF

	surrogateMin = 0xD800
	surrogateMax = 0xDFFF

	highSurrogateMin = 0xD800
	lowSurrogateMin  = 0xDC00
	surrogateMask    = 0x3FF

	supplementaryMin = 0x10000
)

func isSurrogate(r rune) bool {
	return r >= surrogateMin && r <= surrogateMax
}

// UTF8CodeUnitLength returns how many bytes encode r in UTF-8, or 0 when r is
// negative, a surrogate or above MaxRune.
func UTF8CodeUnitLength(r rune) int {
	switch {
	case r < 0, isSurrogate(r), r > MaxRune:
		return 0
	case r < 0x80:
		return 1
	case r < 0x800:
		return 2
	case r < supplementaryMin:
		return 3
	default:
		return 4
	}
}

// UTF16CodeUnitLength returns 1 for the BMP, 2 for supplementary planes and
// 0 for anything that is not a scalar value.
func UTF16CodeUnitLength(r rune) int {
	switch {
	case r < 0, isSurrogate(r), r > MaxRune:
		return 0
	case r < supplementaryMin:
		return 1
	default:
		return 2
	}
}

// UTF32CodeUnitLength returns 1 for every scalar value.
func UTF32CodeUnitLength(r rune) int {
	if r < 0 || isSurrogate(r) || r > MaxRune {
		return 0
	}

	return 1
}
