package yaunicode

// DecodeUTF8 walks units as UTF-8 and calls visit for every codepoint.
//
// It stops at the first invalid sequence with an *Error, or at the first
// visitor error, which is returned as is. Codepoints before the failure
// have already been visited. visit may be nil to only validate.
func DecodeUTF8[S any](units []byte, bound int, visit VisitFunc[S], state S) error {
	limit, err := scanLimit(units, bound, UTF8)
	if err != nil {
		return err
	}

	for i := 0; !cut(units, i, limit, bound); {
		lead := units[i]

		var (
			size int
			r    rune
		)

		switch {
		case lead < 0x80:
			size, r = 1, rune(lead)
		case lead < 0xC0:
			return newError(KindUnexpectedContinuation, UTF8, i, uint32(lead))
		case lead < 0xE0:
			size, r = 2, rune(lead&0x1F)
		case lead < 0xF0:
			size, r = 3, rune(lead&0x0F)
		case lead < 0xF8:
			size, r = 4, rune(lead&0x07)
		default:
			return newError(KindUnexpectedContinuation, UTF8, i, uint32(lead))
		}

		for k := 1; k < size; k++ {
			if cut(units, i+k, limit, bound) {
				return newError(KindTruncatedSequence, UTF8, i, 0)
			}

			next := units[i+k]
			if next&0xC0 != 0x80 {
				return newError(KindExpectedContinuation, UTF8, i, uint32(next))
			}

			r = r<<6 | rune(next&0x3F)
		}

		if kind := checkUTF8Scalar(r, size); kind != 0 {
			return newError(kind, UTF8, i, uint32(r))
		}

		if err := visitRune(visit, r, state); err != nil {
			return err
		}

		i += size
	}

	return nil
}

// checkUTF8Scalar applies, in order, the overlong, surrogate and range checks
// to a codepoint assembled from size bytes. Overlong wins, so F0 8D A0 80 is
// overlong and not a surrogate.
func checkUTF8Scalar(r rune, size int) Kind {
	if size > 1 && minimalUTF8Length(r) != size {
		return KindOverlongEncoding
	}

	if size == 3 && isSurrogate(r) {
		return KindForbiddenSurrogate
	}

	if size == 4 && r > MaxRune {
		return KindCodepointTooLarge
	}

	return 0
}

func minimalUTF8Length(r rune) int {
	switch {
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

// ValidateUTF8 reports the first invalid sequence in units.
func ValidateUTF8(units []byte, bound int) error {
	return DecodeUTF8[struct{}](units, bound, nil, struct{}{})
}

// CountUTF8 returns the number of codepoints in units.
func CountUTF8(units []byte, bound int) (int, error) {
	var total int

	if err := DecodeUTF8[*int](units, bound, countVisit, &total); err != nil {
		return total, err
	}

	return total, nil
}
