package yaunicode

// DecodeUTF16 walks units as UTF-16 and calls visit for every codepoint.
// A lone low surrogate is KindUnexpectedContinuation, a high surrogate
// followed by anything but a low surrogate is KindExpectedContinuation.
func DecodeUTF16[S any](units []uint16, bound int, visit VisitFunc[S], state S) error {
	limit, err := scanLimit(units, bound, UTF16)
	if err != nil {
		return err
	}

	for i := 0; !cut(units, i, limit, bound); {
		unit := units[i]

		if unit < surrogateMin || unit > surrogateMax {
			if err := visitRune(visit, rune(unit), state); err != nil {
				return err
			}

			i++

			continue
		}

		if unit >= lowSurrogateMin {
			return newError(KindUnexpectedContinuation, UTF16, i, uint32(unit))
		}

		if cut(units, i+1, limit, bound) {
			return newError(KindTruncatedSequence, UTF16, i, 0)
		}

		low := units[i+1]
		if low < lowSurrogateMin || low > surrogateMax {
			return newError(KindExpectedContinuation, UTF16, i, uint32(low))
		}

		r := supplementaryMin + rune(unit&surrogateMask)<<10 + rune(low&surrogateMask)

		if err := visitRune(visit, r, state); err != nil {
			return err
		}

		i += 2
	}

	return nil
}

// ValidateUTF16 reports the first invalid sequence in units.
func ValidateUTF16(units []uint16, bound int) error {
	return DecodeUTF16[struct{}](units, bound, nil, struct{}{})
}

// CountUTF16 returns the number of codepoints in units.
func CountUTF16(units []uint16, bound int) (int, error) {
	var total int

	if err := DecodeUTF16[*int](units, bound, countVisit, &total); err != nil {
		return total, err
	}

	return total, nil
}
