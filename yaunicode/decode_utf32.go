package yaunicode

// DecodeUTF32 walks units as UTF-32. Every unit is one codepoint; surrogates
// and values above MaxRune are rejected.
func DecodeUTF32[S any](units []uint32, bound int, visit VisitFunc[S], state S) error {
	limit, err := scanLimit(units, bound, UTF32)
	if err != nil {
		return err
	}

	for i := 0; !cut(units, i, limit, bound); i++ {
		unit := units[i]

		switch {
		case unit >= surrogateMin && unit <= surrogateMax:
			return newError(KindForbiddenSurrogate, UTF32, i, unit)
		case unit > MaxRune:
			return newError(KindCodepointTooLarge, UTF32, i, unit)
		}

		if err := visitRune(visit, rune(unit), state); err != nil {
			return err
		}
	}

	return nil
}

// ValidateUTF32 reports the first invalid unit in units.
func ValidateUTF32(units []uint32, bound int) error {
	return DecodeUTF32[struct{}](units, bound, nil, struct{}{})
}

// CountUTF32 returns the number of codepoints in units.
func CountUTF32(units []uint32, bound int) (int, error) {
	var total int

	if err := DecodeUTF32[*int](units, bound, countVisit, &total); err != nil {
		return total, err
	}

	return total, nil
}
