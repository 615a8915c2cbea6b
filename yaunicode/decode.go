package yaunicode

// Unit is a code unit of one of the three encodings.
type Unit interface {
	~uint8 | ~uint16 | ~uint32
}

// VisitFunc receives every decoded codepoint together with the caller's
// state. A non-nil return stops decoding and is returned by the decoder
// unchanged.
type VisitFunc[S any] func(r rune, state S) error

// scanLimit checks the arguments of a decoder and returns the exclusive end
// of the scan. With bound 0 the scan is also cut by the first zero unit.
func scanLimit[U Unit](units []U, bound int, encoding Encoding) (int, error) {
	if units == nil || bound < 0 || bound > len(units) {
		return 0, newError(KindInvalidArgument, encoding, -1, 0)
	}

	if bound == 0 {
		return len(units), nil
	}

	return bound, nil
}

// cut reports whether index i is past the scanned region.
func cut[U Unit](units []U, i, limit, bound int) bool {
	return i >= limit || (bound == 0 && units[i] == 0)
}

func visitRune[S any](visit VisitFunc[S], r rune, state S) error {
	if visit == nil {
		return nil
	}

	return visit(r, state)
}

// countVisit is the visitor behind the Count functions.
func countVisit(_ rune, total *int) error {
	*total++

	return nil
}
