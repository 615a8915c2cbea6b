package yaunicode

import (
	"errors"
	"net/http"
	"strconv"
)

// Integer status codes of the C-style contract. Decoder specific codes
// (1 to 6 for UTF-8, 1 to 3 for UTF-16, 1 and 2 for UTF-32) come from
// (*Error).Status.
const (
	StatusOK                     = 0
	StatusInvalidArgument        = -1
	StatusInternalLengthMismatch = -2
	StatusVisitor                = -3
	StatusAllocationFailure      = 7
)

// Stop is a visitor error carrying an integer status. Returning Stop(n)
// from a visitor ends iteration and Status reports n. Use a nonzero n.
type Stop int

func (s Stop) Error() string {
	return "iteration stopped with status " + strconv.Itoa(int(s))
}

func (s Stop) Status() int {
	return int(s)
}

// Status maps e to the integer status the decoder for e.Encoding reports.
func (e *Error) Status() int {
	switch e.Kind {
	case KindInvalidArgument:
		return StatusInvalidArgument
	case KindUnexpectedContinuation:
		return 1
	case KindTruncatedSequence:
		return 2
	case KindExpectedContinuation:
		return 3
	case KindForbiddenSurrogate:
		if e.Encoding == UTF32 {
			return 1
		}

		return 4
	case KindCodepointTooLarge:
		if e.Encoding == UTF32 {
			return 2
		}

		return 5
	case KindOverlongEncoding:
		return 6
	case KindAllocationFailure:
		return StatusAllocationFailure
	case KindInternalLengthMismatch:
		return StatusInternalLengthMismatch
	default:
		return StatusVisitor
	}
}

// Status returns the integer status for an error returned by this package.
// nil is StatusOK; anything in the chain with a Status() int method (an
// *Error or a Stop) reports its own value; any other error is StatusVisitor.
func Status(err error) int {
	if err == nil {
		return StatusOK
	}

	var coder interface{ Status() int }
	if errors.As(err, &coder) {
		return coder.Status()
	}

	return StatusVisitor
}

// HTTPStatus classifies err the way yaerrors codes are chosen: input errors
// are http.StatusBadRequest, allocation and internal failures are
// http.StatusInternalServerError.
func HTTPStatus(err error) int {
	if errors.Is(err, ErrAllocationFailure) || errors.Is(err, ErrInternalLengthMismatch) {
		return http.StatusInternalServerError
	}

	return http.StatusBadRequest
}
