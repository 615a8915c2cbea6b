package yaunicode

import (
	"errors"
	"fmt"
	"strings"
)

// Kind is the closed set of failures the engine reports.
type Kind uint8

const (
	// KindInvalidArgument: nil buffer, negative bound or bound past the slice.
	KindInvalidArgument Kind = iota + 1
	// KindUnexpectedContinuation: a continuation or low surrogate unit where a
	// lead unit was expected, or a byte that cannot start a UTF-8 sequence.
	KindUnexpectedContinuation
	// KindTruncatedSequence: a multi-unit sequence cut by the bound, a zero
	// terminator or the end of the slice.
	KindTruncatedSequence
	// KindExpectedContinuation: a unit that should continue a sequence is not
	// a continuation byte or low surrogate.
	KindExpectedContinuation
	// KindForbiddenSurrogate: a decoded codepoint in [0xD800, 0xDFFF].
	KindForbiddenSurrogate
	// KindCodepointTooLarge: a decoded codepoint above 0x10FFFF.
	KindCodepointTooLarge
	// KindOverlongEncoding: more units than the minimal encoding needs.
	// Reported in preference to KindForbiddenSurrogate.
	KindOverlongEncoding
	// KindAllocationFailure: the destination buffer could not be allocated.
	KindAllocationFailure
	// KindInternalLengthMismatch: a decoded codepoint has no length in the
	// destination encoding, or the destination ran out of room.
	KindInternalLengthMismatch
)

var (
	ErrInvalidArgument        = errors.New("invalid argument")
	ErrUnexpectedContinuation = errors.New("unexpected continuation unit")
	ErrTruncatedSequence      = errors.New("truncated sequence")
	ErrExpectedContinuation   = errors.New("expected continuation unit")
	ErrForbiddenSurrogate     = errors.New("forbidden surrogate codepoint")
	ErrCodepointTooLarge      = errors.New("codepoint too large")
	ErrOverlongEncoding       = errors.New("overlong encoding")
	ErrAllocationFailure      = errors.New("allocation failure")
	ErrInternalLengthMismatch = errors.New("internal length mismatch")

	ErrUnknownEncoding = errors.New("unknown encoding")
)

var kindSentinels = [...]error{
	KindInvalidArgument:        ErrInvalidArgument,
	KindUnexpectedContinuation: ErrUnexpectedContinuation,
	KindTruncatedSequence:      ErrTruncatedSequence,
	KindExpectedContinuation:   ErrExpectedContinuation,
	KindForbiddenSurrogate:     ErrForbiddenSurrogate,
	KindCodepointTooLarge:      ErrCodepointTooLarge,
	KindOverlongEncoding:       ErrOverlongEncoding,
	KindAllocationFailure:      ErrAllocationFailure,
	KindInternalLengthMismatch: ErrInternalLengthMismatch,
}

// Err returns the sentinel error of k, or nil for an unknown kind.
func (k Kind) Err() error {
	if int(k) >= len(kindSentinels) {
		return nil
	}

	return kindSentinels[k]
}

func (k Kind) String() string {
	if err := k.Err(); err != nil {
		return strings.ReplaceAll(err.Error(), " ", "_")
	}

	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Error describes where and why decoding or conversion failed.
type Error struct {
	Kind     Kind
	Encoding Encoding
	// Offset is the index of the first unit of the offending sequence, or -1
	// when the failure is not tied to a position in the source.
	Offset int
	// Value is the offending unit or assembled codepoint when there is one.
	Value uint32
}

func (e *Error) Error() string {
	var b strings.Builder

	b.WriteString(e.Encoding.String())
	b.WriteString(": ")

	if sentinel := e.Kind.Err(); sentinel != nil {
		b.WriteString(sentinel.Error())
	} else {
		b.WriteString(e.Kind.String())
	}

	if e.Offset >= 0 {
		fmt.Fprintf(&b, " at unit %d", e.Offset)
	}

	switch e.Kind {
	case KindForbiddenSurrogate,
		KindCodepointTooLarge,
		KindOverlongEncoding,
		KindInternalLengthMismatch:
		fmt.Fprintf(&b, " (U+%04X)", e.Value)
	case KindUnexpectedContinuation, KindExpectedContinuation:
		fmt.Fprintf(&b, " (unit %#x)", e.Value)
	}

	return b.String()
}

// Unwrap returns the sentinel of e.Kind so that errors.Is(err, ErrOverlongEncoding) works.
func (e *Error) Unwrap() error {
	return e.Kind.Err()
}

func newError(kind Kind, encoding Encoding, offset int, value uint32) *Error {
	return &Error{
		Kind:     kind,
		Encoding: encoding,
		Offset:   offset,
		Value:    value,
	}
}
