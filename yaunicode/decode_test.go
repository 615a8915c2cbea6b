package yaunicode_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YaCodeDev/GoYaUnishim/yaunicode"
)

func collect(r rune, out *[]rune) error {
	*out = append(*out, r)

	return nil
}

func decode8(t *testing.T, units []byte, bound int) ([]rune, error) {
	t.Helper()

	got := []rune{}
	err := yaunicode.DecodeUTF8(units, bound, collect, &got)

	return got, err
}

func decode16(t *testing.T, units []uint16, bound int) ([]rune, error) {
	t.Helper()

	got := []rune{}
	err := yaunicode.DecodeUTF16(units, bound, collect, &got)

	return got, err
}

func decode32(t *testing.T, units []uint32, bound int) ([]rune, error) {
	t.Helper()

	got := []rune{}
	err := yaunicode.DecodeUTF32(units, bound, collect, &got)

	return got, err
}

func requireKind(t *testing.T, err error, kind yaunicode.Kind, offset int) {
	t.Helper()

	var uerr *yaunicode.Error
	require.ErrorAs(t, err, &uerr)
	assert.Equal(t, kind, uerr.Kind, "kind")
	assert.Equal(t, offset, uerr.Offset, "offset")
	assert.ErrorIs(t, err, kind.Err())
}

func TestDecodeUTF8_Valid(t *testing.T) {
	got, err := decode8(t, []byte{0x41}, 0)
	require.NoError(t, err)
	assert.Equal(t, []rune{0x41}, got)

	units := []byte("\u007f\u0080\u07ff\u0800\ud7ff\ue000\uffff\U00010000\U0010ffff")
	got, err = decode8(t, units, 0)
	require.NoError(t, err)

	want := []rune{0x7F, 0x80, 0x7FF, 0x800, 0xD7FF, 0xE000, 0xFFFF, 0x10000, 0x10FFFF}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("decoded codepoints mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeUTF8_Errors(t *testing.T) {
	tests := []struct {
		name   string
		units  []byte
		bound  int
		kind   yaunicode.Kind
		offset int
		status int
	}{
		{"stray continuation", []byte{0x41, 0x80}, 0, yaunicode.KindUnexpectedContinuation, 1, 1},
		{"invalid lead", []byte{0xF8, 0x80, 0x80, 0x80}, 0, yaunicode.KindUnexpectedContinuation, 0, 1},
		{"lead 0xFF", []byte{0xFF}, 0, yaunicode.KindUnexpectedContinuation, 0, 1},
		{"truncated by slice end", []byte{0xC3}, 0, yaunicode.KindTruncatedSequence, 0, 2},
		{"truncated by terminator", []byte{0xE2, 0x82, 0x00}, 0, yaunicode.KindTruncatedSequence, 0, 2},
		{"truncated by bound", []byte{0xE0, 0x80}, 2, yaunicode.KindTruncatedSequence, 0, 2},
		{"truncated by smaller bound", []byte{0x41, 0xC3, 0xA9}, 2, yaunicode.KindTruncatedSequence, 1, 2},
		{"ascii continuation", []byte{0xC3, 0x41}, 0, yaunicode.KindExpectedContinuation, 0, 3},
		{"zero continuation inside bound", []byte{0xC3, 0x00}, 2, yaunicode.KindExpectedContinuation, 0, 3},
		{"surrogate low end", []byte{0xED, 0xA0, 0x80}, 0, yaunicode.KindForbiddenSurrogate, 0, 4},
		{"surrogate high end", []byte{0xED, 0xBF, 0xBF}, 0, yaunicode.KindForbiddenSurrogate, 0, 4},
		{"too large", []byte{0xF4, 0x90, 0x80, 0x80}, 0, yaunicode.KindCodepointTooLarge, 0, 5},
		{"too large lead", []byte{0xF7, 0xBF, 0xBF, 0xBF}, 0, yaunicode.KindCodepointTooLarge, 0, 5},
		{"overlong nul", []byte{0xC0, 0x80}, 0, yaunicode.KindOverlongEncoding, 0, 6},
		{"overlong 3 byte", []byte{0xE0, 0x9F, 0xBF}, 0, yaunicode.KindOverlongEncoding, 0, 6},
		{"overlong 4 byte", []byte{0xF0, 0x8F, 0xBF, 0xBF}, 0, yaunicode.KindOverlongEncoding, 0, 6},
		{"overlong surrogate", []byte{0xF0, 0x8D, 0xA0, 0x80}, 0, yaunicode.KindOverlongEncoding, 0, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := yaunicode.ValidateUTF8(tt.units, tt.bound)
			requireKind(t, err, tt.kind, tt.offset)
			assert.Equal(t, tt.status, yaunicode.Status(err))
		})
	}
}

func TestDecodeUTF8_TerminatorVersusBound(t *testing.T) {
	units := []byte{0x41, 0x00, 0x42}

	got, err := decode8(t, units, 0)
	require.NoError(t, err)
	assert.Equal(t, []rune{0x41}, got)

	got, err = decode8(t, units, 3)
	require.NoError(t, err)
	assert.Equal(t, []rune{0x41, 0x00, 0x42}, got)

	got, err = decode8(t, []byte{0x00, 0x80}, 0)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDecodeUTF8_VisitsPrefixBeforeError(t *testing.T) {
	got, err := decode8(t, []byte{0x61, 0xC3, 0xA9, 0xC0, 0x80}, 0)
	requireKind(t, err, yaunicode.KindOverlongEncoding, 3)
	assert.Equal(t, []rune{0x61, 0xE9}, got)
}

func TestDecode_InvalidArgument(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"nil utf-8", yaunicode.ValidateUTF8(nil, 0)},
		{"negative bound", yaunicode.ValidateUTF8([]byte{0x41}, -1)},
		{"bound past slice", yaunicode.ValidateUTF8([]byte{0x41}, 2)},
		{"nil utf-16", yaunicode.ValidateUTF16(nil, 0)},
		{"utf-16 bound past slice", yaunicode.ValidateUTF16([]uint16{1}, 5)},
		{"nil utf-32", yaunicode.ValidateUTF32(nil, 0)},
		{"utf-32 negative bound", yaunicode.ValidateUTF32([]uint32{1}, -3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requireKind(t, tt.err, yaunicode.KindInvalidArgument, -1)
			assert.Equal(t, yaunicode.StatusInvalidArgument, yaunicode.Status(tt.err))
		})
	}
}

func TestDecode_EmptyInput(t *testing.T) {
	assert.NoError(t, yaunicode.ValidateUTF8([]byte{}, 0))
	assert.NoError(t, yaunicode.ValidateUTF16([]uint16{}, 0))
	assert.NoError(t, yaunicode.ValidateUTF32([]uint32{}, 0))
}

func TestDecodeUTF16(t *testing.T) {
	got, err := decode16(t, []uint16{0xD83D, 0xDE00}, 0)
	require.NoError(t, err)
	assert.Equal(t, []rune{0x1F600}, got)

	got, err = decode16(t, []uint16{0x41, 0xFFFF, 0xD800, 0xDC00, 0xDBFF, 0xDFFF}, 0)
	require.NoError(t, err)
	assert.Equal(t, []rune{0x41, 0xFFFF, 0x10000, 0x10FFFF}, got)

	tests := []struct {
		name   string
		units  []uint16
		bound  int
		kind   yaunicode.Kind
		offset int
		status int
	}{
		{"lone low surrogate", []uint16{0x41, 0xDC00}, 0, yaunicode.KindUnexpectedContinuation, 1, 1},
		{"high at slice end", []uint16{0xD800}, 0, yaunicode.KindTruncatedSequence, 0, 2},
		{"high before terminator", []uint16{0xD800, 0x0000}, 0, yaunicode.KindTruncatedSequence, 0, 2},
		{"high at bound", []uint16{0xD800, 0xDC00}, 1, yaunicode.KindTruncatedSequence, 0, 2},
		{"high then bmp", []uint16{0xD800, 0x0041}, 0, yaunicode.KindExpectedContinuation, 0, 3},
		{"high then high", []uint16{0xDBFF, 0xD800}, 0, yaunicode.KindExpectedContinuation, 0, 3},
		{"high then zero inside bound", []uint16{0xD800, 0x0000}, 2, yaunicode.KindExpectedContinuation, 0, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := yaunicode.ValidateUTF16(tt.units, tt.bound)
			requireKind(t, err, tt.kind, tt.offset)
			assert.Equal(t, tt.status, yaunicode.Status(err))
		})
	}
}

func TestDecodeUTF32(t *testing.T) {
	got, err := decode32(t, []uint32{0x41, 0xD7FF, 0xE000, 0x10FFFF, 0, 0x42}, 0)
	require.NoError(t, err)
	assert.Equal(t, []rune{0x41, 0xD7FF, 0xE000, 0x10FFFF}, got)

	err = yaunicode.ValidateUTF32([]uint32{0xD800}, 0)
	requireKind(t, err, yaunicode.KindForbiddenSurrogate, 0)
	assert.Equal(t, 1, yaunicode.Status(err))

	err = yaunicode.ValidateUTF32([]uint32{0x41, 0xDFFF}, 2)
	requireKind(t, err, yaunicode.KindForbiddenSurrogate, 1)

	err = yaunicode.ValidateUTF32([]uint32{0x110000}, 0)
	requireKind(t, err, yaunicode.KindCodepointTooLarge, 0)
	assert.Equal(t, 2, yaunicode.Status(err))

	err = yaunicode.ValidateUTF32([]uint32{0xFFFFFFFF}, 1)
	requireKind(t, err, yaunicode.KindCodepointTooLarge, 0)
}

func TestDecode_VisitorStopsIteration(t *testing.T) {
	var calls int

	stopAtThird := func(_ rune, n *int) error {
		*n++
		if *n == 3 {
			return yaunicode.Stop(9)
		}

		return nil
	}

	t.Run("utf-8", func(t *testing.T) {
		calls = 0
		err := yaunicode.DecodeUTF8([]byte("abcdef"), 0, stopAtThird, &calls)
		assert.Equal(t, yaunicode.Stop(9), err)
		assert.Equal(t, 9, yaunicode.Status(err))
		assert.Equal(t, 3, calls)
	})

	t.Run("utf-16", func(t *testing.T) {
		calls = 0
		err := yaunicode.DecodeUTF16([]uint16{'a', 0xD83D, 0xDE00, 'b', 'c'}, 0, stopAtThird, &calls)
		assert.Equal(t, yaunicode.Stop(9), err)
		assert.Equal(t, 3, calls)
	})

	t.Run("utf-32", func(t *testing.T) {
		calls = 0
		err := yaunicode.DecodeUTF32([]uint32{'a', 'b', 'c', 'd'}, 4, stopAtThird, &calls)
		assert.Equal(t, yaunicode.Stop(9), err)
		assert.Equal(t, 3, calls)
	})
}

func TestDecode_VisitorErrorIsReturnedUnchanged(t *testing.T) {
	errBoom := errors.New("boom")

	err := yaunicode.DecodeUTF32([]uint32{'a'}, 0, func(rune, struct{}) error { return errBoom }, struct{}{})
	assert.Same(t, errBoom, err)
	assert.Equal(t, yaunicode.StatusVisitor, yaunicode.Status(err))
}

func TestCount(t *testing.T) {
	n, err := yaunicode.CountUTF8([]byte("héllo \U0001F600"), 0)
	require.NoError(t, err)
	assert.Equal(t, 7, n)

	n, err = yaunicode.CountUTF16([]uint16{0xD83D, 0xDE00, 0x41}, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = yaunicode.CountUTF32([]uint32{1, 2, 0, 3}, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	n, err = yaunicode.CountUTF8([]byte{0x41, 0x42, 0xFF}, 0)
	requireKind(t, err, yaunicode.KindUnexpectedContinuation, 2)
	assert.Equal(t, 2, n)
}

func TestStatus(t *testing.T) {
	assert.Equal(t, yaunicode.StatusOK, yaunicode.Status(nil))
	assert.Equal(t, 4, yaunicode.Status(&yaunicode.Error{Kind: yaunicode.KindForbiddenSurrogate, Encoding: yaunicode.UTF8}))
	assert.Equal(t, yaunicode.StatusAllocationFailure, yaunicode.Status(&yaunicode.Error{Kind: yaunicode.KindAllocationFailure}))
	assert.Equal(t, yaunicode.StatusInternalLengthMismatch,
		yaunicode.Status(&yaunicode.Error{Kind: yaunicode.KindInternalLengthMismatch}))
}

func TestError_Message(t *testing.T) {
	err := yaunicode.ValidateUTF8([]byte{0x41, 0xED, 0xA0, 0x80}, 0)
	assert.EqualError(t, err, "utf-8: forbidden surrogate codepoint at unit 1 (U+D800)")

	err = yaunicode.ValidateUTF16([]uint16{0xDC00}, 0)
	assert.EqualError(t, err, "utf-16: unexpected continuation unit at unit 0 (unit 0xdc00)")

	assert.Equal(t, "overlong_encoding", yaunicode.KindOverlongEncoding.String())
}
