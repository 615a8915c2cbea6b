package valueparser_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/YaCodeDev/GoYaUnishim/valueparser"
	"github.com/YaCodeDev/GoYaUnishim/yalogger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mode uint8

var errUnknownMode = errors.New("unknown mode")

func (m *mode) Unmarshal(data string) error {
	switch data {
	case "strict":
		*m = 1
	case "lenient":
		*m = 2
	default:
		return errUnknownMode
	}

	return nil
}

func TestParseValue_BasicKinds(t *testing.T) {
	i, err := valueparser.ParseValue[int]("-42")
	require.Nil(t, err)
	assert.Equal(t, -42, i)

	u, err := valueparser.ParseValue[uint16]("65535")
	require.Nil(t, err)
	assert.Equal(t, uint16(65535), u)

	f, err := valueparser.ParseValue[float64]("3.5")
	require.Nil(t, err)
	assert.InDelta(t, 3.5, f, 0)

	b, err := valueparser.ParseValue[bool]("true")
	require.Nil(t, err)
	assert.True(t, b)

	s, err := valueparser.ParseValue[string]("utf-8")
	require.Nil(t, err)
	assert.Equal(t, "utf-8", s)

	raw, err := valueparser.ParseValue[[]byte]("ab")
	require.Nil(t, err)
	assert.Equal(t, []byte("ab"), raw)
}

func TestParseValue_OverflowFails(t *testing.T) {
	_, err := valueparser.ParseValue[uint8]("256")

	require.NotNil(t, err)
	assert.ErrorIs(t, err, valueparser.ErrUnparsableValue)
}

func TestParseValue_UnmarshalerFirst(t *testing.T) {
	level, err := valueparser.ParseValue[yalogger.Level]("warn")
	require.Nil(t, err)
	assert.Equal(t, yalogger.WarnLevel, level)

	level, err = valueparser.ParseValue[yalogger.Level]("4")
	require.Nil(t, err)
	assert.Equal(t, yalogger.InfoLevel, level)

	m, err := valueparser.ParseValue[mode]("lenient")
	require.Nil(t, err)
	assert.Equal(t, mode(2), m)
}

func TestParseArray_Works(t *testing.T) {
	got, err := valueparser.ParseArray[int]("1, 2,3", nil)
	require.Nil(t, err)
	assert.Equal(t, []int{1, 2, 3}, got)

	sep := ";"

	words, err := valueparser.ParseArray[string]("a;b", &sep)
	require.Nil(t, err)
	assert.Equal(t, []string{"a", "b"}, words)

	empty, err := valueparser.ParseArray[int]("", nil)
	require.Nil(t, err)
	assert.Empty(t, empty)

	_, err = valueparser.ParseArray[int]("1,x", nil)
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "failed to parse part 'x'")
}

func TestParseReflect_SliceOfUnmarshalers(t *testing.T) {
	got, err := valueparser.ParseReflect("info,debug", reflect.TypeFor[[]yalogger.Level]())
	require.Nil(t, err)
	assert.Equal(t, []yalogger.Level{yalogger.InfoLevel, yalogger.DebugLevel}, got.Interface())
}

func TestParseReflect_UnsupportedKind(t *testing.T) {
	_, err := valueparser.ParseReflect("x", reflect.TypeFor[map[string]int]())

	require.NotNil(t, err)
	assert.ErrorIs(t, err, valueparser.ErrInvalidType)
}

func TestTryUnmarshal_RejectsPlainTypes(t *testing.T) {
	_, err := valueparser.TryUnmarshal[int]("1")

	assert.ErrorIs(t, err, valueparser.ErrUnparsableValue)
}
