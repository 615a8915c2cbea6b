package yaunicode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/YaCodeDev/GoYaUnishim/yaunicode"
)

func TestCodeUnitLength_Boundaries(t *testing.T) {
	tests := []struct {
		r                  rune
		utf8, utf16, utf32 int
	}{
		{0x00, 1, 1, 1},
		{0x7F, 1, 1, 1},
		{0x80, 2, 1, 1},
		{0x7FF, 2, 1, 1},
		{0x800, 3, 1, 1},
		{0xD7FF, 3, 1, 1},
		{0xD800, 0, 0, 0},
		{0xDBFF, 0, 0, 0},
		{0xDC00, 0, 0, 0},
		{0xDFFF, 0, 0, 0},
		{0xE000, 3, 1, 1},
		{0xFFFF, 3, 1, 1},
		{0x10000, 4, 2, 1},
		{0x10FFFF, 4, 2, 1},
		{0x110000, 0, 0, 0},
		{-1, 0, 0, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.utf8, yaunicode.UTF8CodeUnitLength(tt.r), "utf-8 U+%04X", tt.r)
		assert.Equal(t, tt.utf16, yaunicode.UTF16CodeUnitLength(tt.r), "utf-16 U+%04X", tt.r)
		assert.Equal(t, tt.utf32, yaunicode.UTF32CodeUnitLength(tt.r), "utf-32 U+%04X", tt.r)

		assert.Equal(t, tt.utf8, yaunicode.UTF8.CodeUnitLength(tt.r))
		assert.Equal(t, tt.utf16, yaunicode.UTF16.CodeUnitLength(tt.r))
		assert.Equal(t, tt.utf32, yaunicode.UTF32.CodeUnitLength(tt.r))
	}
}

func TestCodeUnitLength_UnknownEncoding(t *testing.T) {
	assert.Zero(t, yaunicode.Encoding(0).CodeUnitLength('a'))
}
