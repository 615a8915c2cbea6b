// Package yaunicode is a validating transcoder between UTF-8, UTF-16 and
// UTF-32 code-unit buffers.
//
// The package is layered:
//
//   - Length functions (UTF8CodeUnitLength, ...) are the only validity gate
//     for a codepoint in a given encoding.
//   - Encoders (EncodeUTF8, ...) write a codepoint as a given number of units
//     without validating anything.
//   - Decoders (DecodeUTF8, DecodeUTF16, DecodeUTF32) walk a buffer and hand
//     every valid codepoint to a visitor, stopping at the first invalid
//     sequence or at the first visitor error.
//   - Adapters (LengthCounter, Cursor) are the two stock visitors.
//   - Convert functions (ConvertUTF8ToUTF16, ...) decode twice, once to size
//     the output and once to fill it, and return an exactly sized,
//     zero-terminated buffer.
//
// Every decoder takes a bound. A bound of 0 scans until the first zero unit
// or the end of the slice; a positive bound scans exactly that many units and
// delivers zero units to the visitor as codepoint 0:
//
//	yaunicode.ValidateUTF8([]byte("a\x00\xff"), 0) // nil, stops at the zero byte
//	yaunicode.ValidateUTF8([]byte("a\x00\xff"), 3) // unexpected continuation at unit 2
//
// Decoding errors are *Error values that unwrap to one of the Err* sentinels,
// and Status maps any returned error back to the integer status codes used by
// callers that speak the C-style contract.
//
// Building with the yaunicode_noalloc tag removes everything that allocates
// (Converter, the Convert functions and Transformer) and keeps the
// decoders, encoders, length functions and adapters.
package yaunicode
