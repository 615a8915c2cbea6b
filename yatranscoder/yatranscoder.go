// Package yatranscoder wraps yaunicode for callers that work with byte
// streams and file names: logging, configuration and yaerrors codes on top
// of the validating engine.
//
// Example usage:
//
//	tc, err := yatranscoder.NewFromEnv(log)
//	if err != nil {
//		// handle error
//	}
//
//	wide, err := tc.Transcode(data, yaunicode.UTF8, yaunicode.UTF16)
package yatranscoder

import (
	"errors"
	"net/http"
	"slices"
	"strings"

	"golang.org/x/text/transform"

	"github.com/YaCodeDev/GoYaUnishim/threadsafemap"
	"github.com/YaCodeDev/GoYaUnishim/yaerrors"
	"github.com/YaCodeDev/GoYaUnishim/yalogger"
	"github.com/YaCodeDev/GoYaUnishim/yaunicode"
)

var ErrEmbeddedNUL = errors.New("string contains a NUL byte")

// Transcoder converts and validates byte-serialized text.
type Transcoder struct {
	converter *yaunicode.Converter
	order     ByteOrder
	paths     *threadsafemap.ThreadSafeMap[string, []uint16]
	log       yalogger.Logger
}

// New builds a Transcoder. A nil cfg means DefaultConfig, a nil log discards output.
func New(cfg *Config, log yalogger.Logger) *Transcoder {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	if log == nil {
		log = yalogger.NewNop()
	}

	tc := &Transcoder{
		converter: yaunicode.NewConverter(cfg.MaxOutputUnits),
		order:     cfg.ByteOrder,
		log:       log.WithField(yalogger.KeyComponent, "transcoder"),
	}

	if cfg.PathCacheSize > 0 {
		tc.paths = threadsafemap.NewThreadSafeMap[string, []uint16](cfg.PathCacheSize)
	}

	return tc
}

// NewFromEnv is New with the configuration from LoadConfig.
func NewFromEnv(log yalogger.Logger) (*Transcoder, yaerrors.Error) {
	cfg, err := LoadConfig(log)
	if err != nil {
		return nil, err
	}

	return New(cfg, log), nil
}

// Transcode converts data from one encoding into another. The output has no
// terminator; every byte of data, zero bytes included, is text.
func (t *Transcoder) Transcode(data []byte, from, to yaunicode.Encoding) ([]byte, yaerrors.Error) {
	log := t.log.WithFields(map[string]any{
		"from": from.String(),
		"to":   to.String(),
	})

	if from.UnitSize() == 0 || to.UnitSize() == 0 {
		return nil, yaerrors.FromError(
			http.StatusBadRequest,
			yaunicode.ErrUnknownEncoding,
			"[TRANSCODER] transcode",
		)
	}

	out, _, err := transform.Bytes(t.converter.NewTransformer(from, to, t.order.Binary()), data)
	if err != nil {
		return nil, t.fail(log, err, "[TRANSCODER] transcode")
	}

	log.Debugf("Transcoded %d bytes into %d bytes", len(data), len(out))

	return out, nil
}

// Validate reports the first invalid sequence of data.
func (t *Transcoder) Validate(data []byte, enc yaunicode.Encoding) yaerrors.Error {
	if _, err := t.Count(data, enc); err != nil {
		return err.Wrap("[TRANSCODER] validate")
	}

	return nil
}

// Count returns the number of codepoints in data.
func (t *Transcoder) Count(data []byte, enc yaunicode.Encoding) (int, yaerrors.Error) {
	var counter codepointCounter

	if err := yaunicode.DecodeBytes(data, enc, t.order.Binary(), &counter); err != nil {
		return 0, t.fail(t.log.WithField("from", enc.String()), err, "[TRANSCODER] count")
	}

	return int(counter), nil
}

// NativePath converts a UTF-8 file name into the zero-terminated UTF-16
// form wide-character file APIs expect. Results are cached when
// PathCacheSize is positive; every call returns its own copy.
func (t *Transcoder) NativePath(path string) ([]uint16, yaerrors.Error) {
	if t.paths != nil {
		if wide, ok := t.paths.Get(path); ok {
			return slices.Clone(wide), nil
		}
	}

	log := t.log.WithFields(map[string]any{
		"from": yaunicode.UTF8.String(),
		"to":   yaunicode.UTF16.String(),
	})

	if strings.IndexByte(path, 0) >= 0 {
		return nil, yaerrors.FromError(
			http.StatusBadRequest,
			ErrEmbeddedNUL,
			"[TRANSCODER] native path",
		)
	}

	units := append(make([]byte, 0, len(path)), path...)

	wide, err := t.converter.UTF8ToUTF16(units, 0)
	if err != nil {
		return nil, t.fail(log, err, "[TRANSCODER] native path")
	}

	if t.paths != nil {
		t.paths.Set(path, slices.Clone(wide))
	}

	return wide, nil
}

// FromNative converts a zero-terminated UTF-16 string, such as a wide
// argument or a directory entry, into a Go string. Units past the first
// zero are ignored.
func (t *Transcoder) FromNative(wide []uint16) (string, yaerrors.Error) {
	log := t.log.WithFields(map[string]any{
		"from": yaunicode.UTF16.String(),
		"to":   yaunicode.UTF8.String(),
	})

	if wide == nil {
		wide = []uint16{}
	}

	out, err := t.converter.UTF16ToUTF8(wide, 0)
	if err != nil {
		return "", t.fail(log, err, "[TRANSCODER] from native")
	}

	return string(out[:len(out)-1]), nil
}

// fail logs err at Warn level with its position and wraps it.
func (t *Transcoder) fail(log yalogger.Logger, err error, msg string) yaerrors.Error {
	var uerr *yaunicode.Error
	if errors.As(err, &uerr) {
		log = log.WithFields(map[string]any{
			"offset": uerr.Offset,
			"kind":   uerr.Kind.String(),
		})
	}

	log.Warnf("%s: %v", msg, err)

	var yaerr yaerrors.Error
	if errors.As(err, &yaerr) {
		return yaerr.Wrap(msg)
	}

	return yaerrors.FromError(yaunicode.HTTPStatus(err), err, msg)
}

type codepointCounter int

func (c *codepointCounter) Visit(rune) error {
	*c++

	return nil
}
