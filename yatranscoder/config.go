package yatranscoder

import (
	"encoding/binary"
	"errors"
	"strings"

	"github.com/YaCodeDev/GoYaUnishim/config"
	"github.com/YaCodeDev/GoYaUnishim/yaerrors"
	"github.com/YaCodeDev/GoYaUnishim/yalogger"
)

var ErrUnknownByteOrder = errors.New("unknown byte order")

// ByteOrder selects how UTF-16 and UTF-32 units are laid out in byte streams.
type ByteOrder uint8

const (
	LittleEndian ByteOrder = iota
	BigEndian
)

func (o ByteOrder) String() string {
	if o == BigEndian {
		return "big"
	}

	return "little"
}

func (o *ByteOrder) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "little", "le", "little-endian", "littleendian":
		*o = LittleEndian
	case "big", "be", "big-endian", "bigendian":
		*o = BigEndian
	default:
		return ErrUnknownByteOrder
	}

	return nil
}

// Binary returns the encoding/binary order matching o.
func (o ByteOrder) Binary() binary.ByteOrder {
	if o == BigEndian {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// Config is read from YAUNISHIM_* environment variables by LoadConfig.
//
// MaxOutputUnits: largest number of destination code units one call may produce, 0 for no cap.
// ByteOrder: byte order of UTF-16 and UTF-32 streams.
// PathCacheSize: how many NativePath results are kept, 0 to disable.
// LogLevel: minimum level the CLI logs at.
type Config struct {
	MaxOutputUnits int            `default:"67108864"`
	ByteOrder      ByteOrder      `default:"little"`
	PathCacheSize  int            `default:"256"`
	LogLevel       yalogger.Level `default:"info"`
}

type envConfig struct {
	Yaunishim Config
}

// DefaultConfig returns the values LoadConfig falls back to.
func DefaultConfig() *Config {
	return &Config{
		MaxOutputUnits: 64 << 20,
		ByteOrder:      LittleEndian,
		PathCacheSize:  256,
		LogLevel:       yalogger.InfoLevel,
	}
}

// LoadConfig reads YAUNISHIM_MAX_OUTPUT_UNITS, YAUNISHIM_BYTE_ORDER,
// YAUNISHIM_PATH_CACHE_SIZE and YAUNISHIM_LOG_LEVEL, with .env support.
func LoadConfig(log yalogger.Logger) (*Config, yaerrors.Error) {
	var env envConfig

	if err := config.LoadConfigStructFromEnvHandlingError(&env, log); err != nil {
		return nil, err.Wrap("[TRANSCODER] load config")
	}

	return &env.Yaunishim, nil
}
