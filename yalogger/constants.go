package yalogger

import "errors"

// Level mirrors the numeric order of logrus levels so that a Level can be
// handed to logrus unchanged.
type Level uint8

const (
	PanicLevel Level = iota
	FatalLevel
	ErrorLevel
	WarnLevel
	InfoLevel
	DebugLevel
	TraceLevel
)

type BaseLoggerType uint8

const (
	Logrus BaseLoggerType = iota
)

const (
	KeyRequestID = "request_id"
	KeyComponent = "component"

	DefaultTimestampFormat = "2006-01-02 15:04:05"
)

var (
	ErrInvalidLogLevel       = errors.New("invalid log level")
	ErrUnsupportedLoggerType = errors.New("unsupported base logger type")
)
