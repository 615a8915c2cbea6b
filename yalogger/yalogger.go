// Package yalogger defines the structured logging interface used across
// GoYaUnishim together with a logrus backed implementation.
//
// Example usage:
//
//	base := yalogger.NewBaseLogger(&yalogger.Config{Level: yalogger.InfoLevel})
//	log := base.NewLogger().WithField(yalogger.KeyComponent, "transcoder")
//
//	log.Infof("converted %d code units", n)
package yalogger

import (
	"github.com/google/uuid"
)

// Config defines the configuration options for the logger.
//
// BaseLoggerType: The type of logger to use (e.g., Logrus).
// Level: The minimum log level to output (e.g., Info).
// FullTimestamp: Whether to include the full timestamp in log messages.
// DisableTimestamp: Whether to disable timestamps in log messages.
// TimestampFormat: The format to use for timestamps in log messages.
type Config struct {
	BaseLoggerType   BaseLoggerType
	Level            Level
	FullTimestamp    bool
	DisableTimestamp bool
	TimestampFormat  string
}

// BaseLogger is an interface for creating new Logger instances.
type BaseLogger interface {
	// NewLogger creates a new Logger instance from the base logger.
	NewLogger() Logger
}

// Logger defines a structured logging interface with support for various log levels,
// formatting, and context-aware logging using key-value fields.
type Logger interface {
	// Info logs a message at the Info level.
	//
	// Example usage:
	//
	//   logger.Info("Application started")
	Info(msg string)

	// Infof logs a formatted message at the Info level.
	//
	// Example usage:
	//
	//   logger.Infof("Converted %d bytes", n)
	Infof(format string, args ...any)

	// Trace logs a message at the Trace level (very low-level debugging).
	Trace(msg string)

	// Tracef logs a formatted message at the Trace level.
	Tracef(format string, args ...any)

	// Error logs a message at the Error level.
	// Used to indicate a failure that should be investigated.
	Error(msg string)

	// Errorf logs a formatted message at the Error level.
	//
	// Example usage:
	//
	//   logger.Errorf("Failed to read file: %s", filename)
	Errorf(format string, args ...any)

	// Warn logs a message at the Warn level.
	// Used for non-critical issues that might cause problems.
	Warn(msg string)

	// Warnf logs a formatted message at the Warn level.
	Warnf(format string, args ...any)

	// Debug logs a message at the Debug level.
	Debug(msg string)

	// Debugf logs a formatted message at the Debug level.
	Debugf(format string, args ...any)

	// Fatal logs a message at the Fatal level and terminates the application.
	Fatal(msg string)

	// Fatalf logs a formatted message at the Fatal level and terminates the application.
	//
	// Example usage:
	//
	//   logger.Fatalf("Cannot load config file: %s", path)
	Fatalf(format string, args ...any)

	// WithField returns a logger with a single field added to the context.
	// The receiver is left untouched.
	//
	// Example usage:
	//
	//   logger.WithField("encoding", "utf-16")
	WithField(key string, value any) Logger

	// WithFields returns a logger with multiple fields added to the context.
	//
	// Example usage:
	//
	//   logger.WithFields(map[string]any{"from": "utf-8", "to": "utf-16"})
	WithFields(fields map[string]any) Logger

	// WithRequestUUID returns a logger with a UUID request ID in the context.
	WithRequestUUID(id uuid.UUID) Logger

	// WithRandomRequestID returns a logger with a freshly generated UUID request ID.
	// Useful when no external ID is available.
	WithRandomRequestID() Logger

	// GetFields returns a copy of the current log context fields.
	GetFields() map[string]any

	// GetField returns the value of a field from the current log context,
	// or nil if the field is not set.
	//
	// Example usage:
	//
	//   from, ok := logger.GetField("from").(string)
	GetField(key string) any
}
