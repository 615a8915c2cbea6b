// Package yaerrors provides the error type shared by every GoYaUnishim package.
//
// An Error carries a numeric code (HTTP status semantics), the original cause
// and a human-readable traceback that grows each time the error is wrapped on
// its way up the call stack:
//
//	err := yaerrors.FromError(http.StatusBadRequest, cause, "[UNICODE] utf-8 to utf-16")
//	return err.Wrap("open native path")
//
//	fmt.Println(err) // 400 | open native path -> [UNICODE] utf-8 to utf-16: ...
//
// Errors unwrap to their cause, so errors.Is and errors.As see through them.
package yaerrors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/YaCodeDev/GoYaUnishim/yalogger"
)

// Error is an error with a code and a traceback.
type Error interface {
	error
	Wrap(msg string) Error
	WrapWithLog(msg string, log yalogger.Logger) Error
	Code() int
	Unwrap() error
	UnwrapLastError() string
}

const (
	codeSeparate  = " | "
	errorSeparate = " -> "
)

type yaError struct {
	code      int
	cause     error
	traceback string
}

// FromError wraps cause with a code and a context message.
// A nil cause is allowed and renders as <nil>.
func FromError(code int, cause error, wrap string) Error {
	return &yaError{
		code:      code,
		cause:     cause,
		traceback: fmt.Sprintf("%s: %v", wrap, cause),
	}
}

// FromErrorf is FromError with a formatted context message.
func FromErrorf(code int, cause error, format string, args ...any) Error {
	return FromError(code, cause, fmt.Sprintf(format, args...))
}

// FromErrorWithLog is FromError that also reports the message at Error level.
func FromErrorWithLog(code int, cause error, wrap string, log yalogger.Logger) Error {
	msg := fmt.Sprintf("%s: %v", wrap, cause)
	log.Error(msg)

	return &yaError{
		code:      code,
		cause:     cause,
		traceback: msg,
	}
}

// FromString creates an Error whose cause is a fresh error holding msg.
func FromString(code int, msg string) Error {
	return &yaError{
		code:      code,
		cause:     errors.New(msg), //nolint:err113
		traceback: msg,
	}
}

// FromStringWithLog is FromString that also reports msg at Error level.
func FromStringWithLog(code int, msg string, log yalogger.Logger) Error {
	log.Error(msg)

	return FromString(code, msg)
}

// Error returns the code followed by the traceback.
func (e *yaError) Error() string {
	safetyCheck(&e)

	return fmt.Sprintf("%d%s%s", e.code, codeSeparate, e.traceback)
}

// Unwrap returns the original cause.
func (e *yaError) Unwrap() error {
	safetyCheck(&e)

	return e.cause
}

// UnwrapLastError returns the outermost message of the traceback.
func (e *yaError) UnwrapLastError() string {
	safetyCheck(&e)

	last, _, found := strings.Cut(e.traceback, errorSeparate)
	if !found {
		return e.traceback
	}

	return last
}

// Wrap prepends msg to the traceback. Call it every time the error is
// returned one level higher.
func (e *yaError) Wrap(msg string) Error {
	safetyCheck(&e)
	e.traceback = msg + errorSeparate + e.traceback

	return e
}

// WrapWithLog is Wrap that also reports msg at Error level.
func (e *yaError) WrapWithLog(msg string, log yalogger.Logger) Error {
	log.Error(msg)

	return e.Wrap(msg)
}

// Code returns the code the error was created with.
func (e *yaError) Code() int {
	safetyCheck(&e)

	return e.code
}

// safetyCheck replaces a nil receiver with the teapot error so that methods
// on a nil *yaError never dereference nil.
func safetyCheck(err **yaError) {
	if *err == nil {
		*err = &yaError{
			code:      http.StatusTeapot,
			cause:     ErrTeapot,
			traceback: ErrTeapot.Error(),
		}
	}
}
