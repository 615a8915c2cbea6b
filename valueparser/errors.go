package valueparser

import (
	"errors"
)

var (
	ErrInvalidValue    = errors.New("invalid value")
	ErrInvalidType     = errors.New("invalid type")
	ErrUnparsableValue = errors.New("unparsable value")
)
