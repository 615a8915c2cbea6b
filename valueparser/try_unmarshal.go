package valueparser

import (
	"encoding"
	"reflect"
)

// TryUnmarshal parses value through encoding.TextUnmarshaler or Unmarshalable,
// whichever *T implements first. It returns ErrUnparsableValue when *T
// implements neither or the unmarshaler rejects the value.
//
// Example usage:
//
//	level, err := TryUnmarshal[yalogger.Level]("debug")
//	if err != nil {
//		// Handle error
//	}
func TryUnmarshal[T any](value string) (T, error) {
	var zero T

	parsed, err := tryUnmarshalReflect(value, reflect.TypeFor[T]())
	if err != nil {
		return zero, err
	}

	val, ok := parsed.Interface().(T)
	if !ok {
		return zero, ErrInvalidValue
	}

	return val, nil
}

func tryUnmarshalReflect(value string, typ reflect.Type) (reflect.Value, error) {
	ptr := reflect.New(typ)

	if unmarshaler, ok := ptr.Interface().(encoding.TextUnmarshaler); ok {
		if err := unmarshaler.UnmarshalText([]byte(value)); err == nil {
			return ptr.Elem(), nil
		}
	}

	if unmarshaler, ok := ptr.Interface().(Unmarshalable); ok {
		if err := unmarshaler.Unmarshal(value); err == nil {
			return ptr.Elem(), nil
		}
	}

	return reflect.Value{}, ErrUnparsableValue
}
