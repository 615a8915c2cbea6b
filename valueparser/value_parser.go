package valueparser

import (
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/YaCodeDev/GoYaUnishim/yaerrors"
)

// ParseValue is a generic function that converts a string value to the specified type T.
// It returns the converted value and an error if the conversion fails.
//
// Example usage:
//
//	var intValue int
//	intValue, err := ParseValue[int]("123")
//	if err != nil {
//		// Handle error
//	}
func ParseValue[T ParsableType](value string) (T, yaerrors.Error) {
	var zero T

	parsed, err := ParseReflect(value, reflect.TypeFor[T]())
	if err != nil {
		return zero, err
	}

	val, ok := parsed.Interface().(T)
	if !ok {
		return zero, yaerrors.FromError(
			http.StatusInternalServerError,
			ErrInvalidValue,
			"parse value: parsed value has type "+parsed.Type().String(),
		)
	}

	return val, nil
}

// ParseReflect converts value into a reflect.Value of type typ.
//
// Types implementing encoding.TextUnmarshaler or Unmarshalable are tried
// through their unmarshaler first, falling back to the underlying kind, so
// a level type accepts both "info" and "4". Slices other than []byte are
// split by DefaultEntrySeparator and parsed element by element.
func ParseReflect(value string, typ reflect.Type) (reflect.Value, yaerrors.Error) {
	if parsed, err := tryUnmarshalReflect(value, typ); err == nil {
		return parsed, nil
	}

	result := reflect.New(typ).Elem()

	switch typ.Kind() {
	case reflect.String:
		result.SetString(value)

		return result, nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if intValue, err := strconv.ParseInt(value, 10, typ.Bits()); err == nil {
			result.SetInt(intValue)

			return result, nil
		}

	case reflect.Uint,
		reflect.Uint8,
		reflect.Uint16,
		reflect.Uint32,
		reflect.Uint64,
		reflect.Uintptr:
		if uintValue, err := strconv.ParseUint(value, 10, typ.Bits()); err == nil {
			result.SetUint(uintValue)

			return result, nil
		}

	case reflect.Float32, reflect.Float64:
		if floatValue, err := strconv.ParseFloat(value, typ.Bits()); err == nil {
			result.SetFloat(floatValue)

			return result, nil
		}

	case reflect.Bool:
		if boolValue, err := strconv.ParseBool(value); err == nil {
			result.SetBool(boolValue)

			return result, nil
		}

	case reflect.Slice:
		if typ.Elem().Kind() == reflect.Uint8 {
			result.SetBytes([]byte(value))

			return result, nil
		}

		return parseSliceReflect(value, typ)

	default:
		return reflect.Value{}, yaerrors.FromError(
			http.StatusInternalServerError,
			ErrInvalidType,
			"parse value: unsupported type "+typ.String(),
		)
	}

	return reflect.Value{}, yaerrors.FromError(
		http.StatusBadRequest,
		ErrUnparsableValue,
		"parse value: cannot parse '"+value+"' as "+typ.String(),
	)
}

func parseSliceReflect(value string, typ reflect.Type) (reflect.Value, yaerrors.Error) {
	if value == "" {
		return reflect.MakeSlice(typ, 0, 0), nil
	}

	parts := strings.Split(value, DefaultEntrySeparator)
	result := reflect.MakeSlice(typ, 0, len(parts))

	for _, part := range parts {
		trimmed := strings.TrimSpace(part)

		elem, err := ParseReflect(trimmed, typ.Elem())
		if err != nil {
			return reflect.Value{}, err.Wrap("parse array: failed to parse part '" + trimmed + "'")
		}

		result = reflect.Append(result, elem)
	}

	return result, nil
}
