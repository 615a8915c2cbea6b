// Package config loads configuration structs from the environment.
//
// Field names become SCREAMING_SNAKE_CASE keys, nested structs prefix their
// fields with their own key, and values are parsed with valueparser, so any
// basic kind, slice of basic kinds or encoding.TextUnmarshaler works:
//
//	type Config struct {
//		MaxOutputUnits int                    `default:"67108864"`
//		ByteOrder      yatranscoder.ByteOrder `default:"little"`
//		LogLevel       yalogger.Level         `default:"info"`
//	}
//
//	var cfg Config
//	config.LoadConfigStructFromEnv(&cfg, log) // reads MAX_OUTPUT_UNITS, BYTE_ORDER, LOG_LEVEL
package config

import (
	"encoding"
	"fmt"
	"net/http"
	"os"
	"reflect"

	"github.com/YaCodeDev/GoYaUnishim/valueparser"
	"github.com/YaCodeDev/GoYaUnishim/yaerrors"
	"github.com/YaCodeDev/GoYaUnishim/yalogger"
)

// LoadConfigStructFromEnv loads environment variables into a struct.
// This is a wrapper around LoadConfigStructFromEnvHandlingError that exits
// the program through log.Fatalf on error.
func LoadConfigStructFromEnv[T any](instance *T, log yalogger.Logger) {
	safetyCheck(&log)

	err := LoadConfigStructFromEnvHandlingError(instance, log)
	if err != nil {
		log.Fatalf("Failed to load config struct from env: %v", err)
	}
}

// LoadConfigStructFromEnvHandlingError loads environment variables into a struct.
// It uses the field names of the struct as keys to look up values in the environment.
// If a variable is missing, the `default` tag is parsed instead. A field that
// is still zero and has no default is required, and its absence is reported
// as ErrValueIsRequired. Fields that already hold a non-zero value keep it
// unless the environment overrides them.
//
// The .env file in the working directory is loaded first without overriding
// variables that are already set.
//
// Example usage:
//
//	err := config.LoadConfigStructFromEnvHandlingError(&cfg, log)
//	if err != nil {
//		// handle error
//	}
func LoadConfigStructFromEnvHandlingError[T any](instance *T, log yalogger.Logger) yaerrors.Error {
	safetyCheck(&log)

	if err := loadDotEnv(); err != nil {
		log.Warnf("Error loading .env file: %v", err)
	}

	if instance == nil {
		return yaerrors.FromErrorWithLog(
			http.StatusInternalServerError,
			ErrConfigStructMustBeStruct,
			"config loader, got nil",
			log,
		)
	}

	value := reflect.ValueOf(instance).Elem()
	if value.Kind() != reflect.Struct {
		return yaerrors.FromErrorWithLog(
			http.StatusInternalServerError,
			ErrConfigStructMustBeStruct,
			fmt.Sprintf(
				"config loader, got %T",
				instance,
			),
			log,
		)
	}

	return loadConfigStructFromEnv(value, "", log)
}

// loadConfigStructFromEnv does the actual work of LoadConfigStructFromEnv,
// recursing into nested structs with keyPath as prefix.
func loadConfigStructFromEnv(
	structValue reflect.Value,
	keyPath string,
	log yalogger.Logger,
) yaerrors.Error {
	structType := structValue.Type()

	for i := range structValue.NumField() {
		field := structType.Field(i)
		fieldVal := structValue.Field(i)
		defaultValStr, hasDefault := field.Tag.Lookup(DefaultTagName)

		if !fieldVal.CanSet() {
			log.Warnf("Field %s cannot be set", field.Name)

			continue
		}

		envKey := toScreamingSnakeCase(field.Name)
		if keyPath != "" {
			envKey = keyPath + "_" + envKey
		}

		if field.Type.Kind() == reflect.Struct && !implementsUnmarshaler(field.Type) {
			if err := loadConfigStructFromEnv(fieldVal, envKey, log); err != nil {
				return err.WrapWithLog(
					"failed to load struct field "+field.Name,
					log,
				)
			}

			continue
		}

		raw, exists := os.LookupEnv(envKey)

		switch {
		case exists:
		case !fieldVal.IsZero():
			continue
		case hasDefault:
			raw = defaultValStr
		default:
			return yaerrors.FromErrorWithLog(
				http.StatusInternalServerError,
				ErrValueIsRequired,
				fmt.Sprintf("config loader: field %s (%s)", field.Name, envKey),
				log,
			)
		}

		parsed, err := valueparser.ParseReflect(raw, field.Type)
		if err != nil {
			return err.WrapWithLog(
				fmt.Sprintf("config loader: field %s (%s)", field.Name, envKey),
				log,
			)
		}

		fieldVal.Set(parsed)
	}

	return nil
}

func implementsUnmarshaler(typ reflect.Type) bool {
	ptr := reflect.PointerTo(typ)

	return ptr.Implements(reflect.TypeFor[valueparser.Unmarshalable]()) ||
		ptr.Implements(reflect.TypeFor[encoding.TextUnmarshaler]())
}
