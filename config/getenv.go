package config

import (
	"os"

	"github.com/YaCodeDev/GoYaUnishim/valueparser"
	"github.com/YaCodeDev/GoYaUnishim/yalogger"
)

// GetEnv retrieves the value of an environment variable, parses it to the specified type T,
// and returns it. If the variable is not set, it returns a fallback value.
// If the variable is required and not set, it logs an error and exits the program.
//
// Example usage:
//
//	maxUnits := GetEnv("MAX_OUTPUT_UNITS", 1<<20, false, log)
func GetEnv[T valueparser.ParsableType](
	key string,
	fallback T,
	required bool,
	log yalogger.Logger,
) T {
	safetyCheck(&log)

	if value, exists := os.LookupEnv(key); exists {
		if parsed, err := valueparser.ParseValue[T](value); err == nil {
			return parsed
		}
	}

	if required {
		log.Fatalf("Environment variable %s is required", key)
	}

	log.Debugf(
		"Environment variable %s is not set or failed to parse, using default value %v",
		key,
		fallback,
	)

	return fallback
}

// GetEnvArray retrieves the value of an environment variable, splits it by a specified separator, (default is ","),
// parses each part into the specified type T, and returns a slice of T.
// If the variable is not set, it returns a fallback value.
// If the variable is required and not set, it logs an error and exits the program.
//
// Example usage:
//
//	encodings := GetEnvArray("ENCODINGS", []string{"utf-8"}, nil, false, log)
func GetEnvArray[T valueparser.ParsableType](
	key string,
	fallback []T,
	separator *string,
	required bool,
	log yalogger.Logger,
) []T {
	safetyCheck(&log)

	if value, exists := os.LookupEnv(key); exists {
		parsed, err := valueparser.ParseArray[T](value, separator)
		if err == nil {
			return parsed
		}

		log.Errorf("Failed to parse environment variable %s: %v", key, err)
	}

	if required {
		log.Fatalf("Environment variable %s is required", key)
	}

	log.Debugf("Environment variable %s is not set, using default value %v", key, fallback)

	return fallback
}
