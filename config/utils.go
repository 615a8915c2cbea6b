package config

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/YaCodeDev/GoYaUnishim/yalogger"
)

// safetyCheck ensures that the logger is not nil before performing any operations.
// If the logger is nil, it initializes a new logger and logs a warning message.
func safetyCheck(log *yalogger.Logger) {
	if log == nil {
		return
	}

	if *log == nil {
		*log = yalogger.NewBaseLogger(nil).NewLogger()

		(*log).Warn("Logger is nil, using default logger")
	}
}

// toScreamingSnakeCase converts a string to SCREAMING_SNAKE_CASE.
// For example, "MaxOutputUnits" becomes "MAX_OUTPUT_UNITS" and "UTF16Order"
// becomes "UTF16_ORDER".
func toScreamingSnakeCase(s string) string {
	s = matchFirstCap.ReplaceAllString(s, "${1}_${2}")
	s = matchAllCap.ReplaceAllString(s, "${1}_${2}")

	return strings.ToUpper(s)
}

// loadDotEnv sets every KEY=VALUE pair of DotEnvFile that is not already
// present in the environment. A missing file is not an error.
func loadDotEnv() error {
	file, err := os.Open(DotEnvFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}

		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	line := 0

	for scanner.Scan() {
		line++

		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		parts := strings.SplitN(strings.TrimPrefix(text, "export "), "=", DotEnvKVParts)
		if len(parts) != DotEnvKVParts {
			return fmt.Errorf("%w: line %d", ErrInvalidDotEnvFileFormat, line)
		}

		key := strings.TrimSpace(parts[0])
		value := strings.Trim(strings.TrimSpace(parts[1]), `"'`)

		if _, exists := os.LookupEnv(key); exists {
			continue
		}

		if err := os.Setenv(key, value); err != nil {
			return err
		}
	}

	return scanner.Err()
}
