// Command yaunishim converts text between UTF-8, UTF-16 and UTF-32.
//
//	yaunishim -from utf-8 -to utf-16 -in notes.txt -out notes.u16
//	yaunishim -from utf-16 -count < notes.u16
//
// UTF-16 and UTF-32 streams use YAUNISHIM_BYTE_ORDER (little by default).
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/YaCodeDev/GoYaUnishim/yalogger"
	"github.com/YaCodeDev/GoYaUnishim/yatranscoder"
	"github.com/YaCodeDev/GoYaUnishim/yaunicode"
)

func main() {
	var (
		from  = flag.String("from", "utf-8", "Source encoding (utf-8, utf-16, utf-32)")
		to    = flag.String("to", "utf-16", "Destination encoding (utf-8, utf-16, utf-32)")
		in    = flag.String("in", "", "Input file (default stdin)")
		out   = flag.String("out", "", "Output file (default stdout)")
		count = flag.Bool("count", false, "Print the number of codepoints instead of converting")
	)

	flag.Parse()

	if err := run(*from, *to, *in, *out, *count); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(fromName, toName, inPath, outPath string, count bool) error {
	bootstrap := yalogger.NewBaseLogger(&yalogger.Config{Level: yalogger.WarnLevel}).NewLogger()

	cfg, yaerr := yatranscoder.LoadConfig(bootstrap)
	if yaerr != nil {
		return yaerr
	}

	log := yalogger.NewBaseLogger(&yalogger.Config{
		Level:           cfg.LogLevel,
		FullTimestamp:   true,
		TimestampFormat: yalogger.DefaultTimestampFormat,
	}).NewLogger().WithRandomRequestID()

	from, err := yaunicode.ParseEncoding(fromName)
	if err != nil {
		return fmt.Errorf("-from %q: %w", fromName, err)
	}

	to, err := yaunicode.ParseEncoding(toName)
	if err != nil {
		return fmt.Errorf("-to %q: %w", toName, err)
	}

	data, err := readInput(inPath)
	if err != nil {
		return err
	}

	tc := yatranscoder.New(cfg, log)

	if count {
		n, yaerr := tc.Count(data, from)
		if yaerr != nil {
			return yaerr
		}

		return writeOutput(outPath, []byte(fmt.Sprintf("%d\n", n)))
	}

	converted, yaerr := tc.Transcode(data, from, to)
	if yaerr != nil {
		return yaerr
	}

	log.Infof("Converted %s to %s: %d bytes in, %d bytes out", from, to, len(data), len(converted))

	return writeOutput(outPath, converted)
}

func readInput(path string) ([]byte, error) {
	if path == "" {
		return io.ReadAll(os.Stdin)
	}

	return os.ReadFile(path)
}

func writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(data)

		return err
	}

	return os.WriteFile(path, data, 0o644)
}
