// Package logging configures the process logger for the harness CLI.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Setup builds a leveled zerolog logger writing to stderr.
// format is "console" or "json".
func Setup(level, format string) zerolog.Logger {
	return SetupWriter(level, format, os.Stderr)
}

// SetupWriter is Setup with an explicit sink, used by tests.
func SetupWriter(level, format string, out io.Writer) zerolog.Logger {
	var logLevel zerolog.Level
	switch strings.ToLower(level) {
	case "debug":
		logLevel = zerolog.DebugLevel
	case "warn":
		logLevel = zerolog.WarnLevel
	case "error":
		logLevel = zerolog.ErrorLevel
	default:
		logLevel = zerolog.InfoLevel
	}

	if strings.ToLower(format) != "json" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	return zerolog.New(out).Level(logLevel).With().Timestamp().Logger()
}
