package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ParseLevel maps a configured level name to a zerolog level (defaults to info)
func ParseLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// New builds a logger writing to out in the given format (json or console)
func New(format string, out io.Writer) zerolog.Logger {
	if format == "console" {
		return zerolog.New(zerolog.ConsoleWriter{Out: out}).With().Timestamp().Logger()
	}
	return zerolog.New(out).With().Timestamp().Logger()
}

// Init initializes the global logger with the specified level and format.
// Logs go to stderr so stdout only carries the upload notice.
func Init(level, format string) {
	zerolog.SetGlobalLevel(ParseLevel(level))
	log.Logger = New(format, os.Stderr)
}

// Get returns a reference to the global logger
func Get() *zerolog.Logger {
	return &log.Logger
}
