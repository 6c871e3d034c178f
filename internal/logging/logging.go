// Package logging configures the process-wide zerolog logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Output formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Settings controls logger construction.
type Settings struct {
	// Level is a zerolog level name (trace, debug, info, warn, error, ...).
	Level string
	// Format is FormatConsole or FormatJSON. Empty means console.
	Format string
	// Output defaults to stderr.
	Output io.Writer
}

// New builds a logger from s without touching global state.
func New(s Settings) (zerolog.Logger, error) {
	level := zerolog.InfoLevel

	if name := strings.TrimSpace(s.Level); name != "" {
		l, err := zerolog.ParseLevel(strings.ToLower(name))
		if err != nil {
			return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", s.Level, err)
		}

		level = l
	}

	out := s.Output
	if out == nil {
		out = os.Stderr
	}

	switch strings.ToLower(strings.TrimSpace(s.Format)) {
	case "", FormatConsole:
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.TimeOnly}
	case FormatJSON:
	default:
		return zerolog.Nop(), fmt.Errorf("invalid log format %q (want %s or %s)", s.Format, FormatConsole, FormatJSON)
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger(), nil
}

// Setup builds a logger from s and installs it as the global logger.
func Setup(s Settings) (zerolog.Logger, error) {
	logger, err := New(s)
	if err != nil {
		return logger, err
	}

	log.Logger = logger

	return logger, nil
}
