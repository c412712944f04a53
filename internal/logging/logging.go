// Package logging builds the zerolog loggers used by the command-line tools.
// The library packages never log on their sampling paths; they accept a
// logger (rng.SetLogger) and stay silent by default.
package logging

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// Output formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// consoleTimeFormat keeps wall-clock resolution to milliseconds.
const consoleTimeFormat = "15:04:05.000"

// ErrUnknownFormat indicates a format other than FormatConsole or FormatJSON.
var ErrUnknownFormat = errors.New("logging: unknown format")

// New returns a logger writing to w at the given level ("trace" .. "error",
// empty meaning "info") in console or JSON form.
func New(w io.Writer, level, format string) (zerolog.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), err
	}

	var l zerolog.Logger
	switch strings.ToLower(format) {
	case "", FormatConsole:
		l = zerolog.New(zerolog.NewConsoleWriter(func(cw *zerolog.ConsoleWriter) {
			cw.Out = w
			cw.NoColor = true
			cw.TimeFormat = consoleTimeFormat
		}))
	case FormatJSON:
		l = zerolog.New(w)
	default:
		return zerolog.Nop(), fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return l.Level(lvl).With().Timestamp().Logger(), nil
}

// ParseLevel maps a level name to a zerolog.Level. The empty string is info.
func ParseLevel(level string) (zerolog.Level, error) {
	if level == "" {
		return zerolog.InfoLevel, nil
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("logging: level %q: %w", level, err)
	}
	return lvl, nil
}
