// SPDX-License-Identifier: MIT

// Package logging builds the zerolog loggers used by the command. Library
// packages never log globally: they take a zerolog.Logger option.
package logging

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Output formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// ErrUnknownFormat indicates an output format other than console or json.
var ErrUnknownFormat = errors.New("logging: unknown format")

// New returns a timestamped logger writing to w at the given level
// ("trace", "debug", "info", "warn", "error"; empty means info).
func New(w io.Writer, level, format string) (zerolog.Logger, error) {
	lvl := zerolog.InfoLevel
	if level != "" {
		var err error
		if lvl, err = zerolog.ParseLevel(strings.ToLower(level)); err != nil {
			return zerolog.Nop(), fmt.Errorf("logging.New: level %q: %w", level, err)
		}
	}

	switch strings.ToLower(format) {
	case "", FormatConsole:
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly, NoColor: true}
	case FormatJSON:
	default:
		return zerolog.Nop(), fmt.Errorf("logging.New: %q: %w", format, ErrUnknownFormat)
	}

	return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), nil
}
