// Package logging sets up the zerolog logger shared by the game.
package logging

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Options configures New
type Options struct {
	Level  string // trace, debug, info, warn, error; anything else is info
	Pretty bool   // human-readable console output on Out
	Out    io.Writer
	File   io.Writer // optional second sink, always plain console format
}

// ParseLevel maps a level name to a zerolog level
func ParseLevel(name string) zerolog.Level {
	switch strings.ToUpper(name) {
	case "TRACE":
		return zerolog.TraceLevel
	case "DEBUG":
		return zerolog.DebugLevel
	case "WARN":
		return zerolog.WarnLevel
	case "ERROR":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// New builds a timestamped logger
func New(opts Options) zerolog.Logger {
	var out io.Writer = opts.Out
	if opts.Pretty {
		out = zerolog.ConsoleWriter{Out: opts.Out, TimeFormat: time.RFC3339}
	}

	if opts.File != nil {
		out = zerolog.MultiLevelWriter(out, zerolog.ConsoleWriter{
			Out:        opts.File,
			TimeFormat: time.RFC3339,
			NoColor:    true,
		})
	}

	return zerolog.New(out).
		Level(ParseLevel(opts.Level)).
		With().Timestamp().
		Logger()
}
