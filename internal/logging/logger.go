// Package logging builds the process logger.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

func New(level string, pretty bool) zerolog.Logger {
	return NewWithWriter(os.Stdout, level, pretty)
}

func NewWithWriter(w io.Writer, level string, pretty bool) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	if pretty {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	return zerolog.New(w).
		Level(lvl).
		With().
		Timestamp().
		Str("service", "pos-booking").
		Logger()
}

// Printf adapts a zerolog.Logger to printf-style sinks such as gorm's logger.
type Printf struct {
	Logger zerolog.Logger
}

func (p Printf) Printf(format string, args ...interface{}) {
	p.Logger.Warn().Msgf(format, args...)
}
