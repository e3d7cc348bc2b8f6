// Package logx configures the application logger.
package logx

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New returns the root logger. Development builds get a human-readable
// console writer; everything else logs structured JSON to stderr.
func New(development bool) zerolog.Logger {
	if development {
		writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
		return zerolog.New(writer).Level(zerolog.DebugLevel).With().Timestamp().Logger()
	}
	return zerolog.New(os.Stderr).Level(zerolog.InfoLevel).With().Timestamp().Logger()
}
