// Package logger provides a thin wrapper around zerolog.Logger used
// throughout the service. Logger embeds zerolog.Logger, so the full zerolog
// API is available directly.
package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// Logger is a thin wrapper around zerolog.Logger
type Logger struct {
	zerolog.Logger
}

// New constructs a JSON logger writing to stdout, tagged with a component
// label and a timestamp on every entry.
func New(component string) *Logger {
	l := zerolog.New(os.Stdout).With().
		Str("component", component).
		Timestamp().
		Logger()
	return &Logger{l}
}

// Nop returns a Logger that discards all output, for use in tests
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}
