// Package logger wraps zerolog with the constructors used across the
// service. Handlers and stores receive a *Logger instead of touching
// zerolog directly, so tests can pass Nop().
package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// New constructs a JSON logger writing to stdout with a "role" field
// (e.g. "server") attached to every entry.
func New(role string) *Logger {
	logger := zerolog.New(os.Stdout).With().
		Str("role", role).
		Timestamp().
		Logger()

	return &Logger{logger}
}

// Nop returns a *Logger that discards all output. Intended for tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}
