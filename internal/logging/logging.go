// Package logging provides the engine's structured logger, a thin
// wrapper over zerolog so cmd/ledview and cmd/termview log consistently
// without reaching for the global zerolog logger directly.
package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// New builds a console-formatted logger writing to w at the given
// level. Pass os.Stderr and zerolog.InfoLevel for ordinary use.
func New(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: w}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// Default returns a logger writing to stderr at info level, used by
// the demo commands when no explicit logger is configured.
func Default() zerolog.Logger {
	return New(os.Stderr, zerolog.InfoLevel)
}
