// Package telemetry holds the single zerolog.Logger the non-pure corners of
// ecckit (rng retries, curve registry init, the CLI) log through. The core
// arithmetic packages (bigint, field, point, curve descriptors,
// weierstrass, montgomery, key) never import this package — they are pure
// per spec and have nothing worth logging.
package telemetry

import (
	"os"
	"sync/atomic"

	"github.com/rs/zerolog"
)

var global atomic.Pointer[zerolog.Logger]

func init() {
	l := zerolog.Nop()
	global.Store(&l)
}

// SetGlobal overrides the package-wide logger. Library consumers call this
// once at startup to route ecckit's diagnostic output into their own
// logging pipeline; the default is silence.
func SetGlobal(l zerolog.Logger) {
	global.Store(&l)
}

// Get returns the current global logger.
func Get() zerolog.Logger {
	return *global.Load()
}

// NewConsole builds a human-readable console logger, for use by cmd/ecckit.
func NewConsole(debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	w := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}
