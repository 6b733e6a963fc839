// Package xlog is the module's structured logging wrapper around zerolog,
// grounded on the pack's own zerolog-based logger: a single process-wide
// logger, level configurable via $BELENIOS_LOG_LEVEL (default "error"),
// guarded by a mutex since participants may run on distinct goroutines
// (spec §5).
package xlog

import (
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var (
	mu     sync.RWMutex
	logger zerolog.Logger
)

func init() {
	level := os.Getenv("BELENIOS_LOG_LEVEL")
	if level == "" {
		level = "error"
	}
	Init(level)
}

// Init (re)configures the global logger at the given zerolog level name
// ("debug", "info", "warn", "error"); an unrecognized name falls back to
// "info".
func Init(level string) {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		parsed = zerolog.InfoLevel
	}
	l := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
		Level(parsed).
		With().Timestamp().Logger()

	mu.Lock()
	logger = l
	mu.Unlock()
}

// Logger returns the current global logger.
func Logger() *zerolog.Logger {
	mu.RLock()
	l := logger
	mu.RUnlock()
	return &l
}

// With returns a child logger with the given component field set, for
// tagging log lines by participant role (spec §4.7).
func With(component string) zerolog.Logger {
	return Logger().With().Str("component", component).Logger()
}
