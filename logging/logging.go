// Package logging holds the process-wide slog.Logger, set once by the CLI
// entry point and consulted by library code that wants optional diagnostic
// tracing. Mirrors the teacher's internal/logger package.
package logging

import (
	"log/slog"
	"os"
	"sync"
)

var (
	mu     sync.RWMutex
	global *slog.Logger
	debug  bool
)

// SetGlobal installs the process-wide logger and debug flag.
func SetGlobal(logger *slog.Logger, debugEnabled bool) {
	mu.Lock()
	defer mu.Unlock()
	global = logger
	debug = debugEnabled
}

// Get returns the process-wide logger, falling back to a stderr text
// handler at Info level (or Debug, if SetGlobal was called with a nil logger
// and debug enabled) when no logger has been installed.
func Get() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()

	if global != nil {
		return global
	}

	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return slog.New(handler)
}

// IsDebug reports whether debug-level logging was requested.
func IsDebug() bool {
	mu.RLock()
	defer mu.RUnlock()
	return debug
}
