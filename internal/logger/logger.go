// Package logger holds the process-wide structured logger used by the
// colorwheel command. It discards everything until Setup is called.
package logger

import (
	"io"
	"log/slog"
	"os"
	"sync"
)

// Config selects where log records go and how verbose they are.
type Config struct {
	// Writer defaults to os.Stderr.
	Writer io.Writer
	Debug  bool
}

var (
	mu     sync.RWMutex
	global = discard()
)

func discard() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

// Setup installs a text handler on cfg.Writer and returns a function that
// restores the discarding logger.
func Setup(cfg Config) func() {
	w := cfg.Writer
	if w == nil {
		w = os.Stderr
	}

	level := slog.LevelWarn
	addSource := false
	if cfg.Debug {
		level = slog.LevelDebug
		addSource = true
	}

	l := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: addSource,
	}))

	mu.Lock()
	global = l
	mu.Unlock()

	l.Debug("logger.initialized", "debug", cfg.Debug)

	return func() {
		mu.Lock()
		defer mu.Unlock()
		global = discard()
	}
}

// L returns the current logger.
func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}
