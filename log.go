package pane

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// discardHandler stands in for slog.DiscardHandler, which requires Go 1.24.
var discardHandler = slog.NewTextHandler(io.Discard, nil)

// The package logs through a single slog.Logger. The default handler
// discards everything: a UI library writing to stdout would corrupt
// its own display, so logging is opt-in via SetLogger or LogToFile.
var (
	logMu  sync.Mutex
	logger = slog.New(discardHandler)
)

// SetLogger replaces the package logger. Passing nil restores the
// discarding default.
func SetLogger(l *slog.Logger) {
	logMu.Lock()
	defer logMu.Unlock()
	if l == nil {
		l = slog.New(discardHandler)
	}
	logger = l
}

// Logger returns the current package logger.
func Logger() *slog.Logger {
	logMu.Lock()
	defer logMu.Unlock()
	return logger
}

// LogToFile directs package logging to the given file at the given
// level. The directory is created if needed. The returned func closes
// the file and restores the discarding logger.
func LogToFile(path string, level slog.Level) (func() error, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})))
	return func() error {
		SetLogger(nil)
		return f.Close()
	}, nil
}
