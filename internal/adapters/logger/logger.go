// Package logger implements a logging adapter using log/slog.
package logger

import (
	"io"
	"log/slog"
	"maps"
	"os"
	"slices"
	"sync"

	"go.trai.ch/stitch/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Logger = (*Logger)(nil)

// Logger implements ports.Logger using log/slog.
type Logger struct {
	logger *slog.Logger
	mu     sync.RWMutex
}

// New creates a new Logger writing to stderr.
func New() *Logger {
	return NewWithWriter(os.Stderr)
}

// NewWithWriter creates a new Logger writing human-readable text to w.
func NewWithWriter(w io.Writer) *Logger {
	return &Logger{
		logger: newSlogLogger(w),
	}
}

// SetOutput updates the logger's output destination.
// Pages are rendered concurrently, so the swap is guarded by the mutex.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.logger = newSlogLogger(w)
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg)
}

// Error logs an error message. Metadata attached with zerr anywhere in the error
// tree, including joined errors, is emitted as fields.
func (l *Logger) Error(err error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Error(err.Error(), errorFields(err)...)
}

func newSlogLogger(w io.Writer) *slog.Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	return slog.New(handler)
}

// errorFields walks the error tree depth first and collects zerr metadata.
func errorFields(err error) []any {
	var fields []any
	seen := make(map[string]bool)

	var walk func(error)
	walk = func(err error) {
		if err == nil {
			return
		}

		if zErr, ok := err.(*zerr.Error); ok {
			meta := zErr.Metadata()
			for _, key := range slices.Sorted(maps.Keys(meta)) {
				if seen[key] {
					continue
				}
				seen[key] = true
				fields = append(fields, slog.Any(key, meta[key]))
			}
		}

		switch u := err.(type) {
		case interface{ Unwrap() []error }:
			for _, e := range u.Unwrap() {
				walk(e)
			}
		case interface{ Unwrap() error }:
			walk(u.Unwrap())
		}
	}
	walk(err)

	return fields
}
