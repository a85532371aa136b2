package linkedvec

import (
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with linkedvec-specific events.
// Only bulk operations log; O(1) operations never do.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// LogGrow logs a reallocation of the backing array.
func (l *Logger) LogGrow(oldCap, newCap int) {
	l.Debug("backing array grown",
		"old_capacity", oldCap,
		"new_capacity", newCap,
	)
}

// LogSort logs a completed sort.
func (l *Logger) LogSort(n int, stable bool, elapsed time.Duration) {
	l.Debug("sort completed",
		"len", n,
		"stable", stable,
		"elapsed", elapsed,
	)
}

// LogAppend logs elements moved from another list.
func (l *Logger) LogAppend(moved, length int) {
	l.Debug("append completed",
		"moved", moved,
		"len", length,
	)
}

// LogClear logs a clear.
func (l *Logger) LogClear(removed int) {
	l.Debug("list cleared",
		"removed", removed,
	)
}

// LogVerify logs the outcome of an integrity check.
func (l *Logger) LogVerify(length int, err error) {
	if err != nil {
		l.Warn("integrity check failed",
			"len", length,
			"error", err,
		)
		return
	}
	l.Debug("integrity check passed",
		"len", length,
	)
}
