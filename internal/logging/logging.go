// Package logging provides the structured logger shared by the path helpers.
package logging

import (
	"io"
	"log/slog"
	"time"
)

// Logger provides structured logging for filesystem operations.
// The zero value and a nil *Logger discard everything.
type Logger struct {
	impl *slog.Logger
}

// New wraps an slog.Logger. A nil logger yields a no-op Logger.
func New(l *slog.Logger) *Logger {
	if l == nil {
		return NewNopLogger()
	}
	return &Logger{impl: l}
}

// NewNopLogger creates a logger that discards all records.
func NewNopLogger() *Logger {
	return &Logger{}
}

// NewTextLogger creates a logger writing text records at level to w.
func NewTextLogger(w io.Writer, level slog.Level) *Logger {
	return New(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

func (l *Logger) enabled() bool {
	return l != nil && l.impl != nil
}

// Debug logs debug-level messages.
func (l *Logger) Debug(msg string, args ...any) {
	if l.enabled() {
		l.impl.Debug(msg, args...)
	}
}

// Info logs info-level messages.
func (l *Logger) Info(msg string, args ...any) {
	if l.enabled() {
		l.impl.Info(msg, args...)
	}
}

// Warn logs warning-level messages.
func (l *Logger) Warn(msg string, args ...any) {
	if l.enabled() {
		l.impl.Warn(msg, args...)
	}
}

// Error logs error-level messages.
func (l *Logger) Error(msg string, args ...any) {
	if l.enabled() {
		l.impl.Error(msg, args...)
	}
}

// With returns a logger with additional fields.
func (l *Logger) With(args ...any) *Logger {
	if !l.enabled() {
		return l
	}
	return &Logger{impl: l.impl.With(args...)}
}

// WithPath returns a logger with path context.
func (l *Logger) WithPath(path string) *Logger {
	return l.With("path", path)
}

// Operation names a filesystem operation for logging.
type Operation string

// Operation constants.
const (
	OpEnsureDir   Operation = "ensure_dir"
	OpCreateTemp  Operation = "create_temp"
	OpCleanupTemp Operation = "cleanup_temp"
	OpLoadFile    Operation = "load_file"
	OpRegister    Operation = "register"
	OpLoadConfig  Operation = "load_manifest"
)

// LogOperation logs the outcome of an operation with its duration.
// Successes are logged at debug level, failures at warn level.
func LogOperation(logger *Logger, op Operation, path string, started time.Time, err error) {
	if !logger.enabled() {
		return
	}

	fields := []any{
		"operation", string(op),
		"path", path,
		"duration_ms", time.Since(started).Milliseconds(),
		"success", err == nil,
	}
	if err != nil {
		fields = append(fields, "error", err.Error())
		logger.Warn("path operation failed", fields...)
		return
	}
	logger.Debug("path operation completed", fields...)
}
