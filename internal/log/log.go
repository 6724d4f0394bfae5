// Package log provides category-scoped structured logging for ps1.
//
// Logging is off unless Init is called with a file path: stdout carries the
// prompt itself and anything written to stderr would be painted into the
// user's terminal on every render.
package log

import (
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category identifies the subsystem a log line came from.
type Category string

const (
	CatPrompt Category = "prompt" // Prompt composition and rendering
	CatGit    Category = "git"    // Repository discovery and status
	CatConfig Category = "config" // Flag/env resolution and themes
	CatCLI    Category = "cli"    // Command dispatch
)

var logger atomic.Pointer[zap.SugaredLogger]

func init() {
	logger.Store(zap.NewNop().Sugar())
}

// Init starts writing JSON log lines to path. When verbose is set, debug
// lines are included.
func Init(path string, verbose bool) error {
	if path == "" {
		return nil
	}

	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	cfg.Sampling = nil
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	l, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	logger.Store(l.Sugar())
	return nil
}

// SetLogger replaces the active logger. Passing nil restores the no-op logger.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger.Store(l.Sugar())
}

// Close flushes buffered log lines and reverts to the no-op logger.
func Close() error {
	prev := logger.Swap(zap.NewNop().Sugar())
	// Sync on a file-backed core can return EINVAL for special files; ignore it.
	_ = prev.Sync()
	return nil
}

func with(cat Category) *zap.SugaredLogger {
	return logger.Load().With("cat", string(cat))
}

// Debug logs a debug-level message with alternating key/value pairs.
func Debug(cat Category, msg string, keysAndValues ...any) {
	with(cat).Debugw(msg, keysAndValues...)
}

// Info logs an info-level message.
func Info(cat Category, msg string, keysAndValues ...any) {
	with(cat).Infow(msg, keysAndValues...)
}

// Warn logs a warning.
func Warn(cat Category, msg string, keysAndValues ...any) {
	with(cat).Warnw(msg, keysAndValues...)
}

// ErrorErr logs an error-level message with err attached under "error".
func ErrorErr(cat Category, msg string, err error, keysAndValues ...any) {
	with(cat).Errorw(msg, append([]any{"error", err}, keysAndValues...)...)
}
