// Package logging configures the shared slog file logger for ccguide.
//
// The hook writes its result JSON to stdout, so log output must never go
// there; everything lands in the log file under ~/.ccguide. A logger that
// cannot open its file degrades to a discard logger rather than failing
// the run.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// NewFileLogger returns a text-format slog logger appending to path,
// creating the parent directory if needed. The returned closer must be
// closed when the process is done logging.
func NewFileLogger(path string, level slog.Level) (*slog.Logger, io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, err
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	return logger, f, nil
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// LevelFromString converts a config-file level string to a slog.Level.
// Unrecognized strings mean info.
func LevelFromString(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Open returns a file logger for the given path and level string, falling
// back to a discard logger (and a no-op closer) when the file cannot be
// opened. Logging failures must never surface to the hook's host.
func Open(path, level string) (*slog.Logger, func()) {
	logger, closer, err := NewFileLogger(path, LevelFromString(level))
	if err != nil {
		return Discard(), func() {}
	}
	return logger, func() { _ = closer.Close() }
}
