// Package cooldown enforces a minimum interval between two consecutive
// positive suggest decisions so the hook does not nag after every session.
//
// The on-disk state is one plaintext file holding a decimal floating-point
// UNIX timestamp. An absent file means "never suggested". The file is not
// locked: invocations racing on it may both decide to suggest, which is an
// accepted limitation of the single-process-per-session usage pattern.
package cooldown

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Store gates suggestion frequency. The decision stage reads it before
// every verdict and records on every positive one.
type Store interface {
	// InCooldown reports whether a suggestion was recorded less than
	// threshold ago.
	InCooldown(threshold time.Duration) bool

	// Record marks now as the moment of the latest suggestion.
	Record()
}

// FileStore persists the last-suggestion timestamp to a single file.
type FileStore struct {
	path   string
	logger *slog.Logger
}

// NewFileStore returns a FileStore writing to path. A nil logger
// discards diagnostics.
func NewFileStore(path string, logger *slog.Logger) *FileStore {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &FileStore{path: path, logger: logger}
}

// InCooldown reads the timestamp file and compares it against now.
// Any read or parse failure is treated as "not in cooldown": a broken
// state file must never suppress suggestions forever.
func (s *FileStore) InCooldown(threshold time.Duration) bool {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("cooldown file unreadable", "path", s.path, "error", err)
		}
		return false
	}
	last, err := strconv.ParseFloat(strings.TrimSpace(string(data)), 64)
	if err != nil {
		s.logger.Warn("cooldown file malformed", "path", s.path, "error", err)
		return false
	}
	return unixNow()-last < threshold.Seconds()
}

// Record overwrites the timestamp file with the current time, creating
// the parent directory if needed. Failures are logged, not returned:
// a suggestion already decided on should still be delivered.
func (s *FileStore) Record() {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		s.logger.Error("cooldown dir create failed", "path", s.path, "error", err)
		return
	}
	stamp := strconv.FormatFloat(unixNow(), 'f', -1, 64)
	if err := os.WriteFile(s.path, []byte(stamp), 0o644); err != nil {
		s.logger.Error("cooldown write failed", "path", s.path, "error", err)
	}
}

func unixNow() float64 {
	return float64(time.Now().UnixNano()) / 1e9
}
