package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFileLoggerWrites(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "logs", "assistant.log")
	logger, closer, err := NewFileLogger(path, slog.LevelInfo)
	require.NoError(t, err)

	logger.Info("hook start", "session_id", "abc123")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hook start")
	assert.Contains(t, string(data), "abc123")
}

func TestNewFileLoggerRespectsLevel(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "assistant.log")
	logger, closer, err := NewFileLogger(path, slog.LevelWarn)
	require.NoError(t, err)

	logger.Info("below threshold")
	logger.Warn("at threshold")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "below threshold")
	assert.Contains(t, string(data), "at threshold")
}

func TestLevelFromString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"ERROR", slog.LevelError},
		{"  info  ", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"nonsense", slog.LevelInfo},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, LevelFromString(tt.in), "input %q", tt.in)
	}
}

func TestOpenFallsBackToDiscard(t *testing.T) {
	t.Parallel()

	// A directory path cannot be opened as a file; Open must not fail.
	logger, done := Open(t.TempDir(), "info")
	require.NotNil(t, logger)
	logger.Info("goes nowhere")
	done()
}
