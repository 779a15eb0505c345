package cooldown

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ Store = (*FileStore)(nil)
	_ Store = (*Memory)(nil)
)

func writeStamp(t *testing.T, path string, ts float64) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	stamp := strconv.FormatFloat(ts, 'f', -1, 64)
	require.NoError(t, os.WriteFile(path, []byte(stamp), 0o644))
}

func TestFileStoreAbsentFileMeansNoCooldown(t *testing.T) {
	t.Parallel()

	s := NewFileStore(filepath.Join(t.TempDir(), "last_suggestion.txt"), nil)
	assert.False(t, s.InCooldown(time.Hour))
}

func TestFileStoreRecordThenInCooldown(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "last_suggestion.txt")
	s := NewFileStore(path, nil)

	s.Record()
	assert.True(t, s.InCooldown(time.Hour))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	ts, err := strconv.ParseFloat(string(data), 64)
	require.NoError(t, err)
	assert.InDelta(t, float64(time.Now().Unix()), ts, 5)
}

func TestFileStoreThresholdBoundary(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "last_suggestion.txt")
	s := NewFileStore(path, nil)

	tenMinutesAgo := float64(time.Now().Unix()) - 600
	writeStamp(t, path, tenMinutesAgo)

	assert.False(t, s.InCooldown(5*time.Minute))
	assert.True(t, s.InCooldown(time.Hour))
}

func TestFileStoreMalformedFileFailsOpen(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "last_suggestion.txt")
	require.NoError(t, os.WriteFile(path, []byte("not a number\n"), 0o644))

	s := NewFileStore(path, nil)
	assert.False(t, s.InCooldown(time.Hour))
}

func TestFileStoreAcceptsIntegerTimestamp(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "last_suggestion.txt")
	stamp := strconv.FormatInt(time.Now().Unix()-10, 10)
	require.NoError(t, os.WriteFile(path, []byte(stamp), 0o644))

	s := NewFileStore(path, nil)
	assert.True(t, s.InCooldown(time.Minute))
}

func TestFileStoreRecordCreatesParentDir(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "deeper", "last_suggestion.txt")
	s := NewFileStore(path, nil)

	s.Record()
	assert.True(t, s.InCooldown(time.Hour))
}

func TestFileStoreRecordOverwrites(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "last_suggestion.txt")
	s := NewFileStore(path, nil)

	writeStamp(t, path, float64(time.Now().Unix())-9000)
	assert.False(t, s.InCooldown(time.Hour))

	s.Record()
	assert.True(t, s.InCooldown(time.Hour))
}

func TestMemoryStore(t *testing.T) {
	t.Parallel()

	var m Memory
	assert.False(t, m.InCooldown(time.Hour), "zero value means never suggested")

	m.Record()
	assert.True(t, m.InCooldown(time.Hour))

	m.Last = time.Now().Add(-10 * time.Minute)
	assert.False(t, m.InCooldown(5*time.Minute))
	assert.True(t, m.InCooldown(time.Hour))
}
