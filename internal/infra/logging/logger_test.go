package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_WritesEntries(t *testing.T) {
	dir := t.TempDir()
	logger := New(dir, slog.LevelInfo)
	defer func() { _ = logger.Close() }()

	logger.Info(1, "task", "created: \"Write report\"")
	logger.Error(0, "store", "save failed")

	content, err := os.ReadFile(filepath.Join(dir, LogFileName))
	require.NoError(t, err)

	text := string(content)
	assert.Contains(t, text, "[INFO] [task-1] [task] created")
	assert.Contains(t, text, "[ERROR] [global] [store] save failed")
}

func TestLogger_RespectsLevel(t *testing.T) {
	dir := t.TempDir()
	logger := New(dir, slog.LevelWarn)
	defer func() { _ = logger.Close() }()

	logger.Debug(0, "noise", "should not appear")
	logger.Info(0, "noise", "should not appear either")
	logger.Warn(0, "signal", "should appear")

	content, err := os.ReadFile(filepath.Join(dir, LogFileName))
	require.NoError(t, err)

	text := string(content)
	assert.NotContains(t, text, "noise")
	assert.Equal(t, 1, strings.Count(text, "\n"))
}

func TestLogger_DisabledWithoutDataDir(t *testing.T) {
	logger := New("", slog.LevelInfo)

	// Must not panic or create files.
	logger.Info(0, "task", "dropped")
	assert.NoError(t, logger.Close())
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warn"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("info"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("bogus"))
}
