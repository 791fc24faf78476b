package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iw2rmb/lined/internal/config"
)

func TestNew_WritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lined.log")
	logger, err := New(config.LogConfig{Level: "info", Format: "json", File: path})
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("visible")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "visible", entry["msg"])
	assert.Equal(t, "lined", entry["logger"])
}

func TestNew_ConsoleFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lined.log")
	logger, err := New(config.LogConfig{Level: "DEBUG", Format: "console", File: path})
	require.NoError(t, err)

	logger.Debug("dbg")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "dbg")
}

func TestNew_BadLevel(t *testing.T) {
	_, err := New(config.LogConfig{Level: "loud", Format: "console"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log level")
}
