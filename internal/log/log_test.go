package log

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup_DisabledDiscards(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reel.log")

	require.NoError(t, Setup(Options{Enabled: false, Path: path}))
	For("test").Info("dropped")

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "disabled logger must not create a file")
}

func TestSetup_WritesTextEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "reel.log")
	t.Cleanup(Close)

	require.NoError(t, Setup(Options{Enabled: true, Level: "debug", Path: path}))
	For("scroll").Debug("settled")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "component=scroll")
	assert.Contains(t, string(data), "settled")
}

func TestSetup_JSONAndLevelFilter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reel.log")
	t.Cleanup(Close)

	require.NoError(t, Setup(Options{Enabled: true, Level: "warn", JSON: true, Path: path}))
	For("playback").Info("filtered")
	For("playback").Warn("kept")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "kept", entry["msg"])
	assert.Equal(t, "playback", entry["component"])
}

func TestSetup_InvalidLevelFallsBackToInfo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reel.log")
	t.Cleanup(Close)

	require.NoError(t, Setup(Options{Enabled: true, Level: "loud", Path: path}))
	For("app").Debug("hidden")
	For("app").Info("shown")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), "shown")
}
