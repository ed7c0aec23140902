package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialize_DebugOffDiscards(t *testing.T) {
	t.Setenv("ARLON_DEBUG", "")
	t.Setenv("ARLON_DEBUG_FILE", "")

	path, err := Initialize(false, "", DefaultMaxLogFiles)

	require.NoError(t, err)
	assert.Empty(t, path)
	assert.NotNil(t, Logger)
}

func TestInitialize_DebugFile(t *testing.T) {
	t.Setenv("ARLON_DEBUG", "")
	t.Setenv("ARLON_DEBUG_FILE", "")
	debugFile := filepath.Join(t.TempDir(), "logs", "debug.log")

	path, err := Initialize(false, debugFile, DefaultMaxLogFiles)
	require.NoError(t, err)
	assert.Equal(t, debugFile, path)

	Logger.Debug("hello from test", "key", "value")

	data, err := os.ReadFile(debugFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello from test")
	assert.Contains(t, string(data), `"key":"value"`)
}

func TestInitialize_DebugFileFromEnv(t *testing.T) {
	debugFile := filepath.Join(t.TempDir(), "env.log")
	t.Setenv("ARLON_DEBUG", "1")
	t.Setenv("ARLON_DEBUG_FILE", debugFile)

	path, err := Initialize(false, "", DefaultMaxLogFiles)

	require.NoError(t, err)
	assert.Equal(t, debugFile, path)
	assert.FileExists(t, debugFile)
}

func TestInitialize_RotatedLogDir(t *testing.T) {
	stateHome := t.TempDir()
	t.Setenv("XDG_STATE_HOME", stateHome)
	t.Setenv("HOME", stateHome)
	t.Setenv("ARLON_DEBUG", "")
	t.Setenv("ARLON_DEBUG_FILE", "")

	path, err := Initialize(true, "", DefaultMaxLogFiles)

	require.NoError(t, err)
	assert.Equal(t, ".log", filepath.Ext(path))
	assert.FileExists(t, path)
}

func TestRotateLogs(t *testing.T) {
	dir := t.TempDir()
	base := time.Now().Add(-time.Hour)

	for i := 0; i < 5; i++ {
		name := filepath.Join(dir, fmt.Sprintf("log-%d.log", i))
		require.NoError(t, os.WriteFile(name, []byte("x"), 0644))
		modTime := base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, os.Chtimes(name, modTime, modTime))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "keep.txt"), []byte("x"), 0644))

	require.NoError(t, rotateLogs(dir, 3))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	// Two slots kept plus room for the next log file
	assert.ElementsMatch(t, []string{"log-3.log", "log-4.log", "keep.txt"}, names)
}

func TestRotateLogs_UnderLimit(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.log"), []byte("x"), 0644))

	require.NoError(t, rotateLogs(dir, 3))

	assert.FileExists(t, filepath.Join(dir, "a.log"))
}
