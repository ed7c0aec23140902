package harness

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestEnvironment provides an isolated test environment with its own ARLON_HOME.
type TestEnvironment struct {
	ArlonHome string
	WorkDir   string
	extraEnv  map[string]string
	tb        testing.TB
}

// NewTestEnvironment creates an isolated test environment with a temp ARLON_HOME.
// Commands run from a separate temp directory unless WorkDir is changed.
func NewTestEnvironment(tb testing.TB) *TestEnvironment {
	tb.Helper()

	return &TestEnvironment{
		ArlonHome: tb.TempDir(),
		WorkDir:   tb.TempDir(),
		extraEnv:  make(map[string]string),
		tb:        tb,
	}
}

// Environ returns environment variables configured for test isolation.
// It filters out ARLON_* variables and sets:
//   - ARLON_HOME to the temp directory
//   - TZ to UTC
func (e *TestEnvironment) Environ() []string {
	env := make([]string, 0, len(os.Environ())+2+len(e.extraEnv))

	overrideKeys := map[string]bool{"ARLON_HOME": true, "TZ": true}
	for k := range e.extraEnv {
		overrideKeys[k] = true
	}

	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(key, "ARLON_") || overrideKeys[key] {
			continue
		}
		env = append(env, kv)
	}

	env = append(env,
		"ARLON_HOME="+e.ArlonHome,
		"TZ=UTC",
	)

	for k, v := range e.extraEnv {
		env = append(env, k+"="+v)
	}

	return env
}

// DBPath returns the path to the history database.
func (e *TestEnvironment) DBPath() string {
	return filepath.Join(e.ArlonHome, "history.db")
}

// SettingsPath returns the path to the settings file.
func (e *TestEnvironment) SettingsPath() string {
	return filepath.Join(e.ArlonHome, "settings.json")
}

// WriteSettings writes content to the settings file.
func (e *TestEnvironment) WriteSettings(content string) {
	e.tb.Helper()
	if err := os.WriteFile(e.SettingsPath(), []byte(content), 0644); err != nil {
		e.tb.Fatalf("Failed to write settings: %v", err)
	}
}

// SetEnv sets an additional environment variable for this test environment.
func (e *TestEnvironment) SetEnv(key, value string) {
	if e.extraEnv == nil {
		e.extraEnv = make(map[string]string)
	}
	e.extraEnv[key] = value
}
