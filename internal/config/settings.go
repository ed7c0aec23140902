package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Defaults used when neither a flag, an env var nor settings.json set a value
const (
	DefaultBackend      = "gogit"
	DefaultFormat       = "simple"
	DefaultHistoryLimit = 20
	DefaultMaxLogFiles  = 1000
)

// Settings represents the structure of ~/.arlon/settings.json
type Settings struct {
	Backend       string `json:"backend,omitempty"`
	Debug         *bool  `json:"debug,omitempty"`
	DefaultFormat string `json:"default_format,omitempty"`
	HistoryDBPath string `json:"history_db_path,omitempty"`
	HistoryLimit  *int   `json:"history_limit,omitempty"`
	MaxLogFiles   *int   `json:"max_log_files,omitempty"`
	RecordHistory *bool  `json:"record_history,omitempty"`
}

// LoadSettings loads settings from $ARLON_HOME/settings.json (or ~/.arlon/settings.json if not set)
// Returns empty Settings if file doesn't exist (not an error)
func LoadSettings() (*Settings, error) {
	return LoadSettingsFrom(GetSettingsPath())
}

// LoadSettingsFrom loads settings from path
func LoadSettingsFrom(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil // Not an error, use defaults
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	if settings.HistoryDBPath != "" {
		settings.HistoryDBPath = ExpandPath(settings.HistoryDBPath)
	}

	return &settings, nil
}

// ResolvedHistoryDBPath returns the configured history database or the default one
func (s *Settings) ResolvedHistoryDBPath() string {
	if s != nil && s.HistoryDBPath != "" {
		return s.HistoryDBPath
	}
	return GetHistoryDBPath()
}
