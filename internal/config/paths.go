package config

import (
	"os"
	"path/filepath"
)

// GetArlonHome returns ARLON_HOME or ~/.arlon default
func GetArlonHome() string {
	arlonHome := os.Getenv("ARLON_HOME")
	if arlonHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".arlon"
		}
		return filepath.Join(homeDir, ".arlon")
	}
	return ExpandPath(arlonHome)
}

// GetHistoryDBPath returns $ARLON_HOME/history.db
func GetHistoryDBPath() string {
	return filepath.Join(GetArlonHome(), "history.db")
}

// GetSettingsPath returns $ARLON_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetArlonHome(), "settings.json")
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
