package config

import (
	"os"
	"path/filepath"
)

// GetFramewrightHome returns FRAMEWRIGHT_HOME or ~/.framewright default
func GetFramewrightHome() string {
	home := os.Getenv("FRAMEWRIGHT_HOME")
	if home == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".framewright"
		}
		return filepath.Join(homeDir, ".framewright")
	}
	return ExpandPath(home)
}

// GetDBPath returns $FRAMEWRIGHT_HOME/state.db
func GetDBPath() string {
	return filepath.Join(GetFramewrightHome(), "state.db")
}

// GetSettingsPath returns $FRAMEWRIGHT_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetFramewrightHome(), "settings.json")
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
