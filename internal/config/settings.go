package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Settings represents the structure of $FRAMEWRIGHT_HOME/settings.json
type Settings struct {
	Debug       *bool  `json:"debug,omitempty"`
	ExportDir   string `json:"export_dir,omitempty"`
	MaxLogFiles *int   `json:"max_log_files,omitempty"`
}

// LoadSettings loads settings from $FRAMEWRIGHT_HOME/settings.json.
// Returns empty Settings if the file doesn't exist (not an error).
func LoadSettings() (*Settings, error) {
	path := GetSettingsPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	if settings.ExportDir != "" {
		settings.ExportDir = ExpandPath(settings.ExportDir)
	}

	return &settings, nil
}

// SaveSettings saves settings to $FRAMEWRIGHT_HOME/settings.json
func SaveSettings(settings *Settings) error {
	path := GetSettingsPath()
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}
