package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"pomodoro/internal/platform"
	"pomodoro/internal/ui/preferences"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	FocusMinutes int    `yaml:"focus_minutes"`
	BreakMinutes int    `yaml:"break_minutes"`
	AlarmSound   string `yaml:"alarm_sound"`
}

// LoadSettings reads user preferences from YAML.
// If the config file does not exist, default settings are returned.
func LoadSettings(appName string) (preferences.Settings, error) {
	configPath, err := SettingsPath(appName)
	if err != nil {
		return preferences.DefaultSettings(), err
	}
	return loadSettingsFile(configPath)
}

// SaveSettings writes user preferences to YAML.
func SaveSettings(appName string, settings preferences.Settings) error {
	configPath, err := SettingsPath(appName)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	fileData := yamlSettings{
		FocusMinutes: int(settings.FocusDuration / time.Minute),
		BreakMinutes: int(settings.BreakDuration / time.Minute),
		AlarmSound:   settings.AlarmSound,
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	tmpPath := configPath + ".tmp"
	if err := os.WriteFile(tmpPath, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}
	if err := os.Rename(tmpPath, configPath); err != nil {
		return fmt.Errorf("replace settings file: %w", err)
	}

	return nil
}

// SettingsPath returns the location of the settings file.
func SettingsPath(appName string) (string, error) {
	configDir, err := platform.NewService().GetConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

func loadSettingsFile(configPath string) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()

	rawData, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

func applyYamlSettings(settings *preferences.Settings, fileData yamlSettings) {
	if fileData.FocusMinutes > 0 {
		settings.FocusDuration = time.Duration(fileData.FocusMinutes) * time.Minute
	}
	if fileData.BreakMinutes > 0 {
		settings.BreakDuration = time.Duration(fileData.BreakMinutes) * time.Minute
	}
	if sound := strings.TrimSpace(fileData.AlarmSound); sound != "" {
		settings.AlarmSound = sound
	}
}
