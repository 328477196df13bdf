package storage

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	apperrors "countdown/internal/errors"
	"countdown/internal/logging"
	"countdown/internal/ui/preferences"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

const (
	minToneFrequency = 100
	maxToneFrequency = 8000
	maxFlashSteps    = 1000
)

type yamlSettings struct {
	SoundEnabled        *bool  `yaml:"sound_enabled"`
	ToneFrequency       int    `yaml:"tone_frequency_hz"`
	ToneDurationMillis  int    `yaml:"tone_duration_ms"`
	ToneSteps           *int   `yaml:"tone_steps"`
	FlashSteps          int    `yaml:"flash_steps"`
	FlashIntervalMillis int    `yaml:"flash_interval_ms"`
	AlertColor          string `yaml:"alert_color"`
	LogLevel            string `yaml:"log_level"`
}

// LoadSettings reads user preferences from YAML.
// If the file does not exist, default settings are returned.
func LoadSettings(path string) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()

	rawData, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, apperrors.Wrap(err, apperrors.ErrSettings, "read settings file")
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, apperrors.Wrap(err, apperrors.ErrSettings, "parse settings yaml")
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

// SaveSettings writes user preferences to YAML.
func SaveSettings(path string, settings preferences.Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return apperrors.Wrap(err, apperrors.ErrSettings, "create config directory")
	}

	soundEnabled := settings.SoundEnabled
	toneSteps := settings.ToneSteps
	fileData := yamlSettings{
		SoundEnabled:        &soundEnabled,
		ToneFrequency:       settings.ToneFrequency,
		ToneDurationMillis:  int(settings.ToneDuration / time.Millisecond),
		ToneSteps:           &toneSteps,
		FlashSteps:          settings.FlashSteps,
		FlashIntervalMillis: int(settings.FlashInterval / time.Millisecond),
		AlertColor:          settings.AlertColor,
		LogLevel:            settings.LogLevel,
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrSettings, "marshal settings yaml")
	}

	if err := os.WriteFile(path, serialized, 0o644); err != nil {
		return apperrors.Wrap(err, apperrors.ErrSettings, "write settings file")
	}

	return nil
}

// ValidAlertColor reports whether value is a #RRGGBB colour.
func ValidAlertColor(value string) bool {
	_, err := colorful.Hex(value)
	return err == nil
}

func applyYamlSettings(settings *preferences.Settings, fileData yamlSettings) {
	if fileData.SoundEnabled != nil {
		settings.SoundEnabled = *fileData.SoundEnabled
	}
	if fileData.ToneFrequency >= minToneFrequency && fileData.ToneFrequency <= maxToneFrequency {
		settings.ToneFrequency = fileData.ToneFrequency
	}
	if fileData.ToneDurationMillis > 0 {
		settings.ToneDuration = time.Duration(fileData.ToneDurationMillis) * time.Millisecond
	}
	if fileData.FlashSteps > 0 && fileData.FlashSteps <= maxFlashSteps {
		settings.FlashSteps = fileData.FlashSteps
	}
	if fileData.ToneSteps != nil && *fileData.ToneSteps >= 0 && *fileData.ToneSteps <= settings.FlashSteps {
		settings.ToneSteps = *fileData.ToneSteps
	}
	if fileData.FlashIntervalMillis > 0 {
		settings.FlashInterval = time.Duration(fileData.FlashIntervalMillis) * time.Millisecond
	}
	if ValidAlertColor(fileData.AlertColor) {
		settings.AlertColor = fileData.AlertColor
	}
	if _, err := logging.ParseLevel(fileData.LogLevel); err == nil && fileData.LogLevel != "" {
		settings.LogLevel = fileData.LogLevel
	}
}
