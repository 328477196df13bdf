package preferences

import (
	"fmt"
	"time"

	"countdown/internal/core/model"
)

// Settings defines editable user preferences.
type Settings struct {
	SoundEnabled  bool
	ToneFrequency int
	ToneDuration  time.Duration
	ToneSteps     int

	FlashSteps    int
	FlashInterval time.Duration
	AlertColor    string

	LogLevel string
}

// DefaultSettings returns default settings for Countdown.
func DefaultSettings() Settings {
	alert := model.DefaultAlertConfig()
	return Settings{
		SoundEnabled:  true,
		ToneFrequency: alert.ToneFrequency,
		ToneDuration:  alert.ToneDuration,
		ToneSteps:     alert.ToneSteps,
		FlashSteps:    alert.FlashSteps,
		FlashInterval: alert.FlashInterval,
		AlertColor:    "#FF0000",
		LogLevel:      "info",
	}
}

// AlertConfig converts settings to the countdown's alert cadence.
func (settings Settings) AlertConfig() model.AlertConfig {
	toneSteps := settings.ToneSteps
	if !settings.SoundEnabled {
		toneSteps = 0
	}
	return model.AlertConfig{
		TickInterval:  time.Second,
		FlashSteps:    settings.FlashSteps,
		FlashInterval: settings.FlashInterval,
		ToneSteps:     toneSteps,
		ToneFrequency: settings.ToneFrequency,
		ToneDuration:  settings.ToneDuration,
	}.WithDefaults()
}

// Summary describes the alert cadence in one line.
func (settings Settings) Summary() string {
	sound := "silent"
	if settings.SoundEnabled && settings.ToneSteps > 0 {
		sound = fmt.Sprintf("%d tones at %d Hz", settings.ToneSteps, settings.ToneFrequency)
	}
	return fmt.Sprintf("%d flashes every %v, %s", settings.FlashSteps, settings.FlashInterval, sound)
}
