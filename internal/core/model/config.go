package model

import "time"

// DefaultPresetTimes are offered when the times file has no preset list.
var DefaultPresetTimes = []int{20, 30, 50, 60, 200}

// Configuration is the persisted list of durations, in seconds.
type Configuration struct {
	PresetTimes []int
	CustomTimes []int
}

// DefaultConfiguration returns the presets and an empty custom list.
func DefaultConfiguration() Configuration {
	return Configuration{
		PresetTimes: append([]int(nil), DefaultPresetTimes...),
		CustomTimes: []int{},
	}
}

// AlertConfig contains the cadence of a countdown and its terminal alert.
type AlertConfig struct {
	TickInterval  time.Duration
	FlashSteps    int
	FlashInterval time.Duration
	ToneSteps     int
	ToneFrequency int
	ToneDuration  time.Duration
}

// DefaultAlertConfig flashes 100 times, 300ms apart, with a tone on roughly
// the first third of the flashes.
func DefaultAlertConfig() AlertConfig {
	return AlertConfig{
		TickInterval:  time.Second,
		FlashSteps:    100,
		FlashInterval: 300 * time.Millisecond,
		ToneSteps:     34,
		ToneFrequency: 2500,
		ToneDuration:  15 * time.Millisecond,
	}
}

// WithDefaults replaces unset fields with their defaults.
func (config AlertConfig) WithDefaults() AlertConfig {
	defaults := DefaultAlertConfig()
	if config.TickInterval <= 0 {
		config.TickInterval = defaults.TickInterval
	}
	if config.FlashSteps <= 0 {
		config.FlashSteps = defaults.FlashSteps
	}
	if config.FlashInterval <= 0 {
		config.FlashInterval = defaults.FlashInterval
	}
	if config.ToneSteps < 0 {
		config.ToneSteps = 0
	}
	if config.ToneFrequency <= 0 {
		config.ToneFrequency = defaults.ToneFrequency
	}
	if config.ToneDuration <= 0 {
		config.ToneDuration = defaults.ToneDuration
	}
	return config
}
