package storage

import (
	"path/filepath"
	"testing"
	"time"

	apperrors "countdown/internal/errors"
	"countdown/internal/ui/preferences"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettings_MissingFile(t *testing.T) {
	settings, err := LoadSettings(filepath.Join(t.TempDir(), "settings.yaml"))
	require.NoError(t, err)
	assert.Equal(t, preferences.DefaultSettings(), settings)
}

func TestSettings_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "countdown", "settings.yaml")
	want := preferences.Settings{
		SoundEnabled:  false,
		ToneFrequency: 880,
		ToneDuration:  40 * time.Millisecond,
		ToneSteps:     0,
		FlashSteps:    20,
		FlashInterval: 500 * time.Millisecond,
		AlertColor:    "#ffa500",
		LogLevel:      "debug",
	}

	require.NoError(t, SaveSettings(path, want))
	got, err := LoadSettings(path)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadSettings_InvalidValuesFallBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	writeFile(t, path, `
tone_frequency_hz: 50000
tone_steps: 500
flash_steps: -3
flash_interval_ms: 0
alert_color: "crimson"
log_level: "chatty"
`)

	got, err := LoadSettings(path)

	require.NoError(t, err)
	assert.Equal(t, preferences.DefaultSettings(), got)
}

func TestLoadSettings_ParseError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	writeFile(t, path, "flash_steps: [unterminated")

	got, err := LoadSettings(path)

	assert.True(t, apperrors.IsErrorCode(err, apperrors.ErrSettings))
	assert.Equal(t, preferences.DefaultSettings(), got)
}

func TestValidAlertColor(t *testing.T) {
	assert.True(t, ValidAlertColor("#FF0000"))
	assert.True(t, ValidAlertColor("#f00"))
	assert.False(t, ValidAlertColor("red"))
	assert.False(t, ValidAlertColor(""))
}
