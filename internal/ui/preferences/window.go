package preferences

import (
	"strconv"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
	"github.com/lucasb-eyer/go-colorful"
)

var logLevels = []string{"debug", "info", "warn", "error"}

// Window handles the preferences UI.
type Window struct {
	window        fyne.Window
	settings      Settings
	onSave        func(Settings)
	sound         *widget.Check
	toneFrequency *widget.Entry
	toneDuration  *widget.Entry
	toneSteps     *widget.Entry
	flashSteps    *widget.Entry
	flashInterval *widget.Entry
	alertColor    *widget.Entry
	logLevel      *widget.Select
}

// New creates a preferences window.
func New(app fyne.App, settings Settings, onSave func(Settings)) *Window {
	window := app.NewWindow("Countdown Settings")

	prefs := &Window{
		window:        window,
		onSave:        onSave,
		sound:         widget.NewCheck("Play a tone while flashing", nil),
		toneFrequency: widget.NewEntry(),
		toneDuration:  widget.NewEntry(),
		toneSteps:     widget.NewEntry(),
		flashSteps:    widget.NewEntry(),
		flashInterval: widget.NewEntry(),
		alertColor:    widget.NewEntry(),
		logLevel:      widget.NewSelect(logLevels, nil),
	}
	prefs.alertColor.Validator = func(value string) error {
		_, err := colorful.Hex(strings.TrimSpace(value))
		return err
	}
	prefs.UpdateSettings(settings)

	form := container.NewVBox(
		widget.NewLabelWithStyle("Alert", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		prefs.sound,
		container.NewHBox(widget.NewLabel("Tone frequency"), prefs.toneFrequency, widget.NewLabel("Hz")),
		container.NewHBox(widget.NewLabel("Tone length"), prefs.toneDuration, widget.NewLabel("ms")),
		container.NewHBox(widget.NewLabel("Flashes with tone"), prefs.toneSteps),
		container.NewHBox(widget.NewLabel("Flashes"), prefs.flashSteps),
		container.NewHBox(widget.NewLabel("Flash interval"), prefs.flashInterval, widget.NewLabel("ms")),
		container.NewHBox(widget.NewLabel("Flash colour"), prefs.alertColor),
		widget.NewLabelWithStyle("Diagnostics", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Log level"), prefs.logLevel),
	)

	saveButton := widget.NewButton("Save", prefs.handleSave)
	cancelButton := widget.NewButton("Cancel", func() {
		prefs.UpdateSettings(prefs.settings)
		window.Hide()
	})
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(380, 420))
	window.SetCloseIntercept(window.Hide)

	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// Settings returns the last saved settings.
func (prefs *Window) Settings() Settings {
	return prefs.settings
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.settings = settings
	prefs.sound.SetChecked(settings.SoundEnabled)
	prefs.toneFrequency.SetText(strconv.Itoa(settings.ToneFrequency))
	prefs.toneDuration.SetText(strconv.Itoa(int(settings.ToneDuration.Milliseconds())))
	prefs.toneSteps.SetText(strconv.Itoa(settings.ToneSteps))
	prefs.flashSteps.SetText(strconv.Itoa(settings.FlashSteps))
	prefs.flashInterval.SetText(strconv.Itoa(int(settings.FlashInterval.Milliseconds())))
	prefs.alertColor.SetText(settings.AlertColor)
	prefs.logLevel.SetSelected(settings.LogLevel)
}

// Collect reads the form. Unparseable fields keep their previous value.
func (prefs *Window) Collect() Settings {
	settings := prefs.settings
	settings.SoundEnabled = prefs.sound.Checked

	if value, ok := parsePositiveInt(prefs.toneFrequency.Text); ok {
		settings.ToneFrequency = value
	}
	if value, ok := parsePositiveInt(prefs.toneDuration.Text); ok {
		settings.ToneDuration = time.Duration(value) * time.Millisecond
	}
	if value, ok := parseNonNegativeInt(prefs.toneSteps.Text); ok {
		settings.ToneSteps = value
	}
	if value, ok := parsePositiveInt(prefs.flashSteps.Text); ok {
		settings.FlashSteps = value
	}
	if value, ok := parsePositiveInt(prefs.flashInterval.Text); ok {
		settings.FlashInterval = time.Duration(value) * time.Millisecond
	}
	if colour := strings.TrimSpace(prefs.alertColor.Text); prefs.alertColor.Validator(colour) == nil {
		settings.AlertColor = colour
	}
	if prefs.logLevel.Selected != "" {
		settings.LogLevel = prefs.logLevel.Selected
	}
	if settings.ToneSteps > settings.FlashSteps {
		settings.ToneSteps = settings.FlashSteps
	}
	return settings
}

func (prefs *Window) handleSave() {
	settings := prefs.Collect()
	prefs.UpdateSettings(settings)
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	prefs.window.Hide()
}

func parsePositiveInt(value string) (int, bool) {
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || parsed <= 0 {
		return 0, false
	}
	return parsed, true
}

func parseNonNegativeInt(value string) (int, bool) {
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || parsed < 0 {
		return 0, false
	}
	return parsed, true
}
