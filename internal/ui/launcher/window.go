package launcher

import (
	"context"
	"fmt"
	"strings"
	"time"

	"countdown/internal/core/timelist"
	apperrors "countdown/internal/errors"
	"countdown/internal/logging"
	"countdown/internal/storage"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

const (
	presetColumns = 3
	historyLimit  = 20
)

// HistoryReader lists finished countdowns.
type HistoryReader interface {
	Recent(ctx context.Context, limit int) ([]storage.Session, error)
}

// Callbacks defines launcher action handlers.
type Callbacks struct {
	// OnStart opens a countdown window.
	OnStart func(seconds int) error
	// OnTimesChanged runs after the saved list changed.
	OnTimesChanged func(presets, custom []int)
	OnPreferences  func()
}

// Options configures the launcher.
type Options struct {
	Version string
	URL     string
	History HistoryReader
}

// Window is the main window: presets, a custom entry and saved times.
type Window struct {
	window    fyne.Window
	times     *timelist.List
	options   Options
	callbacks Callbacks
	presets   []*widget.Button
	entry     *widget.Entry
	list      *widget.List
	selected  widget.ListItemID
}

// New creates the launcher window. It is not shown until Show is called.
func New(app fyne.App, times *timelist.List, options Options, callbacks Callbacks) *Window {
	launcher := &Window{
		window:    app.NewWindow("Countdown"),
		times:     times,
		options:   options,
		callbacks: callbacks,
		selected:  -1,
	}

	presets := make([]fyne.CanvasObject, 0, len(times.Presets()))
	for _, seconds := range times.Presets() {
		seconds := seconds
		button := widget.NewButton(fmt.Sprintf("%ds", seconds), func() {
			launcher.Report(launcher.start(seconds))
		})
		launcher.presets = append(launcher.presets, button)
		presets = append(presets, button)
	}

	launcher.entry = widget.NewEntry()
	launcher.entry.SetPlaceHolder("Seconds")
	launcher.entry.OnSubmitted = func(string) {
		launcher.Report(launcher.UseEntry())
	}
	custom := container.NewBorder(nil, nil, nil,
		container.NewHBox(
			widget.NewButtonWithIcon("Save", theme.DocumentSaveIcon(), func() {
				launcher.Report(launcher.SaveEntry())
			}),
			widget.NewButtonWithIcon("Use", theme.MediaPlayIcon(), func() {
				launcher.Report(launcher.UseEntry())
			}),
		),
		launcher.entry,
	)

	launcher.list = widget.NewList(
		func() int {
			return launcher.times.Len()
		},
		func() fyne.CanvasObject {
			return newTimeItem(launcher)
		},
		func(id widget.ListItemID, object fyne.CanvasObject) {
			seconds, err := launcher.times.At(id)
			if err != nil {
				return
			}
			object.(*timeItem).bind(id, seconds)
		},
	)
	launcher.list.OnSelected = func(id widget.ListItemID) {
		launcher.selected = id
	}
	launcher.list.OnUnselected = func(id widget.ListItemID) {
		if launcher.selected == id {
			launcher.selected = -1
		}
	}

	actions := container.NewGridWithColumns(2,
		widget.NewButton("Use selected", func() {
			launcher.Report(launcher.UseSelected())
		}),
		widget.NewButton("Delete selected", func() {
			launcher.Report(launcher.DeleteSelected())
		}),
	)

	top := container.NewVBox(
		widget.NewCard("", "Preset times", container.NewGridWithColumns(presetColumns, presets...)),
		widget.NewCard("", "Custom time (seconds)", custom),
	)
	saved := widget.NewCard("", "Saved custom times", container.NewBorder(nil, actions, nil, nil, launcher.list))

	launcher.window.SetContent(container.NewBorder(top, nil, nil, nil, saved))
	launcher.window.SetMainMenu(launcher.mainMenu())
	launcher.window.Resize(fyne.NewSize(340, 520))
	return launcher
}

// Window exposes the underlying fyne window.
func (launcher *Window) Window() fyne.Window {
	return launcher.window
}

// Show displays the launcher and brings it to the front.
func (launcher *Window) Show() {
	launcher.window.Show()
	launcher.window.RequestFocus()
}

// SaveEntry adds the typed value to the saved list.
func (launcher *Window) SaveEntry() error {
	seconds, err := timelist.ParseSeconds(launcher.entry.Text)
	if err != nil {
		return err
	}
	err = launcher.times.Add(seconds)
	if err != nil && !apperrors.IsErrorCode(err, apperrors.ErrConfigSave) {
		return err
	}
	launcher.entry.SetText("")
	launcher.timesChanged()
	return err
}

// UseEntry starts a countdown for the typed value without saving it.
func (launcher *Window) UseEntry() error {
	seconds, err := timelist.ParseSeconds(launcher.entry.Text)
	if err != nil {
		return err
	}
	return launcher.start(seconds)
}

// UseSelected starts a countdown for the selected saved value.
func (launcher *Window) UseSelected() error {
	seconds, err := launcher.times.At(launcher.selected)
	if err != nil {
		return err
	}
	return launcher.start(seconds)
}

// DeleteSelected removes the selected saved value and confirms it.
func (launcher *Window) DeleteSelected() error {
	seconds, err := launcher.times.RemoveAt(launcher.selected)
	if apperrors.IsErrorCode(err, apperrors.ErrNoSelection) {
		return err
	}
	launcher.timesChanged()
	if err != nil {
		return err
	}
	launcher.ShowMessage(Deleted(seconds))
	return nil
}

// Selected returns the selected list index, or -1.
func (launcher *Window) Selected() widget.ListItemID {
	return launcher.selected
}

// Report shows err to the user. A nil error is ignored.
func (launcher *Window) Report(err error) {
	if err == nil {
		return
	}
	logger := logging.GetLogger("launcher")
	logger.Warn().Err(err).Str("code", string(apperrors.GetErrorCode(err))).Msg("operation failed")
	launcher.ShowMessage(MessageFor(err))
}

// ShowMessage displays a dialog on the launcher window.
func (launcher *Window) ShowMessage(message Message) {
	icon := theme.InfoIcon()
	switch message.Kind {
	case KindWarning:
		icon = theme.WarningIcon()
	case KindError:
		icon = theme.ErrorIcon()
	}
	content := container.NewHBox(widget.NewIcon(icon), widget.NewLabel(message.Text))
	dialog.NewCustom(message.Title, "OK", content, launcher.window).Show()
}

func (launcher *Window) start(seconds int) error {
	if launcher.callbacks.OnStart == nil {
		return nil
	}
	return launcher.callbacks.OnStart(seconds)
}

func (launcher *Window) timesChanged() {
	launcher.list.UnselectAll()
	launcher.selected = -1
	launcher.list.Refresh()
	if launcher.callbacks.OnTimesChanged != nil {
		launcher.callbacks.OnTimesChanged(launcher.times.Presets(), launcher.times.Items())
	}
}

func (launcher *Window) mainMenu() *fyne.MainMenu {
	settings := fyne.NewMenuItem("Settings...", func() {
		if launcher.callbacks.OnPreferences != nil {
			launcher.callbacks.OnPreferences()
		}
	})
	history := fyne.NewMenuItem("History...", launcher.showHistory)
	history.Disabled = launcher.options.History == nil
	about := fyne.NewMenuItem("About", launcher.showAbout)

	return fyne.NewMainMenu(
		fyne.NewMenu("Countdown", settings, history),
		fyne.NewMenu("Help", about),
	)
}

func (launcher *Window) showHistory() {
	if launcher.options.History == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	sessions, err := launcher.options.History.Recent(ctx, historyLimit)
	if err != nil {
		launcher.Report(err)
		return
	}
	launcher.ShowMessage(Message{Kind: KindInfo, Title: "Recent countdowns", Text: FormatHistory(sessions)})
}

func (launcher *Window) showAbout() {
	text := fmt.Sprintf("Countdown v%s", launcher.options.Version)
	if launcher.options.URL != "" {
		text += "\n" + launcher.options.URL
	}
	launcher.ShowMessage(Message{Kind: KindInfo, Title: "About", Text: text})
}

// FormatHistory renders sessions one per line, newest first.
func FormatHistory(sessions []storage.Session) string {
	if len(sessions) == 0 {
		return "No countdowns yet."
	}
	lines := make([]string, 0, len(sessions))
	for _, session := range sessions {
		lines = append(lines, fmt.Sprintf("%s  %ds  %s",
			session.EndedAt.Local().Format("2006-01-02 15:04"), session.Seconds, session.Outcome))
	}
	return strings.Join(lines, "\n")
}
