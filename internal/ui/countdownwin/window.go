package countdownwin

import (
	"fmt"
	"image/color"
	"time"

	"countdown/internal/core/countdown"
	"countdown/internal/core/timekeeper"
	"countdown/internal/logging"
	"countdown/internal/ui/preferences"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"github.com/lucasb-eyer/go-colorful"
)

const (
	windowWidth   = float32(250)
	windowHeight  = float32(80)
	clockTextSize = float32(24)
	alertTextSize = float32(18)
	eventBuffer   = 16
)

var fallbackAlertColor = color.NRGBA{R: 255, G: 0, B: 0, A: 255}

// Result describes a countdown window once it has been closed.
type Result struct {
	Seconds   int
	StartedAt time.Time
	EndedAt   time.Time
	Expired   bool
}

// Window shows one running countdown and its alert.
type Window struct {
	window      fyne.Window
	keeper      *timekeeper.Keeper
	seconds     int
	startedAt   time.Time
	clock       *canvas.Text
	background  *canvas.Rectangle
	normalColor color.Color
	alertColor  color.Color
	onClosed    func(Result)

	// Only read and written on the UI goroutine.
	closed  bool
	alerted bool
}

// New creates a countdown window. It is not shown until Show is called.
func New(app fyne.App, seconds int, settings preferences.Settings, player timekeeper.TonePlayer, onClosed func(Result)) (*Window, error) {
	alert := settings.AlertConfig()
	target, err := countdown.New(seconds, alert)
	if err != nil {
		return nil, err
	}

	keeper := timekeeper.New(target, timekeeper.Options{
		ToneFrequency: alert.ToneFrequency,
		ToneDuration:  alert.ToneDuration,
	})
	if player != nil {
		keeper.SetTonePlayer(player)
	}

	window := app.NewWindow(fmt.Sprintf("%ds countdown", seconds))
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}

	normalColor := theme.Color(theme.ColorNameBackground)
	background := canvas.NewRectangle(normalColor)

	clock := canvas.NewText(countdown.Format(seconds), theme.Color(theme.ColorNameForeground))
	clock.Alignment = fyne.TextAlignCenter
	clock.TextStyle = fyne.TextStyle{Bold: true}
	clock.TextSize = clockTextSize

	window.SetContent(container.NewStack(background, container.NewCenter(clock)))
	window.Resize(fyne.NewSize(windowWidth, windowHeight))
	window.SetFixedSize(true)

	countdownWindow := &Window{
		window:      window,
		keeper:      keeper,
		seconds:     seconds,
		clock:       clock,
		background:  background,
		normalColor: normalColor,
		alertColor:  parseAlertColor(settings.AlertColor),
		onClosed:    onClosed,
	}
	window.SetCloseIntercept(countdownWindow.Close)
	return countdownWindow, nil
}

// Show opens the window and starts counting down.
func (countdownWindow *Window) Show() {
	countdownWindow.startedAt = time.Now()
	events := countdownWindow.keeper.Subscribe(eventBuffer)
	go countdownWindow.listen(events)

	countdownWindow.window.Show()
	countdownWindow.window.RequestFocus()
	countdownWindow.keeper.Start()
}

// Close stops the countdown and closes the window. Frames still queued on
// the UI goroutine are discarded.
func (countdownWindow *Window) Close() {
	if countdownWindow.closed {
		return
	}
	countdownWindow.closed = true
	countdownWindow.keeper.Stop()
	countdownWindow.window.Close()

	result := Result{
		Seconds:   countdownWindow.seconds,
		StartedAt: countdownWindow.startedAt,
		EndedAt:   time.Now(),
		Expired:   countdownWindow.keeper.Expired(),
	}
	logger := logging.GetLogger("countdownwin")
	logger.Debug().Int("seconds", result.Seconds).Bool("expired", result.Expired).Msg("countdown window closed")
	if countdownWindow.onClosed != nil {
		countdownWindow.onClosed(result)
	}
}

// Alerted reports whether the expiry alert has been shown.
func (countdownWindow *Window) Alerted() bool {
	return countdownWindow.alerted
}

// Text returns the currently displayed text.
func (countdownWindow *Window) Text() string {
	return countdownWindow.clock.Text
}

func (countdownWindow *Window) listen(events <-chan timekeeper.Event) {
	for event := range events {
		if event.Type != timekeeper.EventFrame {
			continue
		}
		frame := event.Frame
		fyne.Do(func() {
			countdownWindow.apply(frame)
		})
	}
}

func (countdownWindow *Window) apply(frame countdown.Frame) {
	if countdownWindow.closed {
		return
	}

	countdownWindow.clock.Text = frame.Text
	if frame.State == countdown.StateAlerting {
		countdownWindow.clock.TextSize = alertTextSize
		if !countdownWindow.alerted {
			countdownWindow.alerted = true
			// fyne cannot pin a window above others; raise it once on expiry.
			countdownWindow.window.Show()
			countdownWindow.window.RequestFocus()
		}
	}
	countdownWindow.clock.Refresh()

	fill := countdownWindow.normalColor
	if frame.Background == countdown.BackgroundAlert {
		fill = countdownWindow.alertColor
	}
	countdownWindow.background.FillColor = fill
	canvas.Refresh(countdownWindow.background)
}

func parseAlertColor(value string) color.Color {
	parsed, err := colorful.Hex(value)
	if err != nil {
		return fallbackAlertColor
	}
	r, g, b := parsed.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}
