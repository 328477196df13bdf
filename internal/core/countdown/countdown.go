package countdown

import (
	"time"

	"countdown/internal/core/model"
	apperrors "countdown/internal/errors"
)

// State represents the phase of a countdown.
type State string

const (
	StateRunning  State = "running"
	StateAlerting State = "alerting"
	StateClosed   State = "closed"
)

// Background selects which colour the window should paint.
type Background int

const (
	BackgroundNormal Background = iota
	BackgroundAlert
)

// Frame is what the window should show after a transition. Next is the delay
// before the following transition; zero means nothing more is scheduled.
type Frame struct {
	State      State
	Text       string
	Background Background
	Tone       bool
	Next       time.Duration
}

// Countdown is the state machine behind a single countdown window. It does not
// schedule anything itself: the caller invokes OnTick after Frame.Next.
type Countdown struct {
	config    model.AlertConfig
	initial   int
	remaining int
	state     State
	step      int
	expired   bool
}

// New creates a running countdown of the given number of seconds.
func New(seconds int, config model.AlertConfig) (*Countdown, error) {
	if seconds <= 0 {
		return nil, apperrors.Newf(apperrors.ErrInvalidValue, "countdown must be a positive number of seconds, got %d", seconds).
			WithDetail("seconds", seconds)
	}
	return &Countdown{
		config:    config.WithDefaults(),
		initial:   seconds,
		remaining: seconds,
		state:     StateRunning,
	}, nil
}

// Initial returns the duration the countdown was created with.
func (countdown *Countdown) Initial() int {
	return countdown.initial
}

// Remaining returns the seconds left on the clock.
func (countdown *Countdown) Remaining() int {
	return countdown.remaining
}

// State returns the current phase.
func (countdown *Countdown) State() State {
	return countdown.state
}

// Expired reports whether the clock reached zero at some point.
func (countdown *Countdown) Expired() bool {
	return countdown.expired
}

// Frame returns the entry frame shown when the window opens.
func (countdown *Countdown) Frame() Frame {
	return Frame{
		State:      countdown.state,
		Text:       Format(countdown.remaining),
		Background: BackgroundNormal,
		Next:       countdown.config.TickInterval,
	}
}

// OnTick performs one transition. It returns false when there is nothing to
// apply, either because the countdown was closed or the alert loop finished.
func (countdown *Countdown) OnTick() (Frame, bool) {
	switch countdown.state {
	case StateRunning:
		if countdown.remaining > 0 {
			countdown.remaining--
			return Frame{
				State:      StateRunning,
				Text:       Format(countdown.remaining),
				Background: BackgroundNormal,
				Next:       countdown.config.TickInterval,
			}, true
		}
		countdown.state = StateAlerting
		countdown.expired = true
		return countdown.alertStep(), true
	case StateAlerting:
		if countdown.step >= countdown.config.FlashSteps {
			return Frame{}, false
		}
		return countdown.alertStep(), true
	default:
		return Frame{}, false
	}
}

// Close ends the countdown from any state.
func (countdown *Countdown) Close() {
	countdown.state = StateClosed
}

func (countdown *Countdown) alertStep() Frame {
	step := countdown.step
	countdown.step++

	frame := Frame{
		State:      StateAlerting,
		Text:       ExpiredMessage(countdown.initial),
		Background: BackgroundNormal,
		Tone:       step < countdown.config.ToneSteps,
		Next:       countdown.config.FlashInterval,
	}
	if step%2 == 0 {
		frame.Background = BackgroundAlert
	}
	if countdown.step >= countdown.config.FlashSteps {
		frame.Next = 0
	}
	return frame
}
