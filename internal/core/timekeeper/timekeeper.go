package timekeeper

import (
	"sync"
	"time"

	"countdown/internal/core/countdown"
	"countdown/internal/logging"
)

// TonePlayer emits a short audible tone.
type TonePlayer interface {
	PlayTone(frequency int, duration time.Duration) error
}

// Keeper schedules the transitions of one countdown. The countdown itself
// decides what to show and when to run next; Keeper only waits and relays.
type Keeper struct {
	mu        sync.Mutex
	countdown *countdown.Countdown
	frequency int
	toneFor   time.Duration
	player    TonePlayer
	events    []chan Event
	stopCh    chan struct{}
	running   bool
	stopped   bool
}

// Options configures the tone emitted on alert frames.
type Options struct {
	ToneFrequency int
	ToneDuration  time.Duration
}

// New creates a Keeper for the provided countdown.
func New(target *countdown.Countdown, options Options) *Keeper {
	return &Keeper{
		countdown: target,
		frequency: options.ToneFrequency,
		toneFor:   options.ToneDuration,
		stopCh:    make(chan struct{}),
	}
}

// SetTonePlayer injects the sound backend. A nil player keeps alerts silent.
func (keeper *Keeper) SetTonePlayer(player TonePlayer) {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	keeper.player = player
}

// Subscribe registers a new observer channel.
func (keeper *Keeper) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.stopped {
		close(ch)
		return ch
	}
	keeper.events = append(keeper.events, ch)
	return ch
}

// Start emits the entry frame and launches the scheduling loop.
func (keeper *Keeper) Start() {
	keeper.mu.Lock()
	if keeper.running || keeper.stopped {
		keeper.mu.Unlock()
		return
	}
	keeper.running = true
	frame := keeper.countdown.Frame()
	keeper.emitLocked(Event{Type: EventFrame, Frame: frame, At: time.Now()})
	keeper.mu.Unlock()

	go keeper.run(frame.Next)
}

// Stop closes the countdown, ends the loop and closes observers.
func (keeper *Keeper) Stop() {
	keeper.mu.Lock()
	if keeper.stopped {
		keeper.mu.Unlock()
		return
	}
	keeper.stopped = true
	keeper.running = false
	keeper.countdown.Close()
	close(keeper.stopCh)
	events := keeper.events
	keeper.events = nil
	keeper.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

// Expired reports whether the countdown reached zero.
func (keeper *Keeper) Expired() bool {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	return keeper.countdown.Expired()
}

// Advance performs a single transition and returns the delay before the next
// one. It returns false once nothing more should be scheduled.
func (keeper *Keeper) Advance() (time.Duration, bool) {
	keeper.mu.Lock()
	if keeper.stopped {
		keeper.mu.Unlock()
		return 0, false
	}
	wasRunning := keeper.countdown.State() == countdown.StateRunning
	frame, ok := keeper.countdown.OnTick()
	if !ok {
		keeper.mu.Unlock()
		return 0, false
	}

	now := time.Now()
	keeper.emitLocked(Event{Type: EventFrame, Frame: frame, At: now})
	if wasRunning && frame.State == countdown.StateAlerting {
		keeper.emitLocked(Event{Type: EventExpired, Frame: frame, At: now})
	}
	if frame.State == countdown.StateAlerting && frame.Next == 0 {
		keeper.emitLocked(Event{Type: EventFinished, Frame: frame, At: now})
	}
	player := keeper.player
	keeper.mu.Unlock()

	if frame.Tone && player != nil {
		keeper.playTone(player)
	}
	return frame.Next, frame.Next > 0
}

func (keeper *Keeper) run(delay time.Duration) {
	for delay > 0 {
		timer := time.NewTimer(delay)
		select {
		case <-keeper.stopCh:
			timer.Stop()
			return
		case <-timer.C:
		}

		next, ok := keeper.Advance()
		if !ok {
			return
		}
		delay = next
	}
}

func (keeper *Keeper) playTone(player TonePlayer) {
	if err := player.PlayTone(keeper.frequency, keeper.toneFor); err != nil {
		logger := logging.GetLogger("timekeeper")
		logger.Debug().Err(err).Msg("tone unavailable")
	}
}

func (keeper *Keeper) emitLocked(event Event) {
	for _, ch := range keeper.events {
		select {
		case ch <- event:
		default:
		}
	}
}
