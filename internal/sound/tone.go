package sound

import (
	"math"
	"sync"
	"time"

	apperrors "countdown/internal/errors"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

const (
	defaultSampleRate = beep.SampleRate(44100)
	amplitude         = 0.4
)

// Player emits short sine tones through the system speaker. The speaker is
// initialised lazily on the first tone; if that fails every later call
// reports the same error without retrying.
type Player struct {
	sampleRate beep.SampleRate

	once    sync.Once
	initErr error

	initSpeaker func(sampleRate beep.SampleRate, bufferSize int) error
	play        func(streamers ...beep.Streamer)
}

// NewPlayer returns a player using the default speaker.
func NewPlayer() *Player {
	return &Player{
		sampleRate:  defaultSampleRate,
		initSpeaker: speaker.Init,
		play:        speaker.Play,
	}
}

// PlayTone queues a tone and returns without waiting for it to finish.
func (player *Player) PlayTone(frequency int, duration time.Duration) error {
	if frequency <= 0 || duration <= 0 {
		return apperrors.Newf(apperrors.ErrToneUnavailable, "invalid tone %dHz for %s", frequency, duration)
	}

	player.once.Do(func() {
		player.initErr = player.initSpeaker(player.sampleRate, player.sampleRate.N(time.Second/10))
	})
	if player.initErr != nil {
		return apperrors.Wrap(player.initErr, apperrors.ErrToneUnavailable, "initialise speaker")
	}

	player.play(beep.Take(player.sampleRate.N(duration), Sine(player.sampleRate, frequency)))
	return nil
}

// Sine returns an endless sine wave streamer.
func Sine(sampleRate beep.SampleRate, frequency int) beep.Streamer {
	step := 2 * math.Pi * float64(frequency) / float64(sampleRate)
	phase := 0.0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			value := amplitude * math.Sin(phase)
			samples[i][0] = value
			samples[i][1] = value
			phase += step
			if phase >= 2*math.Pi {
				phase -= 2 * math.Pi
			}
		}
		return len(samples), true
	})
}
