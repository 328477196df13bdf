package timekeeper

import (
	"time"

	"countdown/internal/core/countdown"
)

// EventType defines the type of Keeper event.
type EventType string

const (
	EventFrame    EventType = "frame"
	EventExpired  EventType = "expired"
	EventFinished EventType = "finished"
)

// Event represents a Keeper update for observers.
type Event struct {
	Type  EventType
	Frame countdown.Frame
	At    time.Time
}
