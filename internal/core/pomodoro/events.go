package pomodoro

import "time"

// EventType defines the type of controller event.
type EventType string

const (
	EventStageChange EventType = "stage_change"
	EventTick        EventType = "tick"
	EventPause       EventType = "pause"
	EventResume      EventType = "resume"
	EventReset       EventType = "reset"
)

// Event represents a controller update for asynchronous observers.
type Event struct {
	Type  EventType
	State State
	At    time.Time
}
