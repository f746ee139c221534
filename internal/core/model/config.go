package model

import "time"

// PomodoroConfig defines phase lengths for the Pomodoro controller.
type PomodoroConfig struct {
	Work       time.Duration
	ShortBreak time.Duration
	LongBreak  time.Duration
	// LongBreakEvery is the number of completed work cycles between long breaks.
	LongBreakEvery int
	// AutoStartWork starts the next work session as soon as a break ends.
	AutoStartWork bool
}

// DefaultPomodoroConfig returns 25/5/20 minutes with a long break every 4th cycle.
func DefaultPomodoroConfig() PomodoroConfig {
	return PomodoroConfig{
		Work:           25 * time.Minute,
		ShortBreak:     5 * time.Minute,
		LongBreak:      20 * time.Minute,
		LongBreakEvery: 4,
	}
}

// MediaConfig contains background music and video settings.
type MediaConfig struct {
	Tracks          []string
	Volume          float64
	FramesDir       string
	FramesPerSecond int
}

// AboutRegion is a hoverable region on the about page.
type AboutRegion struct {
	ID          string
	Title       string
	Description string
}
