package pomodoro

import "fmt"

// Stage is the position of the controller in the task/work/break cycle.
type Stage string

const (
	StageTaskInput Stage = "task_input"
	StageWorking   Stage = "working"
	StageOnBreak   Stage = "on_break"
)

// Phase is the WORK or BREAK segment of a Pomodoro cycle.
type Phase string

const (
	PhaseWork  Phase = "work"
	PhaseBreak Phase = "break"
)

// State is a snapshot of the controller.
type State struct {
	Stage     Stage
	Phase     Phase
	Remaining int // seconds
	Running   bool
	Cycles    int
	Task      string
	LongBreak bool
}

// Clock renders the remaining time as MM:SS.
func (state State) Clock() string {
	return FormatClock(state.Remaining)
}

// Status returns the line shown above the clock.
func (state State) Status() string {
	switch state.Stage {
	case StageWorking:
		return "Working on: " + state.Task
	case StageOnBreak:
		if state.LongBreak {
			return "Long Break Time!!!"
		}
		return "Break Time!!!"
	default:
		return ""
	}
}

// CanSkipWork reports whether the skip-work control applies.
func (state State) CanSkipWork() bool {
	return state.Stage == StageWorking
}

// CanSkipBreak reports whether the skip-break control applies.
func (state State) CanSkipBreak() bool {
	return state.Stage == StageOnBreak
}

// FormatClock renders seconds as zero-padded MM:SS.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
