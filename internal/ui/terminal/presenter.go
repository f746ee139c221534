package terminal

import (
	"portfolio/internal/core/pomodoro"

	tea "github.com/charmbracelet/bubbletea"
)

// Presenter forwards controller renders to the Bubble Tea event loop. It keeps
// only the latest state, so Render never blocks the controller.
type Presenter struct {
	updates chan pomodoro.State
}

// NewPresenter creates a presenter with an empty mailbox.
func NewPresenter() *Presenter {
	return &Presenter{updates: make(chan pomodoro.State, 1)}
}

// Render implements pomodoro.Presenter.
func (presenter *Presenter) Render(state pomodoro.State) {
	select {
	case presenter.updates <- state:
		return
	default:
	}
	select {
	case <-presenter.updates:
	default:
	}
	select {
	case presenter.updates <- state:
	default:
	}
}

// Wait returns a command that delivers the next rendered state.
func (presenter *Presenter) Wait() tea.Cmd {
	return func() tea.Msg {
		return stateMsg(<-presenter.updates)
	}
}
