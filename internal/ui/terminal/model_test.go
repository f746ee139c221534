package terminal

import (
	"strings"
	"testing"

	"portfolio/internal/core/model"
	"portfolio/internal/core/pomodoro"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func key(s string) tea.Msg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func newTestModel(t *testing.T) (Model, *pomodoro.Controller, *pomodoro.ManualScheduler, *Presenter) {
	t.Helper()
	scheduler := &pomodoro.ManualScheduler{}
	presenter := NewPresenter()
	controller := pomodoro.New(model.DefaultPomodoroConfig(), pomodoro.Options{
		Presenter: presenter,
		Scheduler: scheduler,
	})
	return NewModel(controller, presenter), controller, scheduler, presenter
}

func send(m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(Model)
	}
	return m, cmd
}

func typeText(m Model, text string) Model {
	for _, r := range text {
		m, _ = send(m, key(string(r)))
	}
	return m
}

func TestEmptyTaskShowsNotice(t *testing.T) {
	m, controller, _, _ := newTestModel(t)

	m, _ = send(m, key("enter"))

	assert.Equal(t, pomodoro.StageTaskInput, controller.State().Stage)
	assert.Contains(t, m.View(), "Please enter a task to work on!")
}

func TestSubmitTaskStartsTimer(t *testing.T) {
	m, controller, _, _ := newTestModel(t)

	m = typeText(m, "Write report")
	m, _ = send(m, key("enter"))

	assert.Equal(t, pomodoro.StageWorking, controller.State().Stage)
	view := m.View()
	assert.Contains(t, view, "Working on: Write report")
	assert.Contains(t, view, "25:00")
	assert.Contains(t, view, "s skip pomodoro")
	assert.NotContains(t, view, "Please enter")
}

func TestTimerKeys(t *testing.T) {
	m, controller, _, _ := newTestModel(t)
	m = typeText(m, "Write report")
	m, _ = send(m, key("enter"))

	m, _ = send(m, key(" "))
	assert.False(t, controller.State().Running)
	assert.Contains(t, m.View(), "paused")

	m, _ = send(m, key("p"))
	assert.True(t, controller.State().Running)

	m, _ = send(m, key("s"))
	assert.Equal(t, pomodoro.StageOnBreak, controller.State().Stage)
	assert.Contains(t, m.View(), "s skip break")
	assert.Contains(t, m.View(), "05:00")

	m, _ = send(m, key("s"))
	assert.Equal(t, pomodoro.StageWorking, controller.State().Stage)

	m, _ = send(m, key("r"))
	assert.Equal(t, pomodoro.StageTaskInput, controller.State().Stage)
	assert.Empty(t, m.input.Value())
}

func TestTicksArriveThroughPresenter(t *testing.T) {
	m, _, scheduler, presenter := newTestModel(t)
	m = typeText(m, "Write report")
	m, _ = send(m, key("enter"))

	scheduler.Fire(3)
	msg := presenter.Wait()()
	m, cmd := send(m, msg)

	assert.Contains(t, m.View(), "24:57")
	assert.NotNil(t, cmd, "the model keeps listening for renders")
}

func TestPresenterKeepsLatestState(t *testing.T) {
	presenter := NewPresenter()

	for remaining := 10; remaining > 5; remaining-- {
		presenter.Render(pomodoro.State{Remaining: remaining})
	}

	msg := presenter.Wait()()
	require.IsType(t, stateMsg{}, msg)
	assert.Equal(t, 6, pomodoro.State(msg.(stateMsg)).Remaining)
}

func TestQuitKeys(t *testing.T) {
	m, _, _, _ := newTestModel(t)
	_, cmd := send(m, key("ctrl+c"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())

	m = typeText(m, "Write report")
	m, _ = send(m, key("enter"))
	_, cmd = send(m, key("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestViewCentersWithWidth(t *testing.T) {
	m, _, _, _ := newTestModel(t)
	m, _ = send(m, tea.WindowSizeMsg{Width: 100, Height: 30})

	for _, line := range strings.Split(m.View(), "\n") {
		assert.LessOrEqual(t, len([]rune(line)), 200)
	}
	assert.Contains(t, m.View(), "Creative Pomodoro")
}
