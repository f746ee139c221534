package terminal

import (
	"errors"
	"strings"

	"portfolio/internal/core/pomodoro"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Controls are the controller operations the terminal UI drives.
type Controls interface {
	SubmitTask(label string) error
	Toggle() bool
	Reset()
	SkipWork() bool
	SkipBreak() bool
	State() pomodoro.State
}

type stateMsg pomodoro.State

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#e0533d"))
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffb347"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6f7a70"))
	clockStyle  = lipgloss.NewStyle().Bold(true).Padding(1, 4).Border(lipgloss.RoundedBorder())
	workAccent  = lipgloss.Color("#e0533d")
	breakAccent = lipgloss.Color("#3d8be0")
)

// Model is the Bubble Tea model of the Pomodoro screen.
type Model struct {
	controls  Controls
	presenter *Presenter
	input     textinput.Model
	state     pomodoro.State
	notice    string
	width     int
}

// NewModel creates a model showing the controller's current state.
func NewModel(controls Controls, presenter *Presenter) Model {
	input := textinput.New()
	input.Placeholder = "What are you working on?"
	input.CharLimit = 120
	input.Width = 40
	input.Focus()

	return Model{
		controls:  controls,
		presenter: presenter,
		input:     input,
		state:     controls.State(),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.presenter.Wait())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stateMsg:
		m.state = pomodoro.State(msg)
		return m, m.presenter.Wait()
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.state.Stage == pomodoro.StageTaskInput {
			return m.updateTaskInput(msg)
		}
		return m.updateTimer(msg)
	}
	return m, nil
}

func (m Model) updateTaskInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m, tea.Quit
	case "enter":
		err := m.controls.SubmitTask(m.input.Value())
		if errors.Is(err, pomodoro.ErrEmptyTask) {
			m.notice = "Please enter a task to work on!"
		} else {
			m.notice = ""
		}
		m.state = m.controls.State()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateTimer(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case " ", "p":
		m.controls.Toggle()
	case "s":
		if m.state.CanSkipBreak() {
			m.controls.SkipBreak()
		} else {
			m.controls.SkipWork()
		}
	case "r":
		m.controls.Reset()
		m.input.Reset()
	}
	m.state = m.controls.State()
	return m, nil
}

func (m Model) View() string {
	content := m.render()
	if m.width > 0 {
		return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, content)
	}
	return content
}

func (m Model) render() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Creative Pomodoro"))
	b.WriteString("\n\n")

	if m.state.Stage == pomodoro.StageTaskInput {
		b.WriteString(m.input.View())
		b.WriteString("\n")
		if m.notice != "" {
			b.WriteString(noticeStyle.Render(m.notice))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter start • esc quit"))
		return b.String()
	}

	accent := workAccent
	if m.state.Phase == pomodoro.PhaseBreak {
		accent = breakAccent
	}
	b.WriteString(m.state.Status())
	b.WriteString("\n")
	b.WriteString(clockStyle.BorderForeground(accent).Foreground(accent).Render(m.state.Clock()))
	b.WriteString("\n")
	if !m.state.Running {
		b.WriteString(noticeStyle.Render("paused"))
		b.WriteString("\n")
	}

	skip := "s skip pomodoro"
	if m.state.CanSkipBreak() {
		skip = "s skip break"
	}
	toggle := "space pause"
	if !m.state.Running {
		toggle = "space start"
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(strings.Join([]string{toggle, skip, "r reset", "q quit"}, " • ")))
	return b.String()
}
