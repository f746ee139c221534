package creative

import (
	"testing"

	"portfolio/internal/core/model"
	"portfolio/internal/core/pomodoro"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	screen     *Screen
	controller *pomodoro.Controller
	scheduler  *pomodoro.ManualScheduler
	warnings   []string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	app := test.NewTempApp(t)
	window := app.NewWindow("test")
	t.Cleanup(window.Close)

	f := &fixture{scheduler: &pomodoro.ManualScheduler{}}
	f.screen = NewScreen(window, nil)
	f.screen.dispatch = func(fn func()) { fn() }
	f.screen.warn = func(message string) { f.warnings = append(f.warnings, message) }
	f.controller = pomodoro.New(model.DefaultPomodoroConfig(), pomodoro.Options{
		Presenter: f.screen,
		Scheduler: f.scheduler,
	})
	f.screen.Bind(f.controller)
	f.controller.Refresh()
	window.SetContent(f.screen.CanvasObject())
	return f
}

func TestInitialScreenAsksForTask(t *testing.T) {
	f := newFixture(t)

	assert.True(t, f.screen.taskScreen.Visible())
	assert.False(t, f.screen.timerScreen.Visible())
	assert.Equal(t, "25:00", f.screen.clock.Text)
	assert.True(t, f.screen.clock.TextStyle.Monospace)
	assert.False(t, f.screen.clock.TextStyle.Bold, "the test theme has no bold monospace face")
}

func TestEmptyTaskWarns(t *testing.T) {
	f := newFixture(t)

	test.Type(f.screen.taskEntry, "   ")
	test.Tap(f.screen.taskButton)

	require.Len(t, f.warnings, 1)
	assert.Equal(t, "Please enter a task to work on!", f.warnings[0])
	assert.True(t, f.screen.taskScreen.Visible())
	assert.Equal(t, pomodoro.StageTaskInput, f.controller.State().Stage)
}

func TestSubmitShowsRunningTimer(t *testing.T) {
	f := newFixture(t)

	test.Type(f.screen.taskEntry, "Write report")
	test.Tap(f.screen.taskButton)

	assert.Empty(t, f.warnings)
	assert.False(t, f.screen.taskScreen.Visible())
	assert.True(t, f.screen.timerScreen.Visible())
	assert.Equal(t, "Working on: Write report", f.screen.status.Text)
	assert.Equal(t, "Pause", f.screen.startPause.Text)
	assert.True(t, f.screen.skipWork.Visible())
	assert.False(t, f.screen.skipBreak.Visible())
	assert.Equal(t, workColor, f.screen.phaseTint.FillColor)

	f.scheduler.Fire(61)
	assert.Equal(t, "23:59", f.screen.clock.Text)
}

func TestButtonsFollowPhase(t *testing.T) {
	f := newFixture(t)
	test.Type(f.screen.taskEntry, "Write report")
	test.Tap(f.screen.taskButton)

	test.Tap(f.screen.startPause)
	assert.Equal(t, "Start", f.screen.startPause.Text)
	test.Tap(f.screen.startPause)
	assert.Equal(t, "Pause", f.screen.startPause.Text)

	test.Tap(f.screen.skipWork)
	assert.Equal(t, "Break Time!!!", f.screen.status.Text)
	assert.Equal(t, "05:00", f.screen.clock.Text)
	assert.False(t, f.screen.skipWork.Visible())
	assert.True(t, f.screen.skipBreak.Visible())
	assert.Equal(t, breakColor, f.screen.phaseTint.FillColor)

	test.Tap(f.screen.skipBreak)
	assert.Equal(t, "Working on: Write report", f.screen.status.Text)
	assert.Equal(t, "Start", f.screen.startPause.Text)
	assert.True(t, f.screen.skipWork.Visible())
}

func TestResetReturnsToTaskInput(t *testing.T) {
	f := newFixture(t)
	test.Type(f.screen.taskEntry, "Write report")
	test.Tap(f.screen.taskButton)
	f.scheduler.Fire(30)

	test.Tap(f.screen.reset)

	assert.True(t, f.screen.taskScreen.Visible())
	assert.False(t, f.screen.timerScreen.Visible())
	assert.Empty(t, f.screen.taskEntry.Text)
	assert.Equal(t, "25:00", f.screen.clock.Text)
	assert.Equal(t, idleColor, f.screen.phaseTint.FillColor)
}

func TestResetOutsideScreenClearsTask(t *testing.T) {
	f := newFixture(t)
	test.Type(f.screen.taskEntry, "Write report")
	test.Tap(f.screen.taskButton)
	f.scheduler.Fire(5)

	f.controller.Reset()

	assert.Empty(t, f.controller.State().Task)
	assert.True(t, f.screen.taskScreen.Visible())
	assert.Empty(t, f.screen.taskEntry.Text)
}

func TestTypingWhileWaitingKeepsText(t *testing.T) {
	f := newFixture(t)
	test.Type(f.screen.taskEntry, "Draft")

	f.controller.Refresh()

	assert.Equal(t, "Draft", f.screen.taskEntry.Text)
}
