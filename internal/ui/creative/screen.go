package creative

import (
	"errors"
	"image/color"

	"portfolio/internal/core/pomodoro"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Controls are the controller operations bound to the screen's buttons.
type Controls interface {
	SubmitTask(label string) error
	Toggle() bool
	Reset()
	SkipWork() bool
	SkipBreak() bool
}

var (
	workColor  = color.NRGBA{R: 224, G: 83, B: 61, A: 70}
	breakColor = color.NRGBA{R: 61, G: 139, B: 224, A: 70}
	idleColor  = color.NRGBA{}
)

// Screen is the Pomodoro tab. It implements pomodoro.Presenter.
type Screen struct {
	controls Controls
	dispatch func(func())
	warn     func(message string)

	taskEntry   *widget.Entry
	taskButton  *widget.Button
	taskScreen  *fyne.Container
	timerScreen *fyne.Container

	clock      *canvas.Text
	status     *widget.Label
	startPause *widget.Button
	reset      *widget.Button
	skipWork   *widget.Button
	skipBreak  *widget.Button
	phaseTint  *canvas.Rectangle

	stage   pomodoro.Stage
	content fyne.CanvasObject
}

// NewScreen builds the Pomodoro tab. backdrop is drawn behind the timer and may be nil.
func NewScreen(window fyne.Window, backdrop fyne.CanvasObject) *Screen {
	screen := &Screen{
		stage:    pomodoro.StageTaskInput,
		dispatch: fyne.Do,
		warn: func(message string) {
			dialog.ShowInformation("Pomodoro", message, window)
		},
	}

	screen.taskEntry = widget.NewEntry()
	screen.taskEntry.SetPlaceHolder("What are you working on?")
	screen.taskEntry.OnSubmitted = func(string) { screen.submitTask() }
	screen.taskButton = widget.NewButtonWithIcon("Start Pomodoro", theme.MediaPlayIcon(), screen.submitTask)
	screen.taskButton.Importance = widget.HighImportance
	screen.taskScreen = container.NewVBox(
		layout.NewSpacer(),
		widget.NewLabelWithStyle("Pick one task for this session", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		screen.taskEntry,
		screen.taskButton,
		layout.NewSpacer(),
	)

	screen.clock = canvas.NewText(pomodoro.FormatClock(0), theme.Color(theme.ColorNameForeground))
	screen.clock.TextSize = 64
	screen.clock.TextStyle = fyne.TextStyle{Monospace: true}
	screen.clock.Alignment = fyne.TextAlignCenter

	screen.status = widget.NewLabel("")
	screen.status.Alignment = fyne.TextAlignCenter

	screen.startPause = widget.NewButtonWithIcon("Start", theme.MediaPlayIcon(), screen.toggle)
	screen.reset = widget.NewButtonWithIcon("Reset", theme.MediaReplayIcon(), screen.resetTimer)
	screen.skipWork = widget.NewButtonWithIcon("Skip Pomodoro", theme.MediaSkipNextIcon(), screen.skip(func(controls Controls) bool {
		return controls.SkipWork()
	}))
	screen.skipBreak = widget.NewButtonWithIcon("Skip Break", theme.MediaSkipNextIcon(), screen.skip(func(controls Controls) bool {
		return controls.SkipBreak()
	}))

	screen.timerScreen = container.NewVBox(
		layout.NewSpacer(),
		screen.status,
		screen.clock,
		container.NewHBox(layout.NewSpacer(), screen.startPause, screen.reset, layout.NewSpacer()),
		container.NewHBox(layout.NewSpacer(), screen.skipWork, screen.skipBreak, layout.NewSpacer()),
		layout.NewSpacer(),
	)
	screen.timerScreen.Hide()

	screen.phaseTint = canvas.NewRectangle(idleColor)
	layers := []fyne.CanvasObject{screen.phaseTint}
	if backdrop != nil {
		layers = append(layers, backdrop)
	}
	layers = append(layers, container.NewPadded(container.NewStack(screen.taskScreen, screen.timerScreen)))
	screen.content = container.NewStack(layers...)
	return screen
}

// Bind attaches the controller operations.
func (screen *Screen) Bind(controls Controls) {
	screen.controls = controls
}

// CanvasObject returns the tab content.
func (screen *Screen) CanvasObject() fyne.CanvasObject {
	return screen.content
}

// Render implements pomodoro.Presenter.
func (screen *Screen) Render(state pomodoro.State) {
	screen.dispatch(func() {
		screen.apply(state)
	})
}

func (screen *Screen) apply(state pomodoro.State) {
	screen.clock.Text = state.Clock()
	screen.clock.Refresh()
	screen.status.SetText(state.Status())

	previous := screen.stage
	screen.stage = state.Stage
	if state.Stage == pomodoro.StageTaskInput {
		if previous != pomodoro.StageTaskInput {
			screen.taskEntry.SetText("")
		}
		screen.taskScreen.Show()
		screen.timerScreen.Hide()
		screen.phaseTint.FillColor = idleColor
		screen.phaseTint.Refresh()
		return
	}
	screen.taskScreen.Hide()
	screen.timerScreen.Show()

	if state.Running {
		screen.startPause.SetText("Pause")
		screen.startPause.SetIcon(theme.MediaPauseIcon())
	} else {
		screen.startPause.SetText("Start")
		screen.startPause.SetIcon(theme.MediaPlayIcon())
	}

	showIf(screen.skipWork, state.CanSkipWork())
	showIf(screen.skipBreak, state.CanSkipBreak())

	if state.Phase == pomodoro.PhaseBreak {
		screen.phaseTint.FillColor = breakColor
	} else {
		screen.phaseTint.FillColor = workColor
	}
	screen.phaseTint.Refresh()
}

func (screen *Screen) submitTask() {
	if screen.controls == nil {
		return
	}
	err := screen.controls.SubmitTask(screen.taskEntry.Text)
	if errors.Is(err, pomodoro.ErrEmptyTask) {
		screen.warn("Please enter a task to work on!")
	}
}

func (screen *Screen) toggle() {
	if screen.controls != nil {
		screen.controls.Toggle()
	}
}

func (screen *Screen) resetTimer() {
	if screen.controls != nil {
		screen.controls.Reset()
	}
}

func (screen *Screen) skip(action func(Controls) bool) func() {
	return func() {
		if screen.controls != nil {
			action(screen.controls)
		}
	}
}

func showIf(object fyne.CanvasObject, visible bool) {
	if visible {
		object.Show()
		return
	}
	object.Hide()
}
