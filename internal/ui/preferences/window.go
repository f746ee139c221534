package preferences

import (
	"fmt"
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Window handles the preferences UI.
type Window struct {
	window    fyne.Window
	settings  Settings
	onSave    func(Settings)
	work      *widget.Entry
	short     *widget.Entry
	long      *widget.Entry
	longEvery *widget.Entry
	autoStart *widget.Check
	volume    *widget.Slider
}

// New creates a preferences window.
func New(app fyne.App, settings Settings, onSave func(Settings)) *Window {
	window := app.NewWindow("Studio Settings")

	prefs := &Window{
		window:    window,
		settings:  settings,
		onSave:    onSave,
		work:      widget.NewEntry(),
		short:     widget.NewEntry(),
		long:      widget.NewEntry(),
		longEvery: widget.NewEntry(),
		autoStart: widget.NewCheck("Start next focus session automatically", nil),
		volume:    widget.NewSlider(0.05, 1),
	}
	prefs.volume.Step = 0.05
	prefs.UpdateSettings(settings)

	form := container.NewVBox(
		widget.NewLabelWithStyle("Pomodoro", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Focus length"), prefs.work, widget.NewLabel("min")),
		container.NewHBox(widget.NewLabel("Short break"), prefs.short, widget.NewLabel("min")),
		container.NewHBox(widget.NewLabel("Long break"), prefs.long, widget.NewLabel("min")),
		container.NewHBox(widget.NewLabel("Long break every"), prefs.longEvery, widget.NewLabel("sessions")),
		prefs.autoStart,
		widget.NewLabel("Music volume"),
		prefs.volume,
	)

	saveButton := widget.NewButton("Save", prefs.handleSave)
	cancelButton := widget.NewButton("Cancel", func() {
		window.Hide()
	})
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(380, 360))
	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.settings = settings
	prefs.work.SetText(fmt.Sprintf("%d", int(settings.WorkDuration.Minutes())))
	prefs.short.SetText(fmt.Sprintf("%d", int(settings.ShortBreak.Minutes())))
	prefs.long.SetText(fmt.Sprintf("%d", int(settings.LongBreak.Minutes())))
	prefs.longEvery.SetText(fmt.Sprintf("%d", settings.LongBreakEvery))
	prefs.autoStart.SetChecked(settings.AutoStartWork)
	prefs.volume.SetValue(settings.Volume)
}

func (prefs *Window) handleSave() {
	settings := prefs.settings

	if minutes, ok := parsePositiveInt(prefs.work.Text); ok {
		settings.WorkDuration = time.Duration(minutes) * time.Minute
	}
	if minutes, ok := parsePositiveInt(prefs.short.Text); ok {
		settings.ShortBreak = time.Duration(minutes) * time.Minute
	}
	if minutes, ok := parsePositiveInt(prefs.long.Text); ok {
		settings.LongBreak = time.Duration(minutes) * time.Minute
	}
	if every, ok := parsePositiveInt(prefs.longEvery.Text); ok {
		settings.LongBreakEvery = every
	}
	settings.AutoStartWork = prefs.autoStart.Checked
	settings.Volume = prefs.volume.Value

	prefs.settings = settings
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	prefs.window.Hide()
}

func parsePositiveInt(value string) (int, bool) {
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		return 0, false
	}
	return parsed, true
}
