package tray

import (
	"fmt"

	"portfolio/internal/core/pomodoro"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShow        func()
	OnPreferences func()
	OnTogglePause func()
	OnSkipWork    func()
	OnSkipBreak   func()
	OnReset       func()
	OnQuit        func()
}

// Manager mirrors the Pomodoro state in the system tray menu.
type Manager struct {
	app        desktop.App
	callbacks  Callbacks
	statusItem *fyne.MenuItem
	pauseItem  *fyne.MenuItem
	skipItem   *fyne.MenuItem
	resetItem  *fyne.MenuItem
	state      pomodoro.State
}

// New creates a tray manager with the provided callbacks. app may be nil when
// the platform has no tray; the manager then only tracks state.
func New(app desktop.App, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		callbacks: callbacks,
	}

	manager.statusItem = fyne.NewMenuItem("Status: pick a task", nil)
	manager.statusItem.Disabled = true
	manager.pauseItem = fyne.NewMenuItem("Pause", func() {
		call(manager.callbacks.OnTogglePause)
	})
	manager.skipItem = fyne.NewMenuItem("Skip", func() {
		if manager.state.CanSkipBreak() {
			call(manager.callbacks.OnSkipBreak)
			return
		}
		call(manager.callbacks.OnSkipWork)
	})
	manager.resetItem = fyne.NewMenuItem("Reset", func() {
		call(manager.callbacks.OnReset)
	})

	manager.SetState(pomodoro.State{Stage: pomodoro.StageTaskInput})
	return manager
}

// SetState updates menu labels and enabled items from a controller snapshot.
func (manager *Manager) SetState(state pomodoro.State) {
	manager.state = state
	manager.statusItem.Label = "Status: " + statusLine(state)

	manager.pauseItem.Disabled = state.Stage == pomodoro.StageTaskInput
	if state.Running {
		manager.pauseItem.Label = "Pause"
	} else {
		manager.pauseItem.Label = "Resume"
	}

	switch {
	case state.CanSkipWork():
		manager.skipItem.Label = "Skip Pomodoro"
		manager.skipItem.Disabled = false
	case state.CanSkipBreak():
		manager.skipItem.Label = "Skip Break"
		manager.skipItem.Disabled = false
	default:
		manager.skipItem.Label = "Skip"
		manager.skipItem.Disabled = true
	}
	manager.resetItem.Disabled = state.Stage == pomodoro.StageTaskInput

	manager.refreshMenu()
}

func (manager *Manager) menu() *fyne.Menu {
	return fyne.NewMenu("Studio",
		manager.statusItem,
		fyne.NewMenuItem("Show", func() {
			call(manager.callbacks.OnShow)
		}),
		fyne.NewMenuItem("Preferences", func() {
			call(manager.callbacks.OnPreferences)
		}),
		fyne.NewMenuItemSeparator(),
		manager.pauseItem,
		manager.skipItem,
		manager.resetItem,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			call(manager.callbacks.OnQuit)
		}),
	)
}

func (manager *Manager) refreshMenu() {
	if manager.app != nil {
		manager.app.SetSystemTrayMenu(manager.menu())
	}
}

func statusLine(state pomodoro.State) string {
	var line string
	switch state.Stage {
	case pomodoro.StageWorking:
		line = fmt.Sprintf("focus %s (%s)", state.Clock(), state.Task)
	case pomodoro.StageOnBreak:
		kind := "break"
		if state.LongBreak {
			kind = "long break"
		}
		line = fmt.Sprintf("%s %s", kind, state.Clock())
	default:
		return "pick a task"
	}
	if !state.Running {
		line += " (paused)"
	}
	return line
}

func call(fn func()) {
	if fn != nil {
		fn()
	}
}
