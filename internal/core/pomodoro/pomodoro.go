package pomodoro

import (
	"errors"
	"strings"
	"sync"
	"time"

	"portfolio/internal/core/model"

	"go.uber.org/zap"
)

var (
	// ErrEmptyTask indicates a blank task label was submitted.
	ErrEmptyTask = errors.New("please enter a task to work on")
	// ErrTaskActive indicates a task was submitted outside the task input stage.
	ErrTaskActive = errors.New("a task is already in progress")
)

// Presenter renders controller state. Render is called with the controller
// lock held and must not call back into the controller synchronously.
type Presenter interface {
	Render(State)
}

// PresenterFunc adapts a function to Presenter.
type PresenterFunc func(State)

// Render calls fn(state).
func (fn PresenterFunc) Render(state State) {
	fn(state)
}

// Media is a background playback handle driven during WORK phases.
type Media interface {
	Play() error
	Pause()
	Stop()
}

// Options wires the controller to its surroundings. Nil fields get inert defaults.
type Options struct {
	Presenter Presenter
	Video     Media
	Audio     Media
	Scheduler Scheduler
	Logger    *zap.Logger
}

// Controller is the Pomodoro state machine.
type Controller struct {
	mu         sync.Mutex
	config     model.PomodoroConfig
	options    Options
	state      State
	generation uint64
	events     []chan Event
}

// New creates a controller in the task input stage.
func New(config model.PomodoroConfig, options Options) *Controller {
	if options.Presenter == nil {
		options.Presenter = PresenterFunc(func(State) {})
	}
	if options.Video == nil {
		options.Video = noMedia{}
	}
	if options.Audio == nil {
		options.Audio = noMedia{}
	}
	if options.Scheduler == nil {
		options.Scheduler = NewTickerScheduler(time.Second)
	}
	if options.Logger == nil {
		options.Logger = zap.NewNop()
	}

	controller := &Controller{
		config:  normalizeConfig(config),
		options: options,
	}
	controller.resetStateLocked()
	return controller
}

// State returns a snapshot of the current state.
func (controller *Controller) State() State {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	return controller.state
}

// Refresh renders the current state without changing it.
func (controller *Controller) Refresh() {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	controller.options.Presenter.Render(controller.state)
}

// UpdateConfig replaces phase lengths. The running phase keeps its remaining time.
func (controller *Controller) UpdateConfig(config model.PomodoroConfig) {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	controller.config = normalizeConfig(config)
	if controller.state.Stage == StageTaskInput {
		controller.state.Remaining = seconds(controller.config.Work)
		controller.options.Presenter.Render(controller.state)
	}
}

// Subscribe registers a new observer channel.
func (controller *Controller) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	controller.mu.Lock()
	controller.events = append(controller.events, ch)
	controller.mu.Unlock()
	return ch
}

// Close stops the interval, halts media and closes observers.
func (controller *Controller) Close() {
	controller.mu.Lock()
	controller.haltLocked()
	controller.stopMediaLocked()
	events := controller.events
	controller.events = nil
	controller.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

// SubmitTask leaves the task input stage and starts the first work session.
func (controller *Controller) SubmitTask(label string) error {
	task := strings.TrimSpace(label)
	if task == "" {
		return ErrEmptyTask
	}

	controller.mu.Lock()
	defer controller.mu.Unlock()
	if controller.state.Stage != StageTaskInput {
		return ErrTaskActive
	}

	controller.state.Task = task
	controller.enterWorkLocked()
	controller.startLocked()
	controller.publishLocked(EventStageChange)
	return nil
}

// Pause freezes the countdown and background media. It reports whether anything changed.
func (controller *Controller) Pause() bool {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	if !controller.state.Running {
		return false
	}
	controller.pauseLocked()
	controller.publishLocked(EventPause)
	return true
}

// Resume continues the countdown of the current phase.
func (controller *Controller) Resume() bool {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	if controller.state.Running || controller.state.Stage == StageTaskInput {
		return false
	}
	controller.startLocked()
	controller.publishLocked(EventResume)
	return true
}

// Toggle pauses a running countdown or resumes a paused one.
func (controller *Controller) Toggle() bool {
	if controller.State().Running {
		return controller.Pause()
	}
	return controller.Resume()
}

// SkipWork ends the work session immediately. No-op outside WORKING.
func (controller *Controller) SkipWork() bool {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	if controller.state.Stage != StageWorking {
		return false
	}
	controller.pauseLocked()
	controller.stopMediaLocked()
	controller.state.Cycles++
	controller.enterBreakLocked()
	controller.startLocked()
	controller.publishLocked(EventStageChange)
	return true
}

// SkipBreak ends the break immediately. No-op outside ON_BREAK.
func (controller *Controller) SkipBreak() bool {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	if controller.state.Stage != StageOnBreak {
		return false
	}
	controller.pauseLocked()
	controller.stopMediaLocked()
	controller.enterWorkLocked()
	if controller.config.AutoStartWork {
		controller.startLocked()
	}
	controller.publishLocked(EventStageChange)
	return true
}

// Reset stops everything and returns to the task input stage.
func (controller *Controller) Reset() {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	controller.haltLocked()
	controller.stopMediaLocked()
	controller.resetStateLocked()
	controller.publishLocked(EventReset)
}

// Tick advances a running countdown by one second.
func (controller *Controller) Tick() {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	controller.tickLocked()
}

func (controller *Controller) scheduledTick(generation uint64) {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	if generation != controller.generation {
		return
	}
	controller.tickLocked()
}

func (controller *Controller) tickLocked() {
	if !controller.state.Running || controller.state.Remaining <= 0 {
		return
	}

	controller.state.Remaining--
	if controller.state.Remaining > 0 {
		controller.publishLocked(EventTick)
		return
	}

	controller.options.Presenter.Render(controller.state)
	controller.haltLocked()

	switch controller.state.Stage {
	case StageWorking:
		controller.stopMediaLocked()
		controller.state.Cycles++
		controller.enterBreakLocked()
		controller.startLocked()
	case StageOnBreak:
		controller.enterWorkLocked()
		if controller.config.AutoStartWork {
			controller.startLocked()
		}
	}
	controller.publishLocked(EventStageChange)
}

func (controller *Controller) enterWorkLocked() {
	controller.state.Stage = StageWorking
	controller.state.Phase = PhaseWork
	controller.state.LongBreak = false
	controller.state.Remaining = seconds(controller.config.Work)
}

func (controller *Controller) enterBreakLocked() {
	long := controller.state.Cycles%controller.config.LongBreakEvery == 0
	controller.state.Stage = StageOnBreak
	controller.state.Phase = PhaseBreak
	controller.state.LongBreak = long
	if long {
		controller.state.Remaining = seconds(controller.config.LongBreak)
	} else {
		controller.state.Remaining = seconds(controller.config.ShortBreak)
	}
}

func (controller *Controller) resetStateLocked() {
	controller.state = State{
		Stage:     StageTaskInput,
		Phase:     PhaseWork,
		Remaining: seconds(controller.config.Work),
	}
}

func (controller *Controller) startLocked() {
	if controller.state.Running || controller.state.Stage == StageTaskInput {
		return
	}
	controller.state.Running = true
	if controller.state.Phase == PhaseWork {
		controller.playLocked()
	}

	controller.generation++
	generation := controller.generation
	controller.options.Scheduler.Start(func() {
		controller.scheduledTick(generation)
	})
}

func (controller *Controller) pauseLocked() {
	controller.haltLocked()
	if controller.state.Phase == PhaseWork {
		controller.options.Video.Pause()
		controller.options.Audio.Pause()
	}
}

func (controller *Controller) haltLocked() {
	controller.state.Running = false
	controller.generation++
	controller.options.Scheduler.Stop()
}

func (controller *Controller) playLocked() {
	if err := controller.options.Video.Play(); err != nil {
		controller.options.Logger.Warn("video playback failed", zap.Error(err))
	}
	if err := controller.options.Audio.Play(); err != nil {
		controller.options.Logger.Warn("audio playback failed", zap.Error(err))
	}
}

func (controller *Controller) stopMediaLocked() {
	controller.options.Video.Stop()
	controller.options.Audio.Stop()
}

func (controller *Controller) publishLocked(eventType EventType) {
	controller.options.Presenter.Render(controller.state)

	event := Event{Type: eventType, State: controller.state, At: time.Now()}
	for _, ch := range controller.events {
		select {
		case ch <- event:
		default:
		}
	}
}

func normalizeConfig(config model.PomodoroConfig) model.PomodoroConfig {
	defaults := model.DefaultPomodoroConfig()
	if config.Work < time.Second {
		config.Work = defaults.Work
	}
	if config.ShortBreak < time.Second {
		config.ShortBreak = defaults.ShortBreak
	}
	if config.LongBreak < time.Second {
		config.LongBreak = defaults.LongBreak
	}
	if config.LongBreakEvery <= 0 {
		config.LongBreakEvery = defaults.LongBreakEvery
	}
	return config
}

func seconds(duration time.Duration) int {
	return int(duration / time.Second)
}

type noMedia struct{}

func (noMedia) Play() error { return nil }
func (noMedia) Pause()      {}
func (noMedia) Stop()       {}
