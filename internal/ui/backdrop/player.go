package backdrop

import (
	"context"
	"errors"
	"sync"
	"time"

	"fyne.io/fyne/v2"
)

// ErrNoFrames indicates the backdrop has nothing to play.
var ErrNoFrames = errors.New("no backdrop frames loaded")

// DefaultFramesPerSecond is used when no frame rate is configured.
const DefaultFramesPerSecond = 12

// Player loops a frame sequence through a show callback.
type Player struct {
	mu         sync.Mutex
	frames     []fyne.Resource
	interval   time.Duration
	index      int
	cancel     context.CancelFunc
	show       func(fyne.Resource)
	setVisible func(bool)
}

// NewPlayer creates a stopped player.
func NewPlayer(frames []fyne.Resource, framesPerSecond int, show func(fyne.Resource), setVisible func(bool)) *Player {
	if framesPerSecond <= 0 {
		framesPerSecond = DefaultFramesPerSecond
	}
	if show == nil {
		show = func(fyne.Resource) {}
	}
	if setVisible == nil {
		setVisible = func(bool) {}
	}
	return &Player{
		frames:     frames,
		interval:   time.Second / time.Duration(framesPerSecond),
		show:       show,
		setVisible: setVisible,
	}
}

// Play shows the backdrop and continues from the current frame.
func (player *Player) Play() error {
	player.mu.Lock()
	defer player.mu.Unlock()
	if len(player.frames) == 0 {
		return ErrNoFrames
	}
	if player.cancel != nil {
		return nil
	}

	player.setVisible(true)
	player.show(player.frames[player.index])

	ctx, cancel := context.WithCancel(context.Background())
	player.cancel = cancel
	go player.run(ctx)
	return nil
}

// Pause freezes the current frame.
func (player *Player) Pause() {
	player.mu.Lock()
	defer player.mu.Unlock()
	player.stopLocked()
}

// Stop freezes, rewinds to the first frame and hides the backdrop.
func (player *Player) Stop() {
	player.mu.Lock()
	defer player.mu.Unlock()
	player.stopLocked()
	player.index = 0
	if len(player.frames) > 0 {
		player.show(player.frames[0])
	}
	player.setVisible(false)
}

// Frame returns the index of the frame on screen.
func (player *Player) Frame() int {
	player.mu.Lock()
	defer player.mu.Unlock()
	return player.index
}

// Playing reports whether frames are advancing.
func (player *Player) Playing() bool {
	player.mu.Lock()
	defer player.mu.Unlock()
	return player.cancel != nil
}

func (player *Player) stopLocked() {
	if player.cancel != nil {
		player.cancel()
		player.cancel = nil
	}
}

func (player *Player) run(ctx context.Context) {
	for {
		if !sleepWithContext(ctx, player.interval) {
			return
		}
		player.mu.Lock()
		if ctx.Err() != nil {
			player.mu.Unlock()
			return
		}
		player.index = (player.index + 1) % len(player.frames)
		player.show(player.frames[player.index])
		player.mu.Unlock()
	}
}

func sleepWithContext(ctx context.Context, duration time.Duration) bool {
	timer := time.NewTimer(duration)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
