package pomodoro

import (
	"context"
	"sync"
	"time"
)

// Scheduler invokes tick repeatedly until stopped. Starting again replaces the
// previous interval, so at most one interval is active.
type Scheduler interface {
	Start(tick func())
	Stop()
}

// TickerScheduler fires tick on a time.Ticker goroutine.
type TickerScheduler struct {
	mu       sync.Mutex
	interval time.Duration
	cancel   context.CancelFunc
}

// NewTickerScheduler creates a scheduler with the given interval (one second if zero).
func NewTickerScheduler(interval time.Duration) *TickerScheduler {
	if interval <= 0 {
		interval = time.Second
	}
	return &TickerScheduler{interval: interval}
}

// Start launches a new interval, cancelling the previous one.
func (scheduler *TickerScheduler) Start(tick func()) {
	scheduler.mu.Lock()
	if scheduler.cancel != nil {
		scheduler.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	scheduler.cancel = cancel
	scheduler.mu.Unlock()

	go scheduler.run(ctx, tick)
}

// Stop cancels the active interval. It does not wait for an in-flight tick.
func (scheduler *TickerScheduler) Stop() {
	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()
	if scheduler.cancel != nil {
		scheduler.cancel()
		scheduler.cancel = nil
	}
}

func (scheduler *TickerScheduler) run(ctx context.Context, tick func()) {
	ticker := time.NewTicker(scheduler.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			tick()
		}
	}
}

// ManualScheduler records the active tick function and fires it on demand.
type ManualScheduler struct {
	mu     sync.Mutex
	tick   func()
	starts int
}

// Start stores tick as the active interval.
func (scheduler *ManualScheduler) Start(tick func()) {
	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()
	scheduler.tick = tick
	scheduler.starts++
}

// Stop clears the active interval.
func (scheduler *ManualScheduler) Stop() {
	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()
	scheduler.tick = nil
}

// Active reports whether an interval is running.
func (scheduler *ManualScheduler) Active() bool {
	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()
	return scheduler.tick != nil
}

// Starts returns how many intervals have been started.
func (scheduler *ManualScheduler) Starts() int {
	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()
	return scheduler.starts
}

// Fire invokes the active tick n times. It stops early once the interval is stopped.
func (scheduler *ManualScheduler) Fire(n int) {
	for i := 0; i < n; i++ {
		scheduler.mu.Lock()
		tick := scheduler.tick
		scheduler.mu.Unlock()
		if tick == nil {
			return
		}
		tick()
	}
}
