package ui

import (
	"context"
	"sync"
	"time"
)

// Ticker drives the gravity tick. It never calls tick itself: every tick is
// handed to post, which must run it on the goroutine that owns the engine
// (tview's Application.QueueUpdateDraw). A posted tick that runs after Stop
// is dropped.
type Ticker struct {
	post func(func())
	tick func()

	mu       sync.Mutex
	ctx      context.Context
	cancel   context.CancelFunc
	interval time.Duration
}

// NewTicker creates a stopped ticker.
func NewTicker(post func(func()), tick func()) *Ticker {
	return &Ticker{post: post, tick: tick}
}

// Start begins ticking every interval until Stop is called or ctx is done. A
// running ticker is stopped first, so Start also changes the speed.
func (t *Ticker) Start(ctx context.Context, interval time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.cancel != nil {
		t.cancel()
	}
	ctx, cancel := context.WithCancel(ctx)
	t.ctx, t.cancel, t.interval = ctx, cancel, interval

	go func() {
		tk := time.NewTicker(interval)
		defer tk.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-tk.C:
				t.post(func() {
					if ctx.Err() == nil {
						t.tick()
					}
				})
			}
		}
	}()
}

// Stop stops the ticker. It does not wait for the goroutine to exit.
func (t *Ticker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
}

// Running returns true while ticks are being delivered.
func (t *Ticker) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cancel != nil && t.ctx.Err() == nil
}

// Interval returns the interval of the last Start.
func (t *Ticker) Interval() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.interval
}
