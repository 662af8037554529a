package handoff

import (
	"context"
	"sync"

	"fyne.io/fyne/v2"
)

// Scheduler runs closures later on the foreground goroutine, in the order
// they were scheduled, never re-entrantly with the caller.
type Scheduler interface {
	Do(fn func())
}

// FyneScheduler schedules onto the Fyne main goroutine
type FyneScheduler struct{}

// Do queues fn on the Fyne event loop
func (FyneScheduler) Do(fn func()) {
	fyne.Do(fn)
}

// Loop is a foreground queue for programs without a GUI event loop. The
// goroutine calling Run or Step is the foreground.
type Loop struct {
	mu      sync.Mutex
	pending []func()
	closed  bool
	wake    chan struct{}
}

// NewLoop creates an empty loop
func NewLoop() *Loop {
	return &Loop{wake: make(chan struct{}, 1)}
}

// Do appends fn to the queue. It never blocks; after Close it drops fn.
func (l *Loop) Do(fn func()) {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return
	}
	l.pending = append(l.pending, fn)
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
}

// Run executes queued closures until ctx is done, then closes the loop
func (l *Loop) Run(ctx context.Context) error {
	defer l.Close()
	for {
		if err := l.Step(ctx); err != nil {
			return err
		}
	}
}

// Step waits until at least one closure is queued and runs everything queued
// so far, including closures scheduled by the ones it runs.
func (l *Loop) Step(ctx context.Context) error {
	for l.Len() == 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.wake:
		}
	}
	l.drain()
	return nil
}

// Len returns the number of queued closures
func (l *Loop) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.pending)
}

// Close stops accepting closures and discards the queue
func (l *Loop) Close() {
	l.mu.Lock()
	l.closed = true
	l.pending = nil
	l.mu.Unlock()
}

func (l *Loop) drain() {
	for {
		l.mu.Lock()
		if len(l.pending) == 0 {
			l.mu.Unlock()
			return
		}
		fn := l.pending[0]
		l.pending[0] = nil
		l.pending = l.pending[1:]
		l.mu.Unlock()

		fn()
	}
}
