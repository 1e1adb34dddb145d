// Package eventloop serializes callbacks onto a single goroutine, so that
// scheduler ticks and user input never run concurrently.
package eventloop

import (
	"context"
	"sync"
)

// Loop runs posted callbacks one at a time on the goroutine calling Run.
type Loop struct {
	queue chan func()
	done  chan struct{}
	once  sync.Once
}

// New creates a loop whose queue holds up to capacity pending callbacks.
func New(capacity int) *Loop {
	return &Loop{
		queue: make(chan func(), max(capacity, 1)),
		done:  make(chan struct{}),
	}
}

// Post queues fn. It blocks while the queue is full and returns false once
// the loop has quit.
func (l *Loop) Post(fn func()) bool {
	select {
	case <-l.done:
		return false
	default:
	}
	select {
	case l.queue <- fn:
		return true
	case <-l.done:
		return false
	}
}

// Run executes callbacks until ctx is done or Quit is called. Callbacks
// still queued at that point are dropped.
func (l *Loop) Run(ctx context.Context) error {
	defer l.Quit()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.done:
			return nil
		case fn := <-l.queue:
			fn()
		}
	}
}

// Quit stops the loop. It is safe to call more than once and from any
// goroutine, including from a callback.
func (l *Loop) Quit() {
	l.once.Do(func() { close(l.done) })
}

// Done is closed when the loop quits.
func (l *Loop) Done() <-chan struct{} {
	return l.done
}
