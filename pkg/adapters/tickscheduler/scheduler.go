// Package tickscheduler implements ports.Scheduler with a time.Ticker whose
// ticks are delivered through an event loop.
package tickscheduler

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/user/vidcompare/pkg/ports"
)

// Poster runs callbacks on the event loop.
type Poster interface {
	Post(fn func()) bool
}

// Scheduler posts tick callbacks to a Poster. A tick posted before Stop or
// a restart is discarded when it reaches the loop, and at most one tick is
// pending at a time so a slow loop is not flooded.
type Scheduler struct {
	poster Poster

	mu         sync.Mutex
	generation uint64
	active     bool
	stop       chan struct{}

	pending atomic.Bool
}

// New creates an idle scheduler.
func New(poster Poster) *Scheduler {
	return &Scheduler{poster: poster}
}

// Start replaces any running timer with one firing every interval.
func (s *Scheduler) Start(interval time.Duration, tick func()) {
	if interval <= 0 {
		interval = time.Millisecond
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()

	s.generation++
	s.active = true
	s.stop = make(chan struct{})
	go s.run(interval, tick, s.generation, s.stop)
}

// Stop cancels the timer.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
}

func (s *Scheduler) stopLocked() {
	if !s.active {
		return
	}
	close(s.stop)
	s.active = false
	s.generation++
}

// Active reports whether the timer is running.
func (s *Scheduler) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

func (s *Scheduler) current(generation uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active && s.generation == generation
}

func (s *Scheduler) run(interval time.Duration, tick func(), generation uint64, stop <-chan struct{}) {
	t := time.NewTicker(interval)
	defer t.Stop()

	for {
		select {
		case <-stop:
			return
		case <-t.C:
			if !s.pending.CompareAndSwap(false, true) {
				continue
			}
			ok := s.poster.Post(func() {
				s.pending.Store(false)
				if s.current(generation) {
					tick()
				}
			})
			if !ok {
				return
			}
		}
	}
}

var _ ports.Scheduler = (*Scheduler)(nil)
