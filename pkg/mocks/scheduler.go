package mocks

import (
	"time"

	"github.com/user/vidcompare/pkg/ports"
)

// Scheduler is a manually driven ports.Scheduler.
type Scheduler struct {
	active   bool
	tick     func()
	Interval time.Duration
	Starts   int
	Stops    int
}

func (m *Scheduler) Start(interval time.Duration, tick func()) {
	m.active = true
	m.tick = tick
	m.Interval = interval
	m.Starts++
}

func (m *Scheduler) Stop() {
	m.active = false
	m.Stops++
}

func (m *Scheduler) Active() bool {
	return m.active
}

// Fire delivers one tick if the scheduler is active.
func (m *Scheduler) Fire() bool {
	if !m.active || m.tick == nil {
		return false
	}
	m.tick()
	return true
}

// Run fires until the scheduler stops or limit ticks were delivered.
// It returns the number of ticks delivered.
func (m *Scheduler) Run(limit int) int {
	n := 0
	for n < limit && m.Fire() {
		n++
	}
	return n
}

var _ ports.Scheduler = (*Scheduler)(nil)
