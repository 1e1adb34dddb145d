package ports

import "time"

// Scheduler drives a single repeating callback.
type Scheduler interface {
	// Start (re)starts the timer, invoking tick every interval.
	// A previously started timer is replaced.
	Start(interval time.Duration, tick func())

	// Stop cancels further ticks. Ticks already delivered are not preempted.
	Stop()

	// Active reports whether the timer is running.
	Active() bool
}
