// Package seekbar models the playback position indicator: a bounded slider
// that the user can drag and the playback loop writes to on every tick.
//
// Writes made while signals are blocked update the value silently, so the
// tick loop can move the indicator without seeking the streams it just read.
package seekbar

import "github.com/user/vidcompare/pkg/ports"

// Listener receives user interaction with an Indicator.
type Listener interface {
	SeekPressed()
	SeekMoved(positionMs int)
	SeekReleased()
}

// Event is one slider interaction. Value is the position under the pointer
// in milliseconds and is ignored on release.
type Event struct {
	Kind  ports.InputKind
	Value int
}

// Indicator is the seek slider state machine. It is not safe for
// concurrent use.
type Indicator struct {
	listener Listener

	min     int
	max     int
	value   int
	pressed bool
	blocked bool
	enabled bool
}

// New creates a disabled indicator with an empty range.
func New(l Listener) *Indicator {
	return &Indicator{listener: l}
}

// SetListener replaces the listener.
func (i *Indicator) SetListener(l Listener) {
	i.listener = l
}

// SetRange sets the inclusive value range. The current value is clamped
// into the new range, which notifies like any other value change.
func (i *Indicator) SetRange(lo, hi int) {
	if hi < lo {
		hi = lo
	}
	i.min, i.max = lo, hi
	i.SetValue(i.value)
}

// Range returns the inclusive value range.
func (i *Indicator) Range() (lo, hi int) {
	return i.min, i.max
}

// SetEnabled enables or disables user interaction. Disabling ends a drag
// in progress without notifying.
func (i *Indicator) SetEnabled(enabled bool) {
	i.enabled = enabled
	if !enabled {
		i.pressed = false
	}
}

// Enabled reports whether user interaction is accepted.
func (i *Indicator) Enabled() bool {
	return i.enabled
}

// Value returns the current position in milliseconds.
func (i *Indicator) Value() int {
	return i.value
}

// Pressed reports whether the user is holding the slider.
func (i *Indicator) Pressed() bool {
	return i.pressed
}

// BlockSignals suppresses listener notifications while block is true and
// returns the previous setting.
func (i *Indicator) BlockSignals(block bool) bool {
	prev := i.blocked
	i.blocked = block
	return prev
}

// SetValue clamps v into range and stores it. A changed value notifies
// SeekMoved unless signals are blocked.
func (i *Indicator) SetValue(v int) {
	v = min(max(v, i.min), i.max)
	if v == i.value {
		return
	}
	i.value = v
	if !i.blocked && i.listener != nil {
		i.listener.SeekMoved(v)
	}
}

// SetValueSilently stores v without notifying, whatever the blocking state.
func (i *Indicator) SetValueSilently(v int) {
	prev := i.BlockSignals(true)
	i.SetValue(v)
	i.BlockSignals(prev)
}

// Handle processes user input and reports whether it was accepted.
func (i *Indicator) Handle(ev Event) bool {
	if !i.enabled {
		return false
	}
	switch ev.Kind {
	case ports.InputPress:
		i.pressed = true
		if !i.blocked && i.listener != nil {
			i.listener.SeekPressed()
		}
		i.SetValue(ev.Value)
		return true
	case ports.InputMove:
		if !i.pressed {
			return false
		}
		i.SetValue(ev.Value)
		return true
	case ports.InputRelease:
		if !i.pressed {
			return false
		}
		i.pressed = false
		if !i.blocked && i.listener != nil {
			i.listener.SeekReleased()
		}
		return true
	}
	return false
}
