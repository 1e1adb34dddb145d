package playback

import (
	"fmt"
	"time"
)

// Mode is how the two logical streams map onto files.
type Mode int

const (
	// ModeDual compares two files.
	ModeDual Mode = iota
	// ModeSingleSplit compares the left and right halves of one file.
	ModeSingleSplit
)

func (m Mode) String() string {
	if m == ModeSingleSplit {
		return "single-split"
	}
	return "dual"
}

// View is how a frame pair is presented.
type View int

const (
	ViewSideBySide View = iota
	ViewOverlay
)

func (v View) String() string {
	if v == ViewOverlay {
		return "overlay"
	}
	return "side-by-side"
}

// State is the playback state.
type State int

const (
	StateStopped State = iota
	StatePlaying
	StatePausedByUser
	// StatePausedBySeek is entered when the seek indicator is grabbed
	// during playback; releasing it resumes.
	StatePausedBySeek
)

func (s State) String() string {
	switch s {
	case StateStopped:
		return "stopped"
	case StatePlaying:
		return "playing"
	case StatePausedByUser:
		return "paused"
	case StatePausedBySeek:
		return "paused-by-seek"
	default:
		return "unknown"
	}
}

// StreamInfo describes one logical stream.
type StreamInfo struct {
	Path       string
	Name       string
	Width      int
	Height     int
	FPS        float64
	FrameCount int
	// Duration is in seconds; 0 when the frame rate is unknown.
	Duration float64
	// SplitFromPrimary marks the second logical stream in single-split mode.
	SplitFromPrimary bool
}

// DurationMs returns the duration in milliseconds.
func (i StreamInfo) DurationMs() float64 {
	return i.Duration * 1000
}

// Describe returns a one-line summary for info labels.
func (i StreamInfo) Describe() string {
	s := fmt.Sprintf("Resolution: %dx%d, FPS: %.2f, Duration: %.2f sec", i.Width, i.Height, i.FPS, i.Duration)
	if i.SplitFromPrimary {
		s += " (Split from Video 1)"
	}
	return s
}

// Controls is the enablement of the user controls.
type Controls struct {
	Play       bool
	Pause      bool
	Stop       bool
	Seek       bool
	ModeToggle bool
}

// Session is the controller's observable state.
type Session struct {
	Mode  Mode
	View  View
	State State

	// TickInterval is set by the last successful Play.
	TickInterval time.Duration

	// PrimaryDurationMs bounds the seek range: the shorter logical stream.
	PrimaryDurationMs float64
	PositionMs        float64

	// DividerRatio mirrors the overlay divider for display only.
	DividerRatio float64

	Streams  [2]StreamInfo
	Loaded   bool
	Controls Controls
}

// Running reports whether the tick is scheduled.
func (s Session) Running() bool {
	return s.State == StatePlaying
}
