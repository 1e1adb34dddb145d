package ports

import (
	"errors"

	"github.com/user/vidcompare/pkg/frame"
)

// ErrEndOfStream is returned by FrameSource.ReadFrame when no frame is left.
var ErrEndOfStream = errors.New("ports: end of stream")

// Property identifies a numeric stream property.
type Property int

const (
	// PropFrameRate is the frame rate in frames per second (0 if unknown).
	PropFrameRate Property = iota
	// PropFrameCount is the number of frames in the stream (0 if unknown).
	PropFrameCount
	// PropWidth is the frame width in pixels.
	PropWidth
	// PropHeight is the frame height in pixels.
	PropHeight
)

// String returns the property name.
func (p Property) String() string {
	switch p {
	case PropFrameRate:
		return "frame_rate"
	case PropFrameCount:
		return "frame_count"
	case PropWidth:
		return "width"
	case PropHeight:
		return "height"
	default:
		return "unknown"
	}
}

// FrameSource abstracts an opened, decodable video file.
// Implementations are used from a single goroutine and need not be safe
// for concurrent use.
type FrameSource interface {
	// IsOpen reports whether the source can still deliver frames.
	IsOpen() bool

	// ReadFrame decodes the next frame. It returns ErrEndOfStream once the
	// stream is exhausted; any other error is a decode failure.
	ReadFrame() (frame.Frame, error)

	// Property returns a numeric stream property.
	Property(p Property) float64

	// SeekFrame positions the source so the next read returns frame index.
	SeekFrame(index int) error

	// SeekTime positions the source at an absolute time in milliseconds.
	SeekTime(ms float64) error

	// PositionMs returns the time of the next frame to be read.
	PositionMs() float64

	// Release frees the underlying decoder. It is safe to call twice.
	Release() error
}

// FrameSourceOpener opens frame sources from file paths.
type FrameSourceOpener interface {
	Open(path string) (FrameSource, error)
}
