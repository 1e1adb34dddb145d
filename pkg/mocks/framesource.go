package mocks

import (
	"errors"
	"fmt"

	"github.com/user/vidcompare/pkg/frame"
	"github.com/user/vidcompare/pkg/ports"
)

// ErrReleased is returned when a released FrameSource is used.
var ErrReleased = errors.New("mocks: frame source released")

// FrameSource synthesizes solid frames. Frame i is filled with
// (byte(i), Tag, 0) so tests can tell which frame of which source was shown.
type FrameSource struct {
	Width  int
	Height int
	FPS    float64
	Count  int
	Tag    byte

	// ReadFrameFunc overrides frame synthesis for the given frame index.
	ReadFrameFunc func(index int) (frame.Frame, error)
	// PositionMsFunc overrides the reported position for the next frame index.
	PositionMsFunc func(next int) float64
	// SeekErr is returned by SeekTime after the seek is recorded.
	SeekErr error

	next     int
	released bool

	Reads    int
	Released int
	Seeks    []float64
}

// NewFrameSource creates an open source of count frames.
func NewFrameSource(width, height int, fps float64, count int) *FrameSource {
	return &FrameSource{Width: width, Height: height, FPS: fps, Count: count}
}

func (m *FrameSource) IsOpen() bool {
	return !m.released
}

func (m *FrameSource) ReadFrame() (frame.Frame, error) {
	if m.released {
		return frame.Frame{}, ErrReleased
	}
	m.Reads++
	if m.ReadFrameFunc != nil {
		f, err := m.ReadFrameFunc(m.next)
		if err == nil {
			m.next++
		}
		return f, err
	}
	if m.next >= m.Count {
		return frame.Frame{}, ports.ErrEndOfStream
	}
	f := frame.New(m.Width, m.Height)
	f.Fill(byte(m.next), m.Tag, 0)
	m.next++
	return f, nil
}

func (m *FrameSource) Property(p ports.Property) float64 {
	switch p {
	case ports.PropFrameRate:
		return m.FPS
	case ports.PropFrameCount:
		return float64(m.Count)
	case ports.PropWidth:
		return float64(m.Width)
	case ports.PropHeight:
		return float64(m.Height)
	}
	return 0
}

func (m *FrameSource) SeekFrame(index int) error {
	if m.released {
		return ErrReleased
	}
	m.next = min(max(index, 0), m.Count)
	return nil
}

func (m *FrameSource) SeekTime(ms float64) error {
	if m.released {
		return ErrReleased
	}
	m.Seeks = append(m.Seeks, ms)
	if m.SeekErr != nil {
		return m.SeekErr
	}
	if m.FPS <= 0 {
		m.next = 0
		return nil
	}
	return m.SeekFrame(int(ms * m.FPS / 1000))
}

func (m *FrameSource) PositionMs() float64 {
	if m.PositionMsFunc != nil {
		return m.PositionMsFunc(m.next)
	}
	if m.FPS <= 0 {
		return 0
	}
	return float64(m.next) * 1000 / m.FPS
}

func (m *FrameSource) Release() error {
	m.released = true
	m.Released++
	return nil
}

// Next returns the index of the next frame to be read.
func (m *FrameSource) Next() int {
	return m.next
}

var _ ports.FrameSource = (*FrameSource)(nil)

// Opener hands out registered FrameSources by path.
type Opener struct {
	Sources map[string]*FrameSource
	Errors  map[string]error
	Opened  []string
}

// NewOpener creates an opener with no registered sources.
func NewOpener() *Opener {
	return &Opener{
		Sources: make(map[string]*FrameSource),
		Errors:  make(map[string]error),
	}
}

// Add registers src under path and returns it.
func (m *Opener) Add(path string, src *FrameSource) *FrameSource {
	m.Sources[path] = src
	return src
}

func (m *Opener) Open(path string) (ports.FrameSource, error) {
	m.Opened = append(m.Opened, path)
	if err := m.Errors[path]; err != nil {
		return nil, err
	}
	src, ok := m.Sources[path]
	if !ok {
		return nil, fmt.Errorf("mocks: no such file: %s", path)
	}
	src.released = false
	src.next = 0
	return src, nil
}

var _ ports.FrameSourceOpener = (*Opener)(nil)
