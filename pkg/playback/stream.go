package playback

import (
	"path/filepath"

	"github.com/user/vidcompare/pkg/frame"
	"github.com/user/vidcompare/pkg/ports"
)

// Stream wraps one opened FrameSource and counts the frames it delivered,
// so the end of a stream is known even when positions round short of the
// duration.
type Stream struct {
	path       string
	src        ports.FrameSource
	fps        float64
	frameCount int
	next       int
}

// NewStream reads the metadata of src.
func NewStream(path string, src ports.FrameSource) *Stream {
	return &Stream{
		path:       path,
		src:        src,
		fps:        src.Property(ports.PropFrameRate),
		frameCount: int(src.Property(ports.PropFrameCount)),
	}
}

func (s *Stream) FPS() float64    { return s.fps }
func (s *Stream) FrameCount() int { return s.frameCount }

// Duration returns frame_count / fps in seconds, or 0 for an unknown rate.
func (s *Stream) Duration() float64 {
	if s.fps <= 0 {
		return 0
	}
	return float64(s.frameCount) / s.fps
}

// Info describes the stream.
func (s *Stream) Info() StreamInfo {
	return StreamInfo{
		Path:       s.path,
		Name:       filepath.Base(s.path),
		Width:      int(s.src.Property(ports.PropWidth)),
		Height:     int(s.src.Property(ports.PropHeight)),
		FPS:        s.fps,
		FrameCount: s.frameCount,
		Duration:   s.Duration(),
	}
}

// Read decodes the next frame.
func (s *Stream) Read() (frame.Frame, error) {
	f, err := s.src.ReadFrame()
	if err != nil {
		return frame.Frame{}, err
	}
	s.next++
	return f, nil
}

// Rewind positions the stream at its first frame.
func (s *Stream) Rewind() error {
	s.next = 0
	return s.src.SeekFrame(0)
}

// SeekMs positions the stream at an absolute time.
func (s *Stream) SeekMs(ms float64) error {
	if s.fps > 0 {
		s.next = int(ms * s.fps / 1000)
	} else {
		s.next = 0
	}
	return s.src.SeekTime(ms)
}

// PositionMs returns the source position in milliseconds.
func (s *Stream) PositionMs() float64 {
	return s.src.PositionMs()
}

// Exhausted reports whether every frame of a stream with a known frame
// count has been delivered.
func (s *Stream) Exhausted() bool {
	return s.frameCount > 0 && s.next >= s.frameCount
}

// Release frees the source.
func (s *Stream) Release() error {
	return s.src.Release()
}

// Slot holds an optional Stream.
type Slot struct {
	s *Stream
}

// Get returns the stream and whether one is loaded.
func (sl *Slot) Get() (*Stream, bool) {
	return sl.s, sl.s != nil
}

// Loaded reports whether a stream is present.
func (sl *Slot) Loaded() bool {
	return sl.s != nil
}

// Set stores s, replacing any previous stream without releasing it.
func (sl *Slot) Set(s *Stream) {
	sl.s = s
}

// Release releases and clears the stream, if any.
func (sl *Slot) Release() error {
	if sl.s == nil {
		return nil
	}
	err := sl.s.Release()
	sl.s = nil
	return err
}
