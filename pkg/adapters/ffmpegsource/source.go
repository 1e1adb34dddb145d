// Package ffmpegsource implements ports.FrameSource by piping raw RGB24
// frames out of an ffmpeg subprocess.
//
// Seeking restarts ffmpeg at the new offset, so seeks cost a process spawn
// and a decode up to the target frame.
package ffmpegsource

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/user/vidcompare/pkg/adapters/mediaprobe"
	"github.com/user/vidcompare/pkg/frame"
	"github.com/user/vidcompare/pkg/ports"
)

var (
	// ErrClosed is returned when a released source is used.
	ErrClosed = errors.New("ffmpegsource: source released")

	// ErrNoSize is returned when the frame size of a file is unknown.
	ErrNoSize = errors.New("ffmpegsource: unknown frame size")

	// ErrNoFrameRate is returned by SeekFrame when the frame rate is unknown
	// and the index cannot be mapped to a time.
	ErrNoFrameRate = errors.New("ffmpegsource: unknown frame rate")
)

// Prober reads stream metadata.
type Prober interface {
	Probe(path string) (mediaprobe.Info, error)
}

// Opener opens Sources.
type Opener struct {
	ffmpegPath string
	prober     Prober
	log        ports.Logger
}

// NewOpener creates an opener. An empty ffmpegPath searches PATH and
// common install locations.
func NewOpener(ffmpegPath string, prober Prober, log ports.Logger) *Opener {
	return &Opener{
		ffmpegPath: ffmpegPath,
		prober:     prober,
		log:        log.WithComponent("ffmpeg"),
	}
}

// Open probes path and starts decoding from its first frame.
func (o *Opener) Open(path string) (ports.FrameSource, error) {
	bin, err := mediaprobe.FindTool(o.ffmpegPath, "ffmpeg")
	if err != nil {
		return nil, err
	}
	info, err := o.prober.Probe(path)
	if err != nil {
		return nil, fmt.Errorf("probe %s: %w", path, err)
	}
	if info.Width <= 0 || info.Height <= 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoSize, path)
	}

	s := &Source{
		bin:  bin,
		path: path,
		info: info,
		log:  o.log,
		open: true,
	}
	if err := s.start(0); err != nil {
		return nil, err
	}
	return s, nil
}

var _ ports.FrameSourceOpener = (*Opener)(nil)

// Source is one decoding session. It is not safe for concurrent use.
type Source struct {
	bin  string
	path string
	info mediaprobe.Info
	log  ports.Logger
	open bool

	cmd    *exec.Cmd
	stdout io.ReadCloser
	reader *bufio.Reader
	stderr bytes.Buffer

	startMs float64
	read    int
}

// args builds the ffmpeg command line. Display-matrix rotation is not
// applied so frames keep the probed coded size.
func (s *Source) args(ms float64) []string {
	args := []string{"-v", "error", "-nostdin", "-noautorotate"}
	if ms > 0 {
		args = append(args, "-ss", fmt.Sprintf("%.3f", ms/1000))
	}
	return append(args,
		"-i", s.path,
		"-map", "0:v:0",
		"-an", "-sn",
		"-f", "rawvideo",
		"-pix_fmt", "rgb24",
		"-",
	)
}

func (s *Source) start(ms float64) error {
	s.stop()

	cmd := exec.Command(s.bin, s.args(ms)...)
	s.stderr.Reset()
	cmd.Stderr = &s.stderr
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("ffmpeg stdout: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start ffmpeg: %w", err)
	}

	s.cmd = cmd
	s.stdout = stdout
	s.reader = bufio.NewReaderSize(stdout, 1<<20)
	s.startMs = ms
	s.read = 0
	s.log.Debug("Decoding %s from %.3f s", s.path, ms/1000)
	return nil
}

func (s *Source) stop() {
	if s.cmd == nil {
		return
	}
	if s.cmd.Process != nil {
		s.cmd.Process.Kill()
	}
	s.cmd.Wait()
	s.cmd = nil
	s.stdout = nil
	s.reader = nil
}

// IsOpen reports whether the source has not been released.
func (s *Source) IsOpen() bool {
	return s.open
}

// ReadFrame reads the next RGB24 frame from ffmpeg.
func (s *Source) ReadFrame() (frame.Frame, error) {
	if !s.open {
		return frame.Frame{}, ErrClosed
	}
	if s.reader == nil {
		return frame.Frame{}, ports.ErrEndOfStream
	}

	f := frame.New(s.info.Width, s.info.Height)
	_, err := io.ReadFull(s.reader, f.Pix)
	switch {
	case err == nil:
		s.read++
		return f, nil
	case errors.Is(err, io.EOF):
		werr := s.cmd.Wait()
		s.cmd = nil
		s.reader = nil
		if werr != nil {
			return frame.Frame{}, fmt.Errorf("ffmpeg failed: %w: %s", werr, strings.TrimSpace(s.stderr.String()))
		}
		return frame.Frame{}, ports.ErrEndOfStream
	default:
		s.stop()
		return frame.Frame{}, fmt.Errorf("truncated frame %d: %w: %s", s.read, err, strings.TrimSpace(s.stderr.String()))
	}
}

// Property returns probed stream metadata.
func (s *Source) Property(p ports.Property) float64 {
	switch p {
	case ports.PropFrameRate:
		return s.info.FPS
	case ports.PropFrameCount:
		return float64(s.info.FrameCount)
	case ports.PropWidth:
		return float64(s.info.Width)
	case ports.PropHeight:
		return float64(s.info.Height)
	}
	return 0
}

// SeekFrame restarts decoding at frame index. Without a frame rate only
// index 0 can be reached.
func (s *Source) SeekFrame(index int) error {
	if s.info.FPS <= 0 {
		if index != 0 {
			return fmt.Errorf("%w: seek to frame %d", ErrNoFrameRate, index)
		}
		return s.SeekTime(0)
	}
	return s.SeekTime(float64(index) * 1000 / s.info.FPS)
}

// SeekTime restarts decoding at ms. Seeking to the current position of a
// fresh session is free.
func (s *Source) SeekTime(ms float64) error {
	if !s.open {
		return ErrClosed
	}
	if ms < 0 {
		ms = 0
	}
	if s.cmd != nil && s.read == 0 && s.startMs == ms {
		return nil
	}
	return s.start(ms)
}

// PositionMs returns the time of the next frame.
func (s *Source) PositionMs() float64 {
	if s.info.FPS <= 0 {
		return s.startMs
	}
	return s.startMs + float64(s.read)*1000/s.info.FPS
}

// Release stops ffmpeg.
func (s *Source) Release() error {
	s.stop()
	s.open = false
	return nil
}

var _ ports.FrameSource = (*Source)(nil)
