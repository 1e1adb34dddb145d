package ffmpegsource

import (
	"errors"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/vidcompare/pkg/adapters/logger"
	"github.com/user/vidcompare/pkg/adapters/mediaprobe"
	"github.com/user/vidcompare/pkg/ports"
)

// staticProber returns fixed metadata.
type staticProber struct {
	info mediaprobe.Info
	err  error
}

func (p staticProber) Probe(string) (mediaprobe.Info, error) {
	return p.info, p.err
}

// makeClip renders a 10 fps, 1 second test pattern, skipping the test
// when ffmpeg is unavailable.
func makeClip(t *testing.T) (ffmpeg, path string) {
	t.Helper()
	ffmpeg, err := mediaprobe.FindTool("", "ffmpeg")
	if err != nil {
		t.Skip("ffmpeg not available")
	}
	path = filepath.Join(t.TempDir(), "clip.mkv")
	cmd := exec.Command(ffmpeg, "-v", "error", "-f", "lavfi", "-i", "testsrc=size=64x48:rate=10:duration=1",
		"-c:v", "ffv1", path)
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Skipf("cannot create test clip: %v: %s", err, out)
	}
	return ffmpeg, path
}

func clipInfo() mediaprobe.Info {
	return mediaprobe.Info{Width: 64, Height: 48, FPS: 10, FrameCount: 10, DurationMs: 1000}
}

func TestSource_ReadsAllFrames(t *testing.T) {
	ffmpeg, path := makeClip(t)
	o := NewOpener(ffmpeg, staticProber{info: clipInfo()}, logger.NewNoop())

	src, err := o.Open(path)
	require.NoError(t, err)
	defer src.Release()

	assert.True(t, src.IsOpen())
	assert.Equal(t, 10.0, src.Property(ports.PropFrameRate))
	assert.Equal(t, 64.0, src.Property(ports.PropWidth))

	n := 0
	for {
		f, err := src.ReadFrame()
		if errors.Is(err, ports.ErrEndOfStream) {
			break
		}
		require.NoError(t, err)
		assert.Equal(t, 64, f.Width)
		assert.Equal(t, 48, f.Height)
		n++
	}
	assert.Equal(t, 10, n)
	assert.InDelta(t, 1000, src.PositionMs(), 1e-9)
}

func TestSource_SeekTime(t *testing.T) {
	ffmpeg, path := makeClip(t)
	o := NewOpener(ffmpeg, staticProber{info: clipInfo()}, logger.NewNoop())

	src, err := o.Open(path)
	require.NoError(t, err)
	defer src.Release()

	require.NoError(t, src.SeekTime(500))
	assert.InDelta(t, 500, src.PositionMs(), 1e-9)

	_, err = src.ReadFrame()
	require.NoError(t, err)
	assert.InDelta(t, 600, src.PositionMs(), 1e-9)

	require.NoError(t, src.SeekFrame(0))
	assert.Equal(t, 0.0, src.PositionMs())
}

func TestSource_Release(t *testing.T) {
	ffmpeg, path := makeClip(t)
	o := NewOpener(ffmpeg, staticProber{info: clipInfo()}, logger.NewNoop())

	src, err := o.Open(path)
	require.NoError(t, err)

	require.NoError(t, src.Release())
	require.NoError(t, src.Release())
	assert.False(t, src.IsOpen())

	_, err = src.ReadFrame()
	assert.ErrorIs(t, err, ErrClosed)
}

func TestOpener_Errors(t *testing.T) {
	ffmpeg, err := mediaprobe.FindTool("", "ffmpeg")
	if err != nil {
		t.Skip("ffmpeg not available")
	}

	o := NewOpener(ffmpeg, staticProber{err: errors.New("not a video")}, logger.NewNoop())
	_, err = o.Open("whatever.mp4")
	assert.ErrorContains(t, err, "not a video")

	o = NewOpener(ffmpeg, staticProber{info: mediaprobe.Info{FPS: 30}}, logger.NewNoop())
	_, err = o.Open("whatever.mp4")
	assert.ErrorIs(t, err, ErrNoSize)
}

func TestOpener_MissingFFmpeg(t *testing.T) {
	o := NewOpener(filepath.Join(t.TempDir(), "no-ffmpeg"), staticProber{info: clipInfo()}, logger.NewNoop())
	_, err := o.Open("clip.mp4")
	assert.ErrorIs(t, err, mediaprobe.ErrToolNotFound)
}

func TestSource_Args(t *testing.T) {
	s := &Source{path: "clip.mp4"}

	args := s.args(0)
	assert.Equal(t, []string{
		"-v", "error", "-nostdin", "-noautorotate",
		"-i", "clip.mp4",
		"-map", "0:v:0",
		"-an", "-sn",
		"-f", "rawvideo",
		"-pix_fmt", "rgb24",
		"-",
	}, args)

	args = s.args(1500)
	require.Contains(t, args, "-ss")
	assert.Equal(t, "1.500", args[indexOf(args, "-ss")+1])
	assert.Less(t, indexOf(args, "-noautorotate"), indexOf(args, "-i"), "rotation must be disabled as an input option")
	assert.Less(t, indexOf(args, "-ss"), indexOf(args, "-i"), "seek before input")
}

func indexOf(args []string, v string) int {
	for i, a := range args {
		if a == v {
			return i
		}
	}
	return -1
}

func TestSource_SeekFrameWithoutFrameRate(t *testing.T) {
	s := &Source{path: "clip.mp4", info: mediaprobe.Info{Width: 64, Height: 48}, log: logger.NewNoop(), open: true}

	err := s.SeekFrame(12)
	assert.ErrorIs(t, err, ErrNoFrameRate)
	assert.Nil(t, s.cmd, "a failed index seek must not restart decoding")
}
