package main

import (
	"bytes"
	"image/png"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/user/vidcompare/pkg/adapters/mediaprobe"
	"github.com/user/vidcompare/pkg/config"
)

// run executes the CLI in-process and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	app := newApp()
	var out bytes.Buffer
	app.Writer = &out
	app.ErrWriter = &out
	app.ExitErrHandler = func(*cli.Context, error) {}
	err := app.Run(append([]string{"vidcompare"}, args...))
	return out.String(), err
}

// makeClip renders a 10 fps, 1 second MP4 test pattern, skipping the test
// when ffmpeg is unavailable.
func makeClip(t *testing.T, size string) (ffmpeg, path string) {
	t.Helper()
	ffmpeg, err := mediaprobe.FindTool("", "ffmpeg")
	if err != nil {
		t.Skip("ffmpeg not available")
	}
	path = filepath.Join(t.TempDir(), "clip-"+size+".mp4")
	cmd := exec.Command(ffmpeg, "-v", "error", "-f", "lavfi", "-i", "testsrc=size="+size+":rate=10:duration=1",
		"-c:v", "mpeg4", "-pix_fmt", "yuv420p", path)
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Skipf("cannot create test clip: %v: %s", err, out)
	}
	return ffmpeg, path
}

func TestClampRatio(t *testing.T) {
	cfg := config.Defaults()

	tests := []struct {
		in, want float64
	}{
		{0.5, 0.5},
		{0, 0.01},
		{-1, 0.01},
		{1, 0.99},
		{0.25, 0.25},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, clampRatio(tt.in, cfg), 1e-9, "clampRatio(%v)", tt.in)
	}
}

func TestVersionFlag(t *testing.T) {
	out, err := run(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "vidcompare")
	assert.Contains(t, out, version)
}

func TestCommandsRegistered(t *testing.T) {
	app := newApp()
	for _, name := range []string{"play", "snapshot", "probe"} {
		assert.NotNil(t, app.Command(name), "command %s", name)
	}
}

func TestPlay_ArgumentCount(t *testing.T) {
	_, err := run(t, "--no-log-file", "-q", "play")
	require.Error(t, err)

	_, err = run(t, "--no-log-file", "-q", "play", "a.mp4", "b.mp4", "c.mp4")
	require.Error(t, err)
}

func TestProbe_RequiresArgument(t *testing.T) {
	_, err := run(t, "--no-log-file", "-q", "probe")
	require.Error(t, err)
}

func TestProbe_MissingFile(t *testing.T) {
	_, err := run(t, "--no-log-file", "-q", "probe", filepath.Join(t.TempDir(), "missing.mp4"))
	require.Error(t, err)
}

func TestBadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("canvas_width: 10\n"), 0644))

	_, err := run(t, "--config", path, "--no-log-file", "-q", "probe", "x.mp4")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load config")
}

func TestPlay_MissingFileFails(t *testing.T) {
	_, err := run(t, "--no-log-file", "-q", "play", filepath.Join(t.TempDir(), "missing.mp4"))
	require.Error(t, err)
}

func TestProbe_Clip(t *testing.T) {
	_, clip := makeClip(t, "160x90")

	out, err := run(t, "--no-log-file", "-q", "probe", clip)
	require.NoError(t, err)
	assert.Contains(t, out, "Resolution: 160x90")
	assert.Contains(t, out, "FPS: 10.00")
}

func TestPlay_WritesFrames(t *testing.T) {
	_, clip := makeClip(t, "160x90")
	dir := t.TempDir()
	logFile := filepath.Join(dir, "run.log")

	_, err := run(t, "--log-file", logFile, "-q", "play", "--out", filepath.Join(dir, "frames"), clip, clip)
	require.NoError(t, err)

	left, err := filepath.Glob(filepath.Join(dir, "frames", "left-*.png"))
	require.NoError(t, err)
	right, err := filepath.Glob(filepath.Join(dir, "frames", "right-*.png"))
	require.NoError(t, err)
	assert.NotEmpty(t, left)
	assert.Equal(t, len(left), len(right), "both sides advance in lockstep")

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), ":INFO:"), "log file should contain info lines")
}

func TestSnapshot_Overlay(t *testing.T) {
	_, clip := makeClip(t, "160x90")
	output := filepath.Join(t.TempDir(), "shot", "overlay.png")

	_, err := run(t, "--no-log-file", "-q", "snapshot", "--at", "500", "--overlay", "--ratio", "0.3", "-o", output, clip)
	require.NoError(t, err)

	f, err := os.Open(output)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)

	cfg := config.Defaults()
	assert.Equal(t, cfg.CanvasWidth, img.Bounds().Dx())
	assert.Equal(t, cfg.CanvasHeight, img.Bounds().Dy())
}

func TestSnapshot_SideBySide(t *testing.T) {
	_, a := makeClip(t, "160x90")
	_, b := makeClip(t, "120x90")
	output := filepath.Join(t.TempDir(), "side.png")

	_, err := run(t, "--no-log-file", "-q", "snapshot", "--at", "200", "-o", output, a, b)
	require.NoError(t, err)

	f, err := os.Open(output)
	require.NoError(t, err)
	defer f.Close()
	_, err = png.Decode(f)
	require.NoError(t, err)
}
