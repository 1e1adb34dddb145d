package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user/vidcompare/pkg/ports"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, "video_compare.log", cfg.LogFile)
	assert.Equal(t, ports.LevelDebug, cfg.Level())
	assert.Equal(t, 0.5, cfg.Divider.InitialRatio)
	assert.Equal(t, 10, cfg.Divider.HitTolerance)
	assert.Equal(t, 5, cfg.Divider.HandleWidth)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vidcompare.yaml")
	data := []byte(`
log_level: warn
ffmpeg_path: /opt/ffmpeg/bin/ffmpeg
canvas_width: 800
divider:
  initial_ratio: 0.25
  color: "#ff0000"
`)
	require.NoError(t, os.WriteFile(path, data, 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, ports.LevelWarn, cfg.Level())
	assert.Equal(t, "/opt/ffmpeg/bin/ffmpeg", cfg.FFmpegPath)
	assert.Equal(t, 800, cfg.CanvasWidth)
	assert.Equal(t, 700, cfg.CanvasHeight, "unset keys keep defaults")
	assert.Equal(t, 0.25, cfg.Divider.InitialRatio)
	assert.Equal(t, 0.01, cfg.Divider.MinRatio)

	opts := cfg.CompositorOptions()
	assert.Equal(t, color.RGBA{R: 255, A: 255}, opts.LineColor)
	assert.Equal(t, 10.0, opts.HitTolerance)
}

func TestLoadFromFile_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("divider:\n  min_ratio: 0.9\n  max_ratio: 0.1\n"), 0644))

	_, err := LoadFromFile(path)
	assert.Error(t, err)

	_, err = LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidate_CanvasTooSmall(t *testing.T) {
	cfg := Defaults()
	cfg.CanvasWidth = 100
	assert.Error(t, cfg.Validate())
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.Color
	}{
		{"#ffffff", color.RGBA{R: 255, G: 255, B: 255, A: 255}},
		{"1a2B3c", color.RGBA{R: 0x1a, G: 0x2b, B: 0x3c, A: 255}},
		{"#fff", color.Black},
		{"#gg0000", color.Black},
		{"", color.Black},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseColor(tt.in))
		})
	}
}
