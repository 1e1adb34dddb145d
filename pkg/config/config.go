// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"image/color"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/user/vidcompare/pkg/compositor"
	"github.com/user/vidcompare/pkg/ports"
)

// Config represents the full configuration for vidcompare.
// It is read at startup only; nothing is written back.
type Config struct {
	// Logging
	LogFile  string `yaml:"log_file"`
	LogLevel string `yaml:"log_level"`

	// Decoding
	FFmpegPath  string `yaml:"ffmpeg_path"`
	FFprobePath string `yaml:"ffprobe_path"`

	// Display
	CanvasWidth     int           `yaml:"canvas_width"`
	CanvasHeight    int           `yaml:"canvas_height"`
	BackgroundColor string        `yaml:"background_color"`
	Gap             int           `yaml:"gap"`
	Divider         DividerConfig `yaml:"divider"`
}

// DividerConfig configures the overlay divider.
type DividerConfig struct {
	InitialRatio float64 `yaml:"initial_ratio"`
	MinRatio     float64 `yaml:"min_ratio"`
	MaxRatio     float64 `yaml:"max_ratio"`
	HitTolerance int     `yaml:"hit_tolerance"`
	HandleWidth  int     `yaml:"handle_width"`
	Color        string  `yaml:"color"`
}

// Minimum overlay canvas size.
const (
	MinCanvasWidth  = 400
	MinCanvasHeight = 225
)

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		LogFile:  "video_compare.log",
		LogLevel: "debug",

		CanvasWidth:     1200,
		CanvasHeight:    700,
		BackgroundColor: "#000000",
		Gap:             10,
		Divider: DividerConfig{
			InitialRatio: 0.5,
			MinRatio:     0.01,
			MaxRatio:     0.99,
			HitTolerance: 10,
			HandleWidth:  5,
			Color:        "#ffffff",
		},
	}
}

// LoadFromFile loads configuration from a YAML file.
// Keys missing from the file keep their default values.
func LoadFromFile(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, cfg.Validate()
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.CanvasWidth < MinCanvasWidth || c.CanvasHeight < MinCanvasHeight {
		return fmt.Errorf("canvas %dx%d is smaller than %dx%d",
			c.CanvasWidth, c.CanvasHeight, MinCanvasWidth, MinCanvasHeight)
	}
	d := c.Divider
	if d.MinRatio < 0 || d.MaxRatio > 1 || d.MinRatio >= d.MaxRatio {
		return fmt.Errorf("divider ratio bounds [%g, %g] are invalid", d.MinRatio, d.MaxRatio)
	}
	if d.InitialRatio < 0 || d.InitialRatio > 1 {
		return fmt.Errorf("divider initial ratio %g is outside [0, 1]", d.InitialRatio)
	}
	if d.HitTolerance < 0 || d.HandleWidth < 1 {
		return fmt.Errorf("divider hit tolerance %d / handle width %d are invalid", d.HitTolerance, d.HandleWidth)
	}
	if c.Gap < 0 {
		return fmt.Errorf("gap %d is negative", c.Gap)
	}
	return nil
}

// Level returns the parsed log level.
func (c Config) Level() ports.LogLevel {
	return ports.ParseLogLevel(c.LogLevel)
}

// Background returns the parsed background color.
func (c Config) Background() color.Color {
	return ParseColor(c.BackgroundColor)
}

// CompositorOptions converts the divider settings to compositor options.
func (c Config) CompositorOptions() compositor.Options {
	return compositor.Options{
		InitialRatio: c.Divider.InitialRatio,
		MinRatio:     c.Divider.MinRatio,
		MaxRatio:     c.Divider.MaxRatio,
		HitTolerance: float64(c.Divider.HitTolerance),
		HandleWidth:  c.Divider.HandleWidth,
		LineColor:    ParseColor(c.Divider.Color),
		Background:   c.Background(),
	}
}

// ParseColor parses a hex color string ("#rrggbb" or "rrggbb") to color.Color.
// Malformed input yields black.
func ParseColor(hex string) color.Color {
	if len(hex) > 0 && hex[0] == '#' {
		hex = hex[1:]
	}
	if len(hex) != 6 {
		return color.Black
	}

	var rgb [3]uint8
	for i := range rgb {
		hi, ok1 := hexValue(hex[2*i])
		lo, ok2 := hexValue(hex[2*i+1])
		if !ok1 || !ok2 {
			return color.Black
		}
		rgb[i] = hi<<4 | lo
	}

	return color.RGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 255}
}

func hexValue(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}
