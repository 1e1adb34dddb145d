package mediaprobe

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"os/exec"
	"runtime"
	"strconv"
	"strings"
)

// ErrToolNotFound is returned when ffmpeg or ffprobe cannot be located.
var ErrToolNotFound = errors.New("mediaprobe: tool not found")

// FindTool locates an ffmpeg suite binary such as "ffmpeg" or "ffprobe".
// A non-empty custom path is used as is if it exists.
func FindTool(custom, name string) (string, error) {
	if custom != "" {
		if _, err := os.Stat(custom); err == nil {
			return custom, nil
		}
		return "", fmt.Errorf("%w: custom path %s not found", ErrToolNotFound, custom)
	}

	execName := name
	if runtime.GOOS == "windows" {
		execName = name + ".exe"
	}

	if path, err := exec.LookPath(execName); err == nil {
		return path, nil
	}

	var dirs []string
	if runtime.GOOS == "windows" {
		dirs = []string{
			`C:\ffmpeg\bin`,
			`C:\Program Files\ffmpeg\bin`,
			`C:\Program Files (x86)\ffmpeg\bin`,
		}
	} else {
		dirs = []string{
			"/usr/bin",
			"/usr/local/bin",
			"/opt/homebrew/bin",
			"/snap/bin",
		}
	}

	sep := "/"
	if runtime.GOOS == "windows" {
		sep = `\`
	}
	for _, d := range dirs {
		p := d + sep + execName
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}

	return "", fmt.Errorf("%w: %s", ErrToolNotFound, name)
}

type ffprobeOutput struct {
	Streams []struct {
		CodecName    string `json:"codec_name"`
		Width        int    `json:"width"`
		Height       int    `json:"height"`
		AvgFrameRate string `json:"avg_frame_rate"`
		RFrameRate   string `json:"r_frame_rate"`
		NbFrames     string `json:"nb_frames"`
		Duration     string `json:"duration"`
	} `json:"streams"`
	Format struct {
		Duration string `json:"duration"`
	} `json:"format"`
}

func (p *Prober) ffprobe(path string) (Info, error) {
	bin, err := FindTool(p.ffprobePath, "ffprobe")
	if err != nil {
		return Info{}, err
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.Command(bin,
		"-v", "error",
		"-select_streams", "v:0",
		"-show_entries", "stream=codec_name,width,height,avg_frame_rate,r_frame_rate,nb_frames,duration:format=duration",
		"-of", "json",
		path,
	)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return Info{}, fmt.Errorf("ffprobe failed: %w\nstderr: %s", err, stderr.String())
	}
	return ParseFFprobe(stdout.Bytes())
}

// ParseFFprobe converts ffprobe JSON output into Info.
func ParseFFprobe(data []byte) (Info, error) {
	var out ffprobeOutput
	if err := json.Unmarshal(data, &out); err != nil {
		return Info{}, fmt.Errorf("parse ffprobe output: %w", err)
	}
	if len(out.Streams) == 0 {
		return Info{}, ErrNoVideoTrack
	}

	s := out.Streams[0]
	info := Info{
		Codec:  s.CodecName,
		Width:  s.Width,
		Height: s.Height,
		FPS:    parseRate(s.AvgFrameRate),
	}
	if info.FPS <= 0 {
		info.FPS = parseRate(s.RFrameRate)
	}

	duration := parseFloat(s.Duration)
	if duration <= 0 {
		duration = parseFloat(out.Format.Duration)
	}
	info.DurationMs = duration * 1000

	if n, err := strconv.Atoi(s.NbFrames); err == nil && n > 0 {
		info.FrameCount = n
	} else if info.FPS > 0 {
		info.FrameCount = int(math.Round(duration * info.FPS))
	}
	return info, nil
}

// parseRate parses "num/den" or a plain number. Invalid rates are 0.
func parseRate(s string) float64 {
	num, den, ok := strings.Cut(s, "/")
	if !ok {
		return parseFloat(s)
	}
	n := parseFloat(num)
	d := parseFloat(den)
	if d == 0 {
		return 0
	}
	return n / d
}

func parseFloat(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
