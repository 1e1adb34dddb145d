// Package mediaprobe reads video stream metadata: frame rate, frame count
// and frame size.
//
// MP4 and QuickTime files are parsed directly with mp4ff. Every other
// container, and MP4 files mp4ff cannot make sense of, are handed to
// ffprobe.
package mediaprobe

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/h2non/filetype"

	"github.com/user/vidcompare/pkg/ports"
)

// Container is the sniffed file format.
type Container string

const (
	ContainerMP4     Container = "mp4"
	ContainerMOV     Container = "mov"
	ContainerMKV     Container = "mkv"
	ContainerWebM    Container = "webm"
	ContainerAVI     Container = "avi"
	ContainerUnknown Container = "unknown"
)

// ErrNoVideoTrack is returned when a file has no video stream.
var ErrNoVideoTrack = errors.New("mediaprobe: no video track found")

// Info is the metadata of the first video stream of a file.
type Info struct {
	Container  Container
	Codec      string
	Width      int
	Height     int
	FPS        float64
	FrameCount int
	DurationMs float64
}

// Complete reports whether the frame rate and size are known.
func (i Info) Complete() bool {
	return i.FPS > 0 && i.Width > 0 && i.Height > 0
}

// Prober probes files, falling back to ffprobe.
type Prober struct {
	ffprobePath string
	log         ports.Logger
}

// New creates a prober. An empty ffprobePath searches PATH and common
// install locations.
func New(ffprobePath string, log ports.Logger) *Prober {
	return &Prober{
		ffprobePath: ffprobePath,
		log:         log.WithComponent("mediaprobe"),
	}
}

// Probe returns the video metadata of path.
func (p *Prober) Probe(path string) (Info, error) {
	container, err := SniffFile(path)
	if err != nil {
		return Info{}, err
	}

	if container == ContainerMP4 || container == ContainerMOV {
		info, err := FromMP4File(path)
		if err == nil && info.Complete() {
			info.Container = container
			p.log.Debug("Probed %s with mp4ff: %dx%d, %.3f fps, %d frames", path, info.Width, info.Height, info.FPS, info.FrameCount)
			return info, nil
		}
		if err != nil {
			p.log.Debug("mp4ff could not read %s: %v", path, err)
		}
	}

	info, err := p.ffprobe(path)
	if err != nil {
		return Info{}, err
	}
	info.Container = container
	p.log.Debug("Probed %s with ffprobe: %dx%d, %.3f fps, %d frames", path, info.Width, info.Height, info.FPS, info.FrameCount)
	return info, nil
}

// SniffFile detects the container of path from its leading bytes.
func SniffFile(path string) (Container, error) {
	f, err := os.Open(path)
	if err != nil {
		return ContainerUnknown, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	head := make([]byte, 262)
	n, err := io.ReadFull(f, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return ContainerUnknown, fmt.Errorf("read header: %w", err)
	}
	return Sniff(head[:n]), nil
}

// Sniff detects the container from leading file bytes.
func Sniff(head []byte) Container {
	kind, err := filetype.Match(head)
	if err != nil || kind == filetype.Unknown {
		return ContainerUnknown
	}
	switch kind.Extension {
	case "mp4", "m4v", "3gp":
		return ContainerMP4
	case "mov":
		return ContainerMOV
	case "mkv":
		return ContainerMKV
	case "webm":
		return ContainerWebM
	case "avi":
		return ContainerAVI
	}
	return ContainerUnknown
}
