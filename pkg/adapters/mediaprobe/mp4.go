package mediaprobe

import (
	"fmt"
	"io"
	"os"

	"github.com/Eyevinn/mp4ff/mp4"
)

// FromMP4File reads video metadata from an MP4 or QuickTime file.
func FromMP4File(path string) (Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return Info{}, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	return FromMP4Reader(f)
}

// FromMP4Reader reads video metadata from an io.ReadSeeker. Sample data is
// skipped, so memory use depends on the box structure only.
func FromMP4Reader(reader io.ReadSeeker) (Info, error) {
	mp4File, err := mp4.DecodeFile(reader, mp4.WithDecodeMode(mp4.DecModeLazyMdat))
	if err != nil {
		return Info{}, fmt.Errorf("decode mp4: %w", err)
	}
	return FromMP4(mp4File)
}

// FromMP4 extracts video metadata from a decoded file.
func FromMP4(mp4File *mp4.File) (Info, error) {
	if mp4File.IsFragmented() && mp4File.Init != nil && mp4File.Init.Moov != nil {
		for _, trak := range mp4File.Init.Moov.Traks {
			if !isVideo(trak) {
				continue
			}
			info := trackInfo(trak)
			countFragments(mp4File, trak, &info)
			return info, nil
		}
	}

	if mp4File.Moov != nil {
		for _, trak := range mp4File.Moov.Traks {
			if !isVideo(trak) {
				continue
			}
			info := trackInfo(trak)
			if stbl := trak.Mdia.Minf.Stbl; stbl.Stsz != nil {
				info.FrameCount = int(stbl.Stsz.SampleNumber)
			}
			setRate(&info, trak.Mdia.Mdhd.Duration, trak.Mdia.Mdhd.Timescale)
			return info, nil
		}
	}

	return Info{}, ErrNoVideoTrack
}

func isVideo(trak *mp4.TrakBox) bool {
	return trak.Mdia != nil && trak.Mdia.Hdlr != nil && trak.Mdia.Hdlr.HandlerType == "vide" &&
		trak.Mdia.Mdhd != nil && trak.Mdia.Minf != nil && trak.Mdia.Minf.Stbl != nil
}

func trackInfo(trak *mp4.TrakBox) Info {
	var info Info
	if stsd := trak.Mdia.Minf.Stbl.Stsd; stsd != nil {
		for _, child := range stsd.Children {
			if vse, ok := child.(*mp4.VisualSampleEntryBox); ok {
				info.Codec = vse.Type()
				info.Width = int(vse.Width)
				info.Height = int(vse.Height)
				break
			}
		}
	}
	// Sample entries mp4ff does not model still carry the size in tkhd.
	if info.Width == 0 && trak.Tkhd != nil {
		info.Width = int(uint32(trak.Tkhd.Width) >> 16)
		info.Height = int(uint32(trak.Tkhd.Height) >> 16)
	}
	return info
}

// countFragments sums sample counts and durations over all fragments
// from the trun boxes alone.
func countFragments(mp4File *mp4.File, trak *mp4.TrakBox, info *Info) {
	var trex *mp4.TrexBox
	trackID := trak.Tkhd.TrackID
	if mvex := mp4File.Init.Moov.Mvex; mvex != nil {
		for _, t := range mvex.Trexs {
			if t.TrackID == trackID {
				trex = t
				break
			}
		}
	}

	var total uint64
	for _, seg := range mp4File.Segments {
		for _, frag := range seg.Fragments {
			if frag.Moof == nil {
				continue
			}
			for _, traf := range frag.Moof.Trafs {
				if traf.Tfhd == nil || traf.Tfhd.TrackID != trackID {
					continue
				}
				for _, trun := range traf.Truns {
					info.FrameCount += int(trun.SampleCount())
					total += trun.AddSampleDefaultValues(traf.Tfhd, trex)
				}
			}
		}
	}
	setRate(info, total, trak.Mdia.Mdhd.Timescale)
}

func setRate(info *Info, duration uint64, timescale uint32) {
	if timescale == 0 || duration == 0 {
		return
	}
	info.DurationMs = float64(duration) * 1000 / float64(timescale)
	if info.FrameCount > 0 {
		info.FPS = float64(info.FrameCount) * 1000 / info.DurationMs
	}
}
