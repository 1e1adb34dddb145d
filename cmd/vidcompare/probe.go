package main

import (
	"fmt"
	"path/filepath"

	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"

	"github.com/user/vidcompare/pkg/adapters/mediaprobe"
	"github.com/user/vidcompare/pkg/playback"
)

func probeCommand() *cli.Command {
	return &cli.Command{
		Name:      "probe",
		Usage:     l10n.T("Print resolution, frame rate and duration of videos"),
		ArgsUsage: "VIDEO...",
		Action:    runProbe,
	}
}

func runProbe(c *cli.Context) error {
	if c.NArg() == 0 {
		return cli.Exit(l10n.T("At least one video argument is required"), 2)
	}

	e, err := newEnv(c)
	if err != nil {
		return err
	}
	defer e.Close()

	prober := mediaprobe.New(e.cfg.FFprobePath, e.log)
	failed := 0
	for _, path := range c.Args().Slice() {
		info, err := prober.Probe(path)
		if err != nil {
			e.log.Error("Failed to probe %s: %v", path, err)
			failed++
			continue
		}
		fmt.Fprintln(c.App.Writer, describe(path, info))
	}

	if failed > 0 {
		return cli.Exit(l10n.F("%d of %d files could not be probed", failed, c.NArg()), 1)
	}
	return nil
}

// describe renders info the way the player's info labels do, followed by
// the container details.
func describe(path string, info mediaprobe.Info) string {
	s := playback.StreamInfo{
		Path:       path,
		Name:       filepath.Base(path),
		Width:      info.Width,
		Height:     info.Height,
		FPS:        info.FPS,
		FrameCount: info.FrameCount,
	}
	if info.FPS > 0 {
		s.Duration = float64(info.FrameCount) / info.FPS
	}
	return fmt.Sprintf("%s: %s [%s, %s, %d frames]", s.Name, s.Describe(), info.Container, info.Codec, info.FrameCount)
}
