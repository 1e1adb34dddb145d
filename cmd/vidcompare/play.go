package main

import (
	"context"
	"errors"

	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"

	"github.com/user/vidcompare/pkg/adapters/framesink"
	"github.com/user/vidcompare/pkg/adapters/ggrenderer"
	"github.com/user/vidcompare/pkg/adapters/nullsink"
	"github.com/user/vidcompare/pkg/adapters/osfilesystem"
	"github.com/user/vidcompare/pkg/playback"
)

func playCommand() *cli.Command {
	return &cli.Command{
		Name:      "play",
		Usage:     l10n.T("Play one or two videos in lockstep until the shorter one ends"),
		ArgsUsage: "VIDEO1 [VIDEO2]",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "overlay", Usage: l10n.T("Show both videos in one frame split by a divider")},
			&cli.Float64Flag{Name: "ratio", Value: 0.5, Usage: l10n.T("Divider position as a fraction of the frame width")},
			&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: l10n.T("Directory to write every displayed frame as PNG")},
		},
		Action: runPlay,
	}
}

func runPlay(c *cli.Context) error {
	pathA, pathB, err := videoArgs(c)
	if err != nil {
		return err
	}

	e, err := newEnv(c)
	if err != nil {
		return err
	}
	defer e.Close()

	renderer := ggrenderer.New()
	var s surfaces
	var sinks []*framesink.Sink
	if dir := c.String("out"); dir != "" {
		fs := osfilesystem.New()
		left := framesink.New(dir, "left", sideSize(e.cfg), fs, renderer)
		right := framesink.New(dir, "right", sideSize(e.cfg), fs, renderer)
		ov := framesink.New(dir, "overlay", overlaySize(e.cfg), fs, renderer)
		s = surfaces{left: left, right: right, overlay: ov}
		sinks = []*framesink.Sink{left, right, ov}
	} else {
		s = surfaces{
			left:    nullsink.New(sideSize(e.cfg)),
			right:   nullsink.New(sideSize(e.cfg)),
			overlay: nullsink.New(overlaySize(e.cfg)),
		}
	}

	p := newPlayer(e, renderer, s)

	ctx, cancel := signalContext(e.log)
	defer cancel()

	var runErr error
	p.loop.Post(func() {
		if err := p.open(pathA, pathB, c.Bool("overlay")); err != nil {
			runErr = err
			p.loop.Quit()
			return
		}
		if c.IsSet("ratio") {
			p.dragDivider(clampRatio(c.Float64("ratio"), e.cfg))
		}
		p.ctrl.OnStateChange(func(st playback.State) {
			if st == playback.StateStopped {
				p.loop.Quit()
			}
		})
		if err := p.ctrl.Play(); err != nil {
			runErr = err
			p.loop.Quit()
		}
	})

	err = p.loop.Run(ctx)
	p.ctrl.Shutdown()
	if errors.Is(err, context.Canceled) {
		err = nil
	}
	if runErr == nil {
		runErr = p.failure()
	}
	if runErr != nil {
		return runErr
	}

	e.log.Info("Playback finished: %s", pathA)
	for _, sink := range sinks {
		if sink.Count() > 0 {
			e.log.Info("Wrote %d frames to %s", sink.Count(), sink.Path(0))
		}
	}
	return err
}
