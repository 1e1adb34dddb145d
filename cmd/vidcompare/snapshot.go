package main

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"

	"github.com/user/vidcompare/pkg/adapters/ggrenderer"
	"github.com/user/vidcompare/pkg/adapters/nullsink"
	"github.com/user/vidcompare/pkg/adapters/osfilesystem"
	"github.com/user/vidcompare/pkg/juxtapose"
)

var errNoFrame = errors.New("no frame was displayed")

func snapshotCommand() *cli.Command {
	return &cli.Command{
		Name:      "snapshot",
		Usage:     l10n.T("Seek to a position and save the displayed comparison as PNG"),
		ArgsUsage: "VIDEO1 [VIDEO2]",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "at", Usage: l10n.T("Position in milliseconds")},
			&cli.BoolFlag{Name: "overlay", Usage: l10n.T("Show both videos in one frame split by a divider")},
			&cli.Float64Flag{Name: "ratio", Value: 0.5, Usage: l10n.T("Divider position as a fraction of the frame width")},
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Required: true, Usage: l10n.T("Output PNG file path (required)")},
		},
		Action: runSnapshot,
	}
}

func runSnapshot(c *cli.Context) error {
	pathA, pathB, err := videoArgs(c)
	if err != nil {
		return err
	}

	e, err := newEnv(c)
	if err != nil {
		return err
	}
	defer e.Close()

	renderer := ggrenderer.NewSmooth()
	left := nullsink.New(sideSize(e.cfg))
	right := nullsink.New(sideSize(e.cfg))
	ov := nullsink.New(overlaySize(e.cfg))

	p := newPlayer(e, renderer, surfaces{left: left, right: right, overlay: ov})
	defer p.ctrl.Shutdown()

	overlay := c.Bool("overlay")
	if err := p.open(pathA, pathB, overlay); err != nil {
		return err
	}
	if c.IsSet("ratio") {
		p.dragDivider(clampRatio(c.Float64("ratio"), e.cfg))
	}

	// Seeks go through the indicator so the position is clamped to the
	// seekable range.
	p.ctrl.Indicator().SetValue(c.Int("at"))
	if err := p.failure(); err != nil {
		return err
	}

	output := c.String("output")
	fs := osfilesystem.New()
	if overlay {
		img := ov.Last()
		if img == nil {
			return errNoFrame
		}
		data, err := renderer.EncodePNG(img)
		if err != nil {
			return fmt.Errorf("encode overlay image: %w", err)
		}
		if dir := filepath.Dir(output); dir != "." {
			if err := fs.MkdirAll(dir); err != nil {
				return fmt.Errorf("create directory: %w", err)
			}
		}
		if err := fs.WriteFile(output, data); err != nil {
			return fmt.Errorf("write %s: %w", output, err)
		}
	} else {
		if left.Last() == nil || right.Last() == nil {
			return errNoFrame
		}
		opts := juxtapose.Options{Gap: e.cfg.Gap, Background: e.cfg.Background()}
		if err := juxtapose.WritePNG(fs, renderer, output, left.Last(), right.Last(), opts); err != nil {
			return err
		}
	}

	e.log.Info("Snapshot at %d ms saved to %s", p.ctrl.Indicator().Value(), output)
	return nil
}
