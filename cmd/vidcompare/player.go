package main

import (
	"errors"
	"image"

	"github.com/user/vidcompare/pkg/adapters/dialog"
	"github.com/user/vidcompare/pkg/adapters/ffmpegsource"
	"github.com/user/vidcompare/pkg/adapters/mediaprobe"
	"github.com/user/vidcompare/pkg/adapters/tickscheduler"
	"github.com/user/vidcompare/pkg/compositor"
	"github.com/user/vidcompare/pkg/config"
	"github.com/user/vidcompare/pkg/eventloop"
	"github.com/user/vidcompare/pkg/playback"
	"github.com/user/vidcompare/pkg/ports"
	"github.com/user/vidcompare/pkg/presenter"
)

// surfaces are the three display targets of a player.
type surfaces struct {
	left, right, overlay ports.Surface
}

// sideSize and overlaySize split the configured canvas the way the
// side-by-side page lays out its two labels.
func sideSize(cfg config.Config) image.Point {
	return image.Pt((cfg.CanvasWidth-cfg.Gap)/2, cfg.CanvasHeight)
}

func overlaySize(cfg config.Config) image.Point {
	return image.Pt(cfg.CanvasWidth, cfg.CanvasHeight)
}

// player is a fully wired comparison player.
type player struct {
	loop     *eventloop.Loop
	ctrl     *playback.Controller
	comp     *compositor.Compositor
	notifier *dialog.Notifier
}

func newPlayer(e *env, renderer ports.Renderer, s surfaces) *player {
	prober := mediaprobe.New(e.cfg.FFprobePath, e.log)
	opener := ffmpegsource.NewOpener(e.cfg.FFmpegPath, prober, e.log)

	loop := eventloop.New(64)
	comp := compositor.New(renderer, s.overlay, e.log, e.cfg.CompositorOptions())
	pres := presenter.New(renderer, s.left, s.right, comp, e.cfg.Background())
	notifier := dialog.New(e.log)
	ctrl := playback.New(opener, tickscheduler.New(loop), pres, notifier, e.log)
	comp.OnRatioChanged(ctrl.DividerChanged)

	return &player{loop: loop, ctrl: ctrl, comp: comp, notifier: notifier}
}

// open loads the videos and selects the view. An error dialog raised while
// loading counts as failure even when Load itself succeeded.
func (p *player) open(pathA, pathB string, overlay bool) error {
	if err := p.ctrl.Load(pathA, pathB); err != nil {
		return err
	}
	if err := p.failure(); err != nil {
		return err
	}
	if overlay {
		return p.ctrl.SetView(playback.ViewOverlay)
	}
	return nil
}

// dragDivider moves the overlay divider to ratio with a press, move and
// release on the divider, as a pointer would. Without overlay frames the
// ratio is stored as given.
func (p *player) dragDivider(ratio float64) {
	g, err := p.comp.Geometry()
	if err != nil {
		p.comp.SetRatio(ratio)
		return
	}
	from := float64(g.SplitX(p.comp.Ratio()))
	to := float64(g.AreaX) + ratio*float64(g.AreaWidth)
	p.comp.HandlePointer(ports.PointerEvent{Kind: ports.InputPress, X: from})
	p.comp.HandlePointer(ports.PointerEvent{Kind: ports.InputMove, X: to})
	p.comp.HandlePointer(ports.PointerEvent{Kind: ports.InputRelease, X: to})
}

// failure returns the latest error dialog as an error.
func (p *player) failure() error {
	if m, ok := p.notifier.Last(); ok && m.Error {
		return errors.New(m.Text)
	}
	return nil
}
