// Package presenter turns decoded frame pairs into pixels: either two
// independent side-by-side surfaces or the overlay compositor.
package presenter

import (
	"fmt"
	"image"
	"image/color"

	"github.com/user/vidcompare/pkg/compositor"
	"github.com/user/vidcompare/pkg/frame"
	"github.com/user/vidcompare/pkg/playback"
	"github.com/user/vidcompare/pkg/ports"
)

// Overlay receives frame pairs for the overlay view.
type Overlay interface {
	SetFrames(left, right frame.Frame)
}

// Adapter implements playback.Presenter.
type Adapter struct {
	renderer ports.Renderer
	left     ports.Surface
	right    ports.Surface
	overlay  Overlay
	bg       color.Color
}

// New creates an adapter. left and right are the side-by-side surfaces.
func New(renderer ports.Renderer, left, right ports.Surface, overlay Overlay, bg color.Color) *Adapter {
	return &Adapter{
		renderer: renderer,
		left:     left,
		right:    right,
		overlay:  overlay,
		bg:       bg,
	}
}

// ShowSideBySide fits each frame into its own surface.
func (a *Adapter) ShowSideBySide(left, right frame.Frame) error {
	if err := a.show(left, a.left); err != nil {
		return fmt.Errorf("left: %w", err)
	}
	if err := a.show(right, a.right); err != nil {
		return fmt.Errorf("right: %w", err)
	}
	return nil
}

// ShowOverlay hands the pair to the compositor.
func (a *Adapter) ShowOverlay(left, right frame.Frame) error {
	a.overlay.SetFrames(left, right)
	return nil
}

// Fit renders f scaled to fit size, centered on the background.
func (a *Adapter) Fit(f frame.Frame, size image.Point) (image.Image, error) {
	img, err := f.RGBA()
	if err != nil {
		return nil, err
	}
	canvas := a.renderer.CreateCanvas(size.X, size.Y, a.bg)
	fit := compositor.FitSize(f.Size(), size)
	if fit.X > 0 && fit.Y > 0 {
		r := compositor.Centered(fit, size)
		canvas.DrawImage(a.renderer.ResizeImage(img, fit.X, fit.Y), r.Min.X, r.Min.Y)
	}
	return canvas.ToImage(), nil
}

func (a *Adapter) show(f frame.Frame, s ports.Surface) error {
	img, err := a.Fit(f, s.Size())
	if err != nil {
		return err
	}
	return s.Present(img)
}

var _ playback.Presenter = (*Adapter)(nil)
