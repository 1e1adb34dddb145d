// Package compositor renders two frames as a single overlay with an
// interactively draggable vertical divider.
//
// Each frame is scaled to fit the canvas independently and centered, so the
// two frames may end up with different sizes. The divider moves within the
// image area, the horizontal span of the narrower scaled frame; everything
// left of the divider shows the left frame and everything right of it shows
// the right frame.
package compositor

import (
	"fmt"
	"image"
	"image/color"

	"github.com/user/vidcompare/pkg/frame"
	"github.com/user/vidcompare/pkg/ports"
)

// Options configures divider rendering and interaction.
type Options struct {
	// InitialRatio is the divider position before any interaction.
	InitialRatio float64
	// MinRatio and MaxRatio bound the ratio reachable by dragging.
	MinRatio float64
	MaxRatio float64
	// HitTolerance is the horizontal distance in pixels within which a
	// press grabs the divider.
	HitTolerance float64
	// HandleWidth is the width of the filled divider handle in pixels.
	HandleWidth int
	LineColor   color.Color
	Background  color.Color
}

// DefaultOptions returns default options.
func DefaultOptions() Options {
	return Options{
		InitialRatio: 0.5,
		MinRatio:     0.01,
		MaxRatio:     0.99,
		HitTolerance: 10,
		HandleWidth:  5,
		LineColor:    color.White,
		Background:   color.Black,
	}
}

// Compositor is the overlay surface. It is not safe for concurrent use;
// all calls are expected on the event loop.
type Compositor struct {
	renderer ports.Renderer
	surface  ports.Surface
	log      ports.Logger
	opts     Options

	left  frame.Frame
	right frame.Frame
	ratio float64

	dragging  bool
	cursor    ports.Cursor
	observers []func(ratio float64)
}

// New creates a compositor presenting to surface.
func New(renderer ports.Renderer, surface ports.Surface, log ports.Logger, opts Options) *Compositor {
	return &Compositor{
		renderer: renderer,
		surface:  surface,
		log:      log.WithComponent("compositor"),
		opts:     opts,
		ratio:    opts.InitialRatio,
	}
}

// SetFrames stores the most recent frame pair and redraws.
// If either frame is empty the canvas is drawn blank.
func (c *Compositor) SetFrames(left, right frame.Frame) {
	c.left = left
	c.right = right
	c.log.Debug("Frames set.")
	c.Redraw()
}

// SetRatio stores the divider ratio as given and redraws.
// Clamping is up to the caller.
func (c *Compositor) SetRatio(r float64) {
	c.ratio = r
	c.Redraw()
}

// Ratio returns the current divider ratio.
func (c *Compositor) Ratio() float64 {
	return c.ratio
}

// Dragging reports whether a divider drag is in progress.
func (c *Compositor) Dragging() bool {
	return c.dragging
}

// Cursor returns the pointer shape last requested by the compositor.
func (c *Compositor) Cursor() ports.Cursor {
	return c.cursor
}

// OnRatioChanged registers fn to be called after each drag update.
func (c *Compositor) OnRatioChanged(fn func(ratio float64)) {
	c.observers = append(c.observers, fn)
}

func (c *Compositor) hasFrames() bool {
	return !c.left.Empty() && !c.right.Empty()
}

// Geometry computes the layout for the current surface size and frames.
func (c *Compositor) Geometry() (Geometry, error) {
	if !c.hasFrames() {
		return Geometry{}, ErrEmptyGeometry
	}
	return ComputeGeometry(c.surface.Size(), c.left.Size(), c.right.Size())
}

// Render draws the overlay into a new image. Without a frame pair the
// result is a blank canvas.
func (c *Compositor) Render() (image.Image, error) {
	size := c.surface.Size()
	canvas := c.renderer.CreateCanvas(size.X, size.Y, c.opts.Background)
	if !c.hasFrames() {
		return canvas.ToImage(), nil
	}

	g, err := c.Geometry()
	if err != nil {
		return nil, err
	}

	leftImg, err := c.scaled(c.left, g.Left)
	if err != nil {
		return nil, fmt.Errorf("left frame: %w", err)
	}
	rightImg, err := c.scaled(c.right, g.Right)
	if err != nil {
		return nil, fmt.Errorf("right frame: %w", err)
	}

	split := g.SplitX(c.ratio)
	canvas.DrawImageClipped(leftImg, g.Left.Min.X, g.Left.Min.Y, image.Rect(0, 0, split, size.Y))
	canvas.DrawImageClipped(rightImg, g.Right.Min.X, g.Right.Min.Y, image.Rect(split, 0, size.X, size.Y))

	canvas.DrawLine(split, 0, split, size.Y, c.opts.LineColor, 1)
	hw := c.opts.HandleWidth
	canvas.DrawRect(split-hw/2, 0, hw, size.Y, c.opts.LineColor)

	return canvas.ToImage(), nil
}

func (c *Compositor) scaled(f frame.Frame, dst image.Rectangle) (image.Image, error) {
	img, err := f.RGBA()
	if err != nil {
		return nil, err
	}
	return c.renderer.ResizeImage(img, dst.Dx(), dst.Dy()), nil
}

// Redraw renders and presents the overlay. A failed render is logged and
// nothing is presented for this cycle.
func (c *Compositor) Redraw() {
	defer func() {
		if r := recover(); r != nil {
			c.log.Error("Error converting frames: %v", r)
		}
	}()

	img, err := c.Render()
	if err != nil {
		c.log.Error("Error converting frames: %v", err)
		return
	}
	if err := c.surface.Present(img); err != nil {
		c.log.Error("Failed to present overlay: %v", err)
	}
}

// HandlePointer processes a pointer event and reports whether the
// compositor consumed it.
func (c *Compositor) HandlePointer(ev ports.PointerEvent) bool {
	switch ev.Kind {
	case ports.InputPress:
		return c.press(ev.X)
	case ports.InputMove:
		if c.dragging {
			return c.drag(ev.X)
		}
		c.hover(ev.X)
		return false
	case ports.InputRelease:
		was := c.dragging
		c.dragging = false
		c.cursor = ports.CursorDefault
		return was
	}
	return false
}

func (c *Compositor) press(x float64) bool {
	c.dragging = false
	g, err := c.Geometry()
	if err != nil {
		if c.hasFrames() {
			c.log.Error("Error during press scaling: %v", err)
		}
		return false
	}
	if !g.NearSplit(x, c.ratio, c.opts.HitTolerance) {
		return false
	}
	c.dragging = true
	c.cursor = ports.CursorResizeHorizontal
	return true
}

func (c *Compositor) drag(x float64) bool {
	// The surface may have been resized since the press.
	g, err := c.Geometry()
	if err != nil {
		c.log.Error("Error during drag scaling: %v", err)
		return false
	}

	c.ratio = g.RatioAt(x, c.opts.MinRatio, c.opts.MaxRatio)
	c.Redraw()
	for _, fn := range c.observers {
		fn(c.ratio)
	}
	return true
}

func (c *Compositor) hover(x float64) {
	g, err := c.Geometry()
	if err != nil {
		c.cursor = ports.CursorDefault
		return
	}
	if g.NearSplit(x, c.ratio, c.opts.HitTolerance) {
		c.cursor = ports.CursorResizeHorizontal
	} else {
		c.cursor = ports.CursorDefault
	}
}
