// Package ggrenderer provides a renderer implementation using the gg library.
package ggrenderer

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"

	"github.com/fogleman/gg"
	"golang.org/x/image/draw"

	"github.com/user/vidcompare/pkg/ports"
)

// Renderer implements ports.Renderer using the gg library.
type Renderer struct {
	scaler draw.Scaler
}

// New creates a Renderer scaling with bilinear interpolation, which keeps
// up with interactive frame rates.
func New() *Renderer {
	return &Renderer{scaler: draw.ApproxBiLinear}
}

// NewSmooth creates a Renderer scaling with Catmull-Rom interpolation,
// for still snapshots.
func NewSmooth() *Renderer {
	return &Renderer{scaler: draw.CatmullRom}
}

// CreateCanvas creates a new drawing canvas.
func (r *Renderer) CreateCanvas(width, height int, bg color.Color) ports.Canvas {
	dc := gg.NewContext(max(width, 1), max(height, 1))
	dc.SetColor(bg)
	dc.Clear()
	return &Canvas{dc: dc}
}

// EncodePNG encodes an image as PNG.
func (r *Renderer) EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode PNG: %w", err)
	}
	return buf.Bytes(), nil
}

// ResizeImage resizes an image to the specified dimensions.
func (r *Renderer) ResizeImage(img image.Image, width, height int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	if width > 0 && height > 0 {
		r.scaler.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	}
	return dst
}

// Ensure Renderer implements ports.Renderer
var _ ports.Renderer = (*Renderer)(nil)

// Canvas implements ports.Canvas using gg.Context.
type Canvas struct {
	dc *gg.Context
}

// DrawImage draws an image at the specified position.
func (c *Canvas) DrawImage(img image.Image, x, y int) {
	c.dc.DrawImage(img, x, y)
}

// DrawImageClipped draws an image at the specified position, limited to clip.
func (c *Canvas) DrawImageClipped(img image.Image, x, y int, clip image.Rectangle) {
	if clip.Empty() {
		return
	}
	c.dc.Push()
	defer c.dc.Pop()

	c.dc.DrawRectangle(float64(clip.Min.X), float64(clip.Min.Y), float64(clip.Dx()), float64(clip.Dy()))
	c.dc.Clip()
	c.dc.DrawImage(img, x, y)
	c.dc.ResetClip()
}

// DrawRect draws a filled rectangle.
func (c *Canvas) DrawRect(x, y, w, h int, col color.Color) {
	c.dc.SetColor(col)
	c.dc.DrawRectangle(float64(x), float64(y), float64(w), float64(h))
	c.dc.Fill()
}

// DrawLine draws a line between two points.
func (c *Canvas) DrawLine(x1, y1, x2, y2 int, col color.Color, width float64) {
	c.dc.SetColor(col)
	c.dc.SetLineWidth(width)
	// Offset by half a pixel so one-pixel lines cover exactly one column.
	c.dc.DrawLine(float64(x1)+0.5, float64(y1), float64(x2)+0.5, float64(y2))
	c.dc.Stroke()
}

// ToImage returns the canvas as an image.Image.
func (c *Canvas) ToImage() image.Image {
	return c.dc.Image()
}

// Ensure Canvas implements ports.Canvas
var _ ports.Canvas = (*Canvas)(nil)
