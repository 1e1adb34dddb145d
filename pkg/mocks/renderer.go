package mocks

import (
	"image"
	"image/color"

	"github.com/user/vidcompare/pkg/ports"
)

// Renderer is a mock implementation of ports.Renderer.
type Renderer struct {
	CreateCanvasFunc func(width, height int, bg color.Color) ports.Canvas
	EncodePNGFunc    func(img image.Image) ([]byte, error)
	ResizeImageFunc  func(img image.Image, width, height int) image.Image
}

func (m *Renderer) CreateCanvas(width, height int, bg color.Color) ports.Canvas {
	if m.CreateCanvasFunc != nil {
		return m.CreateCanvasFunc(width, height, bg)
	}
	return &Canvas{width: width, height: height}
}

func (m *Renderer) EncodePNG(img image.Image) ([]byte, error) {
	if m.EncodePNGFunc != nil {
		return m.EncodePNGFunc(img)
	}
	return []byte("png"), nil
}

func (m *Renderer) ResizeImage(img image.Image, width, height int) image.Image {
	if m.ResizeImageFunc != nil {
		return m.ResizeImageFunc(img, width, height)
	}
	return image.NewRGBA(image.Rect(0, 0, width, height))
}

var _ ports.Renderer = (*Renderer)(nil)

// DrawCall records one clipped image draw.
type DrawCall struct {
	Size image.Point
	At   image.Point
	Clip image.Rectangle
}

// Canvas is a mock implementation of ports.Canvas that records draws.
type Canvas struct {
	width  int
	height int

	Images []DrawCall
	Lines  []image.Rectangle
	Rects  []image.Rectangle
}

func (m *Canvas) DrawImage(img image.Image, x, y int) {
	m.DrawImageClipped(img, x, y, image.Rect(0, 0, m.width, m.height))
}

func (m *Canvas) DrawImageClipped(img image.Image, x, y int, clip image.Rectangle) {
	m.Images = append(m.Images, DrawCall{Size: img.Bounds().Size(), At: image.Pt(x, y), Clip: clip})
}

func (m *Canvas) DrawRect(x, y, w, h int, c color.Color) {
	m.Rects = append(m.Rects, image.Rect(x, y, x+w, y+h))
}

func (m *Canvas) DrawLine(x1, y1, x2, y2 int, c color.Color, width float64) {
	m.Lines = append(m.Lines, image.Rect(x1, y1, x2, y2))
}

func (m *Canvas) ToImage() image.Image {
	return image.NewRGBA(image.Rect(0, 0, m.width, m.height))
}

var _ ports.Canvas = (*Canvas)(nil)
