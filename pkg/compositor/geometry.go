package compositor

import (
	"errors"
	"image"
)

// ErrEmptyGeometry is returned when the canvas or a frame has no area.
var ErrEmptyGeometry = errors.New("compositor: empty canvas or frame")

// FitSize scales src to fit inside bounds while keeping its aspect ratio.
// One dimension always matches bounds exactly.
func FitSize(src, bounds image.Point) image.Point {
	if src.X <= 0 || src.Y <= 0 || bounds.X <= 0 || bounds.Y <= 0 {
		return image.Point{}
	}
	w := bounds.Y * src.X / src.Y
	if w <= bounds.X {
		return image.Point{X: w, Y: bounds.Y}
	}
	return image.Point{X: bounds.X, Y: bounds.X * src.Y / src.X}
}

// Centered returns a rectangle of the given size centered in canvas.
func Centered(size, canvas image.Point) image.Rectangle {
	x := (canvas.X - size.X) / 2
	y := (canvas.Y - size.Y) / 2
	return image.Rect(x, y, x+size.X, y+size.Y)
}

// Geometry is the overlay layout for one canvas size and frame pair.
type Geometry struct {
	Canvas image.Point

	// Left and Right are the independently scaled and centered frames.
	Left  image.Rectangle
	Right image.Rectangle

	// AreaX and AreaWidth bound the span the divider moves within: the
	// narrower of the two scaled frames, centered on the canvas.
	AreaX     int
	AreaWidth int
}

// ComputeGeometry lays out two frames of the given native sizes on canvas.
func ComputeGeometry(canvas, leftSize, rightSize image.Point) (Geometry, error) {
	l := FitSize(leftSize, canvas)
	r := FitSize(rightSize, canvas)
	if l.X == 0 || r.X == 0 {
		return Geometry{}, ErrEmptyGeometry
	}

	area := min(l.X, r.X)
	return Geometry{
		Canvas:    canvas,
		Left:      Centered(l, canvas),
		Right:     Centered(r, canvas),
		AreaX:     (canvas.X - area) / 2,
		AreaWidth: area,
	}, nil
}

// SplitX returns the canvas column of the divider for ratio.
// For ratio in [0, 1] the result lies in [AreaX, AreaX+AreaWidth].
func (g Geometry) SplitX(ratio float64) int {
	return g.AreaX + int(ratio*float64(g.AreaWidth))
}

// RatioAt converts a pointer column into a ratio clamped to [lo, hi].
func (g Geometry) RatioAt(x, lo, hi float64) float64 {
	if g.AreaWidth <= 0 {
		return lo
	}
	r := (x - float64(g.AreaX)) / float64(g.AreaWidth)
	if r < lo {
		return lo
	}
	if r > hi {
		return hi
	}
	return r
}

// NearSplit reports whether x is within tolerance pixels of the divider.
func (g Geometry) NearSplit(x, ratio, tolerance float64) bool {
	d := x - float64(g.SplitX(ratio))
	if d < 0 {
		d = -d
	}
	return d <= tolerance
}
