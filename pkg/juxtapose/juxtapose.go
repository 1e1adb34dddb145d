// Package juxtapose combines two frames side by side into one image.
package juxtapose

import (
	"image"
	"image/color"
	"image/draw"
)

// Options configures the composition.
type Options struct {
	// Gap is the horizontal gap between the two frames in pixels.
	Gap int
	// Background fills the gap and the margins of the shorter frame.
	Background color.Color
}

// DefaultOptions returns default options.
func DefaultOptions() Options {
	return Options{
		Gap:        10,
		Background: color.Black,
	}
}

// Compose draws left and right next to each other, each vertically
// centered in the taller of the two.
func Compose(left, right image.Image, opts Options) *image.RGBA {
	lb := left.Bounds()
	rb := right.Bounds()
	gap := max(opts.Gap, 0)

	width := lb.Dx() + gap + rb.Dx()
	height := max(lb.Dy(), rb.Dy())
	output := image.NewRGBA(image.Rect(0, 0, width, height))

	bg := opts.Background
	if bg == nil {
		bg = color.Black
	}
	draw.Draw(output, output.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	leftY := (height - lb.Dy()) / 2
	draw.Draw(output, image.Rect(0, leftY, lb.Dx(), leftY+lb.Dy()), left, lb.Min, draw.Src)

	rightX := lb.Dx() + gap
	rightY := (height - rb.Dy()) / 2
	draw.Draw(output, image.Rect(rightX, rightY, rightX+rb.Dx(), rightY+rb.Dy()), right, rb.Min, draw.Src)

	return output
}
