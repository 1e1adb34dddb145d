// Package frame defines the decoded video frame exchanged between frame
// sources, the playback controller and the presentation layer.
package frame

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
)

// BytesPerPixel is the number of interleaved color channels per pixel.
const BytesPerPixel = 3

var (
	// ErrInvalidFrame is returned when a frame has no pixels or a short buffer.
	ErrInvalidFrame = errors.New("frame: invalid frame")

	// ErrTooNarrow is returned when a frame is too narrow to be split in two.
	ErrTooNarrow = errors.New("frame: width too small to split")
)

// Frame is a decoded RGB24 bitmap. Pixels are stored row by row with
// interleaved R, G, B channels and a stride of 3*Width bytes.
type Frame struct {
	Width  int
	Height int
	Pix    []byte
}

// New allocates a black frame of the given size.
func New(width, height int) Frame {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return Frame{
		Width:  width,
		Height: height,
		Pix:    make([]byte, width*height*BytesPerPixel),
	}
}

// Stride returns the number of bytes per row.
func (f Frame) Stride() int {
	return f.Width * BytesPerPixel
}

// Size returns the frame dimensions.
func (f Frame) Size() image.Point {
	return image.Point{X: f.Width, Y: f.Height}
}

// Empty reports whether the frame carries no pixel data.
func (f Frame) Empty() bool {
	return f.Width <= 0 || f.Height <= 0 || len(f.Pix) == 0
}

// Validate checks that the buffer matches the declared dimensions.
func (f Frame) Validate() error {
	if f.Width <= 0 || f.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalidFrame, f.Width, f.Height)
	}
	if want := f.Stride() * f.Height; len(f.Pix) < want {
		return fmt.Errorf("%w: %d bytes, want %d", ErrInvalidFrame, len(f.Pix), want)
	}
	return nil
}

// Crop copies the column range [x0, x1) into a new frame.
func (f Frame) Crop(x0, x1 int) Frame {
	if x0 < 0 {
		x0 = 0
	}
	if x1 > f.Width {
		x1 = f.Width
	}
	if x1 <= x0 {
		return Frame{Height: f.Height}
	}

	out := New(x1-x0, f.Height)
	stride := f.Stride()
	for y := 0; y < f.Height; y++ {
		src := f.Pix[y*stride+x0*BytesPerPixel : y*stride+x1*BytesPerPixel]
		copy(out.Pix[y*out.Stride():], src)
	}
	return out
}

// Split bisects the frame vertically into a left half [0, w/2) and a
// right half [w/2, w). Odd widths give the extra column to the right half.
func (f Frame) Split() (left, right Frame, err error) {
	if err := f.Validate(); err != nil {
		return Frame{}, Frame{}, err
	}
	if f.Width < 2 {
		return Frame{}, Frame{}, ErrTooNarrow
	}
	half := f.Width / 2
	return f.Crop(0, half), f.Crop(half, f.Width), nil
}

// RGBA converts the frame into an opaque *image.RGBA.
func (f Frame) RGBA() (*image.RGBA, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	stride := f.Stride()
	for y := 0; y < f.Height; y++ {
		src := f.Pix[y*stride : y*stride+stride]
		dst := img.Pix[y*img.Stride : y*img.Stride+f.Width*4]
		for x := 0; x < f.Width; x++ {
			dst[x*4] = src[x*3]
			dst[x*4+1] = src[x*3+1]
			dst[x*4+2] = src[x*3+2]
			dst[x*4+3] = 255
		}
	}
	return img, nil
}

// FromImage converts any image into an RGB24 frame, dropping alpha.
func FromImage(img image.Image) Frame {
	b := img.Bounds()
	rgba, ok := img.(*image.RGBA)
	if !ok || rgba.Rect.Min != (image.Point{}) {
		rgba = image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	}

	out := New(b.Dx(), b.Dy())
	for y := 0; y < out.Height; y++ {
		src := rgba.Pix[y*rgba.Stride:]
		dst := out.Pix[y*out.Stride():]
		for x := 0; x < out.Width; x++ {
			dst[x*3] = src[x*4]
			dst[x*3+1] = src[x*4+1]
			dst[x*3+2] = src[x*4+2]
		}
	}
	return out
}

// Fill paints every pixel with the given color.
func (f Frame) Fill(r, g, b byte) {
	for i := 0; i+2 < len(f.Pix); i += BytesPerPixel {
		f.Pix[i] = r
		f.Pix[i+1] = g
		f.Pix[i+2] = b
	}
}

// At returns the channels of the pixel at (x, y).
func (f Frame) At(x, y int) (r, g, b byte) {
	i := y*f.Stride() + x*BytesPerPixel
	return f.Pix[i], f.Pix[i+1], f.Pix[i+2]
}
