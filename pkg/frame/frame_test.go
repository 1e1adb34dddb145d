package frame

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gradient(width, height int) Frame {
	f := New(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := y*f.Stride() + x*BytesPerPixel
			f.Pix[i] = byte(x)
			f.Pix[i+1] = byte(y)
			f.Pix[i+2] = 7
		}
	}
	return f
}

func TestSplit_EvenWidth(t *testing.T) {
	f := gradient(640, 4)

	left, right, err := f.Split()
	require.NoError(t, err)

	assert.Equal(t, 320, left.Width)
	assert.Equal(t, 320, right.Width)
	assert.Equal(t, 4, left.Height)
	assert.Equal(t, 4, right.Height)

	r, _, _ := left.At(0, 0)
	assert.Equal(t, byte(0), r)
	r, _, _ = right.At(0, 0)
	assert.Equal(t, byte(320%256), r)
	_, g, _ := right.At(10, 3)
	assert.Equal(t, byte(3), g)
}

func TestSplit_OddWidth(t *testing.T) {
	left, right, err := gradient(5, 2).Split()
	require.NoError(t, err)

	assert.Equal(t, 2, left.Width)
	assert.Equal(t, 3, right.Width)
}

func TestSplit_TooNarrow(t *testing.T) {
	_, _, err := gradient(1, 10).Split()
	assert.ErrorIs(t, err, ErrTooNarrow)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		frame Frame
		ok    bool
	}{
		{"valid", New(4, 3), true},
		{"zero width", Frame{Width: 0, Height: 3}, false},
		{"short buffer", Frame{Width: 4, Height: 3, Pix: make([]byte, 10)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.frame.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidFrame)
			}
		})
	}
}

func TestRGBA(t *testing.T) {
	f := New(2, 2)
	f.Fill(10, 20, 30)

	img, err := f.RGBA()
	require.NoError(t, err)

	assert.Equal(t, image.Rect(0, 0, 2, 2), img.Bounds())
	assert.Equal(t, color.RGBA{R: 10, G: 20, B: 30, A: 255}, img.RGBAAt(1, 1))
}

func TestRGBA_Invalid(t *testing.T) {
	_, err := Frame{}.RGBA()
	assert.ErrorIs(t, err, ErrInvalidFrame)
}

func TestFromImage(t *testing.T) {
	src := image.NewNRGBA(image.Rect(5, 5, 8, 7))
	src.Set(6, 6, color.NRGBA{R: 200, G: 100, B: 50, A: 255})

	f := FromImage(src)
	assert.Equal(t, 3, f.Width)
	assert.Equal(t, 2, f.Height)

	r, g, b := f.At(1, 1)
	assert.Equal(t, []byte{200, 100, 50}, []byte{r, g, b})
}

func TestCrop_OutOfRange(t *testing.T) {
	f := gradient(4, 2)

	assert.True(t, f.Crop(3, 1).Empty())
	assert.Equal(t, 4, f.Crop(-2, 10).Width)
}
