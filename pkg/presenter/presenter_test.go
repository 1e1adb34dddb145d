package presenter

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/vidcompare/pkg/adapters/ggrenderer"
	"github.com/user/vidcompare/pkg/frame"
	"github.com/user/vidcompare/pkg/mocks"
)

type overlayRecorder struct {
	pairs int
	left  frame.Frame
}

func (o *overlayRecorder) SetFrames(left, right frame.Frame) {
	o.pairs++
	o.left = left
}

func solid(w, h int, r, g, b byte) frame.Frame {
	f := frame.New(w, h)
	f.Fill(r, g, b)
	return f
}

func TestShowSideBySide_FitsAndCenters(t *testing.T) {
	left := mocks.NewSurface(100, 100)
	right := mocks.NewSurface(100, 100)
	a := New(ggrenderer.New(), left, right, &overlayRecorder{}, color.Black)

	require.NoError(t, a.ShowSideBySide(solid(20, 10, 255, 0, 0), solid(10, 20, 0, 0, 255)))

	l := left.Last()
	require.NotNil(t, l)
	assert.Equal(t, image.Rect(0, 0, 100, 100), l.Bounds())
	// 20x10 fits as 100x50 at y=25.
	r, _, _, _ := l.At(50, 50).RGBA()
	assert.Equal(t, uint32(0xffff), r)
	r, _, _, _ = l.At(50, 10).RGBA()
	assert.Equal(t, uint32(0), r)

	rimg := right.Last()
	require.NotNil(t, rimg)
	// 10x20 fits as 50x100 at x=25.
	_, _, b, _ := rimg.At(50, 50).RGBA()
	assert.Equal(t, uint32(0xffff), b)
	_, _, b, _ = rimg.At(10, 50).RGBA()
	assert.Equal(t, uint32(0), b)
}

func TestShowOverlay_Forwards(t *testing.T) {
	o := &overlayRecorder{}
	a := New(&mocks.Renderer{}, mocks.NewSurface(1, 1), mocks.NewSurface(1, 1), o, color.Black)

	require.NoError(t, a.ShowOverlay(solid(4, 4, 1, 1, 1), solid(4, 4, 2, 2, 2)))

	assert.Equal(t, 1, o.pairs)
	assert.Equal(t, 4, o.left.Width)
}

func TestShowSideBySide_Errors(t *testing.T) {
	left := mocks.NewSurface(10, 10)
	right := mocks.NewSurface(10, 10)
	right.PresentErr = errors.New("closed")
	a := New(&mocks.Renderer{}, left, right, &overlayRecorder{}, color.Black)

	err := a.ShowSideBySide(solid(4, 4, 0, 0, 0), solid(4, 4, 0, 0, 0))
	assert.ErrorContains(t, err, "right")

	err = a.ShowSideBySide(frame.Frame{Width: 4, Height: 4}, solid(4, 4, 0, 0, 0))
	assert.ErrorIs(t, err, frame.ErrInvalidFrame)
}
