package compositor

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFitSize(t *testing.T) {
	tests := []struct {
		name   string
		src    image.Point
		bounds image.Point
		want   image.Point
	}{
		{"height bound", image.Pt(200, 100), image.Pt(400, 400), image.Pt(400, 200)},
		{"width bound", image.Pt(100, 100), image.Pt(400, 200), image.Pt(200, 200)},
		{"exact", image.Pt(16, 9), image.Pt(1600, 900), image.Pt(1600, 900)},
		{"empty source", image.Pt(0, 10), image.Pt(100, 100), image.Point{}},
		{"empty bounds", image.Pt(10, 10), image.Pt(0, 100), image.Point{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FitSize(tt.src, tt.bounds))
		})
	}
}

func TestComputeGeometry_DifferentAspects(t *testing.T) {
	g, err := ComputeGeometry(image.Pt(400, 200), image.Pt(200, 100), image.Pt(100, 100))
	require.NoError(t, err)

	assert.Equal(t, image.Rect(0, 0, 400, 200), g.Left)
	assert.Equal(t, image.Rect(100, 0, 300, 200), g.Right)
	assert.Equal(t, 100, g.AreaX)
	assert.Equal(t, 200, g.AreaWidth)
	assert.Equal(t, 200, g.SplitX(0.5))
}

func TestComputeGeometry_Empty(t *testing.T) {
	_, err := ComputeGeometry(image.Pt(400, 200), image.Point{}, image.Pt(10, 10))
	assert.ErrorIs(t, err, ErrEmptyGeometry)
}

func TestSplitX_WithinImageArea(t *testing.T) {
	canvases := []image.Point{
		image.Pt(400, 225), image.Pt(1200, 700), image.Pt(401, 333), image.Pt(1, 1), image.Pt(3000, 50),
	}
	frames := [][2]image.Point{
		{image.Pt(1920, 1080), image.Pt(1920, 1080)},
		{image.Pt(1920, 1080), image.Pt(640, 480)},
		{image.Pt(320, 720), image.Pt(1280, 720)},
		{image.Pt(1, 7), image.Pt(7, 1)},
	}

	for _, canvas := range canvases {
		for _, f := range frames {
			g, err := ComputeGeometry(canvas, f[0], f[1])
			if err != nil {
				continue
			}
			for i := 0; i <= 100; i++ {
				ratio := float64(i) / 100
				x := g.SplitX(ratio)
				if x < g.AreaX || x > g.AreaX+g.AreaWidth {
					t.Fatalf("canvas %v frames %v ratio %.2f: split %d outside [%d, %d]",
						canvas, f, ratio, x, g.AreaX, g.AreaX+g.AreaWidth)
				}
			}
		}
	}
}

func TestRatioAt_Clamps(t *testing.T) {
	g := Geometry{AreaX: 100, AreaWidth: 200}

	for _, x := range []float64{-1e9, -500, 0, 100, 101, 150, 200, 299, 300, 10000, 1e12} {
		r := g.RatioAt(x, 0.01, 0.99)
		assert.GreaterOrEqual(t, r, 0.01, "x=%v", x)
		assert.LessOrEqual(t, r, 0.99, "x=%v", x)
	}
	assert.InDelta(t, 0.25, g.RatioAt(150, 0.01, 0.99), 1e-9)
}

func TestNearSplit(t *testing.T) {
	g := Geometry{AreaX: 100, AreaWidth: 200}

	assert.True(t, g.NearSplit(200, 0.5, 10))
	assert.True(t, g.NearSplit(190, 0.5, 10))
	assert.True(t, g.NearSplit(210, 0.5, 10))
	assert.False(t, g.NearSplit(211, 0.5, 10))
	assert.False(t, g.NearSplit(189, 0.5, 10))
}
