package stroke

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"MathBoard/internal/geom"
)

func TestNormalize_LargerDimensionIsSize(t *testing.T) {
	inputs := [][]geom.Point{
		{{X: 0, Y: 0}, {X: 50, Y: 10}},
		{{X: 300, Y: 300}, {X: 310, Y: 900}, {X: 320, Y: 305}},
		{{X: 5, Y: 5}, {X: 5, Y: 60}},
		{{X: -40, Y: 2}, {X: 80, Y: 2}},
		zigzag(25),
		RawTemplate(4),
	}
	for i, pts := range inputs {
		box := geom.BoundingBox(Normalize(pts))
		assert.InDelta(t, Size, box.MaxDim(), 1e-9, "input %d", i)
	}
}

func TestNormalize_PreservesAspectRatio(t *testing.T) {
	box := geom.BoundingBox(Normalize([]geom.Point{{X: 10, Y: 10}, {X: 110, Y: 60}}))
	assert.InDelta(t, 200.0, box.Width(), 1e-9)
	assert.InDelta(t, 100.0, box.Height(), 1e-9)
}

func TestNormalize_CentroidAtOrigin(t *testing.T) {
	c := geom.Centroid(Normalize(zigzag(40)))
	assert.InDelta(t, 0.0, c.X, 1e-9)
	assert.InDelta(t, 0.0, c.Y, 1e-9)
}

func TestNormalize_SinglePoint(t *testing.T) {
	got := Normalize([]geom.Point{{X: 42, Y: -17}})
	require.Len(t, got, 1)
	assert.Equal(t, geom.Point{}, got[0])
}

func TestScaleToSquare_UsesMinCorner(t *testing.T) {
	got := ScaleToSquare([]geom.Point{{X: 100, Y: 100}, {X: 150, Y: 100}}, Size)
	assert.Equal(t, []geom.Point{{X: 0, Y: 0}, {X: 200, Y: 0}}, got)
}

func TestScaleToSquare_DegenerateUsesUnitScale(t *testing.T) {
	got := ScaleToSquare([]geom.Point{{X: 3, Y: 3}, {X: 3, Y: 3}}, Size)
	assert.Equal(t, []geom.Point{{X: 0, Y: 0}, {X: 0, Y: 0}}, got)
}
