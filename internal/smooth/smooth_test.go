package smooth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"MathBoard/internal/geom"
)

func TestSmooth_Empty(t *testing.T) {
	assert.Equal(t, Path{}, Smooth(nil))
}

func TestSmooth_SinglePoint(t *testing.T) {
	p := Smooth([]geom.Point{{X: 3, Y: 4}})
	assert.Equal(t, geom.Point{X: 3, Y: 4}, p.Start)
	assert.Empty(t, p.Segments)
}

func TestSmooth_TwoPointsIsLine(t *testing.T) {
	p := Smooth([]geom.Point{{X: 0, Y: 0}, {X: 10, Y: 5}})
	require.Len(t, p.Segments, 1)
	assert.Equal(t, Segment{Kind: Line, End: geom.Point{X: 10, Y: 5}}, p.Segments[0])
}

func TestSmooth_ThreePoints(t *testing.T) {
	p := Smooth([]geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}})
	assert.Equal(t, geom.Point{X: 0, Y: 0}, p.Start)
	require.Len(t, p.Segments, 1)
	assert.Equal(t, Segment{
		Kind: Cubic,
		C1:   geom.Point{X: 5, Y: 0},
		C2:   geom.Point{X: 10, Y: 0},
		End:  geom.Point{X: 10, Y: 5},
	}, p.Segments[0])
}

func TestSmooth_SegmentCount(t *testing.T) {
	for n := 3; n < 20; n++ {
		pts := make([]geom.Point, n)
		for i := range pts {
			pts[i] = geom.Point{X: float64(i), Y: float64(i * i)}
		}
		p := Smooth(pts)
		assert.Len(t, p.Segments, n-2, "n=%d", n)
		for _, s := range p.Segments {
			assert.Equal(t, Cubic, s.Kind)
		}
	}
}

func TestSmooth_DoesNotModifyInput(t *testing.T) {
	pts := []geom.Point{{X: 0, Y: 0}, {X: 4, Y: 4}, {X: 8, Y: 0}, {X: 12, Y: 4}}
	before := append([]geom.Point(nil), pts...)
	Smooth(pts)
	assert.Equal(t, before, pts)
}

func TestFlatten(t *testing.T) {
	p := Smooth([]geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}})
	poly := Flatten(p, 4)
	require.Len(t, poly, 5)
	assert.Equal(t, geom.Point{X: 0, Y: 0}, poly[0])
	assert.InDelta(t, 10.0, poly[4].X, 1e-12)
	assert.InDelta(t, 5.0, poly[4].Y, 1e-12)

	lines := Flatten(Smooth([]geom.Point{{X: 0, Y: 0}, {X: 1, Y: 1}}), 4)
	assert.Equal(t, []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 1}}, lines)

	assert.Len(t, Flatten(p, 0), 2)
}
