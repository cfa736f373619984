package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	assert.InDelta(t, 5.0, Distance(Point{X: 0, Y: 0}, Point{X: 3, Y: 4}), 1e-12)
	assert.Zero(t, Distance(Point{X: 7, Y: 7}, Point{X: 7, Y: 7}))
}

func TestPathLength(t *testing.T) {
	assert.Zero(t, PathLength([]Point{{X: 1, Y: 1}}))
	assert.Zero(t, PathLength(nil))

	square := []Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}
	assert.InDelta(t, 30.0, PathLength(square), 1e-12)
}

func TestCentroid(t *testing.T) {
	c := Centroid([]Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}})
	assert.Equal(t, Point{X: 5, Y: 5}, c)

	assert.Panics(t, func() { Centroid(nil) })
}

func TestBoundingBox(t *testing.T) {
	r := BoundingBox([]Point{{X: 3, Y: 8}, {X: -2, Y: 4}, {X: 6, Y: -1}})
	assert.Equal(t, Rect{MinX: -2, MinY: -1, MaxX: 6, MaxY: 8}, r)
	assert.Equal(t, 8.0, r.Width())
	assert.Equal(t, 9.0, r.Height())
	assert.Equal(t, 9.0, r.MaxDim())
	assert.Equal(t, Point{X: 2, Y: 3.5}, r.Center())
}

func TestBoundingBox_Degenerate(t *testing.T) {
	line := BoundingBox([]Point{{X: 5, Y: 0}, {X: 5, Y: 140}})
	assert.Zero(t, line.Width())
	assert.Equal(t, 140.0, line.Height())

	dot := BoundingBox([]Point{{X: 1, Y: 2}})
	assert.Zero(t, dot.Width())
	assert.Zero(t, dot.Height())

	assert.Panics(t, func() { BoundingBox(nil) })
}

func TestMid(t *testing.T) {
	assert.Equal(t, Point{X: 1, Y: 2}, Mid(Point{X: 0, Y: 0}, Point{X: 2, Y: 4}))
}
