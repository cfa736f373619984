package stroke

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"MathBoard/internal/geom"
)

func zigzag(n int) []geom.Point {
	pts := make([]geom.Point, n)
	for i := range pts {
		pts[i] = geom.Point{X: float64(i) * 7.3, Y: float64(i%3) * 11.1}
	}
	return pts
}

func TestResample_AlwaysExactCount(t *testing.T) {
	inputs := map[string][]geom.Point{
		"single":  {{X: 4, Y: 4}},
		"pair":    {{X: 0, Y: 0}, {X: 100, Y: 0}},
		"zigzag":  zigzag(37),
		"dense":   zigzag(500),
		"circle":  RawTemplate(0),
		"eight":   RawTemplate(8),
		"dupes":   {{X: 0, Y: 0}, {X: 0, Y: 0}, {X: 10, Y: 10}, {X: 10, Y: 10}, {X: 20, Y: 0}},
		"uneven":  {{X: 0, Y: 0}, {X: 0.001, Y: 0}, {X: 90, Y: 0}, {X: 90, Y: 0.5}, {X: 91, Y: 300}},
	}
	for name, pts := range inputs {
		for _, n := range []int{2, 3, 16, 64, 101} {
			got := Resample(pts, n)
			assert.Len(t, got, n, "%s n=%d", name, n)
		}
	}
}

func TestResample_ZeroLength(t *testing.T) {
	p := geom.Point{X: 12, Y: -3}
	got := Resample([]geom.Point{p, p, p}, N)
	require.Len(t, got, N)
	for _, q := range got {
		assert.Equal(t, p, q)
	}
}

func TestResample_EquallySpaced(t *testing.T) {
	got := Resample([]geom.Point{{X: 0, Y: 0}, {X: 30, Y: 0}, {X: 30, Y: 90}}, 5)
	require.Len(t, got, 5)

	assert.Equal(t, geom.Point{X: 0, Y: 0}, got[0])
	for i := 1; i < len(got); i++ {
		assert.InDelta(t, 30.0, geom.Distance(got[i-1], got[i]), 1e-9, "gap %d", i)
	}
	assert.InDelta(t, 30.0, got[4].X, 1e-9)
	assert.InDelta(t, 90.0, got[4].Y, 1e-9)
}

func TestResample_KeepsShape(t *testing.T) {
	got := Resample([]geom.Point{{X: 0, Y: 0}, {X: 0, Y: 140}}, N)
	for _, p := range got {
		assert.Zero(t, p.X)
		assert.False(t, math.IsNaN(p.Y))
	}
	assert.InDelta(t, 140.0, geom.PathLength(got), 1e-6)
}

func TestResample_DoesNotModifyInput(t *testing.T) {
	pts := zigzag(20)
	before := append([]geom.Point(nil), pts...)
	Resample(pts, N)
	assert.Equal(t, before, pts)
}

func TestResample_Panics(t *testing.T) {
	assert.Panics(t, func() { Resample(nil, N) })
	assert.Panics(t, func() { Resample(zigzag(4), 1) })
}
