package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"MathBoard/internal/geom"
)

func TestCapture_FiltersClosePoints(t *testing.T) {
	c := NewCapture(DefaultMinDistance)
	c.Begin(geom.Point{X: 0, Y: 0}, "blue", 4, false)
	id := c.ID()

	assert.False(t, c.Add(geom.Point{X: 0.5, Y: 0.5}))
	assert.False(t, c.Add(geom.Point{X: 1, Y: 0}))
	assert.True(t, c.Add(geom.Point{X: 1.5, Y: 0}))
	assert.False(t, c.Add(geom.Point{X: 2, Y: 0.1}))
	assert.True(t, c.Add(geom.Point{X: 5, Y: 0}))

	s := c.End()
	require.NotNil(t, s)
	assert.Equal(t, []geom.Point{{X: 0, Y: 0}, {X: 1.5, Y: 0}, {X: 5, Y: 0}}, s.Points)
	assert.Equal(t, id, s.ID)
	assert.Equal(t, "blue", s.Color)
	assert.Equal(t, 4.0, s.Width)
	assert.False(t, s.Erase)
	assert.False(t, c.Active())
}

func TestCapture_AddWithoutBegin(t *testing.T) {
	c := NewCapture(DefaultMinDistance)
	assert.False(t, c.Add(geom.Point{X: 10, Y: 10}))
	assert.Nil(t, c.End())
}

func TestCapture_BeginDiscardsPrevious(t *testing.T) {
	c := NewCapture(DefaultMinDistance)
	c.Begin(geom.Point{}, "black", 6, false)
	c.Add(geom.Point{X: 10})
	c.Begin(geom.Point{X: 50}, "black", 20, true)

	s := c.End()
	require.NotNil(t, s)
	assert.Equal(t, []geom.Point{{X: 50}}, s.Points)
	assert.True(t, s.Erase)
}
