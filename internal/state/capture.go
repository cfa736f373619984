package state

import (
	"time"

	"github.com/google/uuid"

	"MathBoard/internal/geom"
)

// DefaultMinDistance is the gap a pointer sample must exceed, from the last
// kept sample, to be added to the stroke in progress.
const DefaultMinDistance = 1.0

// Capture accumulates one stroke between pointer-down and pointer-up.
type Capture struct {
	MinDistance float64

	active bool
	id     uuid.UUID
	points []geom.Point
	color  string
	width  float64
	erase  bool
}

func NewCapture(minDistance float64) *Capture {
	return &Capture{MinDistance: minDistance}
}

// Begin starts a new stroke at p, discarding any stroke in progress.
func (c *Capture) Begin(p geom.Point, color string, width float64, erase bool) {
	c.active = true
	c.id = uuid.New()
	c.points = []geom.Point{p}
	c.color = color
	c.width = width
	c.erase = erase
}

// Add appends p if it is far enough from the last kept point. It reports
// whether p was kept.
func (c *Capture) Add(p geom.Point) bool {
	if !c.active {
		return false
	}
	if n := len(c.points); n > 0 && geom.Distance(c.points[n-1], p) <= c.MinDistance {
		return false
	}
	c.points = append(c.points, p)
	return true
}

func (c *Capture) Active() bool { return c.active }

// ID is the identity the stroke in progress will have once committed.
func (c *Capture) ID() uuid.UUID { return c.id }

// Points returns the stroke in progress for live drawing.
func (c *Capture) Points() []geom.Point { return c.points }

// Erase reports whether the stroke in progress is an eraser stroke.
func (c *Capture) Erase() bool { return c.erase }

// Style returns the colour and width of the stroke in progress.
func (c *Capture) Style() (string, float64) { return c.color, c.width }

// End finalises the stroke in progress. It returns nil when nothing was
// being captured.
func (c *Capture) End() *Stroke {
	if !c.active {
		return nil
	}
	c.active = false
	pts := c.points
	c.points = nil
	if len(pts) == 0 {
		return nil
	}
	return &Stroke{
		ID:     c.id,
		Points: pts,
		Color:  c.color,
		Width:  c.width,
		Erase:  c.erase,
		Time:   time.Now(),
	}
}
