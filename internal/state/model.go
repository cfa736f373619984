package state

import (
	"time"

	"github.com/google/uuid"

	"MathBoard/internal/geom"
)

// GlyphColor is the ink used for recognised digits, whatever the pen colour.
const GlyphColor = "#111827"

// Entity is one drawable item on the board: a *Stroke or a *Glyph. Entities
// are immutable once they are on the board.
type Entity interface {
	EntityID() uuid.UUID
	Bounds() geom.Rect
	isEntity()
}

// Stroke is a raw pen or eraser gesture in capture order.
type Stroke struct {
	ID     uuid.UUID    `json:"id"`
	Points []geom.Point `json:"points"`
	Color  string       `json:"color"`
	Width  float64      `json:"width"`
	Erase  bool         `json:"erase,omitempty"`
	Time   time.Time    `json:"time"`
}

// Glyph is a recognised digit that took the place of the stroke StrokeID.
type Glyph struct {
	ID       uuid.UUID `json:"id"`
	Digit    int       `json:"digit"`
	Box      geom.Rect `json:"box"`
	Score    float64   `json:"score"`
	StrokeID uuid.UUID `json:"stroke_id"`
}

// NewStroke returns a stroke with a fresh identity.
func NewStroke(points []geom.Point, color string, width float64, erase bool) *Stroke {
	return &Stroke{
		ID:     uuid.New(),
		Points: points,
		Color:  color,
		Width:  width,
		Erase:  erase,
		Time:   time.Now(),
	}
}

// NewGlyph returns the glyph that replaces s.
func NewGlyph(s *Stroke, digit int, score float64) *Glyph {
	return &Glyph{
		ID:       uuid.New(),
		Digit:    digit,
		Box:      s.Bounds(),
		Score:    score,
		StrokeID: s.ID,
	}
}

func (s *Stroke) EntityID() uuid.UUID { return s.ID }
func (s *Stroke) isEntity()           {}

// Bounds panics on a stroke with no points; the board never holds one.
func (s *Stroke) Bounds() geom.Rect { return geom.BoundingBox(s.Points) }

func (g *Glyph) EntityID() uuid.UUID { return g.ID }
func (g *Glyph) Bounds() geom.Rect   { return g.Box }
func (g *Glyph) isEntity()           {}
