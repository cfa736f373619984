// Package export renders a board to PDF, PNG or a plain text summary.
package export

import (
	"image/color"

	"MathBoard/internal/geom"
	"MathBoard/internal/state"
)

// Background is the paper colour. Eraser strokes are painted with it.
var Background = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

// InkColor is the colour s is painted with.
func InkColor(s *state.Stroke) color.NRGBA {
	if s.Erase {
		return Background
	}
	return state.ParseColor(s.Color)
}

// GlyphSize is the font size, in board units, for a glyph filling box. A
// recognised "1" has almost no width, so the taller side decides.
func GlyphSize(box geom.Rect) float64 {
	return max(box.MaxDim()*0.9, 12)
}
