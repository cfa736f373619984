package export

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jung-kurt/gofpdf"

	"MathBoard/internal/geom"
	"MathBoard/internal/smooth"
	"MathBoard/internal/state"
)

const (
	pageWidth  = 297.0 // A4 landscape, mm
	pageHeight = 210.0
	pageMargin = 10.0
)

// PDF writes es to w as a single landscape A4 page, scaled to fit.
func PDF(w io.Writer, es []state.Entity) error {
	p := gofpdf.New("L", "mm", "A4", "")
	p.SetLineCapStyle("round")
	p.SetLineJoinStyle("round")
	p.SetFont("Times", "", 12)
	p.AddPage()

	fit := fitTo(es, pageWidth-2*pageMargin, pageHeight-2*pageMargin)
	fit.offX += pageMargin
	fit.offY += pageMargin

	for _, e := range es {
		switch v := e.(type) {
		case *state.Stroke:
			pdfStroke(p, fit, v)
		case *state.Glyph:
			pdfGlyph(p, fit, v)
		}
	}

	if err := p.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

func pdfStroke(p *gofpdf.Fpdf, fit transform, s *state.Stroke) {
	c := InkColor(s)
	p.SetDrawColor(int(c.R), int(c.G), int(c.B))
	p.SetLineWidth(max(s.Width*fit.scale, 0.1))

	path := smooth.Smooth(s.Points)
	start := fit.apply(path.Start)
	p.MoveTo(start.X, start.Y)
	if len(path.Segments) == 0 {
		// A lone point still leaves a dot.
		p.LineTo(start.X, start.Y)
	}
	for _, seg := range path.Segments {
		end := fit.apply(seg.End)
		switch seg.Kind {
		case smooth.Line:
			p.LineTo(end.X, end.Y)
		case smooth.Cubic:
			c1, c2 := fit.apply(seg.C1), fit.apply(seg.C2)
			p.CurveBezierCubicTo(c1.X, c1.Y, c2.X, c2.Y, end.X, end.Y)
		}
	}
	p.DrawPath("D")
}

func pdfGlyph(p *gofpdf.Fpdf, fit transform, g *state.Glyph) {
	c := state.ParseColor(state.GlyphColor)
	p.SetTextColor(int(c.R), int(c.G), int(c.B))

	size := GlyphSize(g.Box) * fit.scale
	p.SetFontUnitSize(size)
	txt := strconv.Itoa(g.Digit)
	center := fit.apply(g.Box.Center())
	// Text places the baseline; half the cap height lifts it to the middle.
	p.Text(center.X-p.GetStringWidth(txt)/2, center.Y+size*0.35, txt)
}

// transform maps board coordinates onto an output surface.
type transform struct {
	scale      float64
	offX, offY float64
}

func (t transform) apply(p geom.Point) geom.Point {
	return geom.Point{X: p.X*t.scale + t.offX, Y: p.Y*t.scale + t.offY}
}

// fitTo scales the extent of es uniformly into a w by h box, never
// enlarging it.
func fitTo(es []state.Entity, w, h float64) transform {
	if len(es) == 0 {
		return transform{scale: 1}
	}
	box := extent(es)
	scale := 1.0
	if box.Width() > 0 {
		scale = min(scale, w/box.Width())
	}
	if box.Height() > 0 {
		scale = min(scale, h/box.Height())
	}
	return transform{scale: scale, offX: -box.MinX * scale, offY: -box.MinY * scale}
}

// extent is the union of the entity boxes, padded by half of the widest
// stroke.
func extent(es []state.Entity) geom.Rect {
	box := es[0].Bounds()
	pad := 0.0
	for _, e := range es {
		b := e.Bounds()
		box.MinX = min(box.MinX, b.MinX)
		box.MinY = min(box.MinY, b.MinY)
		box.MaxX = max(box.MaxX, b.MaxX)
		box.MaxY = max(box.MaxY, b.MaxY)
		if s, ok := e.(*state.Stroke); ok {
			pad = max(pad, s.Width/2)
		}
	}
	box.MinX -= pad
	box.MinY -= pad
	box.MaxX += pad
	box.MaxY += pad
	return box
}
