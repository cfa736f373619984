package export

import (
	"fmt"
	"io"
	"strconv"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"MathBoard/internal/smooth"
	"MathBoard/internal/state"
)

var fontSource = sync.OnceValues(func() (*text.FontSource, error) {
	return text.NewFontSource(goregular.TTF)
})

// PNG rasterises es onto a width by height image in board coordinates and
// writes it to w.
func PNG(w io.Writer, es []state.Entity, width, height int) error {
	src, err := fontSource()
	if err != nil {
		return fmt.Errorf("load glyph font: %w", err)
	}

	dc := gg.NewContext(width, height)
	defer dc.Close()
	dc.ClearWithColor(gg.FromColor(Background))
	dc.SetLineCap(gg.LineCapRound)
	dc.SetLineJoin(gg.LineJoinRound)

	for _, e := range es {
		switch v := e.(type) {
		case *state.Stroke:
			if err := pngStroke(dc, v); err != nil {
				return err
			}
		case *state.Glyph:
			dc.SetFont(src.Face(GlyphSize(v.Box)))
			dc.SetColor(state.ParseColor(state.GlyphColor))
			c := v.Box.Center()
			dc.DrawStringAnchored(strconv.Itoa(v.Digit), c.X, c.Y, 0.5, 0.5)
		}
	}

	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

func pngStroke(dc *gg.Context, s *state.Stroke) error {
	dc.SetColor(InkColor(s))
	dc.SetLineWidth(s.Width)

	path := smooth.Smooth(s.Points)
	dc.MoveTo(path.Start.X, path.Start.Y)
	if len(path.Segments) == 0 {
		dc.LineTo(path.Start.X, path.Start.Y)
	}
	for _, seg := range path.Segments {
		switch seg.Kind {
		case smooth.Line:
			dc.LineTo(seg.End.X, seg.End.Y)
		case smooth.Cubic:
			dc.CubicTo(seg.C1.X, seg.C1.Y, seg.C2.X, seg.C2.Y, seg.End.X, seg.End.Y)
		}
	}
	if err := dc.Stroke(); err != nil {
		return fmt.Errorf("stroke %s: %w", s.ID, err)
	}
	return nil
}
