// Package smooth turns raw stroke polylines into chains of cubic curves for
// display. It is purely cosmetic; recognition always works on raw points.
package smooth

import "MathBoard/internal/geom"

type Kind int

const (
	Line Kind = iota
	Cubic
)

// Segment continues a path from the previous segment's end point. C1 and C2
// are only meaningful for Cubic segments.
type Segment struct {
	Kind Kind
	C1   geom.Point
	C2   geom.Point
	End  geom.Point
}

// Path is a start point followed by connected segments.
type Path struct {
	Start    geom.Point
	Segments []Segment
}

// Smooth builds the display path for a stroke. Strokes with fewer than three
// points are drawn as straight lines. Longer strokes use a midpoint
// approximation of Catmull-Rom: for every interior point p the generated
// sequence holds mid(prev, p), p, mid(p, next), and the sequence is consumed
// three at a time as control-1, control-2 and end point.
func Smooth(points []geom.Point) Path {
	if len(points) == 0 {
		return Path{}
	}
	p := Path{Start: points[0]}
	if len(points) < 3 {
		for _, q := range points[1:] {
			p.Segments = append(p.Segments, Segment{Kind: Line, End: q})
		}
		return p
	}

	seq := controlSequence(points)
	for i := 1; i+2 < len(seq); i += 3 {
		p.Segments = append(p.Segments, Segment{
			Kind: Cubic,
			C1:   seq[i],
			C2:   seq[i+1],
			End:  seq[i+2],
		})
	}
	return p
}

func controlSequence(points []geom.Point) []geom.Point {
	seq := make([]geom.Point, 0, 3*len(points)-4)
	seq = append(seq, points[0])
	for i := 0; i < len(points)-2; i++ {
		p0, p1, p2 := points[i], points[i+1], points[i+2]
		seq = append(seq, geom.Mid(p0, p1), p1, geom.Mid(p1, p2))
	}
	return append(seq, points[len(points)-1])
}
