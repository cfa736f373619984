package smooth

import "MathBoard/internal/geom"

// DefaultSteps is the number of chords each cubic is split into by Flatten.
const DefaultSteps = 8

// Flatten approximates p with a polyline, evaluating every cubic segment at
// steps evenly spaced parameter values. Surfaces that can only draw straight
// lines render this.
func Flatten(p Path, steps int) []geom.Point {
	if steps < 1 {
		steps = 1
	}
	out := []geom.Point{p.Start}
	cur := p.Start
	for _, s := range p.Segments {
		switch s.Kind {
		case Line:
			out = append(out, s.End)
		case Cubic:
			for i := 1; i <= steps; i++ {
				out = append(out, cubicAt(cur, s.C1, s.C2, s.End, float64(i)/float64(steps)))
			}
		}
		cur = s.End
	}
	return out
}

func cubicAt(p0, p1, p2, p3 geom.Point, t float64) geom.Point {
	mt := 1 - t
	a := mt * mt * mt
	b := 3 * mt * mt * t
	c := 3 * mt * t * t
	d := t * t * t
	return geom.Point{
		X: a*p0.X + b*p1.X + c*p2.X + d*p3.X,
		Y: a*p0.Y + b*p1.Y + c*p2.Y + d*p3.Y,
	}
}
