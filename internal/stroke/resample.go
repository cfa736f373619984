// Package stroke recognises single-stroke digits with a simplified $1
// unistroke recogniser: resample, normalise, compare against templates by
// index-wise distance. There is no rotation search.
//
// https://depts.washington.edu/acelab/proj/dollar/dollar.pdf
package stroke

import "MathBoard/internal/geom"

// N is the number of points every candidate and template is resampled to.
const N = 64

// Resample returns exactly n points spaced at equal arc-length intervals
// along points. points must be non-empty and n at least 2. The input slice is
// not modified.
func Resample(points []geom.Point, n int) []geom.Point {
	if len(points) == 0 {
		panic("stroke: resample of empty point set")
	}
	if n < 2 {
		panic("stroke: resample count must be at least 2")
	}

	L := geom.PathLength(points)
	if L == 0 {
		out := make([]geom.Point, n)
		for i := range out {
			out[i] = points[0]
		}
		return out
	}

	I := L / float64(n-1)
	D := 0.0
	pts := append([]geom.Point(nil), points...)
	out := make([]geom.Point, 1, n)
	out[0] = pts[0]

	for i := 1; i < len(pts); i++ {
		d := geom.Distance(pts[i-1], pts[i])
		if D+d >= I {
			t := (I - D) / d
			q := geom.Point{
				X: pts[i-1].X + t*(pts[i].X-pts[i-1].X),
				Y: pts[i-1].Y + t*(pts[i].Y-pts[i-1].Y),
			}
			out = append(out, q)
			// q becomes the anchor the next interval is measured from.
			pts = append(pts[:i], append([]geom.Point{q}, pts[i:]...)...)
			D = 0
		} else {
			D += d
		}
	}

	for len(out) < n {
		out = append(out, pts[len(pts)-1])
	}
	return out[:n]
}
