package stroke

import (
	"fmt"
	"math"
	"sync"

	"MathBoard/internal/geom"
)

// Digits is the number of templates, one per decimal digit.
const Digits = 10

// Template is a processed reference shape for one digit.
type Template struct {
	Digit  int
	Points []geom.Point
}

var templates = sync.OnceValue(func() []Template {
	out := make([]Template, Digits)
	for d := range Digits {
		out[d] = Template{Digit: d, Points: Process(RawTemplate(d))}
	}
	return out
})

// Templates returns the processed digit templates, built on first use and
// shared for the life of the process. Callers must not modify the result.
func Templates() []Template {
	return templates()
}

// RawTemplate returns the unprocessed parametric path for digit d, drawn in
// a 0-200 region. The shapes only need to look like digits.
func RawTemplate(d int) []geom.Point {
	switch d {
	case 0:
		return arc(100, 100, 50, 0, 2*math.Pi, 0.3, false)
	case 1:
		return vline(100, 30, 170)
	case 2:
		var pts []geom.Point
		pts = append(pts, hline(40, 160, 40)...)
		pts = append(pts, sweep(func(t float64) geom.Point {
			return geom.Point{X: 160 - t*120, Y: 40 + t*80}
		})...)
		return append(pts, slope(40, 160, 120)...)
	case 3:
		var pts []geom.Point
		pts = append(pts, sweep(func(t float64) geom.Point {
			return geom.Point{X: 40 + t*120, Y: 50 + math.Sin(t*math.Pi)*20}
		})...)
		return append(pts, sweep(func(t float64) geom.Point {
			return geom.Point{X: 40 + t*120, Y: 120 + math.Sin(t*math.Pi)*20}
		})...)
	case 4:
		var pts []geom.Point
		for y := 40.0; y <= 120; y += 3 {
			pts = append(pts, geom.Point{X: 140 - (y-40)*0.5, Y: y})
		}
		pts = append(pts, hline(40, 140, 120)...)
		return append(pts, vline(90, 40, 160)...)
	case 5:
		var pts []geom.Point
		for x := 160.0; x >= 40; x -= 3 {
			pts = append(pts, geom.Point{X: x, Y: 40})
		}
		pts = append(pts, sweep(func(t float64) geom.Point {
			return geom.Point{X: 40 + t*120, Y: 40 + t*80}
		})...)
		return append(pts, slope(40, 160, 120)...)
	case 6:
		return arc(120, 100, 40, math.Pi, 3*math.Pi, 0.3, true)
	case 7:
		pts := hline(40, 160, 40)
		return append(pts, sweep(func(t float64) geom.Point {
			return geom.Point{X: 160 - t*120, Y: 40 + t*120}
		})...)
	case 8:
		pts := arc(120, 80, 30, 0, 2*math.Pi, 0.25, true)
		return append(pts, arc(120, 140, 30, 0, 2*math.Pi, 0.25, true)...)
	case 9:
		pts := arc(120, 80, 30, -math.Pi, math.Pi, 0.25, true)
		return append(pts, vline(120, 80, 160)...)
	default:
		panic(fmt.Sprintf("stroke: no template for digit %d", d))
	}
}

// arc samples a circle of radius r around (cx, cy) from angle from to angle
// to. closed includes the end angle.
func arc(cx, cy, r, from, to, step float64, closed bool) []geom.Point {
	var pts []geom.Point
	for a := from; a < to || (closed && a <= to); a += step {
		pts = append(pts, geom.Point{X: math.Cos(a)*r + cx, Y: math.Sin(a)*r + cy})
	}
	return pts
}

func hline(x0, x1, y float64) []geom.Point {
	var pts []geom.Point
	for x := x0; x <= x1; x += 3 {
		pts = append(pts, geom.Point{X: x, Y: y})
	}
	return pts
}

func vline(x, y0, y1 float64) []geom.Point {
	var pts []geom.Point
	for y := y0; y <= y1; y += 3 {
		pts = append(pts, geom.Point{X: x, Y: y})
	}
	return pts
}

// slope is the rising base stroke shared by 2 and 5.
func slope(x0, x1, y float64) []geom.Point {
	var pts []geom.Point
	for x := x0; x <= x1; x += 3 {
		pts = append(pts, geom.Point{X: x, Y: y + (x-x0)*0.4})
	}
	return pts
}

// sweep samples f over t in [0, 1].
func sweep(f func(t float64) geom.Point) []geom.Point {
	var pts []geom.Point
	for t := 0.0; t <= 1; t += 0.03 {
		pts = append(pts, f(t))
	}
	return pts
}
