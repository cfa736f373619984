// Package geom holds the small amount of plane geometry the recognizer and
// renderers share.
package geom

import "math"

// Point is a position in canvas space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func Distance(p, q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Mid returns the point halfway between p and q.
func Mid(p, q Point) Point {
	return Point{X: (p.X + q.X) / 2, Y: (p.Y + q.Y) / 2}
}

// PathLength is the sum of the distances between consecutive points.
func PathLength(points []Point) float64 {
	d := 0.0
	for i := 1; i < len(points); i++ {
		d += Distance(points[i-1], points[i])
	}
	return d
}

// Centroid returns the arithmetic mean of points. It panics on an empty slice.
func Centroid(points []Point) Point {
	if len(points) == 0 {
		panic("geom: centroid of empty point set")
	}
	var x, y float64
	for _, p := range points {
		x += p.X
		y += p.Y
	}
	n := float64(len(points))
	return Point{X: x / n, Y: y / n}
}
