package stroke

import "MathBoard/internal/geom"

// Size is the side of the square candidates and templates are scaled into.
const Size = 200.0

// ScaleToSquare scales points uniformly, relative to their bounding box's min
// corner, so the larger box dimension becomes size. A single point (zero
// width and height) is scaled by 1.
func ScaleToSquare(points []geom.Point, size float64) []geom.Point {
	box := geom.BoundingBox(points)
	scale := box.MaxDim()
	if scale == 0 {
		scale = 1
	}
	out := make([]geom.Point, len(points))
	for i, p := range points {
		out[i] = geom.Point{
			X: (p.X - box.MinX) / scale * size,
			Y: (p.Y - box.MinY) / scale * size,
		}
	}
	return out
}

// TranslateToOrigin moves points so their centroid sits at the origin.
func TranslateToOrigin(points []geom.Point) []geom.Point {
	c := geom.Centroid(points)
	out := make([]geom.Point, len(points))
	for i, p := range points {
		out[i] = geom.Point{X: p.X - c.X, Y: p.Y - c.Y}
	}
	return out
}

// Normalize scales points into the Size square and then centres them. The
// order matters: the centroid is taken from the scaled points.
func Normalize(points []geom.Point) []geom.Point {
	return TranslateToOrigin(ScaleToSquare(points, Size))
}

// Process resamples and normalizes points. Templates and candidates both go
// through here so their distances are comparable.
func Process(points []geom.Point) []geom.Point {
	return Normalize(Resample(points, N))
}
