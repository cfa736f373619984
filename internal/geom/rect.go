package geom

// Rect is an axis-aligned box. Width or height may be zero for a straight
// horizontal or vertical stroke, or for a single point.
type Rect struct {
	MinX float64 `json:"min_x"`
	MinY float64 `json:"min_y"`
	MaxX float64 `json:"max_x"`
	MaxY float64 `json:"max_y"`
}

func (r Rect) Width() float64  { return r.MaxX - r.MinX }
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// MaxDim returns the larger of width and height.
func (r Rect) MaxDim() float64 {
	return max(r.Width(), r.Height())
}

// Center returns the middle of the box.
func (r Rect) Center() Point {
	return Point{X: r.MinX + r.Width()/2, Y: r.MinY + r.Height()/2}
}

// BoundingBox returns the smallest Rect containing points. It panics on an
// empty slice.
func BoundingBox(points []Point) Rect {
	if len(points) == 0 {
		panic("geom: bounding box of empty point set")
	}
	r := Rect{MinX: points[0].X, MinY: points[0].Y, MaxX: points[0].X, MaxY: points[0].Y}
	for _, p := range points[1:] {
		if p.X < r.MinX {
			r.MinX = p.X
		}
		if p.Y < r.MinY {
			r.MinY = p.Y
		}
		if p.X > r.MaxX {
			r.MaxX = p.X
		}
		if p.Y > r.MaxY {
			r.MaxY = p.Y
		}
	}
	return r
}
