package stroke

import (
	"math"

	"MathBoard/internal/geom"
)

// Default guard and acceptance values, in canvas units for MinSize and in
// the Size-normalized space for Threshold.
const (
	DefaultMinPoints = 10
	DefaultMinSize   = 15.0
	DefaultThreshold = 15.0
)

// Result is the best template match for a stroke. Score is the average
// pointwise distance to the template; lower is better.
type Result struct {
	Digit int     `json:"digit"`
	Score float64 `json:"score"`
}

// Recognizer matches raw strokes against the digit templates.
type Recognizer struct {
	// MinPoints is the fewest raw points a stroke may have to be considered.
	MinPoints int
	// MinSize is the smallest larger bounding-box dimension considered.
	MinSize float64
	// Threshold is the score a match must stay below to be accepted.
	Threshold float64
}

// NewRecognizer returns a Recognizer with the default guards.
func NewRecognizer() *Recognizer {
	return &Recognizer{
		MinPoints: DefaultMinPoints,
		MinSize:   DefaultMinSize,
		Threshold: DefaultThreshold,
	}
}

// Recognize classifies a committed raw stroke. ok is false when the stroke is
// too short or too small to be a deliberate digit, or when no template is
// close enough.
func (r *Recognizer) Recognize(points []geom.Point) (res Result, ok bool) {
	if len(points) < r.MinPoints {
		return Result{}, false
	}
	if geom.BoundingBox(points).MaxDim() < r.MinSize {
		return Result{}, false
	}
	res = r.Classify(points)
	if res.Score >= r.Threshold {
		return res, false
	}
	return res, true
}

// Classify returns the nearest template without applying any guard or
// threshold. points must be non-empty.
func (r *Recognizer) Classify(points []geom.Point) Result {
	candidate := Process(points)
	best := Result{Digit: -1, Score: math.Inf(1)}
	for _, t := range Templates() {
		if d := PathDistance(candidate, t.Points); d < best.Score {
			best = Result{Digit: t.Digit, Score: d}
		}
	}
	return best
}

// PathDistance is the mean distance between points at equal indices of a and
// b, which must have the same length. There is no correspondence search.
func PathDistance(a, b []geom.Point) float64 {
	d := 0.0
	for i := range a {
		d += geom.Distance(a[i], b[i])
	}
	return d / float64(len(a))
}
