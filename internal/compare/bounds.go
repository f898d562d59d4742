package compare

import (
	"math"
	"sort"
)

// ChartBounds is the plotting envelope of the compare chart. The
// medians split the chart into the four quadrants.
type ChartBounds struct {
	MinX    float64 `json:"minX"`
	MaxX    float64 `json:"maxX"`
	MinY    float64 `json:"minY"`
	MaxY    float64 `json:"maxY"`
	MedianX float64 `json:"medianX"`
	MedianY float64 `json:"medianY"`
}

// boundsPadding widens the envelope so edge points do not sit exactly
// on the chart border.
const boundsPadding = 0.15

// fallbackBounds is handed out for empty or fully degenerate input,
// so the renderer never sees NaN.
var fallbackBounds = ChartBounds{
	MinX:    0,
	MaxX:    10000,
	MinY:    0,
	MaxY:    1000,
	MedianX: 5000,
	MedianY: 500,
}

// CalculateBounds derives a numerically safe envelope from the given
// points. Non-finite values are ignored; distances cannot be negative,
// so the padded minimum is floored at 0.
func CalculateBounds(points []ComparisonPoint) ChartBounds {
	var xs, ys []float64
	for _, p := range points {
		if isFinite(p.X) {
			xs = append(xs, p.X)
		}
		if isFinite(p.Y) {
			ys = append(ys, p.Y)
		}
	}

	if len(xs) == 0 || len(ys) == 0 {
		return fallbackBounds
	}

	sort.Float64s(xs)
	sort.Float64s(ys)

	return ChartBounds{
		MinX:    math.Max(0, xs[0]*(1-boundsPadding)),
		MaxX:    xs[len(xs)-1] * (1 + boundsPadding),
		MinY:    math.Max(0, ys[0]*(1-boundsPadding)),
		MaxY:    ys[len(ys)-1] * (1 + boundsPadding),
		MedianX: median(xs),
		MedianY: median(ys),
	}
}

// median of pre-sorted values: the element at the floor of half the
// length (no averaging of the two middle elements for even lengths).
func median(sorted []float64) float64 {
	return sorted[len(sorted)/2]
}
