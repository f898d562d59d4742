package compare

// ChartCoords is a point position in normalized percentage space,
// ready for the rendering layer.
type ChartCoords struct {
	XPercent float64 `json:"xPercent"`
	YPercent float64 `json:"yPercent"`
}

// coordMargin keeps points visibly inside the chart: coordinates are
// clamped to [coordMargin, 100-coordMargin].
const coordMargin = 5

// MapToChart normalizes a point into [0,100] percentage space within
// the given bounds. Y is inverted, since the chart origin is top-left
// while the semantic origin is bottom-left. Degenerate (single-value)
// ranges map through a denominator of 1 instead of dividing by zero.
func MapToChart(point ComparisonPoint, bounds ChartBounds) ChartCoords {
	dx := bounds.MaxX - bounds.MinX
	if dx == 0 {
		dx = 1
	}
	dy := bounds.MaxY - bounds.MinY
	if dy == 0 {
		dy = 1
	}

	xPercent := (point.X - bounds.MinX) / dx * 100
	yPercent := 100 - (point.Y-bounds.MinY)/dy*100

	return ChartCoords{
		XPercent: clampPercent(xPercent),
		YPercent: clampPercent(yPercent),
	}
}

func clampPercent(v float64) float64 {
	if v < coordMargin {
		return coordMargin
	}
	if v > 100-coordMargin {
		return 100 - coordMargin
	}
	return v
}
