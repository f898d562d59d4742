package compare_test

import (
	"math"
	"testing"

	"github.com/2beens/squadstats/internal/compare"

	"github.com/stretchr/testify/assert"
)

func TestCalculateBounds_EmptyInput(t *testing.T) {
	bounds := compare.CalculateBounds(nil)
	assert.Equal(t, float64(0), bounds.MinX)
	assert.Equal(t, float64(10000), bounds.MaxX)
	assert.Equal(t, float64(0), bounds.MinY)
	assert.Equal(t, float64(1000), bounds.MaxY)
	assert.Equal(t, float64(5000), bounds.MedianX)
	assert.Equal(t, float64(500), bounds.MedianY)
}

func TestCalculateBounds_AllNonFinite(t *testing.T) {
	points := []compare.ComparisonPoint{
		{X: math.NaN(), Y: math.NaN()},
		{X: math.Inf(1), Y: math.Inf(-1)},
	}
	bounds := compare.CalculateBounds(points)
	assert.Equal(t, float64(10000), bounds.MaxX)
	assert.Equal(t, float64(1000), bounds.MaxY)
}

func TestCalculateBounds_TwoPoints(t *testing.T) {
	points := []compare.ComparisonPoint{
		{X: 100, Y: 10},
		{X: 300, Y: 30},
	}
	bounds := compare.CalculateBounds(points)

	// 15% padding, floored at 0
	assert.InDelta(t, 85, bounds.MinX, 0.0001)
	assert.InDelta(t, 345, bounds.MaxX, 0.0001)
	assert.InDelta(t, 8.5, bounds.MinY, 0.0001)
	assert.InDelta(t, 34.5, bounds.MaxY, 0.0001)

	// median of an even-length input is the element at the floor of
	// half the length, no averaging
	assert.Equal(t, float64(300), bounds.MedianX)
	assert.Equal(t, float64(30), bounds.MedianY)
}

func TestCalculateBounds_MedianOddLength(t *testing.T) {
	points := []compare.ComparisonPoint{
		{X: 500, Y: 50},
		{X: 100, Y: 10},
		{X: 300, Y: 30},
	}
	bounds := compare.CalculateBounds(points)
	assert.Equal(t, float64(300), bounds.MedianX)
	assert.Equal(t, float64(30), bounds.MedianY)
}

func TestCalculateBounds_MinFlooredAtZero(t *testing.T) {
	// distances cannot be negative: padding never pushes min below 0
	points := []compare.ComparisonPoint{
		{X: 0, Y: 0},
		{X: 100, Y: 10},
	}
	bounds := compare.CalculateBounds(points)
	assert.Equal(t, float64(0), bounds.MinX)
	assert.Equal(t, float64(0), bounds.MinY)
}

func TestCalculateBounds_NonFiniteValuesIgnored(t *testing.T) {
	points := []compare.ComparisonPoint{
		{X: 100, Y: 10},
		{X: math.NaN(), Y: math.Inf(1)},
		{X: 300, Y: 30},
	}
	bounds := compare.CalculateBounds(points)
	assert.InDelta(t, 345, bounds.MaxX, 0.0001)
	assert.InDelta(t, 34.5, bounds.MaxY, 0.0001)
}
