package formulas

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMean(t *testing.T) {
	assert.Equal(t, 0.0, Mean(nil))
	assert.InDelta(t, 5.0, Mean([]float64{5, 5, 5}), 1e-9)
	assert.InDelta(t, 2.5, Mean([]float64{1, 2, 3, 4}), 1e-9)
}

func TestStdDev(t *testing.T) {
	assert.Equal(t, 0.0, StdDev(nil))
	assert.Equal(t, 0.0, StdDev([]float64{7}), "single point has no spread")
	assert.InDelta(t, 0.0, StdDev([]float64{5, 5, 5, 5}), 1e-9)
	// Sample std dev of 2,4,4,4,5,5,7,9 is ~2.138
	assert.InDelta(t, 2.138, StdDev([]float64{2, 4, 4, 4, 5, 5, 7, 9}), 0.001)
}

func TestMovingAverage(t *testing.T) {
	series := []float64{1, 2, 3, 4, 5}

	sma := MovingAverage(series, 3)
	require.Len(t, sma, 3)
	assert.InDelta(t, 2.0, sma[0], 1e-9)
	assert.InDelta(t, 3.0, sma[1], 1e-9)
	assert.InDelta(t, 4.0, sma[2], 1e-9)

	assert.Nil(t, MovingAverage(series, 6), "series shorter than period")
	assert.Nil(t, MovingAverage(series, 0))
	assert.Equal(t, series, MovingAverage(series, 1))
	assert.InDelta(t, 4.0, LastMovingAverage(series, 3), 1e-9)
	assert.Equal(t, 0.0, LastMovingAverage(series, 10))
}

func TestSafeDivide(t *testing.T) {
	assert.Equal(t, 0.0, SafeDivide(10, 0))
	assert.Equal(t, 2.5, SafeDivide(5, 2))
	assert.Equal(t, 0.0, SafeDivide(math.Inf(1), 1))
}

func TestClampAndRound(t *testing.T) {
	assert.Equal(t, 10.0, Clamp(12, 0, 10))
	assert.Equal(t, 0.0, Clamp(-3, 0, 10))
	assert.Equal(t, 4.2, Clamp(4.2, 0, 10))

	assert.Equal(t, 7.3, Round(7.25, 1))
	assert.Equal(t, -7.3, Round(-7.25, 1))
	assert.Equal(t, 1.01, Round(1.005000001, 2))
}

func TestFinite(t *testing.T) {
	assert.Equal(t, 0.0, Finite(math.NaN()))
	assert.Equal(t, 0.0, Finite(math.Inf(-1)))
	assert.Equal(t, 3.0, Finite(3))
}

func TestCalculateDrawdown(t *testing.T) {
	assert.Nil(t, CalculateDrawdown(nil))

	// +100, -50, -80, +200 -> curve 100, 50, -30, 170
	curve := CumulativeSum([]float64{100, -50, -80, 200})
	assert.Equal(t, []float64{100, 50, -30, 170}, curve)

	dd := CalculateDrawdown(curve)
	require.NotNil(t, dd)
	assert.InDelta(t, 130.0, dd.MaxDrawdown, 1e-9)
	assert.InDelta(t, 0.0, dd.CurrentDrawdown, 1e-9)
	assert.Equal(t, 0, dd.PeriodsInDrawdown)
	assert.InDelta(t, 170.0, dd.Peak, 1e-9)
}

func TestCalculateDrawdown_FirstTradeLoss(t *testing.T) {
	dd := CalculateDrawdown(CumulativeSum([]float64{-40, -10}))
	require.NotNil(t, dd)
	assert.InDelta(t, 50.0, dd.MaxDrawdown, 1e-9)
	assert.InDelta(t, 50.0, dd.CurrentDrawdown, 1e-9)
	assert.Equal(t, 2, dd.PeriodsInDrawdown)
}
