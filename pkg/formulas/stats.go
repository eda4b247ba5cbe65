// Package formulas holds the small numeric helpers used by the analyzers.
// Every helper is total: empty or degenerate input yields 0 (or nil for
// series), never NaN or Inf.
package formulas

import (
	"math"

	"github.com/markcheno/go-talib"
	"gonum.org/v1/gonum/stat"
)

// Mean calculates the arithmetic mean of a slice of float64 values
func Mean(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	return stat.Mean(data, nil)
}

// StdDev calculates the sample standard deviation of a slice of float64 values.
// Fewer than two points have no spread and return 0.
func StdDev(data []float64) float64 {
	if len(data) < 2 {
		return 0
	}
	return Finite(stat.StdDev(data, nil))
}

// Sum adds up a slice of float64 values
func Sum(data []float64) float64 {
	total := 0.0
	for _, v := range data {
		total += v
	}
	return total
}

// MovingAverage returns the simple moving average series of the input.
// Only fully-formed windows are returned, so the result has
// len(series)-period+1 points. Returns nil when the series is shorter than period.
func MovingAverage(series []float64, period int) []float64 {
	if period <= 0 || len(series) < period {
		return nil
	}
	if period == 1 {
		out := make([]float64, len(series))
		copy(out, series)
		return out
	}

	sma := talib.Sma(series, period)
	if len(sma) < period {
		return nil
	}
	return sma[period-1:]
}

// LastMovingAverage returns the most recent simple moving average value, or 0
func LastMovingAverage(series []float64, period int) float64 {
	sma := MovingAverage(series, period)
	if len(sma) == 0 {
		return 0
	}
	return Finite(sma[len(sma)-1])
}

// SafeDivide returns numerator/denominator, or 0 when the denominator is 0
// or the result is not finite
func SafeDivide(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}
	return Finite(numerator / denominator)
}

// Clamp limits value to [lo, hi]
func Clamp(value, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, value))
}

// Round rounds value half away from zero to the given number of decimal places
func Round(value float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.Round(value*factor) / factor
}

// Finite replaces NaN and ±Inf with 0
func Finite(value float64) float64 {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0
	}
	return value
}
