package formulas

// DrawdownMetrics represents drawdown analysis of a cumulative P&L curve
type DrawdownMetrics struct {
	MaxDrawdown       float64 `json:"maxDrawdown"`       // Largest peak-to-trough fall, in currency units
	CurrentDrawdown   float64 `json:"currentDrawdown"`   // Current distance below the running peak
	PeriodsInDrawdown int     `json:"periodsInDrawdown"` // Points since the last peak
	Peak              float64 `json:"peak"`
	Current           float64 `json:"current"`
}

// CumulativeSum converts per-period results into a running total
func CumulativeSum(values []float64) []float64 {
	out := make([]float64, len(values))
	running := 0.0
	for i, v := range values {
		running += v
		out[i] = running
	}
	return out
}

// CalculateDrawdown measures drawdown on a cumulative P&L curve.
//
// The curve is assumed to start from a flat zero balance, so the running
// peak starts at 0 and a first losing trade is already a drawdown.
//
//	Drawdown = Peak - Current
//	Max Drawdown = maximum of all drawdowns
//
// Returns nil for an empty curve.
func CalculateDrawdown(curve []float64) *DrawdownMetrics {
	if len(curve) == 0 {
		return nil
	}

	peak := 0.0
	peakIndex := -1
	maxDrawdown := 0.0

	for i, value := range curve {
		if value > peak {
			peak = value
			peakIndex = i
		}
		if drawdown := peak - value; drawdown > maxDrawdown {
			maxDrawdown = drawdown
		}
	}

	current := curve[len(curve)-1]

	return &DrawdownMetrics{
		MaxDrawdown:       maxDrawdown,
		CurrentDrawdown:   peak - current,
		PeriodsInDrawdown: len(curve) - 1 - peakIndex,
		Peak:              peak,
		Current:           current,
	}
}
