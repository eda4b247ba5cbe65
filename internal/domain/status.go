package domain

import "time"

// Status is a domain's standing against its target
type Status string

const (
	StatusExcellent Status = "excellent"
	StatusGood      Status = "good"
	StatusFair      Status = "fair"
	StatusWarning   Status = "warning"
	StatusCritical  Status = "critical"
	StatusNoData    Status = "no_data"
)

// Status ratio breakpoints
const (
	StatusExcellentRatio = 1.0
	StatusGoodRatio      = 0.8
	StatusFairRatio      = 0.6
	StatusWarningRatio   = 0.4
)

// StatusFromRatio maps metric/target onto a status label.
// A non-positive target cannot be met and is critical.
func StatusFromRatio(metric, target float64) Status {
	if target <= 0 {
		return StatusCritical
	}
	ratio := metric / target
	switch {
	case ratio >= StatusExcellentRatio:
		return StatusExcellent
	case ratio >= StatusGoodRatio:
		return StatusGood
	case ratio >= StatusFairRatio:
		return StatusFair
	case ratio >= StatusWarningRatio:
		return StatusWarning
	default:
		return StatusCritical
	}
}

// NeedsAttention reports whether the status makes its domain a bottleneck
func (s Status) NeedsAttention() bool {
	return s == StatusCritical || s == StatusWarning
}

// Healthy reports whether the status is good or excellent
func (s Status) Healthy() bool {
	return s == StatusExcellent || s == StatusGood
}

// Consistency classifies how regularly a domain gets logged
type Consistency string

const (
	ConsistencyHigh         Consistency = "HIGH_CONSISTENCY"
	ConsistencyModerate     Consistency = "MODERATE_CONSISTENCY"
	ConsistencyLow          Consistency = "LOW_CONSISTENCY"
	ConsistencyInsufficient Consistency = "INSUFFICIENT_DATA"
)

// Consistency breakpoints in records per week over a 4-week window
const (
	ConsistencyWindowDays   = 28
	ConsistencyHighPerWeek  = 1.5
	ConsistencyModPerWeek   = 0.75
	ConsistencyMinDataPoint = 2
)

// ClassifyConsistency compares the 4-week average weekly frequency of dates
// against fixed breakpoints. Fewer than two dated records is insufficient data.
func ClassifyConsistency(dates []time.Time, now time.Time) Consistency {
	if len(dates) < ConsistencyMinDataPoint {
		return ConsistencyInsufficient
	}
	count := 0
	for _, d := range dates {
		if InWindow(d, now, ConsistencyWindowDays) {
			count++
		}
	}
	perWeek := float64(count) / (ConsistencyWindowDays / 7)
	switch {
	case perWeek >= ConsistencyHighPerWeek:
		return ConsistencyHigh
	case perWeek >= ConsistencyModPerWeek:
		return ConsistencyModerate
	default:
		return ConsistencyLow
	}
}
