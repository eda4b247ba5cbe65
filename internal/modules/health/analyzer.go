// Package health analyzes workouts and generates fitness recommendations.
package health

import (
	"sort"
	"strings"
	"time"

	"github.com/eaglepython/eagle-sub001/internal/domain"
	"github.com/eaglepython/eagle-sub001/pkg/formulas"
)

// Thresholds holds the fitness targets and rule breakpoints
type Thresholds struct {
	WeeklyTarget       int      `yaml:"weekly_target"`
	MaxIdleDays        int      `yaml:"max_idle_days"`
	HighIntensity      float64  `yaml:"high_intensity"`
	HighIntensityMin   int      `yaml:"high_intensity_min_workouts"`
	LowIntensity       float64  `yaml:"low_intensity"`
	StrengthMinSamples int      `yaml:"strength_min_workouts"`
	StrengthTypes      []string `yaml:"strength_types"` // Lower-case substrings that mark strength work
}

// DefaultThresholds returns the built-in fitness thresholds
func DefaultThresholds() Thresholds {
	return Thresholds{
		WeeklyTarget:       6,
		MaxIdleDays:        3,
		HighIntensity:      8,
		HighIntensityMin:   5,
		LowIntensity:       4,
		StrengthMinSamples: 4,
		StrengthTypes:      []string{"strength", "weights", "lifting", "resistance"},
	}
}

// TypeStats aggregates workouts of one type
type TypeStats struct {
	Type          string  `json:"type"`
	Count         int     `json:"count"`
	TotalMinutes  float64 `json:"totalMinutes"`
	AvgIntensity  float64 `json:"avgIntensity"`
	LastPerformed string  `json:"lastPerformed"`
}

// Analysis is the derived view of the workout collection
type Analysis struct {
	TotalWorkouts    int                `json:"totalWorkouts"`
	ThisWeek         int                `json:"thisWeek"`
	Last28           int                `json:"last28"`
	WeeklyAverage    float64            `json:"weeklyAverage"`
	MinutesThisWeek  float64            `json:"minutesThisWeek"`
	AverageDuration  float64            `json:"averageDuration"`
	AverageIntensity float64            `json:"averageIntensity"` // Over the last 28 days
	StrengthLast28   int                `json:"strengthLast28"`
	DaysSinceLast    int                `json:"daysSinceLast"`
	ByType           []TypeStats        `json:"byType"`
	Consistency      domain.Consistency `json:"consistency"`
	Status           domain.Status      `json:"status"`
	Target           int                `json:"target"`
}

// Analyzer computes fitness analyses and recommendations
type Analyzer struct {
	th Thresholds
}

// New creates a fitness analyzer
func New(th Thresholds) *Analyzer {
	return &Analyzer{th: th}
}

// Analyze derives training statistics from every workout
func (a *Analyzer) Analyze(records []domain.Workout, now time.Time) *Analysis {
	sorted := domain.SortByDate(records, func(r domain.Workout) string { return r.Date })
	if len(sorted) == 0 {
		return nil
	}

	an := &Analysis{
		TotalWorkouts: len(sorted),
		Target:        a.th.WeeklyTarget,
	}

	var durations, intensities28 []float64
	types := map[string]*TypeStats{}
	typeIntensity := map[string][]float64{}
	lastDay := time.Time{}

	for _, d := range sorted {
		w := d.Record
		durations = append(durations, w.DurationMinutes)

		if domain.InWindow(d.Day, now, 7) {
			an.ThisWeek++
			an.MinutesThisWeek += w.DurationMinutes
		}
		if domain.InWindow(d.Day, now, 28) {
			an.Last28++
			intensities28 = append(intensities28, w.Intensity)
			if a.isStrength(w.Type) {
				an.StrengthLast28++
			}
		}
		if domain.DaysAgo(d.Day, now) >= 0 {
			lastDay = d.Day
		}

		ts, ok := types[w.Type]
		if !ok {
			ts = &TypeStats{Type: w.Type}
			types[w.Type] = ts
		}
		ts.Count++
		ts.TotalMinutes += w.DurationMinutes
		ts.LastPerformed = domain.FormatDate(d.Day)
		typeIntensity[w.Type] = append(typeIntensity[w.Type], w.Intensity)
	}

	for name, ts := range types {
		ts.AvgIntensity = formulas.Round(formulas.Mean(typeIntensity[name]), 2)
		an.ByType = append(an.ByType, *ts)
	}
	sort.Slice(an.ByType, func(i, j int) bool {
		if an.ByType[i].Count != an.ByType[j].Count {
			return an.ByType[i].Count > an.ByType[j].Count
		}
		return an.ByType[i].Type < an.ByType[j].Type
	})

	if lastDay.IsZero() {
		an.DaysSinceLast = -1
	} else {
		an.DaysSinceLast = domain.DaysAgo(lastDay, now)
	}

	an.WeeklyAverage = formulas.Round(float64(an.Last28)/4, 2)
	an.AverageDuration = formulas.Round(formulas.Mean(durations), 1)
	an.AverageIntensity = formulas.Round(formulas.Mean(intensities28), 2)
	an.Consistency = domain.ClassifyConsistency(domain.Days(sorted), now)
	an.Status = domain.StatusFromRatio(float64(an.ThisWeek), float64(a.th.WeeklyTarget))
	return an
}

func (a *Analyzer) isStrength(workoutType string) bool {
	t := strings.ToLower(workoutType)
	for _, marker := range a.th.StrengthTypes {
		if strings.Contains(t, marker) {
			return true
		}
	}
	return false
}
