// Package discipline analyzes the end-of-day discipline log and generates the
// "Log today" and "Track hours" recommendations.
package discipline

import (
	"time"

	"github.com/eaglepython/eagle-sub001/internal/domain"
	"github.com/eaglepython/eagle-sub001/pkg/formulas"
)

// Thresholds holds the discipline targets and rule breakpoints
type Thresholds struct {
	TargetScore        float64 `yaml:"target_score"`        // Daily score the user aims for
	SlumpAverage       float64 `yaml:"slump_average"`       // 7-day average below this is a slump
	VarianceStdDev     float64 `yaml:"variance_std_dev"`    // Std-dev of last 30 scores above this is erratic
	StreakMilestone    int     `yaml:"streak_milestone"`    // Streak length worth protecting
	TargetFocusHours   float64 `yaml:"target_focus_hours"`  // Deep-work hours per logged day
	MinFocusHours      float64 `yaml:"min_focus_hours"`     // Below this is a deficit
	MovingAveragePoint int     `yaml:"moving_average_days"` // Window of the score moving average
}

// DefaultThresholds returns the built-in discipline thresholds
func DefaultThresholds() Thresholds {
	return Thresholds{
		TargetScore:        8,
		SlumpAverage:       5,
		VarianceStdDev:     2,
		StreakMilestone:    7,
		TargetFocusHours:   6,
		MinFocusHours:      4,
		MovingAveragePoint: 7,
	}
}

// Analysis is the derived view of the daily-score collection
type Analysis struct {
	TotalEntries   int                `json:"totalEntries"`
	Last7Average   float64            `json:"last7Average"`
	Last30Average  float64            `json:"last30Average"`
	Last30StdDev   float64            `json:"last30StdDev"`
	DaysLogged7    int                `json:"daysLogged7"`
	DaysLogged30   int                `json:"daysLogged30"`
	LoggedToday    bool               `json:"loggedToday"`
	CurrentStreak  int                `json:"currentStreak"`
	LongestStreak  int                `json:"longestStreak"`
	FocusHours7    float64            `json:"focusHours7"`
	FocusAverage7  float64            `json:"focusAverage7"` // Per day with hours logged
	DaysWithHours7 int                `json:"daysWithHours7"`
	EnergyAverage7 float64            `json:"energyAverage7"` // Over entries that logged energy
	MovingAverage  float64            `json:"movingAverage"`
	LatestScore    float64            `json:"latestScore"`
	LatestDate     string             `json:"latestDate"`
	Series         []float64          `json:"series"` // All scores in date order
	Consistency    domain.Consistency `json:"consistency"`
	Status         domain.Status      `json:"status"`
	Target         float64            `json:"target"`
}

// Analyzer computes discipline analyses and recommendations
type Analyzer struct {
	th Thresholds
}

// New creates a discipline analyzer
func New(th Thresholds) *Analyzer {
	return &Analyzer{th: th}
}

// Analyze derives discipline statistics from every daily score.
// Returns nil when no record has a usable date.
func (a *Analyzer) Analyze(records []domain.DailyScore, now time.Time) *Analysis {
	sorted := domain.SortByDate(records, func(r domain.DailyScore) string { return r.Date })
	if len(sorted) == 0 {
		return nil
	}

	var last7, last30, energy7 []float64
	series := []float64{}
	var latest *domain.Dated[domain.DailyScore]
	days7 := map[time.Time]bool{}
	days30 := map[time.Time]bool{}
	hourDays7 := map[time.Time]bool{}
	focus7 := 0.0
	loggedToday := false

	for i, d := range sorted {
		// Future-dated scores are kept in the journal but stay out of every statistic
		if domain.DaysAgo(d.Day, now) < 0 {
			continue
		}
		r := d.Record
		series = append(series, r.Score)
		latest = &sorted[i]

		if domain.DaysAgo(d.Day, now) == 0 {
			loggedToday = true
		}
		if domain.InWindow(d.Day, now, 30) {
			last30 = append(last30, r.Score)
			days30[d.Day] = true
		}
		if domain.InWindow(d.Day, now, 7) {
			last7 = append(last7, r.Score)
			days7[d.Day] = true
			if r.FocusHours > 0 {
				focus7 += r.FocusHours
				hourDays7[d.Day] = true
			}
			if r.Energy > 0 {
				energy7 = append(energy7, r.Energy)
			}
		}
	}

	days := domain.Days(sorted)
	current, longest := domain.Streaks(days, now)
	last7Avg := formulas.Mean(last7)
	latestScore, latestDate := 0.0, ""
	if latest != nil {
		latestScore, latestDate = latest.Record.Score, domain.FormatDate(latest.Day)
	}

	return &Analysis{
		TotalEntries:   len(sorted),
		Last7Average:   formulas.Round(last7Avg, 2),
		Last30Average:  formulas.Round(formulas.Mean(last30), 2),
		Last30StdDev:   formulas.Round(formulas.StdDev(last30), 2),
		DaysLogged7:    len(days7),
		DaysLogged30:   len(days30),
		LoggedToday:    loggedToday,
		CurrentStreak:  current,
		LongestStreak:  longest,
		FocusHours7:    formulas.Round(focus7, 2),
		FocusAverage7:  formulas.Round(formulas.SafeDivide(focus7, float64(len(hourDays7))), 2),
		DaysWithHours7: len(hourDays7),
		EnergyAverage7: formulas.Round(formulas.Mean(energy7), 2),
		MovingAverage:  formulas.Round(formulas.LastMovingAverage(series, a.th.MovingAveragePoint), 2),
		LatestScore:    latestScore,
		LatestDate:     latestDate,
		Series:         series,
		Consistency:    domain.ClassifyConsistency(days, now),
		Status:         domain.StatusFromRatio(last7Avg, a.th.TargetScore),
		Target:         a.th.TargetScore,
	}
}
