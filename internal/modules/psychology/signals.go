package psychology

import (
	"time"

	"github.com/eaglepython/eagle-sub001/internal/domain"
	"github.com/eaglepython/eagle-sub001/pkg/formulas"
)

// Thresholds holds the named breakpoints of every insight module
type Thresholds struct {
	HabitStreakAutomatic  int     `yaml:"habit_streak_automatic"`  // Days until a habit is considered automatic
	HabitActiveDays14     int     `yaml:"habit_active_days_14"`    // Minimum active days in two weeks
	HabitStackAnchorDays  int     `yaml:"habit_stack_anchor_days"` // Days in two weeks that make a domain an anchor
	HabitStackWeakDays    int     `yaml:"habit_stack_weak_days"`
	WillpowerVariance     float64 `yaml:"willpower_variance"` // Std-dev of last-30 scores
	WillpowerEmpty        float64 `yaml:"willpower_empty"`    // 7-day average below this
	WeekendGap            float64 `yaml:"weekend_gap"`
	EnergyCritical        float64 `yaml:"energy_critical"`
	EnergyLow             float64 `yaml:"energy_low"`
	EnergyHigh            float64 `yaml:"energy_high"`
	OvertrainingIntensity float64 `yaml:"overtraining_intensity"`
	FocusCritical         float64 `yaml:"focus_critical"` // Hours per logged day
	FocusLow              float64 `yaml:"focus_low"`
	FocusElite            float64 `yaml:"focus_elite"`
	GoalsMaxAreas         int     `yaml:"goals_max_areas"`
	GoalsAlignedDomains   int     `yaml:"goals_aligned_domains"` // Domains active in two weeks that count as aligned
	GoalsSingleDomain     int     `yaml:"goals_single_domain"`
	MomentumDelta         float64 `yaml:"momentum_delta"` // Week-over-week score change
	ResilienceLowScore    float64 `yaml:"resilience_low_score"`
	ResilienceRecovered   float64 `yaml:"resilience_recovered_score"`
	ResilienceMinLowDays  int     `yaml:"resilience_min_low_days"`
	ResilienceSlowRate    float64 `yaml:"resilience_slow_rate"`
	ResilienceStrongRate  float64 `yaml:"resilience_strong_rate"`
	ReflectionMinRatio    float64 `yaml:"reflection_min_ratio"`
	ReflectionGoodRatio   float64 `yaml:"reflection_good_ratio"`
	ReflectionReviewDays  int     `yaml:"reflection_review_days"`
}

// DefaultThresholds returns the built-in insight thresholds
func DefaultThresholds() Thresholds {
	return Thresholds{
		HabitStreakAutomatic:  21,
		HabitActiveDays14:     7,
		HabitStackAnchorDays:  5,
		HabitStackWeakDays:    3,
		WillpowerVariance:     2,
		WillpowerEmpty:        5,
		WeekendGap:            1.5,
		EnergyCritical:        4,
		EnergyLow:             6,
		EnergyHigh:            8,
		OvertrainingIntensity: 8,
		FocusCritical:         2,
		FocusLow:              4,
		FocusElite:            6,
		GoalsMaxAreas:         5,
		GoalsAlignedDomains:   3,
		GoalsSingleDomain:     1,
		MomentumDelta:         1,
		ResilienceLowScore:    5,
		ResilienceRecovered:   6,
		ResilienceMinLowDays:  3,
		ResilienceSlowRate:    0.5,
		ResilienceStrongRate:  0.75,
		ReflectionMinRatio:    0.2,
		ReflectionGoodRatio:   0.5,
		ReflectionReviewDays:  7,
	}
}

// domainDays maps each record collection to the days it was logged on
func domainDays(data domain.UserData) map[domain.RecordKind][]time.Time {
	days := map[domain.RecordKind][]time.Time{}
	for _, kind := range domain.AllRecordKinds {
		for _, date := range data.DatesOf(kind) {
			if day, err := domain.ParseDate(date); err == nil {
				days[kind] = append(days[kind], day)
			}
		}
	}
	return days
}

// allDays returns the days of every record of every kind
func allDays(data domain.UserData) []time.Time {
	var days []time.Time
	for _, d := range data.Dates() {
		if day, err := domain.ParseDate(d); err == nil {
			days = append(days, day)
		}
	}
	return days
}

// activeDays counts distinct days in the window
func activeDays(days []time.Time, now time.Time, window int) int {
	count := 0
	for _, d := range domain.DistinctDays(days) {
		if domain.InWindow(d, now, window) {
			count++
		}
	}
	return count
}

// scoresBetween returns the daily scores logged between fromAgo and toAgo days
// back (both inclusive), in date order
func scoresBetween(data domain.UserData, now time.Time, fromAgo, toAgo int) []domain.DailyScore {
	var out []domain.DailyScore
	for _, d := range domain.SortByDate(data.DailyScores, func(r domain.DailyScore) string { return r.Date }) {
		ago := domain.DaysAgo(d.Day, now)
		if ago >= fromAgo && ago <= toAgo {
			out = append(out, d.Record)
		}
	}
	return out
}

func scoreValues(scores []domain.DailyScore) []float64 {
	out := make([]float64, len(scores))
	for i, s := range scores {
		out[i] = s.Score
	}
	return out
}

func meanScore(scores []domain.DailyScore) float64 {
	return formulas.Mean(scoreValues(scores))
}

var kindLabels = map[domain.RecordKind]string{
	domain.RecordKindDailyScore:     "daily scoring",
	domain.RecordKindWorkout:        "training",
	domain.RecordKindTrade:          "trade journaling",
	domain.RecordKindJobApplication: "job applications",
	domain.RecordKindExpense:        "expense tracking",
}
