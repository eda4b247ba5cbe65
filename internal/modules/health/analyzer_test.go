package health

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eaglepython/eagle-sub001/internal/domain"
)

var now = time.Date(2024, 6, 30, 9, 0, 0, 0, time.UTC)

func daysAgo(n int) string {
	return now.AddDate(0, 0, -n).Format(domain.DateLayout)
}

func workout(ago int, kind string, intensity float64) domain.Workout {
	return domain.Workout{Date: daysAgo(ago), Type: kind, DurationMinutes: 45, Intensity: intensity}
}

func titles(recs []domain.Recommendation) []string {
	out := make([]string, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.Title)
	}
	return out
}

func TestAnalyze_Empty(t *testing.T) {
	a := New(DefaultThresholds())
	assert.Nil(t, a.Analyze(nil, now))
	assert.Equal(t, []domain.Recommendation{}, a.GenerateRecommendations(nil))
}

func TestAnalyze_WindowBoundary(t *testing.T) {
	records := []domain.Workout{
		workout(6, "Cardio", 6),    // last day inside the week
		workout(7, "Cardio", 6),    // first day outside the week
		workout(27, "Strength", 7), // last day inside 28 days
		workout(28, "Strength", 7), // outside
		workout(-1, "Cardio", 6),   // future, ignored by windows
	}

	an := New(DefaultThresholds()).Analyze(records, now)
	require.NotNil(t, an)

	assert.Equal(t, 5, an.TotalWorkouts)
	assert.Equal(t, 1, an.ThisWeek)
	assert.Equal(t, 3, an.Last28)
	assert.Equal(t, 1, an.StrengthLast28)
	assert.Equal(t, 6, an.DaysSinceLast)
	assert.InDelta(t, 0.75, an.WeeklyAverage, 1e-9)
	require.Len(t, an.ByType, 2)
	assert.Equal(t, "Cardio", an.ByType[0].Type)
	assert.Equal(t, 3, an.ByType[0].Count)
}

func TestGenerateRecommendations_WeeklyVolumeTooLow(t *testing.T) {
	records := []domain.Workout{
		workout(0, "Strength", 6),
		workout(1, "Cardio", 6),
		workout(2, "Strength", 6),
	}

	a := New(DefaultThresholds())
	an := a.Analyze(records, now)
	require.NotNil(t, an)
	assert.Equal(t, 3, an.ThisWeek)

	recs := a.GenerateRecommendations(an)
	require.NotEmpty(t, recs)
	assert.Equal(t, "Weekly Volume Too Low", recs[0].Title)
	assert.Equal(t, "Need 3 more", recs[0].Missing)
	assert.Equal(t, domain.PriorityHigh, recs[0].Severity)
}

func TestGenerateRecommendations_VolumeCriticalBelowHalf(t *testing.T) {
	a := New(DefaultThresholds())
	recs := a.GenerateRecommendations(a.Analyze([]domain.Workout{workout(1, "Cardio", 6)}, now))

	require.NotEmpty(t, recs)
	assert.Equal(t, domain.PriorityCritical, recs[0].Severity)
	assert.Equal(t, domain.InsightUrgent, recs[0].Type)
	assert.Equal(t, "Need 5 more", recs[0].Missing)
}

func TestGenerateRecommendations_IdleAndIntensity(t *testing.T) {
	records := []domain.Workout{
		workout(5, "Cardio", 9),
		workout(8, "Cardio", 9),
		workout(10, "Running", 9),
		workout(12, "Cardio", 9),
		workout(14, "Cardio", 9),
	}

	a := New(DefaultThresholds())
	got := titles(a.GenerateRecommendations(a.Analyze(records, now)))

	assert.Equal(t, []string{"Weekly Volume Too Low", "Momentum Break", "Recovery Risk", "No Strength Training"}, got)
}

func TestGenerateRecommendations_LowIntensity(t *testing.T) {
	a := New(DefaultThresholds())
	got := titles(a.GenerateRecommendations(a.Analyze([]domain.Workout{workout(0, "Walk", 2)}, now)))
	assert.Contains(t, got, "Intensity Too Low")
}

func TestGenerateRecommendations_OnTarget(t *testing.T) {
	var records []domain.Workout
	for i := 0; i < 6; i++ {
		records = append(records, workout(i, "Strength", 7))
	}

	a := New(DefaultThresholds())
	recs := a.GenerateRecommendations(a.Analyze(records, now))
	require.Len(t, recs, 1)
	assert.Equal(t, "Training On Target", recs[0].Title)
	assert.Equal(t, domain.PriorityLow, recs[0].Severity)
}
