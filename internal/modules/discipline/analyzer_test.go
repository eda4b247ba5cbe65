package discipline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eaglepython/eagle-sub001/internal/domain"
)

var now = time.Date(2024, 6, 30, 21, 0, 0, 0, time.UTC)

func daysAgo(n int) string {
	return now.AddDate(0, 0, -n).Format(domain.DateLayout)
}

func TestAnalyze_Empty(t *testing.T) {
	a := New(DefaultThresholds())
	assert.Nil(t, a.Analyze(nil, now))
	assert.Nil(t, a.Analyze([]domain.DailyScore{{Date: "bogus", Score: 5}}, now))
	assert.Empty(t, a.GenerateRecommendations(nil))
	assert.NotNil(t, a.GenerateRecommendations(nil))
	assert.Empty(t, a.GenerateHoursRecommendations(nil))
}

func TestAnalyze_WindowsAndStreaks(t *testing.T) {
	records := []domain.DailyScore{
		// Newest first; the analyzer orders by date itself
		{Date: daysAgo(0), Score: 9, FocusHours: 5, Energy: 8},
		{Date: daysAgo(1), Score: 7, FocusHours: 3},
		{Date: daysAgo(2), Score: 8},
		{Date: daysAgo(7), Score: 4},  // outside the 7-day window
		{Date: daysAgo(31), Score: 2}, // outside the 30-day window
		{Date: daysAgo(40), Score: 1},
	}

	an := New(DefaultThresholds()).Analyze(records, now)
	require.NotNil(t, an)

	assert.Equal(t, 6, an.TotalEntries)
	assert.Equal(t, 3, an.DaysLogged7)
	assert.Equal(t, 4, an.DaysLogged30)
	assert.InDelta(t, 8.0, an.Last7Average, 1e-9)
	assert.InDelta(t, 7.0, an.Last30Average, 1e-9)
	assert.True(t, an.LoggedToday)
	assert.Equal(t, 3, an.CurrentStreak)
	assert.Equal(t, 3, an.LongestStreak)
	assert.InDelta(t, 8.0, an.FocusHours7, 1e-9)
	assert.Equal(t, 2, an.DaysWithHours7)
	assert.InDelta(t, 4.0, an.FocusAverage7, 1e-9)
	assert.InDelta(t, 8.0, an.EnergyAverage7, 1e-9)
	assert.Equal(t, []float64{1, 2, 4, 8, 7, 9}, an.Series)
	assert.Equal(t, 9.0, an.LatestScore)
	assert.Equal(t, domain.StatusExcellent, an.Status)
	assert.Equal(t, domain.ConsistencyModerate, an.Consistency)
}

func TestAnalyze_FutureScoresStayOutOfSeries(t *testing.T) {
	records := []domain.DailyScore{
		{Date: daysAgo(1), Score: 6},
		{Date: daysAgo(0), Score: 7},
		{Date: daysAgo(-1), Score: 10},
		{Date: daysAgo(-3), Score: 10},
	}

	th := DefaultThresholds()
	th.MovingAveragePoint = 2
	an := New(th).Analyze(records, now)
	require.NotNil(t, an)

	assert.Equal(t, 4, an.TotalEntries)
	assert.Equal(t, []float64{6, 7}, an.Series)
	assert.InDelta(t, 6.5, an.MovingAverage, 1e-9)
	assert.Equal(t, 7.0, an.LatestScore)
	assert.Equal(t, daysAgo(0), an.LatestDate)
	assert.InDelta(t, 6.5, an.Last7Average, 1e-9)

	onlyFuture := New(DefaultThresholds()).Analyze([]domain.DailyScore{{Date: daysAgo(-2), Score: 9}}, now)
	require.NotNil(t, onlyFuture)
	assert.Equal(t, []float64{}, onlyFuture.Series)
	assert.Equal(t, "", onlyFuture.LatestDate)
}

func TestAnalyze_DoesNotMutateInput(t *testing.T) {
	records := []domain.DailyScore{
		{Date: daysAgo(0), Score: 6},
		{Date: daysAgo(3), Score: 5},
	}
	before := append([]domain.DailyScore(nil), records...)

	a := New(DefaultThresholds())
	first := a.Analyze(records, now)
	second := a.Analyze(records, now)

	assert.Equal(t, before, records)
	assert.Equal(t, first, second)
}

func TestGenerateRecommendations_Slump(t *testing.T) {
	records := []domain.DailyScore{
		{Date: daysAgo(1), Score: 3},
		{Date: daysAgo(2), Score: 4},
		{Date: daysAgo(3), Score: 2},
	}
	a := New(DefaultThresholds())
	recs := a.GenerateRecommendations(a.Analyze(records, now))

	require.Len(t, recs, 2)
	assert.Equal(t, "Log Today's Score", recs[0].Title)
	assert.Equal(t, domain.PriorityCritical, recs[0].Severity)
	assert.Equal(t, "Discipline Slump", recs[1].Title)
	assert.Equal(t, "Need +2.0 points", recs[1].Missing)
}

func TestGenerateRecommendations_EliteStreak(t *testing.T) {
	var records []domain.DailyScore
	for i := 0; i < 8; i++ {
		records = append(records, domain.DailyScore{Date: daysAgo(i), Score: 9, FocusHours: 6})
	}
	a := New(DefaultThresholds())
	an := a.Analyze(records, now)
	recs := a.GenerateRecommendations(an)

	require.Len(t, recs, 2)
	assert.Equal(t, "Protect Your Streak", recs[0].Title)
	assert.Equal(t, "Elite Week", recs[1].Title)

	hours := a.GenerateHoursRecommendations(an)
	require.Len(t, hours, 1)
	assert.Equal(t, "Deep Work On Track", hours[0].Title)
}

func TestGenerateRecommendations_Variance(t *testing.T) {
	records := []domain.DailyScore{
		{Date: daysAgo(0), Score: 10},
		{Date: daysAgo(1), Score: 2},
		{Date: daysAgo(2), Score: 9},
		{Date: daysAgo(3), Score: 1},
	}
	a := New(DefaultThresholds())
	recs := a.GenerateRecommendations(a.Analyze(records, now))

	var titles []string
	for _, r := range recs {
		titles = append(titles, r.Title)
	}
	assert.Contains(t, titles, "Inconsistent Execution")
}

func TestGenerateHoursRecommendations(t *testing.T) {
	a := New(DefaultThresholds())

	none := a.GenerateHoursRecommendations(a.Analyze([]domain.DailyScore{{Date: daysAgo(0), Score: 7}}, now))
	require.Len(t, none, 1)
	assert.Equal(t, "No Deep Work Logged", none[0].Title)

	low := a.GenerateHoursRecommendations(a.Analyze([]domain.DailyScore{
		{Date: daysAgo(0), Score: 7, FocusHours: 2},
		{Date: daysAgo(1), Score: 7, FocusHours: 3},
	}, now))
	require.Len(t, low, 1)
	assert.Equal(t, "Deep Work Deficit", low[0].Title)
	assert.Equal(t, "Need 3.5 more hours/day", low[0].Missing)
}

func TestGenerateRecommendations_Deterministic(t *testing.T) {
	records := []domain.DailyScore{
		{Date: daysAgo(1), Score: 3},
		{Date: daysAgo(2), Score: 9},
	}
	a := New(DefaultThresholds())
	an := a.Analyze(records, now)
	assert.Equal(t, a.GenerateRecommendations(an), a.GenerateRecommendations(an))
}
