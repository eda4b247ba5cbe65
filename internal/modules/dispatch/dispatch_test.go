package dispatch

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eaglepython/eagle-sub001/internal/domain"
	"github.com/eaglepython/eagle-sub001/internal/modules/career"
	"github.com/eaglepython/eagle-sub001/internal/modules/discipline"
	"github.com/eaglepython/eagle-sub001/internal/modules/finance"
	"github.com/eaglepython/eagle-sub001/internal/modules/health"
	"github.com/eaglepython/eagle-sub001/internal/modules/integrator"
	"github.com/eaglepython/eagle-sub001/internal/modules/psychology"
	"github.com/eaglepython/eagle-sub001/internal/modules/trading"
)

var now = time.Date(2024, 6, 30, 9, 0, 0, 0, time.UTC)

func daysAgo(n int) string {
	return now.AddDate(0, 0, -n).Format(domain.DateLayout)
}

func newDispatcher() *Dispatcher {
	return New(integrator.Deps{
		Discipline: discipline.New(discipline.DefaultThresholds()),
		Health:     health.New(health.DefaultThresholds()),
		Trading:    trading.New(trading.DefaultThresholds()),
		Career:     career.New(career.DefaultThresholds()),
		Finance:    finance.New(finance.DefaultThresholds()),
		Coach:      psychology.New(psychology.DefaultThresholds()),
	})
}

func titles(recs []domain.Recommendation) []string {
	out := make([]string, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.Title)
	}
	return out
}

func TestDispatch_UnknownTokenIsNil(t *testing.T) {
	d := newDispatcher()
	assert.Nil(t, d.Dispatch("Log dinner", domain.UserData{}, now))
	assert.Nil(t, d.Dispatch("", domain.UserData{}, now))
}

func TestDispatch_KnownTokensOnEmptyData(t *testing.T) {
	d := newDispatcher()
	for _, token := range Tokens {
		t.Run(token, func(t *testing.T) {
			recs := d.Dispatch(token, domain.UserData{}, now)
			assert.NotNil(t, recs)
			assert.Empty(t, recs)
		})
	}
}

func TestDispatch_Routes(t *testing.T) {
	d := newDispatcher()

	data := domain.UserData{
		DailyScores:  []domain.DailyScore{{Date: daysAgo(1), Score: 7}},
		Workouts:     []domain.Workout{{Date: daysAgo(0), Type: "Strength", DurationMinutes: 40, Intensity: 6}},
		Applications: []domain.JobApplication{{Date: daysAgo(0), Company: "Acme", Tier: domain.Tier2, Status: domain.ApplicationStatusApplied}},
	}

	logToday := d.Dispatch(TokenLogToday, data, now)
	require.NotEmpty(t, logToday)
	assert.Equal(t, "Log Today's Score", logToday[0].Title)

	assert.Contains(t, titles(d.Dispatch(TokenTrackHours, data, now)), "No Deep Work Logged")

	addApp := d.Dispatch(TokenAddApp, data, now)
	require.NotEmpty(t, addApp)
	assert.Equal(t, career.ActionPivotToTier1, addApp[0].Action)

	assert.Contains(t, titles(d.Dispatch(TokenLogWorkout, data, now)), "Weekly Volume Too Low")
	assert.Empty(t, d.Dispatch(TokenLogTrade, data, now))

	reflect := d.Dispatch(TokenReflect, data, now)
	assert.Equal(t, []string{"Reflection Missing", "Weekly Review Due"}, titles(reflect))
	assert.Equal(t, domain.PriorityHigh, reflect[0].Severity)
	assert.NotEmpty(t, reflect[0].SuggestedActions)
}

func TestDispatch_Deterministic(t *testing.T) {
	d := newDispatcher()
	data := domain.UserData{Trades: []domain.Trade{
		{Date: daysAgo(0), Asset: "ETH", Direction: domain.DirectionLong, PnL: -20},
		{Date: daysAgo(1), Asset: "ETH", Direction: domain.DirectionShort, PnL: -10},
		{Date: daysAgo(2), Asset: "ETH", Direction: domain.DirectionLong, PnL: -5},
	}}

	first := d.Dispatch(TokenLogTrade, data, now)
	assert.Equal(t, first, d.Dispatch(TokenLogTrade, data, now))
}

func TestSuggest(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"Log today", TokenLogToday, true},
		{"log tody", TokenLogToday, true},
		{"LOG TRADES", TokenLogTrade, true},
		{"add ap", TokenAddApp, true},
		{"reflct", TokenReflect, true},
		{"qqq", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := Suggest(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
