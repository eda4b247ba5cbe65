package trading

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eaglepython/eagle-sub001/internal/domain"
)

var now = time.Date(2024, 6, 30, 16, 0, 0, 0, time.UTC)

func daysAgo(n int) string {
	return now.AddDate(0, 0, -n).Format(domain.DateLayout)
}

func trade(ago int, asset, setup string, pnl float64) domain.Trade {
	return domain.Trade{
		Date:       daysAgo(ago),
		Asset:      asset,
		Direction:  domain.DirectionLong,
		EntryPrice: 100,
		ExitPrice:  101,
		Quantity:   1,
		PnL:        pnl,
		Setup:      setup,
	}
}

func titles(recs []domain.Recommendation) []string {
	out := make([]string, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.Title)
	}
	return out
}

func TestEmptyJournal(t *testing.T) {
	a := New(DefaultThresholds())

	an := a.Analyze(nil, now)
	assert.Nil(t, an)

	recs := a.GenerateRecommendations(an)
	assert.NotNil(t, recs)
	assert.Empty(t, recs)
}

func TestAnalyze_WinRateAndProfitFactor(t *testing.T) {
	var trades []domain.Trade
	for i := 0; i < 12; i++ {
		trades = append(trades, trade(i, "ES", "Breakout", 100))
	}
	for i := 0; i < 8; i++ {
		trades = append(trades, trade(i, "ES", "Breakout", -50))
	}

	an := New(DefaultThresholds()).Analyze(trades, now)
	require.NotNil(t, an)

	assert.Equal(t, 20, an.TotalTrades)
	assert.Equal(t, 12, an.Wins)
	assert.Equal(t, 8, an.Losses)
	assert.InDelta(t, 60.0, an.WinRate, 1e-9)
	assert.InDelta(t, 100.0, an.AvgWin, 1e-9)
	assert.InDelta(t, -50.0, an.AvgLoss, 1e-9)
	assert.InDelta(t, 3.0, an.ProfitFactor, 1e-9)
	assert.InDelta(t, 2.0, an.RiskReward, 1e-9)
	assert.InDelta(t, 800.0, an.TotalPnL, 1e-9)
	assert.Equal(t, domain.StatusExcellent, an.Status)
}

func TestAnalyze_ProfitFactorUsesGrossSums(t *testing.T) {
	trades := []domain.Trade{
		trade(0, "ES", "", 0.01),
		trade(1, "ES", "", 0.01),
		trade(2, "ES", "", 0.02),
		trade(3, "ES", "", -0.01),
	}

	an := New(DefaultThresholds()).Analyze(trades, now)
	require.NotNil(t, an)

	// The rounded average win is 0.01, which would give 3.0
	assert.InDelta(t, 0.01, an.AvgWin, 1e-9)
	assert.InDelta(t, 4.0, an.ProfitFactor, 1e-9)
}

func TestAnalyze_GuardsNeverProduceNaN(t *testing.T) {
	cases := map[string][]domain.Trade{
		"all wins":   {trade(0, "BTC", "", 10), trade(1, "BTC", "", 20)},
		"all losses": {trade(0, "BTC", "", -10), trade(1, "BTC", "", -20)},
		"breakeven":  {trade(0, "BTC", "", 0)},
		"inf pnl":    {trade(0, "BTC", "", math.Inf(1))},
	}

	for name, trades := range cases {
		t.Run(name, func(t *testing.T) {
			an := New(DefaultThresholds()).Analyze(trades, now)
			require.NotNil(t, an)
			for _, v := range []float64{an.WinRate, an.ProfitFactor, an.RiskReward, an.AvgWin, an.AvgLoss, an.TotalPnL} {
				assert.False(t, math.IsNaN(v) || math.IsInf(v, 0), "non-finite metric %v", v)
			}
		})
	}

	allWins := New(DefaultThresholds()).Analyze(cases["all wins"], now)
	assert.Equal(t, 0.0, allWins.ProfitFactor)
	assert.Equal(t, 100.0, allWins.WinRate)

	allLosses := New(DefaultThresholds()).Analyze(cases["all losses"], now)
	assert.Equal(t, 0.0, allLosses.WinRate)
	assert.Equal(t, 2, allLosses.MaxConsecutiveLosses)
}

func TestAnalyze_WindowCounts(t *testing.T) {
	trades := []domain.Trade{
		trade(0, "BTC", "", 10),
		trade(6, "BTC", "", 10),
		trade(7, "BTC", "", 10),
		trade(29, "BTC", "", 10),
		trade(30, "BTC", "", 10),
		{Date: "garbage", Asset: "BTC", PnL: 99},
	}

	an := New(DefaultThresholds()).Analyze(trades, now)
	require.NotNil(t, an)
	assert.Equal(t, 5, an.TotalTrades, "unparseable dates are skipped")
	assert.Equal(t, 2, an.ThisWeek)
	assert.Equal(t, 4, an.Last30)
	assert.InDelta(t, 40.0, an.Last30PnL, 1e-9)
}

func TestAnalyze_DrawdownAndStreaks(t *testing.T) {
	trades := []domain.Trade{
		trade(5, "BTC", "", 100),
		trade(4, "BTC", "", -50),
		trade(3, "BTC", "", -80),
		trade(2, "BTC", "", 200),
		trade(1, "BTC", "", -10),
	}

	an := New(DefaultThresholds()).Analyze(trades, now)
	require.NotNil(t, an)
	require.NotNil(t, an.Drawdown)
	assert.InDelta(t, 130.0, an.Drawdown.MaxDrawdown, 1e-9)
	assert.Equal(t, 2, an.MaxConsecutiveLosses)
	assert.Equal(t, 1, an.CurrentLossStreak)
	assert.Equal(t, 200.0, an.LargestWin)
	assert.Equal(t, -80.0, an.LargestLoss)
}

func TestGenerateRecommendations_LowWinRateAndTilt(t *testing.T) {
	trades := []domain.Trade{
		trade(6, "BTC", "", 300),
		trade(3, "BTC", "", -50),
		trade(2, "BTC", "", -50),
		trade(1, "BTC", "", -50),
	}

	a := New(DefaultThresholds())
	got := titles(a.GenerateRecommendations(a.Analyze(trades, now)))
	assert.Equal(t, []string{"Win Rate Critical", "Tilt Risk"}, got)
}

func TestGenerateRecommendations_RiskRewardAndAssets(t *testing.T) {
	var trades []domain.Trade
	// ETH: 1 win of 60, 4 losses of 50 -> 20% win rate over 5 trades
	trades = append(trades, trade(10, "ETH", "Fade", 60))
	for i := 0; i < 4; i++ {
		trades = append(trades, trade(9+i, "ETH", "Fade", -50))
	}
	// BTC breakout: 6 wins of 60, 1 loss
	for i := 0; i < 6; i++ {
		trades = append(trades, trade(i, "BTC", "Breakout", 60))
	}
	trades = append(trades, trade(0, "BTC", "Breakout", -50))

	a := New(DefaultThresholds())
	an := a.Analyze(trades, now)
	require.NotNil(t, an)
	// 7 wins out of 12
	assert.InDelta(t, 58.33, an.WinRate, 1e-9)
	assert.InDelta(t, 1.2, an.RiskReward, 1e-9)

	recs := a.GenerateRecommendations(an)
	got := titles(recs)
	assert.Equal(t, []string{
		"Risk/Reward Too Low",
		"Struggling With ETH",
		"Edge Confirmed",
		"Edge Found: Breakout",
	}, got)

	assert.Contains(t, recs[0].CurrentState, "45.5% win rate to break even")
}

func TestGenerateRecommendations_Deterministic(t *testing.T) {
	trades := []domain.Trade{
		trade(1, "BTC", "Breakout", 50),
		trade(2, "ETH", "Fade", -20),
		trade(3, "BTC", "Breakout", 30),
	}
	a := New(DefaultThresholds())
	an := a.Analyze(trades, now)
	assert.Equal(t, a.GenerateRecommendations(an), a.GenerateRecommendations(an))
}
