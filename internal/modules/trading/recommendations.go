package trading

import (
	"fmt"

	"github.com/eaglepython/eagle-sub001/internal/domain"
)

// GenerateRecommendations produces the trading recommendations for an analysis.
// Every rule is evaluated, so several can fire together.
func (a *Analyzer) GenerateRecommendations(an *Analysis) []domain.Recommendation {
	recs := []domain.Recommendation{}
	if an == nil {
		return recs
	}

	switch {
	case an.WinRate < a.th.LowWinRate:
		recs = append(recs, domain.Recommendation{
			Type:         domain.InsightUrgent,
			Severity:     domain.PriorityCritical,
			Title:        "Win Rate Critical",
			CurrentState: fmt.Sprintf("%.1f%% win rate over %d trades", an.WinRate, an.TotalTrades),
			TargetState:  fmt.Sprintf("%.0f%%+", a.th.TargetWinRate),
			Missing:      fmt.Sprintf("%.1f points below target", a.th.TargetWinRate-an.WinRate),
			Action:       "REVIEW_SETUPS",
			SuggestedActions: []string{
				"Stop trading setups with negative expectancy",
				"Paper trade for one week and journal every entry",
				"Cut position size by half until the win rate recovers",
			},
			ImpactEstimate: "Stops the bleed while the edge is rebuilt",
		})
	case an.WinRate < a.th.TargetWinRate:
		recs = append(recs, domain.Recommendation{
			Type:         domain.InsightInsight,
			Severity:     domain.PriorityMedium,
			Title:        "Win Rate Near Target",
			CurrentState: fmt.Sprintf("%.1f%% win rate", an.WinRate),
			TargetState:  fmt.Sprintf("%.0f%%+", a.th.TargetWinRate),
			Missing:      fmt.Sprintf("%.1f points to go", a.th.TargetWinRate-an.WinRate),
			Action:       "TIGHTEN_ENTRIES",
			SuggestedActions: []string{
				"Only take A+ setups for the next 20 trades",
				"Wait for confirmation before entry",
			},
			ImpactEstimate: "+5-10% win rate",
		})
	case an.Consistent():
		recs = append(recs, domain.Recommendation{
			Type:         domain.InsightSuccess,
			Severity:     domain.PriorityLow,
			Title:        "Edge Confirmed",
			CurrentState: fmt.Sprintf("%.1f%% win rate, profit factor %.2f", an.WinRate, an.ProfitFactor),
			TargetState:  "Maintain while scaling carefully",
			Action:       "MAINTAIN",
			SuggestedActions: []string{
				"Keep position sizing rules unchanged",
				"Scale size only after another 20 trades at this rate",
			},
			ImpactEstimate: "Compounding returns",
		})
	}

	if an.RiskReward > 0 && an.RiskReward < a.th.MinRiskReward {
		breakeven := 100 / (1 + an.RiskReward)
		recs = append(recs, domain.Recommendation{
			Type:         domain.InsightWarning,
			Severity:     domain.PriorityHigh,
			Title:        "Risk/Reward Too Low",
			CurrentState: fmt.Sprintf("R:R %.2f needs a %.1f%% win rate to break even", an.RiskReward, breakeven),
			TargetState:  fmt.Sprintf("R:R %.1f or better", a.th.MinRiskReward),
			Action:       "IMPROVE_RR",
			SuggestedActions: []string{
				"Set targets at least 1.5x the stop distance",
				"Let winners run to target instead of closing early",
			},
			ImpactEstimate: fmt.Sprintf("At %.1f R:R the breakeven win rate drops to %.1f%%",
				a.th.MinRiskReward, 100/(1+a.th.MinRiskReward)),
		})
	}

	for _, b := range an.ByAsset {
		if b.Trades >= a.th.WeakAssetMinTrades && b.WinRate < a.th.WeakAssetWinRate {
			recs = append(recs, domain.Recommendation{
				Type:         domain.InsightWarning,
				Severity:     domain.PriorityHigh,
				Title:        fmt.Sprintf("Struggling With %s", b.Key),
				CurrentState: fmt.Sprintf("%.1f%% win rate over %d trades", b.WinRate, b.Trades),
				TargetState:  fmt.Sprintf("%.0f%%+ or stop trading it", a.th.WeakAssetWinRate),
				Action:       "DROP_ASSET",
				SuggestedActions: []string{
					fmt.Sprintf("Pause %s for two weeks", b.Key),
					"Review every losing trade on it",
				},
				ImpactEstimate: fmt.Sprintf("Avoids %.2f of drag", -b.TotalPnL),
			})
		}
	}

	for _, b := range an.BySetup {
		if b.Trades >= a.th.EdgeSetupMinTrades && b.WinRate > a.th.EdgeSetupWinRate && b.TotalPnL > 0 {
			recs = append(recs, domain.Recommendation{
				Type:         domain.InsightOpportunity,
				Severity:     domain.PriorityMedium,
				Title:        fmt.Sprintf("Edge Found: %s", b.Key),
				CurrentState: fmt.Sprintf("%.1f%% win rate, %.2f P&L over %d trades", b.WinRate, b.TotalPnL, b.Trades),
				TargetState:  "Make this the core setup",
				Action:       "SCALE_SETUP",
				SuggestedActions: []string{
					fmt.Sprintf("Write a checklist for %s", b.Key),
					"Allocate more of your risk budget to it",
				},
				ImpactEstimate: "Concentrates capital on proven edge",
			})
		}
	}

	if an.CurrentLossStreak >= a.th.TiltLossStreak {
		recs = append(recs, domain.Recommendation{
			Type:         domain.InsightUrgent,
			Severity:     domain.PriorityCritical,
			Title:        "Tilt Risk",
			CurrentState: fmt.Sprintf("%d losses in a row", an.CurrentLossStreak),
			TargetState:  "Calm, rule-based execution",
			Action:       "STOP_TRADING",
			SuggestedActions: []string{
				"Stop trading for the rest of the day",
				"Review the streak before the next session",
			},
			ImpactEstimate: "Prevents revenge-trading drawdown",
		})
	}

	return domain.SortRecommendations(recs)
}
