// Package trading analyzes the trading journal and generates trading
// recommendations.
//
// A trade with pnl > 0 is a win and pnl < 0 a loss. Breakeven trades count
// towards the total, so they dilute the win rate.
package trading

import (
	"math"
	"sort"
	"time"

	"github.com/eaglepython/eagle-sub001/internal/domain"
	"github.com/eaglepython/eagle-sub001/pkg/formulas"
)

// Thresholds holds the trading targets and rule breakpoints
type Thresholds struct {
	TargetWinRate      float64 `yaml:"target_win_rate"`     // Percent
	LowWinRate         float64 `yaml:"low_win_rate"`        // Below this is urgent
	MinRiskReward      float64 `yaml:"min_risk_reward"`     // Average win / average loss
	WeakAssetWinRate   float64 `yaml:"weak_asset_win_rate"` // Per-asset warning level
	WeakAssetMinTrades int     `yaml:"weak_asset_min_trades"`
	EdgeSetupWinRate   float64 `yaml:"edge_setup_win_rate"`
	EdgeSetupMinTrades int     `yaml:"edge_setup_min_trades"`
	TiltLossStreak     int     `yaml:"tilt_loss_streak"`
}

// DefaultThresholds returns the built-in trading thresholds
func DefaultThresholds() Thresholds {
	return Thresholds{
		TargetWinRate:      55,
		LowWinRate:         45,
		MinRiskReward:      1.5,
		WeakAssetWinRate:   40,
		WeakAssetMinTrades: 5,
		EdgeSetupWinRate:   55,
		EdgeSetupMinTrades: 3,
		TiltLossStreak:     3,
	}
}

// Breakdown aggregates the trades sharing one asset, setup or direction
type Breakdown struct {
	Key      string  `json:"key"`
	Trades   int     `json:"trades"`
	Wins     int     `json:"wins"`
	Losses   int     `json:"losses"`
	WinRate  float64 `json:"winRate"`
	TotalPnL float64 `json:"totalPnl"`
}

// Analysis is the derived view of the trading journal
type Analysis struct {
	TotalTrades          int                       `json:"totalTrades"`
	Wins                 int                       `json:"wins"`
	Losses               int                       `json:"losses"`
	Breakeven            int                       `json:"breakeven"`
	WinRate              float64                   `json:"winRate"`
	AvgWin               float64                   `json:"avgWin"`
	AvgLoss              float64                   `json:"avgLoss"` // Negative
	ProfitFactor         float64                   `json:"profitFactor"`
	TotalPnL             float64                   `json:"totalPnl"`
	RiskReward           float64                   `json:"riskReward"`
	LargestWin           float64                   `json:"largestWin"`
	LargestLoss          float64                   `json:"largestLoss"`
	MaxConsecutiveLosses int                       `json:"maxConsecutiveLosses"`
	CurrentLossStreak    int                       `json:"currentLossStreak"`
	Drawdown             *formulas.DrawdownMetrics `json:"drawdown"`
	ThisWeek             int                       `json:"thisWeek"`
	Last30               int                       `json:"last30"`
	Last30PnL            float64                   `json:"last30Pnl"`
	ByAsset              []Breakdown               `json:"byAsset"`
	BySetup              []Breakdown               `json:"bySetup"`
	ByDirection          []Breakdown               `json:"byDirection"`
	Consistency          domain.Consistency        `json:"consistency"`
	Status               domain.Status             `json:"status"`
	TargetWinRate        float64                   `json:"targetWinRate"`
}

// Consistent reports whether the journal is kept at least moderately often
func (a *Analysis) Consistent() bool {
	return a.Consistency == domain.ConsistencyHigh || a.Consistency == domain.ConsistencyModerate
}

// Analyzer computes trading analyses and recommendations
type Analyzer struct {
	th Thresholds
}

// New creates a trading analyzer
func New(th Thresholds) *Analyzer {
	return &Analyzer{th: th}
}

// Analyze derives performance statistics from every trade.
// Returns nil for an empty journal.
func (a *Analyzer) Analyze(records []domain.Trade, now time.Time) *Analysis {
	sorted := domain.SortByDate(records, func(r domain.Trade) string { return r.Date })
	if len(sorted) == 0 {
		return nil
	}

	an := &Analysis{
		TotalTrades:   len(sorted),
		TargetWinRate: a.th.TargetWinRate,
	}

	var grossWin, grossLoss float64
	pnls := make([]float64, 0, len(sorted))
	lossRun := 0
	byAsset := newGrouper()
	bySetup := newGrouper()
	byDirection := newGrouper()

	for _, d := range sorted {
		tr := d.Record
		pnl := formulas.Finite(tr.PnL)
		pnls = append(pnls, pnl)
		an.TotalPnL += pnl

		switch {
		case pnl > 0:
			an.Wins++
			grossWin += pnl
			an.LargestWin = math.Max(an.LargestWin, pnl)
			lossRun = 0
		case pnl < 0:
			an.Losses++
			grossLoss += pnl
			an.LargestLoss = math.Min(an.LargestLoss, pnl)
			lossRun++
			if lossRun > an.MaxConsecutiveLosses {
				an.MaxConsecutiveLosses = lossRun
			}
		default:
			an.Breakeven++
		}

		if domain.InWindow(d.Day, now, 7) {
			an.ThisWeek++
		}
		if domain.InWindow(d.Day, now, 30) {
			an.Last30++
			an.Last30PnL += pnl
		}

		byAsset.add(tr.Asset, pnl)
		if tr.Setup != "" {
			bySetup.add(tr.Setup, pnl)
		}
		byDirection.add(string(tr.Direction), pnl)
	}
	an.CurrentLossStreak = lossRun

	an.WinRate = formulas.Round(formulas.SafeDivide(float64(an.Wins), float64(an.TotalTrades))*100, 2)
	an.AvgWin = formulas.Round(formulas.SafeDivide(grossWin, float64(an.Wins)), 2)
	an.AvgLoss = formulas.Round(formulas.SafeDivide(grossLoss, float64(an.Losses)), 2)
	an.ProfitFactor = formulas.Round(profitFactor(grossWin, grossLoss), 2)
	an.RiskReward = formulas.Round(formulas.SafeDivide(an.AvgWin, math.Abs(an.AvgLoss)), 2)
	an.TotalPnL = formulas.Round(an.TotalPnL, 2)
	an.Last30PnL = formulas.Round(an.Last30PnL, 2)
	an.Drawdown = formulas.CalculateDrawdown(formulas.CumulativeSum(pnls))
	an.ByAsset = byAsset.breakdowns()
	an.BySetup = bySetup.breakdowns()
	an.ByDirection = byDirection.breakdowns()
	an.Consistency = domain.ClassifyConsistency(domain.Days(sorted), now)
	an.Status = domain.StatusFromRatio(an.WinRate, a.th.TargetWinRate)
	return an
}

// profitFactor is gross profit over |gross loss|, 0 when either side is empty.
// Works on the raw sums so rounded averages never leak into the ratio.
func profitFactor(grossWin, grossLoss float64) float64 {
	if grossWin == 0 || grossLoss == 0 {
		return 0
	}
	return formulas.SafeDivide(grossWin, math.Abs(grossLoss))
}

type grouper struct {
	order  []string
	groups map[string]*Breakdown
}

func newGrouper() *grouper {
	return &grouper{groups: map[string]*Breakdown{}}
}

func (g *grouper) add(key string, pnl float64) {
	b, ok := g.groups[key]
	if !ok {
		b = &Breakdown{Key: key}
		g.groups[key] = b
		g.order = append(g.order, key)
	}
	b.Trades++
	b.TotalPnL += pnl
	if pnl > 0 {
		b.Wins++
	} else if pnl < 0 {
		b.Losses++
	}
}

// breakdowns returns the groups by trade count, first-seen order breaking ties
func (g *grouper) breakdowns() []Breakdown {
	out := make([]Breakdown, 0, len(g.order))
	for _, key := range g.order {
		b := *g.groups[key]
		b.WinRate = formulas.Round(formulas.SafeDivide(float64(b.Wins), float64(b.Trades))*100, 2)
		b.TotalPnL = formulas.Round(b.TotalPnL, 2)
		out = append(out, b)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Trades > out[j].Trades })
	return out
}
