package integrator

import (
	"github.com/eaglepython/eagle-sub001/internal/domain"
	"github.com/eaglepython/eagle-sub001/internal/modules/career"
	"github.com/eaglepython/eagle-sub001/internal/modules/discipline"
	"github.com/eaglepython/eagle-sub001/internal/modules/finance"
	"github.com/eaglepython/eagle-sub001/internal/modules/health"
	"github.com/eaglepython/eagle-sub001/internal/modules/trading"
	"github.com/eaglepython/eagle-sub001/pkg/formulas"
)

// Domain keys, in weight order
const (
	DomainDiscipline = "discipline"
	DomainHealth     = "health"
	DomainTrading    = "trading"
	DomainCareer     = "career"
	DomainFinance    = "finance"
)

// Domains lists the domain keys in display order
var Domains = []string{DomainDiscipline, DomainHealth, DomainTrading, DomainCareer, DomainFinance}

// Domain weights of the overall score. They sum to 1.
const (
	WeightDiscipline = 0.30
	WeightHealth     = 0.25
	WeightTrading    = 0.20
	WeightCareer     = 0.15
	WeightFinance    = 0.10
)

var domainWeights = map[string]float64{
	DomainDiscipline: WeightDiscipline,
	DomainHealth:     WeightHealth,
	DomainTrading:    WeightTrading,
	DomainCareer:     WeightCareer,
	DomainFinance:    WeightFinance,
}

var domainLabels = map[string]string{
	DomainDiscipline: "Discipline",
	DomainHealth:     "Health",
	DomainTrading:    "Trading",
	DomainCareer:     "Career",
	DomainFinance:    "Finance",
}

// Momentum labels
const (
	MomentumStrongPositive = "Strong Positive"
	MomentumPositive       = "Positive"
	MomentumStable         = "Stable"
	MomentumNegative       = "Negative"
	MomentumStrongNegative = "Strong Negative"
)

// MaxDomainScore is the top of the 0-10 score scale
const MaxDomainScore = 10.0

// DomainState is one domain's standing in the system snapshot
type DomainState struct {
	Score  float64       `json:"score"` // 0-10
	Target float64       `json:"target"`
	Metric float64       `json:"metric"`
	Status domain.Status `json:"status"`
}

// SystemState is the cross-domain snapshot
type SystemState struct {
	Domains        map[string]DomainState `json:"domains"`
	OverallScore   float64                `json:"overallScore"`
	CurrentScore   float64                `json:"currentScore"`
	Trend          float64                `json:"trend"`
	Momentum       string                 `json:"momentum"`
	RecentAverage  float64                `json:"recentAverage"`
	RollingAverage float64                `json:"rollingAverage"`
}

// DomainAnalyses carries each domain analyzer's output. A nil entry means the
// domain has no data or its analyzer failed.
type DomainAnalyses struct {
	Discipline *discipline.Analysis `json:"discipline"`
	Health     *health.Analysis     `json:"health"`
	Trading    *trading.Analysis    `json:"trading"`
	Career     *career.Analysis     `json:"career"`
	Finance    *finance.Analysis    `json:"finance"`
}

// emptySystemState is the fallback when the state agent fails
func emptySystemState() SystemState {
	domains := make(map[string]DomainState, len(Domains))
	for _, name := range Domains {
		domains[name] = DomainState{Status: domain.StatusNoData}
	}
	return SystemState{Domains: domains, Momentum: MomentumStable}
}

// analyzeSystemState scores every domain against its target and derives the
// weighted overall score and the daily-score trend
func (i *Integrator) analyzeSystemState(d DomainAnalyses) SystemState {
	state := emptySystemState()

	if an := d.Discipline; an != nil {
		state.Domains[DomainDiscipline] = domainState(an.Last7Average, an.Target, an.Status)
	}
	if an := d.Health; an != nil {
		state.Domains[DomainHealth] = domainState(float64(an.ThisWeek), float64(an.Target), an.Status)
	}
	if an := d.Trading; an != nil {
		state.Domains[DomainTrading] = domainState(an.WinRate, an.TargetWinRate, an.Status)
	}
	if an := d.Career; an != nil {
		state.Domains[DomainCareer] = domainState(float64(an.ThisWeek), float64(an.Target), an.Status)
	}
	if an := d.Finance; an != nil && an.Status != domain.StatusNoData {
		// Spending is better when lower, so the ratio is inverted
		ratio := 1.0
		if an.ProjectedMonth > 0 {
			ratio = an.MonthlyBudget / an.ProjectedMonth
		}
		state.Domains[DomainFinance] = DomainState{
			Score:  MaxDomainScore * formulas.Clamp(ratio, 0, 1),
			Target: an.MonthlyBudget,
			Metric: an.ProjectedMonth,
			Status: an.Status,
		}
	}

	for _, name := range Domains {
		state.OverallScore += domainWeights[name] * state.Domains[name].Score
	}
	state.CurrentScore = state.OverallScore

	var series []float64
	if d.Discipline != nil {
		series = d.Discipline.Series
	}
	state.Trend = Trend(series)
	state.Momentum = i.classifyMomentum(state.Trend)
	if n := len(series); n > 0 {
		state.RecentAverage = formulas.Mean(series[max(0, n-3):])
		state.RollingAverage = formulas.Mean(series[max(0, n-7):])
	}
	return state
}

func domainState(metric, target float64, status domain.Status) DomainState {
	return DomainState{
		Score:  MaxDomainScore * formulas.Clamp(formulas.SafeDivide(metric, target), 0, 1),
		Target: target,
		Metric: metric,
		Status: status,
	}
}

// Trend compares the mean of the three most recent points with the mean of
// the points four to seven entries back. Short series have no trend.
func Trend(series []float64) float64 {
	n := len(series)
	if n < 4 {
		return 0
	}
	earlier := series[max(0, n-7) : n-4]
	if len(earlier) == 0 {
		return 0
	}
	return formulas.Mean(series[n-3:]) - formulas.Mean(earlier)
}

func (i *Integrator) classifyMomentum(trend float64) string {
	switch {
	case trend > i.th.StrongMomentum:
		return MomentumStrongPositive
	case trend > 0:
		return MomentumPositive
	case trend < -i.th.StrongMomentum:
		return MomentumStrongNegative
	case trend < 0:
		return MomentumNegative
	default:
		return MomentumStable
	}
}
