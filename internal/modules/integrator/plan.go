package integrator

import (
	"fmt"
	"strings"

	"github.com/eaglepython/eagle-sub001/internal/domain"
	"github.com/eaglepython/eagle-sub001/internal/modules/psychology"
	"github.com/eaglepython/eagle-sub001/pkg/formulas"
)

// PredictionHorizons are the forecast horizons in months
var PredictionHorizons = []int{3, 6, 12}

// Confidence labels
const (
	ConfidenceHigh   = "High"
	ConfidenceMedium = "Medium"
	ConfidenceLow    = "Low"
)

// Master plan phase lengths in days
const (
	PhaseFixDays        = 7
	PhaseApplyDays      = 28
	PhaseCapitalizeDays = 60
)

// Prediction is a naive linear extrapolation of the overall score
type Prediction struct {
	Months     int     `json:"months"`
	Score      float64 `json:"score"`
	Confidence string  `json:"confidence"`
}

// Phase is one step of the master plan
type Phase struct {
	Name    string   `json:"name"`
	Days    int      `json:"days"`
	Goal    string   `json:"goal"`
	Actions []string `json:"actions"`
}

// Strategy is a templated weekly or monthly plan
type Strategy struct {
	Theme string   `json:"theme"`
	Steps []string `json:"steps"`
}

// SummaryUnavailable replaces the executive summary when it cannot be built
const SummaryUnavailable = "Summary unavailable for this analysis."

func emptyStrategy() Strategy {
	return Strategy{Steps: []string{}}
}

// generatePredictions extrapolates current + trend × months, clamped to the
// score scale. No smoothing or seasonality.
func generatePredictions(state SystemState) []Prediction {
	out := make([]Prediction, 0, len(PredictionHorizons))
	for _, months := range PredictionHorizons {
		out = append(out, Prediction{
			Months:     months,
			Score:      formulas.Clamp(state.CurrentScore+state.Trend*float64(months), 0, MaxDomainScore),
			Confidence: confidence(months),
		})
	}
	return out
}

func confidence(months int) string {
	switch {
	case months <= 3:
		return ConfidenceHigh
	case months <= 6:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

// healthScore is the overall score minus a penalty per critical bottleneck
func (i *Integrator) healthScore(state SystemState, bottlenecks []domain.Bottleneck) float64 {
	score := state.OverallScore
	for _, b := range bottlenecks {
		if b.Severity == domain.PriorityCritical {
			score -= i.th.CriticalPenalty
		}
	}
	return max(score, 0)
}

func executiveSummary(state SystemState, bottlenecks []domain.Bottleneck, opportunities []domain.Opportunity) string {
	top := "none"
	if len(bottlenecks) > 0 {
		top = bottlenecks[0].Domain
	}
	opp := "none"
	if len(opportunities) > 0 {
		opp = opportunities[0].Domain
	}
	return fmt.Sprintf("Overall score %.1f/10 with %s momentum (trend %+.1f). Top bottleneck: %s. Top opportunity: %s.",
		state.OverallScore, strings.ToLower(state.Momentum), state.Trend, top, opp)
}

func masterPlan(bottlenecks []domain.Bottleneck, coaching psychology.Coaching, opportunities []domain.Opportunity) []Phase {
	fix := []string{}
	for _, b := range bottlenecks[:min(3, len(bottlenecks))] {
		fix = append(fix, fmt.Sprintf("Fix %s: %s", b.Domain, b.Description))
	}

	apply := []string{}
	for _, m := range coaching.Modules {
		if len(apply) == 4 {
			break
		}
		if len(m.ActionItems) > 0 {
			apply = append(apply, fmt.Sprintf("Week %d: %s (%s)", len(apply)+1, m.Module, m.ActionItems[0].Action))
		}
	}

	capitalize := []string{}
	for _, o := range opportunities {
		capitalize = append(capitalize, fmt.Sprintf("%s: %s", o.Domain, o.Description))
	}

	return []Phase{
		{Name: "Stabilize", Days: PhaseFixDays, Goal: "Fix top 3 bottlenecks", Actions: fix},
		{Name: "Build", Days: PhaseApplyDays, Goal: "Apply one insight module per week", Actions: apply},
		{Name: "Accelerate", Days: PhaseCapitalizeDays, Goal: "Capitalize on opportunities", Actions: capitalize},
	}
}

// recommendationActions converts domain recommendations into action items
func recommendationActions(source string, recs []domain.Recommendation) []domain.ActionItem {
	out := make([]domain.ActionItem, 0, len(recs))
	for _, r := range recs {
		action := r.Title
		if len(r.SuggestedActions) > 0 {
			action = fmt.Sprintf("%s: %s", r.Title, r.SuggestedActions[0])
		}
		out = append(out, domain.ActionItem{
			Priority:       r.Severity,
			Action:         action,
			Timeline:       timeline(r.Severity),
			ImpactEstimate: r.ImpactEstimate,
			SourceModule:   source,
		})
	}
	return out
}

func timeline(p domain.Priority) string {
	switch p {
	case domain.PriorityCritical:
		return "Today"
	case domain.PriorityHigh:
		return "This week"
	default:
		return "This month"
	}
}

func weeklyStrategy(state SystemState, bottlenecks []domain.Bottleneck) Strategy {
	theme := "Maintain momentum"
	if len(bottlenecks) > 0 {
		theme = "Recover " + bottlenecks[0].Domain
	} else if state.Momentum == MomentumNegative || state.Momentum == MomentumStrongNegative {
		theme = "Stop the slide"
	}
	return Strategy{
		Theme: theme,
		Steps: []string{
			"Monday: review last week and pick 3 priorities",
			"Daily: log the score before bed",
			"Wednesday: check progress on the top priority",
			"Friday: close open loops and plan the weekend",
			"Sunday: 15-minute weekly review",
		},
	}
}

func monthlyStrategy(state SystemState, opportunities []domain.Opportunity) Strategy {
	theme := "Consolidate gains"
	if len(opportunities) > 0 {
		theme = "Leverage " + opportunities[0].Domain
	}
	if state.OverallScore < MaxDomainScore/2 {
		theme = "Rebuild the foundation"
	}
	return Strategy{
		Theme: theme,
		Steps: []string{
			"Week 1: fix the top bottleneck",
			"Week 2: add one habit on top of an existing one",
			"Week 3: push the strongest domain",
			"Week 4: review trends and reset targets",
		},
	}
}
