// Package integrator composes every domain analyzer, recommendation generator
// and insight module into one master analysis.
package integrator

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/eaglepython/eagle-sub001/internal/domain"
	"github.com/eaglepython/eagle-sub001/internal/modules/career"
	"github.com/eaglepython/eagle-sub001/internal/modules/discipline"
	"github.com/eaglepython/eagle-sub001/internal/modules/finance"
	"github.com/eaglepython/eagle-sub001/internal/modules/health"
	"github.com/eaglepython/eagle-sub001/internal/modules/psychology"
	"github.com/eaglepython/eagle-sub001/internal/modules/trading"
)

// Thresholds holds the integrator's rule constants
type Thresholds struct {
	StrongMomentum   float64 `yaml:"strong_momentum"`   // Trend beyond this is "strong"
	QuickWinScore    float64 `yaml:"quick_win_score"`   // Recent daily average below this is a quick win
	MaxTimeDemands   int     `yaml:"max_time_demands"`  // Domains that may need attention at once
	ConsistencyRatio float64 `yaml:"consistency_ratio"` // Share of the last 30 days with a record
	EngagedDomains   int     `yaml:"engaged_domains"`
	AlignedDomains   int     `yaml:"aligned_domains"`
	CriticalPenalty  float64 `yaml:"critical_penalty"` // Health-score cost of one critical bottleneck
	TopActions       int     `yaml:"top_actions"`
}

// DefaultThresholds returns the built-in integrator thresholds
func DefaultThresholds() Thresholds {
	return Thresholds{
		StrongMomentum:   0.5,
		QuickWinScore:    6,
		MaxTimeDemands:   2,
		ConsistencyRatio: 0.8,
		EngagedDomains:   3,
		AlignedDomains:   3,
		CriticalPenalty:  0.5,
		TopActions:       10,
	}
}

// Deps are the analyzers the integrator composes
type Deps struct {
	Discipline *discipline.Analyzer
	Health     *health.Analyzer
	Trading    *trading.Analyzer
	Career     *career.Analyzer
	Finance    *finance.Analyzer
	Coach      *psychology.Coach
}

// MasterAnalysis is the unified output. Every field is always populated,
// with empty values when the data or a sub-agent is missing.
type MasterAnalysis struct {
	GeneratedAt        time.Time                          `json:"generatedAt"`
	ExecutiveSummary   string                             `json:"executiveSummary"`
	SystemState        SystemState                        `json:"systemState"`
	Domains            DomainAnalyses                     `json:"domains"`
	Recommendations    map[string][]domain.Recommendation `json:"recommendations"`
	Coaching           psychology.Coaching                `json:"coaching"`
	Bottlenecks        []domain.Bottleneck                `json:"bottlenecks"`
	Opportunities      []domain.Opportunity               `json:"opportunities"`
	Conflicts          []Conflict                         `json:"conflicts"`
	Patterns           []Pattern                          `json:"patterns"`
	Predictions        []Prediction                       `json:"predictions"`
	MasterPlan         []Phase                            `json:"masterPlan"`
	PrioritizedActions []domain.ActionItem                `json:"prioritizedActions"`
	HealthScore        float64                            `json:"healthScore"`
	WeeklyStrategy     Strategy                           `json:"weeklyStrategy"`
	MonthlyStrategy    Strategy                           `json:"monthlyStrategy"`
	AgentErrors        []AgentError                       `json:"agentErrors"`
}

// Integrator produces master analyses
type Integrator struct {
	th   Thresholds
	deps Deps
	log  zerolog.Logger
}

// New creates an integrator
func New(th Thresholds, deps Deps, log zerolog.Logger) *Integrator {
	return &Integrator{
		th:   th,
		deps: deps,
		log:  log.With().Str("component", "integrator").Logger(),
	}
}

// DefaultDeps builds every analyzer on its default thresholds
func DefaultDeps() Deps {
	return Deps{
		Discipline: discipline.New(discipline.DefaultThresholds()),
		Health:     health.New(health.DefaultThresholds()),
		Trading:    trading.New(trading.DefaultThresholds()),
		Career:     career.New(career.DefaultThresholds()),
		Finance:    finance.New(finance.DefaultThresholds()),
		Coach:      psychology.New(psychology.DefaultThresholds()),
	}
}

// NewDefault creates an integrator with every module on default thresholds
func NewDefault(log zerolog.Logger) *Integrator {
	return New(DefaultThresholds(), DefaultDeps(), log)
}

// Analyze runs every sub-agent against the same snapshot. A failing sub-agent
// is logged, recorded in AgentErrors and replaced by its empty default.
func (i *Integrator) Analyze(data domain.UserData, now time.Time) *MasterAnalysis {
	m := &MasterAnalysis{
		GeneratedAt:     now,
		Recommendations: map[string][]domain.Recommendation{},
		AgentErrors:     []AgentError{},
	}

	m.Domains.Discipline = analyzeDomain(i, m, DomainDiscipline, data.DailyScores,
		i.deps.Discipline.Analyze, i.deps.Discipline.GenerateRecommendations)
	m.Domains.Health = analyzeDomain(i, m, DomainHealth, data.Workouts,
		i.deps.Health.Analyze, i.deps.Health.GenerateRecommendations)
	m.Domains.Trading = analyzeDomain(i, m, DomainTrading, data.Trades,
		i.deps.Trading.Analyze, i.deps.Trading.GenerateRecommendations)
	m.Domains.Career = analyzeDomain(i, m, DomainCareer, data.Applications,
		i.deps.Career.Analyze, i.deps.Career.GenerateRecommendations)
	m.Domains.Finance = analyzeDomain(i, m, DomainFinance, data.Expenses,
		i.deps.Finance.Analyze, i.deps.Finance.GenerateRecommendations)

	m.Coaching = collect(m, "psychology", runAgent(i.log, "psychology", psychology.Aggregate(nil, 0),
		func() psychology.Coaching { return i.deps.Coach.MasterCoaching(data, now) }))
	for _, failed := range m.Coaching.Failed() {
		agent := "psychology/" + failed.Module
		i.log.Warn().Str("agent", agent).Str("error", failed.Error).Msg("Insight module failed, using empty result")
		m.AgentErrors = append(m.AgentErrors, AgentError{Agent: agent, Error: failed.Error})
	}

	m.SystemState = collect(m, "systemState", runAgent(i.log, "systemState", emptySystemState(),
		func() SystemState { return i.analyzeSystemState(m.Domains) }))
	m.Bottlenecks = collect(m, "bottlenecks", runAgent(i.log, "bottlenecks", []domain.Bottleneck{},
		func() []domain.Bottleneck { return i.identifyBottlenecks(m.SystemState, m.Coaching) }))
	m.Opportunities = collect(m, "opportunities", runAgent(i.log, "opportunities", []domain.Opportunity{},
		func() []domain.Opportunity { return i.identifyOpportunities(m.SystemState, m.Coaching) }))
	m.Conflicts = collect(m, "conflicts", runAgent(i.log, "conflicts", []Conflict{},
		func() []Conflict { return i.detectConflicts(m.SystemState, m.Coaching) }))
	m.Patterns = collect(m, "patterns", runAgent(i.log, "patterns", []Pattern{},
		func() []Pattern { return i.detectPatterns(data, m.SystemState, now) }))
	m.Predictions = collect(m, "predictions", runAgent(i.log, "predictions", []Prediction{},
		func() []Prediction { return generatePredictions(m.SystemState) }))

	m.PrioritizedActions = collect(m, "prioritizedActions", runAgent(i.log, "prioritizedActions", []domain.ActionItem{},
		func() []domain.ActionItem { return i.prioritizedActions(m) }))
	m.HealthScore = collect(m, "healthScore", runAgent(i.log, "healthScore", 0.0,
		func() float64 { return i.healthScore(m.SystemState, m.Bottlenecks) }))
	m.ExecutiveSummary = collect(m, "executiveSummary", runAgent(i.log, "executiveSummary", SummaryUnavailable,
		func() string { return executiveSummary(m.SystemState, m.Bottlenecks, m.Opportunities) }))
	m.MasterPlan = collect(m, "masterPlan", runAgent(i.log, "masterPlan", []Phase{},
		func() []Phase { return masterPlan(m.Bottlenecks, m.Coaching, m.Opportunities) }))
	m.WeeklyStrategy = collect(m, "weeklyStrategy", runAgent(i.log, "weeklyStrategy", emptyStrategy(),
		func() Strategy { return weeklyStrategy(m.SystemState, m.Bottlenecks) }))
	m.MonthlyStrategy = collect(m, "monthlyStrategy", runAgent(i.log, "monthlyStrategy", emptyStrategy(),
		func() Strategy { return monthlyStrategy(m.SystemState, m.Opportunities) }))

	i.log.Debug().
		Float64("overall_score", m.SystemState.OverallScore).
		Int("bottlenecks", len(m.Bottlenecks)).
		Int("agent_errors", len(m.AgentErrors)).
		Msg("Master analysis complete")

	return m
}

type domainOutput[A any] struct {
	analysis *A
	recs     []domain.Recommendation
}

// analyzeDomain runs one analyzer and its generator as a single sub-agent
func analyzeDomain[R, A any](
	i *Integrator,
	m *MasterAnalysis,
	name string,
	records []R,
	analyze domain.Analyzer[R, A],
	generate domain.RecommendationGenerator[A],
) *A {
	out := collect(m, name, runAgent(i.log, name, domainOutput[A]{recs: []domain.Recommendation{}}, func() domainOutput[A] {
		an := analyze(records, m.GeneratedAt)
		return domainOutput[A]{analysis: an, recs: generate(an)}
	}))
	m.Recommendations[name] = out.recs
	return out.analysis
}

// prioritizedActions merges domain recommendations and coaching action items
// and keeps the top ones by priority
func (i *Integrator) prioritizedActions(m *MasterAnalysis) []domain.ActionItem {
	var all []domain.ActionItem
	for _, name := range Domains {
		all = append(all, recommendationActions(name, m.Recommendations[name])...)
	}
	all = append(all, m.Coaching.ActionItems...)
	return domain.TopActionItems(all, i.th.TopActions)
}
