package integrator

import (
	"fmt"
	"strings"
	"time"

	"github.com/eaglepython/eagle-sub001/internal/domain"
	"github.com/eaglepython/eagle-sub001/internal/modules/psychology"
)

// Synthetic bottleneck domains raised by insight modules
const (
	BottleneckEnergy = "Energy/Recovery"
	BottleneckFocus  = "Focus/Attention"
)

// Leverage labels of opportunities
const (
	LeverageHigh     = "High"
	LeverageMedium   = "Medium"
	LeverageQuickWin = "Quick Win"
)

// Conflict types
const (
	ConflictTimeDemand    = "TIME_OVERCOMMITMENT"
	ConflictEnergyVsFocus = "ENERGY_VS_FOCUS"
)

// Pattern names
const (
	PatternDailyConsistency = "Daily Consistency"
	PatternMultiDomain      = "Multi-Domain Engagement"
	PatternTrajectory       = "Positive Trajectory"
	PatternGoalAlignment    = "Goal Alignment"
)

// Conflict is a set of domains competing for the same limited resource
type Conflict struct {
	Type        string   `json:"type"`
	Domains     []string `json:"domains"`
	Description string   `json:"description"`
	Resolution  string   `json:"resolution"`
}

// Pattern is one named behavioral pattern check
type Pattern struct {
	Name        string `json:"name"`
	Detected    bool   `json:"detected"`
	Description string `json:"description"`
}

func moduleResult(c psychology.Coaching, name string) psychology.ModuleResult {
	for _, m := range c.Modules {
		if m.Module == name {
			return m
		}
	}
	return psychology.ModuleResult{Module: name}
}

// identifyBottlenecks turns every domain that needs attention into a
// bottleneck and adds the energy and focus bottlenecks raised by coaching
func (i *Integrator) identifyBottlenecks(state SystemState, coaching psychology.Coaching) []domain.Bottleneck {
	out := []domain.Bottleneck{}
	for _, name := range Domains {
		ds := state.Domains[name]
		if !ds.Status.NeedsAttention() {
			continue
		}
		severity := domain.PriorityHigh
		if ds.Status == domain.StatusCritical {
			severity = domain.PriorityCritical
		}
		out = append(out, domain.Bottleneck{
			Domain:      domainLabels[name],
			Severity:    severity,
			Description: fmt.Sprintf("%s is at %.1f/10 (%s)", domainLabels[name], ds.Score, ds.Status),
			Impact:      fmt.Sprintf("Holds back %.0f%% of the overall score", domainWeights[name]*100),
		})
	}

	if moduleResult(coaching, psychology.ModuleEnergy).HasCritical() {
		out = append(out, domain.Bottleneck{
			Domain:      BottleneckEnergy,
			Severity:    domain.PriorityCritical,
			Description: "Energy is critically low",
			Impact:      "Every other domain runs on the energy left over",
		})
	}
	if moduleResult(coaching, psychology.ModuleFocus).HasCritical() {
		out = append(out, domain.Bottleneck{
			Domain:      BottleneckFocus,
			Severity:    domain.PriorityCritical,
			Description: "Attention is fragmented",
			Impact:      "Hours are logged but little deep work gets done",
		})
	}

	return domain.SortBottlenecks(out)
}

// identifyOpportunities runs the synergy, habit-stacking and quick-win checks
func (i *Integrator) identifyOpportunities(state SystemState, coaching psychology.Coaching) []domain.Opportunity {
	out := []domain.Opportunity{}

	var healthy []string
	for _, name := range Domains {
		if state.Domains[name].Status.Healthy() {
			healthy = append(healthy, domainLabels[name])
		}
	}
	if len(healthy) >= 2 {
		out = append(out, domain.Opportunity{
			Domain:      strings.Join(healthy[:2], " + "),
			Leverage:    LeverageHigh,
			Description: fmt.Sprintf("%s and %s are both on track. Link them into one daily routine.", healthy[0], healthy[1]),
			Impact:      "Gains in one domain reinforce the other",
		})
	}

	for _, in := range moduleResult(coaching, psychology.ModuleHabits).Insights {
		if in.Type == domain.InsightOpportunity {
			out = append(out, domain.Opportunity{
				Domain:      "Habits",
				Leverage:    LeverageMedium,
				Description: in.Message,
				Impact:      "New habit rides on an established one",
			})
		}
	}

	if state.Domains[DomainDiscipline].Status != domain.StatusNoData && state.RecentAverage < i.th.QuickWinScore {
		out = append(out, domain.Opportunity{
			Domain:      domainLabels[DomainDiscipline],
			Leverage:    LeverageQuickWin,
			Description: fmt.Sprintf("Recent daily average is %.1f. One early win each morning lifts the whole day.", state.RecentAverage),
			Impact:      "+1-2 points on the daily score within a week",
		})
	}

	return out
}

// detectConflicts flags too many domains demanding time at once, and the
// energy and focus crises competing for the same recovery
func (i *Integrator) detectConflicts(state SystemState, coaching psychology.Coaching) []Conflict {
	out := []Conflict{}

	var demanding []string
	for _, name := range Domains {
		if state.Domains[name].Status.NeedsAttention() {
			demanding = append(demanding, domainLabels[name])
		}
	}
	if len(demanding) > i.th.MaxTimeDemands {
		out = append(out, Conflict{
			Type:        ConflictTimeDemand,
			Domains:     demanding,
			Description: fmt.Sprintf("%d domains need more time at once", len(demanding)),
			Resolution:  "Pick the two highest-weight domains for the next 7 days and hold the rest at maintenance",
		})
	}

	if moduleResult(coaching, psychology.ModuleEnergy).HasCritical() &&
		moduleResult(coaching, psychology.ModuleFocus).HasCritical() {
		out = append(out, Conflict{
			Type:        ConflictEnergyVsFocus,
			Domains:     []string{BottleneckFocus, BottleneckEnergy},
			Description: "Energy and focus are both in crisis",
			Resolution:  "Fix distraction first, then recovery",
		})
	}

	return out
}

// detectPatterns evaluates the four named patterns. All four are always
// reported with their detection flag.
func (i *Integrator) detectPatterns(data domain.UserData, state SystemState, now time.Time) []Pattern {
	var days []time.Time
	for _, d := range data.Dates() {
		if day, err := domain.ParseDate(d); err == nil && domain.InWindow(day, now, 30) {
			days = append(days, day)
		}
	}
	ratio := float64(len(domain.DistinctDays(days))) / 30

	engaged := 0
	for _, kind := range domain.AllRecordKinds {
		if i.activeWithin(data, kind, now, 7) {
			engaged++
		}
	}

	aligned := 0
	for _, name := range Domains {
		if state.Domains[name].Status.Healthy() {
			aligned++
		}
	}

	return []Pattern{
		{
			Name:        PatternDailyConsistency,
			Detected:    ratio >= i.th.ConsistencyRatio,
			Description: fmt.Sprintf("Logged on %.0f%% of the last 30 days", ratio*100),
		},
		{
			Name:        PatternMultiDomain,
			Detected:    engaged >= i.th.EngagedDomains,
			Description: fmt.Sprintf("%d domains active in the last 7 days", engaged),
		},
		{
			Name:        PatternTrajectory,
			Detected:    state.Trend > 0,
			Description: fmt.Sprintf("Daily score trend %+.1f", state.Trend),
		},
		{
			Name:        PatternGoalAlignment,
			Detected:    aligned >= i.th.AlignedDomains,
			Description: fmt.Sprintf("%d domains at or near target", aligned),
		},
	}
}

func (i *Integrator) activeWithin(data domain.UserData, kind domain.RecordKind, now time.Time, window int) bool {
	for _, d := range data.DatesOf(kind) {
		if day, err := domain.ParseDate(d); err == nil && domain.InWindow(day, now, window) {
			return true
		}
	}
	return false
}
