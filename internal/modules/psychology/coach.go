// Package psychology holds the eight rule-based insight modules and the master
// coaching aggregator that merges them.
//
// Each module is a pure function of the user's full record set. Modules never
// call each other; anything they share lives in the signal helpers.
package psychology

import (
	"fmt"
	"time"

	"github.com/eaglepython/eagle-sub001/internal/domain"
)

// Module names
const (
	ModuleHabits     = "habits"
	ModuleWillpower  = "willpower"
	ModuleEnergy     = "energy"
	ModuleFocus      = "focus"
	ModuleGoals      = "goals"
	ModuleMomentum   = "momentum"
	ModuleResilience = "resilience"
	ModuleReflection = "reflection"
)

// DefaultTopPriorities is how many action items MasterCoaching keeps
const DefaultTopPriorities = 5

// ModuleResult is the output of one insight module
type ModuleResult struct {
	Module      string              `json:"module"`
	Icon        string              `json:"icon"`
	Insights    []domain.Insight    `json:"insights"`
	ActionItems []domain.ActionItem `json:"actionItems"`
	ScienceBase string              `json:"scienceBase"`
	Error       string              `json:"error,omitempty"` // Set when the module panicked
}

// HasCritical reports whether the module emitted a critical insight
func (r ModuleResult) HasCritical() bool {
	for _, in := range r.Insights {
		if in.Type == domain.InsightCritical {
			return true
		}
	}
	return false
}

// InsightModule scans user data and emits insights with matching action items
type InsightModule func(data domain.UserData, now time.Time) ModuleResult

// Coaching is the merged output of every insight module
type Coaching struct {
	Modules        []ModuleResult      `json:"modules"`
	Insights       []domain.Insight    `json:"insights"`
	ActionItems    []domain.ActionItem `json:"actionItems"`
	CriticalIssues []domain.Insight    `json:"criticalIssues"`
	Priorities     []domain.ActionItem `json:"priorities"`
	TotalInsights  int                 `json:"totalInsights"`
}

// Coach owns the registered insight modules
type Coach struct {
	th      Thresholds
	names   []string
	modules map[string]InsightModule
}

// New creates a coach with the eight built-in modules registered in display order
func New(th Thresholds) *Coach {
	c := &Coach{th: th, modules: map[string]InsightModule{}}
	c.Register(ModuleHabits, c.habits)
	c.Register(ModuleWillpower, c.willpower)
	c.Register(ModuleEnergy, c.energy)
	c.Register(ModuleFocus, c.focus)
	c.Register(ModuleGoals, c.goals)
	c.Register(ModuleMomentum, c.momentum)
	c.Register(ModuleResilience, c.resilience)
	c.Register(ModuleReflection, c.reflection)
	return c
}

// Register adds or replaces a module. New names are appended to the run order.
func (c *Coach) Register(name string, module InsightModule) {
	if _, exists := c.modules[name]; !exists {
		c.names = append(c.names, name)
	}
	c.modules[name] = module
}

// Names returns the module names in run order
func (c *Coach) Names() []string {
	return append([]string(nil), c.names...)
}

// Module returns a registered module by name
func (c *Coach) Module(name string) (InsightModule, error) {
	m, ok := c.modules[name]
	if !ok {
		return nil, fmt.Errorf("insight module not found: %s", name)
	}
	return m, nil
}

// MasterCoaching runs every module against the same snapshot and aggregates them.
// A module that panics contributes an empty result carrying the error.
func (c *Coach) MasterCoaching(data domain.UserData, now time.Time) Coaching {
	results := make([]ModuleResult, 0, len(c.names))
	for _, name := range c.names {
		results = append(results, runModule(name, c.modules[name], data, now))
	}
	return Aggregate(results, DefaultTopPriorities)
}

func runModule(name string, module InsightModule, data domain.UserData, now time.Time) (res ModuleResult) {
	defer func() {
		if r := recover(); r != nil {
			res = ModuleResult{
				Module:      name,
				Insights:    []domain.Insight{},
				ActionItems: []domain.ActionItem{},
				Error:       fmt.Sprintf("panic: %v", r),
			}
		}
	}()
	res = module(data, now)
	res.Module = name
	return res
}

// Failed returns the module results that carry an error
func (c Coaching) Failed() []ModuleResult {
	var out []ModuleResult
	for _, r := range c.Modules {
		if r.Error != "" {
			out = append(out, r)
		}
	}
	return out
}

// Aggregate concatenates module results in order, tags every insight and action
// item with its module, collects critical insights, and keeps the top
// action items sorted by priority.
func Aggregate(results []ModuleResult, top int) Coaching {
	out := Coaching{
		Modules:        results,
		Insights:       []domain.Insight{},
		ActionItems:    []domain.ActionItem{},
		CriticalIssues: []domain.Insight{},
	}

	for _, r := range results {
		for _, in := range r.Insights {
			in.Module = r.Module
			out.Insights = append(out.Insights, in)
			if in.Type == domain.InsightCritical {
				out.CriticalIssues = append(out.CriticalIssues, in)
			}
		}
		for _, item := range r.ActionItems {
			item.SourceModule = r.Module
			out.ActionItems = append(out.ActionItems, item)
		}
	}

	domain.SortActionItems(out.ActionItems)
	out.Priorities = domain.TopActionItems(out.ActionItems, top)
	out.TotalInsights = len(out.Insights)
	return out
}

// builder accumulates the output of one module run
type builder struct {
	result ModuleResult
}

func newBuilder(module, icon, science string) *builder {
	return &builder{result: ModuleResult{
		Module:      module,
		Icon:        icon,
		Insights:    []domain.Insight{},
		ActionItems: []domain.ActionItem{},
		ScienceBase: science,
	}}
}

func (b *builder) insight(kind domain.InsightType, title, message string) *builder {
	b.result.Insights = append(b.result.Insights, domain.Insight{
		Type:    kind,
		Title:   title,
		Message: message,
		Module:  b.result.Module,
	})
	return b
}

// act attaches an action item whose priority follows the insight type
func (b *builder) act(kind domain.InsightType, action, timeline, impact string) *builder {
	b.result.ActionItems = append(b.result.ActionItems, domain.ActionItem{
		Priority:       kind.Priority(),
		Action:         action,
		Timeline:       timeline,
		ImpactEstimate: impact,
		SourceModule:   b.result.Module,
	})
	return b
}

func (b *builder) done() ModuleResult {
	return b.result
}
