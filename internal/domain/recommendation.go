package domain

import "sort"

// InsightType is the presentation category of a recommendation or insight
type InsightType string

const (
	InsightCritical    InsightType = "critical"
	InsightUrgent      InsightType = "urgent"
	InsightWarning     InsightType = "warning"
	InsightInsight     InsightType = "insight"
	InsightOpportunity InsightType = "opportunity"
	InsightSuccess     InsightType = "success"
)

// Priority returns the default priority for an insight type
func (t InsightType) Priority() Priority {
	p, err := ParsePriority(string(t))
	if err != nil {
		return PriorityMedium
	}
	return p
}

// Recommendation is one rule outcome of a recommendation generator
type Recommendation struct {
	Type             InsightType `json:"type"`
	Severity         Priority    `json:"severity"`
	Title            string      `json:"title"`
	CurrentState     string      `json:"currentState"`
	TargetState      string      `json:"targetState"`
	Missing          string      `json:"missing,omitempty"`
	Action           string      `json:"action,omitempty"` // Machine-readable code, e.g. PIVOT_TO_TIER1
	SuggestedActions []string    `json:"suggestedActions"`
	ImpactEstimate   string      `json:"impactEstimate"`
}

// ActionItem is the atomic unit the integrator ranks and truncates
type ActionItem struct {
	Priority       Priority `json:"priority"`
	Action         string   `json:"action"`
	Timeline       string   `json:"timeline"`
	ImpactEstimate string   `json:"impactEstimate"`
	SourceModule   string   `json:"sourceModule"`
}

// Insight is an observation emitted by a psychology module
type Insight struct {
	Type    InsightType `json:"type"`
	Title   string      `json:"title"`
	Message string      `json:"message"`
	Module  string      `json:"module"`
}

// Bottleneck is a domain or cross-cutting factor blocking overall progress
type Bottleneck struct {
	Domain      string   `json:"domain"`
	Severity    Priority `json:"severity"`
	Description string   `json:"description"`
	Impact      string   `json:"impact"`
}

// Opportunity is a low-effort, high-leverage improvement
type Opportunity struct {
	Domain      string `json:"domain"`
	Leverage    string `json:"leverage"` // High, Medium or Quick Win
	Description string `json:"description"`
	Impact      string `json:"impact"`
}

// SortRecommendations stable-sorts by severity rank; ties keep rule order.
// The input slice is sorted in place and returned.
func SortRecommendations(recs []Recommendation) []Recommendation {
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Severity.Rank() < recs[j].Severity.Rank()
	})
	return recs
}

// SortActionItems stable-sorts by priority (CRITICAL first)
func SortActionItems(items []ActionItem) []ActionItem {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Priority < items[j].Priority
	})
	return items
}

// SortBottlenecks stable-sorts by severity (CRITICAL first)
func SortBottlenecks(items []Bottleneck) []Bottleneck {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Severity < items[j].Severity
	})
	return items
}

// TopActionItems returns a sorted copy truncated to n items
func TopActionItems(items []ActionItem, n int) []ActionItem {
	out := make([]ActionItem, len(items))
	copy(out, items)
	SortActionItems(out)
	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out
}
