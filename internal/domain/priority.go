package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Priority is the urgency of a recommendation or action item.
// Lower values sort first: CRITICAL < HIGH < MEDIUM < LOW.
type Priority int

const (
	PriorityCritical Priority = iota
	PriorityHigh
	PriorityMedium
	PriorityLow
)

var priorityNames = map[Priority]string{
	PriorityCritical: "CRITICAL",
	PriorityHigh:     "HIGH",
	PriorityMedium:   "MEDIUM",
	PriorityLow:      "LOW",
}

// String returns the upper-case label of the priority
func (p Priority) String() string {
	if name, ok := priorityNames[p]; ok {
		return name
	}
	return fmt.Sprintf("Priority(%d)", int(p))
}

// Valid reports whether p is one of the four defined priorities
func (p Priority) Valid() bool {
	_, ok := priorityNames[p]
	return ok
}

// Rank is the sort rank used when ordering recommendations from one generator.
// MEDIUM and LOW share a rank so insight-level items keep rule order.
func (p Priority) Rank() int {
	switch p {
	case PriorityCritical:
		return 0
	case PriorityHigh:
		return 1
	default:
		return 2
	}
}

// ParsePriority converts a label into a Priority.
//
// Besides the four canonical labels it accepts the insight-style labels used by
// the generators (urgent, warning, insight, opportunity, success). Unknown labels
// are an error; there is no fallback priority.
func ParsePriority(label string) (Priority, error) {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "critical", "urgent":
		return PriorityCritical, nil
	case "high", "warning":
		return PriorityHigh, nil
	case "medium", "insight", "opportunity":
		return PriorityMedium, nil
	case "low", "success":
		return PriorityLow, nil
	}
	return 0, fmt.Errorf("unknown priority: %q", label)
}

// MarshalJSON encodes the priority as its label
func (p Priority) MarshalJSON() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("invalid priority: %d", int(p))
	}
	return json.Marshal(p.String())
}

// UnmarshalJSON decodes a priority label
func (p *Priority) UnmarshalJSON(data []byte) error {
	var label string
	if err := json.Unmarshal(data, &label); err != nil {
		return fmt.Errorf("priority must be a string: %w", err)
	}
	parsed, err := ParsePriority(label)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
