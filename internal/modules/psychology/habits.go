package psychology

import (
	"fmt"
	"time"

	"github.com/eaglepython/eagle-sub001/internal/domain"
)

// habits scans the logging chain across every collection and looks for a
// weak habit that can be stacked onto a strong one
func (c *Coach) habits(data domain.UserData, now time.Time) ModuleResult {
	b := newBuilder(ModuleHabits, "🔗",
		"Habit formation: cue, routine, reward. Automaticity builds over weeks of repetition in a stable context.")

	days := allDays(data)
	if len(days) == 0 {
		return b.done()
	}

	current, longest := domain.Streaks(days, now)
	switch {
	case current == 0:
		b.insight(domain.InsightCritical, "Habit Chain Broken",
			fmt.Sprintf("Nothing logged yesterday or today. Your longest chain was %d days.", longest)).
			act(domain.InsightCritical, "Log any single record today to restart the chain", "Today",
				"Restarts the logging habit before it decays")
	case current >= c.th.HabitStreakAutomatic:
		b.insight(domain.InsightSuccess, "Habit Automaticity",
			fmt.Sprintf("%d consecutive days logged. Tracking is becoming automatic.", current))
	}

	if active := activeDays(days, now, 14); active < c.th.HabitActiveDays14 {
		b.insight(domain.InsightWarning, "Inconsistent Habit Formation",
			fmt.Sprintf("Active on %d of the last 14 days.", active)).
			act(domain.InsightWarning, "Anchor logging to an existing routine, right after dinner", "This week",
				"Doubles the chance the habit sticks")
	}

	if anchor, weak, ok := c.stackCandidate(data, now); ok {
		b.insight(domain.InsightOpportunity, "Habit Stacking",
			fmt.Sprintf("Stack %s onto %s: do it right after you finish %s.",
				kindLabels[weak], kindLabels[anchor], kindLabels[anchor])).
			act(domain.InsightOpportunity,
				fmt.Sprintf("After %s, spend two minutes on %s", kindLabels[anchor], kindLabels[weak]),
				"Next 14 days", "Borrows the consistency of an established habit")
	}

	return b.done()
}

// stackCandidate picks the most consistent collection as the anchor and the
// first tracked-but-neglected one as the habit to stack onto it
func (c *Coach) stackCandidate(data domain.UserData, now time.Time) (anchor, weak domain.RecordKind, ok bool) {
	perKind := domainDays(data)

	best := 0
	for _, kind := range domain.AllRecordKinds {
		if n := activeDays(perKind[kind], now, 14); n >= c.th.HabitStackAnchorDays && n > best {
			anchor, best = kind, n
		}
	}
	if anchor == "" {
		return "", "", false
	}

	for _, kind := range domain.AllRecordKinds {
		if kind == anchor || len(perKind[kind]) == 0 {
			continue
		}
		if activeDays(perKind[kind], now, 14) < c.th.HabitStackWeakDays {
			return anchor, kind, true
		}
	}
	return "", "", false
}
