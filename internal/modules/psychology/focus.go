package psychology

import (
	"fmt"
	"time"

	"github.com/eaglepython/eagle-sub001/internal/domain"
)

func (c *Coach) focus(data domain.UserData, now time.Time) ModuleResult {
	b := newBuilder(ModuleFocus, "🎯",
		"Deep work: attention residue from task switching lowers performance; long uninterrupted blocks produce most valuable output.")

	last7 := scoresBetween(data, now, 0, 6)
	if len(last7) == 0 {
		return b.done()
	}

	total, logged := 0.0, 0
	for _, s := range last7 {
		if s.FocusHours > 0 {
			total += s.FocusHours
			logged++
		}
	}
	if logged == 0 {
		b.insight(domain.InsightWarning, "Focus Untracked", "No deep-work hours logged this week.").
			act(domain.InsightWarning, "Log deep-work hours with tonight's score", "Tonight",
				"What gets measured gets managed")
		return b.done()
	}

	avg := total / float64(logged)
	switch {
	case avg < c.th.FocusCritical:
		b.insight(domain.InsightCritical, "Attention Fragmented",
			fmt.Sprintf("Only %.1f focused hours per day.", avg)).
			act(domain.InsightCritical, "Phone in another room for one 90-minute block", "Tomorrow morning",
				"Doubles meaningful output")
	case avg < c.th.FocusLow:
		b.insight(domain.InsightWarning, "Shallow Work Dominant",
			fmt.Sprintf("%.1f focused hours per day.", avg)).
			act(domain.InsightWarning, "Batch email and chat into two fixed windows", "This week",
				"+1-2 deep hours per day")
	case avg >= c.th.FocusElite:
		b.insight(domain.InsightSuccess, "Deep Work Mastery",
			fmt.Sprintf("%.1f focused hours per day.", avg)).
			act(domain.InsightSuccess, "Protect the schedule that produced this week", "Ongoing",
				"Sustained elite output")
	}

	return b.done()
}
