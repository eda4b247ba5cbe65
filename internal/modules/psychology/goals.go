package psychology

import (
	"fmt"
	"strings"
	"time"

	"github.com/eaglepython/eagle-sub001/internal/domain"
)

func (c *Coach) goals(data domain.UserData, now time.Time) ModuleResult {
	b := newBuilder(ModuleGoals, "🏁",
		"Goal-setting theory: few specific goals beat many vague ones. Implementation intentions close the intention-action gap.")

	if data.IsEmpty() {
		return b.done()
	}

	last30 := scoresBetween(data, now, 0, 29)
	areas := map[string]struct{}{}
	for _, s := range last30 {
		for _, a := range s.Areas {
			if a = strings.ToLower(strings.TrimSpace(a)); a != "" {
				areas[a] = struct{}{}
			}
		}
	}

	switch {
	case len(areas) > c.th.GoalsMaxAreas:
		b.insight(domain.InsightWarning, "Too Many Priorities",
			fmt.Sprintf("%d focus areas in the last 30 days. Attention is spread thin.", len(areas))).
			act(domain.InsightWarning, "Pick the top 3 areas for this month and park the rest", "This week",
				"Concentrated effort compounds faster")
	case len(last30) > 0 && len(areas) == 0:
		b.insight(domain.InsightInsight, "Define Your Focus Areas",
			"Daily scores carry no focus areas, so progress cannot be tied to goals.").
			act(domain.InsightInsight, "Tag each daily score with the 1-3 areas you worked on", "Tonight",
				"Links daily effort to long-term goals")
	}

	perKind := domainDays(data)
	active := 0
	for _, kind := range domain.AllRecordKinds {
		if activeDays(perKind[kind], now, 14) > 0 {
			active++
		}
	}
	switch {
	case active >= c.th.GoalsAlignedDomains:
		b.insight(domain.InsightSuccess, "Multi-Domain Alignment",
			fmt.Sprintf("%d life domains moved forward in the last two weeks.", active))
	case active == c.th.GoalsSingleDomain:
		b.insight(domain.InsightInsight, "Single-Domain Focus",
			"Only one life domain was active in the last two weeks.").
			act(domain.InsightInsight, "Schedule one small weekly action in a neglected domain", "This week",
				"Prevents silent decline elsewhere")
	}

	return b.done()
}
