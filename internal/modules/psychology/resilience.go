package psychology

import (
	"fmt"
	"time"

	"github.com/eaglepython/eagle-sub001/internal/domain"
)

func (c *Coach) resilience(data domain.UserData, now time.Time) ModuleResult {
	b := newBuilder(ModuleResilience, "🛡️",
		"Resilience is how fast you return to baseline after a setback, not how rarely setbacks happen.")

	scores := scoresBetween(data, now, 0, 29)
	if len(scores) < 2 {
		return b.done()
	}

	// A low day counts once it has a following entry to judge recovery by.
	low, recovered := 0, 0
	run, longestRun := 0, 0
	for i, s := range scores {
		if s.Score < c.th.ResilienceLowScore {
			run++
			longestRun = max(longestRun, run)
		} else {
			run = 0
		}
		if i == len(scores)-1 || s.Score >= c.th.ResilienceLowScore {
			continue
		}
		low++
		if scores[i+1].Score >= c.th.ResilienceRecovered {
			recovered++
		}
	}

	if low >= c.th.ResilienceMinLowDays {
		rate := float64(recovered) / float64(low)
		switch {
		case rate < c.th.ResilienceSlowRate:
			b.insight(domain.InsightCritical, "Slow Recovery From Bad Days",
				fmt.Sprintf("Bounced back the next day after %d of %d low days.", recovered, low)).
				act(domain.InsightCritical, "Write a bad-day protocol: three minimum actions you always do", "Today",
					"Turns one bad day into one bad day, not a bad week")
		case rate >= c.th.ResilienceStrongRate:
			b.insight(domain.InsightSuccess, "Strong Bounce-Back",
				fmt.Sprintf("Recovered the next day after %d of %d low days.", recovered, low))
		}
	}

	if longestRun >= c.th.ResilienceMinLowDays {
		b.insight(domain.InsightWarning, "Extended Low Period",
			fmt.Sprintf("%d low days in a row in the last 30 days.", longestRun)).
			act(domain.InsightWarning, "Reach out to one person and share how the week is going", "This week",
				"Social support shortens low periods")
	}

	return b.done()
}
