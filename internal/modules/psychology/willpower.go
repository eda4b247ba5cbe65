package psychology

import (
	"fmt"
	"time"

	"github.com/eaglepython/eagle-sub001/internal/domain"
	"github.com/eaglepython/eagle-sub001/pkg/formulas"
)

func (c *Coach) willpower(data domain.UserData, now time.Time) ModuleResult {
	b := newBuilder(ModuleWillpower, "🧠",
		"Self-control fluctuates with fatigue and decision load. Structure beats relying on willpower.")

	last30 := scoresBetween(data, now, 0, 29)
	if len(last30) == 0 {
		return b.done()
	}

	if last7 := scoresBetween(data, now, 0, 6); len(last7) > 0 {
		if avg := meanScore(last7); avg < c.th.WillpowerEmpty {
			b.insight(domain.InsightCritical, "Willpower Reserve Empty",
				fmt.Sprintf("7-day average score is %.1f.", avg)).
				act(domain.InsightCritical, "Remove decisions: plan meals, clothes and schedule tonight", "Tonight",
					"Frees willpower for the work that matters")
		}
	}

	if sd := formulas.StdDev(scoreValues(last30)); sd > c.th.WillpowerVariance {
		b.insight(domain.InsightWarning, "Willpower Depletion Pattern",
			fmt.Sprintf("Daily scores swing by ±%.1f. Good days are followed by crashes.", sd)).
			act(domain.InsightWarning, "Do the hardest task before noon, every day", "This week",
				"Steadier output with less effort")
	}

	var weekday, weekend []float64
	for _, s := range last30 {
		day, err := domain.ParseDate(s.Date)
		if err != nil {
			continue
		}
		if wd := day.Weekday(); wd == time.Saturday || wd == time.Sunday {
			weekend = append(weekend, s.Score)
		} else {
			weekday = append(weekday, s.Score)
		}
	}
	if len(weekday) > 0 && len(weekend) > 0 {
		if gap := formulas.Mean(weekday) - formulas.Mean(weekend); gap > c.th.WeekendGap {
			b.insight(domain.InsightInsight, "Weekend Drop",
				fmt.Sprintf("Weekend scores trail weekdays by %.1f points.", gap)).
				act(domain.InsightInsight, "Plan one anchor commitment for Saturday and Sunday mornings", "This weekend",
					"Stops losing two days a week")
		}
	}

	return b.done()
}
