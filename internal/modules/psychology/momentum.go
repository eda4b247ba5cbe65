package psychology

import (
	"fmt"
	"time"

	"github.com/eaglepython/eagle-sub001/internal/domain"
)

func (c *Coach) momentum(data domain.UserData, now time.Time) ModuleResult {
	b := newBuilder(ModuleMomentum, "🚀",
		"Progress principle: small visible wins drive motivation, and stalls feed on themselves.")

	thisWeek := scoresBetween(data, now, 0, 6)
	lastWeek := scoresBetween(data, now, 7, 13)
	if len(thisWeek) > 0 && len(lastWeek) > 0 {
		delta := meanScore(thisWeek) - meanScore(lastWeek)
		switch {
		case delta <= -c.th.MomentumDelta:
			b.insight(domain.InsightWarning, "Momentum Slipping",
				fmt.Sprintf("Average score down %.1f points from last week.", -delta)).
				act(domain.InsightWarning, "Win the first hour tomorrow with one finished task", "Tomorrow",
					"Reverses the slide before it compounds")
		case delta >= c.th.MomentumDelta:
			b.insight(domain.InsightSuccess, "Momentum Building",
				fmt.Sprintf("Average score up %.1f points from last week.", delta))
		}
	}

	recent, previous := 0, 0
	for _, day := range allDays(data) {
		switch ago := domain.DaysAgo(day, now); {
		case ago >= 0 && ago <= 6:
			recent++
		case ago >= 7 && ago <= 13:
			previous++
		}
	}
	switch {
	case previous > 0 && recent == 0:
		b.insight(domain.InsightCritical, "Momentum Stalled",
			fmt.Sprintf("%d records last week, none this week.", previous)).
			act(domain.InsightCritical, "Log one record in any domain today", "Today",
				"Breaks the stall with the smallest possible win")
	case previous > 0 && recent*2 < previous:
		b.insight(domain.InsightWarning, "Activity Drop",
			fmt.Sprintf("%d records this week versus %d last week.", recent, previous)).
			act(domain.InsightWarning, "Block 30 minutes each evening for your core routines", "This week",
				"Restores last week's pace")
	}

	return b.done()
}
