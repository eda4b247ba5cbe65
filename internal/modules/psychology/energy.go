package psychology

import (
	"fmt"
	"time"

	"github.com/eaglepython/eagle-sub001/internal/domain"
	"github.com/eaglepython/eagle-sub001/pkg/formulas"
)

func (c *Coach) energy(data domain.UserData, now time.Time) ModuleResult {
	b := newBuilder(ModuleEnergy, "⚡",
		"Energy, not time, is the limiting resource: sleep, movement and recovery set the daily ceiling.")

	last7 := scoresBetween(data, now, 0, 6)
	if len(last7) == 0 {
		return b.done()
	}

	var levels []float64
	for _, s := range last7 {
		if s.Energy > 0 {
			levels = append(levels, s.Energy)
		}
	}
	if len(levels) == 0 {
		b.insight(domain.InsightInsight, "Energy Untracked", "No energy levels logged this week.").
			act(domain.InsightInsight, "Rate your energy 1-10 with each daily score", "Tonight",
				"Reveals what drains and what restores you")
		return b.done()
	}

	avg := formulas.Mean(levels)
	switch {
	case avg < c.th.EnergyCritical:
		b.insight(domain.InsightCritical, "Energy Crisis",
			fmt.Sprintf("Average energy %.1f/10 this week. Everything else is running on empty.", avg)).
			act(domain.InsightCritical, "Sleep 8 hours for 3 nights, no screens after 22:00", "Next 3 nights",
				"Restores the baseline every other domain depends on")
	case avg < c.th.EnergyLow:
		b.insight(domain.InsightWarning, "Low Energy",
			fmt.Sprintf("Average energy %.1f/10 this week.", avg)).
			act(domain.InsightWarning, "Fix a consistent wake time and get daylight within 30 minutes", "This week",
				"+1-2 energy points")
	case avg >= c.th.EnergyHigh:
		b.insight(domain.InsightSuccess, "High Energy",
			fmt.Sprintf("Average energy %.1f/10. Use it on the hardest problems.", avg))
	}

	workouts7 := 0
	var intensity []float64
	for _, d := range domain.SortByDate(data.Workouts, func(r domain.Workout) string { return r.Date }) {
		if domain.InWindow(d.Day, now, 7) {
			workouts7++
			intensity = append(intensity, d.Record.Intensity)
		}
	}
	if workouts7 == 0 && avg < c.th.EnergyLow {
		b.insight(domain.InsightInsight, "Movement Boosts Energy",
			"No workouts this week while energy is low.").
			act(domain.InsightInsight, "Take a 20-minute walk before lunch", "Tomorrow",
				"Quick energy lift without extra fatigue")
	}
	if workouts7 > 0 && formulas.Mean(intensity) > c.th.OvertrainingIntensity && avg < c.th.EnergyLow {
		b.insight(domain.InsightWarning, "Overtraining Signal",
			"High training intensity while energy is low.").
			act(domain.InsightWarning, "Replace the next hard session with mobility work", "Next session",
				"Recovery catches up with training load")
	}

	return b.done()
}
