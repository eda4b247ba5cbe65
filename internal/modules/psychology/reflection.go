package psychology

import (
	"fmt"
	"strings"
	"time"

	"github.com/eaglepython/eagle-sub001/internal/domain"
)

// noted is a record day and whether the record carried notes
type noted struct {
	day   time.Time
	notes bool
}

func notedRecords(data domain.UserData) []noted {
	var out []noted
	add := func(date, notes string) {
		if day, err := domain.ParseDate(date); err == nil {
			out = append(out, noted{day: day, notes: strings.TrimSpace(notes) != ""})
		}
	}
	for _, r := range data.DailyScores {
		add(r.Date, r.Notes)
	}
	for _, r := range data.Workouts {
		add(r.Date, r.Notes)
	}
	for _, r := range data.Trades {
		add(r.Date, r.Notes)
	}
	for _, r := range data.Applications {
		add(r.Date, r.Notes)
	}
	for _, r := range data.Expenses {
		add(r.Date, r.Notes)
	}
	return out
}

func (c *Coach) reflection(data domain.UserData, now time.Time) ModuleResult {
	b := newBuilder(ModuleReflection, "📝",
		"Reflective practice: reviewing experience turns activity into learning.")

	total, withNotes := 0, 0
	lastNote := -1
	for _, r := range notedRecords(data) {
		ago := domain.DaysAgo(r.day, now)
		if ago < 0 {
			continue
		}
		if r.notes && (lastNote < 0 || ago < lastNote) {
			lastNote = ago
		}
		if ago < 30 {
			total++
			if r.notes {
				withNotes++
			}
		}
	}
	if total == 0 {
		return b.done()
	}

	ratio := float64(withNotes) / float64(total)
	switch {
	case ratio < c.th.ReflectionMinRatio:
		b.insight(domain.InsightWarning, "Reflection Missing",
			fmt.Sprintf("Only %d of %d recent records carry notes.", withNotes, total)).
			act(domain.InsightWarning, "Add one sentence on what worked to each entry", "Starting today",
				"Patterns become visible within two weeks")
	case ratio >= c.th.ReflectionGoodRatio:
		b.insight(domain.InsightSuccess, "Reflective Practice",
			fmt.Sprintf("%.0f%% of recent records carry notes.", ratio*100))
	}

	if lastNote < 0 || lastNote >= c.th.ReflectionReviewDays {
		b.insight(domain.InsightInsight, "Weekly Review Due",
			"No written reflection in the last week.").
			act(domain.InsightInsight, "Spend 15 minutes on Sunday reviewing the week", "This Sunday",
				"Catches drift before it becomes a slump")
	}

	return b.done()
}
