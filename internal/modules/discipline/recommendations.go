package discipline

import (
	"fmt"

	"github.com/eaglepython/eagle-sub001/internal/domain"
)

// GenerateRecommendations produces the "Log today" recommendations.
// Every rule is evaluated; the result is ordered by severity.
func (a *Analyzer) GenerateRecommendations(an *Analysis) []domain.Recommendation {
	recs := []domain.Recommendation{}
	if an == nil {
		return recs
	}

	if !an.LoggedToday {
		recs = append(recs, domain.Recommendation{
			Type:         domain.InsightUrgent,
			Severity:     domain.PriorityCritical,
			Title:        "Log Today's Score",
			CurrentState: fmt.Sprintf("Last entry %s", an.LatestDate),
			TargetState:  "One honest score every evening",
			Action:       "LOG_TODAY",
			SuggestedActions: []string{
				"Rate today 0-10 before bed",
				"Note the one thing that moved the score most",
			},
			ImpactEstimate: "Keeps the streak and trend data intact",
		})
	}

	if an.DaysLogged7 > 0 && an.Last7Average < a.th.SlumpAverage {
		recs = append(recs, domain.Recommendation{
			Type:         domain.InsightWarning,
			Severity:     domain.PriorityHigh,
			Title:        "Discipline Slump",
			CurrentState: fmt.Sprintf("7-day average %.1f/10", an.Last7Average),
			TargetState:  fmt.Sprintf("Back above %.1f", a.th.SlumpAverage),
			Missing:      fmt.Sprintf("Need +%.1f points", a.th.SlumpAverage-an.Last7Average),
			Action:       "RESET_ROUTINE",
			SuggestedActions: []string{
				"Pick three non-negotiables for tomorrow",
				"Win the first hour: no phone until they are done",
				"Sleep before midnight for the next 3 days",
			},
			ImpactEstimate: "+2 points within a week",
		})
	}

	if an.Last30StdDev > a.th.VarianceStdDev {
		recs = append(recs, domain.Recommendation{
			Type:         domain.InsightWarning,
			Severity:     domain.PriorityHigh,
			Title:        "Inconsistent Execution",
			CurrentState: fmt.Sprintf("Score swings ±%.1f", an.Last30StdDev),
			TargetState:  fmt.Sprintf("Std-dev under %.1f", a.th.VarianceStdDev),
			Action:       "STABILIZE",
			SuggestedActions: []string{
				"Set a minimum viable day for bad days",
				"Plan tomorrow the night before",
			},
			ImpactEstimate: "Fewer zero days, steadier compounding",
		})
	}

	if an.CurrentStreak >= a.th.StreakMilestone {
		recs = append(recs, domain.Recommendation{
			Type:         domain.InsightInsight,
			Severity:     domain.PriorityMedium,
			Title:        "Protect Your Streak",
			CurrentState: fmt.Sprintf("%d-day logging streak", an.CurrentStreak),
			TargetState:  fmt.Sprintf("Beat your record of %d days", an.LongestStreak),
			Action:       "PROTECT_STREAK",
			SuggestedActions: []string{
				"Never miss twice in a row",
			},
			ImpactEstimate: "Identity shift: you are someone who shows up",
		})
	}

	if an.DaysLogged7 > 0 && an.Last7Average >= an.Target {
		recs = append(recs, domain.Recommendation{
			Type:         domain.InsightSuccess,
			Severity:     domain.PriorityLow,
			Title:        "Elite Week",
			CurrentState: fmt.Sprintf("7-day average %.1f/10", an.Last7Average),
			TargetState:  fmt.Sprintf("Hold %.1f+", an.Target),
			Action:       "MAINTAIN",
			SuggestedActions: []string{
				"Raise one standard slightly next week",
			},
			ImpactEstimate: "Sustained top-tier output",
		})
	}

	return domain.SortRecommendations(recs)
}

// GenerateHoursRecommendations produces the "Track hours" recommendations
func (a *Analyzer) GenerateHoursRecommendations(an *Analysis) []domain.Recommendation {
	recs := []domain.Recommendation{}
	if an == nil {
		return recs
	}

	switch {
	case an.DaysWithHours7 == 0:
		recs = append(recs, domain.Recommendation{
			Type:         domain.InsightUrgent,
			Severity:     domain.PriorityCritical,
			Title:        "No Deep Work Logged",
			CurrentState: "0 focus hours this week",
			TargetState:  fmt.Sprintf("%.0f focused hours per day", a.th.TargetFocusHours),
			Action:       "TRACK_HOURS",
			SuggestedActions: []string{
				"Log focus hours with today's score",
				"Use 90-minute blocks with a timer",
			},
			ImpactEstimate: "Makes output measurable",
		})
	case an.FocusAverage7 < a.th.MinFocusHours:
		recs = append(recs, domain.Recommendation{
			Type:         domain.InsightWarning,
			Severity:     domain.PriorityHigh,
			Title:        "Deep Work Deficit",
			CurrentState: fmt.Sprintf("%.1f hours/day", an.FocusAverage7),
			TargetState:  fmt.Sprintf("%.0f hours/day", a.th.TargetFocusHours),
			Missing:      fmt.Sprintf("Need %.1f more hours/day", a.th.TargetFocusHours-an.FocusAverage7),
			Action:       "EXTEND_FOCUS",
			SuggestedActions: []string{
				"Block the first two hours of the day",
				"Batch messages into two windows",
			},
			ImpactEstimate: "+50% meaningful output",
		})
	default:
		recs = append(recs, domain.Recommendation{
			Type:         domain.InsightSuccess,
			Severity:     domain.PriorityLow,
			Title:        "Deep Work On Track",
			CurrentState: fmt.Sprintf("%.1f hours/day", an.FocusAverage7),
			TargetState:  fmt.Sprintf("%.0f hours/day", a.th.TargetFocusHours),
			Action:       "MAINTAIN",
			SuggestedActions: []string{
				"Protect the blocks that work",
			},
			ImpactEstimate: "Compounding skill growth",
		})
	}

	return domain.SortRecommendations(recs)
}
