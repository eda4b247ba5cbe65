package health

import (
	"fmt"

	"github.com/eaglepython/eagle-sub001/internal/domain"
)

// GenerateRecommendations produces the fitness recommendations for an analysis
func (a *Analyzer) GenerateRecommendations(an *Analysis) []domain.Recommendation {
	recs := []domain.Recommendation{}
	if an == nil {
		return recs
	}

	if an.ThisWeek < an.Target {
		rec := domain.Recommendation{
			Type:         domain.InsightWarning,
			Severity:     domain.PriorityHigh,
			Title:        "Weekly Volume Too Low",
			CurrentState: fmt.Sprintf("%d workouts this week", an.ThisWeek),
			TargetState:  fmt.Sprintf("%d workouts per week", an.Target),
			Missing:      fmt.Sprintf("Need %d more", an.Target-an.ThisWeek),
			Action:       "INCREASE_VOLUME",
			SuggestedActions: []string{
				"Schedule the remaining sessions in your calendar now",
				"A 20-minute session still counts",
			},
			ImpactEstimate: "Energy and focus lift within two weeks",
		}
		if float64(an.ThisWeek) < float64(an.Target)/2 {
			rec.Type = domain.InsightUrgent
			rec.Severity = domain.PriorityCritical
		}
		recs = append(recs, rec)
	}

	if an.DaysSinceLast >= a.th.MaxIdleDays {
		recs = append(recs, domain.Recommendation{
			Type:         domain.InsightWarning,
			Severity:     domain.PriorityHigh,
			Title:        "Momentum Break",
			CurrentState: fmt.Sprintf("%d days since last workout", an.DaysSinceLast),
			TargetState:  fmt.Sprintf("Never more than %d days off", a.th.MaxIdleDays-1),
			Action:       "RESTART_TODAY",
			SuggestedActions: []string{
				"Do a short session today, any type",
			},
			ImpactEstimate: "Prevents the habit from decaying",
		})
	}

	if an.StrengthLast28 == 0 && an.Last28 >= a.th.StrengthMinSamples {
		recs = append(recs, domain.Recommendation{
			Type:         domain.InsightInsight,
			Severity:     domain.PriorityMedium,
			Title:        "No Strength Training",
			CurrentState: "0 strength sessions in 4 weeks",
			TargetState:  "At least 2 strength sessions per week",
			Action:       "ADD_STRENGTH",
			SuggestedActions: []string{
				"Swap two cardio sessions for compound lifts",
			},
			ImpactEstimate: "Better posture, resilience and energy",
		})
	}

	if an.AverageIntensity > a.th.HighIntensity && an.Last28 >= a.th.HighIntensityMin {
		recs = append(recs, domain.Recommendation{
			Type:         domain.InsightWarning,
			Severity:     domain.PriorityHigh,
			Title:        "Recovery Risk",
			CurrentState: fmt.Sprintf("Average intensity %.1f/10", an.AverageIntensity),
			TargetState:  fmt.Sprintf("Average at or below %.0f", a.th.HighIntensity),
			Action:       "DELOAD",
			SuggestedActions: []string{
				"Make one session per week a light recovery day",
				"Prioritize 8 hours of sleep",
			},
			ImpactEstimate: "Lower injury and burnout risk",
		})
	}

	if an.Last28 > 0 && an.AverageIntensity < a.th.LowIntensity {
		recs = append(recs, domain.Recommendation{
			Type:         domain.InsightInsight,
			Severity:     domain.PriorityMedium,
			Title:        "Intensity Too Low",
			CurrentState: fmt.Sprintf("Average intensity %.1f/10", an.AverageIntensity),
			TargetState:  fmt.Sprintf("At least %.0f/10", a.th.LowIntensity),
			Action:       "PUSH_HARDER",
			SuggestedActions: []string{
				"Add one interval or heavy set per session",
			},
			ImpactEstimate: "Faster fitness gains for the same time",
		})
	}

	if an.ThisWeek >= an.Target && an.Consistency == domain.ConsistencyHigh {
		recs = append(recs, domain.Recommendation{
			Type:         domain.InsightSuccess,
			Severity:     domain.PriorityLow,
			Title:        "Training On Target",
			CurrentState: fmt.Sprintf("%d workouts this week", an.ThisWeek),
			TargetState:  fmt.Sprintf("%d per week", an.Target),
			Action:       "MAINTAIN",
			SuggestedActions: []string{
				"Keep the schedule, vary the stimulus",
			},
			ImpactEstimate: "Sustained energy baseline",
		})
	}

	return domain.SortRecommendations(recs)
}
