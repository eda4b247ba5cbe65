package finance

import (
	"fmt"

	"github.com/eaglepython/eagle-sub001/internal/domain"
)

// GenerateRecommendations produces the budgeting recommendations for an analysis
func (a *Analyzer) GenerateRecommendations(an *Analysis) []domain.Recommendation {
	recs := []domain.Recommendation{}
	if an == nil {
		return recs
	}

	if an.ProjectedMonth > an.MonthlyBudget {
		over := an.ProjectedMonth - an.MonthlyBudget
		recs = append(recs, domain.Recommendation{
			Type:         domain.InsightUrgent,
			Severity:     domain.PriorityCritical,
			Title:        "Over Budget Pace",
			CurrentState: fmt.Sprintf("Projected %.2f this month", an.ProjectedMonth),
			TargetState:  fmt.Sprintf("Budget %.2f", an.MonthlyBudget),
			Missing:      fmt.Sprintf("Cut %.2f per day", over/30),
			Action:       "CUT_SPENDING",
			SuggestedActions: []string{
				"Freeze non-essential purchases for 7 days",
				fmt.Sprintf("Set a daily cap on %s", an.TopCategory),
			},
			ImpactEstimate: fmt.Sprintf("Saves %.2f this month", over),
		})
	}

	if an.Spend30 > 0 && an.NonEssentialShare > a.th.MaxNonEssentialPct {
		recs = append(recs, domain.Recommendation{
			Type:         domain.InsightWarning,
			Severity:     domain.PriorityHigh,
			Title:        "Discretionary Spending High",
			CurrentState: fmt.Sprintf("%.0f%% of spend is non-essential", an.NonEssentialShare),
			TargetState:  fmt.Sprintf("Under %.0f%%", a.th.MaxNonEssentialPct),
			Action:       "TRIM_DISCRETIONARY",
			SuggestedActions: []string{
				"Apply a 48-hour wait before any non-essential purchase",
			},
			ImpactEstimate: "Frees cash for savings and investing",
		})
	}

	if len(an.ByCategory) >= a.th.MinCategories && an.TopCategoryShare > a.th.MaxCategoryPct {
		recs = append(recs, domain.Recommendation{
			Type:         domain.InsightInsight,
			Severity:     domain.PriorityMedium,
			Title:        fmt.Sprintf("Concentrated Spending: %s", an.TopCategory),
			CurrentState: fmt.Sprintf("%.0f%% of spend in one category", an.TopCategoryShare),
			TargetState:  fmt.Sprintf("Under %.0f%%", a.th.MaxCategoryPct),
			Action:       "REVIEW_CATEGORY",
			SuggestedActions: []string{
				fmt.Sprintf("List every %s expense from last month and cut the bottom third", an.TopCategory),
			},
			ImpactEstimate: "Largest single lever on the budget",
		})
	}

	if an.DaysSinceLast >= a.th.TrackingGapDays {
		recs = append(recs, domain.Recommendation{
			Type:         domain.InsightWarning,
			Severity:     domain.PriorityHigh,
			Title:        "Tracking Gap",
			CurrentState: fmt.Sprintf("No expense logged for %d days", an.DaysSinceLast),
			TargetState:  "Log spending daily",
			Action:       "LOG_EXPENSES",
			SuggestedActions: []string{
				"Reconcile with your bank statement tonight",
			},
			ImpactEstimate: "Accurate projections",
		})
	}

	if an.Spend30 > 0 && an.ProjectedMonth <= an.MonthlyBudget {
		recs = append(recs, domain.Recommendation{
			Type:         domain.InsightSuccess,
			Severity:     domain.PriorityLow,
			Title:        "On Budget",
			CurrentState: fmt.Sprintf("Projected %.2f of %.2f", an.ProjectedMonth, an.MonthlyBudget),
			TargetState:  "Stay under budget",
			Action:       "MAINTAIN",
			SuggestedActions: []string{
				"Move the projected surplus to savings now",
			},
			ImpactEstimate: fmt.Sprintf("%.2f surplus", an.MonthlyBudget-an.ProjectedMonth),
		})
	}

	return domain.SortRecommendations(recs)
}
