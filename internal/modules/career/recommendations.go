package career

import (
	"fmt"

	"github.com/eaglepython/eagle-sub001/internal/domain"
)

// Action codes of career recommendations
const (
	ActionPivotToTier1     = "PIVOT_TO_TIER1"
	ActionIncreaseVolume   = "INCREASE_VOLUME"
	ActionImproveResume    = "IMPROVE_RESUME"
	ActionInterviewPrep    = "INTERVIEW_PREP"
	ActionRaiseTargets     = "RAISE_TARGETS"
	ActionUseReferrals     = "USE_REFERRALS"
	ActionMaintainPipeline = "MAINTAIN_PIPELINE"
)

// GenerateRecommendations produces the career recommendations for an analysis
func (a *Analyzer) GenerateRecommendations(an *Analysis) []domain.Recommendation {
	recs := []domain.Recommendation{}
	if an == nil {
		return recs
	}

	if an.Tier1ThisWeek < a.th.Tier1WeeklyRequired {
		recs = append(recs, domain.Recommendation{
			Type:         domain.InsightCritical,
			Severity:     domain.PriorityCritical,
			Title:        "No Tier 1 Applications This Week",
			CurrentState: fmt.Sprintf("%d Tier1 applications this week", an.Tier1ThisWeek),
			TargetState:  fmt.Sprintf("At least %d dream-company application per week", a.th.Tier1WeeklyRequired),
			Action:       ActionPivotToTier1,
			SuggestedActions: []string{
				"Pick one Tier1 company and tailor an application today",
				"Find an engineer there and ask for a 15-minute chat",
			},
			ImpactEstimate: "Keeps the search aimed at the roles that matter",
		})
	}

	if an.ThisWeek < an.Target {
		sev, kind := domain.PriorityHigh, domain.InsightWarning
		if float64(an.ThisWeek) < float64(an.Target)/2 {
			sev, kind = domain.PriorityCritical, domain.InsightUrgent
		}
		recs = append(recs, domain.Recommendation{
			Type:         kind,
			Severity:     sev,
			Title:        "Application Volume Too Low",
			CurrentState: fmt.Sprintf("%d applications this week", an.ThisWeek),
			TargetState:  fmt.Sprintf("%d per week", an.Target),
			Missing:      fmt.Sprintf("Need %d more", an.Target-an.ThisWeek),
			Action:       ActionIncreaseVolume,
			SuggestedActions: []string{
				"Batch applications in one 2-hour block",
				"Reuse a tailored template per role type",
			},
			ImpactEstimate: "More shots on goal, more interviews",
		})
	}

	if an.TotalApplications >= a.th.ResponseMinApps && an.ResponseRate < a.th.MinResponseRate {
		recs = append(recs, domain.Recommendation{
			Type:         domain.InsightWarning,
			Severity:     domain.PriorityHigh,
			Title:        "Low Response Rate",
			CurrentState: fmt.Sprintf("%.1f%% response rate", an.ResponseRate),
			TargetState:  fmt.Sprintf("%.0f%%+", a.th.MinResponseRate),
			Action:       ActionImproveResume,
			SuggestedActions: []string{
				"Rewrite resume bullets as quantified outcomes",
				"Mirror the job description keywords",
			},
			ImpactEstimate: "2-3x more callbacks",
		})
	}

	if an.Interviews >= a.th.InterviewsNoOffer && an.Offers == 0 {
		recs = append(recs, domain.Recommendation{
			Type:         domain.InsightWarning,
			Severity:     domain.PriorityHigh,
			Title:        "Interviews Not Converting",
			CurrentState: fmt.Sprintf("%d interviews, 0 offers", an.Interviews),
			TargetState:  "At least one offer",
			Action:       ActionInterviewPrep,
			SuggestedActions: []string{
				"Run two mock interviews this week",
				"Prepare five STAR stories",
			},
			ImpactEstimate: "Higher interview-to-offer conversion",
		})
	}

	if an.Tier4Share > a.th.MaxTier4Share {
		recs = append(recs, domain.Recommendation{
			Type:         domain.InsightInsight,
			Severity:     domain.PriorityMedium,
			Title:        "Aim Higher",
			CurrentState: fmt.Sprintf("%.0f%% of applications are Tier4", an.Tier4Share),
			TargetState:  fmt.Sprintf("Under %.0f%% Tier4", a.th.MaxTier4Share),
			Action:       ActionRaiseTargets,
			SuggestedActions: []string{
				"Replace half of next week's Tier4 targets with Tier2",
			},
			ImpactEstimate: "Better roles for the same effort",
		})
	}

	if an.TotalApplications >= a.th.ReferralMinApps && an.ReferralRate < a.th.MinReferralRate {
		recs = append(recs, domain.Recommendation{
			Type:         domain.InsightOpportunity,
			Severity:     domain.PriorityMedium,
			Title:        "Use Referrals",
			CurrentState: fmt.Sprintf("%.0f%% of applications referred", an.ReferralRate),
			TargetState:  fmt.Sprintf("%.0f%%+ referred", a.th.MinReferralRate),
			Action:       ActionUseReferrals,
			SuggestedActions: []string{
				"Ask two contacts for a referral this week",
			},
			ImpactEstimate: "Referrals convert several times better than cold applications",
		})
	}

	if an.ThisWeek >= an.Target && an.Tier1ThisWeek >= a.th.Tier1WeeklyRequired {
		recs = append(recs, domain.Recommendation{
			Type:         domain.InsightSuccess,
			Severity:     domain.PriorityLow,
			Title:        "Pipeline Healthy",
			CurrentState: fmt.Sprintf("%d applications this week", an.ThisWeek),
			TargetState:  fmt.Sprintf("%d per week", an.Target),
			Action:       ActionMaintainPipeline,
			SuggestedActions: []string{
				"Follow up on applications older than 10 days",
			},
			ImpactEstimate: "Steady interview flow",
		})
	}

	return domain.SortRecommendations(recs)
}
