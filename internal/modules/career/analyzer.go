// Package career analyzes job applications and generates career recommendations.
package career

import (
	"time"

	"github.com/eaglepython/eagle-sub001/internal/domain"
	"github.com/eaglepython/eagle-sub001/pkg/formulas"
)

// Thresholds holds the job-search targets and rule breakpoints
type Thresholds struct {
	WeeklyTarget        int     `yaml:"weekly_target"`
	MinResponseRate     float64 `yaml:"min_response_rate"` // Percent
	ResponseMinApps     int     `yaml:"response_min_applications"`
	InterviewsNoOffer   int     `yaml:"interviews_without_offer"`
	MaxTier4Share       float64 `yaml:"max_tier4_share"` // Percent
	MinReferralRate     float64 `yaml:"min_referral_rate"`
	ReferralMinApps     int     `yaml:"referral_min_applications"`
	Tier1WeeklyRequired int     `yaml:"tier1_weekly_required"`
}

// DefaultThresholds returns the built-in career thresholds
func DefaultThresholds() Thresholds {
	return Thresholds{
		WeeklyTarget:        10,
		MinResponseRate:     10,
		ResponseMinApps:     10,
		InterviewsNoOffer:   3,
		MaxTier4Share:       50,
		MinReferralRate:     20,
		ReferralMinApps:     5,
		Tier1WeeklyRequired: 1,
	}
}

// Analysis is the derived view of the application pipeline
type Analysis struct {
	TotalApplications int                              `json:"totalApplications"`
	ThisWeek          int                              `json:"thisWeek"`
	Last30            int                              `json:"last30"`
	ByTier            map[domain.Tier]int              `json:"byTier"`
	ByTierThisWeek    map[domain.Tier]int              `json:"byTierThisWeek"`
	ByStatus          map[domain.ApplicationStatus]int `json:"byStatus"`
	Tier1ThisWeek     int                              `json:"tier1ThisWeek"`
	Responses         int                              `json:"responses"` // Screening, interview or offer
	Interviews        int                              `json:"interviews"`
	Offers            int                              `json:"offers"`
	ResponseRate      float64                          `json:"responseRate"`
	InterviewRate     float64                          `json:"interviewRate"`
	OfferRate         float64                          `json:"offerRate"`
	ReferralRate      float64                          `json:"referralRate"`
	Tier4Share        float64                          `json:"tier4Share"`
	Consistency       domain.Consistency               `json:"consistency"`
	Status            domain.Status                    `json:"status"`
	Target            int                              `json:"target"`
}

// Analyzer computes career analyses and recommendations
type Analyzer struct {
	th Thresholds
}

// New creates a career analyzer
func New(th Thresholds) *Analyzer {
	return &Analyzer{th: th}
}

// Analyze derives pipeline statistics from every application
func (a *Analyzer) Analyze(records []domain.JobApplication, now time.Time) *Analysis {
	sorted := domain.SortByDate(records, func(r domain.JobApplication) string { return r.Date })
	if len(sorted) == 0 {
		return nil
	}

	an := &Analysis{
		TotalApplications: len(sorted),
		ByTier:            map[domain.Tier]int{},
		ByTierThisWeek:    map[domain.Tier]int{},
		ByStatus:          map[domain.ApplicationStatus]int{},
		Target:            a.th.WeeklyTarget,
	}
	referrals := 0

	for _, d := range sorted {
		app := d.Record
		an.ByTier[app.Tier]++
		an.ByStatus[app.Status]++

		if domain.InWindow(d.Day, now, 7) {
			an.ThisWeek++
			an.ByTierThisWeek[app.Tier]++
		}
		if domain.InWindow(d.Day, now, 30) {
			an.Last30++
		}
		if app.Referral {
			referrals++
		}

		switch app.Status {
		case domain.ApplicationStatusOffer:
			an.Offers++
			an.Interviews++
			an.Responses++
		case domain.ApplicationStatusInterview:
			an.Interviews++
			an.Responses++
		case domain.ApplicationStatusScreening:
			an.Responses++
		}
	}

	total := float64(an.TotalApplications)
	an.Tier1ThisWeek = an.ByTierThisWeek[domain.Tier1]
	an.ResponseRate = formulas.Round(formulas.SafeDivide(float64(an.Responses), total)*100, 2)
	an.InterviewRate = formulas.Round(formulas.SafeDivide(float64(an.Interviews), total)*100, 2)
	an.OfferRate = formulas.Round(formulas.SafeDivide(float64(an.Offers), total)*100, 2)
	an.ReferralRate = formulas.Round(formulas.SafeDivide(float64(referrals), total)*100, 2)
	an.Tier4Share = formulas.Round(formulas.SafeDivide(float64(an.ByTier[domain.Tier4]), total)*100, 2)
	an.Consistency = domain.ClassifyConsistency(domain.Days(sorted), now)
	an.Status = domain.StatusFromRatio(float64(an.ThisWeek), float64(a.th.WeeklyTarget))
	return an
}
