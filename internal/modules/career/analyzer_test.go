package career

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eaglepython/eagle-sub001/internal/domain"
)

var now = time.Date(2024, 6, 30, 10, 0, 0, 0, time.UTC)

func daysAgo(n int) string {
	return now.AddDate(0, 0, -n).Format(domain.DateLayout)
}

func app(ago int, tier domain.Tier, status domain.ApplicationStatus) domain.JobApplication {
	return domain.JobApplication{Date: daysAgo(ago), Company: "Acme", Tier: tier, Status: status}
}

func actions(recs []domain.Recommendation) []string {
	out := make([]string, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.Action)
	}
	return out
}

func TestAnalyze_Empty(t *testing.T) {
	a := New(DefaultThresholds())
	assert.Nil(t, a.Analyze(nil, now))
	assert.Equal(t, []domain.Recommendation{}, a.GenerateRecommendations(nil))
}

func TestAnalyze_Rates(t *testing.T) {
	records := []domain.JobApplication{
		app(0, domain.Tier1, domain.ApplicationStatusApplied),
		app(1, domain.Tier2, domain.ApplicationStatusScreening),
		app(2, domain.Tier2, domain.ApplicationStatusInterview),
		app(10, domain.Tier3, domain.ApplicationStatusOffer),
		app(40, domain.Tier4, domain.ApplicationStatusRejected),
	}
	records[1].Referral = true

	an := New(DefaultThresholds()).Analyze(records, now)
	require.NotNil(t, an)

	assert.Equal(t, 5, an.TotalApplications)
	assert.Equal(t, 3, an.ThisWeek)
	assert.Equal(t, 4, an.Last30)
	assert.Equal(t, 1, an.Tier1ThisWeek)
	assert.Equal(t, 2, an.ByTierThisWeek[domain.Tier2])
	assert.Equal(t, 3, an.Responses)
	assert.Equal(t, 2, an.Interviews)
	assert.Equal(t, 1, an.Offers)
	assert.InDelta(t, 60.0, an.ResponseRate, 1e-9)
	assert.InDelta(t, 20.0, an.OfferRate, 1e-9)
	assert.InDelta(t, 20.0, an.ReferralRate, 1e-9)
	assert.InDelta(t, 20.0, an.Tier4Share, 1e-9)
	assert.Equal(t, domain.StatusCritical, an.Status)
}

func TestGenerateRecommendations_NoTier1ThisWeek(t *testing.T) {
	records := []domain.JobApplication{
		app(0, domain.Tier2, domain.ApplicationStatusApplied),
		app(1, domain.Tier3, domain.ApplicationStatusApplied),
		app(12, domain.Tier1, domain.ApplicationStatusApplied), // not this week
	}

	a := New(DefaultThresholds())
	recs := a.GenerateRecommendations(a.Analyze(records, now))
	require.NotEmpty(t, recs)

	assert.Equal(t, domain.InsightCritical, recs[0].Type)
	assert.Equal(t, ActionPivotToTier1, recs[0].Action)
	assert.Equal(t, domain.PriorityCritical, recs[0].Severity)
}

func TestGenerateRecommendations_AllRules(t *testing.T) {
	var records []domain.JobApplication
	// 12 Tier4 applications spread over the last two weeks, no referrals
	for i := 0; i < 12; i++ {
		records = append(records, app(i, domain.Tier4, domain.ApplicationStatusRejected))
	}
	for i := 0; i < 3; i++ {
		records[i].Status = domain.ApplicationStatusInterview
	}

	a := New(DefaultThresholds())
	an := a.Analyze(records, now)
	require.NotNil(t, an)
	assert.Equal(t, 7, an.ThisWeek)

	got := actions(a.GenerateRecommendations(an))
	// Response rate is 25%, so IMPROVE_RESUME does not fire
	assert.Equal(t, []string{
		ActionPivotToTier1,
		ActionIncreaseVolume,
		ActionInterviewPrep,
		ActionRaiseTargets,
		ActionUseReferrals,
	}, got)
}

func TestGenerateRecommendations_HealthyPipeline(t *testing.T) {
	var records []domain.JobApplication
	for i := 0; i < 10; i++ {
		rec := app(i%7, domain.Tier2, domain.ApplicationStatusScreening)
		rec.Referral = true
		records = append(records, rec)
	}
	records[0].Tier = domain.Tier1

	a := New(DefaultThresholds())
	got := actions(a.GenerateRecommendations(a.Analyze(records, now)))
	assert.Equal(t, []string{ActionMaintainPipeline}, got)
}

func TestGenerateRecommendations_LowResponseRate(t *testing.T) {
	var records []domain.JobApplication
	for i := 0; i < 10; i++ {
		records = append(records, app(i, domain.Tier1, domain.ApplicationStatusGhosted))
	}

	a := New(DefaultThresholds())
	got := actions(a.GenerateRecommendations(a.Analyze(records, now)))
	assert.Contains(t, got, ActionImproveResume)
	assert.NotContains(t, got, ActionPivotToTier1)
}
