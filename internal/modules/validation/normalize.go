package validation

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/eaglepython/eagle-sub001/internal/domain"
	"github.com/eaglepython/eagle-sub001/pkg/formulas"
)

// NormalizeDate renders a parseable date as an ISO calendar date.
// Unparseable input is returned trimmed and unchanged.
func NormalizeDate(date string) string {
	date = strings.TrimSpace(date)
	parsed, err := domain.ParseDate(date)
	if err != nil {
		return date
	}
	return domain.FormatDate(parsed)
}

// NormalizeScore clamps to [0,10] and rounds to one decimal
func NormalizeScore(score float64) float64 {
	if math.IsNaN(score) {
		return MinScore
	}
	return formulas.Round(formulas.Clamp(score, MinScore, MaxScore), 1)
}

// NormalizePercentage clamps to [0,100]
func NormalizePercentage(value float64) float64 {
	if math.IsNaN(value) {
		return MinPercentage
	}
	return formulas.Clamp(value, MinPercentage, MaxPercentage)
}

// NormalizeMoney rounds to cents, half away from zero
func NormalizeMoney(amount float64) float64 {
	if !isNumber(amount) {
		return 0
	}
	rounded, _ := decimal.NewFromFloat(amount).Round(2).Float64()
	return rounded
}

// NormalizeDailyScore returns a normalized copy of r
func NormalizeDailyScore(r domain.DailyScore) domain.DailyScore {
	r.Date = NormalizeDate(r.Date)
	r.Score = NormalizeScore(r.Score)
	r.Energy = NormalizeScore(r.Energy)
	r.FocusHours = formulas.Round(math.Max(0, r.FocusHours), 2)
	r.Notes = strings.TrimSpace(r.Notes)
	if len(r.Areas) > 0 {
		areas := make([]string, 0, len(r.Areas))
		for _, a := range r.Areas {
			if a = strings.TrimSpace(a); a != "" {
				areas = append(areas, a)
			}
		}
		r.Areas = areas
	}
	return r
}

// NormalizeTrade returns a normalized copy of r. Prices keep their precision.
func NormalizeTrade(r domain.Trade) domain.Trade {
	r.Date = NormalizeDate(r.Date)
	r.Asset = strings.ToUpper(strings.TrimSpace(r.Asset))
	r.Setup = strings.TrimSpace(r.Setup)
	r.Notes = strings.TrimSpace(r.Notes)
	r.PnL = NormalizeMoney(r.PnL)
	return r
}

// NormalizeJobApplication returns a normalized copy of r
func NormalizeJobApplication(r domain.JobApplication) domain.JobApplication {
	r.Date = NormalizeDate(r.Date)
	r.Company = strings.TrimSpace(r.Company)
	r.Role = strings.TrimSpace(r.Role)
	r.Notes = strings.TrimSpace(r.Notes)
	if r.Status == "" {
		r.Status = domain.ApplicationStatusApplied
	}
	return r
}

// NormalizeWorkout returns a normalized copy of r
func NormalizeWorkout(r domain.Workout) domain.Workout {
	r.Date = NormalizeDate(r.Date)
	r.Type = strings.TrimSpace(r.Type)
	r.Notes = strings.TrimSpace(r.Notes)
	r.Intensity = formulas.Round(formulas.Clamp(r.Intensity, MinIntensity, MaxIntensity), 1)
	return r
}

// NormalizeExpense returns a normalized copy of r
func NormalizeExpense(r domain.Expense) domain.Expense {
	r.Date = NormalizeDate(r.Date)
	r.Amount = NormalizeMoney(r.Amount)
	r.Category = strings.TrimSpace(r.Category)
	r.Notes = strings.TrimSpace(r.Notes)
	return r
}
