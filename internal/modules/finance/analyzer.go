// Package finance analyzes expenses and generates budgeting recommendations.
//
// Sums are accumulated as decimals so that cents never drift, and converted to
// float64 only for the analysis output.
package finance

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/eaglepython/eagle-sub001/internal/domain"
	"github.com/eaglepython/eagle-sub001/pkg/formulas"
)

// Thresholds holds the budget and rule breakpoints
type Thresholds struct {
	MonthlyBudget       float64 `yaml:"monthly_budget"`
	MaxNonEssentialPct  float64 `yaml:"max_non_essential_pct"`
	MaxCategoryPct      float64 `yaml:"max_category_pct"`
	MinCategories       int     `yaml:"min_categories"`
	TrackingGapDays     int     `yaml:"tracking_gap_days"`
	ProjectionWindowDay int     `yaml:"projection_window_days"`
}

// DefaultThresholds returns the built-in finance thresholds
func DefaultThresholds() Thresholds {
	return Thresholds{
		MonthlyBudget:       3000,
		MaxNonEssentialPct:  40,
		MaxCategoryPct:      35,
		MinCategories:       2,
		TrackingGapDays:     7,
		ProjectionWindowDay: 30,
	}
}

// CategoryTotal is the 30-day spend of one category
type CategoryTotal struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Share    float64 `json:"share"` // Percent of 30-day spend
}

// Analysis is the derived view of the expense collection
type Analysis struct {
	TotalExpenses     int             `json:"totalExpenses"`
	Spend7            float64         `json:"spend7"`
	Spend30           float64         `json:"spend30"`
	DailyAverage      float64         `json:"dailyAverage"`
	ProjectedMonth    float64         `json:"projectedMonth"`
	MonthlyBudget     float64         `json:"monthlyBudget"`
	BudgetUsage       float64         `json:"budgetUsage"` // Projected spend as percent of budget
	ByCategory        []CategoryTotal `json:"byCategory"`
	TopCategory       string          `json:"topCategory"`
	TopCategoryShare  float64         `json:"topCategoryShare"`
	EssentialShare    float64         `json:"essentialShare"`
	NonEssentialShare float64         `json:"nonEssentialShare"`
	DaysSinceLast     int             `json:"daysSinceLast"`
	Status            domain.Status   `json:"status"`
}

// Analyzer computes finance analyses and recommendations
type Analyzer struct {
	th Thresholds
}

// New creates a finance analyzer
func New(th Thresholds) *Analyzer {
	return &Analyzer{th: th}
}

// Analyze derives spending statistics from every expense
func (a *Analyzer) Analyze(records []domain.Expense, now time.Time) *Analysis {
	sorted := domain.SortByDate(records, func(r domain.Expense) string { return r.Date })
	if len(sorted) == 0 {
		return nil
	}

	window := a.th.ProjectionWindowDay
	if window <= 0 {
		window = 30
	}

	spend7 := decimal.Zero
	spend30 := decimal.Zero
	essential := decimal.Zero
	categories := map[string]decimal.Decimal{}
	var order []string
	first, last := time.Time{}, time.Time{}

	for _, d := range sorted {
		e := d.Record
		amount := decimal.NewFromFloat(formulas.Finite(e.Amount))

		if domain.DaysAgo(d.Day, now) >= 0 {
			last = d.Day
		}
		if domain.InWindow(d.Day, now, 7) {
			spend7 = spend7.Add(amount)
		}
		if !domain.InWindow(d.Day, now, window) {
			continue
		}
		if first.IsZero() {
			first = d.Day
		}
		spend30 = spend30.Add(amount)
		if e.Essential {
			essential = essential.Add(amount)
		}
		if _, ok := categories[e.Category]; !ok {
			order = append(order, e.Category)
		}
		categories[e.Category] = categories[e.Category].Add(amount)
	}

	an := &Analysis{
		TotalExpenses: len(sorted),
		Spend7:        spend7.Round(2).InexactFloat64(),
		Spend30:       spend30.Round(2).InexactFloat64(),
		MonthlyBudget: a.th.MonthlyBudget,
		DaysSinceLast: -1,
	}
	if !last.IsZero() {
		an.DaysSinceLast = domain.DaysAgo(last, now)
	}

	// Average over the days actually covered, so a new tracker is not diluted
	covered := window
	if !first.IsZero() {
		if days := domain.DaysAgo(first, now) + 1; days < covered {
			covered = days
		}
	}
	if !spend30.IsZero() {
		daily := spend30.Div(decimal.NewFromInt(int64(covered)))
		an.DailyAverage = daily.Round(2).InexactFloat64()
		an.ProjectedMonth = daily.Mul(decimal.NewFromInt(30)).Round(2).InexactFloat64()

		hundred := decimal.NewFromInt(100)
		an.EssentialShare = essential.Div(spend30).Mul(hundred).Round(2).InexactFloat64()
		an.NonEssentialShare = formulas.Round(100-an.EssentialShare, 2)

		for _, cat := range order {
			amount := categories[cat]
			an.ByCategory = append(an.ByCategory, CategoryTotal{
				Category: cat,
				Amount:   amount.Round(2).InexactFloat64(),
				Share:    amount.Div(spend30).Mul(hundred).Round(2).InexactFloat64(),
			})
		}
		sort.SliceStable(an.ByCategory, func(i, j int) bool {
			return an.ByCategory[i].Amount > an.ByCategory[j].Amount
		})
		an.TopCategory = an.ByCategory[0].Category
		an.TopCategoryShare = an.ByCategory[0].Share
	}

	an.BudgetUsage = formulas.Round(formulas.SafeDivide(an.ProjectedMonth, a.th.MonthlyBudget)*100, 2)
	switch {
	case first.IsZero():
		// Nothing inside the window: a stale journal says nothing about the budget
		an.Status = domain.StatusNoData
	case an.ProjectedMonth == 0:
		an.Status = domain.StatusExcellent
	default:
		an.Status = domain.StatusFromRatio(a.th.MonthlyBudget, an.ProjectedMonth)
	}
	return an
}
