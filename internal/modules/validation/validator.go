// Package validation checks raw records before they are accepted into a
// collection, and normalizes them before storage.
//
// Validators never panic and never return Go errors: a violation is reported
// through Result.Error so the caller can show it inline.
package validation

import (
	"fmt"
	"math"
	"strings"

	"github.com/eaglepython/eagle-sub001/internal/domain"
)

// Kind selects a rule set
type Kind string

const (
	KindDailyScore     Kind = Kind(domain.RecordKindDailyScore)
	KindTrade          Kind = Kind(domain.RecordKindTrade)
	KindJobApplication Kind = Kind(domain.RecordKindJobApplication)
	KindWorkout        Kind = Kind(domain.RecordKindWorkout)
	KindExpense        Kind = Kind(domain.RecordKindExpense)
	KindDate           Kind = "date"
	KindPercentage     Kind = "percentage"
	KindMoney          Kind = "money"
)

// Value bounds
const (
	MinScore      = 0.0
	MaxScore      = 10.0
	MinIntensity  = 1.0
	MaxIntensity  = 10.0
	MinPercentage = 0.0
	MaxPercentage = 100.0
	MaxMoney      = 1e9 // Anything this large is an input glitch
)

// Result is the outcome of a single validation
type Result struct {
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

func valid() Result {
	return Result{Valid: true}
}

func invalid(msg string) Result {
	return Result{Valid: false, Error: msg}
}

// Validate applies the rule set of kind to value.
// Records may be passed by value or by pointer; date takes a string and
// percentage and money take a number.
func Validate(kind Kind, value any) Result {
	switch kind {
	case KindDailyScore:
		switch v := value.(type) {
		case domain.DailyScore:
			return ValidateDailyScore(v)
		case *domain.DailyScore:
			if v != nil {
				return ValidateDailyScore(*v)
			}
		}
	case KindTrade:
		switch v := value.(type) {
		case domain.Trade:
			return ValidateTrade(v)
		case *domain.Trade:
			if v != nil {
				return ValidateTrade(*v)
			}
		}
	case KindJobApplication:
		switch v := value.(type) {
		case domain.JobApplication:
			return ValidateJobApplication(v)
		case *domain.JobApplication:
			if v != nil {
				return ValidateJobApplication(*v)
			}
		}
	case KindWorkout:
		switch v := value.(type) {
		case domain.Workout:
			return ValidateWorkout(v)
		case *domain.Workout:
			if v != nil {
				return ValidateWorkout(*v)
			}
		}
	case KindExpense:
		switch v := value.(type) {
		case domain.Expense:
			return ValidateExpense(v)
		case *domain.Expense:
			if v != nil {
				return ValidateExpense(*v)
			}
		}
	case KindDate:
		if v, ok := value.(string); ok {
			return ValidateDate(v)
		}
	case KindPercentage:
		if v, ok := toFloat(value); ok {
			return ValidatePercentage(v)
		}
	case KindMoney:
		if v, ok := toFloat(value); ok {
			return ValidateMoney(v)
		}
	default:
		return invalid(fmt.Sprintf("Unknown validation kind: %s", kind))
	}
	return invalid(fmt.Sprintf("Invalid value for %s", kind))
}

// ValidateDate checks that a date is present and parseable
func ValidateDate(date string) Result {
	if strings.TrimSpace(date) == "" {
		return invalid("Date is required")
	}
	if _, err := domain.ParseDate(date); err != nil {
		return invalid("Invalid date format")
	}
	return valid()
}

// ValidateScore checks a 0-10 score
func ValidateScore(score float64) Result {
	if !isNumber(score) || score < MinScore || score > MaxScore {
		return invalid("Score must be between 0 and 10")
	}
	return valid()
}

// ValidatePercentage checks a 0-100 percentage
func ValidatePercentage(value float64) Result {
	if !isNumber(value) || value < MinPercentage || value > MaxPercentage {
		return invalid("Percentage must be between 0 and 100")
	}
	return valid()
}

// ValidateMoney checks a non-negative amount below MaxMoney
func ValidateMoney(amount float64) Result {
	if !isNumber(amount) {
		return invalid("Amount must be a number")
	}
	if amount < 0 {
		return invalid("Amount cannot be negative")
	}
	if amount >= MaxMoney {
		return invalid("Amount is unrealistically large")
	}
	return valid()
}

// ValidateDailyScore checks an end-of-day log
func ValidateDailyScore(r domain.DailyScore) Result {
	if res := ValidateDate(r.Date); !res.Valid {
		return res
	}
	if res := ValidateScore(r.Score); !res.Valid {
		return res
	}
	if !isNumber(r.FocusHours) || r.FocusHours < 0 || r.FocusHours > 24 {
		return invalid("Focus hours must be between 0 and 24")
	}
	if !isNumber(r.Energy) || r.Energy < MinScore || r.Energy > MaxScore {
		return invalid("Energy must be between 0 and 10")
	}
	return valid()
}

// ValidateTrade checks a closed trade
func ValidateTrade(r domain.Trade) Result {
	if res := ValidateDate(r.Date); !res.Valid {
		return res
	}
	if !isNumber(r.EntryPrice) || r.EntryPrice <= 0 {
		return invalid("Entry price must be positive")
	}
	if !isNumber(r.ExitPrice) || r.ExitPrice <= 0 {
		return invalid("Exit price must be positive")
	}
	if !isNumber(r.Quantity) || r.Quantity <= 0 {
		return invalid("Quantity must be positive")
	}
	if !isNumber(r.PnL) {
		return invalid("P&L must be a number")
	}
	// Journal fields are checked after the numeric rules
	if strings.TrimSpace(r.Asset) == "" {
		return invalid("Asset is required")
	}
	if r.Direction != domain.DirectionLong && r.Direction != domain.DirectionShort {
		return invalid("Direction must be Long or Short")
	}
	return valid()
}

// ValidateJobApplication checks a submitted application
func ValidateJobApplication(r domain.JobApplication) Result {
	if res := ValidateDate(r.Date); !res.Valid {
		return res
	}
	if strings.TrimSpace(r.Company) == "" {
		return invalid("Company is required")
	}
	if !knownTier(r.Tier) {
		return invalid("Tier must be one of Tier1, Tier2, Tier3, Tier4")
	}
	if r.Status != "" && !knownStatus(r.Status) {
		return invalid("Status must be one of Applied, Screening, Interview, Offer, Rejected, Ghosted")
	}
	return valid()
}

// ValidateWorkout checks a training session
func ValidateWorkout(r domain.Workout) Result {
	if res := ValidateDate(r.Date); !res.Valid {
		return res
	}
	if strings.TrimSpace(r.Type) == "" {
		return invalid("Workout type is required")
	}
	if !isNumber(r.DurationMinutes) || r.DurationMinutes <= 0 {
		return invalid("Duration must be positive")
	}
	if !isNumber(r.Intensity) || r.Intensity < MinIntensity || r.Intensity > MaxIntensity {
		return invalid("Intensity must be between 1 and 10")
	}
	return valid()
}

// ValidateExpense checks a spending entry
func ValidateExpense(r domain.Expense) Result {
	if res := ValidateDate(r.Date); !res.Valid {
		return res
	}
	if res := ValidateMoney(r.Amount); !res.Valid {
		return res
	}
	if strings.TrimSpace(r.Category) == "" {
		return invalid("Category is required")
	}
	return valid()
}

func knownTier(tier domain.Tier) bool {
	for _, t := range domain.AllTiers {
		if t == tier {
			return true
		}
	}
	return false
}

func knownStatus(status domain.ApplicationStatus) bool {
	for _, s := range domain.AllApplicationStatuses {
		if s == status {
			return true
		}
	}
	return false
}

func isNumber(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}
