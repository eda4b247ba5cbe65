// Package domain provides core domain models and types.
//
// Records are user-entered facts. They are immutable once appended: a
// correction is a new record. The analytics layer never mutates them and
// derives fresh aggregates on every read.
package domain

// RecordKind identifies a record collection
type RecordKind string

const (
	RecordKindDailyScore     RecordKind = "dailyScore"
	RecordKindWorkout        RecordKind = "workout"
	RecordKindTrade          RecordKind = "trade"
	RecordKindJobApplication RecordKind = "jobApplication"
	RecordKindExpense        RecordKind = "expense"
)

// AllRecordKinds lists every record collection in display order
var AllRecordKinds = []RecordKind{
	RecordKindDailyScore,
	RecordKindWorkout,
	RecordKindTrade,
	RecordKindJobApplication,
	RecordKindExpense,
}

// ParseRecordKind returns the record kind for a name, and false if unknown
func ParseRecordKind(name string) (RecordKind, bool) {
	for _, kind := range AllRecordKinds {
		if string(kind) == name {
			return kind, true
		}
	}
	return "", false
}

// Direction is the side of a trade
type Direction string

const (
	DirectionLong  Direction = "Long"
	DirectionShort Direction = "Short"
)

// Tier ranks a job application target company (Tier1 = dream employer)
type Tier string

const (
	Tier1 Tier = "Tier1"
	Tier2 Tier = "Tier2"
	Tier3 Tier = "Tier3"
	Tier4 Tier = "Tier4"
)

// AllTiers lists tiers from most to least ambitious
var AllTiers = []Tier{Tier1, Tier2, Tier3, Tier4}

// ApplicationStatus is the pipeline stage of a job application
type ApplicationStatus string

const (
	ApplicationStatusApplied   ApplicationStatus = "Applied"
	ApplicationStatusScreening ApplicationStatus = "Screening"
	ApplicationStatusInterview ApplicationStatus = "Interview"
	ApplicationStatusOffer     ApplicationStatus = "Offer"
	ApplicationStatusRejected  ApplicationStatus = "Rejected"
	ApplicationStatusGhosted   ApplicationStatus = "Ghosted"
)

// AllApplicationStatuses lists every known pipeline stage
var AllApplicationStatuses = []ApplicationStatus{
	ApplicationStatusApplied,
	ApplicationStatusScreening,
	ApplicationStatusInterview,
	ApplicationStatusOffer,
	ApplicationStatusRejected,
	ApplicationStatusGhosted,
}

// DailyScore is the end-of-day discipline log
type DailyScore struct {
	ID         string   `json:"id"`
	Date       string   `json:"date"`
	Score      float64  `json:"score"`           // 0-10
	FocusHours float64  `json:"focusHours"`      // Hours of deep work
	Energy     float64  `json:"energy"`          // 0-10, 0 = not logged
	Areas      []string `json:"areas,omitempty"` // Life areas worked on that day
	Notes      string   `json:"notes,omitempty"`
}

// Workout is a single training session
type Workout struct {
	ID              string  `json:"id"`
	Date            string  `json:"date"`
	Type            string  `json:"type"` // Strength, Cardio, Mobility, Sports, ...
	DurationMinutes float64 `json:"durationMinutes"`
	Intensity       float64 `json:"intensity"` // 1-10 RPE
	Notes           string  `json:"notes,omitempty"`
}

// Trade is a closed trade from the trading journal.
// The realised result lives in PnL ("pnl"), never in a "result" field.
type Trade struct {
	ID         string    `json:"id"`
	Date       string    `json:"date"`
	Asset      string    `json:"asset"`
	Direction  Direction `json:"direction"`
	EntryPrice float64   `json:"entryPrice"`
	ExitPrice  float64   `json:"exitPrice"`
	Quantity   float64   `json:"quantity"`
	PnL        float64   `json:"pnl"`
	Setup      string    `json:"setup,omitempty"` // Strategy/setup type, e.g. "Breakout"
	Notes      string    `json:"notes,omitempty"`
}

// JobApplication is one submitted application
type JobApplication struct {
	ID       string            `json:"id"`
	Date     string            `json:"date"`
	Company  string            `json:"company"`
	Role     string            `json:"role,omitempty"`
	Tier     Tier              `json:"tier"`
	Status   ApplicationStatus `json:"status"`
	Referral bool              `json:"referral"`
	Notes    string            `json:"notes,omitempty"`
}

// Expense is a single spending entry
type Expense struct {
	ID        string  `json:"id"`
	Date      string  `json:"date"`
	Amount    float64 `json:"amount"`
	Category  string  `json:"category"`
	Essential bool    `json:"essential"`
	Notes     string  `json:"notes,omitempty"`
}

// UserData is an immutable snapshot of every collection, as read from storage.
// Every analyzer, generator and insight module reads from the same snapshot.
type UserData struct {
	DailyScores  []DailyScore     `json:"dailyScores"`
	Workouts     []Workout        `json:"workouts"`
	Trades       []Trade          `json:"trades"`
	Applications []JobApplication `json:"applications"`
	Expenses     []Expense        `json:"expenses"`
}

// IsEmpty reports whether no collection holds any record
func (u UserData) IsEmpty() bool {
	return len(u.DailyScores) == 0 &&
		len(u.Workouts) == 0 &&
		len(u.Trades) == 0 &&
		len(u.Applications) == 0 &&
		len(u.Expenses) == 0
}

// Count returns the number of records of a kind
func (u UserData) Count(kind RecordKind) int {
	switch kind {
	case RecordKindDailyScore:
		return len(u.DailyScores)
	case RecordKindWorkout:
		return len(u.Workouts)
	case RecordKindTrade:
		return len(u.Trades)
	case RecordKindJobApplication:
		return len(u.Applications)
	case RecordKindExpense:
		return len(u.Expenses)
	}
	return 0
}

// DatesOf returns the raw date strings of one kind, in insertion order
func (u UserData) DatesOf(kind RecordKind) []string {
	var dates []string
	switch kind {
	case RecordKindDailyScore:
		for _, r := range u.DailyScores {
			dates = append(dates, r.Date)
		}
	case RecordKindWorkout:
		for _, r := range u.Workouts {
			dates = append(dates, r.Date)
		}
	case RecordKindTrade:
		for _, r := range u.Trades {
			dates = append(dates, r.Date)
		}
	case RecordKindJobApplication:
		for _, r := range u.Applications {
			dates = append(dates, r.Date)
		}
	case RecordKindExpense:
		for _, r := range u.Expenses {
			dates = append(dates, r.Date)
		}
	}
	return dates
}

// Dates returns the raw date strings of every record of every kind
func (u UserData) Dates() []string {
	var dates []string
	for _, kind := range AllRecordKinds {
		dates = append(dates, u.DatesOf(kind)...)
	}
	return dates
}
