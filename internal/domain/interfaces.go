package domain

import "time"

// Analyzer turns a full record collection into a domain analysis.
// It returns nil when there is nothing to analyze and never mutates records.
type Analyzer[R any, A any] func(records []R, now time.Time) *A

// RecommendationGenerator maps an analysis onto ordered recommendations.
// A nil analysis yields an empty slice.
type RecommendationGenerator[A any] func(analysis *A) []Recommendation

// HistoryEntry is one saved value of a history key
type HistoryEntry struct {
	SavedAt time.Time `json:"savedAt"`
	Value   []byte    `json:"-"`
}

// Store is the record-storage collaborator.
//
// Reads never fail from the caller's point of view: storage errors are logged
// by the implementation and surface as empty collections.
type Store interface {
	// Load returns a snapshot holding only the collection of the given kind
	Load(kind RecordKind) UserData

	// Append adds a record to the end of its collection
	Append(kind RecordKind, record any) error

	// LoadHistory returns every value saved under key, oldest first
	LoadHistory(key string) []HistoryEntry

	// Save stores value as the latest value of key and appends it to its history
	Save(key string, value any) error
}
