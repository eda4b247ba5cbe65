// Package dashboard is the application service behind the CLI: it validates
// and stores records, and runs the analytics core against stored snapshots.
package dashboard

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/eaglepython/eagle-sub001/internal/domain"
	"github.com/eaglepython/eagle-sub001/internal/modules/dispatch"
	"github.com/eaglepython/eagle-sub001/internal/modules/integrator"
	"github.com/eaglepython/eagle-sub001/internal/modules/validation"
)

// AnalysisKey is the history key of saved master analyses
const AnalysisKey = "analysis"

// Store is the storage port plus decoding of saved history values
type Store interface {
	domain.Store
	Decode(entry domain.HistoryEntry, v any) error
}

// ValidationError is returned when an incoming record fails validation
type ValidationError struct {
	Kind    domain.RecordKind
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Kind, e.Message)
}

// Summary is the headline of one saved analysis
type Summary struct {
	SavedAt      time.Time `json:"savedAt"`
	HealthScore  float64   `json:"healthScore"`
	OverallScore float64   `json:"overallScore"`
	Momentum     string    `json:"momentum"`
	Summary      string    `json:"executiveSummary"`
}

// savedAnalysis is the subset of a saved analysis read back for summaries
type savedAnalysis struct {
	HealthScore      float64 `json:"healthScore"`
	ExecutiveSummary string  `json:"executiveSummary"`
	SystemState      struct {
		OverallScore float64 `json:"overallScore"`
		Momentum     string  `json:"momentum"`
	} `json:"systemState"`
}

// Service wires storage, validation and the analytics core together
type Service struct {
	store      Store
	integrator *integrator.Integrator
	dispatcher *dispatch.Dispatcher
	log        zerolog.Logger
	now        func() time.Time
}

// New creates a dashboard service
func New(store Store, integ *integrator.Integrator, dispatcher *dispatch.Dispatcher, log zerolog.Logger) *Service {
	return &Service{
		store:      store,
		integrator: integ,
		dispatcher: dispatcher,
		log:        log.With().Str("component", "dashboard").Logger(),
		now:        time.Now,
	}
}

// SetClock replaces the time source
func (s *Service) SetClock(now func() time.Time) {
	s.now = now
}

// Add decodes a JSON record of kind, validates and normalizes it, assigns an
// id when it has none and appends it. It returns the stored record.
func (s *Service) Add(kind domain.RecordKind, raw []byte) (any, error) {
	switch kind {
	case domain.RecordKindDailyScore:
		return add(s, kind, raw, validation.ValidateDailyScore, validation.NormalizeDailyScore,
			func(r *domain.DailyScore) *string { return &r.ID })
	case domain.RecordKindWorkout:
		return add(s, kind, raw, validation.ValidateWorkout, validation.NormalizeWorkout,
			func(r *domain.Workout) *string { return &r.ID })
	case domain.RecordKindTrade:
		return add(s, kind, raw, validation.ValidateTrade, validation.NormalizeTrade,
			func(r *domain.Trade) *string { return &r.ID })
	case domain.RecordKindJobApplication:
		return add(s, kind, raw, validation.ValidateJobApplication, validation.NormalizeJobApplication,
			func(r *domain.JobApplication) *string { return &r.ID })
	case domain.RecordKindExpense:
		return add(s, kind, raw, validation.ValidateExpense, validation.NormalizeExpense,
			func(r *domain.Expense) *string { return &r.ID })
	default:
		return nil, fmt.Errorf("unknown record kind: %s", kind)
	}
}

func add[T any](
	s *Service,
	kind domain.RecordKind,
	raw []byte,
	validate func(T) validation.Result,
	normalize func(T) T,
	id func(*T) *string,
) (T, error) {
	var rec T
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&rec); err != nil {
		return rec, &ValidationError{Kind: kind, Message: err.Error()}
	}

	if res := validate(rec); !res.Valid {
		return rec, &ValidationError{Kind: kind, Message: res.Error}
	}
	rec = normalize(rec)

	if p := id(&rec); *p == "" {
		v7, err := uuid.NewV7()
		if err != nil {
			return rec, fmt.Errorf("failed to generate record id: %w", err)
		}
		*p = v7.String()
	}

	if err := s.store.Append(kind, rec); err != nil {
		return rec, err
	}

	s.log.Info().Str("kind", string(kind)).Str("id", *id(&rec)).Msg("Record added")
	return rec, nil
}

// Snapshot reads every collection into one snapshot
func (s *Service) Snapshot() domain.UserData {
	var data domain.UserData
	for _, kind := range domain.AllRecordKinds {
		part := s.store.Load(kind)
		switch kind {
		case domain.RecordKindDailyScore:
			data.DailyScores = part.DailyScores
		case domain.RecordKindWorkout:
			data.Workouts = part.Workouts
		case domain.RecordKindTrade:
			data.Trades = part.Trades
		case domain.RecordKindJobApplication:
			data.Applications = part.Applications
		case domain.RecordKindExpense:
			data.Expenses = part.Expenses
		}
	}
	return data
}

// Analyze runs the master integrator on the current snapshot and saves the
// result. A failed save is logged; the analysis is still returned.
func (s *Service) Analyze() *integrator.MasterAnalysis {
	start := time.Now()
	analysis := s.integrator.Analyze(s.Snapshot(), s.now())

	if err := s.store.Save(AnalysisKey, analysis); err != nil {
		s.log.Error().Err(err).Msg("Failed to save analysis")
	}

	s.log.Info().
		Float64("health_score", analysis.HealthScore).
		Int("agent_errors", len(analysis.AgentErrors)).
		Dur("duration", time.Since(start)).
		Msg("Analysis complete")
	return analysis
}

// Quick runs a quick-action token against the current snapshot
func (s *Service) Quick(token string) ([]domain.Recommendation, error) {
	recs := s.dispatcher.Dispatch(token, s.Snapshot(), s.now())
	if recs == nil {
		if hint, ok := dispatch.Suggest(token); ok {
			return nil, fmt.Errorf("unknown quick action %q, did you mean %q?", token, hint)
		}
		return nil, fmt.Errorf("unknown quick action %q", token)
	}
	return recs, nil
}

// History returns up to limit saved analysis summaries, newest first.
// Entries that cannot be decoded are skipped.
func (s *Service) History(limit int) []Summary {
	entries := s.store.LoadHistory(AnalysisKey)
	out := []Summary{}
	for i := len(entries) - 1; i >= 0 && len(out) < limit; i-- {
		var saved savedAnalysis
		if err := s.store.Decode(entries[i], &saved); err != nil {
			s.log.Warn().Err(err).Int("index", i).Msg("Skipping undecodable analysis")
			continue
		}
		out = append(out, Summary{
			SavedAt:      entries[i].SavedAt,
			HealthScore:  saved.HealthScore,
			OverallScore: saved.SystemState.OverallScore,
			Momentum:     saved.SystemState.Momentum,
			Summary:      saved.ExecutiveSummary,
		})
	}
	return out
}
