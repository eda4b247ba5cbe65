// Package dispatch routes quick-action tokens to recommendation generators.
package dispatch

import (
	"strings"
	"time"

	"github.com/agnivade/levenshtein"

	"github.com/eaglepython/eagle-sub001/internal/domain"
	"github.com/eaglepython/eagle-sub001/internal/modules/integrator"
	"github.com/eaglepython/eagle-sub001/internal/modules/psychology"
)

// Quick-action tokens
const (
	TokenLogToday   = "Log today"
	TokenAddApp     = "Add app"
	TokenLogTrade   = "Log trade"
	TokenLogWorkout = "Log workout"
	TokenTrackHours = "Track hours"
	TokenReflect    = "Reflect"
)

// Tokens lists every known token
var Tokens = []string{TokenLogToday, TokenAddApp, TokenLogTrade, TokenLogWorkout, TokenTrackHours, TokenReflect}

// Handler produces the recommendations of one quick action
type Handler func(data domain.UserData, now time.Time) []domain.Recommendation

// Dispatcher maps tokens to handlers
type Dispatcher struct {
	handlers map[string]Handler
}

// New wires every token to its generator
func New(deps integrator.Deps) *Dispatcher {
	return &Dispatcher{handlers: map[string]Handler{
		TokenLogToday: route(func(d domain.UserData) []domain.DailyScore { return d.DailyScores },
			deps.Discipline.Analyze, deps.Discipline.GenerateRecommendations),
		TokenAddApp: route(func(d domain.UserData) []domain.JobApplication { return d.Applications },
			deps.Career.Analyze, deps.Career.GenerateRecommendations),
		TokenLogTrade: route(func(d domain.UserData) []domain.Trade { return d.Trades },
			deps.Trading.Analyze, deps.Trading.GenerateRecommendations),
		TokenLogWorkout: route(func(d domain.UserData) []domain.Workout { return d.Workouts },
			deps.Health.Analyze, deps.Health.GenerateRecommendations),
		TokenTrackHours: route(func(d domain.UserData) []domain.DailyScore { return d.DailyScores },
			deps.Discipline.Analyze, deps.Discipline.GenerateHoursRecommendations),
		TokenReflect: reflect(deps.Coach),
	}}
}

// Dispatch runs the handler of token. Unknown tokens return nil; known tokens
// always return a slice, empty when there is not enough data.
func (d *Dispatcher) Dispatch(token string, data domain.UserData, now time.Time) []domain.Recommendation {
	h, ok := d.handlers[token]
	if !ok {
		return nil
	}
	return h(data, now)
}

// Suggest returns the known token closest to token, ignoring case.
// ok is false when nothing is within half the token's length.
func Suggest(token string) (suggestion string, ok bool) {
	needle := strings.ToLower(strings.TrimSpace(token))
	best := -1
	for _, t := range Tokens {
		dist := levenshtein.ComputeDistance(needle, strings.ToLower(t))
		if best < 0 || dist < best {
			best, suggestion = dist, t
		}
	}
	if best > max(len(needle), 1)/2 {
		return "", false
	}
	return suggestion, true
}

func route[R, A any](
	records func(domain.UserData) []R,
	analyze domain.Analyzer[R, A],
	generate domain.RecommendationGenerator[A],
) Handler {
	return func(data domain.UserData, now time.Time) []domain.Recommendation {
		return generate(analyze(records(data), now))
	}
}

// reflect turns the reflection module's insights into recommendations
func reflect(coach *psychology.Coach) Handler {
	return func(data domain.UserData, now time.Time) []domain.Recommendation {
		module, err := coach.Module(psychology.ModuleReflection)
		if err != nil {
			return []domain.Recommendation{}
		}
		result := module(data, now)

		actions := make([]string, 0, len(result.ActionItems))
		impact := ""
		for _, item := range result.ActionItems {
			actions = append(actions, item.Action)
			if impact == "" {
				impact = item.ImpactEstimate
			}
		}

		recs := make([]domain.Recommendation, 0, len(result.Insights))
		for _, in := range result.Insights {
			recs = append(recs, domain.Recommendation{
				Type:             in.Type,
				Severity:         in.Type.Priority(),
				Title:            in.Title,
				CurrentState:     in.Message,
				TargetState:      "A short written note on most entries",
				SuggestedActions: actions,
				ImpactEstimate:   impact,
			})
		}
		return domain.SortRecommendations(recs)
	}
}
