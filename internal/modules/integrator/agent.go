package integrator

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Result is the outcome of one sub-agent call. Value always holds something
// usable: the agent's output, or the fallback when the agent failed.
type Result[T any] struct {
	Value T
	Err   error
}

// AgentError records a sub-agent that failed during an analysis
type AgentError struct {
	Agent string `json:"agent"`
	Error string `json:"error"`
}

// runAgent calls fn and converts a panic into a Result carrying fallback
func runAgent[T any](log zerolog.Logger, name string, fallback T, fn func() T) (res Result[T]) {
	defer func() {
		if r := recover(); r != nil {
			log.Warn().Str("agent", name).Interface("panic", r).Msg("Sub-agent failed, using default")
			res = Result[T]{Value: fallback, Err: fmt.Errorf("agent %s: %v", name, r)}
		}
	}()
	return Result[T]{Value: fn()}
}

// collect unwraps a Result and records its error on the analysis
func collect[T any](m *MasterAnalysis, name string, r Result[T]) T {
	if r.Err != nil {
		m.AgentErrors = append(m.AgentErrors, AgentError{Agent: name, Error: r.Err.Error()})
	}
	return r.Value
}
