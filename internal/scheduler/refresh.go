package scheduler

import (
	"github.com/rs/zerolog"

	"github.com/eaglepython/eagle-sub001/internal/modules/integrator"
)

// Analyzer recomputes and saves the master analysis
type Analyzer interface {
	Analyze() *integrator.MasterAnalysis
}

// RefreshJob periodically recomputes the master analysis
type RefreshJob struct {
	log      zerolog.Logger
	analyzer Analyzer
}

// NewRefreshJob creates a refresh job
func NewRefreshJob(analyzer Analyzer, log zerolog.Logger) *RefreshJob {
	return &RefreshJob{
		log:      log.With().Str("job", "refresh_analysis").Logger(),
		analyzer: analyzer,
	}
}

// Name returns the job name
func (j *RefreshJob) Name() string {
	return "refresh_analysis"
}

// Run recomputes the analysis. Sub-agent failures are reported, not returned.
func (j *RefreshJob) Run() error {
	analysis := j.analyzer.Analyze()

	for _, e := range analysis.AgentErrors {
		j.log.Warn().Str("agent", e.Agent).Str("error", e.Error).Msg("Sub-agent failed during refresh")
	}

	j.log.Info().
		Float64("health_score", analysis.HealthScore).
		Str("momentum", analysis.SystemState.Momentum).
		Int("bottlenecks", len(analysis.Bottlenecks)).
		Msg("Analysis refreshed")
	return nil
}
