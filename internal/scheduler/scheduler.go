// Package scheduler runs periodic jobs on cron schedules. The scheduler is
// owned by the caller: nothing runs until Start and Stop waits for running jobs.
package scheduler

import (
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// Job represents a scheduled job
type Job interface {
	Run() error
	Name() string
}

type funcJob struct {
	name string
	fn   func() error
}

func (j funcJob) Name() string { return j.name }
func (j funcJob) Run() error { return j.fn() }

// NewJob wraps a function as a named job
func NewJob(name string, fn func() error) Job {
	return funcJob{name: name, fn: fn}
}

// Handle identifies a scheduled job
type Handle struct {
	id   cron.EntryID
	name string
	s    *Scheduler
}

// Name returns the scheduled job's name
func (h Handle) Name() string {
	return h.name
}

// Cancel removes the job from the schedule. A run already in progress finishes.
func (h Handle) Cancel() {
	h.s.cron.Remove(h.id)
	h.s.log.Info().Str("job", h.name).Msg("Job cancelled")
}

// Scheduler manages background jobs
type Scheduler struct {
	cron *cron.Cron
	log  zerolog.Logger
}

// New creates a new scheduler. Overlapping runs of the same job are skipped.
func New(log zerolog.Logger) *Scheduler {
	return &Scheduler{
		cron: cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		log:  log.With().Str("component", "scheduler").Logger(),
	}
}

// Start starts the scheduler
func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.Info().Msg("Scheduler started")
}

// Stop stops the scheduler and waits for running jobs
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.log.Info().Msg("Scheduler stopped")
}

// Schedule registers a job with a cron schedule
// Schedule examples:
//   - "*/5 * * * *"     - Every 5 minutes
//   - "@hourly"         - Every hour
//   - "0 21 * * *"      - 9 PM daily
//   - "@every 6h"       - Every 6 hours
func (s *Scheduler) Schedule(spec string, job Job) (Handle, error) {
	id, err := s.cron.AddFunc(spec, func() { s.run(job) })
	if err != nil {
		return Handle{}, fmt.Errorf("invalid schedule %q for %s: %w", spec, job.Name(), err)
	}

	s.log.Info().
		Str("schedule", spec).
		Str("job", job.Name()).
		Msg("Job registered")

	return Handle{id: id, name: job.Name(), s: s}, nil
}

// Scheduled returns the number of registered jobs
func (s *Scheduler) Scheduled() int {
	return len(s.cron.Entries())
}

// RunNow executes a job immediately (outside schedule)
func (s *Scheduler) RunNow(job Job) error {
	s.log.Info().Str("job", job.Name()).Msg("Running job immediately")
	return job.Run()
}

func (s *Scheduler) run(job Job) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error().Interface("panic", r).Str("job", job.Name()).Msg("Job panicked")
		}
	}()

	s.log.Debug().Str("job", job.Name()).Msg("Running job")
	if err := job.Run(); err != nil {
		s.log.Error().
			Err(err).
			Str("job", job.Name()).
			Msg("Job failed")
		return
	}
	s.log.Debug().Str("job", job.Name()).Msg("Job completed")
}
