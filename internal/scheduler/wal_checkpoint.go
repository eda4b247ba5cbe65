package scheduler

import (
	"sort"

	"github.com/rs/zerolog"

	"github.com/eaglepython/eagle-sub001/internal/database"
)

// WALFrameLimit is the WAL size, in frames, above which the log is truncated
const WALFrameLimit = 1000

// WALCheckpointJob monitors WAL size and truncates oversized logs
type WALCheckpointJob struct {
	log       zerolog.Logger
	databases map[string]*database.DB
}

// NewWALCheckpointJob creates a job over the named databases
func NewWALCheckpointJob(databases map[string]*database.DB, log zerolog.Logger) *WALCheckpointJob {
	return &WALCheckpointJob{
		log:       log.With().Str("job", "wal_checkpoint").Logger(),
		databases: databases,
	}
}

// Name returns the job name
func (j *WALCheckpointJob) Name() string {
	return "wal_checkpoint"
}

// Run checks every database. Failures are logged per database.
func (j *WALCheckpointJob) Run() error {
	names := make([]string, 0, len(j.databases))
	for name := range j.databases {
		names = append(names, name)
	}
	sort.Strings(names)

	checked := 0
	for _, name := range names {
		db := j.databases[name]
		if db == nil {
			continue
		}

		// PRAGMA wal_checkpoint returns: busy, log, checkpointed
		var busy, frames, checkpointed int
		err := db.Conn().QueryRow("PRAGMA wal_checkpoint(PASSIVE)").Scan(&busy, &frames, &checkpointed)
		if err != nil {
			j.log.Warn().
				Err(err).
				Str("database", name).
				Msg("Failed to check WAL checkpoint")
			continue
		}

		if frames > WALFrameLimit {
			j.log.Warn().
				Str("database", name).
				Int("wal_frames", frames).
				Int("checkpointed", checkpointed).
				Msg("WAL file is large, truncating")
			if err := db.WALCheckpoint("TRUNCATE"); err != nil {
				j.log.Warn().Err(err).Str("database", name).Msg("WAL truncate failed")
			}
		} else {
			j.log.Debug().
				Str("database", name).
				Int("wal_frames", frames).
				Msg("WAL checkpoint status OK")
		}

		checked++
	}

	j.log.Info().Int("checked", checked).Msg("WAL checkpoint check completed")
	return nil
}
