// Package main is the entry point of lifedash, the personal life-tracking
// dashboard. It stores records in a local SQLite database and prints
// analyses as JSON on stdout; logs go to stderr.
//
// Usage:
//
//	lifedash analyze
//	lifedash add <kind> <file|->
//	lifedash quick <token>
//	lifedash history [-n N]
//	lifedash watch
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/eaglepython/eagle-sub001/internal/config"
	"github.com/eaglepython/eagle-sub001/internal/dashboard"
	"github.com/eaglepython/eagle-sub001/internal/database"
	"github.com/eaglepython/eagle-sub001/internal/domain"
	"github.com/eaglepython/eagle-sub001/internal/modules/dispatch"
	"github.com/eaglepython/eagle-sub001/internal/modules/integrator"
	"github.com/eaglepython/eagle-sub001/internal/records"
	"github.com/eaglepython/eagle-sub001/internal/scheduler"
	"github.com/eaglepython/eagle-sub001/internal/storage"
	"github.com/eaglepython/eagle-sub001/pkg/logger"
)

// WALCheckSchedule is how often watch mode checks the database WAL
const WALCheckSchedule = "@hourly"

const usage = `usage: lifedash <command> [arguments]

commands:
  analyze                 run the master analysis and save it
  add <kind> <file|->     validate and store a JSON record
                          kinds: dailyScore, workout, trade, jobApplication, expense
  quick <token>           run a quick action: %s
  history [-n N]          list saved analyses, newest first
  watch                   re-run the analysis on LIFEDASH_REFRESH_SCHEDULE until interrupted
`

// app holds the wired components of one invocation
type app struct {
	cfg     *config.Config
	log     zerolog.Logger
	db      *database.DB
	service *dashboard.Service
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fallbackLog := logger.New(logger.Config{Level: "info", Pretty: true})
		fallbackLog.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Pretty: cfg.LogPretty})
	logger.SetGlobalLogger(log)

	a, err := wire(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize")
	}
	defer func() {
		if err := a.db.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close database")
		}
	}()

	if err := a.run(os.Args[1], os.Args[2:]); err != nil {
		log.Error().Err(err).Str("command", os.Args[1]).Msg("Command failed")
		// Deferred close does not run on os.Exit
		_ = a.db.Close()
		os.Exit(1)
	}
}

// wire opens the database and builds the service graph
func wire(cfg *config.Config, log zerolog.Logger) (*app, error) {
	db, err := database.New(database.Config{
		Path:    cfg.DBPath(),
		Profile: database.ProfileLedger,
		Name:    "lifedash",
	})
	if err != nil {
		return nil, err
	}
	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}

	codec, err := storage.NewCodec(cfg.StoreCodec)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	th, err := config.LoadThresholds(cfg.ThresholdsFile)
	if err != nil {
		log.Warn().Err(err).Msg("Using default thresholds")
	}
	deps := th.Deps()

	repo := records.NewRepository(storage.NewSQLiteKV(db.Conn()), codec, log)
	service := dashboard.New(repo,
		integrator.New(th.Integrator, deps, log),
		dispatch.New(deps),
		log)

	log.Debug().
		Str("db", db.Path()).
		Str("codec", codec.Name()).
		Msg("Initialized")

	return &app{cfg: cfg, log: log, db: db, service: service}, nil
}

func (a *app) run(command string, args []string) error {
	switch command {
	case "analyze":
		return writeJSON(os.Stdout, a.service.Analyze())
	case "add":
		return a.add(args)
	case "quick":
		return a.quick(args)
	case "history":
		return a.history(args)
	case "watch":
		return a.watch()
	case "help", "-h", "--help":
		printUsage()
		return nil
	default:
		printUsage()
		return fmt.Errorf("unknown command %q", command)
	}
}

func (a *app) add(args []string) error {
	if len(args) != 2 {
		return errors.New("usage: lifedash add <kind> <file|->")
	}

	kind, ok := domain.ParseRecordKind(args[0])
	if !ok {
		return fmt.Errorf("unknown record kind %q", args[0])
	}

	raw, err := readInput(args[1])
	if err != nil {
		return err
	}

	stored, err := a.service.Add(kind, raw)
	if err != nil {
		return err
	}
	return writeJSON(os.Stdout, stored)
}

func (a *app) quick(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: lifedash quick <token>, one of: %s", strings.Join(dispatch.Tokens, ", "))
	}

	recs, err := a.service.Quick(strings.Join(args, " "))
	if err != nil {
		return err
	}
	return writeJSON(os.Stdout, recs)
}

func (a *app) history(args []string) error {
	fs := flag.NewFlagSet("history", flag.ContinueOnError)
	limit := fs.Int("n", a.cfg.HistoryLimit, "number of analyses to list")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *limit < 1 {
		return fmt.Errorf("-n must be positive, got %d", *limit)
	}
	return writeJSON(os.Stdout, a.service.History(*limit))
}

// watch runs the refresh job on schedule until SIGINT or SIGTERM
func (a *app) watch() error {
	sched := scheduler.New(a.log)

	refresh := scheduler.NewRefreshJob(a.service, a.log)
	if _, err := sched.Schedule(a.cfg.RefreshSchedule, refresh); err != nil {
		return err
	}
	wal := scheduler.NewWALCheckpointJob(map[string]*database.DB{a.db.Name(): a.db}, a.log)
	if _, err := sched.Schedule(WALCheckSchedule, wal); err != nil {
		return err
	}

	if err := sched.RunNow(refresh); err != nil {
		a.log.Error().Err(err).Msg("Initial refresh failed")
	}

	sched.Start()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	a.log.Info().Msg("Shutting down")
	sched.Stop()

	if err := a.db.WALCheckpoint("TRUNCATE"); err != nil {
		a.log.Warn().Err(err).Msg("Final WAL checkpoint failed")
	}
	return nil
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read record file: %w", err)
	}
	return raw, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printUsage() {
	fmt.Fprintf(os.Stderr, usage, strings.Join(dispatch.Tokens, ", "))
}
