// Package scheduler posts due scheduled payments in the background.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/budget-buddy/backend/internal/models"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Scheduler runs models.ProcessDue on a cron schedule.
type Scheduler struct {
	cron *cron.Cron
	job  cron.Job
	db   *gorm.DB
	wg   sync.WaitGroup
}

// New creates a scheduler for the cron spec. Specs are evaluated in UTC,
// descriptors like @hourly are supported.
//
// A run is skipped when the previous one is still in progress.
func New(db *gorm.DB, spec string) (*Scheduler, error) {
	l := logger{Logger: log.Logger.With().Str("component", "scheduler").Logger()}

	s := &Scheduler{
		cron: cron.New(cron.WithLocation(time.UTC), cron.WithLogger(l)),
		db:   db,
	}
	s.job = cron.NewChain(cron.Recover(l), cron.SkipIfStillRunning(l)).Then(cron.FuncJob(s.Run))

	_, err := s.cron.AddJob(spec, s.job)
	if err != nil {
		return nil, fmt.Errorf("invalid scheduler spec %q: %w", spec, err)
	}

	return s, nil
}

// Start starts the schedule and processes payments that became due
// while the backend was not running.
func (s *Scheduler) Start() {
	s.cron.Start()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.job.Run()
	}()
}

// Stop stops the schedule and waits for running jobs to complete.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.wg.Wait()
}

// Run processes all due scheduled payments once.
func (s *Scheduler) Run() {
	start := time.Now()

	result, err := models.ProcessDue(context.Background(), s.db, start)
	if err != nil {
		log.Error().Err(err).Int("posted", result.Posted).Int("failed", result.Failed).Msg("processing scheduled payments failed")
		return
	}

	log.Info().
		Int("posted", result.Posted).
		Int("failed", result.Failed).
		Dur("duration", time.Since(start)).
		Msg("scheduled payments processed")
}

// logger forwards cron log output to zerolog.
type logger struct {
	Logger zerolog.Logger
}

func (l logger) Info(msg string, keysAndValues ...any) {
	l.Logger.Debug().Fields(keysAndValues).Msg(msg)
}

func (l logger) Error(err error, msg string, keysAndValues ...any) {
	l.Logger.Error().Err(err).Fields(keysAndValues).Msg(msg)
}
