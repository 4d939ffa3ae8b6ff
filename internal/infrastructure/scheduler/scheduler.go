package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/mahaatv/backend/internal/infrastructure/metrics"
	"github.com/mahaatv/backend/internal/pkg/config"
	"github.com/mahaatv/backend/internal/pkg/logger"
	"github.com/robfig/cron/v3"
)

// ScheduleRoller relabels program days for a new date
type ScheduleRoller interface {
	Rollover(now time.Time) error
}

// SessionSweeper removes idle viewer sessions
type SessionSweeper interface {
	SweepIdle() (int, error)
}

// Scheduler runs the background jobs: day rollover and session sweeping
type Scheduler struct {
	cron      *cron.Cron
	schedules ScheduleRoller
	sessions  SessionSweeper
	metrics   metrics.Recorder
	now       func() time.Time
}

// New registers the jobs described by the config. Jobs run in loc.
func New(cfg *config.Config, loc *time.Location, schedules ScheduleRoller, sessions SessionSweeper, rec metrics.Recorder) (*Scheduler, error) {
	s := &Scheduler{
		cron:      cron.New(cron.WithLocation(loc)),
		schedules: schedules,
		sessions:  sessions,
		metrics:   rec,
		now:       time.Now,
	}

	if _, err := s.cron.AddFunc(cfg.Schedule.RolloverSchedule, s.RolloverSchedules); err != nil {
		return nil, fmt.Errorf("register schedule rollover: %w", err)
	}
	if _, err := s.cron.AddFunc(cfg.Session.SweepSchedule, s.SweepSessions); err != nil {
		return nil, fmt.Errorf("register session sweep: %w", err)
	}
	return s, nil
}

// Start runs the jobs in the background
func (s *Scheduler) Start() {
	log := logger.Component("scheduler")
	log.Info().Int("jobs", len(s.cron.Entries())).Msg("Starting background jobs")
	s.cron.Start()
}

// Stop prevents new runs; the returned context is done when running jobs finish
func (s *Scheduler) Stop() context.Context {
	return s.cron.Stop()
}

// RolloverSchedules relabels Today/Tomorrow for the current date
func (s *Scheduler) RolloverSchedules() {
	log := logger.Component("scheduler")
	if err := s.schedules.Rollover(s.now()); err != nil {
		log.Error().Err(err).Msg("Schedule rollover failed")
		return
	}
	log.Info().Msg("Schedule days rolled over")
}

// SweepSessions removes sessions past the idle timeout
func (s *Scheduler) SweepSessions() {
	log := logger.Component("scheduler")
	removed, err := s.sessions.SweepIdle()
	if err != nil {
		log.Error().Err(err).Msg("Session sweep failed")
		return
	}
	s.metrics.IncSessionsSwept(removed)
	if removed > 0 {
		log.Info().Int("count", removed).Msg("Swept idle sessions")
	}
}
