// Package scheduler runs periodic catalog maintenance on a cron schedule.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// SweepFunc starts one integrity sweep, typically by enqueuing a task.
type SweepFunc func(ctx context.Context) error

var cronParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)

// ValidateCronSchedule checks a standard five-field cron expression.
func ValidateCronSchedule(schedule string) error {
	_, err := cronParser.Parse(schedule)
	return err
}

// IntegritySweepScheduler triggers the integrity sweep on a schedule.
type IntegritySweepScheduler struct {
	schedule string
	sweep    SweepFunc

	cron      *cron.Cron
	entryID   cron.EntryID
	mu        sync.RWMutex
	isRunning bool
	ctx       context.Context
}

func NewIntegritySweepScheduler(schedule string, sweep SweepFunc) *IntegritySweepScheduler {
	return &IntegritySweepScheduler{
		schedule: schedule,
		sweep:    sweep,
		cron:     cron.New(cron.WithParser(cronParser)),
	}
}

// Start schedules the sweep. The scheduler stops when ctx is cancelled.
func (s *IntegritySweepScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}

	if err := ValidateCronSchedule(s.schedule); err != nil {
		return fmt.Errorf("invalid cron schedule '%s': %w", s.schedule, err)
	}

	entryID, err := s.cron.AddFunc(s.schedule, s.runSweep)
	if err != nil {
		return fmt.Errorf("failed to schedule integrity sweep: %w", err)
	}
	s.entryID = entryID
	s.ctx = ctx

	s.cron.Start()
	s.isRunning = true

	log.Info().
		Str("schedule", s.schedule).
		Time("next_run", s.cron.Entry(entryID).Next).
		Msg("Integrity sweep scheduler started")

	go func() {
		<-ctx.Done()
		s.Stop()
	}()

	return nil
}

// Stop waits for a running sweep to finish.
func (s *IntegritySweepScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}

	done := s.cron.Stop()
	<-done.Done()

	s.cron.Remove(s.entryID)
	s.isRunning = false
	log.Info().Msg("Integrity sweep scheduler stopped")
}

func (s *IntegritySweepScheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// NextRun returns when the next sweep will start, or nil when stopped.
func (s *IntegritySweepScheduler) NextRun() *time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.isRunning {
		return nil
	}
	next := s.cron.Entry(s.entryID).Next
	return &next
}

func (s *IntegritySweepScheduler) runSweep() {
	s.mu.RLock()
	ctx := s.ctx
	s.mu.RUnlock()
	if ctx == nil {
		ctx = context.Background()
	}

	if err := s.sweep(ctx); err != nil {
		log.Error().Err(err).Msg("Integrity sweep failed to start")
		return
	}
	log.Info().Msg("Integrity sweep started")
}
