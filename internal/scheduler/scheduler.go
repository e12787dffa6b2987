package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/example/hindivocab/internal/logger"
)

// Seeder is the part of the seed loader the scheduler drives
type Seeder interface {
	EnsureSeeded(ctx context.Context) error
}

// SeederFunc adapts a function to the Seeder interface
type SeederFunc func(ctx context.Context) error

func (f SeederFunc) EnsureSeeded(ctx context.Context) error { return f(ctx) }

// Scheduler re-runs the seed loader on a fixed interval
type Scheduler struct {
	scheduler *gocron.Scheduler
	seeder    Seeder
	interval  time.Duration
	log       *logger.Logger
}

// New creates a new scheduler instance
func New(seeder Seeder, interval time.Duration, log *logger.Logger) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		seeder:    seeder,
		interval:  interval,
		log:       log.With("component", "scheduler"),
	}
}

// Start schedules the reseed job. The first run happens one interval from now
// because the store has just been seeded at startup.
func (s *Scheduler) Start(ctx context.Context) error {
	if s.interval <= 0 {
		return fmt.Errorf("invalid reseed interval %s", s.interval)
	}

	_, err := s.scheduler.Every(s.interval).WaitForSchedule().Do(s.reseed, ctx)
	if err != nil {
		return fmt.Errorf("failed to schedule reseed: %w", err)
	}

	// Start the scheduler in a non-blocking manner
	s.scheduler.StartAsync()
	s.log.Info("reseed scheduled", "interval", s.interval.String())
	return nil
}

// Stop terminates all scheduled tasks
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

func (s *Scheduler) reseed(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	if err := s.seeder.EnsureSeeded(ctx); err != nil {
		s.log.Error("scheduled reseed failed", "error", err)
	}
}
