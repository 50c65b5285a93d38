// Package scheduler runs the daily reminder sweep on a cron schedule.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/salonbook/salon-api/internal/core/domain"
	"github.com/salonbook/salon-api/internal/core/ports"
	"github.com/salonbook/salon-api/pkg/clock"
)

// DefaultSpec runs the sweep every day at 09:00.
const DefaultSpec = "0 9 * * *"

// enqueueTimeout bounds how long a sweep waits for room in the worker queues.
const enqueueTimeout = 5 * time.Second

// Enqueuer hands reminders to the delivery workers.
type Enqueuer interface {
	EnqueueBatch(ctx context.Context, reminders []domain.Reminder) (int, error)
}

// Scheduler sweeps tomorrow's appointments and queues their reminders.
type Scheduler struct {
	cron      *cron.Cron
	spec      string
	reminders ports.ReminderService
	queue     Enqueuer
	clock     clock.Clock
	log       zerolog.Logger
}

func New(spec string, reminders ports.ReminderService, queue Enqueuer, clk clock.Clock, log zerolog.Logger) *Scheduler {
	if spec == "" {
		spec = DefaultSpec
	}
	return &Scheduler{
		cron:      cron.New(cron.WithLocation(time.UTC)),
		spec:      spec,
		reminders: reminders,
		queue:     queue,
		clock:     clk,
		log:       log,
	}
}

// Start registers the sweep and starts the cron loop. Sweeps run until ctx is
// cancelled or Stop is called.
func (s *Scheduler) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.spec, func() {
		if _, err := s.Sweep(ctx); err != nil {
			s.log.Error().Err(err).Msg("reminder sweep failed")
		}
	})
	if err != nil {
		return fmt.Errorf("schedule reminders %q: %w", s.spec, err)
	}
	s.cron.Start()
	s.log.Info().Str("spec", s.spec).Msg("reminder scheduler started")
	return nil
}

// Stop halts the cron loop and waits for a running sweep to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

// Sweep queues a reminder for every open appointment tomorrow and reports how
// many were queued.
func (s *Scheduler) Sweep(ctx context.Context) (int, error) {
	_, tomorrow := domain.DayWindow(s.clock.Now().UTC())
	from, to := domain.DayWindow(tomorrow)

	list, err := s.reminders.Upcoming(ctx, from, to)
	if err != nil {
		return 0, fmt.Errorf("reminder sweep: %w", err)
	}
	n, err := s.enqueue(ctx, list)
	if err != nil {
		s.log.Warn().Err(err).Int("queued", n).Int("total", len(list)).Msg("reminder sweep incomplete")
		return n, err
	}
	s.log.Info().Int("queued", n).Time("day", from).Msg("reminder sweep done")
	return n, nil
}

// Remind queues the reminder of a single appointment right away.
func (s *Scheduler) Remind(ctx context.Context, appointmentID string) error {
	r, err := s.reminders.Build(ctx, appointmentID)
	if err != nil {
		return err
	}
	_, err = s.enqueue(ctx, []domain.Reminder{r})
	return err
}

// enqueue reports a full or stopped queue as domain.ErrUnavailable.
func (s *Scheduler) enqueue(ctx context.Context, list []domain.Reminder) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, enqueueTimeout)
	defer cancel()
	n, err := s.queue.EnqueueBatch(ctx, list)
	if err != nil {
		return n, fmt.Errorf("%w: queued %d of %d reminders: %w", domain.ErrUnavailable, n, len(list), err)
	}
	return n, nil
}
