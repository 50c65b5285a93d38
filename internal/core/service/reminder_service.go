package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/salonbook/salon-api/internal/core/domain"
	"github.com/salonbook/salon-api/internal/core/ports"
	"github.com/salonbook/salon-api/pkg/clock"
)

var errNothingDelivered = errors.New("no notifier delivered the reminder")

type reminderService struct {
	appointments ports.AppointmentRepository
	users        ports.UserRepository
	services     ports.ServiceRepository
	notifiers    []ports.Notifier
	dedup        ports.ReminderDedup
	clock        clock.Clock
	log          zerolog.Logger
}

// NewReminderService returns a ReminderService implementation.
func NewReminderService(
	appointments ports.AppointmentRepository,
	users ports.UserRepository,
	services ports.ServiceRepository,
	notifiers []ports.Notifier,
	dedup ports.ReminderDedup,
	clk clock.Clock,
	log zerolog.Logger,
) ports.ReminderService {
	return &reminderService{
		appointments: appointments,
		users:        users,
		services:     services,
		notifiers:    notifiers,
		dedup:        dedup,
		clock:        clk,
		log:          log,
	}
}

func (s *reminderService) Build(ctx context.Context, appointmentID string) (domain.Reminder, error) {
	a, err := s.appointments.FindByID(ctx, appointmentID)
	if err != nil {
		return domain.Reminder{}, fmt.Errorf("build reminder: %w", err)
	}
	return s.build(ctx, a)
}

func (s *reminderService) build(ctx context.Context, a *domain.Appointment) (domain.Reminder, error) {
	if !a.Status.Cancelable() {
		return domain.Reminder{}, fmt.Errorf("%w: %s appointments get no reminder", domain.ErrConflict, a.Status)
	}
	user, err := s.users.FindByID(ctx, a.UserID)
	if err != nil {
		return domain.Reminder{}, fmt.Errorf("build reminder: %w", err)
	}
	svc, err := s.services.FindByID(ctx, a.ServiceID)
	if err != nil {
		return domain.Reminder{}, fmt.Errorf("build reminder: %w", err)
	}

	name := user.Profile.FirstName
	if name == "" {
		name = user.Username
	}
	return domain.Reminder{
		AppointmentID: a.ID,
		UserID:        user.ID,
		Recipient: domain.Recipient{
			Name:  name,
			Email: user.Email,
			Phone: user.Profile.PhoneNumber,
		},
		ServiceName: svc.Name,
		Date:        a.Date,
	}, nil
}

// Deliver fans r out to every notifier. A reminder already delivered today is
// skipped silently. The reminder counts as delivered when at least one channel
// succeeded; the failures of the others are still returned.
func (s *reminderService) Deliver(ctx context.Context, r domain.Reminder) error {
	today := s.clock.Now()

	isDup, err := s.dedup.IsDuplicate(ctx, r.AppointmentID, today)
	if err != nil {
		s.log.Warn().Err(err).Str("appointment_id", r.AppointmentID).Msg("dedup check failed, sending anyway")
	} else if isDup {
		s.log.Debug().Str("appointment_id", r.AppointmentID).Msg("reminder already sent today")
		return nil
	}

	var (
		failures  []error
		delivered int
	)
	for _, n := range s.notifiers {
		if err := n.Notify(ctx, r); err != nil {
			failures = append(failures, fmt.Errorf("%s: %w", n.Channel(), err))
			continue
		}
		delivered++
	}
	if delivered == 0 {
		return errors.Join(append([]error{errNothingDelivered}, failures...)...)
	}

	if err := s.dedup.Mark(ctx, r.AppointmentID, today); err != nil {
		s.log.Warn().Err(err).Str("appointment_id", r.AppointmentID).Msg("failed to set dedup key")
	}

	s.log.Info().
		Str("appointment_id", r.AppointmentID).
		Str("user_id", r.UserID).
		Int("channels", delivered).
		Msg("reminder delivered")
	return errors.Join(failures...)
}

// Upcoming builds reminders for the open appointments in [from, to).
// Appointments whose user or service vanished are skipped.
func (s *reminderService) Upcoming(ctx context.Context, from, to time.Time) ([]domain.Reminder, error) {
	list, err := s.appointments.List(ctx, ports.AppointmentFilter{From: from, To: to})
	if err != nil {
		return nil, fmt.Errorf("upcoming reminders: %w", err)
	}

	out := make([]domain.Reminder, 0, len(list))
	for _, a := range list {
		if !a.Status.Cancelable() {
			continue
		}
		r, err := s.build(ctx, a)
		if err != nil {
			s.log.Warn().Err(err).Str("appointment_id", a.ID).Msg("skipping reminder")
			continue
		}
		out = append(out, r)
	}
	return out, nil
}
