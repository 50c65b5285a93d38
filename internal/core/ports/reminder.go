package ports

import (
	"context"
	"time"

	"github.com/salonbook/salon-api/internal/core/domain"
)

// Notifier delivers a reminder over one channel (SMS, email, log).
type Notifier interface {
	Channel() string
	Notify(ctx context.Context, r domain.Reminder) error
}

// ReminderDedup suppresses a second reminder for the same appointment on the
// same day.
type ReminderDedup interface {
	IsDuplicate(ctx context.Context, appointmentID string, day time.Time) (bool, error)
	Mark(ctx context.Context, appointmentID string, day time.Time) error
}

// ReminderService turns appointments into delivered reminders.
type ReminderService interface {
	// Build resolves the recipient and service of an appointment.
	Build(ctx context.Context, appointmentID string) (domain.Reminder, error)
	// Deliver sends r through every notifier unless it was already sent today.
	Deliver(ctx context.Context, r domain.Reminder) error
	// Upcoming returns reminders for every pending or confirmed appointment in
	// [from, to).
	Upcoming(ctx context.Context, from, to time.Time) ([]domain.Reminder, error)
}
