// Package notify holds the reminder channels: SMS through Twilio, email over
// SMTP, and a log-only channel used in development and tests.
package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/salonbook/salon-api/internal/core/domain"
)

const dateLayout = "Mon Jan 2 at 15:04"

// Message renders the reminder text shared by every channel.
func Message(r domain.Reminder) string {
	return fmt.Sprintf("Hi %s, this is a reminder of your %s appointment on %s.",
		r.Recipient.Name, r.ServiceName, r.Date.UTC().Format(dateLayout))
}

// LogNotifier writes reminders to the application log.
type LogNotifier struct {
	log zerolog.Logger
}

func NewLogNotifier(log zerolog.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) Channel() string { return "log" }

func (n *LogNotifier) Notify(_ context.Context, r domain.Reminder) error {
	n.log.Info().
		Str("appointment_id", r.AppointmentID).
		Str("user_id", r.UserID).
		Time("appointment_date", r.Date.Truncate(time.Minute)).
		Msg(Message(r))
	return nil
}
