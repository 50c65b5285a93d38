package notify

import (
	"context"
	"fmt"
	"net/smtp"

	"github.com/jordan-wright/email"
	"github.com/rs/zerolog"

	"github.com/salonbook/salon-api/internal/core/domain"
)

const emailSubject = "Your appointment reminder"

type EmailConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

// sendFunc delivers a built message; swapped out in tests.
type sendFunc func(e *email.Email) error

// EmailNotifier sends reminders over SMTP.
type EmailNotifier struct {
	from string
	send sendFunc
	log  zerolog.Logger
}

func NewEmailNotifier(cfg EmailConfig, log zerolog.Logger) *EmailNotifier {
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	auth := smtp.PlainAuth("", cfg.User, cfg.Password, cfg.Host)
	from := cfg.From
	if from == "" {
		from = cfg.User
	}
	return &EmailNotifier{
		from: from,
		send: func(e *email.Email) error { return e.Send(addr, auth) },
		log:  log,
	}
}

func (n *EmailNotifier) Channel() string { return "email" }

func (n *EmailNotifier) Notify(_ context.Context, r domain.Reminder) error {
	if r.Recipient.Email == "" {
		n.log.Debug().Str("user_id", r.UserID).Msg("no email address, email skipped")
		return nil
	}

	e := email.NewEmail()
	e.From = n.from
	e.To = []string{r.Recipient.Email}
	e.Subject = emailSubject
	e.Text = []byte(Message(r))

	if err := n.send(e); err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	return nil
}
