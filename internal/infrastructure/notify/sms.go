package notify

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/salonbook/salon-api/internal/core/domain"
)

var errNoSID = errors.New("twilio returned no message sid")

// messageCreator is the slice of the Twilio REST API the SMS channel uses.
type messageCreator interface {
	CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error)
}

type SMSConfig struct {
	AccountSID string
	AuthToken  string
	From       string
}

// SMSNotifier sends reminders as text messages through Twilio.
type SMSNotifier struct {
	api  messageCreator
	from string
	log  zerolog.Logger
}

func NewSMSNotifier(cfg SMSConfig, log zerolog.Logger) *SMSNotifier {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.AccountSID,
		Password: cfg.AuthToken,
	})
	return &SMSNotifier{api: client.Api, from: cfg.From, log: log}
}

func (n *SMSNotifier) Channel() string { return "sms" }

// Notify skips recipients without a phone number.
func (n *SMSNotifier) Notify(_ context.Context, r domain.Reminder) error {
	if r.Recipient.Phone == "" {
		n.log.Debug().Str("user_id", r.UserID).Msg("no phone number, sms skipped")
		return nil
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(r.Recipient.Phone)
	params.SetFrom(n.from)
	params.SetBody(Message(r))

	resp, err := n.api.CreateMessage(params)
	if err != nil {
		return fmt.Errorf("send sms: %w", err)
	}
	if resp == nil || resp.Sid == nil {
		return errNoSID
	}
	n.log.Debug().Str("appointment_id", r.AppointmentID).Str("sid", *resp.Sid).Msg("sms sent")
	return nil
}
