package notify

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jordan-wright/email"
	"github.com/rs/zerolog"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/salonbook/salon-api/internal/core/domain"
)

var reminder = domain.Reminder{
	AppointmentID: "a1",
	UserID:        "u1",
	Recipient:     domain.Recipient{Name: "Alice", Email: "alice@example.com", Phone: "+15550100"},
	ServiceName:   "Haircut",
	Date:          time.Date(2026, 3, 15, 14, 30, 0, 0, time.UTC),
}

func TestMessage(t *testing.T) {
	got := Message(reminder)
	want := "Hi Alice, this is a reminder of your Haircut appointment on Sun Mar 15 at 14:30."
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestLogNotifier(t *testing.T) {
	var buf bytes.Buffer
	n := NewLogNotifier(zerolog.New(&buf))
	if err := n.Notify(context.Background(), reminder); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), `"appointment_id":"a1"`) {
		t.Errorf("log entry missing appointment id: %s", buf.String())
	}
}

type stubMessages struct {
	params *twilioApi.CreateMessageParams
	sid    *string
	err    error
}

func (s *stubMessages) CreateMessage(p *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error) {
	s.params = p
	if s.err != nil {
		return nil, s.err
	}
	return &twilioApi.ApiV2010Message{Sid: s.sid}, nil
}

func TestSMSNotifier(t *testing.T) {
	sid := "SM123"
	tests := []struct {
		name     string
		reminder domain.Reminder
		stub     *stubMessages
		wantErr  bool
		wantSent bool
	}{
		{"sent", reminder, &stubMessages{sid: &sid}, false, true},
		{"twilio error", reminder, &stubMessages{err: errors.New("boom")}, true, true},
		{"missing sid", reminder, &stubMessages{}, true, true},
		{"no phone skips", domain.Reminder{AppointmentID: "a2"}, &stubMessages{sid: &sid}, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := &SMSNotifier{api: tt.stub, from: "+15550000", log: zerolog.Nop()}
			err := n.Notify(context.Background(), tt.reminder)
			if (err != nil) != tt.wantErr {
				t.Fatalf("wantErr=%v, got %v", tt.wantErr, err)
			}
			if (tt.stub.params != nil) != tt.wantSent {
				t.Fatalf("wantSent=%v", tt.wantSent)
			}
			if tt.wantSent && *tt.stub.params.To != reminder.Recipient.Phone {
				t.Errorf("sent to %q", *tt.stub.params.To)
			}
		})
	}
}

func TestEmailNotifier(t *testing.T) {
	var sent *email.Email
	n := &EmailNotifier{
		from: "salon@example.com",
		send: func(e *email.Email) error { sent = e; return nil },
		log:  zerolog.Nop(),
	}

	if err := n.Notify(context.Background(), reminder); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sent == nil {
		t.Fatal("expected an email to be sent")
	}
	if sent.To[0] != "alice@example.com" || sent.Subject != emailSubject {
		t.Errorf("unexpected envelope: to=%v subject=%q", sent.To, sent.Subject)
	}
	if !strings.Contains(string(sent.Text), "Haircut") {
		t.Errorf("body missing service name: %s", sent.Text)
	}

	sent = nil
	if err := n.Notify(context.Background(), domain.Reminder{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sent != nil {
		t.Error("recipient without email must be skipped")
	}
}
