package memory

import (
	"context"
	"sync"
	"time"
)

// ReminderDedup remembers delivered reminders per appointment and UTC day.
type ReminderDedup struct {
	mu   sync.Mutex
	sent map[string]struct{}
}

func NewReminderDedup() *ReminderDedup {
	return &ReminderDedup{sent: make(map[string]struct{})}
}

func (d *ReminderDedup) IsDuplicate(_ context.Context, appointmentID string, day time.Time) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	_, ok := d.sent[d.key(appointmentID, day)]
	return ok, nil
}

func (d *ReminderDedup) Mark(_ context.Context, appointmentID string, day time.Time) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.sent[d.key(appointmentID, day)] = struct{}{}
	return nil
}

func (d *ReminderDedup) key(appointmentID string, day time.Time) string {
	return appointmentID + ":" + day.UTC().Format(time.DateOnly)
}
