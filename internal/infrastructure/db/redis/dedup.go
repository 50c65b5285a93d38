package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// reminderTTL outlives the day a reminder key refers to.
const reminderTTL = 48 * time.Hour

// ReminderDedup records which appointments were already reminded on a day.
// Key format: reminder:<appointment_id>:<yyyy-mm-dd>
type ReminderDedup struct {
	client *redis.Client
}

func NewReminderDedup(client *redis.Client) *ReminderDedup {
	return &ReminderDedup{client: client}
}

// IsDuplicate reports whether a reminder for this appointment went out on day.
func (d *ReminderDedup) IsDuplicate(ctx context.Context, appointmentID string, day time.Time) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(appointmentID, day)).Result()
	if err != nil {
		return false, fmt.Errorf("reminder dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records the reminder as sent (expires after reminderTTL).
func (d *ReminderDedup) Mark(ctx context.Context, appointmentID string, day time.Time) error {
	if err := d.client.Set(ctx, d.key(appointmentID, day), "1", reminderTTL).Err(); err != nil {
		return fmt.Errorf("reminder dedup mark: %w", err)
	}
	return nil
}

func (d *ReminderDedup) key(appointmentID string, day time.Time) string {
	return fmt.Sprintf("reminder:%s:%s", appointmentID, day.UTC().Format(time.DateOnly))
}
