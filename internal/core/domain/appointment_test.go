package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAppointmentStatus_Transitions(t *testing.T) {
	assert.True(t, AppointmentPending.CanTransitionTo(AppointmentConfirmed))
	assert.True(t, AppointmentPending.CanTransitionTo(AppointmentCanceled))
	assert.False(t, AppointmentPending.CanTransitionTo(AppointmentCompleted))
	assert.True(t, AppointmentConfirmed.CanTransitionTo(AppointmentCompleted))
	assert.False(t, AppointmentCompleted.CanTransitionTo(AppointmentCanceled))
	assert.False(t, AppointmentCanceled.Cancelable())
	assert.True(t, AppointmentConfirmed.Cancelable())
}

func TestParseAppointmentStatus(t *testing.T) {
	s, err := ParseAppointmentStatus("confirmed")
	assert.NoError(t, err)
	assert.Equal(t, AppointmentConfirmed, s)

	_, err = ParseAppointmentStatus("cancelled")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestWindows(t *testing.T) {
	// Wednesday
	now := time.Date(2026, 10, 14, 15, 30, 0, 0, time.UTC)

	start, end := DayWindow(now)
	assert.Equal(t, time.Date(2026, 10, 14, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC), end)

	start, end = WeekWindow(now)
	assert.Equal(t, time.Date(2026, 10, 11, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC), end)

	start, end = MonthWindow(now)
	assert.Equal(t, time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC), end)
}

func TestEmployee_AverageRating(t *testing.T) {
	e := &Employee{}
	assert.Zero(t, e.AverageRating())

	e.Reviews = []EmployeeReview{{Rating: 5}, {Rating: 3}, {Rating: 4}}
	assert.InDelta(t, 4.0, e.AverageRating(), 1e-9)
}
