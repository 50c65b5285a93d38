package domain

import "time"

// AppointmentStatus represents the lifecycle state of an appointment.
type AppointmentStatus string

const (
	AppointmentPending   AppointmentStatus = "pending"
	AppointmentConfirmed AppointmentStatus = "confirmed"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentCanceled  AppointmentStatus = "canceled"
)

var validAppointmentTransitions = map[AppointmentStatus][]AppointmentStatus{
	AppointmentPending:   {AppointmentConfirmed, AppointmentCanceled},
	AppointmentConfirmed: {AppointmentCompleted, AppointmentCanceled},
}

func ParseAppointmentStatus(s string) (AppointmentStatus, error) {
	switch AppointmentStatus(s) {
	case AppointmentPending, AppointmentConfirmed, AppointmentCompleted, AppointmentCanceled:
		return AppointmentStatus(s), nil
	}
	return "", ErrInvalidStatus
}

func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) bool {
	for _, allowed := range validAppointmentTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Cancelable reports whether the appointment can still be canceled.
func (s AppointmentStatus) Cancelable() bool {
	return s.CanTransitionTo(AppointmentCanceled)
}

// Appointment books a service for a user, optionally with an employee.
type Appointment struct {
	ID         string            `json:"id"`
	UserID     string            `json:"user_id"`
	ServiceID  string            `json:"service_id"`
	EmployeeID string            `json:"employee_id,omitempty"`
	Date       time.Time         `json:"appointment_date"`
	Status     AppointmentStatus `json:"status"`
	Feedback   string            `json:"feedback,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

// DayWindow returns [start of day, start of next day) for t in t's location.
func DayWindow(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 0, 1)
}

// WeekWindow returns the Sunday-started week containing t.
func WeekWindow(t time.Time) (time.Time, time.Time) {
	day, _ := DayWindow(t)
	start := day.AddDate(0, 0, -int(day.Weekday()))
	return start, start.AddDate(0, 0, 7)
}

// MonthWindow returns the calendar month containing t.
func MonthWindow(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 1, 0)
}
