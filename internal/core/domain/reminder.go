package domain

import "time"

// Reminder is a notification about an upcoming appointment.
type Reminder struct {
	AppointmentID string
	UserID        string
	Recipient     Recipient
	ServiceName   string
	Date          time.Time
}

// Recipient is where a reminder is delivered.
type Recipient struct {
	Name  string
	Email string
	Phone string
}
