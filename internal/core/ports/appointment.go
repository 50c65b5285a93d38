package ports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/salonbook/salon-api/internal/core/domain"
)

// AppointmentFilter narrows an appointment listing. Zero values mean "any".
// From is inclusive, To is exclusive.
type AppointmentFilter struct {
	UserID    string
	ServiceID string
	Status    domain.AppointmentStatus
	From      time.Time
	To        time.Time
}

// AppointmentRepository persists bookings.
type AppointmentRepository interface {
	Create(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error)
	FindByID(ctx context.Context, id string) (*domain.Appointment, error)
	// Update overwrites service, employee and date.
	Update(ctx context.Context, a *domain.Appointment) error
	List(ctx context.Context, filter AppointmentFilter) ([]*domain.Appointment, error)
	// Transition changes the status only if it is still from, returning
	// domain.ErrInvalidTransition otherwise.
	Transition(ctx context.Context, id string, from, to domain.AppointmentStatus, now time.Time) (*domain.Appointment, error)
	SetFeedback(ctx context.Context, id, feedback string, now time.Time) (*domain.Appointment, error)
	// CancelMany cancels every listed appointment that is still cancelable and
	// reports how many changed.
	CancelMany(ctx context.Context, ids []string, now time.Time) (int64, error)
	// Revenue sums the current price of the service of every completed appointment.
	Revenue(ctx context.Context) (decimal.Decimal, error)
}

type AppointmentInput struct {
	ServiceID  string
	EmployeeID string
	Date       time.Time
}

// Period selects one of the calendar windows around the current time.
type Period string

const (
	PeriodToday Period = "today"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
)

type AppointmentService interface {
	Book(ctx context.Context, actor domain.Actor, in AppointmentInput) (*domain.Appointment, error)
	Get(ctx context.Context, actor domain.Actor, id string) (*domain.Appointment, error)
	List(ctx context.Context, actor domain.Actor, filter AppointmentFilter) ([]*domain.Appointment, error)
	ListPeriod(ctx context.Context, actor domain.Actor, period Period) ([]*domain.Appointment, error)
	Reschedule(ctx context.Context, actor domain.Actor, id string, in AppointmentInput) (*domain.Appointment, error)
	Cancel(ctx context.Context, actor domain.Actor, id string) (*domain.Appointment, error)
	SetStatus(ctx context.Context, actor domain.Actor, id string, status domain.AppointmentStatus) (*domain.Appointment, error)
	Feedback(ctx context.Context, actor domain.Actor, id, feedback string) (*domain.Appointment, error)
	BulkCancel(ctx context.Context, ids []string) (int64, error)
	Revenue(ctx context.Context) (decimal.Decimal, error)
}
