package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/salonbook/salon-api/internal/core/domain"
	"github.com/salonbook/salon-api/internal/core/ports"
	"github.com/salonbook/salon-api/pkg/clock"
)

type appointmentService struct {
	appointments ports.AppointmentRepository
	prices       domain.PriceLookup
	employees    ports.EmployeeRepository
	clock        clock.Clock
	log          zerolog.Logger
}

// NewAppointmentService returns an AppointmentService implementation.
func NewAppointmentService(
	appointments ports.AppointmentRepository,
	prices domain.PriceLookup,
	employees ports.EmployeeRepository,
	clk clock.Clock,
	log zerolog.Logger,
) ports.AppointmentService {
	return &appointmentService{
		appointments: appointments,
		prices:       prices,
		employees:    employees,
		clock:        clk,
		log:          log,
	}
}

// checkRefs verifies that the booked service and optional employee exist.
func (s *appointmentService) checkRefs(ctx context.Context, in ports.AppointmentInput) error {
	if in.ServiceID == "" {
		return domain.MissingField("service")
	}
	if in.Date.IsZero() {
		return domain.MissingField("appointment_date")
	}
	if _, err := s.prices.PriceOf(ctx, in.ServiceID); err != nil {
		return err
	}
	if in.EmployeeID != "" {
		if _, err := s.employees.FindByID(ctx, in.EmployeeID); err != nil {
			return err
		}
	}
	return nil
}

func (s *appointmentService) Book(ctx context.Context, actor domain.Actor, in ports.AppointmentInput) (*domain.Appointment, error) {
	if err := s.checkRefs(ctx, in); err != nil {
		return nil, fmt.Errorf("book appointment: %w", err)
	}

	now := s.clock.Now()
	created, err := s.appointments.Create(ctx, &domain.Appointment{
		UserID:     actor.UserID,
		ServiceID:  in.ServiceID,
		EmployeeID: in.EmployeeID,
		Date:       in.Date.UTC(),
		Status:     domain.AppointmentPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		return nil, fmt.Errorf("book appointment: %w", err)
	}

	s.log.Info().
		Str("appointment_id", created.ID).
		Str("user_id", actor.UserID).
		Str("service_id", in.ServiceID).
		Time("date", created.Date).
		Msg("appointment booked")
	return created, nil
}

// owned loads an appointment visible to the actor. Other users' appointments
// are reported as not found.
func (s *appointmentService) owned(ctx context.Context, actor domain.Actor, id string) (*domain.Appointment, error) {
	a, err := s.appointments.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.CanAccess(a.UserID) {
		return nil, domain.ErrAppointmentNotFound
	}
	return a, nil
}

func (s *appointmentService) Get(ctx context.Context, actor domain.Actor, id string) (*domain.Appointment, error) {
	return s.owned(ctx, actor, id)
}

// List applies filter; regular users only ever see their own appointments.
func (s *appointmentService) List(ctx context.Context, actor domain.Actor, filter ports.AppointmentFilter) ([]*domain.Appointment, error) {
	if !actor.Role.Privileged() {
		filter.UserID = actor.UserID
	}
	list, err := s.appointments.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	return list, nil
}

func (s *appointmentService) ListPeriod(ctx context.Context, actor domain.Actor, period ports.Period) ([]*domain.Appointment, error) {
	now := s.clock.Now()
	var filter ports.AppointmentFilter
	switch period {
	case ports.PeriodToday:
		filter.From, filter.To = domain.DayWindow(now)
	case ports.PeriodWeek:
		filter.From, filter.To = domain.WeekWindow(now)
	case ports.PeriodMonth:
		filter.From, filter.To = domain.MonthWindow(now)
	default:
		return nil, fmt.Errorf("%w: unknown period %q", domain.ErrValidation, period)
	}
	return s.List(ctx, actor, filter)
}

// Reschedule changes service, employee and date of an appointment that is
// still open.
func (s *appointmentService) Reschedule(ctx context.Context, actor domain.Actor, id string, in ports.AppointmentInput) (*domain.Appointment, error) {
	a, err := s.owned(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if !a.Status.Cancelable() {
		return nil, fmt.Errorf("%w: %s appointments cannot be changed", domain.ErrInvalidTransition, a.Status)
	}
	if err := s.checkRefs(ctx, in); err != nil {
		return nil, fmt.Errorf("reschedule appointment: %w", err)
	}

	a.ServiceID = in.ServiceID
	a.EmployeeID = in.EmployeeID
	a.Date = in.Date.UTC()
	a.UpdatedAt = s.clock.Now()
	if err := s.appointments.Update(ctx, a); err != nil {
		return nil, fmt.Errorf("reschedule appointment: %w", err)
	}
	return a, nil
}

func (s *appointmentService) Cancel(ctx context.Context, actor domain.Actor, id string) (*domain.Appointment, error) {
	return s.SetStatus(ctx, actor, id, domain.AppointmentCanceled)
}

// SetStatus moves an appointment along its lifecycle. Owners may only cancel;
// confirming and completing is reserved to admin and staff.
func (s *appointmentService) SetStatus(ctx context.Context, actor domain.Actor, id string, status domain.AppointmentStatus) (*domain.Appointment, error) {
	a, err := s.owned(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if status != domain.AppointmentCanceled && !actor.Role.Privileged() {
		return nil, domain.ErrForbidden
	}
	if !a.Status.CanTransitionTo(status) {
		return nil, fmt.Errorf("%w (from %s to %s)", domain.ErrInvalidTransition, a.Status, status)
	}

	updated, err := s.appointments.Transition(ctx, id, a.Status, status, s.clock.Now())
	if err != nil {
		return nil, err
	}
	s.log.Info().
		Str("appointment_id", id).
		Str("from", string(a.Status)).
		Str("to", string(status)).
		Msg("appointment status changed")
	return updated, nil
}

func (s *appointmentService) Feedback(ctx context.Context, actor domain.Actor, id, feedback string) (*domain.Appointment, error) {
	feedback = strings.TrimSpace(feedback)
	if feedback == "" {
		return nil, domain.MissingField("feedback")
	}
	if _, err := s.owned(ctx, actor, id); err != nil {
		return nil, err
	}
	updated, err := s.appointments.SetFeedback(ctx, id, feedback, s.clock.Now())
	if err != nil {
		return nil, fmt.Errorf("appointment feedback: %w", err)
	}
	return updated, nil
}

// BulkCancel cancels every listed appointment that is still open. Unknown ids
// and closed appointments are skipped.
func (s *appointmentService) BulkCancel(ctx context.Context, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, domain.MissingField("appointment_ids")
	}
	n, err := s.appointments.CancelMany(ctx, ids, s.clock.Now())
	if err != nil {
		return 0, fmt.Errorf("bulk cancel: %w", err)
	}
	s.log.Info().Int("requested", len(ids)).Int64("canceled", n).Msg("appointments bulk canceled")
	return n, nil
}

func (s *appointmentService) Revenue(ctx context.Context) (decimal.Decimal, error) {
	total, err := s.appointments.Revenue(ctx)
	if err != nil {
		return decimal.Zero, fmt.Errorf("revenue: %w", err)
	}
	return total, nil
}
