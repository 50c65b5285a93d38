package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/salonbook/salon-api/internal/core/domain"
	"github.com/salonbook/salon-api/internal/core/ports"
)

// ReminderTrigger queues reminders on demand.
type ReminderTrigger interface {
	Sweep(ctx context.Context) (int, error)
	Remind(ctx context.Context, appointmentID string) error
}

// AppointmentHandler serves bookings. Every route requires authentication;
// regular users only ever reach their own appointments.
type AppointmentHandler struct {
	appointments ports.AppointmentService
	reminders    ReminderTrigger
}

func NewAppointmentHandler(appointments ports.AppointmentService, reminders ReminderTrigger) *AppointmentHandler {
	return &AppointmentHandler{appointments: appointments, reminders: reminders}
}

func (r appointmentRequest) toInput() ports.AppointmentInput {
	return ports.AppointmentInput{
		ServiceID:  r.ServiceID,
		EmployeeID: r.EmployeeID,
		Date:       r.Date,
	}
}

// Book creates a pending appointment for the caller.
//
// @Summary      Book an appointment
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      appointmentRequest  true  "Appointment"
// @Success      201   {object}  domain.Appointment
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /appointments [post]
func (h *AppointmentHandler) Book(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	var req appointmentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	a, err := h.appointments.Book(c.Request().Context(), actor, req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, a)
}

// List returns the appointments visible to the caller.
//
// @Summary      List appointments
// @Tags         appointments
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Appointment
// @Router       /appointments [get]
func (h *AppointmentHandler) List(c echo.Context) error {
	return h.list(c, ports.AppointmentFilter{})
}

// Filter narrows the caller's appointments by service, status and date range.
//
// @Summary      Filter appointments
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      appointmentFilterRequest  true  "Filter"
// @Success      200   {array}   domain.Appointment
// @Failure      400   {object}  errorResponse
// @Router       /appointments/filter [post]
func (h *AppointmentHandler) Filter(c echo.Context) error {
	var req appointmentFilterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	return h.list(c, ports.AppointmentFilter{
		ServiceID: req.ServiceID,
		Status:    domain.AppointmentStatus(req.Status),
		From:      req.From,
		To:        req.To,
	})
}

func (h *AppointmentHandler) list(c echo.Context, filter ports.AppointmentFilter) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	list, err := h.appointments.List(c.Request().Context(), actor, filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, list)
}

// Today, Week and Month list the caller's appointments in the current window.
//
// @Summary      Appointments in a calendar window
// @Tags         appointments
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Appointment
// @Router       /appointments/today [get]
// @Router       /appointments/week [get]
// @Router       /appointments/month [get]
func (h *AppointmentHandler) Today(c echo.Context) error { return h.period(c, ports.PeriodToday) }

func (h *AppointmentHandler) Week(c echo.Context) error { return h.period(c, ports.PeriodWeek) }

func (h *AppointmentHandler) Month(c echo.Context) error { return h.period(c, ports.PeriodMonth) }

func (h *AppointmentHandler) period(c echo.Context, p ports.Period) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	list, err := h.appointments.ListPeriod(c.Request().Context(), actor, p)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, list)
}

// Get returns one appointment.
//
// @Summary      Get an appointment
// @Tags         appointments
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Appointment id"
// @Success      200  {object}  domain.Appointment
// @Failure      404  {object}  errorResponse
// @Router       /appointments/{id} [get]
func (h *AppointmentHandler) Get(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	a, err := h.appointments.Get(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, a)
}

// Reschedule changes the service, employee or date of an open appointment.
//
// @Summary      Reschedule an appointment
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Appointment id"
// @Param        body  body      appointmentRequest  true  "Appointment"
// @Success      200   {object}  domain.Appointment
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /appointments/{id} [put]
func (h *AppointmentHandler) Reschedule(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	var req appointmentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	a, err := h.appointments.Reschedule(c.Request().Context(), actor, c.Param("id"), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, a)
}

// Cancel cancels an open appointment.
//
// @Summary      Cancel an appointment
// @Tags         appointments
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Appointment id"
// @Success      200  {object}  domain.Appointment
// @Failure      404  {object}  errorResponse
// @Failure      409  {object}  errorResponse
// @Router       /appointments/{id} [delete]
func (h *AppointmentHandler) Cancel(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	a, err := h.appointments.Cancel(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, a)
}

// SetStatus moves an appointment through its lifecycle.
//
// @Summary      Change appointment status
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string         true  "Appointment id"
// @Param        body  body      statusRequest  true  "Status"
// @Success      200   {object}  domain.Appointment
// @Failure      403   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /appointments/status/{id} [post]
func (h *AppointmentHandler) SetStatus(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	var req statusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	status, err := domain.ParseAppointmentStatus(req.Status)
	if err != nil {
		return err
	}
	a, err := h.appointments.SetStatus(c.Request().Context(), actor, c.Param("id"), status)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, a)
}

// Feedback attaches the customer's feedback to an appointment.
//
// @Summary      Leave appointment feedback
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string           true  "Appointment id"
// @Param        body  body      feedbackRequest  true  "Feedback"
// @Success      200   {object}  domain.Appointment
// @Failure      404   {object}  errorResponse
// @Router       /appointments/feedback/{id} [post]
func (h *AppointmentHandler) Feedback(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	var req feedbackRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	a, err := h.appointments.Feedback(c.Request().Context(), actor, c.Param("id"), req.Feedback)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, a)
}

// BulkCancel cancels every listed appointment that is still open.
//
// @Summary      Cancel many appointments
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      bulkCancelRequest  true  "Appointment ids"
// @Success      200   {object}  bulkCancelResponse
// @Failure      400   {object}  errorResponse
// @Router       /appointments/bulk-cancel [post]
func (h *AppointmentHandler) BulkCancel(c echo.Context) error {
	var req bulkCancelRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	n, err := h.appointments.BulkCancel(c.Request().Context(), req.IDs)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bulkCancelResponse{Canceled: n})
}

// Revenue sums the current prices of the services of completed appointments.
//
// @Summary      Revenue
// @Tags         appointments
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  revenueResponse
// @Router       /appointments/revenue [get]
func (h *AppointmentHandler) Revenue(c echo.Context) error {
	total, err := h.appointments.Revenue(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, revenueResponse{Revenue: total})
}

// SendReminders queues reminders for one appointment or, without an id, for
// every open appointment tomorrow.
//
// @Summary      Send reminders
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      reminderRequest  false  "Optional appointment id"
// @Success      202   {object}  reminderResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /appointments/reminders [post]
func (h *AppointmentHandler) SendReminders(c echo.Context) error {
	var req reminderRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	ctx := c.Request().Context()
	if req.AppointmentID != "" {
		if err := h.reminders.Remind(ctx, req.AppointmentID); err != nil {
			return err
		}
		return c.JSON(http.StatusAccepted, reminderResponse{Queued: 1})
	}
	n, err := h.reminders.Sweep(ctx)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusAccepted, reminderResponse{Queued: n})
}
