package memory

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/salonbook/salon-api/internal/core/domain"
	"github.com/salonbook/salon-api/internal/core/ports"
)

// AppointmentRepository resolves revenue against prices, which the MongoDB
// implementation gets through a $lookup.
type AppointmentRepository struct {
	mu           sync.RWMutex
	appointments map[string]*domain.Appointment
	prices       domain.PriceLookup
}

func NewAppointmentRepository(prices domain.PriceLookup) *AppointmentRepository {
	return &AppointmentRepository{appointments: make(map[string]*domain.Appointment), prices: prices}
}

func cloneAppointment(a *domain.Appointment) *domain.Appointment {
	clone := *a
	return &clone
}

func (r *AppointmentRepository) Create(_ context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := cloneAppointment(a)
	stored.ID = newID()
	r.appointments[stored.ID] = stored
	return cloneAppointment(stored), nil
}

func (r *AppointmentRepository) FindByID(_ context.Context, id string) (*domain.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.appointments[id]
	if !ok {
		return nil, domain.ErrAppointmentNotFound
	}
	return cloneAppointment(a), nil
}

func (r *AppointmentRepository) Update(_ context.Context, a *domain.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.appointments[a.ID]
	if !ok {
		return domain.ErrAppointmentNotFound
	}
	stored.ServiceID = a.ServiceID
	stored.EmployeeID = a.EmployeeID
	stored.Date = a.Date
	stored.UpdatedAt = a.UpdatedAt
	return nil
}

func (r *AppointmentRepository) List(_ context.Context, f ports.AppointmentFilter) ([]*domain.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []*domain.Appointment{}
	for _, a := range r.appointments {
		if f.UserID != "" && a.UserID != f.UserID {
			continue
		}
		if f.ServiceID != "" && a.ServiceID != f.ServiceID {
			continue
		}
		if f.Status != "" && a.Status != f.Status {
			continue
		}
		if !f.From.IsZero() && a.Date.Before(f.From) {
			continue
		}
		if !f.To.IsZero() && !a.Date.Before(f.To) {
			continue
		}
		out = append(out, cloneAppointment(a))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (r *AppointmentRepository) Transition(_ context.Context, id string, from, to domain.AppointmentStatus, now time.Time) (*domain.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.appointments[id]
	if !ok {
		return nil, domain.ErrAppointmentNotFound
	}
	if a.Status != from {
		return nil, domain.ErrInvalidTransition
	}
	a.Status = to
	a.UpdatedAt = now
	return cloneAppointment(a), nil
}

func (r *AppointmentRepository) SetFeedback(_ context.Context, id, feedback string, now time.Time) (*domain.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.appointments[id]
	if !ok {
		return nil, domain.ErrAppointmentNotFound
	}
	a.Feedback = feedback
	a.UpdatedAt = now
	return cloneAppointment(a), nil
}

func (r *AppointmentRepository) CancelMany(_ context.Context, ids []string, now time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var n int64
	for _, id := range ids {
		a, ok := r.appointments[id]
		if !ok || !a.Status.Cancelable() {
			continue
		}
		a.Status = domain.AppointmentCanceled
		a.UpdatedAt = now
		n++
	}
	return n, nil
}

// Revenue skips appointments whose service has since been deleted.
func (r *AppointmentRepository) Revenue(ctx context.Context) (decimal.Decimal, error) {
	r.mu.RLock()
	completed := []string{}
	for _, a := range r.appointments {
		if a.Status == domain.AppointmentCompleted {
			completed = append(completed, a.ServiceID)
		}
	}
	r.mu.RUnlock()

	total := decimal.Zero
	for _, serviceID := range completed {
		q, err := r.prices.PriceOf(ctx, serviceID)
		if errors.Is(err, domain.ErrServiceNotFound) {
			continue
		}
		if err != nil {
			return decimal.Zero, err
		}
		total = total.Add(q.Price)
	}
	return total, nil
}
