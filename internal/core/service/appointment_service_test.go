package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonbook/salon-api/internal/core/domain"
	"github.com/salonbook/salon-api/internal/core/ports"
	"github.com/salonbook/salon-api/internal/infrastructure/db/memory"
)

type appointmentFixture struct {
	catalog   ports.CatalogService
	employees ports.EmployeeService
	repo      *memory.AppointmentRepository
	svc       ports.AppointmentService
}

func newAppointmentFixture() *appointmentFixture {
	services := memory.NewServiceRepository()
	employeeRepo := memory.NewEmployeeRepository()
	catalog := NewCatalogService(services, fixedClock, discardLogger)
	repo := memory.NewAppointmentRepository(catalog)
	return &appointmentFixture{
		catalog:   catalog,
		employees: NewEmployeeService(employeeRepo, fixedClock, discardLogger),
		repo:      repo,
		svc:       NewAppointmentService(repo, catalog, employeeRepo, fixedClock, discardLogger),
	}
}

func (f *appointmentFixture) service(t *testing.T, price int64) string {
	t.Helper()
	s, err := f.catalog.Create(context.Background(), ports.ServiceInput{Name: "Cut", Category: "hair", Price: decimal.NewFromInt(price)})
	require.NoError(t, err)
	return s.ID
}

func (f *appointmentFixture) book(t *testing.T, actor domain.Actor, serviceID string, at time.Time) *domain.Appointment {
	t.Helper()
	a, err := f.svc.Book(context.Background(), actor, ports.AppointmentInput{ServiceID: serviceID, Date: at})
	require.NoError(t, err)
	return a
}

func TestAppointmentService_BookValidatesReferences(t *testing.T) {
	f := newAppointmentFixture()
	ctx := context.Background()
	s1 := f.service(t, 20)

	_, err := f.svc.Book(ctx, alice, ports.AppointmentInput{ServiceID: s1})
	assert.ErrorIs(t, err, domain.ErrMissingField)

	_, err = f.svc.Book(ctx, alice, ports.AppointmentInput{ServiceID: "000000000000000000000000", Date: fixedNow})
	assert.ErrorIs(t, err, domain.ErrServiceNotFound)

	_, err = f.svc.Book(ctx, alice, ports.AppointmentInput{ServiceID: s1, EmployeeID: "000000000000000000000000", Date: fixedNow})
	assert.ErrorIs(t, err, domain.ErrEmployeeNotFound)

	a := f.book(t, alice, s1, fixedNow.Add(24*time.Hour))
	assert.Equal(t, domain.AppointmentPending, a.Status)
	assert.Equal(t, "alice", a.UserID)
}

func TestAppointmentService_Visibility(t *testing.T) {
	f := newAppointmentFixture()
	ctx := context.Background()
	s1 := f.service(t, 20)
	a := f.book(t, alice, s1, fixedNow)
	f.book(t, bob, s1, fixedNow)

	_, err := f.svc.Get(ctx, bob, a.ID)
	assert.ErrorIs(t, err, domain.ErrAppointmentNotFound)

	mine, err := f.svc.List(ctx, alice, ports.AppointmentFilter{UserID: "bob"})
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "alice", mine[0].UserID)

	all, err := f.svc.List(ctx, admin, ports.AppointmentFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestAppointmentService_StatusLifecycle(t *testing.T) {
	f := newAppointmentFixture()
	ctx := context.Background()
	s1 := f.service(t, 20)
	a := f.book(t, alice, s1, fixedNow)

	_, err := f.svc.SetStatus(ctx, alice, a.ID, domain.AppointmentConfirmed)
	assert.ErrorIs(t, err, domain.ErrForbidden, "owners cannot confirm")

	_, err = f.svc.SetStatus(ctx, admin, a.ID, domain.AppointmentCompleted)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition, "pending cannot complete")

	confirmed, err := f.svc.SetStatus(ctx, admin, a.ID, domain.AppointmentConfirmed)
	require.NoError(t, err)
	assert.Equal(t, domain.AppointmentConfirmed, confirmed.Status)

	canceled, err := f.svc.Cancel(ctx, alice, a.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.AppointmentCanceled, canceled.Status)

	_, err = f.svc.Cancel(ctx, alice, a.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	_, err = f.svc.Reschedule(ctx, alice, a.ID, ports.AppointmentInput{ServiceID: s1, Date: fixedNow})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestAppointmentService_Reschedule(t *testing.T) {
	f := newAppointmentFixture()
	ctx := context.Background()
	s1 := f.service(t, 20)
	s2 := f.service(t, 30)
	a := f.book(t, alice, s1, fixedNow)

	later := fixedNow.Add(48 * time.Hour)
	updated, err := f.svc.Reschedule(ctx, alice, a.ID, ports.AppointmentInput{ServiceID: s2, Date: later})
	require.NoError(t, err)
	assert.Equal(t, s2, updated.ServiceID)
	assert.True(t, updated.Date.Equal(later))

	got, err := f.svc.Get(ctx, alice, a.ID)
	require.NoError(t, err)
	assert.Equal(t, s2, got.ServiceID)
}

func TestAppointmentService_Periods(t *testing.T) {
	f := newAppointmentFixture()
	ctx := context.Background()
	s1 := f.service(t, 20)

	// fixedNow is Saturday 2026-03-14.
	f.book(t, alice, s1, fixedNow.Add(2*time.Hour))
	f.book(t, alice, s1, time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC))
	f.book(t, alice, s1, time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC))
	f.book(t, alice, s1, time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC))

	counts := map[ports.Period]int{ports.PeriodToday: 1, ports.PeriodWeek: 2, ports.PeriodMonth: 3}
	for period, want := range counts {
		list, err := f.svc.ListPeriod(ctx, alice, period)
		require.NoError(t, err)
		assert.Len(t, list, want, string(period))
	}

	_, err := f.svc.ListPeriod(ctx, alice, "year")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAppointmentService_FeedbackBulkCancelRevenue(t *testing.T) {
	f := newAppointmentFixture()
	ctx := context.Background()
	cheap := f.service(t, 20)
	pricey := f.service(t, 80)

	a1 := f.book(t, alice, cheap, fixedNow)
	a2 := f.book(t, alice, pricey, fixedNow)
	a3 := f.book(t, bob, cheap, fixedNow)

	for _, id := range []string{a1.ID, a2.ID} {
		_, err := f.svc.SetStatus(ctx, admin, id, domain.AppointmentConfirmed)
		require.NoError(t, err)
		_, err = f.svc.SetStatus(ctx, admin, id, domain.AppointmentCompleted)
		require.NoError(t, err)
	}

	withFeedback, err := f.svc.Feedback(ctx, alice, a1.ID, "lovely")
	require.NoError(t, err)
	assert.Equal(t, "lovely", withFeedback.Feedback)
	_, err = f.svc.Feedback(ctx, bob, a1.ID, "spam")
	assert.ErrorIs(t, err, domain.ErrAppointmentNotFound)

	n, err := f.svc.BulkCancel(ctx, []string{a1.ID, a3.ID, "000000000000000000000000"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, n, "completed appointments are not canceled")

	_, err = f.svc.BulkCancel(ctx, nil)
	assert.ErrorIs(t, err, domain.ErrMissingField)

	revenue, err := f.svc.Revenue(ctx)
	require.NoError(t, err)
	assert.True(t, revenue.Equal(decimal.NewFromInt(100)), "revenue %s", revenue)
}
