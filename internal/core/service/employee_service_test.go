package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonbook/salon-api/internal/core/domain"
	"github.com/salonbook/salon-api/internal/core/ports"
	"github.com/salonbook/salon-api/internal/infrastructure/db/memory"
)

func newEmployees() ports.EmployeeService {
	return NewEmployeeService(memory.NewEmployeeRepository(), fixedClock, discardLogger)
}

func TestEmployeeService_CreateAndUpdate(t *testing.T) {
	svc := newEmployees()
	ctx := context.Background()

	_, err := svc.Create(ctx, ports.EmployeeInput{Name: "Ana", Email: "ana@salon.test", Role: "barber"})
	assert.ErrorIs(t, err, domain.ErrInvalidRole)

	e, err := svc.Create(ctx, ports.EmployeeInput{Name: "Ana", Email: "Ana@Salon.test", Role: "stylist"})
	require.NoError(t, err)
	assert.Equal(t, "ana@salon.test", e.Email)
	assert.True(t, e.Available)

	_, err = svc.Create(ctx, ports.EmployeeInput{Name: "Ana B", Email: "ana@salon.test", Role: "manager"})
	assert.ErrorIs(t, err, domain.ErrDuplicateEmail)

	updated, err := svc.Update(ctx, e.ID, ports.EmployeeInput{Name: "Ana Maria", Email: "ana@salon.test", Role: "manager"})
	require.NoError(t, err)
	assert.Equal(t, "Ana Maria", updated.Name)
	assert.Equal(t, domain.EmployeeManager, updated.Role)
}

func TestEmployeeService_AvailabilityAndSearch(t *testing.T) {
	svc := newEmployees()
	ctx := context.Background()

	ana, err := svc.Create(ctx, ports.EmployeeInput{Name: "Ana", Email: "ana@salon.test", Role: "stylist"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, ports.EmployeeInput{Name: "Ben", Email: "ben@salon.test", Role: "therapist"})
	require.NoError(t, err)

	_, err = svc.SetAvailability(ctx, ana.ID, false)
	require.NoError(t, err)

	on := true
	available, err := svc.List(ctx, ports.EmployeeFilter{Available: &on})
	require.NoError(t, err)
	require.Len(t, available, 1)
	assert.Equal(t, "Ben", available[0].Name)

	found, err := svc.List(ctx, ports.EmployeeFilter{Query: "STYL"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, ana.ID, found[0].ID)
}

func TestEmployeeService_TasksReviewsSchedule(t *testing.T) {
	svc := newEmployees()
	ctx := context.Background()
	e, err := svc.Create(ctx, ports.EmployeeInput{Name: "Ana", Email: "ana@salon.test", Role: "stylist"})
	require.NoError(t, err)

	_, err = svc.AssignTask(ctx, e.ID, "restock dye")
	require.NoError(t, err)
	_, err = svc.AssignTask(ctx, e.ID, "")
	assert.ErrorIs(t, err, domain.ErrMissingField)
	tasks, err := svc.Tasks(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"restock dye"}, tasks)

	rating, err := svc.Rating(ctx, e.ID)
	require.NoError(t, err)
	assert.Zero(t, rating)

	for _, r := range []float64{5, 4, 3} {
		_, err = svc.AddReview(ctx, e.ID, domain.EmployeeReview{Rating: r, Comment: "ok"})
		require.NoError(t, err)
	}
	_, err = svc.AddReview(ctx, e.ID, domain.EmployeeReview{Rating: 6})
	assert.ErrorIs(t, err, domain.ErrInvalidRating)

	rating, err = svc.Rating(ctx, e.ID)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, rating, 1e-9)

	_, err = svc.SetSchedule(ctx, e.ID, []string{"mon 9-17", "tue 9-17"})
	require.NoError(t, err)
	schedule, err := svc.Schedule(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"mon 9-17", "tue 9-17"}, schedule)

	_, err = svc.Tasks(ctx, "000000000000000000000000")
	assert.ErrorIs(t, err, domain.ErrEmployeeNotFound)
}
