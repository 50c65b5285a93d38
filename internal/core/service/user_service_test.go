package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonbook/salon-api/internal/core/domain"
	"github.com/salonbook/salon-api/internal/infrastructure/db/memory"
)

func TestUserService_ProfileAndAdminOps(t *testing.T) {
	repo := memory.NewUserRepository()
	svc := NewUserService(repo, fixedClock, discardLogger)
	ctx := context.Background()

	u, err := repo.Create(ctx, &domain.User{Username: "alice", Email: "alice@example.com", Role: domain.RoleUser})
	require.NoError(t, err)

	updated, err := svc.UpdateProfile(ctx, u.ID, domain.Profile{FirstName: "Alice", PhoneNumber: "+15550100"})
	require.NoError(t, err)
	assert.Equal(t, "Alice", updated.Profile.FirstName)
	assert.Equal(t, fixedNow, updated.UpdatedAt)

	got, err := svc.Profile(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "+15550100", got.Profile.PhoneNumber)

	require.NoError(t, svc.SetBlocked(ctx, u.ID, true))
	got, err = svc.Profile(ctx, u.ID)
	require.NoError(t, err)
	assert.True(t, got.Blocked)

	assert.ErrorIs(t, svc.SetRole(ctx, u.ID, "root"), domain.ErrInvalidRole)
	require.NoError(t, svc.SetRole(ctx, u.ID, domain.RoleStaff))

	users, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, domain.RoleStaff, users[0].Role)

	_, err = svc.Profile(ctx, "000000000000000000000000")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
