package main

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/salonbook/salon-api/internal/core/domain"
	"github.com/salonbook/salon-api/internal/infrastructure/db/memory"
	"github.com/salonbook/salon-api/pkg/password"
)

var seededAt = time.Date(2026, 1, 5, 8, 0, 0, 0, time.UTC)

func TestSeedAdmin_CreatesAccount(t *testing.T) {
	ctx := context.Background()
	users := memory.NewUserRepository()
	hasher := password.NewHasher(bcrypt.MinCost)

	user, created, err := seedAdmin(ctx, users, hasher, seedInput{
		Username: " admin ",
		Email:    "Admin@Salon.Local",
		Password: "change-me-now",
	}, seededAt, zerolog.Nop())
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "admin", user.Username)
	assert.Equal(t, domain.RoleAdmin, user.Role)

	stored, err := users.FindByEmail(ctx, "admin@salon.local")
	require.NoError(t, err)
	assert.True(t, hasher.Verify("change-me-now", stored.PasswordHash))
}

func TestSeedAdmin_PromotesExistingUser(t *testing.T) {
	ctx := context.Background()
	users := memory.NewUserRepository()
	hasher := password.NewHasher(bcrypt.MinCost)

	existing, err := users.Create(ctx, &domain.User{
		Username: "dana",
		Email:    "dana@salon.local",
		Role:     domain.RoleUser,
		Blocked:  true,
	})
	require.NoError(t, err)

	user, created, err := seedAdmin(ctx, users, hasher, seedInput{
		Username: "dana",
		Email:    "dana@salon.local",
		Password: "brand-new-pass",
	}, seededAt, zerolog.Nop())
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, existing.ID, user.ID)

	stored, err := users.FindByID(ctx, existing.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, stored.Role)
	assert.False(t, stored.Blocked)
	assert.True(t, hasher.Verify("brand-new-pass", stored.PasswordHash))
}

func TestSeedAdmin_RejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		in   seedInput
	}{
		{"no username", seedInput{Email: "a@b.c", Password: "long-enough"}},
		{"no email", seedInput{Username: "a", Password: "long-enough"}},
		{"short password", seedInput{Username: "a", Email: "a@b.c", Password: "short"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := seedAdmin(context.Background(), memory.NewUserRepository(),
				password.NewHasher(bcrypt.MinCost), tt.in, seededAt, zerolog.Nop())
			assert.True(t, errors.Is(err, domain.ErrValidation), "got %v", err)
		})
	}
}
