//go:build integration

package mongo

// Runs against a throwaway MongoDB:
//
//	go test -tags integration ./internal/infrastructure/db/mongo/...

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tcMongo "github.com/testcontainers/testcontainers-go/modules/mongodb"

	"github.com/salonbook/salon-api/internal/core/domain"
	"github.com/salonbook/salon-api/internal/core/ports"
)

var now = time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

func setupRepos(t *testing.T) *Repositories {
	t.Helper()
	ctx := context.Background()

	container, err := tcMongo.Run(ctx, "mongo:7")
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	uri, err := container.ConnectionString(ctx)
	require.NoError(t, err)

	client, db, err := Connect(ctx, Config{URI: uri, Database: "salon_test"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Disconnect(ctx) })

	repos := NewRepositories(db)
	require.NoError(t, repos.EnsureIndexes(ctx))
	return repos
}

func TestIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("integration test")
	}
	repos := setupRepos(t)
	ctx := context.Background()

	t.Run("users unique email and username", func(t *testing.T) {
		u, err := repos.Users.Create(ctx, &domain.User{
			Username: "alice", Email: "alice@example.com", PasswordHash: "h",
			Role: domain.RoleUser, CreatedAt: now, UpdatedAt: now,
		})
		require.NoError(t, err)
		assert.Len(t, u.ID, 24)

		_, err = repos.Users.Create(ctx, &domain.User{Username: "alice2", Email: "alice@example.com", Role: domain.RoleUser})
		assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
		_, err = repos.Users.Create(ctx, &domain.User{Username: "alice", Email: "other@example.com", Role: domain.RoleUser})
		assert.ErrorIs(t, err, domain.ErrDuplicateUsername)

		got, err := repos.Users.FindByEmail(ctx, "alice@example.com")
		require.NoError(t, err)
		assert.Equal(t, u.ID, got.ID)

		_, err = repos.Users.FindByID(ctx, "not-an-id")
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})

	t.Run("concurrent cart adds are all counted", func(t *testing.T) {
		const workers = 20
		var wg sync.WaitGroup
		errs := make(chan error, workers)
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := repos.Carts.AddItem(ctx, "cart-user", "svc-1", 1, now)
				errs <- err
			}()
		}
		wg.Wait()
		close(errs)
		for err := range errs {
			require.NoError(t, err)
		}

		cart, err := repos.Carts.FindByUser(ctx, "cart-user")
		require.NoError(t, err)
		require.Len(t, cart.Items, 1)
		assert.Equal(t, workers, cart.Items[0].Quantity)
	})

	t.Run("cart discount and clear", func(t *testing.T) {
		cart, err := repos.Carts.SetDiscount(ctx, "disc-user", "SAVE10", decimal.NewFromInt(10), now)
		require.NoError(t, err)
		assert.Equal(t, "SAVE10", cart.DiscountCode)
		assert.True(t, cart.DiscountAmount.Equal(decimal.NewFromInt(10)))

		_, err = repos.Carts.UpdateItem(ctx, "disc-user", "missing", 2, now)
		assert.ErrorIs(t, err, domain.ErrItemNotFound)

		cart, err = repos.Carts.Clear(ctx, "disc-user", now)
		require.NoError(t, err)
		assert.Empty(t, cart.Items)
		assert.Empty(t, cart.DiscountCode)
	})

	t.Run("payment completes exactly once", func(t *testing.T) {
		p, err := repos.Payments.Create(ctx, &domain.Payment{
			UserID: "payer", Amount: decimal.RequireFromString("140.00"), Method: "card",
			CardDetails: domain.MaskCard("4242424242424242", "12/30", "A"),
			Status:      domain.PaymentInitialized, CreatedAt: now, UpdatedAt: now,
		})
		require.NoError(t, err)

		done, err := repos.Payments.Transition(ctx, p.ID, domain.PaymentInitialized, domain.PaymentCompleted, "RCPT-1", now)
		require.NoError(t, err)
		assert.Equal(t, "RCPT-1", done.Receipt)
		assert.Equal(t, "4242", done.CardDetails.Last4)
		assert.True(t, done.Amount.Equal(decimal.NewFromInt(140)))

		_, err = repos.Payments.Transition(ctx, p.ID, domain.PaymentInitialized, domain.PaymentFailed, "", now)
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)

		_, err = repos.Payments.Transition(ctx, "0123456789abcdef01234567", domain.PaymentInitialized, domain.PaymentFailed, "", now)
		assert.ErrorIs(t, err, domain.ErrPaymentNotFound)
	})

	t.Run("revenue sums completed appointments", func(t *testing.T) {
		svc, err := repos.Services.Create(ctx, &domain.Service{
			Name: "Cut", Category: domain.CategoryHair, Price: decimal.NewFromInt(50),
			Available: true, CreatedAt: now, UpdatedAt: now,
		})
		require.NoError(t, err)

		for i := 0; i < 3; i++ {
			a, err := repos.Appointments.Create(ctx, &domain.Appointment{
				UserID: "client", ServiceID: svc.ID, Date: now.Add(time.Duration(i) * time.Hour),
				Status: domain.AppointmentConfirmed, CreatedAt: now, UpdatedAt: now,
			})
			require.NoError(t, err)
			if i < 2 {
				_, err = repos.Appointments.Transition(ctx, a.ID, domain.AppointmentConfirmed, domain.AppointmentCompleted, now)
				require.NoError(t, err)
			}
		}

		total, err := repos.Appointments.Revenue(ctx)
		require.NoError(t, err)
		assert.True(t, total.Equal(decimal.NewFromInt(100)), "got %s", total)

		list, err := repos.Appointments.List(ctx, ports.AppointmentFilter{UserID: "client", Status: domain.AppointmentConfirmed})
		require.NoError(t, err)
		require.Len(t, list, 1)

		n, err := repos.Appointments.CancelMany(ctx, []string{list[0].ID, "bogus"}, now)
		require.NoError(t, err)
		assert.EqualValues(t, 1, n)
	})
}
