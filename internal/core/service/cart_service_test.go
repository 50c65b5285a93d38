package service

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonbook/salon-api/internal/core/domain"
	"github.com/salonbook/salon-api/internal/core/ports"
	"github.com/salonbook/salon-api/internal/infrastructure/db/memory"
)

type cartFixture struct {
	services *memory.ServiceRepository
	carts    *memory.CartRepository
	catalog  ports.CatalogService
	svc      ports.CartService
}

func newCartFixture(rules domain.DiscountRules) *cartFixture {
	services := memory.NewServiceRepository()
	carts := memory.NewCartRepository()
	catalog := NewCatalogService(services, fixedClock, discardLogger)
	return &cartFixture{
		services: services,
		carts:    carts,
		catalog:  catalog,
		svc:      NewCartService(carts, catalog, rules, fixedClock, discardLogger),
	}
}

func (f *cartFixture) service(t *testing.T, name string, price int64) string {
	t.Helper()
	s, err := f.catalog.Create(context.Background(), ports.ServiceInput{
		Name:     name,
		Category: string(domain.CategoryHair),
		Price:    decimal.NewFromInt(price),
	})
	require.NoError(t, err)
	return s.ID
}

func TestCartService_GetWithoutCartIsEmpty(t *testing.T) {
	f := newCartFixture(nil)

	cart, err := f.svc.Get(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "u1", cart.UserID)
	assert.Empty(t, cart.Items)
}

func TestCartService_AddTwiceAccumulates(t *testing.T) {
	f := newCartFixture(nil)
	s1 := f.service(t, "Cut", 20)

	_, err := f.svc.AddItem(context.Background(), "u1", s1, 1)
	require.NoError(t, err)
	cart, err := f.svc.AddItem(context.Background(), "u1", s1, 1)
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
}

func TestCartService_AddItemErrors(t *testing.T) {
	f := newCartFixture(nil)
	s1 := f.service(t, "Cut", 20)

	_, err := f.svc.AddItem(context.Background(), "u1", s1, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	_, err = f.svc.AddItem(context.Background(), "u1", "000000000000000000000000", 1)
	assert.ErrorIs(t, err, domain.ErrServiceNotFound)

	cart, err := f.svc.Get(context.Background(), "u1")
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestCartService_UpdateAndRemove(t *testing.T) {
	f := newCartFixture(nil)
	ctx := context.Background()
	s1 := f.service(t, "Cut", 20)
	s2 := f.service(t, "Color", 15)

	_, err := f.svc.AddItem(ctx, "u1", s1, 1)
	require.NoError(t, err)

	cart, err := f.svc.UpdateItem(ctx, "u1", s1, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, cart.Quantity(s1))

	_, err = f.svc.UpdateItem(ctx, "u1", s2, 1)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)

	_, err = f.svc.UpdateItem(ctx, "u1", s1, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	cart, err = f.svc.RemoveItem(ctx, "u1", s2)
	require.NoError(t, err)
	assert.Len(t, cart.Items, 1)

	cart, err = f.svc.RemoveItem(ctx, "u1", s1)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestCartService_TotalExample(t *testing.T) {
	f := newCartFixture(domain.StaticDiscounts{"TEN": decimal.NewFromInt(10)})
	ctx := context.Background()
	s1 := f.service(t, "Cut", 20)
	s2 := f.service(t, "Color", 15)

	_, err := f.svc.AddItem(ctx, "u1", s1, 2)
	require.NoError(t, err)
	_, err = f.svc.AddItem(ctx, "u1", s2, 1)
	require.NoError(t, err)
	_, err = f.svc.ApplyDiscount(ctx, "u1", "TEN")
	require.NoError(t, err)

	total, err := f.svc.Total(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, total.Total.Equal(decimal.NewFromInt(45)), "total %s", total.Total)

	cart, err := f.svc.Get(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, cart.TotalCost.Equal(decimal.NewFromInt(45)), "cached %s", cart.TotalCost)
}

func TestCartService_TotalFloorsAtZero(t *testing.T) {
	f := newCartFixture(nil)
	ctx := context.Background()
	s1 := f.service(t, "File", 5)

	_, err := f.svc.AddItem(ctx, "u1", s1, 1)
	require.NoError(t, err)
	_, err = f.svc.ApplyDiscount(ctx, "u1", "SAVE10")
	require.NoError(t, err)

	total, err := f.svc.Total(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, total.Total.IsZero(), "total %s", total.Total)
}

func TestCartService_SAVE10(t *testing.T) {
	f := newCartFixture(nil)
	ctx := context.Background()
	s1 := f.service(t, "Massage", 50)

	_, err := f.svc.AddItem(ctx, "u1", s1, 3)
	require.NoError(t, err)

	_, err = f.svc.ApplyDiscount(ctx, "u1", "BOGUS")
	assert.ErrorIs(t, err, domain.ErrInvalidDiscountCode)

	cart, err := f.svc.ApplyDiscount(ctx, "u1", "SAVE10")
	require.NoError(t, err)
	assert.Equal(t, "SAVE10", cart.DiscountCode)

	total, err := f.svc.Total(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, total.Subtotal.Equal(decimal.NewFromInt(150)))
	assert.True(t, total.Total.Equal(decimal.NewFromInt(140)), "total %s", total.Total)
}

func TestCartService_ClearDropsDiscount(t *testing.T) {
	f := newCartFixture(nil)
	ctx := context.Background()
	s1 := f.service(t, "Cut", 20)

	_, err := f.svc.AddItem(ctx, "u1", s1, 1)
	require.NoError(t, err)
	_, err = f.svc.ApplyDiscount(ctx, "u1", "SAVE10")
	require.NoError(t, err)

	cart, err := f.svc.Clear(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
	assert.Empty(t, cart.DiscountCode)

	total, err := f.svc.Total(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, total.Total.IsZero())
}

func TestCartService_PriceChangeAppliesAtComputation(t *testing.T) {
	f := newCartFixture(nil)
	ctx := context.Background()
	s1 := f.service(t, "Cut", 20)

	_, err := f.svc.AddItem(ctx, "u1", s1, 2)
	require.NoError(t, err)
	_, err = f.catalog.Update(ctx, s1, ports.ServiceInput{Name: "Cut", Category: "hair", Price: decimal.NewFromInt(25)})
	require.NoError(t, err)

	total, err := f.svc.Total(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, total.Total.Equal(decimal.NewFromInt(50)), "total %s", total.Total)
}

func TestCartService_CheckAvailability(t *testing.T) {
	f := newCartFixture(nil)
	ctx := context.Background()
	s1 := f.service(t, "Cut", 20)
	s2 := f.service(t, "Color", 15)

	_, err := f.svc.AddItem(ctx, "u1", s1, 1)
	require.NoError(t, err)
	_, err = f.svc.AddItem(ctx, "u1", s2, 1)
	require.NoError(t, err)
	_, err = f.catalog.SetAvailability(ctx, s2, false)
	require.NoError(t, err)

	unavailable, err := f.svc.CheckAvailability(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []domain.CartItem{{ServiceID: s2, Quantity: 1}}, unavailable)

	total, err := f.svc.Total(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{s2}, total.Unavailable)
	assert.True(t, total.Total.Equal(decimal.NewFromInt(35)))
}

func TestCartService_ConcurrentAddsAreNotLost(t *testing.T) {
	f := newCartFixture(nil)
	s1 := f.service(t, "Cut", 20)

	const workers = 50
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_, _ = f.svc.AddItem(context.Background(), "u1", s1, 1)
		}()
	}
	wg.Wait()

	cart, err := f.svc.Get(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, workers, cart.Quantity(s1))
}
