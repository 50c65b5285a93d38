package memory

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/salonbook/salon-api/internal/core/domain"
)

// CartRepository serialises every mutation under one lock, which gives the same
// per-cart atomicity the MongoDB operators provide.
type CartRepository struct {
	mu    sync.Mutex
	carts map[string]*domain.Cart
}

func NewCartRepository() *CartRepository {
	return &CartRepository{carts: make(map[string]*domain.Cart)}
}

func cloneCart(c *domain.Cart) *domain.Cart {
	clone := *c
	clone.Items = make([]domain.CartItem, len(c.Items))
	copy(clone.Items, c.Items)
	return &clone
}

func (r *CartRepository) FindByUser(_ context.Context, userID string) (*domain.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.carts[userID]
	if !ok {
		return domain.NewCart(userID), nil
	}
	return cloneCart(c), nil
}

// mutate loads or creates the user's cart, applies fn and stores the result
// only when fn succeeds.
func (r *CartRepository) mutate(userID string, now time.Time, fn func(*domain.Cart) error) (*domain.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.carts[userID]
	var working *domain.Cart
	if ok {
		working = cloneCart(current)
	} else {
		working = domain.NewCart(userID)
		working.ID = newID()
		working.CreatedAt = now
	}
	if err := fn(working); err != nil {
		return nil, err
	}
	working.UpdatedAt = now
	r.carts[userID] = working
	return cloneCart(working), nil
}

func (r *CartRepository) AddItem(_ context.Context, userID, serviceID string, qty int, now time.Time) (*domain.Cart, error) {
	return r.mutate(userID, now, func(c *domain.Cart) error { return c.AddItem(serviceID, qty) })
}

func (r *CartRepository) UpdateItem(_ context.Context, userID, serviceID string, qty int, now time.Time) (*domain.Cart, error) {
	return r.mutate(userID, now, func(c *domain.Cart) error { return c.UpdateItem(serviceID, qty) })
}

func (r *CartRepository) RemoveItem(_ context.Context, userID, serviceID string, now time.Time) (*domain.Cart, error) {
	return r.mutate(userID, now, func(c *domain.Cart) error {
		c.RemoveItem(serviceID)
		return nil
	})
}

func (r *CartRepository) Clear(_ context.Context, userID string, now time.Time) (*domain.Cart, error) {
	return r.mutate(userID, now, func(c *domain.Cart) error {
		c.Clear()
		c.TotalCost = decimal.Zero
		return nil
	})
}

func (r *CartRepository) SetDiscount(_ context.Context, userID, code string, amount decimal.Decimal, now time.Time) (*domain.Cart, error) {
	return r.mutate(userID, now, func(c *domain.Cart) error {
		c.DiscountCode = code
		c.DiscountAmount = amount
		return nil
	})
}

func (r *CartRepository) SetTotal(_ context.Context, userID string, total decimal.Decimal, now time.Time) error {
	_, err := r.mutate(userID, now, func(c *domain.Cart) error {
		c.TotalCost = total
		return nil
	})
	return err
}
