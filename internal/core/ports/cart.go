package ports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/salonbook/salon-api/internal/core/domain"
)

// CartRepository persists one cart per user. Every mutation is a single atomic
// document update and returns the cart as stored afterwards. A user without a
// stored cart reads as domain.NewCart.
type CartRepository interface {
	FindByUser(ctx context.Context, userID string) (*domain.Cart, error)
	AddItem(ctx context.Context, userID, serviceID string, qty int, now time.Time) (*domain.Cart, error)
	// UpdateItem returns domain.ErrItemNotFound when the line is absent.
	UpdateItem(ctx context.Context, userID, serviceID string, qty int, now time.Time) (*domain.Cart, error)
	RemoveItem(ctx context.Context, userID, serviceID string, now time.Time) (*domain.Cart, error)
	Clear(ctx context.Context, userID string, now time.Time) (*domain.Cart, error)
	SetDiscount(ctx context.Context, userID, code string, amount decimal.Decimal, now time.Time) (*domain.Cart, error)
	SetTotal(ctx context.Context, userID string, total decimal.Decimal, now time.Time) error
}

// CartService is the cart engine bound to a user's stored cart.
type CartService interface {
	Get(ctx context.Context, userID string) (*domain.Cart, error)
	AddItem(ctx context.Context, userID, serviceID string, qty int) (*domain.Cart, error)
	UpdateItem(ctx context.Context, userID, serviceID string, qty int) (*domain.Cart, error)
	RemoveItem(ctx context.Context, userID, serviceID string) (*domain.Cart, error)
	Clear(ctx context.Context, userID string) (*domain.Cart, error)
	ApplyDiscount(ctx context.Context, userID, code string) (*domain.Cart, error)
	Total(ctx context.Context, userID string) (domain.CartTotal, error)
	CheckAvailability(ctx context.Context, userID string) ([]domain.CartItem, error)
}
