package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/salonbook/salon-api/internal/core/domain"
	"github.com/salonbook/salon-api/internal/core/ports"
	"github.com/salonbook/salon-api/pkg/clock"
)

type cartService struct {
	carts     ports.CartRepository
	prices    domain.PriceLookup
	discounts domain.DiscountRules
	clock     clock.Clock
	log       zerolog.Logger
}

// NewCartService returns a CartService implementation. A nil rule set falls
// back to domain.DefaultDiscounts.
func NewCartService(
	carts ports.CartRepository,
	prices domain.PriceLookup,
	discounts domain.DiscountRules,
	clk clock.Clock,
	log zerolog.Logger,
) ports.CartService {
	if discounts == nil {
		discounts = domain.DefaultDiscounts()
	}
	return &cartService{carts: carts, prices: prices, discounts: discounts, clock: clk, log: log}
}

func (s *cartService) Get(ctx context.Context, userID string) (*domain.Cart, error) {
	cart, err := s.carts.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get cart: %w", err)
	}
	return cart, nil
}

// AddItem adds qty units of a service that must currently exist.
func (s *cartService) AddItem(ctx context.Context, userID, serviceID string, qty int) (*domain.Cart, error) {
	if err := domain.ValidateQuantity(qty); err != nil {
		return nil, err
	}
	if _, err := s.prices.PriceOf(ctx, serviceID); err != nil {
		return nil, fmt.Errorf("add to cart: %w", err)
	}

	cart, err := s.carts.AddItem(ctx, userID, serviceID, qty, s.clock.Now())
	if err != nil {
		return nil, fmt.Errorf("add to cart: %w", err)
	}
	s.log.Debug().Str("user_id", userID).Str("service_id", serviceID).Int("quantity", qty).Msg("cart item added")
	return cart, nil
}

func (s *cartService) UpdateItem(ctx context.Context, userID, serviceID string, qty int) (*domain.Cart, error) {
	if err := domain.ValidateQuantity(qty); err != nil {
		return nil, err
	}
	cart, err := s.carts.UpdateItem(ctx, userID, serviceID, qty, s.clock.Now())
	if err != nil {
		return nil, fmt.Errorf("update cart item: %w", err)
	}
	return cart, nil
}

func (s *cartService) RemoveItem(ctx context.Context, userID, serviceID string) (*domain.Cart, error) {
	cart, err := s.carts.RemoveItem(ctx, userID, serviceID, s.clock.Now())
	if err != nil {
		return nil, fmt.Errorf("remove cart item: %w", err)
	}
	return cart, nil
}

func (s *cartService) Clear(ctx context.Context, userID string) (*domain.Cart, error) {
	cart, err := s.carts.Clear(ctx, userID, s.clock.Now())
	if err != nil {
		return nil, fmt.Errorf("clear cart: %w", err)
	}
	return cart, nil
}

// ApplyDiscount replaces the active discount. Codes are matched case-sensitively
// after trimming.
func (s *cartService) ApplyDiscount(ctx context.Context, userID, code string) (*domain.Cart, error) {
	code = strings.TrimSpace(code)
	amount, ok := s.discounts.Amount(code)
	if !ok || code == "" {
		return nil, domain.ErrInvalidDiscountCode
	}
	cart, err := s.carts.SetDiscount(ctx, userID, code, amount, s.clock.Now())
	if err != nil {
		return nil, fmt.Errorf("apply discount: %w", err)
	}
	s.log.Info().Str("user_id", userID).Str("code", code).Msg("discount applied")
	return cart, nil
}

// Total prices the cart at current service prices and refreshes the cached
// total. A failed cache write does not fail the computation.
func (s *cartService) Total(ctx context.Context, userID string) (domain.CartTotal, error) {
	cart, err := s.Get(ctx, userID)
	if err != nil {
		return domain.CartTotal{}, err
	}
	total, err := cart.ComputeTotal(ctx, s.prices)
	if err != nil {
		return domain.CartTotal{}, fmt.Errorf("cart total: %w", err)
	}
	if len(cart.Items) > 0 || !cart.DiscountAmount.IsZero() {
		if err := s.carts.SetTotal(ctx, userID, total.Total, s.clock.Now()); err != nil {
			s.log.Warn().Err(err).Str("user_id", userID).Msg("failed to cache cart total")
		}
	}
	return total, nil
}

func (s *cartService) CheckAvailability(ctx context.Context, userID string) ([]domain.CartItem, error) {
	cart, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	unavailable, err := cart.CheckAvailability(ctx, s.prices)
	if err != nil {
		return nil, fmt.Errorf("check availability: %w", err)
	}
	return unavailable, nil
}
