package domain

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// CartItem is a (service, quantity) pair. ServiceID is unique within a cart.
type CartItem struct {
	ServiceID string `json:"service_id"`
	Quantity  int    `json:"quantity"`
}

// Cart is owned 1:1 by a user. TotalCost is a cache of the last ComputeTotal and
// is never authoritative.
type Cart struct {
	ID             string          `json:"id,omitempty"`
	UserID         string          `json:"user_id"`
	Items          []CartItem      `json:"items"`
	DiscountCode   string          `json:"discount_code,omitempty"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	TotalCost      decimal.Decimal `json:"total_cost"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// NewCart returns the empty cart a user implicitly owns before the first write.
func NewCart(userID string) *Cart {
	return &Cart{UserID: userID, Items: []CartItem{}}
}

func ValidateQuantity(qty int) error {
	if qty < 1 {
		return ErrInvalidQuantity
	}
	return nil
}

func (c *Cart) indexOf(serviceID string) int {
	for i, item := range c.Items {
		if item.ServiceID == serviceID {
			return i
		}
	}
	return -1
}

// Quantity returns the quantity held for serviceID, 0 when absent.
func (c *Cart) Quantity(serviceID string) int {
	if i := c.indexOf(serviceID); i >= 0 {
		return c.Items[i].Quantity
	}
	return 0
}

// AddItem increments an existing line or appends a new one.
func (c *Cart) AddItem(serviceID string, qty int) error {
	if err := ValidateQuantity(qty); err != nil {
		return err
	}
	if i := c.indexOf(serviceID); i >= 0 {
		c.Items[i].Quantity += qty
		return nil
	}
	c.Items = append(c.Items, CartItem{ServiceID: serviceID, Quantity: qty})
	return nil
}

// UpdateItem sets the quantity of an existing line. A quantity below 1 is
// rejected; RemoveItem is the only way to drop a line.
func (c *Cart) UpdateItem(serviceID string, qty int) error {
	if err := ValidateQuantity(qty); err != nil {
		return err
	}
	i := c.indexOf(serviceID)
	if i < 0 {
		return ErrItemNotFound
	}
	c.Items[i].Quantity = qty
	return nil
}

// RemoveItem drops the line for serviceID. Absent lines are ignored.
func (c *Cart) RemoveItem(serviceID string) {
	if i := c.indexOf(serviceID); i >= 0 {
		c.Items = append(c.Items[:i], c.Items[i+1:]...)
	}
}

// Clear empties the cart and drops any discount.
func (c *Cart) Clear() {
	c.Items = []CartItem{}
	c.DiscountCode = ""
	c.DiscountAmount = decimal.Zero
}

// DiscountRules resolves a discount code to the flat amount it unlocks.
type DiscountRules interface {
	Amount(code string) (decimal.Decimal, bool)
}

// StaticDiscounts is a fixed code → amount table.
type StaticDiscounts map[string]decimal.Decimal

func (d StaticDiscounts) Amount(code string) (decimal.Decimal, bool) {
	amount, ok := d[code]
	return amount, ok
}

// DefaultDiscounts is the rule set used when none is configured.
func DefaultDiscounts() StaticDiscounts {
	return StaticDiscounts{"SAVE10": decimal.NewFromInt(10)}
}

// ApplyDiscount replaces any active discount with the one unlocked by code.
func (c *Cart) ApplyDiscount(code string, rules DiscountRules) error {
	amount, ok := rules.Amount(code)
	if !ok || code == "" {
		return ErrInvalidDiscountCode
	}
	c.DiscountCode = code
	c.DiscountAmount = amount
	return nil
}

// CartTotal is the result of pricing a cart.
type CartTotal struct {
	Subtotal    decimal.Decimal `json:"subtotal"`
	Discount    decimal.Decimal `json:"discount"`
	Total       decimal.Decimal `json:"total_cost"`
	Unavailable []string        `json:"unavailable_services,omitempty"`
}

// ComputeTotal prices every line at the service's current price, subtracts the
// discount and floors the result at zero. Unavailable services are priced and
// reported in Unavailable. The result is cached in TotalCost.
func (c *Cart) ComputeTotal(ctx context.Context, lookup PriceLookup) (CartTotal, error) {
	subtotal := decimal.Zero
	var unavailable []string
	for _, item := range c.Items {
		quote, err := lookup.PriceOf(ctx, item.ServiceID)
		if err != nil {
			return CartTotal{}, fmt.Errorf("price %s: %w", item.ServiceID, err)
		}
		if !quote.Available {
			unavailable = append(unavailable, item.ServiceID)
		}
		subtotal = subtotal.Add(quote.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	total := subtotal.Sub(c.DiscountAmount)
	if total.IsNegative() {
		total = decimal.Zero
	}
	c.TotalCost = total

	return CartTotal{
		Subtotal:    subtotal,
		Discount:    c.DiscountAmount,
		Total:       total,
		Unavailable: unavailable,
	}, nil
}

// CheckAvailability returns the lines whose service is currently unavailable.
// An empty result means the cart can be purchased.
func (c *Cart) CheckAvailability(ctx context.Context, lookup PriceLookup) ([]CartItem, error) {
	unavailable := []CartItem{}
	for _, item := range c.Items {
		quote, err := lookup.PriceOf(ctx, item.ServiceID)
		if err != nil {
			return nil, fmt.Errorf("availability %s: %w", item.ServiceID, err)
		}
		if !quote.Available {
			unavailable = append(unavailable, item)
		}
	}
	return unavailable, nil
}
