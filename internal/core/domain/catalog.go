package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Category is the closed set of service categories.
type Category string

const (
	CategoryHair    Category = "hair"
	CategoryNails   Category = "nails"
	CategoryMassage Category = "massage"
	CategoryFacial  Category = "facial"
	CategoryOther   Category = "other"
)

func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case CategoryHair, CategoryNails, CategoryMassage, CategoryFacial, CategoryOther:
		return Category(s), nil
	}
	return "", ErrInvalidCategory
}

const (
	MaxRating   = 5.0
	MaxDiscount = 100.0
)

// Service is a bookable salon service. Carts and appointments reference it by
// ID only, so price changes apply at computation time.
type Service struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Category    Category        `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Discount    float64         `json:"discount"`
	Rating      float64         `json:"rating"`
	Available   bool            `json:"availability"`
	Reviews     []string        `json:"reviews"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// Validate checks the numeric invariants of a service.
func (s *Service) Validate() error {
	if s.Name == "" {
		return MissingField("name")
	}
	if _, err := ParseCategory(string(s.Category)); err != nil {
		return err
	}
	if s.Price.IsNegative() {
		return ErrInvalidPrice
	}
	if err := ValidateDiscount(s.Discount); err != nil {
		return err
	}
	return ValidateRating(s.Rating)
}

func ValidateRating(r float64) error {
	if r < 0 || r > MaxRating {
		return ErrInvalidRating
	}
	return nil
}

func ValidateDiscount(pct float64) error {
	if pct < 0 || pct > MaxDiscount {
		return ErrInvalidDiscount
	}
	return nil
}

// PriceQuote is the current price and availability of a service.
type PriceQuote struct {
	Price     decimal.Decimal
	Available bool
}

// PriceLookup resolves the current price of a service. It returns
// ErrServiceNotFound when the service no longer exists.
type PriceLookup interface {
	PriceOf(ctx context.Context, serviceID string) (PriceQuote, error)
}
