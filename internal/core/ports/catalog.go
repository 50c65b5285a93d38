package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/salonbook/salon-api/internal/core/domain"
)

// ServiceFilter narrows a catalog listing. Zero values mean "any".
type ServiceFilter struct {
	Category     domain.Category
	Query        string // case-insensitive match on name or description
	Available    *bool
	Discounted   bool
	SortByRating bool
	Limit        int
}

// ServiceRepository persists the service catalog.
type ServiceRepository interface {
	Create(ctx context.Context, s *domain.Service) (*domain.Service, error)
	FindByID(ctx context.Context, id string) (*domain.Service, error)
	// Update overwrites the mutable fields of s (everything but ID, Reviews and CreatedAt).
	Update(ctx context.Context, s *domain.Service) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter ServiceFilter) ([]*domain.Service, error)
	AddReview(ctx context.Context, id, comment string) error
	// RemoveReview drops every review equal to comment.
	RemoveReview(ctx context.Context, id, comment string) error
}

// ServiceInput carries the writable fields of a service.
type ServiceInput struct {
	Name        string
	Description string
	Category    string
	Price       decimal.Decimal
	Available   *bool
}

// CatalogService manages salon services. It also resolves prices for carts.
type CatalogService interface {
	domain.PriceLookup

	Create(ctx context.Context, in ServiceInput) (*domain.Service, error)
	Update(ctx context.Context, id string, in ServiceInput) (*domain.Service, error)
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (*domain.Service, error)
	List(ctx context.Context, filter ServiceFilter) ([]*domain.Service, error)
	Popular(ctx context.Context) ([]*domain.Service, error)
	SetDiscount(ctx context.Context, id string, pct float64) (*domain.Service, error)
	SetAvailability(ctx context.Context, id string, available bool) (*domain.Service, error)
	SetRating(ctx context.Context, id string, rating float64) (*domain.Service, error)
	Reviews(ctx context.Context, id string) ([]string, error)
	AddReview(ctx context.Context, id, comment string) error
	RemoveReview(ctx context.Context, id, comment string) error
}
