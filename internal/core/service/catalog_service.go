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

const popularLimit = 5

type catalogService struct {
	services ports.ServiceRepository
	clock    clock.Clock
	log      zerolog.Logger
}

// NewCatalogService returns a CatalogService implementation.
func NewCatalogService(services ports.ServiceRepository, clk clock.Clock, log zerolog.Logger) ports.CatalogService {
	return &catalogService{services: services, clock: clk, log: log}
}

// PriceOf resolves the current price of a service for the cart engine.
func (s *catalogService) PriceOf(ctx context.Context, serviceID string) (domain.PriceQuote, error) {
	svc, err := s.services.FindByID(ctx, serviceID)
	if err != nil {
		return domain.PriceQuote{}, err
	}
	return domain.PriceQuote{Price: svc.Price, Available: svc.Available}, nil
}

func (s *catalogService) Create(ctx context.Context, in ports.ServiceInput) (*domain.Service, error) {
	now := s.clock.Now()
	svc := &domain.Service{
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Category:    domain.Category(in.Category),
		Price:       in.Price,
		Available:   true,
		Reviews:     []string{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if in.Available != nil {
		svc.Available = *in.Available
	}
	if err := svc.Validate(); err != nil {
		return nil, err
	}

	created, err := s.services.Create(ctx, svc)
	if err != nil {
		return nil, fmt.Errorf("create service: %w", err)
	}
	s.log.Info().Str("service_id", created.ID).Str("name", created.Name).Msg("service created")
	return created, nil
}

func (s *catalogService) Update(ctx context.Context, id string, in ports.ServiceInput) (*domain.Service, error) {
	return s.modify(ctx, id, func(svc *domain.Service) {
		svc.Name = strings.TrimSpace(in.Name)
		svc.Description = in.Description
		svc.Category = domain.Category(in.Category)
		svc.Price = in.Price
		if in.Available != nil {
			svc.Available = *in.Available
		}
	})
}

// modify is a read-validate-write of a whole service document.
func (s *catalogService) modify(ctx context.Context, id string, apply func(*domain.Service)) (*domain.Service, error) {
	svc, err := s.services.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("update service: %w", err)
	}
	apply(svc)
	if err := svc.Validate(); err != nil {
		return nil, err
	}
	svc.UpdatedAt = s.clock.Now()
	if err := s.services.Update(ctx, svc); err != nil {
		return nil, fmt.Errorf("update service: %w", err)
	}
	return svc, nil
}

func (s *catalogService) Delete(ctx context.Context, id string) error {
	if err := s.services.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete service: %w", err)
	}
	s.log.Info().Str("service_id", id).Msg("service deleted")
	return nil
}

func (s *catalogService) Get(ctx context.Context, id string) (*domain.Service, error) {
	svc, err := s.services.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get service: %w", err)
	}
	return svc, nil
}

func (s *catalogService) List(ctx context.Context, filter ports.ServiceFilter) ([]*domain.Service, error) {
	if filter.Category != "" {
		if _, err := domain.ParseCategory(string(filter.Category)); err != nil {
			return nil, err
		}
	}
	services, err := s.services.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	return services, nil
}

// Popular returns the best rated services.
func (s *catalogService) Popular(ctx context.Context) ([]*domain.Service, error) {
	return s.List(ctx, ports.ServiceFilter{SortByRating: true, Limit: popularLimit})
}

func (s *catalogService) SetDiscount(ctx context.Context, id string, pct float64) (*domain.Service, error) {
	if err := domain.ValidateDiscount(pct); err != nil {
		return nil, err
	}
	return s.modify(ctx, id, func(svc *domain.Service) { svc.Discount = pct })
}

func (s *catalogService) SetAvailability(ctx context.Context, id string, available bool) (*domain.Service, error) {
	return s.modify(ctx, id, func(svc *domain.Service) { svc.Available = available })
}

// SetRating overwrites the rating; ratings are not averaged for services.
func (s *catalogService) SetRating(ctx context.Context, id string, rating float64) (*domain.Service, error) {
	if err := domain.ValidateRating(rating); err != nil {
		return nil, err
	}
	return s.modify(ctx, id, func(svc *domain.Service) { svc.Rating = rating })
}

func (s *catalogService) Reviews(ctx context.Context, id string) ([]string, error) {
	svc, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if svc.Reviews == nil {
		return []string{}, nil
	}
	return svc.Reviews, nil
}

func (s *catalogService) AddReview(ctx context.Context, id, comment string) error {
	if strings.TrimSpace(comment) == "" {
		return domain.MissingField("comment")
	}
	if err := s.services.AddReview(ctx, id, comment); err != nil {
		return fmt.Errorf("add review: %w", err)
	}
	return nil
}

// RemoveReview deletes a review by its exact text.
func (s *catalogService) RemoveReview(ctx context.Context, id, comment string) error {
	reviews, err := s.Reviews(ctx, id)
	if err != nil {
		return err
	}
	found := false
	for _, r := range reviews {
		if r == comment {
			found = true
			break
		}
	}
	if !found {
		return domain.ErrReviewNotFound
	}
	if err := s.services.RemoveReview(ctx, id, comment); err != nil {
		return fmt.Errorf("remove review: %w", err)
	}
	return nil
}
