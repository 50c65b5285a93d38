package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/salonbook/salon-api/internal/core/domain"
	"github.com/salonbook/salon-api/internal/core/ports"
)

type ServiceRepository struct {
	mu       sync.RWMutex
	services map[string]*domain.Service
}

func NewServiceRepository() *ServiceRepository {
	return &ServiceRepository{services: make(map[string]*domain.Service)}
}

func cloneService(s *domain.Service) *domain.Service {
	clone := *s
	clone.Reviews = cloneStrings(s.Reviews)
	return &clone
}

func (r *ServiceRepository) Create(_ context.Context, s *domain.Service) (*domain.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := cloneService(s)
	stored.ID = newID()
	r.services[stored.ID] = stored
	return cloneService(stored), nil
}

func (r *ServiceRepository) FindByID(_ context.Context, id string) (*domain.Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.services[id]
	if !ok {
		return nil, domain.ErrServiceNotFound
	}
	return cloneService(s), nil
}

func (r *ServiceRepository) Update(_ context.Context, s *domain.Service) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.services[s.ID]
	if !ok {
		return domain.ErrServiceNotFound
	}
	stored.Name = s.Name
	stored.Description = s.Description
	stored.Category = s.Category
	stored.Price = s.Price
	stored.Discount = s.Discount
	stored.Rating = s.Rating
	stored.Available = s.Available
	stored.UpdatedAt = s.UpdatedAt
	return nil
}

func (r *ServiceRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.services[id]; !ok {
		return domain.ErrServiceNotFound
	}
	delete(r.services, id)
	return nil
}

func (r *ServiceRepository) List(_ context.Context, f ports.ServiceFilter) ([]*domain.Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []*domain.Service{}
	for _, s := range r.services {
		if f.Category != "" && s.Category != f.Category {
			continue
		}
		if f.Available != nil && s.Available != *f.Available {
			continue
		}
		if f.Discounted && s.Discount <= 0 {
			continue
		}
		if f.Query != "" && !containsFold(s.Name, f.Query) && !containsFold(s.Description, f.Query) {
			continue
		}
		out = append(out, cloneService(s))
	}

	sort.Slice(out, func(i, j int) bool {
		if f.SortByRating && out[i].Rating != out[j].Rating {
			return out[i].Rating > out[j].Rating
		}
		return out[i].ID < out[j].ID
	})
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

func (r *ServiceRepository) AddReview(_ context.Context, id, comment string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.services[id]
	if !ok {
		return domain.ErrServiceNotFound
	}
	s.Reviews = append(s.Reviews, comment)
	return nil
}

func (r *ServiceRepository) RemoveReview(_ context.Context, id, comment string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.services[id]
	if !ok {
		return domain.ErrServiceNotFound
	}
	kept := s.Reviews[:0]
	for _, c := range s.Reviews {
		if c != comment {
			kept = append(kept, c)
		}
	}
	s.Reviews = kept
	return nil
}

// PriceOf lets the memory catalog stand in for a price lookup in tests.
func (r *ServiceRepository) PriceOf(ctx context.Context, id string) (domain.PriceQuote, error) {
	s, err := r.FindByID(ctx, id)
	if err != nil {
		return domain.PriceQuote{}, err
	}
	return domain.PriceQuote{Price: s.Price, Available: s.Available}, nil
}
