package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/salonbook/salon-api/internal/core/domain"
)

type PaymentRepository struct {
	mu       sync.RWMutex
	payments map[string]*domain.Payment
}

func NewPaymentRepository() *PaymentRepository {
	return &PaymentRepository{payments: make(map[string]*domain.Payment)}
}

func clonePayment(p *domain.Payment) *domain.Payment {
	clone := *p
	if p.CardDetails != nil {
		card := *p.CardDetails
		clone.CardDetails = &card
	}
	return &clone
}

func (r *PaymentRepository) Create(_ context.Context, p *domain.Payment) (*domain.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := clonePayment(p)
	stored.ID = newID()
	r.payments[stored.ID] = stored
	return clonePayment(stored), nil
}

func (r *PaymentRepository) FindByID(_ context.Context, id string) (*domain.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.payments[id]
	if !ok {
		return nil, domain.ErrPaymentNotFound
	}
	return clonePayment(p), nil
}

func (r *PaymentRepository) ListByUser(_ context.Context, userID string, status domain.PaymentStatus) ([]*domain.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []*domain.Payment{}
	for _, p := range r.payments {
		if p.UserID != userID || (status != "" && p.Status != status) {
			continue
		}
		out = append(out, clonePayment(p))
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (r *PaymentRepository) Transition(_ context.Context, id string, from, to domain.PaymentStatus, receipt string, now time.Time) (*domain.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.payments[id]
	if !ok {
		return nil, domain.ErrPaymentNotFound
	}
	if p.Status != from {
		return nil, domain.ErrInvalidTransition
	}
	p.Status = to
	if receipt != "" {
		p.Receipt = receipt
	}
	p.UpdatedAt = now
	return clonePayment(p), nil
}

// IdempotencyStore is the in-process counterpart of the Redis key store.
type IdempotencyStore struct {
	mu   sync.Mutex
	keys map[string]string
}

func NewIdempotencyStore() *IdempotencyStore {
	return &IdempotencyStore{keys: make(map[string]string)}
}

func (s *IdempotencyStore) Lookup(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.keys[key]
	return id, ok, nil
}

func (s *IdempotencyStore) Save(_ context.Context, key, paymentID string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.keys[key]; ok {
		return existing, false, nil
	}
	s.keys[key] = paymentID
	return paymentID, true, nil
}
