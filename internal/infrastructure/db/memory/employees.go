package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/salonbook/salon-api/internal/core/domain"
	"github.com/salonbook/salon-api/internal/core/ports"
)

type EmployeeRepository struct {
	mu        sync.RWMutex
	employees map[string]*domain.Employee
}

func NewEmployeeRepository() *EmployeeRepository {
	return &EmployeeRepository{employees: make(map[string]*domain.Employee)}
}

func cloneEmployee(e *domain.Employee) *domain.Employee {
	clone := *e
	clone.Schedule = cloneStrings(e.Schedule)
	clone.Tasks = cloneStrings(e.Tasks)
	clone.Reviews = make([]domain.EmployeeReview, len(e.Reviews))
	copy(clone.Reviews, e.Reviews)
	return &clone
}

func (r *EmployeeRepository) Create(_ context.Context, e *domain.Employee) (*domain.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.employees {
		if existing.Email == e.Email {
			return nil, domain.ErrDuplicateEmail
		}
	}
	stored := cloneEmployee(e)
	stored.ID = newID()
	r.employees[stored.ID] = stored
	return cloneEmployee(stored), nil
}

func (r *EmployeeRepository) FindByID(_ context.Context, id string) (*domain.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.employees[id]
	if !ok {
		return nil, domain.ErrEmployeeNotFound
	}
	return cloneEmployee(e), nil
}

func (r *EmployeeRepository) Update(_ context.Context, e *domain.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.employees[e.ID]
	if !ok {
		return domain.ErrEmployeeNotFound
	}
	for id, other := range r.employees {
		if id != e.ID && other.Email == e.Email {
			return domain.ErrDuplicateEmail
		}
	}
	stored.Name = e.Name
	stored.Email = e.Email
	stored.Phone = e.Phone
	stored.Role = e.Role
	stored.Available = e.Available
	stored.Schedule = cloneStrings(e.Schedule)
	stored.UpdatedAt = e.UpdatedAt
	return nil
}

func (r *EmployeeRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.employees[id]; !ok {
		return domain.ErrEmployeeNotFound
	}
	delete(r.employees, id)
	return nil
}

func (r *EmployeeRepository) List(_ context.Context, f ports.EmployeeFilter) ([]*domain.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []*domain.Employee{}
	for _, e := range r.employees {
		if f.Available != nil && e.Available != *f.Available {
			continue
		}
		if f.Query != "" && !containsFold(e.Name, f.Query) && !containsFold(string(e.Role), f.Query) {
			continue
		}
		out = append(out, cloneEmployee(e))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *EmployeeRepository) AddTask(_ context.Context, id, task string, now time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.employees[id]
	if !ok {
		return domain.ErrEmployeeNotFound
	}
	e.Tasks = append(e.Tasks, task)
	e.UpdatedAt = now
	return nil
}

func (r *EmployeeRepository) AddReview(_ context.Context, id string, review domain.EmployeeReview, now time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.employees[id]
	if !ok {
		return domain.ErrEmployeeNotFound
	}
	e.Reviews = append(e.Reviews, review)
	e.UpdatedAt = now
	return nil
}
