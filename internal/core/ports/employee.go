package ports

import (
	"context"
	"time"

	"github.com/salonbook/salon-api/internal/core/domain"
)

// EmployeeFilter narrows an employee listing. Zero values mean "any".
type EmployeeFilter struct {
	Query     string // case-insensitive match on name or role
	Available *bool
}

// EmployeeRepository persists salon staff. Email is unique.
type EmployeeRepository interface {
	Create(ctx context.Context, e *domain.Employee) (*domain.Employee, error)
	FindByID(ctx context.Context, id string) (*domain.Employee, error)
	// Update overwrites name, email, phone, role, availability and schedule.
	Update(ctx context.Context, e *domain.Employee) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter EmployeeFilter) ([]*domain.Employee, error)
	AddTask(ctx context.Context, id, task string, now time.Time) error
	AddReview(ctx context.Context, id string, review domain.EmployeeReview, now time.Time) error
}

// EmployeeInput carries the writable fields of an employee.
type EmployeeInput struct {
	Name      string
	Email     string
	Phone     string
	Role      string
	Available *bool
	Schedule  []string
}

type EmployeeService interface {
	Create(ctx context.Context, in EmployeeInput) (*domain.Employee, error)
	Update(ctx context.Context, id string, in EmployeeInput) (*domain.Employee, error)
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (*domain.Employee, error)
	List(ctx context.Context, filter EmployeeFilter) ([]*domain.Employee, error)
	SetAvailability(ctx context.Context, id string, available bool) (*domain.Employee, error)
	AssignTask(ctx context.Context, id, task string) (*domain.Employee, error)
	Tasks(ctx context.Context, id string) ([]string, error)
	AddReview(ctx context.Context, id string, review domain.EmployeeReview) (*domain.Employee, error)
	Rating(ctx context.Context, id string) (float64, error)
	SetSchedule(ctx context.Context, id string, schedule []string) (*domain.Employee, error)
	Schedule(ctx context.Context, id string) ([]string, error)
}
