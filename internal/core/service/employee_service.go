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

type employeeService struct {
	employees ports.EmployeeRepository
	clock     clock.Clock
	log       zerolog.Logger
}

// NewEmployeeService returns an EmployeeService implementation.
func NewEmployeeService(employees ports.EmployeeRepository, clk clock.Clock, log zerolog.Logger) ports.EmployeeService {
	return &employeeService{employees: employees, clock: clk, log: log}
}

func (s *employeeService) apply(e *domain.Employee, in ports.EmployeeInput) error {
	name := strings.TrimSpace(in.Name)
	email := domain.NormalizeEmail(in.Email)
	if name == "" {
		return domain.MissingField("name")
	}
	if email == "" {
		return domain.MissingField("email")
	}
	role, err := domain.ParseEmployeeRole(in.Role)
	if err != nil {
		return err
	}

	e.Name = name
	e.Email = email
	e.Phone = in.Phone
	e.Role = role
	if in.Available != nil {
		e.Available = *in.Available
	}
	if in.Schedule != nil {
		e.Schedule = in.Schedule
	}
	return nil
}

func (s *employeeService) Create(ctx context.Context, in ports.EmployeeInput) (*domain.Employee, error) {
	now := s.clock.Now()
	e := &domain.Employee{
		Available: true,
		Schedule:  []string{},
		Tasks:     []string{},
		Reviews:   []domain.EmployeeReview{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.apply(e, in); err != nil {
		return nil, err
	}

	created, err := s.employees.Create(ctx, e)
	if err != nil {
		return nil, fmt.Errorf("create employee: %w", err)
	}
	s.log.Info().Str("employee_id", created.ID).Str("role", string(created.Role)).Msg("employee created")
	return created, nil
}

func (s *employeeService) Update(ctx context.Context, id string, in ports.EmployeeInput) (*domain.Employee, error) {
	return s.modify(ctx, id, func(e *domain.Employee) error { return s.apply(e, in) })
}

func (s *employeeService) modify(ctx context.Context, id string, fn func(*domain.Employee) error) (*domain.Employee, error) {
	e, err := s.employees.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("update employee: %w", err)
	}
	if err := fn(e); err != nil {
		return nil, err
	}
	e.UpdatedAt = s.clock.Now()
	if err := s.employees.Update(ctx, e); err != nil {
		return nil, fmt.Errorf("update employee: %w", err)
	}
	return e, nil
}

func (s *employeeService) Delete(ctx context.Context, id string) error {
	if err := s.employees.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	s.log.Info().Str("employee_id", id).Msg("employee deleted")
	return nil
}

func (s *employeeService) Get(ctx context.Context, id string) (*domain.Employee, error) {
	e, err := s.employees.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get employee: %w", err)
	}
	return e, nil
}

func (s *employeeService) List(ctx context.Context, filter ports.EmployeeFilter) ([]*domain.Employee, error) {
	employees, err := s.employees.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	return employees, nil
}

func (s *employeeService) SetAvailability(ctx context.Context, id string, available bool) (*domain.Employee, error) {
	return s.modify(ctx, id, func(e *domain.Employee) error {
		e.Available = available
		return nil
	})
}

func (s *employeeService) AssignTask(ctx context.Context, id, task string) (*domain.Employee, error) {
	task = strings.TrimSpace(task)
	if task == "" {
		return nil, domain.MissingField("task")
	}
	if err := s.employees.AddTask(ctx, id, task, s.clock.Now()); err != nil {
		return nil, fmt.Errorf("assign task: %w", err)
	}
	s.log.Info().Str("employee_id", id).Str("task", task).Msg("task assigned")
	return s.Get(ctx, id)
}

func (s *employeeService) Tasks(ctx context.Context, id string) ([]string, error) {
	e, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return nonNil(e.Tasks), nil
}

func (s *employeeService) AddReview(ctx context.Context, id string, review domain.EmployeeReview) (*domain.Employee, error) {
	if err := domain.ValidateRating(review.Rating); err != nil {
		return nil, err
	}
	if err := s.employees.AddReview(ctx, id, review, s.clock.Now()); err != nil {
		return nil, fmt.Errorf("review employee: %w", err)
	}
	return s.Get(ctx, id)
}

// Rating is the mean of every review rating.
func (s *employeeService) Rating(ctx context.Context, id string) (float64, error) {
	e, err := s.Get(ctx, id)
	if err != nil {
		return 0, err
	}
	return e.AverageRating(), nil
}

func (s *employeeService) SetSchedule(ctx context.Context, id string, schedule []string) (*domain.Employee, error) {
	return s.modify(ctx, id, func(e *domain.Employee) error {
		e.Schedule = nonNil(schedule)
		return nil
	})
}

func (s *employeeService) Schedule(ctx context.Context, id string) ([]string, error) {
	e, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return nonNil(e.Schedule), nil
}

func nonNil(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
