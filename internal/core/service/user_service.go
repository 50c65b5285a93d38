package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/salonbook/salon-api/internal/core/domain"
	"github.com/salonbook/salon-api/internal/core/ports"
	"github.com/salonbook/salon-api/pkg/clock"
)

type userService struct {
	users ports.UserRepository
	clock clock.Clock
	log   zerolog.Logger
}

// NewUserService returns a UserService implementation.
func NewUserService(users ports.UserRepository, clk clock.Clock, log zerolog.Logger) ports.UserService {
	return &userService{users: users, clock: clk, log: log}
}

func (s *userService) Profile(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("profile: %w", err)
	}
	return user, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID string, profile domain.Profile) (*domain.User, error) {
	user, err := s.users.UpdateProfile(ctx, userID, profile, s.clock.Now())
	if err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return user, nil
}

func (s *userService) List(ctx context.Context) ([]*domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// SetBlocked blocks or unblocks an account. Blocked users cannot log in;
// tokens already issued stay valid until they expire.
func (s *userService) SetBlocked(ctx context.Context, userID string, blocked bool) error {
	if err := s.users.SetBlocked(ctx, userID, blocked, s.clock.Now()); err != nil {
		return fmt.Errorf("set blocked: %w", err)
	}
	s.log.Info().Str("user_id", userID).Bool("blocked", blocked).Msg("user block state changed")
	return nil
}

func (s *userService) SetRole(ctx context.Context, userID string, role domain.Role) error {
	if _, err := domain.ParseRole(string(role)); err != nil {
		return err
	}
	if err := s.users.SetRole(ctx, userID, role, s.clock.Now()); err != nil {
		return fmt.Errorf("set role: %w", err)
	}
	s.log.Info().Str("user_id", userID).Str("role", string(role)).Msg("user role changed")
	return nil
}
