package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/salonbook/salon-api/internal/core/domain"
	"github.com/salonbook/salon-api/internal/core/ports"
	"github.com/salonbook/salon-api/pkg/clock"
)

// PasswordHasher abstracts the password digest (bcrypt).
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, digest string) bool
}

// TokenIssuer abstracts the bearer token signer.
type TokenIssuer interface {
	Issue(subjectID, role string, now time.Time) (string, error)
	TTL() time.Duration
}

// AuthService implements registration, login and password changes.
type AuthService struct {
	users  ports.UserRepository
	hasher PasswordHasher
	tokens TokenIssuer
	clock  clock.Clock
	log    zerolog.Logger

	// dummyDigest is compared against on unknown identifiers so a miss costs
	// the same bcrypt work as a wrong password.
	dummyOnce   sync.Once
	dummyDigest string
}

func NewAuthService(users ports.UserRepository, hasher PasswordHasher, tokens TokenIssuer, clk clock.Clock, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, hasher: hasher, tokens: tokens, clock: clk, log: log}
}

// Register creates an account with the user role. Elevated roles are granted
// afterwards by an admin.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	username := strings.TrimSpace(in.Username)
	email := domain.NormalizeEmail(in.Email)
	switch {
	case username == "":
		return nil, domain.MissingField("username")
	case email == "":
		return nil, domain.MissingField("email")
	case in.Password == "":
		return nil, domain.MissingField("password")
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	created, err := s.users.Create(ctx, &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         domain.RoleUser,
		Profile:      in.Profile,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}

	s.log.Info().Str("user_id", created.ID).Str("username", created.Username).Msg("user registered")
	return created, nil
}

// Login verifies credentials and issues a token. Unknown identifiers and wrong
// passwords are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, identifier, password string) (*ports.LoginResult, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	var (
		user *domain.User
		err  error
	)
	if strings.Contains(identifier, "@") {
		user, err = s.users.FindByEmail(ctx, domain.NormalizeEmail(identifier))
	} else {
		user, err = s.users.FindByUsername(ctx, identifier)
	}
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.hasher.Verify(password, s.dummy())
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login: %w", err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}
	if user.Blocked {
		return nil, domain.ErrUserBlocked
	}

	now := s.clock.Now()
	token, err := s.tokens.Issue(user.ID, string(user.Role), now)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	s.log.Info().Str("user_id", user.ID).Str("role", string(user.Role)).Msg("user logged in")
	return &ports.LoginResult{
		Token:     token,
		ExpiresAt: now.Add(s.tokens.TTL()),
		User:      user,
	}, nil
}

func (s *AuthService) dummy() string {
	s.dummyOnce.Do(func() {
		digest, err := s.hasher.Hash("salon-api-unknown-user")
		if err != nil {
			s.log.Warn().Err(err).Msg("dummy digest unavailable")
			return
		}
		s.dummyDigest = digest
	})
	return s.dummyDigest
}

// ChangePassword replaces the password after re-verifying the current one.
func (s *AuthService) ChangePassword(ctx context.Context, userID, current, next string) error {
	if next == "" {
		return domain.MissingField("new_password")
	}
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("change password: %w", err)
	}
	if !s.hasher.Verify(current, user.PasswordHash) {
		return domain.ErrInvalidCredentials
	}

	hash, err := s.hasher.Hash(next)
	if err != nil {
		return err
	}
	if err := s.users.UpdatePassword(ctx, userID, hash, s.clock.Now()); err != nil {
		return fmt.Errorf("change password: %w", err)
	}

	s.log.Info().Str("user_id", userID).Msg("password changed")
	return nil
}
