package ports

import (
	"context"
	"time"

	"github.com/salonbook/salon-api/internal/core/domain"
)

// UserRepository persists accounts. Email and username are unique.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	UpdateProfile(ctx context.Context, id string, profile domain.Profile, now time.Time) (*domain.User, error)
	UpdatePassword(ctx context.Context, id, passwordHash string, now time.Time) error
	SetBlocked(ctx context.Context, id string, blocked bool, now time.Time) error
	SetRole(ctx context.Context, id string, role domain.Role, now time.Time) error
}

// RegisterInput carries the fields of a self-service signup.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	Profile  domain.Profile
}

// LoginResult is a freshly issued bearer token and the account it belongs to.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      *domain.User
}

// AuthService verifies credentials and issues tokens.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	// Login accepts either an email address or a username as identifier.
	Login(ctx context.Context, identifier, password string) (*LoginResult, error)
	ChangePassword(ctx context.Context, userID, current, next string) error
}

// UserService covers profile management and the admin account operations.
type UserService interface {
	Profile(ctx context.Context, userID string) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID string, profile domain.Profile) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	SetBlocked(ctx context.Context, userID string, blocked bool) error
	SetRole(ctx context.Context, userID string, role domain.Role) error
}
