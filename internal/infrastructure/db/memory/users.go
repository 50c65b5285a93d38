package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/salonbook/salon-api/internal/core/domain"
)

type UserRepository struct {
	mu    sync.RWMutex
	users map[string]*domain.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	clone := *u
	return &clone
}

func (r *UserRepository) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrDuplicateEmail
		}
		if u.Username == user.Username {
			return nil, domain.ErrDuplicateUsername
		}
	}
	stored := cloneUser(user)
	stored.ID = newID()
	r.users[stored.ID] = stored
	return cloneUser(stored), nil
}

func (r *UserRepository) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *UserRepository) findBy(match func(*domain.User) bool) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if match(u) {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *UserRepository) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	return r.findBy(func(u *domain.User) bool { return u.Email == email })
}

func (r *UserRepository) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	return r.findBy(func(u *domain.User) bool { return u.Username == username })
}

func (r *UserRepository) List(_ context.Context) ([]*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, cloneUser(u))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *UserRepository) update(id string, now time.Time, apply func(*domain.User)) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	apply(u)
	u.UpdatedAt = now
	return cloneUser(u), nil
}

func (r *UserRepository) UpdateProfile(_ context.Context, id string, profile domain.Profile, now time.Time) (*domain.User, error) {
	return r.update(id, now, func(u *domain.User) { u.Profile = profile })
}

func (r *UserRepository) UpdatePassword(_ context.Context, id, passwordHash string, now time.Time) error {
	_, err := r.update(id, now, func(u *domain.User) { u.PasswordHash = passwordHash })
	return err
}

func (r *UserRepository) SetBlocked(_ context.Context, id string, blocked bool, now time.Time) error {
	_, err := r.update(id, now, func(u *domain.User) { u.Blocked = blocked })
	return err
}

func (r *UserRepository) SetRole(_ context.Context, id string, role domain.Role, now time.Time) error {
	_, err := r.update(id, now, func(u *domain.User) { u.Role = role })
	return err
}
