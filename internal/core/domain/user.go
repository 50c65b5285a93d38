package domain

import (
	"strings"
	"time"
)

// Role is the closed set of roles a user can hold.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
	RoleStaff Role = "staff"
)

// ParseRole maps a raw string onto Role. Matching is exact.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleUser, RoleAdmin, RoleStaff:
		return Role(s), nil
	}
	return "", ErrInvalidRole
}

// In reports whether r is one of allowed.
func (r Role) In(allowed ...Role) bool {
	for _, a := range allowed {
		if r == a {
			return true
		}
	}
	return false
}

// Privileged roles see every user's records instead of only their own.
func (r Role) Privileged() bool { return r == RoleAdmin || r == RoleStaff }

// Profile holds the optional personal details of a user.
type Profile struct {
	FirstName   string `json:"first_name,omitempty"`
	LastName    string `json:"last_name,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"`
	Avatar      string `json:"avatar,omitempty"`
}

// User models an account. PasswordHash never leaves the process.
type User struct {
	ID            string    `json:"id"`
	Username      string    `json:"username"`
	Email         string    `json:"email"`
	PasswordHash  string    `json:"-"`
	Role          Role      `json:"role"`
	Profile       Profile   `json:"profile"`
	EmailVerified bool      `json:"email_verified"`
	Blocked       bool      `json:"blocked"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// NormalizeEmail lowercases and trims an address so uniqueness is case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Actor is the authenticated caller of a use case.
type Actor struct {
	UserID string
	Role   Role
}

// CanAccess reports whether the actor may see a record owned by ownerID.
func (a Actor) CanAccess(ownerID string) bool {
	return a.Role.Privileged() || a.UserID == ownerID
}
