package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	for _, r := range []string{"user", "admin", "staff"} {
		got, err := ParseRole(r)
		assert.NoError(t, err)
		assert.Equal(t, Role(r), got)
	}
	for _, r := range []string{"", "Admin", "root", "client"} {
		_, err := ParseRole(r)
		assert.ErrorIs(t, err, ErrInvalidRole, r)
	}
}

func TestRole_In(t *testing.T) {
	assert.True(t, RoleAdmin.In(RoleAdmin, RoleStaff))
	assert.False(t, RoleUser.In(RoleAdmin))
	assert.False(t, RoleUser.In())
}

func TestActor_CanAccess(t *testing.T) {
	assert.True(t, Actor{UserID: "u1", Role: RoleUser}.CanAccess("u1"))
	assert.False(t, Actor{UserID: "u1", Role: RoleUser}.CanAccess("u2"))
	assert.True(t, Actor{UserID: "a", Role: RoleAdmin}.CanAccess("u2"))
	assert.True(t, Actor{UserID: "s", Role: RoleStaff}.CanAccess("u2"))
}

func TestErrorKinds(t *testing.T) {
	kinds := map[error][]error{
		ErrNotFound:   {ErrUserNotFound, ErrServiceNotFound, ErrCartNotFound, ErrPaymentNotFound, ErrEmployeeNotFound, ErrItemNotFound},
		ErrValidation: {ErrInvalidQuantity, ErrInvalidDiscountCode, ErrInvalidObjectID, ErrMissingField, MissingField("name")},
		ErrConflict:   {ErrDuplicateEmail, ErrInvalidTransition},
	}
	for kind, errs := range kinds {
		for _, err := range errs {
			assert.True(t, errors.Is(err, kind), "%v should be %v", err, kind)
		}
	}
	assert.False(t, errors.Is(ErrUserNotFound, ErrValidation))
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "alice@example.com", NormalizeEmail("  Alice@Example.COM "))
}
