package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/salonbook/salon-api/internal/core/domain"
	"github.com/salonbook/salon-api/pkg/clock"
	"github.com/salonbook/salon-api/pkg/token"
)

var issuedAt = time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

func fixedClock(t time.Time) clock.Clock {
	return clock.Func(func() time.Time { return t })
}

func runAuth(t *testing.T, mgr *token.Manager, now time.Time, header string) (*httptest.ResponseRecorder, echo.Context, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Auth(mgr, fixedClock(now))(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		if !errors.Is(err, domain.ErrUnauthenticated) {
			t.Fatalf("expected ErrUnauthenticated in chain, got %v", err)
		}
		e.HTTPErrorHandler(err, c)
	}
	return rec, c, called
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	mgr := token.NewManager("secret", time.Hour)
	signed, err := mgr.Issue("user-1", "admin", issuedAt)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	rec, c, called := runAuth(t, mgr, issuedAt.Add(59*time.Minute), "Bearer "+signed)
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if c.Get(KeyUserID) != "user-1" {
		t.Fatalf("user_id not set")
	}
	if c.Get(KeyRole) != domain.RoleAdmin {
		t.Fatalf("role not set")
	}
}

func TestAuthMiddleware_Rejects(t *testing.T) {
	mgr := token.NewManager("secret", time.Hour)
	valid, _ := mgr.Issue("user-1", "user", issuedAt)
	foreign, _ := token.NewManager("other-secret", time.Hour).Issue("user-1", "user", issuedAt)
	unknownRole, _ := mgr.Issue("user-1", "superuser", issuedAt)

	tests := []struct {
		name   string
		header string
		now    time.Time
	}{
		{"missing header", "", issuedAt},
		{"wrong scheme", "Token abc", issuedAt},
		{"empty token", "Bearer ", issuedAt},
		{"garbage", "Bearer not-a-token", issuedAt},
		{"signed with another secret", "Bearer " + foreign, issuedAt},
		{"expired", "Bearer " + valid, issuedAt.Add(time.Hour)},
		{"unknown role", "Bearer " + unknownRole, issuedAt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, _, called := runAuth(t, mgr, tt.now, tt.header)
			if called {
				t.Fatalf("should not reach next")
			}
			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", rec.Code)
			}
		})
	}
}
