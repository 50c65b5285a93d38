package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/salonbook/salon-api/internal/core/domain"
	"github.com/salonbook/salon-api/pkg/clock"
	"github.com/salonbook/salon-api/pkg/token"
)

// Context keys set by Auth.
const (
	KeyUserID = "user_id"
	KeyRole   = "role"
)

// TokenVerifier checks a bearer token at a point in time.
type TokenVerifier interface {
	Verify(raw string, now time.Time) (token.Identity, error)
}

// Auth validates the bearer token and injects the caller's id and role into
// the context. Every failure is a 401 carrying domain.ErrUnauthenticated.
func Auth(verifier TokenVerifier, clk clock.Clock) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return unauthorized("missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
				return unauthorized("invalid authorization header")
			}

			id, err := verifier.Verify(parts[1], clk.Now())
			if err != nil {
				return unauthorized(err.Error())
			}
			role, err := domain.ParseRole(id.Role)
			if err != nil {
				return unauthorized("token carries an unknown role")
			}

			c.Set(KeyUserID, id.SubjectID)
			c.Set(KeyRole, role)

			return next(c)
		}
	}
}

func unauthorized(msg string) error {
	return echo.NewHTTPError(http.StatusUnauthorized, msg).SetInternal(domain.ErrUnauthenticated)
}
