package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/salonbook/salon-api/internal/core/domain"
)

// RequireRoles enforces role-based access control on routes behind Auth. An
// empty list admits any authenticated caller.
func RequireRoles(allowed ...domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if len(allowed) == 0 {
				return next(c)
			}
			role, _ := c.Get(KeyRole).(domain.Role)
			if !role.In(allowed...) {
				return echo.NewHTTPError(http.StatusForbidden, "access forbidden").SetInternal(domain.ErrForbidden)
			}
			return next(c)
		}
	}
}
