package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/salonbook/salon-api/internal/api/middleware"
	"github.com/salonbook/salon-api/internal/core/domain"
)

// actorFrom extracts the caller injected by the Auth middleware. A missing id
// or role means the route was mounted without Auth; reject with 401.
func actorFrom(c echo.Context) (domain.Actor, error) {
	userID, _ := c.Get(middleware.KeyUserID).(string)
	role, _ := c.Get(middleware.KeyRole).(domain.Role)
	if userID == "" || role == "" {
		return domain.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims").
			SetInternal(domain.ErrUnauthenticated)
	}
	return domain.Actor{UserID: userID, Role: role}, nil
}
