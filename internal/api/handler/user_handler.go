package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/salonbook/salon-api/internal/api/metrics"
	"github.com/salonbook/salon-api/internal/core/domain"
	"github.com/salonbook/salon-api/internal/core/ports"
)

// UserHandler serves registration, login, profiles and the admin account
// operations.
type UserHandler struct {
	auth  ports.AuthService
	users ports.UserService
}

func NewUserHandler(auth ports.AuthService, users ports.UserService) *UserHandler {
	return &UserHandler{auth: auth, users: users}
}

// Register creates a new account with role user.
//
// @Summary      Register a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Account details"
// @Success      201   {object}  domain.User
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /users/register [post]
func (h *UserHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.auth.Register(c.Request().Context(), ports.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Profile:  req.profileRequest.toDomain(),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, user)
}

// Login authenticates by email or username and returns a bearer token.
//
// @Summary      Login
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      429   {object}  errorResponse
// @Router       /users/login [post]
func (h *UserHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	res, err := h.auth.Login(c.Request().Context(), req.Identifier, req.Password)
	metrics.LoginsTotal.WithLabelValues(loginResult(err)).Inc()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, loginResponse{Token: res.Token, ExpiresAt: res.ExpiresAt, User: res.User})
}

func loginResult(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return "invalid_credentials"
	case errors.Is(err, domain.ErrUserBlocked):
		return "blocked"
	default:
		return "error"
	}
}

// Profile returns the caller's account.
//
// @Summary      Get own profile
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.User
// @Failure      401  {object}  errorResponse
// @Router       /users/profile [get]
func (h *UserHandler) Profile(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	user, err := h.users.Profile(c.Request().Context(), actor.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// UpdateProfile replaces the caller's profile details.
//
// @Summary      Update own profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      profileRequest  true  "Profile"
// @Success      200   {object}  domain.User
// @Failure      400   {object}  errorResponse
// @Router       /users/profile [put]
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	var req profileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	user, err := h.users.UpdateProfile(c.Request().Context(), actor.UserID, req.toDomain())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// ChangePassword replaces the caller's password after verifying the current one.
//
// @Summary      Change password
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      changePasswordRequest  true  "Passwords"
// @Success      200   {object}  messageResponse
// @Failure      401   {object}  errorResponse
// @Router       /users/password [put]
func (h *UserHandler) ChangePassword(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	var req changePasswordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if err := h.auth.ChangePassword(c.Request().Context(), actor.UserID, req.CurrentPassword, req.NewPassword); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "password updated"})
}

// List returns every account.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.User
// @Failure      403  {object}  errorResponse
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.users.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// Block prevents an account from logging in.
//
// @Summary      Block a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Router       /users/{id}/block [post]
func (h *UserHandler) Block(c echo.Context) error {
	return h.setBlocked(c, true)
}

// Unblock lifts a block.
//
// @Summary      Unblock a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Router       /users/{id}/unblock [post]
func (h *UserHandler) Unblock(c echo.Context) error {
	return h.setBlocked(c, false)
}

func (h *UserHandler) setBlocked(c echo.Context, blocked bool) error {
	if err := h.users.SetBlocked(c.Request().Context(), c.Param("id"), blocked); err != nil {
		return err
	}
	msg := "user unblocked"
	if blocked {
		msg = "user blocked"
	}
	return c.JSON(http.StatusOK, messageResponse{Message: msg})
}

// SetRole changes the role of an account.
//
// @Summary      Change a user's role
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string       true  "User id"
// @Param        body  body      roleRequest  true  "Role"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /users/{id}/role [put]
func (h *UserHandler) SetRole(c echo.Context) error {
	var req roleRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	role, err := domain.ParseRole(req.Role)
	if err != nil {
		return err
	}
	if err := h.users.SetRole(c.Request().Context(), c.Param("id"), role); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "role updated"})
}
