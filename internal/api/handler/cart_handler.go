package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/salonbook/salon-api/internal/api/metrics"
	"github.com/salonbook/salon-api/internal/core/domain"
	"github.com/salonbook/salon-api/internal/core/ports"
)

// CartHandler serves the caller's cart.
type CartHandler struct {
	carts ports.CartService
}

func NewCartHandler(carts ports.CartService) *CartHandler {
	return &CartHandler{carts: carts}
}

// mutate runs one cart operation for the caller, counts it and renders the
// resulting cart.
func (h *CartHandler) mutate(c echo.Context, op string, fn func(userID string) (*domain.Cart, error)) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	cart, err := fn(actor.UserID)
	result := "ok"
	if err != nil {
		result = "error"
	}
	metrics.CartOperationsTotal.WithLabelValues(op, result).Inc()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cart)
}

// Get returns the caller's cart, empty if nothing was added yet.
//
// @Summary      Get cart
// @Tags         cart
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.Cart
// @Router       /cart [get]
func (h *CartHandler) Get(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	cart, err := h.carts.Get(c.Request().Context(), actor.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cart)
}

// AddItem adds a quantity of a service, merging with an existing line. The
// quantity defaults to 1.
//
// @Summary      Add to cart
// @Tags         cart
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      addItemRequest  true  "Item"
// @Success      200   {object}  domain.Cart
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /cart/add [post]
func (h *CartHandler) AddItem(c echo.Context) error {
	var req addItemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	return h.mutate(c, "add", func(userID string) (*domain.Cart, error) {
		return h.carts.AddItem(c.Request().Context(), userID, req.ServiceID, req.quantity())
	})
}

// UpdateItem sets the quantity of a line.
//
// @Summary      Update cart item
// @Tags         cart
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        serviceId  path      string             true  "Service id"
// @Param        body       body      updateItemRequest  true  "Quantity"
// @Success      200        {object}  domain.Cart
// @Failure      400        {object}  errorResponse
// @Failure      404        {object}  errorResponse
// @Router       /cart/update/{serviceId} [put]
func (h *CartHandler) UpdateItem(c echo.Context) error {
	var req updateItemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	return h.mutate(c, "update", func(userID string) (*domain.Cart, error) {
		return h.carts.UpdateItem(c.Request().Context(), userID, c.Param("serviceId"), req.Quantity)
	})
}

// RemoveItem drops a line; removing an absent line is a no-op.
//
// @Summary      Remove cart item
// @Tags         cart
// @Produce      json
// @Security     BearerAuth
// @Param        serviceId  path      string  true  "Service id"
// @Success      200        {object}  domain.Cart
// @Router       /cart/remove/{serviceId} [delete]
func (h *CartHandler) RemoveItem(c echo.Context) error {
	return h.mutate(c, "remove", func(userID string) (*domain.Cart, error) {
		return h.carts.RemoveItem(c.Request().Context(), userID, c.Param("serviceId"))
	})
}

// Clear empties the cart and drops its discount.
//
// @Summary      Clear cart
// @Tags         cart
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.Cart
// @Router       /cart/clear [delete]
func (h *CartHandler) Clear(c echo.Context) error {
	return h.mutate(c, "clear", func(userID string) (*domain.Cart, error) {
		return h.carts.Clear(c.Request().Context(), userID)
	})
}

// ApplyDiscount validates a discount code and stores it on the cart.
//
// @Summary      Apply discount code
// @Tags         cart
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      applyDiscountRequest  true  "Code"
// @Success      200   {object}  domain.Cart
// @Failure      400   {object}  errorResponse
// @Router       /cart/apply-discount [post]
func (h *CartHandler) ApplyDiscount(c echo.Context) error {
	var req applyDiscountRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	return h.mutate(c, "apply_discount", func(userID string) (*domain.Cart, error) {
		return h.carts.ApplyDiscount(c.Request().Context(), userID, req.Code)
	})
}

// Total prices the cart at current service prices.
//
// @Summary      Cart total
// @Tags         cart
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.CartTotal
// @Failure      404  {object}  errorResponse
// @Router       /cart/total [get]
func (h *CartHandler) Total(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	total, err := h.carts.Total(c.Request().Context(), actor.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, total)
}

// CheckAvailability lists the lines whose service is currently unavailable.
//
// @Summary      Check cart availability
// @Tags         cart
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  availabilityResponse
// @Router       /cart/check-availability [get]
func (h *CartHandler) CheckAvailability(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	items, err := h.carts.CheckAvailability(c.Request().Context(), actor.UserID)
	if err != nil {
		return err
	}
	if items == nil {
		items = []domain.CartItem{}
	}
	return c.JSON(http.StatusOK, availabilityResponse{Unavailable: items})
}
