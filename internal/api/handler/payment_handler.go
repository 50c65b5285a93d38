package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/salonbook/salon-api/internal/api/metrics"
	"github.com/salonbook/salon-api/internal/core/domain"
	"github.com/salonbook/salon-api/internal/core/ports"
)

const headerIdempotencyKey = "Idempotency-Key"

// PaymentHandler serves the payment ledger.
type PaymentHandler struct {
	payments ports.PaymentService
}

func NewPaymentHandler(payments ports.PaymentService) *PaymentHandler {
	return &PaymentHandler{payments: payments}
}

func (r *cardRequest) toInput() *ports.CardInput {
	if r == nil {
		return nil
	}
	return &ports.CardInput{
		Number:         r.Number,
		ExpiryDate:     r.ExpiryDate,
		CardHolderName: r.CardHolderName,
	}
}

// respond renders a payment that just changed state and counts the transition.
func respond(c echo.Context, code int, p *domain.Payment) error {
	metrics.PaymentTransitionsTotal.WithLabelValues(string(p.Status)).Inc()
	return c.JSON(code, p)
}

// Initialize opens a payment in the initialized state.
//
// @Summary      Initialize a payment
// @Tags         payments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key  header    string                    false  "Replays the first result for the same key"
// @Param        body             body      initializePaymentRequest  true   "Payment"
// @Success      201              {object}  domain.Payment
// @Failure      400              {object}  errorResponse
// @Router       /payments/initialize [post]
func (h *PaymentHandler) Initialize(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	var req initializePaymentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	p, err := h.payments.Initialize(c.Request().Context(), ports.InitializePaymentInput{
		Actor:          actor,
		Amount:         *req.Amount,
		Method:         req.Method,
		Card:           req.Card.toInput(),
		IdempotencyKey: c.Request().Header.Get(headerIdempotencyKey),
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, p)
}

// Checkout opens a payment for the current cart total.
//
// @Summary      Checkout the cart
// @Tags         payments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key  header    string           false  "Replays the first result for the same key"
// @Param        body             body      checkoutRequest  true   "Payment method"
// @Success      201              {object}  domain.Payment
// @Failure      400              {object}  errorResponse
// @Failure      404              {object}  errorResponse
// @Router       /payments/checkout [post]
func (h *PaymentHandler) Checkout(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	var req checkoutRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	p, err := h.payments.Checkout(c.Request().Context(), ports.CheckoutInput{
		Actor:          actor,
		Method:         req.Method,
		Card:           req.Card.toInput(),
		IdempotencyKey: c.Request().Header.Get(headerIdempotencyKey),
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, p)
}

// Complete records the gateway outcome of an initialized payment.
//
// @Summary      Complete a payment
// @Tags         payments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      completePaymentRequest  true  "Outcome"
// @Success      200   {object}  domain.Payment
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /payments/complete [post]
func (h *PaymentHandler) Complete(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	var req completePaymentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	p, err := h.payments.Complete(c.Request().Context(), actor, req.PaymentID, *req.Success)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, p)
}

// Refund reverses a completed payment.
//
// @Summary      Refund a payment
// @Tags         payments
// @Produce      json
// @Security     BearerAuth
// @Param        paymentId  path      string  true  "Payment id"
// @Success      200        {object}  domain.Payment
// @Failure      404        {object}  errorResponse
// @Failure      409        {object}  errorResponse
// @Router       /payments/refund/{paymentId} [post]
func (h *PaymentHandler) Refund(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	p, err := h.payments.Refund(c.Request().Context(), actor, c.Param("paymentId"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, p)
}

// Status returns one of the caller's payments.
//
// @Summary      Payment status
// @Tags         payments
// @Produce      json
// @Security     BearerAuth
// @Param        paymentId  path      string  true  "Payment id"
// @Success      200        {object}  domain.Payment
// @Failure      404        {object}  errorResponse
// @Router       /payments/status/{paymentId} [get]
func (h *PaymentHandler) Status(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	p, err := h.payments.Status(c.Request().Context(), actor, c.Param("paymentId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

// History lists the caller's payments, newest first.
//
// @Summary      Payment history
// @Tags         payments
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Payment
// @Router       /payments/history [get]
func (h *PaymentHandler) History(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	list, err := h.payments.History(c.Request().Context(), actor.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, list)
}

// Summary totals the caller's initialized payments.
//
// @Summary      Payment summary
// @Tags         payments
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  summaryResponse
// @Router       /payments/summary [get]
func (h *PaymentHandler) Summary(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	sum, err := h.payments.Summary(c.Request().Context(), actor.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, summaryResponse{Total: sum.Total, Payments: sum.Payments})
}
