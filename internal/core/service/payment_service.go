package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/salonbook/salon-api/internal/core/domain"
	"github.com/salonbook/salon-api/internal/core/ports"
	"github.com/salonbook/salon-api/pkg/clock"
)

const receiptPrefix = "RCPT-"

type paymentService struct {
	payments ports.PaymentRepository
	carts    ports.CartService
	idem     ports.IdempotencyStore
	clock    clock.Clock
	log      zerolog.Logger
}

// NewPaymentService returns a PaymentService implementation. idem may be nil,
// in which case Idempotency-Key headers are ignored.
func NewPaymentService(
	payments ports.PaymentRepository,
	carts ports.CartService,
	idem ports.IdempotencyStore,
	clk clock.Clock,
	log zerolog.Logger,
) ports.PaymentService {
	return &paymentService{payments: payments, carts: carts, idem: idem, clock: clk, log: log}
}

func (s *paymentService) Initialize(ctx context.Context, in ports.InitializePaymentInput) (*domain.Payment, error) {
	return s.create(ctx, in.Actor.UserID, in.Amount, in.Method, in.Card, "", in.IdempotencyKey)
}

// Checkout prices the caller's cart and opens a payment for the total, carrying
// the cart's discount code as promo code. The cart itself is left untouched.
func (s *paymentService) Checkout(ctx context.Context, in ports.CheckoutInput) (*domain.Payment, error) {
	cart, err := s.carts.Get(ctx, in.Actor.UserID)
	if err != nil {
		return nil, fmt.Errorf("checkout: %w", err)
	}
	if len(cart.Items) == 0 {
		return nil, domain.ErrEmptyCart
	}
	total, err := s.carts.Total(ctx, in.Actor.UserID)
	if err != nil {
		return nil, fmt.Errorf("checkout: %w", err)
	}
	return s.create(ctx, in.Actor.UserID, total.Total, in.Method, in.Card, cart.DiscountCode, in.IdempotencyKey)
}

func (s *paymentService) create(
	ctx context.Context,
	userID string,
	amount decimal.Decimal,
	method string,
	card *ports.CardInput,
	promo string,
	idempotencyKey string,
) (*domain.Payment, error) {
	key := s.idempotencyKey(userID, idempotencyKey)
	if key != "" {
		if replay, ok := s.replay(ctx, key); ok {
			return replay, nil
		}
	}

	var masked *domain.CardDetails
	if card != nil {
		masked = domain.MaskCard(card.Number, card.ExpiryDate, card.CardHolderName)
	}
	p, err := domain.NewPayment(userID, amount, method, masked, s.clock.Now())
	if err != nil {
		return nil, err
	}
	p.PromoCode = promo

	created, err := s.payments.Create(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("initialize payment: %w", err)
	}

	if key != "" {
		existing, saved, err := s.idem.Save(ctx, key, created.ID)
		switch {
		case err != nil:
			s.log.Warn().Err(err).Str("payment_id", created.ID).Msg("failed to store idempotency key")
		case !saved && existing != created.ID:
			// A concurrent request with the same key won the race.
			if winner, err := s.payments.FindByID(ctx, existing); err == nil {
				s.log.Warn().Str("payment_id", created.ID).Str("winner_id", existing).Msg("duplicate payment for idempotency key")
				return winner, nil
			}
		}
	}

	s.log.Info().
		Str("payment_id", created.ID).
		Str("user_id", userID).
		Str("amount", created.Amount.String()).
		Msg("payment initialized")
	return created, nil
}

func (s *paymentService) idempotencyKey(userID, key string) string {
	if s.idem == nil || key == "" {
		return ""
	}
	return userID + ":" + key
}

// replay returns the payment a previous request with the same key produced.
// Store failures are logged and treated as a miss.
func (s *paymentService) replay(ctx context.Context, key string) (*domain.Payment, bool) {
	id, found, err := s.idem.Lookup(ctx, key)
	if err != nil {
		s.log.Warn().Err(err).Msg("idempotency lookup failed, processing anyway")
		return nil, false
	}
	if !found {
		return nil, false
	}
	p, err := s.payments.FindByID(ctx, id)
	if err != nil {
		return nil, false
	}
	return p, true
}

// owned loads a payment the actor may act on. Payments of other users are
// reported as not found.
func (s *paymentService) owned(ctx context.Context, actor domain.Actor, paymentID string) (*domain.Payment, error) {
	p, err := s.payments.FindByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if !actor.CanAccess(p.UserID) {
		return nil, domain.ErrPaymentNotFound
	}
	return p, nil
}

func (s *paymentService) transition(ctx context.Context, actor domain.Actor, paymentID string, to domain.PaymentStatus, receipt string) (*domain.Payment, error) {
	p, err := s.owned(ctx, actor, paymentID)
	if err != nil {
		return nil, err
	}
	if !p.Status.CanTransitionTo(to) {
		return nil, fmt.Errorf("%w (from %s to %s)", domain.ErrInvalidTransition, p.Status, to)
	}

	updated, err := s.payments.Transition(ctx, paymentID, p.Status, to, receipt, s.clock.Now())
	if err != nil {
		if errors.Is(err, domain.ErrInvalidTransition) {
			return nil, fmt.Errorf("%w (payment changed concurrently)", err)
		}
		return nil, err
	}

	s.log.Info().
		Str("payment_id", paymentID).
		Str("from", string(p.Status)).
		Str("to", string(to)).
		Msg("payment transitioned")
	return updated, nil
}

// Complete records the gateway outcome of an initialized payment. A successful
// payment is issued a receipt reference.
func (s *paymentService) Complete(ctx context.Context, actor domain.Actor, paymentID string, success bool) (*domain.Payment, error) {
	receipt := ""
	if success {
		receipt = receiptPrefix + uuid.NewString()
	}
	return s.transition(ctx, actor, paymentID, domain.CompletionStatus(success), receipt)
}

func (s *paymentService) Refund(ctx context.Context, actor domain.Actor, paymentID string) (*domain.Payment, error) {
	return s.transition(ctx, actor, paymentID, domain.PaymentRefunded, "")
}

func (s *paymentService) Status(ctx context.Context, actor domain.Actor, paymentID string) (*domain.Payment, error) {
	return s.owned(ctx, actor, paymentID)
}

func (s *paymentService) History(ctx context.Context, userID string) ([]*domain.Payment, error) {
	payments, err := s.payments.ListByUser(ctx, userID, "")
	if err != nil {
		return nil, fmt.Errorf("payment history: %w", err)
	}
	return payments, nil
}

// Summary sums the user's payments that are still awaiting completion.
func (s *paymentService) Summary(ctx context.Context, userID string) (*ports.PaymentSummary, error) {
	pending, err := s.payments.ListByUser(ctx, userID, domain.PaymentInitialized)
	if err != nil {
		return nil, fmt.Errorf("payment summary: %w", err)
	}
	total := decimal.Zero
	for _, p := range pending {
		total = total.Add(p.Amount)
	}
	return &ports.PaymentSummary{Total: total, Payments: pending}, nil
}
