package ports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/salonbook/salon-api/internal/core/domain"
)

// PaymentRepository persists the payment ledger. Payments are never deleted.
type PaymentRepository interface {
	Create(ctx context.Context, p *domain.Payment) (*domain.Payment, error)
	FindByID(ctx context.Context, id string) (*domain.Payment, error)
	// ListByUser returns the user's payments, newest first. An empty status
	// matches every status.
	ListByUser(ctx context.Context, userID string, status domain.PaymentStatus) ([]*domain.Payment, error)
	// Transition moves a payment from one status to another only if it is still
	// in from. It returns domain.ErrPaymentNotFound for unknown ids and
	// domain.ErrInvalidTransition when the stored status differs.
	Transition(ctx context.Context, id string, from, to domain.PaymentStatus, receipt string, now time.Time) (*domain.Payment, error)
}

// IdempotencyStore remembers which payment a client-supplied key produced.
type IdempotencyStore interface {
	Lookup(ctx context.Context, key string) (paymentID string, found bool, err error)
	// Save binds key to paymentID unless the key is already bound, in which case
	// the existing binding is returned with saved=false.
	Save(ctx context.Context, key, paymentID string) (existing string, saved bool, err error)
}

// CardInput is the raw card data accepted at the boundary. Only the masked
// form is ever stored.
type CardInput struct {
	Number         string
	ExpiryDate     string
	CardHolderName string
}

type InitializePaymentInput struct {
	Actor          domain.Actor
	Amount         decimal.Decimal
	Method         string
	Card           *CardInput
	IdempotencyKey string
}

type CheckoutInput struct {
	Actor          domain.Actor
	Method         string
	Card           *CardInput
	IdempotencyKey string
}

// PaymentSummary lists a user's initialized payments and their sum.
type PaymentSummary struct {
	Total    decimal.Decimal
	Payments []*domain.Payment
}

// PaymentService is the payment ledger.
type PaymentService interface {
	Initialize(ctx context.Context, in InitializePaymentInput) (*domain.Payment, error)
	Checkout(ctx context.Context, in CheckoutInput) (*domain.Payment, error)
	Complete(ctx context.Context, actor domain.Actor, paymentID string, success bool) (*domain.Payment, error)
	Refund(ctx context.Context, actor domain.Actor, paymentID string) (*domain.Payment, error)
	Status(ctx context.Context, actor domain.Actor, paymentID string) (*domain.Payment, error)
	History(ctx context.Context, userID string) ([]*domain.Payment, error)
	Summary(ctx context.Context, userID string) (*PaymentSummary, error)
}
