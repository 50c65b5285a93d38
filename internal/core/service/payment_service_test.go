package service

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonbook/salon-api/internal/core/domain"
	"github.com/salonbook/salon-api/internal/core/ports"
	"github.com/salonbook/salon-api/internal/infrastructure/db/memory"
)

var (
	alice = domain.Actor{UserID: "alice", Role: domain.RoleUser}
	bob   = domain.Actor{UserID: "bob", Role: domain.RoleUser}
	admin = domain.Actor{UserID: "root", Role: domain.RoleAdmin}
)

type paymentFixture struct {
	cart *cartFixture
	svc  ports.PaymentService
}

func newPaymentFixture() *paymentFixture {
	cf := newCartFixture(nil)
	return &paymentFixture{
		cart: cf,
		svc: NewPaymentService(
			memory.NewPaymentRepository(),
			cf.svc,
			memory.NewIdempotencyStore(),
			fixedClock,
			discardLogger,
		),
	}
}

func (f *paymentFixture) initialize(t *testing.T, actor domain.Actor, amount int64) *domain.Payment {
	t.Helper()
	p, err := f.svc.Initialize(context.Background(), ports.InitializePaymentInput{
		Actor:  actor,
		Amount: decimal.NewFromInt(amount),
		Method: "card",
	})
	require.NoError(t, err)
	return p
}

func TestPaymentService_Initialize(t *testing.T) {
	f := newPaymentFixture()

	p, err := f.svc.Initialize(context.Background(), ports.InitializePaymentInput{
		Actor:  alice,
		Amount: decimal.NewFromInt(120),
		Method: "card",
		Card:   &ports.CardInput{Number: "4111111111111234", ExpiryDate: "12/29", CardHolderName: "Alice"},
	})
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentInitialized, p.Status)
	assert.Equal(t, "alice", p.UserID)
	require.NotNil(t, p.CardDetails)
	assert.Equal(t, "1234", p.CardDetails.Last4)

	_, err = f.svc.Initialize(context.Background(), ports.InitializePaymentInput{
		Actor: alice, Amount: decimal.NewFromInt(-1), Method: "card",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
}

func TestPaymentService_CompleteAndRefund(t *testing.T) {
	f := newPaymentFixture()
	ctx := context.Background()
	p := f.initialize(t, alice, 50)

	_, err := f.svc.Refund(ctx, alice, p.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition, "refund of an initialized payment")

	completed, err := f.svc.Complete(ctx, alice, p.ID, true)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentCompleted, completed.Status)
	assert.True(t, strings.HasPrefix(completed.Receipt, "RCPT-"), completed.Receipt)

	_, err = f.svc.Complete(ctx, alice, p.ID, true)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition, "second completion")

	refunded, err := f.svc.Refund(ctx, alice, p.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentRefunded, refunded.Status)

	_, err = f.svc.Refund(ctx, alice, p.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition, "second refund")
}

func TestPaymentService_FailedIsTerminal(t *testing.T) {
	f := newPaymentFixture()
	ctx := context.Background()
	p := f.initialize(t, alice, 50)

	failed, err := f.svc.Complete(ctx, alice, p.ID, false)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentFailed, failed.Status)
	assert.Empty(t, failed.Receipt)

	_, err = f.svc.Complete(ctx, alice, p.ID, true)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	_, err = f.svc.Refund(ctx, alice, p.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestPaymentService_UnknownPayment(t *testing.T) {
	f := newPaymentFixture()

	_, err := f.svc.Complete(context.Background(), alice, "000000000000000000000000", true)
	assert.ErrorIs(t, err, domain.ErrPaymentNotFound)
}

func TestPaymentService_OwnershipScoping(t *testing.T) {
	f := newPaymentFixture()
	ctx := context.Background()
	p := f.initialize(t, alice, 50)

	_, err := f.svc.Status(ctx, bob, p.ID)
	assert.ErrorIs(t, err, domain.ErrPaymentNotFound)
	_, err = f.svc.Complete(ctx, bob, p.ID, true)
	assert.ErrorIs(t, err, domain.ErrPaymentNotFound)

	got, err := f.svc.Status(ctx, admin, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.ID, got.ID)
}

func TestPaymentService_ConcurrentCompleteSucceedsOnce(t *testing.T) {
	f := newPaymentFixture()
	p := f.initialize(t, alice, 50)

	const attempts = 20
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
	)
	wg.Add(attempts)
	for i := 0; i < attempts; i++ {
		go func() {
			defer wg.Done()
			if _, err := f.svc.Complete(context.Background(), alice, p.ID, true); err == nil {
				mu.Lock()
				successes++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, successes)
}

func TestPaymentService_IdempotencyKeyReplays(t *testing.T) {
	f := newPaymentFixture()
	ctx := context.Background()
	in := ports.InitializePaymentInput{Actor: alice, Amount: decimal.NewFromInt(10), Method: "card", IdempotencyKey: "k1"}

	first, err := f.svc.Initialize(ctx, in)
	require.NoError(t, err)
	second, err := f.svc.Initialize(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	// Keys are scoped per user.
	in.Actor = bob
	other, err := f.svc.Initialize(ctx, in)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, other.ID)

	history, err := f.svc.History(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, history, 1)
}

func TestPaymentService_Summary(t *testing.T) {
	f := newPaymentFixture()
	ctx := context.Background()
	f.initialize(t, alice, 30)
	f.initialize(t, alice, 12)
	done := f.initialize(t, alice, 100)
	f.initialize(t, bob, 7)
	_, err := f.svc.Complete(ctx, alice, done.ID, true)
	require.NoError(t, err)

	summary, err := f.svc.Summary(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, summary.Payments, 2)
	assert.True(t, summary.Total.Equal(decimal.NewFromInt(42)), "total %s", summary.Total)

	history, err := f.svc.History(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, history, 3)
}

func TestPaymentService_Checkout(t *testing.T) {
	f := newPaymentFixture()
	ctx := context.Background()

	_, err := f.svc.Checkout(ctx, ports.CheckoutInput{Actor: alice, Method: "card"})
	assert.ErrorIs(t, err, domain.ErrEmptyCart)

	s1 := f.cart.service(t, "Massage", 50)
	_, err = f.cart.svc.AddItem(ctx, "alice", s1, 3)
	require.NoError(t, err)
	_, err = f.cart.svc.ApplyDiscount(ctx, "alice", "SAVE10")
	require.NoError(t, err)

	p, err := f.svc.Checkout(ctx, ports.CheckoutInput{Actor: alice, Method: "card"})
	require.NoError(t, err)
	assert.True(t, p.Amount.Equal(decimal.NewFromInt(140)), "amount %s", p.Amount)
	assert.Equal(t, "SAVE10", p.PromoCode)
	assert.Equal(t, domain.PaymentInitialized, p.Status)
}
