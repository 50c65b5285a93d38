package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus represents the lifecycle state of a payment.
type PaymentStatus string

const (
	PaymentInitialized PaymentStatus = "initialized"
	PaymentCompleted   PaymentStatus = "completed"
	PaymentFailed      PaymentStatus = "failed"
	PaymentRefunded    PaymentStatus = "refunded"
)

// validPaymentTransitions defines the payment state machine. failed and refunded
// are terminal.
var validPaymentTransitions = map[PaymentStatus][]PaymentStatus{
	PaymentInitialized: {PaymentCompleted, PaymentFailed},
	PaymentCompleted:   {PaymentRefunded},
}

// CanTransitionTo reports whether a transition from s to next is valid.
func (s PaymentStatus) CanTransitionTo(next PaymentStatus) bool {
	for _, allowed := range validPaymentTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// CardDetails is the card metadata kept with a payment. Only the last four
// digits of the number are stored.
type CardDetails struct {
	Last4          string `json:"last4,omitempty"`
	ExpiryDate     string `json:"expiry_date,omitempty"`
	CardHolderName string `json:"card_holder_name,omitempty"`
}

// MaskCard reduces a full card number to its last four digits.
func MaskCard(number, expiry, holder string) *CardDetails {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, number)
	if len(digits) > 4 {
		digits = digits[len(digits)-4:]
	}
	return &CardDetails{Last4: digits, ExpiryDate: expiry, CardHolderName: holder}
}

// Payment is an entry in the payment ledger. Payments are never deleted; a
// refund is a transition.
type Payment struct {
	ID          string          `json:"id"`
	UserID      string          `json:"user_id"`
	Amount      decimal.Decimal `json:"amount"`
	Method      string          `json:"payment_method"`
	CardDetails *CardDetails    `json:"card_details,omitempty"`
	Status      PaymentStatus   `json:"status"`
	PromoCode   string          `json:"promo_code,omitempty"`
	Receipt     string          `json:"receipt,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// NewPayment builds a payment in the initialized state.
func NewPayment(userID string, amount decimal.Decimal, method string, card *CardDetails, now time.Time) (*Payment, error) {
	if amount.IsNegative() {
		return nil, ErrInvalidAmount
	}
	if method == "" {
		return nil, MissingField("payment_method")
	}
	return &Payment{
		UserID:      userID,
		Amount:      amount,
		Method:      method,
		CardDetails: card,
		Status:      PaymentInitialized,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// CompletionStatus maps a gateway outcome onto the resulting status.
func CompletionStatus(success bool) PaymentStatus {
	if success {
		return PaymentCompleted
	}
	return PaymentFailed
}
