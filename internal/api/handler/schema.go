package handler

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/salonbook/salon-api/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// --- users ---

type profileRequest struct {
	FirstName   string `json:"first_name"   validate:"max=100"`
	LastName    string `json:"last_name"    validate:"max=100"`
	PhoneNumber string `json:"phone_number" validate:"max=32"`
	Avatar      string `json:"avatar"       validate:"omitempty,url"`
}

func (p profileRequest) toDomain() domain.Profile {
	return domain.Profile{
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		PhoneNumber: p.PhoneNumber,
		Avatar:      p.Avatar,
	}
}

type registerRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	profileRequest
}

type loginRequest struct {
	// Identifier is an email address or a username.
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password"   validate:"required"`
}

type loginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      *domain.User `json:"user"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password"     validate:"required,min=8"`
}

type roleRequest struct {
	Role string `json:"role" validate:"required,oneof=user admin staff"`
}

// --- services ---

type serviceRequest struct {
	Name        string           `json:"name"         validate:"required,max=100"`
	Description string           `json:"description"  validate:"max=1000"`
	Category    string           `json:"category"     validate:"required,oneof=hair nails massage facial other"`
	Price       *decimal.Decimal `json:"price"        validate:"required"`
	Available   *bool            `json:"availability"`
}

type searchRequest struct {
	Query string `json:"query" validate:"required"`
}

type discountRequest struct {
	ServiceID string  `json:"service_id" validate:"required,mongodb"`
	Discount  float64 `json:"discount"   validate:"gte=0,lte=100"`
}

type availabilityRequest struct {
	Available *bool `json:"availability" validate:"required"`
}

type ratingRequest struct {
	Rating float64 `json:"rating" validate:"gte=0,lte=5"`
}

type reviewRequest struct {
	Comment string `json:"comment" validate:"required,max=1000"`
}

type reviewsResponse struct {
	Reviews []string `json:"reviews"`
}

// --- employees ---

type employeeRequest struct {
	Name      string   `json:"name"         validate:"required,max=100"`
	Email     string   `json:"email"        validate:"required,email"`
	Phone     string   `json:"phone"        validate:"max=32"`
	Role      string   `json:"role"         validate:"required,oneof=stylist therapist manager"`
	Available *bool    `json:"availability"`
	Schedule  []string `json:"schedule"`
}

type assignTaskRequest struct {
	EmployeeID string `json:"employee_id" validate:"required,mongodb"`
	Task       string `json:"task"        validate:"required,max=500"`
}

type employeeReviewRequest struct {
	Rating  float64 `json:"rating"  validate:"gte=0,lte=5"`
	Comment string  `json:"comment" validate:"max=1000"`
}

type scheduleRequest struct {
	Schedule []string `json:"schedule" validate:"required"`
}

type tasksResponse struct {
	Tasks []string `json:"tasks"`
}

type scheduleResponse struct {
	Schedule []string `json:"schedule"`
}

type ratingResponse struct {
	Rating float64 `json:"rating"`
}

// --- appointments ---

type appointmentRequest struct {
	ServiceID  string    `json:"service_id"       validate:"required,mongodb"`
	EmployeeID string    `json:"employee_id"      validate:"omitempty,mongodb"`
	Date       time.Time `json:"appointment_date" validate:"required"`
}

type appointmentFilterRequest struct {
	ServiceID string    `json:"service_id" validate:"omitempty,mongodb"`
	Status    string    `json:"status"     validate:"omitempty,oneof=pending confirmed completed canceled"`
	From      time.Time `json:"from"`
	To        time.Time `json:"to"`
}

type statusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed completed canceled"`
}

type feedbackRequest struct {
	Feedback string `json:"feedback" validate:"required,max=1000"`
}

type bulkCancelRequest struct {
	IDs []string `json:"ids" validate:"required,min=1,dive,mongodb"`
}

type bulkCancelResponse struct {
	Canceled int64 `json:"canceled"`
}

type revenueResponse struct {
	Revenue decimal.Decimal `json:"revenue"`
}

type reminderRequest struct {
	// AppointmentID limits the run to one appointment; empty sweeps tomorrow.
	AppointmentID string `json:"appointment_id" validate:"omitempty,mongodb"`
}

type reminderResponse struct {
	Queued int `json:"queued"`
}

// --- cart ---

// addItemRequest defaults Quantity to 1 when it is omitted.
type addItemRequest struct {
	ServiceID string `json:"service_id" validate:"required,mongodb"`
	Quantity  *int   `json:"quantity"   validate:"omitempty,gte=1"`
}

func (r addItemRequest) quantity() int {
	if r.Quantity == nil {
		return 1
	}
	return *r.Quantity
}

type updateItemRequest struct {
	Quantity int `json:"quantity"`
}

type applyDiscountRequest struct {
	Code string `json:"code" validate:"required"`
}

type availabilityResponse struct {
	Unavailable []domain.CartItem `json:"unavailable"`
}

// --- payments ---

type cardRequest struct {
	Number         string `json:"card_number"      validate:"required,min=12,max=23"`
	ExpiryDate     string `json:"expiry_date"      validate:"required"`
	CardHolderName string `json:"card_holder_name" validate:"required"`
}

type initializePaymentRequest struct {
	Amount *decimal.Decimal `json:"amount"         validate:"required"`
	Method string           `json:"payment_method" validate:"required,max=50"`
	Card   *cardRequest     `json:"card_details"   validate:"omitempty"`
}

type checkoutRequest struct {
	Method string       `json:"payment_method" validate:"required,max=50"`
	Card   *cardRequest `json:"card_details"   validate:"omitempty"`
}

type completePaymentRequest struct {
	PaymentID string `json:"payment_id" validate:"required,mongodb"`
	Success   *bool  `json:"success"    validate:"required"`
}

type summaryResponse struct {
	Total    decimal.Decimal   `json:"total"`
	Payments []*domain.Payment `json:"payments"`
}
