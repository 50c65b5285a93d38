package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/salonbook/salon-api/internal/api/handler"
	"github.com/salonbook/salon-api/internal/core/domain"
	"github.com/salonbook/salon-api/internal/core/service"
	"github.com/salonbook/salon-api/internal/infrastructure/db/memory"
	"github.com/salonbook/salon-api/pkg/clock"
	"github.com/salonbook/salon-api/pkg/password"
	"github.com/salonbook/salon-api/pkg/token"
)

type stubTrigger struct{ swept int }

func (s *stubTrigger) Sweep(context.Context) (int, error)  { s.swept++; return 3, nil }
func (s *stubTrigger) Remind(context.Context, string) error { return nil }

type testServer struct {
	e      *echo.Echo
	users  *memory.UserRepository
	hasher *password.Hasher
}

func newTestServer(t *testing.T, loginLimit int) *testServer {
	t.Helper()
	log := zerolog.Nop()
	clk := clock.System{}
	hasher := password.NewHasher(bcrypt.MinCost)
	tokens := token.NewManager("router-test-secret", time.Hour)

	users := memory.NewUserRepository()
	services := memory.NewServiceRepository()
	employees := memory.NewEmployeeRepository()

	catalog := service.NewCatalogService(services, clk, log)
	carts := service.NewCartService(memory.NewCartRepository(), catalog, domain.DefaultDiscounts(), clk, log)

	e := NewRouter(Dependencies{
		Auth:      service.NewAuthService(users, hasher, tokens, clk, log),
		Users:     service.NewUserService(users, clk, log),
		Catalog:   catalog,
		Carts:     carts,
		Payments:  service.NewPaymentService(memory.NewPaymentRepository(), carts, memory.NewIdempotencyStore(), clk, log),
		Employees: service.NewEmployeeService(employees, clk, log),
		Appointments: service.NewAppointmentService(
			memory.NewAppointmentRepository(services), catalog, employees, clk, log),
		Reminders:      &stubTrigger{},
		Tokens:         tokens,
		Clock:          clk,
		Log:            log,
		LoginRateLimit: loginLimit,
		Registerer:     prometheus.NewRegistry(),
	})
	return &testServer{e: e, users: users, hasher: hasher}
}

func (s *testServer) do(t *testing.T, method, path, bearer string, body any, headers ...string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if bearer != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+bearer)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func (s *testServer) login(t *testing.T, identifier, pass string) string {
	t.Helper()
	rec := s.do(t, http.MethodPost, "/users/login", "", map[string]string{
		"identifier": identifier,
		"password":   pass,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	return decode[struct {
		Token string `json:"token"`
	}](t, rec).Token
}

func (s *testServer) seedAdmin(t *testing.T) string {
	t.Helper()
	hash, err := s.hasher.Hash("admin-pass-1")
	require.NoError(t, err)
	_, err = s.users.Create(context.Background(), &domain.User{
		Username:     "admin",
		Email:        "admin@example.com",
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
	})
	require.NoError(t, err)
	return s.login(t, "admin", "admin-pass-1")
}

func TestRouter_RegisterLoginProfileAndAdminGate(t *testing.T) {
	s := newTestServer(t, 10)

	rec := s.do(t, http.MethodPost, "/users/register", "", map[string]string{
		"username": "alice",
		"email":    "alice@example.com",
		"password": "s3cret-pass",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	registered := decode[domain.User](t, rec)
	assert.Equal(t, domain.RoleUser, registered.Role)
	assert.NotContains(t, rec.Body.String(), "s3cret-pass")

	rec = s.do(t, http.MethodPost, "/users/register", "", map[string]string{
		"username": "alice2",
		"email":    "alice@example.com",
		"password": "s3cret-pass",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)

	tok := s.login(t, "alice@example.com", "s3cret-pass")

	rec = s.do(t, http.MethodGet, "/users/profile", tok, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, registered.ID, decode[domain.User](t, rec).ID)

	rec = s.do(t, http.MethodGet, "/users", tok, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = s.do(t, http.MethodGet, "/users/profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = s.do(t, http.MethodPost, "/users/login", "", map[string]string{
		"identifier": "alice",
		"password":   "wrong-pass",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	admin := s.seedAdmin(t)
	rec = s.do(t, http.MethodGet, "/users", admin, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]domain.User](t, rec), 2)

	rec = s.do(t, http.MethodPost, "/users/"+registered.ID+"/block", admin, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = s.do(t, http.MethodPost, "/users/login", "", map[string]string{
		"identifier": "alice",
		"password":   "s3cret-pass",
	})
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRouter_CartDiscountAndCheckout(t *testing.T) {
	s := newTestServer(t, 10)
	admin := s.seedAdmin(t)

	rec := s.do(t, http.MethodPost, "/services", admin, map[string]any{
		"name":         "Colour",
		"category":     "hair",
		"price":        "50",
		"availability": true,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	svc := decode[domain.Service](t, rec)

	rec = s.do(t, http.MethodPost, "/users/register", "", map[string]string{
		"username": "bob",
		"email":    "bob@example.com",
		"password": "another-pass",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	bob := s.login(t, "bob", "another-pass")

	rec = s.do(t, http.MethodPost, "/services", bob, map[string]any{
		"name": "Sneaky", "category": "hair", "price": "1",
	})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	for _, qty := range []int{1, 2} {
		rec = s.do(t, http.MethodPost, "/cart/add", bob, map[string]any{"service_id": svc.ID, "quantity": qty})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	}
	cart := decode[domain.Cart](t, rec)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 3, cart.Items[0].Quantity)

	rec = s.do(t, http.MethodPost, "/cart/add", bob, map[string]any{"service_id": svc.ID, "quantity": 0})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(t, http.MethodPost, "/cart/apply-discount", bob, map[string]string{"code": "BOGUS"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(t, http.MethodPost, "/cart/apply-discount", bob, map[string]string{"code": "SAVE10"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = s.do(t, http.MethodGet, "/cart/total", bob, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	total := decode[domain.CartTotal](t, rec)
	assert.True(t, total.Subtotal.Equal(decimal.NewFromInt(150)), total.Subtotal.String())
	assert.True(t, total.Total.Equal(decimal.NewFromInt(140)), total.Total.String())

	rec = s.do(t, http.MethodPost, "/payments/checkout", bob,
		map[string]string{"payment_method": "card"}, "Idempotency-Key", "order-1")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	payment := decode[domain.Payment](t, rec)
	assert.True(t, payment.Amount.Equal(decimal.NewFromInt(140)), payment.Amount.String())
	assert.Equal(t, domain.PaymentInitialized, payment.Status)
	assert.Equal(t, "SAVE10", payment.PromoCode)

	rec = s.do(t, http.MethodPost, "/payments/checkout", bob,
		map[string]string{"payment_method": "card"}, "Idempotency-Key", "order-1")
	require.Less(t, rec.Code, 300, rec.Body.String())
	assert.Equal(t, payment.ID, decode[domain.Payment](t, rec).ID)

	rec = s.do(t, http.MethodPost, "/payments/complete", bob, map[string]any{"payment_id": payment.ID, "success": true})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, domain.PaymentCompleted, decode[domain.Payment](t, rec).Status)

	rec = s.do(t, http.MethodPost, "/payments/complete", bob, map[string]any{"payment_id": payment.ID, "success": true})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = s.do(t, http.MethodPost, "/payments/refund/"+payment.ID, bob, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.PaymentRefunded, decode[domain.Payment](t, rec).Status)

	rec = s.do(t, http.MethodGet, "/payments/status/"+payment.ID, admin, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(t, http.MethodPost, "/users/register", "", map[string]string{
		"username": "mallory", "email": "mallory@example.com", "password": "mallory-pass",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	mallory := s.login(t, "mallory", "mallory-pass")
	rec = s.do(t, http.MethodGet, "/payments/status/"+payment.ID, mallory, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_AddItemDefaultsToOne(t *testing.T) {
	s := newTestServer(t, 10)
	admin := s.seedAdmin(t)

	rec := s.do(t, http.MethodPost, "/services", admin, map[string]any{
		"name": "Manicure", "category": "nails", "price": "20", "availability": true,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	svc := decode[domain.Service](t, rec)

	for _, want := range []int{1, 2} {
		rec = s.do(t, http.MethodPost, "/cart/add", admin, map[string]string{"service_id": svc.ID})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		cart := decode[domain.Cart](t, rec)
		require.Len(t, cart.Items, 1)
		assert.Equal(t, want, cart.Items[0].Quantity)
	}
}

func TestRouter_RemindersRequireStaff(t *testing.T) {
	s := newTestServer(t, 10)
	admin := s.seedAdmin(t)

	rec := s.do(t, http.MethodPost, "/appointments/reminders", admin, map[string]string{})
	require.Equal(t, http.StatusAccepted, rec.Code, rec.Body.String())
	assert.Equal(t, 3, decode[struct {
		Queued int `json:"queued"`
	}](t, rec).Queued)

	rec = s.do(t, http.MethodPost, "/users/register", "", map[string]string{
		"username": "carol", "email": "carol@example.com", "password": "carol-pass",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	carol := s.login(t, "carol", "carol-pass")

	rec = s.do(t, http.MethodPost, "/appointments/reminders", carol, map[string]string{})
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRouter_LoginRateLimited(t *testing.T) {
	s := newTestServer(t, 2)
	creds := map[string]string{"identifier": "nobody", "password": "whatever"}

	for i := 0; i < 2; i++ {
		rec := s.do(t, http.MethodPost, "/users/login", "", creds)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	}
	rec := s.do(t, http.MethodPost, "/users/login", "", creds)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestRouter_OpsEndpoints(t *testing.T) {
	s := newTestServer(t, 10)

	rec := s.do(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(t, http.MethodGet, "/health/ready", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(t, http.MethodGet, "/does-not-exist", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, decode[map[string]string](t, rec), "error")
}

func TestRouter_ReadinessReportsFailingDependency(t *testing.T) {
	e := NewRouter(Dependencies{
		Log:        zerolog.Nop(),
		Clock:      clock.System{},
		Registerer: prometheus.NewRegistry(),
		Readiness: []handler.DependencyCheck{{
			Name: "mongodb",
			Ping: func(context.Context) error { return context.DeadlineExceeded },
		}},
	})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
