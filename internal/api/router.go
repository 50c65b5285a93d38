package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"golang.org/x/time/rate"

	_ "github.com/salonbook/salon-api/docs"
	"github.com/salonbook/salon-api/internal/api/handler"
	"github.com/salonbook/salon-api/internal/api/middleware"
	"github.com/salonbook/salon-api/internal/core/domain"
	"github.com/salonbook/salon-api/internal/core/ports"
	"github.com/salonbook/salon-api/pkg/clock"
)

const (
	metricsSubsystem = "salon_http"
	rateLimitExpiry  = 3 * time.Minute
)

// Dependencies is everything the HTTP layer needs, built by the caller.
type Dependencies struct {
	Auth         ports.AuthService
	Users        ports.UserService
	Catalog      ports.CatalogService
	Carts        ports.CartService
	Payments     ports.PaymentService
	Employees    ports.EmployeeService
	Appointments ports.AppointmentService
	Reminders    handler.ReminderTrigger

	Tokens middleware.TokenVerifier
	Clock  clock.Clock
	Log    zerolog.Logger

	// LoginRateLimit is the number of login attempts allowed per client IP
	// per minute.
	LoginRateLimit int
	// Readiness lists the dependencies checked by /health/ready.
	Readiness []handler.DependencyCheck
	// Registerer receives the HTTP metrics. Nil means the default registry.
	Registerer prometheus.Registerer
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(deps.Log))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  metricsSubsystem,
		Registerer: deps.Registerer,
	}))

	auth := middleware.Auth(deps.Tokens, deps.Clock)
	adminOnly := middleware.RequireRoles(domain.RoleAdmin)
	adminOrStaff := middleware.RequireRoles(domain.RoleAdmin, domain.RoleStaff)

	// --- Users ---
	uh := handler.NewUserHandler(deps.Auth, deps.Users)
	users := e.Group("/users")
	users.POST("/register", uh.Register)
	users.POST("/login", uh.Login, loginLimiter(deps.LoginRateLimit))
	users.GET("/profile", uh.Profile, auth)
	users.PUT("/profile", uh.UpdateProfile, auth)
	users.PUT("/password", uh.ChangePassword, auth)
	users.GET("", uh.List, auth, adminOnly)
	users.POST("/:id/block", uh.Block, auth, adminOnly)
	users.POST("/:id/unblock", uh.Unblock, auth, adminOnly)
	users.PUT("/:id/role", uh.SetRole, auth, adminOnly)

	// --- Services ---
	sh := handler.NewServiceHandler(deps.Catalog)
	services := e.Group("/services")
	services.GET("", sh.List)
	services.GET("/popular", sh.Popular)
	services.GET("/discounted", sh.Discounted)
	services.GET("/available", sh.Available)
	services.GET("/category/:category", sh.ByCategory)
	services.POST("/search", sh.Search)
	services.GET("/reviews/:id", sh.Reviews)
	services.GET("/:id", sh.Get)
	services.POST("/reviews/:id", sh.AddReview, auth)
	services.PUT("/rating/:id", sh.SetRating, auth)
	services.POST("", sh.Create, auth, adminOnly)
	services.PUT("/:id", sh.Update, auth, adminOnly)
	services.DELETE("/:id", sh.Delete, auth, adminOnly)
	services.POST("/discount", sh.SetDiscount, auth, adminOnly)
	services.POST("/availability/:id", sh.SetAvailability, auth, adminOnly)
	services.DELETE("/reviews/:id", sh.RemoveReview, auth, adminOnly)

	// --- Employees ---
	eh := handler.NewEmployeeHandler(deps.Employees)
	employees := e.Group("/employees")
	employees.GET("", eh.List)
	employees.GET("/available", eh.Available)
	employees.POST("/search", eh.Search)
	employees.GET("/tasks/:id", eh.Tasks)
	employees.GET("/rating/:id", eh.Rating)
	employees.GET("/schedule/:id", eh.Schedule)
	employees.GET("/:id", eh.Get)
	employees.POST("/review/:id", eh.AddReview, auth)
	employees.POST("/assign-task", eh.AssignTask, auth, adminOrStaff)
	employees.POST("", eh.Create, auth, adminOnly)
	employees.PUT("/:id", eh.Update, auth, adminOnly)
	employees.DELETE("/:id", eh.Delete, auth, adminOnly)
	employees.POST("/mark-available/:id", eh.MarkAvailable, auth, adminOnly)
	employees.POST("/mark-unavailable/:id", eh.MarkUnavailable, auth, adminOnly)
	employees.POST("/schedule/:id", eh.SetSchedule, auth, adminOnly)

	// --- Appointments ---
	ah := handler.NewAppointmentHandler(deps.Appointments, deps.Reminders)
	appts := e.Group("/appointments", auth)
	appts.POST("", ah.Book)
	appts.GET("", ah.List)
	appts.POST("/filter", ah.Filter)
	appts.GET("/today", ah.Today)
	appts.GET("/week", ah.Week)
	appts.GET("/month", ah.Month)
	appts.GET("/revenue", ah.Revenue, adminOnly)
	appts.POST("/bulk-cancel", ah.BulkCancel, adminOnly)
	appts.POST("/reminders", ah.SendReminders, adminOrStaff)
	appts.POST("/status/:id", ah.SetStatus)
	appts.POST("/feedback/:id", ah.Feedback)
	appts.GET("/:id", ah.Get)
	appts.PUT("/:id", ah.Reschedule)
	appts.DELETE("/:id", ah.Cancel)

	// --- Cart ---
	ch := handler.NewCartHandler(deps.Carts)
	cart := e.Group("/cart", auth)
	cart.GET("", ch.Get)
	cart.POST("/add", ch.AddItem)
	cart.PUT("/update/:serviceId", ch.UpdateItem)
	cart.DELETE("/remove/:serviceId", ch.RemoveItem)
	cart.DELETE("/clear", ch.Clear)
	cart.GET("/total", ch.Total)
	cart.POST("/apply-discount", ch.ApplyDiscount)
	cart.GET("/check-availability", ch.CheckAvailability)

	// --- Payments ---
	ph := handler.NewPaymentHandler(deps.Payments)
	payments := e.Group("/payments", auth)
	payments.POST("/initialize", ph.Initialize)
	payments.POST("/checkout", ph.Checkout)
	payments.POST("/complete", ph.Complete)
	payments.GET("/history", ph.History)
	payments.GET("/status/:paymentId", ph.Status)
	payments.POST("/refund/:paymentId", ph.Refund)
	payments.GET("/summary", ph.Summary)

	// --- Health checks, metrics and docs (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Readiness...)

	e.GET("/health", healthHandler.Liveness)           // liveness
	e.GET("/health/ready", readinessHandler.Readiness) // readiness
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

// loginLimiter throttles login attempts per client IP.
func loginLimiter(perMinute int) echo.MiddlewareFunc {
	if perMinute <= 0 {
		perMinute = 10
	}
	store := echomiddleware.NewRateLimiterMemoryStoreWithConfig(echomiddleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(float64(perMinute) / time.Minute.Seconds()),
		Burst:     perMinute,
		ExpiresIn: rateLimitExpiry,
	})
	return echomiddleware.RateLimiterWithConfig(echomiddleware.RateLimiterConfig{
		Store: store,
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return echo.NewHTTPError(http.StatusTooManyRequests, "too many login attempts")
		},
	})
}

// requestLogger feeds echo's request log into zerolog.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogRemoteIP:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			log.Info().
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Str("remote_ip", v.RemoteIP).
				Msg("request")
			return nil
		},
	})
}
