// Command server runs the salon HTTP API.
//
// @title                       Salon API
// @version                     1.0
// @description                 Accounts, services, employees, appointments, carts and payments for a salon.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Type "Bearer" followed by a space and the token.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/salonbook/salon-api/internal/api"
	"github.com/salonbook/salon-api/internal/api/handler"
	"github.com/salonbook/salon-api/internal/core/ports"
	"github.com/salonbook/salon-api/internal/core/service"
	"github.com/salonbook/salon-api/internal/infrastructure/db/memory"
	"github.com/salonbook/salon-api/internal/infrastructure/db/mongo"
	"github.com/salonbook/salon-api/internal/infrastructure/db/redis"
	"github.com/salonbook/salon-api/internal/infrastructure/notify"
	"github.com/salonbook/salon-api/internal/infrastructure/queue"
	"github.com/salonbook/salon-api/internal/infrastructure/scheduler"
	"github.com/salonbook/salon-api/internal/pkg/config"
	"github.com/salonbook/salon-api/pkg/clock"
	"github.com/salonbook/salon-api/pkg/logger"
	"github.com/salonbook/salon-api/pkg/password"
	"github.com/salonbook/salon-api/pkg/token"
)

const shutdownTimeout = 15 * time.Second

// storage is the set of repositories selected by STORAGE_DRIVER.
type storage struct {
	users        ports.UserRepository
	services     ports.ServiceRepository
	carts        ports.CartRepository
	payments     ports.PaymentRepository
	employees    ports.EmployeeRepository
	appointments ports.AppointmentRepository
	idempotency  ports.IdempotencyStore
	dedup        ports.ReminderDedup
	checks       []handler.DependencyCheck
	close        func(context.Context)
}

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "salon-api",
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, err := openStorage(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.StorageDriver).Msg("failed to open storage")
	}
	defer store.close(context.Background())

	discounts, err := cfg.Discounts()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid discount codes")
	}

	clk := clock.System{}
	tokens := token.NewManager(cfg.JWTSecret, cfg.TokenTTL)
	hasher := password.NewHasher(cfg.BcryptCost)

	catalog := service.NewCatalogService(store.services, clk, log)
	carts := service.NewCartService(store.carts, catalog, discounts, clk, log)
	remLog := logger.Component(log, "reminders")
	reminders := service.NewReminderService(
		store.appointments, store.users, store.services, notifiers(cfg, remLog), store.dedup, clk, remLog)

	// Reminder workers and the daily sweep share the process lifetime.
	dispatcher := queue.NewDispatcher(cfg.Reminders.Workers, reminders, remLog)
	dispatcher.Start(ctx)
	sched := scheduler.New(cfg.Reminders.Cron, reminders, dispatcher, clk, remLog)
	if err := sched.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to start reminder scheduler")
	}

	e := api.NewRouter(api.Dependencies{
		Auth:           service.NewAuthService(store.users, hasher, tokens, clk, log),
		Users:          service.NewUserService(store.users, clk, log),
		Catalog:        catalog,
		Carts:          carts,
		Payments:       service.NewPaymentService(store.payments, carts, store.idempotency, clk, log),
		Employees:      service.NewEmployeeService(store.employees, clk, log),
		Appointments:   service.NewAppointmentService(store.appointments, catalog, store.employees, clk, log),
		Reminders:      sched,
		Tokens:         tokens,
		Clock:          clk,
		Log:            log,
		LoginRateLimit: cfg.LoginRateLimit,
		Readiness:      store.checks,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM
	go func() {
		log.Info().Str("port", cfg.Port).Str("storage", cfg.StorageDriver).Msg("salon api listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
	sched.Stop()
	cancel()
	log.Info().Msg("server exited")
}

func openStorage(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*storage, error) {
	if cfg.StorageDriver == config.StorageMemory {
		log.Warn().Msg("using in-memory storage, data is lost on restart")
		services := memory.NewServiceRepository()
		return &storage{
			users:        memory.NewUserRepository(),
			services:     services,
			carts:        memory.NewCartRepository(),
			payments:     memory.NewPaymentRepository(),
			employees:    memory.NewEmployeeRepository(),
			appointments: memory.NewAppointmentRepository(services),
			idempotency:  memory.NewIdempotencyStore(),
			dedup:        memory.NewReminderDedup(),
			close:        func(context.Context) {},
		}, nil
	}

	client, db, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		return nil, err
	}
	repos := mongo.NewRepositories(db)
	if err := repos.EnsureIndexes(ctx); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	rdb, err := redis.Connect(ctx, redis.Config{
		URL:      cfg.Redis.URL,
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
	})
	if err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	return &storage{
		users:        repos.Users,
		services:     repos.Services,
		carts:        repos.Carts,
		payments:     repos.Payments,
		employees:    repos.Employees,
		appointments: repos.Appointments,
		idempotency:  redis.NewIdempotencyStore(rdb),
		dedup:        redis.NewReminderDedup(rdb),
		checks:       []handler.DependencyCheck{handler.MongoCheck(db), handler.RedisCheck(rdb)},
		close: func(ctx context.Context) {
			if err := rdb.Close(); err != nil {
				log.Error().Err(err).Msg("redis close")
			}
			if err := client.Disconnect(ctx); err != nil {
				log.Error().Err(err).Msg("mongo disconnect")
			}
		},
	}, nil
}

// notifiers always logs reminders and adds SMS and email when configured.
func notifiers(cfg *config.Config, log zerolog.Logger) []ports.Notifier {
	out := []ports.Notifier{notify.NewLogNotifier(log)}
	if cfg.Twilio.AccountSID != "" {
		out = append(out, notify.NewSMSNotifier(notify.SMSConfig{
			AccountSID: cfg.Twilio.AccountSID,
			AuthToken:  cfg.Twilio.AuthToken,
			From:       cfg.Twilio.From,
		}, log))
	}
	if cfg.SMTP.Host != "" {
		out = append(out, notify.NewEmailNotifier(notify.EmailConfig{
			Host:     cfg.SMTP.Host,
			Port:     cfg.SMTP.Port,
			User:     cfg.SMTP.User,
			Password: cfg.SMTP.Password,
			From:     cfg.SMTP.From,
		}, log))
	}
	return out
}
