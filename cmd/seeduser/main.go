// Command seeduser creates an admin account, or promotes and resets an
// existing one, directly in MongoDB.
//
//	go run ./cmd/seeduser -username admin -email admin@salon.local -password 'change-me-now'
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/sethvargo/go-envconfig"

	"github.com/salonbook/salon-api/internal/core/domain"
	"github.com/salonbook/salon-api/internal/core/ports"
	"github.com/salonbook/salon-api/internal/infrastructure/db/mongo"
	"github.com/salonbook/salon-api/internal/pkg/config"
	"github.com/salonbook/salon-api/pkg/logger"
	"github.com/salonbook/salon-api/pkg/password"
)

const minPasswordLen = 8

type seedInput struct {
	Username string
	Email    string
	Password string
}

// passwordHasher is satisfied by *password.Hasher.
type passwordHasher interface {
	Hash(plaintext string) (string, error)
}

func main() {
	username := flag.String("username", "admin", "admin username")
	email := flag.String("email", "", "admin email address")
	pass := flag.String("password", "", "admin password (min 8 characters)")
	cost := flag.Int("cost", 12, "bcrypt cost")
	flag.Parse()

	log := logger.Init(logger.Options{Level: "info", Pretty: true, Service: "seeduser"})

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatal().Err(err).Msg("failed to read .env")
	}
	var mcfg config.MongoConfig
	if err := envconfig.Process(context.Background(), &mcfg); err != nil {
		log.Fatal().Err(err).Msg("failed to load mongo configuration")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, db, err := mongo.Connect(ctx, mongo.Config{URI: mcfg.URI, Database: mcfg.Database})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongo")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	users := mongo.NewUserRepository(db)
	if err := users.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to ensure user indexes")
	}

	user, created, err := seedAdmin(ctx, users, password.NewHasher(*cost), seedInput{
		Username: *username,
		Email:    *email,
		Password: *pass,
	}, time.Now().UTC(), log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "seeduser: %v\n", err)
		flag.Usage()
		os.Exit(1)
	}
	verb := "updated"
	if created {
		verb = "created"
	}
	fmt.Printf("admin %q (%s) %s\n", user.Username, user.ID, verb)
}

// seedAdmin creates the account when the email is unknown. Otherwise it resets
// the password and grants the admin role, unblocking the account.
func seedAdmin(ctx context.Context, users ports.UserRepository, hasher passwordHasher, in seedInput, now time.Time, log zerolog.Logger) (*domain.User, bool, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = domain.NormalizeEmail(in.Email)
	switch {
	case in.Username == "":
		return nil, false, domain.MissingField("username")
	case in.Email == "":
		return nil, false, domain.MissingField("email")
	case len(in.Password) < minPasswordLen:
		return nil, false, fmt.Errorf("%w: password must have at least %d characters", domain.ErrValidation, minPasswordLen)
	}

	hash, err := hasher.Hash(in.Password)
	if err != nil {
		return nil, false, err
	}

	existing, err := users.FindByEmail(ctx, in.Email)
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		user, err := users.Create(ctx, &domain.User{
			Username:      in.Username,
			Email:         in.Email,
			PasswordHash:  hash,
			Role:          domain.RoleAdmin,
			EmailVerified: true,
			CreatedAt:     now,
			UpdatedAt:     now,
		})
		if err != nil {
			return nil, false, fmt.Errorf("create admin: %w", err)
		}
		log.Info().Str("user_id", user.ID).Msg("admin created")
		return user, true, nil
	case err != nil:
		return nil, false, fmt.Errorf("find admin: %w", err)
	}

	if err := users.UpdatePassword(ctx, existing.ID, hash, now); err != nil {
		return nil, false, fmt.Errorf("reset admin password: %w", err)
	}
	if err := users.SetRole(ctx, existing.ID, domain.RoleAdmin, now); err != nil {
		return nil, false, fmt.Errorf("promote admin: %w", err)
	}
	if existing.Blocked {
		if err := users.SetBlocked(ctx, existing.ID, false, now); err != nil {
			return nil, false, fmt.Errorf("unblock admin: %w", err)
		}
	}
	log.Info().Str("user_id", existing.ID).Msg("admin promoted")
	existing.Role = domain.RoleAdmin
	existing.Blocked = false
	return existing, false, nil
}
