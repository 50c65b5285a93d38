package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
	"github.com/shopspring/decimal"

	"github.com/salonbook/salon-api/internal/core/domain"
)

const (
	StorageMongo  = "mongo"
	StorageMemory = "memory"
)

type Config struct {
	Port      string        `env:"PORT,        default=8080"`
	Env       string        `env:"ENV,         default=development"`
	LogLevel  string        `env:"LOG_LEVEL,   default=info"`
	JWTSecret string        `env:"JWT_SECRET,  required"`
	TokenTTL  time.Duration `env:"TOKEN_TTL,   default=1h"`

	BcryptCost     int    `env:"BCRYPT_COST,      default=10"`
	StorageDriver  string `env:"STORAGE_DRIVER,   default=mongo"`
	LoginRateLimit int    `env:"LOGIN_RATE_LIMIT, default=10"`

	// DiscountCodes maps a code to the flat amount it takes off a cart,
	// written as CODE:AMOUNT pairs separated by commas.
	DiscountCodes map[string]string `env:"DISCOUNT_CODES, default=SAVE10:10"`

	Mongo     MongoConfig
	Redis     RedisConfig
	Reminders ReminderConfig
	Twilio    TwilioConfig
	SMTP      SMTPConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=salon"`
}

// RedisConfig takes either REDIS_URL or the discrete address fields.
type RedisConfig struct {
	URL      string `env:"REDIS_URL"`
	Addr     string `env:"REDIS_ADDR,      default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,        default=0"`
	PoolSize int    `env:"REDIS_POOL_SIZE"`
}

type ReminderConfig struct {
	Workers int    `env:"REMINDER_WORKERS, default=4"`
	Cron    string `env:"REMINDER_CRON,    default=0 9 * * *"`
}

// TwilioConfig enables SMS reminders when AccountSID is set.
type TwilioConfig struct {
	AccountSID string `env:"TWILIO_ACCOUNT_SID"`
	AuthToken  string `env:"TWILIO_AUTH_TOKEN"`
	From       string `env:"TWILIO_PHONE_NUMBER"`
}

// SMTPConfig enables email reminders when Host is set.
type SMTPConfig struct {
	Host     string `env:"SMTP_HOST"`
	Port     int    `env:"SMTP_PORT,     default=587"`
	User     string `env:"SMTP_USER"`
	Password string `env:"SMTP_PASSWORD"`
	From     string `env:"SMTP_FROM"`
}

// Load reads an optional .env file, then the process environment. It panics on
// invalid configuration.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(fmt.Sprintf("config: failed to read .env: %v", err))
	}
	cfg, err := Process(context.Background(), envconfig.OsLookuper())
	if err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return cfg
}

// Process resolves configuration from lookuper and validates it.
func Process(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.StorageDriver {
	case StorageMongo, StorageMemory:
	default:
		return fmt.Errorf("STORAGE_DRIVER must be %q or %q, got %q", StorageMongo, StorageMemory, c.StorageDriver)
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("TOKEN_TTL must be positive, got %s", c.TokenTTL)
	}
	if c.LoginRateLimit <= 0 {
		return fmt.Errorf("LOGIN_RATE_LIMIT must be positive, got %d", c.LoginRateLimit)
	}
	_, err := c.Discounts()
	return err
}

func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(c.Env, "development")
}

// Discounts parses DiscountCodes into the cart's rule set.
func (c *Config) Discounts() (domain.StaticDiscounts, error) {
	out := make(domain.StaticDiscounts, len(c.DiscountCodes))
	for code, raw := range c.DiscountCodes {
		amount, err := decimal.NewFromString(strings.TrimSpace(raw))
		if err != nil || amount.IsNegative() {
			return nil, fmt.Errorf("DISCOUNT_CODES: invalid amount %q for %s", raw, code)
		}
		out[strings.TrimSpace(code)] = amount
	}
	return out, nil
}
