package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultTimeout = 5 * time.Second

// Config describes the Redis that backs payment idempotency keys and reminder
// deduplication. URL, when set, wins over Addr, Password and DB.
type Config struct {
	URL      string
	Addr     string
	Password string
	DB       int
	PoolSize int
	Timeout  time.Duration
}

func (c Config) options() (*redis.Options, error) {
	var opts *redis.Options
	if c.URL != "" {
		parsed, err := redis.ParseURL(c.URL)
		if err != nil {
			return nil, fmt.Errorf("redis url: %w", err)
		}
		opts = parsed
	} else {
		opts = &redis.Options{Addr: c.Addr, Password: c.Password, DB: c.DB}
	}
	if c.PoolSize > 0 {
		opts.PoolSize = c.PoolSize
	}
	return opts, nil
}

// Connect builds the client and pings it, giving up after cfg.Timeout
// (defaultTimeout when unset).
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	opts, err := cfg.options()
	if err != nil {
		return nil, err
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	client := redis.NewClient(opts)
	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", opts.Addr, err)
	}
	return client, nil
}
