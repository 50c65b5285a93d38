package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const idempotencyTTL = 24 * time.Hour

// IdempotencyStore binds client idempotency keys to the payment they created.
// Key format: idem:payment:<key>
type IdempotencyStore struct {
	client *redis.Client
}

func NewIdempotencyStore(client *redis.Client) *IdempotencyStore {
	return &IdempotencyStore{client: client}
}

func (s *IdempotencyStore) Lookup(ctx context.Context, key string) (string, bool, error) {
	id, err := s.client.Get(ctx, s.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("idempotency lookup: %w", err)
	}
	return id, true, nil
}

// Save uses SET NX so only the first writer binds the key. A key that expires
// between SETNX and GET is claimed again on the next attempt.
func (s *IdempotencyStore) Save(ctx context.Context, key, paymentID string) (string, bool, error) {
	for i := 0; i < 2; i++ {
		ok, err := s.client.SetNX(ctx, s.key(key), paymentID, idempotencyTTL).Result()
		if err != nil {
			return "", false, fmt.Errorf("idempotency save: %w", err)
		}
		if ok {
			return paymentID, true, nil
		}
		existing, found, err := s.Lookup(ctx, key)
		if err != nil {
			return "", false, err
		}
		if found {
			return existing, false, nil
		}
	}
	return "", false, fmt.Errorf("idempotency save: key %q kept expiring", key)
}

func (s *IdempotencyStore) key(key string) string {
	return "idem:payment:" + key
}
