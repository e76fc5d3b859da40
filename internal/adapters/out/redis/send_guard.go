// Package redis keeps short-lived coordination keys in Redis.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// KeySendOrder is idem:order:send:{key}; the caller picks the key.
	KeySendOrder = "idem:order:send:%s"

	DefaultSendGuardTTL = 24 * time.Hour
)

// NewClient returns a client for addr with the package's default timeouts.
func NewClient(addr string) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         addr,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
	})
}

// SendGuard claims one key per sent order with SETNX so that a retried or
// double-submitted send is detected. Claims expire after ttl.
type SendGuard struct {
	rdb redis.UniversalClient
	ttl time.Duration
}

func NewSendGuard(rdb redis.UniversalClient, ttl time.Duration) *SendGuard {
	if ttl <= 0 {
		ttl = DefaultSendGuardTTL
	}
	return &SendGuard{rdb: rdb, ttl: ttl}
}

func (g *SendGuard) Acquire(ctx context.Context, key string) (bool, error) {
	ok, err := g.rdb.SetNX(ctx, fmt.Sprintf(KeySendOrder, key), time.Now().UTC().Format(time.RFC3339), g.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("acquire send guard %q: %w", key, err)
	}
	return ok, nil
}

func (g *SendGuard) Release(ctx context.Context, key string) error {
	if err := g.rdb.Del(ctx, fmt.Sprintf(KeySendOrder, key)).Err(); err != nil {
		return fmt.Errorf("release send guard %q: %w", key, err)
	}
	return nil
}
