package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MikeRez0/dropshop/internal/adapter/config"
	"github.com/redis/go-redis/v9"
)

// key for the order created under an idempotency key
const keyIdemOrderCreate = "idem:order:create:%s"

const defaultTTL = 24 * time.Hour

// IdempotencyCache remembers which order an idempotency key produced.
// The database stays authoritative; entries only save a lookup.
type IdempotencyCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewIdempotencyCache(ctx context.Context, conf *config.Redis) (*IdempotencyCache, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         conf.Addr,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  500 * time.Millisecond,
		WriteTimeout: 500 * time.Millisecond,
	})

	err := rdb.Ping(ctx).Err()
	if err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return newIdempotencyCache(rdb, conf.TTL), nil
}

func newIdempotencyCache(rdb *redis.Client, ttl time.Duration) *IdempotencyCache {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &IdempotencyCache{rdb: rdb, ttl: ttl}
}

func (c *IdempotencyCache) Get(ctx context.Context, key string) (int64, bool, error) {
	id, err := c.rdb.Get(ctx, fmt.Sprintf(keyIdemOrderCreate, key)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, false, nil
		}
		return 0, false, err
	}
	return id, true, nil
}

// Put keeps the first order stored for a key.
func (c *IdempotencyCache) Put(ctx context.Context, key string, orderID int64) error {
	return c.rdb.SetNX(ctx, fmt.Sprintf(keyIdemOrderCreate, key), orderID, c.ttl).Err()
}

func (c *IdempotencyCache) Close() error {
	return c.rdb.Close()
}
