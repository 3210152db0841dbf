package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"hotel-quote-engine/internal/domain/pricing"
	"hotel-quote-engine/internal/pkg/config"
	"hotel-quote-engine/internal/pkg/errs"

	"github.com/go-redis/redis/v8"
)

const keyPrefix = "hotel-quote:"

// RedisQuoteCache stores price breakdowns as JSON under a TTL.
type RedisQuoteCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisClient(cfg config.CacheConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

func NewRedisQuoteCache(client *redis.Client, ttl time.Duration) *RedisQuoteCache {
	return &RedisQuoteCache{client: client, ttl: ttl}
}

// Get reports a miss with (nil, false, nil).
func (c *RedisQuoteCache) Get(ctx context.Context, key string) (*pricing.PriceBreakdown, bool, error) {
	raw, err := c.client.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, errs.Wrap(err, "failed to read quote cache")
	}

	var b pricing.PriceBreakdown
	if err := json.Unmarshal(raw, &b); err != nil {
		return nil, false, errs.Wrap(err, "failed to decode cached quote")
	}
	return &b, true, nil
}

func (c *RedisQuoteCache) Set(ctx context.Context, key string, b *pricing.PriceBreakdown) error {
	raw, err := json.Marshal(b)
	if err != nil {
		return errs.Wrap(err, "failed to encode quote")
	}
	if err := c.client.Set(ctx, keyPrefix+key, raw, c.ttl).Err(); err != nil {
		return errs.Wrap(err, "failed to write quote cache")
	}
	return nil
}

// NoopQuoteCache is used when Redis is not configured.
type NoopQuoteCache struct{}

func (NoopQuoteCache) Get(context.Context, string) (*pricing.PriceBreakdown, bool, error) {
	return nil, false, nil
}

func (NoopQuoteCache) Set(context.Context, string, *pricing.PriceBreakdown) error { return nil }
