package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"hotel-quote-engine/internal/infra/cache"
	"hotel-quote-engine/internal/pkg/config"
	"hotel-quote-engine/internal/usecase/queries"

	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewQuoteCache,
	),
)

// NewQuoteCache falls back to a no-op cache when REDIS_ADDR is unset. An
// unreachable Redis is logged and tolerated; quotes are then always computed.
func NewQuoteCache(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) queries.QuoteCache {
	if !cfg.Cache.Enabled() {
		logger.Info("quote cache disabled")
		return cache.NoopQuoteCache{}
	}

	client := cache.NewRedisClient(cfg.Cache)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
			defer cancel()
			if err := client.Ping(pingCtx).Err(); err != nil {
				logger.Warn("Redis に接続できません", "addr", cfg.Cache.Addr, "error", err)
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return cache.NewRedisQuoteCache(client, cfg.Cache.QuoteTTL)
}
