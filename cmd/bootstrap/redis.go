package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"hotel-admin/internal/infra/revocation"
	"hotel-admin/internal/pkg/config"
	"hotel-admin/internal/usecase/shared"

	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRevocationStore,
	),
)

// NewRevocationStore falls back to process memory when Redis is not configured or not reachable.
func NewRevocationStore(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) shared.TokenRevocationStore {
	if cfg.Redis.Address == "" {
		logger.Info("REDIS_ADDR not set, keeping token revocations in memory")
		return revocation.NewMemoryStore()
	}

	client := revocation.NewRedisClient(cfg.Redis)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := revocation.Ping(ctx, client); err != nil {
		logger.Warn("Redis unavailable, keeping token revocations in memory", "error", err)
		_ = client.Close()
		return revocation.NewMemoryStore()
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})
	logger.Info("connected to Redis", "address", cfg.Redis.Address)
	return revocation.NewRedisStore(client)
}
