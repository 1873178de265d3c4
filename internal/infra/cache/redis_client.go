package cache

import (
	"context"
	"log/slog"

	"outside/config"
	"outside/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// RedisParams holds dependencies for NewRedisClient.
type RedisParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    *config.Config
	Logger    *slog.Logger
}

// NewRedisClient connects to Redis when it is enabled. It returns a nil
// client otherwise, which selects the no-op revocation store.
func NewRedisClient(params RedisParams) (*redis.Client, error) {
	redisCfg := params.Config.Redis
	if redisCfg == nil || !redisCfg.Enabled {
		params.Logger.Info("Redis disabled, token revocation is not persisted")

		return nil, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     redisCfg.Addr,
		Password: redisCfg.Password,
		DB:       redisCfg.DB,
	})

	params.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := rdb.Ping(ctx).Err(); err != nil {
				params.Logger.Error("Redis connection failed", slog.String("address", redisCfg.Addr), slog.Any("error", err))

				return errors.Wrap(err, "failed to ping redis")
			}
			params.Logger.Info("Redis connection successful", slog.String("address", redisCfg.Addr))

			return nil
		},
		OnStop: func(ctx context.Context) error {
			return rdb.Close()
		},
	})

	return rdb, nil
}
