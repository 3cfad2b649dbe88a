// Package cache provides the Redis connection used for user preferences.
package cache

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/budget-tracker/backend/config"
)

// NewRedisClient creates a Redis client from cfg. Password and DB override the
// values carried in the URL when set.
// The connection is verified with a ping, but an unreachable server is not
// fatal: the client reconnects on demand.
func NewRedisClient(cfg *config.RedisConfig) (*redis.Client, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}
	if cfg.Password != "" {
		opts.Password = cfg.Password
	}
	if cfg.DB != 0 {
		opts.DB = cfg.DB
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		slog.Warn("Redis is unreachable, currency preferences fall back to the default",
			"addr", opts.Addr,
			"error", err,
		)
	} else {
		slog.Info("Redis connection established", "addr", opts.Addr, "db", opts.DB)
	}

	return client, nil
}
