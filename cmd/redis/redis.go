package redisclient

import (
	"context"
	"fmt"
	"time"

	"github.com/muhammadheryan/drims/cmd/config"
	"github.com/muhammadheryan/drims/utils/logger"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

var client *redis.Client

// New connects the shared client. With REDIS_ENABLED=false it stays nil, which turns sessions and
// the catalog cache into no-ops.
func New(cfg *config.Config) error {
	if cfg == nil {
		return fmt.Errorf("nil config provided")
	}
	if !cfg.Redis.Enabled {
		logger.Warn("redis disabled, running without cache")
		return nil
	}

	addr := fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port)
	c := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     cfg.Redis.PoolSize,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  time.Second,
		WriteTimeout: time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := c.Ping(ctx).Err(); err != nil {
		_ = c.Close()
		return fmt.Errorf("unable to ping redis at %s: %w", addr, err)
	}

	client = c
	logger.Info("redis connected", zap.String("addr", addr), zap.Int("db", cfg.Redis.DB))
	return nil
}

func Get() *redis.Client {
	return client
}

func Close() error {
	if client == nil {
		return nil
	}
	return client.Close()
}
