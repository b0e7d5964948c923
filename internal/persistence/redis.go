package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/driver-registry/internal/config"
)

const workbookKey = "driver-registry:workbook"

// Redis wraps the go-redis client. The client is optional: without it each
// replica downloads the workbook for itself.
type Redis struct {
	Client *redis.Client
}

// NewRedis connects to Redis when an address is configured.
func NewRedis(cfg config.RedisConfig, logger *zap.Logger) *Redis {
	if cfg.Addr == "" {
		logger.Warn("REDIS_ADDR not provided; shared workbook cache disabled")
		return &Redis{Client: nil}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		logger.Warn("unable to reach redis", zap.Error(err))
	} else {
		logger.Info("connected to redis")
	}

	return &Redis{Client: client}
}

// Close closes the client.
func (r *Redis) Close() {
	if r != nil && r.Client != nil {
		_ = r.Client.Close()
	}
}

// Ping verifies Redis connectivity.
func (r *Redis) Ping(ctx context.Context) error {
	if r == nil || r.Client == nil {
		return errors.New("redis client not configured")
	}
	return r.Client.Ping(ctx).Err()
}

// Enabled reports whether a client is configured.
func (r *Redis) Enabled() bool {
	return r != nil && r.Client != nil
}

// WorkbookCache shares fetched workbook bytes between replicas, expiring with
// the document TTL. It satisfies source.ByteCache.
type WorkbookCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewWorkbookCache builds the byte cache; returns nil when Redis is disabled.
func NewWorkbookCache(r *Redis, ttl time.Duration) *WorkbookCache {
	if !r.Enabled() || ttl <= 0 {
		return nil
	}
	return &WorkbookCache{client: r.Client, ttl: ttl}
}

// Get returns cached bytes, or (nil, nil) on a miss.
func (w *WorkbookCache) Get(ctx context.Context) ([]byte, error) {
	data, err := w.client.Get(ctx, workbookKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Set stores bytes with the configured TTL.
func (w *WorkbookCache) Set(ctx context.Context, data []byte) error {
	return w.client.Set(ctx, workbookKey, data, w.ttl).Err()
}
