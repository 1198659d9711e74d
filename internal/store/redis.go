package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// RedisPersistence stores session snapshots as JSON strings in Redis with a
// sliding TTL. Snapshots expire together with the browser session they
// belong to.
type RedisPersistence struct {
	client *redis.Client
	ttl    time.Duration
	logger zerolog.Logger
}

// NewRedisPersistence creates a Redis-backed persistence layer.
func NewRedisPersistence(client *redis.Client, ttl time.Duration, logger zerolog.Logger) *RedisPersistence {
	return &RedisPersistence{
		client: client,
		ttl:    ttl,
		logger: logger.With().Str("persistence", "redis").Logger(),
	}
}

// Load reads the snapshot stored under key into dest.
func (p *RedisPersistence) Load(ctx context.Context, key string, dest interface{}) error {
	data, err := p.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("redis get failed: %w", err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("unmarshal snapshot failed: %w", err)
	}

	// Sliding expiry: a session in active use keeps its state alive. The
	// refresh is best-effort, but a failure means the snapshot keeps its
	// old deadline, so it must be visible in the logs.
	if err := p.client.Expire(ctx, key, p.ttl).Err(); err != nil {
		p.logger.Warn().Err(err).Str("key", key).Msg("failed to refresh snapshot ttl")
	}

	return nil
}

// Save writes value as the snapshot for key.
func (p *RedisPersistence) Save(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal snapshot failed: %w", err)
	}

	if err := p.client.Set(ctx, key, data, p.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

// Delete removes the snapshot for key.
func (p *RedisPersistence) Delete(ctx context.Context, key string) error {
	if err := p.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}
