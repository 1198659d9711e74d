package integration

import (
	"context"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/testcontainers/testcontainers-go/modules/redis"
)

// TestRedis represents a Redis test instance.
type TestRedis struct {
	Container *redis.RedisContainer
	Client    *goredis.Client
}

// SetupTestRedis creates a Redis test container and a connected client.
func SetupTestRedis(t *testing.T) *TestRedis {
	t.Helper()

	ctx := context.Background()

	redisContainer, err := redis.Run(ctx, "redis:7-alpine")
	if err != nil {
		t.Fatalf("failed to start redis container: %v", err)
	}

	connStr, err := redisContainer.ConnectionString(ctx)
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	opts, err := goredis.ParseURL(connStr)
	if err != nil {
		t.Fatalf("failed to parse connection string: %v", err)
	}

	client := goredis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		t.Fatalf("failed to ping redis: %v", err)
	}

	t.Cleanup(func() {
		client.Close()
		if err := redisContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	return &TestRedis{
		Container: redisContainer,
		Client:    client,
	}
}

// FlushRedis removes all keys between test cases.
func FlushRedis(t *testing.T, client *goredis.Client) {
	t.Helper()

	if err := client.FlushAll(context.Background()).Err(); err != nil {
		t.Logf("failed to flush redis: %v", err)
	}
}
