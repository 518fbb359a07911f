package database

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// RedisHandle owns the ephemeral-store connection. Unreachability here is
// not fatal: the cache layer degrades to its in-process fallback.
type RedisHandle struct {
	client *redis.Client
}

// OpenRedis creates the client. Connection establishment is lazy; call
// HealthCheck to verify reachability.
func OpenRedis(addr, password string, db int) *RedisHandle {
	return &RedisHandle{
		client: redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db}),
	}
}

// Client returns the underlying client.
func (h *RedisHandle) Client() *redis.Client { return h.client }

// HealthCheck reports ephemeral-store reachability.
func (h *RedisHandle) HealthCheck(ctx context.Context) error {
	return h.client.Ping(ctx).Err()
}

// Close releases the connection.
func (h *RedisHandle) Close() error {
	return h.client.Close()
}
