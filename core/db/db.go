package db

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// DB wraps a redis client. It is the durable store behind the message log,
// the participant bindings and the per-owner credentials.
type DB struct {
	client *redis.Client
}

type Config struct {
	// URL in redis-url form, e.g. "redis://localhost:6379/0".
	URL string
}

// New connects to Redis and verifies the connection with a ping.
func New(ctx context.Context, cfg Config) (*DB, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parsing redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("pinging redis: %w", err)
	}

	return &DB{client: client}, nil
}

// NewWithClient wraps an existing client. Used by tests running against
// an embedded server.
func NewWithClient(client *redis.Client) *DB {
	return &DB{client: client}
}

func (db *DB) Close() error {
	return db.client.Close()
}

// Client exposes the underlying redis client for the store layer.
func (db *DB) Client() *redis.Client {
	return db.client
}
