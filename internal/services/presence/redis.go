package presence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mcoot/snakearcade-go/internal/model"
)

// Key prefix for all active-player snapshots
const keyPrefix = "snakearcade:active"

func playerKey(id string) string {
	return fmt.Sprintf("%s:%s", keyPrefix, id)
}

// RedisConfig holds Redis connection settings for the snapshot source
type RedisConfig struct {
	// URL is the Redis connection URL (e.g., redis://localhost:6379)
	URL string

	// Pool settings
	PoolSize     int
	MinIdleConns int
}

// DefaultRedisConfig returns sensible defaults for Redis configuration
func DefaultRedisConfig() RedisConfig {
	return RedisConfig{
		URL:          "redis://localhost:6379",
		PoolSize:     10,
		MinIdleConns: 2,
	}
}

// RedisSource reads active-player snapshots published to Redis by the
// session driver. Each player is a JSON blob under playerKey(id); the
// driver sets a TTL so stale sessions expire on their own.
type RedisSource struct {
	client *redis.Client
}

// Ensure RedisSource implements Source
var _ Source = (*RedisSource)(nil)

// NewRedisSource connects to Redis and verifies the connection
func NewRedisSource(cfg RedisConfig) (*RedisSource, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &RedisSource{client: client}, nil
}

// NewRedisSourceWithClient creates a source over an existing client (for testing)
func NewRedisSourceWithClient(client *redis.Client) *RedisSource {
	return &RedisSource{client: client}
}

// Close closes the Redis connection
func (r *RedisSource) Close() error {
	return r.client.Close()
}

func (r *RedisSource) List(ctx context.Context) ([]*model.ActivePlayer, error) {
	var players []*model.ActivePlayer

	iter := r.client.Scan(ctx, 0, keyPrefix+":*", 0).Iterator()
	for iter.Next(ctx) {
		data, err := r.client.Get(ctx, iter.Val()).Bytes()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				// Expired between SCAN and GET; snapshot reads are
				// point-in-time anyway.
				continue
			}
			return nil, err
		}

		var player model.ActivePlayer
		if err := json.Unmarshal(data, &player); err != nil {
			return nil, err
		}
		players = append(players, &player)
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}

	return players, nil
}

func (r *RedisSource) Get(ctx context.Context, id string) (*model.ActivePlayer, error) {
	data, err := r.client.Get(ctx, playerKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotActive
		}
		return nil, err
	}

	var player model.ActivePlayer
	if err := json.Unmarshal(data, &player); err != nil {
		return nil, err
	}
	return &player, nil
}
