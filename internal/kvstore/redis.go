package kvstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisConfig holds configuration for the Redis store
type RedisConfig struct {
	// Redis client
	RedisClient *redis.Client
}

// redisStore implements the Store interface using Redis
type redisStore struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed store
func NewRedis(cfg *RedisConfig) (*redisStore, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisStore{
		client: cfg.RedisClient,
	}, nil
}

// Get retrieves a value from Redis
func (r *redisStore) Get(ctx context.Context, key string) (string, error) {
	value, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to get %s: %w", key, err)
	}

	return value, nil
}

// Set stores a value in Redis
func (r *redisStore) Set(ctx context.Context, key, value string) error {
	// No expiration, aggregates live until explicitly reset
	if err := r.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}

	return nil
}

// Remove deletes a key from Redis
func (r *redisStore) Remove(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to remove %s: %w", key, err)
	}

	return nil
}
