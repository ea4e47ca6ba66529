package storage

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"meteorenard.app/internal/ports"
	"meteorenard.app/pkg/errors"
)

// RedisStore implements KeyValueStore port using Redis. Keys never expire.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore connects to Redis and verifies the connection
func NewRedisStore(config *ports.RedisConfig) (*RedisStore, error) {
	if config == nil {
		return nil, errors.NewConfigurationError("redis config cannot be nil", nil)
	}

	client := redis.NewClient(&redis.Options{
		Addr:         config.Addr,
		Password:     config.Password,
		DB:           config.DB,
		DialTimeout:  time.Duration(config.DialTimeout) * time.Second,
		ReadTimeout:  time.Duration(config.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(config.WriteTimeout) * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.NewStorageError("failed to connect to Redis", err)
	}

	return &RedisStore{
		client: client,
		prefix: config.KeyPrefix,
	}, nil
}

func (r *RedisStore) key(key string) string {
	return r.prefix + key
}

func (r *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, errors.NewValidationError("store key cannot be empty")
	}

	val, err := r.client.Get(ctx, r.key(key)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NewNotFoundError("key not found")
		}
		return nil, errors.NewStorageError("redis get operation failed", err)
	}
	return val, nil
}

func (r *RedisStore) Set(ctx context.Context, key string, value []byte) error {
	if key == "" {
		return errors.NewValidationError("store key cannot be empty")
	}
	if value == nil {
		return errors.NewValidationError("store value cannot be nil")
	}

	if err := r.client.Set(ctx, r.key(key), value, 0).Err(); err != nil {
		return errors.NewStorageError("redis set operation failed", err)
	}
	return nil
}

func (r *RedisStore) Delete(ctx context.Context, key string) error {
	if key == "" {
		return errors.NewValidationError("store key cannot be empty")
	}

	if err := r.client.Del(ctx, r.key(key)).Err(); err != nil {
		return errors.NewStorageError("redis delete operation failed", err)
	}
	return nil
}

func (r *RedisStore) Exists(ctx context.Context, key string) (bool, error) {
	if key == "" {
		return false, errors.NewValidationError("store key cannot be empty")
	}

	count, err := r.client.Exists(ctx, r.key(key)).Result()
	if err != nil {
		return false, errors.NewStorageError("redis exists operation failed", err)
	}
	return count > 0, nil
}

// Ping checks if Redis connection is alive
func (r *RedisStore) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return errors.NewStorageError("redis ping failed", err)
	}
	return nil
}

// Close closes the Redis client connection
func (r *RedisStore) Close() error {
	if err := r.client.Close(); err != nil {
		return errors.NewStorageError("failed to close Redis connection", err)
	}
	return nil
}
