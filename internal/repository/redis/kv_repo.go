// Package redis stores the slots as plain Redis strings under a key prefix.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"astgym/gym-ai/internal/config"
	"astgym/gym-ai/internal/repository"

	goredis "github.com/redis/go-redis/v9"
)

type redisKVRepository struct {
	client *goredis.Client
	prefix string
}

// NewClient connects to Redis and pings it once.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", cfg.Addr, err)
	}
	return client, nil
}

func NewRedisKVRepository(client *goredis.Client, prefix string) repository.KeyValueStore {
	return &redisKVRepository{client: client, prefix: prefix}
}

func (r *redisKVRepository) key(k string) string {
	return r.prefix + k
}

func (r *redisKVRepository) Get(ctx context.Context, key string) ([]byte, error) {
	v, err := r.client.Get(ctx, r.key(key)).Bytes()
	if err != nil {
		return nil, mapGetError(err)
	}
	return v, nil
}

// mapGetError turns redis.Nil (missing key) into repository.ErrNotFound.
func mapGetError(err error) error {
	if errors.Is(err, goredis.Nil) {
		return repository.ErrNotFound
	}
	return err
}

// Set writes without expiry; the slots live until cleared.
func (r *redisKVRepository) Set(ctx context.Context, key string, value []byte) error {
	return r.client.Set(ctx, r.key(key), value, 0).Err()
}

func (r *redisKVRepository) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, r.key(key)).Err()
}
