package main

import (
	"context"
	"fmt"
	"time"

	"astgym/gym-ai/internal/config"
	"astgym/gym-ai/internal/logger"
	"astgym/gym-ai/internal/repository"
	"astgym/gym-ai/internal/repository/memory"
	"astgym/gym-ai/internal/repository/mongo"
	"astgym/gym-ai/internal/repository/redis"
	"astgym/gym-ai/internal/storage"
)

// openStore builds the configured backend. The returned func releases its connections.
func openStore(ctx context.Context, cfg config.Config, log *logger.Logger) (repository.KeyValueStore, func(), error) {
	noop := func() {}

	switch cfg.Store.Backend {
	case config.BackendMemory:
		log.Warn("Using in-memory store; data is lost on restart")
		return memory.NewKVStore(), noop, nil

	case config.BackendMongo:
		client, err := mongo.ConnectDB(ctx, cfg.Database)
		if err != nil {
			return nil, nil, fmt.Errorf("connecting to MongoDB: %w", err)
		}
		db := client.Database(cfg.Database.Name)
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
			defer cancel()
			if err := mongo.EnsureKVIndexes(ctx, db.Collection(cfg.Database.Collection)); err != nil {
				log.Warn("Failed to create indexes", "collection", cfg.Database.Collection, "error", err)
			}
		}()
		log.Info("Database connection established", "database", cfg.Database.Name)
		return mongo.NewMongoKVRepository(db, cfg.Database.Collection), func() {
			if err := mongo.DisconnectDB(client, cfg.Database.ConnectTimeout); err != nil {
				log.Error("Failed to disconnect MongoDB", "error", err)
			}
		}, nil

	case config.BackendRedis:
		client, err := redis.NewClient(ctx, cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		log.Info("Redis connection established", "addr", cfg.Redis.Addr)
		return redis.NewRedisKVRepository(client, cfg.Redis.KeyPrefix), func() {
			if err := client.Close(); err != nil {
				log.Error("Failed to close Redis client", "error", err)
			}
		}, nil

	case config.BackendS3:
		client, err := storage.NewS3Client(ctx, cfg.S3)
		if err != nil {
			return nil, nil, err
		}
		return storage.NewS3Storage(client, cfg.S3.BucketName, cfg.S3.Prefix, log), noop, nil
	}
	return nil, nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
}
