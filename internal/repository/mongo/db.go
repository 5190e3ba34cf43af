package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"astgym/gym-ai/internal/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	appName            = "ast-gym-ai"
	fallbackDBTimeout  = 10 * time.Second
	maxConnectionsIdle = 5 * time.Minute
)

var ErrMissingURI = errors.New("mongo: database uri is empty")

// dbTimeout returns the configured timeout, or the fallback when unset.
func dbTimeout(cfg config.DatabaseConfig) time.Duration {
	if cfg.ConnectTimeout > 0 {
		return cfg.ConnectTimeout
	}
	return fallbackDBTimeout
}

func clientOptions(cfg config.DatabaseConfig) *options.ClientOptions {
	t := dbTimeout(cfg)
	return options.Client().
		ApplyURI(cfg.URI).
		SetAppName(appName).
		SetConnectTimeout(t).
		SetServerSelectionTimeout(t).
		SetMaxConnIdleTime(maxConnectionsIdle)
}

// ConnectDB dials MongoDB and pings the primary. Both steps share one deadline
// derived from ctx and cfg.ConnectTimeout.
func ConnectDB(ctx context.Context, cfg config.DatabaseConfig) (*mongo.Client, error) {
	if cfg.URI == "" {
		return nil, ErrMissingURI
	}

	ctx, cancel := context.WithTimeout(ctx, dbTimeout(cfg))
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions(cfg))
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}

	// Connect is lazy; the ping is what actually reaches the server.
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		disconnectCtx, disconnectCancel := context.WithTimeout(context.Background(), dbTimeout(cfg))
		defer disconnectCancel()
		_ = client.Disconnect(disconnectCtx)
		return nil, fmt.Errorf("ping %s: %w", cfg.Name, err)
	}
	return client, nil
}

// DisconnectDB closes the client, waiting at most timeout for in-flight operations.
func DisconnectDB(client *mongo.Client, timeout time.Duration) error {
	if timeout <= 0 {
		timeout = fallbackDBTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return client.Disconnect(ctx)
}
