package mongo

import (
	"context"
	"testing"
	"time"

	"astgym/gym-ai/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientOptions_UsesConfiguredTimeout(t *testing.T) {
	opts := clientOptions(config.DatabaseConfig{URI: "mongodb://db.internal:27017", ConnectTimeout: 3 * time.Second})

	require.NotNil(t, opts.ConnectTimeout)
	assert.Equal(t, 3*time.Second, *opts.ConnectTimeout)
	require.NotNil(t, opts.ServerSelectionTimeout)
	assert.Equal(t, 3*time.Second, *opts.ServerSelectionTimeout)
	require.NotNil(t, opts.AppName)
	assert.Equal(t, appName, *opts.AppName)
	assert.Equal(t, []string{"db.internal:27017"}, opts.Hosts)
}

func TestClientOptions_FallbackTimeout(t *testing.T) {
	opts := clientOptions(config.DatabaseConfig{URI: "mongodb://localhost:27017"})
	require.NotNil(t, opts.ConnectTimeout)
	assert.Equal(t, fallbackDBTimeout, *opts.ConnectTimeout)
}

func TestConnectDB_MissingURI(t *testing.T) {
	_, err := ConnectDB(context.Background(), config.DatabaseConfig{Name: "ast_gym"})
	assert.ErrorIs(t, err, ErrMissingURI)
}
