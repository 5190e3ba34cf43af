package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Store backends understood by StoreConfig.Backend.
const (
	BackendMemory = "memory"
	BackendMongo  = "mongo"
	BackendRedis  = "redis"
	BackendS3     = "s3"
)

// Config holds all configuration for the application.
// The values are read by Viper from a config file or environment variables.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Log        LogConfig        `mapstructure:"log"`
	Store      StoreConfig      `mapstructure:"store"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Redis      RedisConfig      `mapstructure:"redis"`
	S3         S3Config         `mapstructure:"s3"`
	Gemini     GeminiConfig     `mapstructure:"gemini"`
	Generation GenerationConfig `mapstructure:"generation"`
	Auth       AuthConfig       `mapstructure:"auth"`
}

type ServerConfig struct {
	Address      string        `mapstructure:"address"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"` // must cover a full generation run
}

type LogConfig struct {
	Mode string `mapstructure:"mode"` // "development" or "production"
}

// StoreConfig selects the key-value backend behind the three persistent slots.
type StoreConfig struct {
	Backend string `mapstructure:"backend"`
}

type DatabaseConfig struct {
	URI            string        `mapstructure:"uri"`
	Name           string        `mapstructure:"name"`
	Collection     string        `mapstructure:"collection"`
	ConnectTimeout time.Duration `mapstructure:"connect_timeout"`
}

type RedisConfig struct {
	Addr      string `mapstructure:"addr"`
	Password  string `mapstructure:"password"`
	DB        int    `mapstructure:"db"`
	KeyPrefix string `mapstructure:"key_prefix"`
}

type S3Config struct {
	Endpoint        string `mapstructure:"endpoint"`
	Region          string `mapstructure:"region"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	BucketName      string `mapstructure:"bucket_name"`
	Prefix          string `mapstructure:"prefix"`
	UseSSL          bool   `mapstructure:"use_ssl"`
}

// GeminiConfig configures the generative model used for programs, media search and analysis.
type GeminiConfig struct {
	APIKey          string        `mapstructure:"api_key"`
	Model           string        `mapstructure:"model"`
	GenerateTimeout time.Duration `mapstructure:"generate_timeout"`
	LookupTimeout   time.Duration `mapstructure:"lookup_timeout"`
}

// GenerationConfig holds the tunables of the program pipeline.
type GenerationConfig struct {
	NarrativeThreshold int `mapstructure:"narrative_threshold"`
	MediaBatchSize     int `mapstructure:"media_batch_size"`
	MaxVideoLinks      int `mapstructure:"max_video_links"`
}

// AuthConfig protects the API with a single owner passphrase.
type AuthConfig struct {
	Enabled        bool          `mapstructure:"enabled"`
	Secret         string        `mapstructure:"secret"`
	PassphraseHash string        `mapstructure:"passphrase_hash"` // bcrypt hash
	Expiration     time.Duration `mapstructure:"expiration"`
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// server.address -> SERVER_ADDRESS, gemini.api_key -> GEMINI_API_KEY
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))

	setDefaults(v)

	err = v.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		err = nil // env vars and defaults are enough
	} else if err != nil {
		return
	}

	if err = v.Unmarshal(&config); err != nil {
		return
	}
	if err = config.Validate(); err != nil {
		return
	}
	return config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.address", ":8080")
	v.SetDefault("server.read_timeout", "10s")
	v.SetDefault("server.write_timeout", "3m")
	v.SetDefault("log.mode", "development")

	v.SetDefault("store.backend", BackendMemory)
	v.SetDefault("database.uri", "mongodb://localhost:27017")
	v.SetDefault("database.name", "ast_gym")
	v.SetDefault("database.collection", "kv_store")
	v.SetDefault("database.connect_timeout", "10s")
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.key_prefix", "astgym:")
	// Every key needs a default so AutomaticEnv can feed Unmarshal.
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.access_key_id", "")
	v.SetDefault("s3.secret_access_key", "")
	v.SetDefault("s3.bucket_name", "")
	v.SetDefault("s3.use_ssl", true)
	v.SetDefault("s3.prefix", "astgym")

	v.SetDefault("gemini.api_key", "")
	v.SetDefault("gemini.model", "gemini-3-flash-preview")
	v.SetDefault("gemini.generate_timeout", "90s")
	v.SetDefault("gemini.lookup_timeout", "20s")

	v.SetDefault("generation.narrative_threshold", 50)
	v.SetDefault("generation.media_batch_size", 3)
	v.SetDefault("generation.max_video_links", 2)

	v.SetDefault("auth.enabled", false)
	v.SetDefault("auth.secret", "")
	v.SetDefault("auth.passphrase_hash", "")
	v.SetDefault("auth.expiration", "24h")
}

// Validate checks the combinations viper cannot express.
func (c Config) Validate() error {
	switch c.Store.Backend {
	case BackendMemory, BackendMongo, BackendRedis:
	case BackendS3:
		if c.S3.BucketName == "" {
			return errors.New("s3.bucket_name is required for the s3 store backend")
		}
	default:
		return fmt.Errorf("unknown store.backend %q", c.Store.Backend)
	}
	if c.Generation.MediaBatchSize <= 0 {
		return errors.New("generation.media_batch_size must be positive")
	}
	if c.Generation.MaxVideoLinks < 0 {
		return errors.New("generation.max_video_links cannot be negative")
	}
	if c.Auth.Enabled && (c.Auth.Secret == "" || c.Auth.PassphraseHash == "") {
		return errors.New("auth.secret and auth.passphrase_hash are required when auth is enabled")
	}
	return nil
}
