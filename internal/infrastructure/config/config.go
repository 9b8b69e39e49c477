// Package config provides configuration loading: defaults, an optional
// YAML file, then environment overrides, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the config file read when none is specified.
const DefaultConfigFile = "config.yaml"

// Config holds static infrastructure configuration (read-only after init).
type Config struct {
	HTTP    HTTPConfig    `yaml:"http,omitempty"`
	MongoDB MongoDBConfig `yaml:"mongodb,omitempty"`
	Redis   RedisConfig   `yaml:"redis,omitempty"`
}

// HTTPConfig holds configuration for the HTTP server.
type HTTPConfig struct {
	Addr string `yaml:"addr,omitempty"`
}

// MongoDBConfig holds configuration for the MongoDB connection.
type MongoDBConfig struct {
	URI      string `yaml:"uri,omitempty"`
	Database string `yaml:"database,omitempty"`

	// Pool bounds. The dataset is small and read-only; a tight pool is
	// enough.
	MaxPoolSize     uint64        `yaml:"max_pool_size,omitempty"`
	MinPoolSize     uint64        `yaml:"min_pool_size,omitempty"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time,omitempty"`
}

// RedisConfig holds configuration for the optional Redis cache. An empty
// Addr disables caching.
type RedisConfig struct {
	Addr string        `yaml:"addr,omitempty"`
	TTL  time.Duration `yaml:"ttl,omitempty"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Addr: ":8080",
		},
		MongoDB: MongoDBConfig{
			MaxPoolSize:     10,
			MinPoolSize:     2,
			MaxConnIdleTime: 30 * time.Second,
		},
		Redis: RedisConfig{
			TTL: 5 * time.Minute,
		},
	}
}

// Load builds the configuration: defaults, then the YAML file at path
// when it exists, then environment overrides. A missing file is fine; a
// malformed one is not.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides. Environment
// values win over file values.
func (c *Config) applyEnvOverrides() {
	if uri := os.Getenv("MONGODB_URI"); uri != "" {
		c.MongoDB.URI = uri
	}
	if db := os.Getenv("MONGODB_DB"); db != "" {
		c.MongoDB.Database = db
	}
	if addr := os.Getenv("HTTP_ADDR"); addr != "" {
		c.HTTP.Addr = addr
	}
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		c.Redis.Addr = addr
	}
}

// Validate checks that the required settings are present.
func (c *Config) Validate() error {
	if c.MongoDB.URI == "" {
		return errors.New("MONGODB_URI is required")
	}
	if c.MongoDB.Database == "" {
		return errors.New("MONGODB_DB is required")
	}
	return nil
}

// CacheEnabled reports whether the Redis cache is configured.
func (c *Config) CacheEnabled() bool {
	return c.Redis.Addr != ""
}
