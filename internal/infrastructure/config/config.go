// Package config loads client and server settings from the environment.
package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Identity store backends.
const (
	StoreFile  = "file"
	StoreRedis = "redis"
)

// ClientConfig configures the sign-in / sign-up form host.
type ClientConfig struct {
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	APIBaseURL    string        `env:"AUTH_API_BASE_URL,   default=http://localhost:8080"`
	HTTPTimeout   time.Duration `env:"AUTH_HTTP_TIMEOUT,   default=0s"`
	NavigateDelay time.Duration `env:"AUTH_NAVIGATE_DELAY, default=1s"`
	Destination   string        `env:"AUTH_DESTINATION,    default=/dashboard"`

	IdentityStore string `env:"IDENTITY_STORE, default=file"`
	IdentityFile  string `env:"IDENTITY_FILE"`

	Redis RedisConfig
}

// ServerConfig configures the authentication server.
type ServerConfig struct {
	Port      string        `env:"PORT,      default=8080"`
	Env       string        `env:"ENV,       default=development"`
	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL, default=24h"`
	LogLevel  string        `env:"LOG_LEVEL, default=info"`

	Mongo MongoConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=finance_assistant"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,     default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,       default=0"`
}

// IsDevelopment reports whether human-friendly log output should be used.
func (c *ClientConfig) IsDevelopment() bool { return c.Env == "development" }

// IsDevelopment reports whether human-friendly log output should be used.
func (c *ServerConfig) IsDevelopment() bool { return c.Env == "development" }

// LoadClient reads the client configuration from the process environment.
func LoadClient(ctx context.Context) (*ClientConfig, error) {
	return LoadClientFrom(ctx, envconfig.OsLookuper())
}

// LoadClientFrom reads the client configuration through l.
func LoadClientFrom(ctx context.Context, l envconfig.Lookuper) (*ClientConfig, error) {
	var cfg ClientConfig
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, fmt.Errorf("config: load client configuration: %w", err)
	}
	if cfg.IdentityStore != StoreFile && cfg.IdentityStore != StoreRedis {
		return nil, fmt.Errorf("config: IDENTITY_STORE must be %q or %q, got %q", StoreFile, StoreRedis, cfg.IdentityStore)
	}
	if cfg.NavigateDelay < 0 {
		return nil, fmt.Errorf("config: AUTH_NAVIGATE_DELAY must not be negative")
	}
	return &cfg, nil
}

// LoadServer reads the server configuration from the process environment.
func LoadServer(ctx context.Context) (*ServerConfig, error) {
	return LoadServerFrom(ctx, envconfig.OsLookuper())
}

// LoadServerFrom reads the server configuration through l.
func LoadServerFrom(ctx context.Context, l envconfig.Lookuper) (*ServerConfig, error) {
	var cfg ServerConfig
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, fmt.Errorf("config: load server configuration: %w", err)
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("config: JWT_SECRET is required")
	}
	return &cfg, nil
}
