package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// DefaultJWTSecret is the development fallback. Anything outside
// development must override it.
const DefaultJWTSecret = "change-me"

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Database DatabaseConfig
	JWT      JWTConfig
}

type DatabaseConfig struct {
	URL     string `env:"DATABASE_URL, default=sqlite://./pos.db"`
	MongoDB string `env:"MONGO_DB,     default=pos"`
	Debug   bool   `env:"DB_DEBUG,     default=false"`
}

type JWTConfig struct {
	Secret        string `env:"JWT_SECRET,     default=change-me"`
	Algorithm     string `env:"JWT_ALG,        default=HS256"`
	ExpireMinutes int    `env:"JWT_EXPIRE_MIN, default=1440"`
	BcryptCost    int    `env:"BCRYPT_COST,    default=10"`
}

// TTL is the bearer token lifetime.
func (c JWTConfig) TTL() time.Duration {
	return time.Duration(c.ExpireMinutes) * time.Minute
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	return load(ctx, envconfig.OsLookuper())
}

func load(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if cfg.JWT.ExpireMinutes <= 0 {
		return nil, fmt.Errorf("config: JWT_EXPIRE_MIN must be positive, got %d", cfg.JWT.ExpireMinutes)
	}
	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("config: JWT_SECRET must not be empty")
	}
	return &cfg, nil
}
