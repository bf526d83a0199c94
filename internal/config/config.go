package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// Config holds application level configuration loaded from environment
// variables. JWTSecret deliberately has no default: the signing secret must
// come from the environment and startup fails without it.
type Config struct {
	ServerPort string `env:"PORT,       default=3300"`
	Env        string `env:"ENV,        default=development"`
	LogLevel   string `env:"LOG_LEVEL,  default=info"`
	MySQLDSN   string `env:"MYSQL_DSN,  default=user:password@tcp(localhost:3306)/film_api?charset=utf8mb4&parseTime=True&loc=Local"`
	JWTSecret  string `env:"JWT_SECRET"`

	Redis RedisConfig
}

// RedisConfig configures the optional read cache.
type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR, default=localhost:6379"`
	DB       int    `env:"REDIS_DB,   default=0"`
	Password string `env:"REDIS_PASSWORD"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &cfg, nil
}
