package config

import (
	"fmt"
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	BindIP   string `env:"BIND_IP" envDefault:"0.0.0.0"`
	BindPort int    `env:"BIND_PORT" envDefault:"8080"`

	DatabaseURL string `env:"DATABASE_URL" envDefault:"host=localhost user=postgres password=postgres dbname=pubfeed port=5432 sslmode=disable"`

	SecretKey                string `env:"SECRET_KEY" envDefault:"secret_key_change_me"`
	Algorithm                string `env:"ALGORITHM" envDefault:"HS256"`
	AccessTokenExpireMinutes int    `env:"ACCESS_TOKEN_EXPIRE_MINUTES" envDefault:"30"`

	APIPrefix   string `env:"API_PREFIX" envDefault:"/api"`
	APIV1Prefix string `env:"API_V1_PREFIX" envDefault:"/v1"`

	RedisHost        string `env:"REDIS_HOST" envDefault:"localhost"`
	RedisPort        int    `env:"REDIS_PORT" envDefault:"6379"`
	RedisPassword    string `env:"REDIS_PASSWORD" envDefault:""`
	RedisCachePrefix string `env:"REDIS_CACHE_PREFIX" envDefault:"publication"`
	RedisExpireTime  int    `env:"REDIS_EXPIRE_TIME" envDefault:"60"` // seconds
}

// Load reads the .env file if present, then parses the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, finding env vars from system")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.BindIP, c.BindPort)
}

func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.RedisHost, c.RedisPort)
}

func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.RedisExpireTime) * time.Second
}

func (c *Config) TokenExpiry() time.Duration {
	return time.Duration(c.AccessTokenExpireMinutes) * time.Minute
}
