package config

import (
	"fmt"
	"time"

	"insect_duel/internal/logger"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	AppPort       string `env:"APP_PORT" envDefault:"8080"`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`
	LogJSON       bool   `env:"LOG_JSON" envDefault:"false"`
	DefaultLocale string `env:"DEFAULT_LOCALE" envDefault:"zh"`

	// Rate limiter store. Empty address keeps the limiter in memory.
	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	APIRateLimit         int `env:"API_RATE_LIMIT" envDefault:"120"`
	APIRateWindowSeconds int `env:"API_RATE_WINDOW_SECONDS" envDefault:"60"`

	ShutdownTimeoutSeconds int `env:"SHUTDOWN_TIMEOUT_SECONDS" envDefault:"10"`
}

// Load reads .env (if any) and the process environment. Invalid values stop the process.
func Load() *Config {
	_ = godotenv.Load()

	cfg, err := Parse()
	if err != nil {
		logger.Fatal("invalid configuration", "error", err)
	}
	return cfg
}

// Parse reads the configuration from the environment without touching .env.
func Parse() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.AppPort == "" {
		return fmt.Errorf("APP_PORT must not be empty")
	}
	if c.APIRateLimit <= 0 {
		return fmt.Errorf("API_RATE_LIMIT must be positive, got %d", c.APIRateLimit)
	}
	if c.APIRateWindowSeconds <= 0 {
		return fmt.Errorf("API_RATE_WINDOW_SECONDS must be positive, got %d", c.APIRateWindowSeconds)
	}
	if c.ShutdownTimeoutSeconds <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT_SECONDS must be positive, got %d", c.ShutdownTimeoutSeconds)
	}
	return nil
}

func (c *Config) APIRateWindow() time.Duration {
	return time.Duration(c.APIRateWindowSeconds) * time.Second
}

func (c *Config) ShutdownTimeout() time.Duration {
	return time.Duration(c.ShutdownTimeoutSeconds) * time.Second
}
