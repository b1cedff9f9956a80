package config

import (
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the peoplectl configuration loaded from .env files and
// environment variables.
type Config struct {
	BaseURL               string        `mapstructure:"people_base_url"`
	AuthToken             string        `mapstructure:"people_auth_token"`
	LogLevel              string        `mapstructure:"log_level"`
	RetryCount            int           `mapstructure:"retry_count"`
	RequestTimeoutSeconds int64         `mapstructure:"request_timeout_seconds"`
	RequestTimeout        time.Duration `mapstructure:"-"`
}

// Load reads configuration from environment variables, optionally seeded from
// envFile.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		_ = godotenv.Load(envFile)
	}

	v := viper.New()

	v.SetDefault("people_base_url", "http://localhost:3000/people/")
	v.SetDefault("people_auth_token", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("retry_count", 3)
	v.SetDefault("request_timeout_seconds", 30)

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	cfg.RequestTimeout = time.Duration(cfg.RequestTimeoutSeconds) * time.Second

	return &cfg, nil
}

func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.BaseURL, validation.Required, is.URL),
		validation.Field(&c.LogLevel, validation.In("debug", "info", "warn", "warning", "error")),
		validation.Field(&c.RetryCount, validation.Min(0), validation.Max(100)),
		validation.Field(&c.RequestTimeoutSeconds, validation.Required, validation.Min(int64(1))),
	)
}
