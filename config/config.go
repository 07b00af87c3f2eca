package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Swapflow   SwapflowConfig   `yaml:"swapflow"`
	API        APIConfig        `yaml:"api"`
	Validation ValidationConfig `yaml:"validation"`
	Stream     StreamConfig     `yaml:"stream"`
	Logging    LoggingConfig    `yaml:"logging"`
}

type SwapflowConfig struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
}

type APIConfig struct {
	BaseURL        string               `yaml:"base_url"`
	AccessKey      string               `yaml:"access_key"`
	SecretKey      string               `yaml:"secret_key"`
	Timeout        time.Duration        `yaml:"timeout"`
	ConnectionPool ConnectionPoolConfig `yaml:"connection_pool"`
	RateLimit      RateLimitConfig      `yaml:"rate_limit"`
}

type ConnectionPoolConfig struct {
	MaxIdleConns    int           `yaml:"max_idle_conns"`
	MaxConnsPerHost int           `yaml:"max_conns_per_host"`
	IdleConnTimeout time.Duration `yaml:"idle_conn_timeout"`
}

type RateLimitConfig struct {
	RequestsPerSecond int `yaml:"requests_per_second"`
	BurstSize         int `yaml:"burst_size"`
}

type ValidationConfig struct {
	EnablePriceValidation bool `yaml:"enable_price_validation"`
}

type StreamConfig struct {
	Enabled           bool          `yaml:"enabled"`
	URL               string        `yaml:"url"`
	ReadTimeout       time.Duration `yaml:"read_timeout"`
	ReadMessageBuffer int           `yaml:"read_message_buffer"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Output string `yaml:"output"`
	MaxAge int    `yaml:"max_age"`
}

const (
	accessKeyEnvVar = "HUOBI_ACCESS_KEY"
	secretKeyEnvVar = "HUOBI_SECRET_KEY"
)

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := Config{
		API: APIConfig{
			Timeout: 10 * time.Second,
			RateLimit: RateLimitConfig{
				RequestsPerSecond: 10,
				BurstSize:         1,
			},
		},
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Credentials come from the environment when present; the yaml values
	// only serve local development.
	if v := os.Getenv(accessKeyEnvVar); v != "" {
		config.API.AccessKey = strings.TrimSpace(v)
	}
	if v := os.Getenv(secretKeyEnvVar); v != "" {
		config.API.SecretKey = strings.TrimSpace(v)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Swapflow.Name == "" {
		return fmt.Errorf("swapflow.name is required")
	}

	if cfg.Swapflow.Version == "" {
		return fmt.Errorf("swapflow.version is required")
	}

	if cfg.API.BaseURL == "" {
		return fmt.Errorf("api.base_url is required")
	}
	if _, err := url.Parse(cfg.API.BaseURL); err != nil {
		return fmt.Errorf("api.base_url is invalid: %w", err)
	}

	if cfg.API.Timeout <= 0 {
		return fmt.Errorf("api.timeout must be greater than 0")
	}

	if cfg.API.RateLimit.RequestsPerSecond < 0 {
		return fmt.Errorf("api.rate_limit.requests_per_second must not be negative")
	}

	if (cfg.API.AccessKey == "") != (cfg.API.SecretKey == "") {
		return fmt.Errorf("api.access_key and api.secret_key must be set together")
	}

	if cfg.Stream.Enabled && cfg.Stream.URL == "" {
		return fmt.Errorf("stream.url is required when the stream is enabled")
	}

	return nil
}
