package config

import (
	"fmt"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

// Config holds all application configuration
type Config struct {
	// HTTP server
	Port string `yaml:"port"`

	// Redis cache; empty address selects the in-memory cache
	RedisAddr       string        `yaml:"redis_addr"`
	RedisPassword   string        `yaml:"redis_password"`
	RedisDB         int           `yaml:"redis_db"`
	CacheTTLMinutes int           `yaml:"cache_ttl_minutes"`
	CacheTTL        time.Duration `yaml:"-"`

	// Rate limiting per client IP
	RateLimitCapacity      int           `yaml:"rate_limit_capacity"`
	RateLimitWindowSeconds int           `yaml:"rate_limit_window_seconds"`
	RateLimitWindow        time.Duration `yaml:"-"`

	LogLevel string `yaml:"log_level"`

	// Environment
	Environment string `yaml:"environment"` // "development", "production" or "test"
}

var (
	instance *Config
	once     sync.Once
)

// Get returns the global configuration instance
func Get() *Config {
	once.Do(func() {
		var err error
		instance, err = Load()
		if err != nil {
			panic(fmt.Sprintf("failed to load config: %v", err))
		}
	})
	return instance
}

// Load reads configuration from .env, the optional YAML file named by CONFIG_FILE
// and the environment, in that order of increasing precedence.
func Load() (*Config, error) {
	// .env es opcional
	_ = godotenv.Load()

	config := &Config{
		Port:                   "8080",
		CacheTTLMinutes:        30,
		RateLimitCapacity:      5,
		RateLimitWindowSeconds: 60,
		LogLevel:               "info",
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	overrideString(&config.Port, "PORT")
	overrideString(&config.RedisAddr, "REDIS_ADDR")
	overrideString(&config.RedisPassword, "REDIS_PASSWORD")
	overrideString(&config.LogLevel, "LOG_LEVEL")
	overrideString(&config.Environment, "ENVIRONMENT")
	overrideInt(&config.RedisDB, "REDIS_DB")
	overrideInt(&config.CacheTTLMinutes, "CACHE_TTL_MINUTES")
	overrideInt(&config.RateLimitCapacity, "RATE_LIMIT_CAPACITY")
	overrideInt(&config.RateLimitWindowSeconds, "RATE_LIMIT_WINDOW_SECONDS")

	// Set default environment if not specified
	if config.Environment == "" {
		config.Environment = "development"
	}

	if config.Environment != "test" {
		if config.RateLimitCapacity <= 0 {
			return nil, fmt.Errorf("RATE_LIMIT_CAPACITY must be positive")
		}
		if config.RateLimitWindowSeconds <= 0 {
			return nil, fmt.Errorf("RATE_LIMIT_WINDOW_SECONDS must be positive")
		}
	}

	config.CacheTTL = time.Duration(config.CacheTTLMinutes) * time.Minute
	config.RateLimitWindow = time.Duration(config.RateLimitWindowSeconds) * time.Second

	return config, nil
}

// IsProduction reports whether the service runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func overrideString(target *string, key string) {
	if v := os.Getenv(key); v != "" {
		*target = v
	}
}

// overrideInt ignores values that do not parse, keeping the previous setting.
func overrideInt(target *int, key string) {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			*target = parsed
		}
	}
}
