package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = "altivento"

	AppEnvDev  = "development"
	AppEnvProd = "production"
)

// Environment variable names referenced from tests and operational tooling.
const (
	EnvAppEnv     = "ALTIVENTO_APP_ENV"
	EnvPort       = "ALTIVENTO_APP_PORT"
	EnvContentDir = "ALTIVENTO_CONTENT_DIR"
	EnvRedisURL   = "ALTIVENTO_REDIS_URL"
)

type Config struct {
	App       AppConfig
	Content   ContentConfig
	Redis     RedisConfig
	QuoteRate QuoteRateLimitConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"ALTIVENTO_APP_ENV" required:"true"`
	Port         string `envconfig:"ALTIVENTO_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"ALTIVENTO_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"ALTIVENTO_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev) || strings.EqualFold(a.Env, "dev")
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd) || strings.EqualFold(a.Env, "prod")
}

// ContentConfig locates the static catalog content on disk.
type ContentConfig struct {
	Dir string `envconfig:"ALTIVENTO_CONTENT_DIR" default:"content"`
}

// RedisConfig is optional; when neither URL nor Address is set the quote
// rate limiter is disabled and the API runs without Redis.
type RedisConfig struct {
	URL          string        `envconfig:"ALTIVENTO_REDIS_URL"`
	Address      string        `envconfig:"ALTIVENTO_REDIS_ADDR"`
	Password     string        `envconfig:"ALTIVENTO_REDIS_PASSWORD"`
	DB           int           `envconfig:"ALTIVENTO_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"ALTIVENTO_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"ALTIVENTO_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"ALTIVENTO_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"ALTIVENTO_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"ALTIVENTO_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// Enabled reports whether a Redis endpoint was configured at all.
func (r RedisConfig) Enabled() bool {
	return r.URL != "" || r.Address != ""
}

// QuoteRateLimitConfig throttles the public wedding quote endpoint.
type QuoteRateLimitConfig struct {
	Window  time.Duration `envconfig:"ALTIVENTO_QUOTE_RATE_LIMIT_WINDOW" default:"1m"`
	IPLimit int           `envconfig:"ALTIVENTO_QUOTE_RATE_LIMIT_IP_LIMIT" default:"30"`
}
