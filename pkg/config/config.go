package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const EnvPrefix = "coral"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

type Config struct {
	App   AppConfig
	Store StoreConfig
	Redis RedisConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"CORAL_APP_ENV" default:"dev"`
	Port         string `envconfig:"CORAL_APP_PORT" default:"8000"`
	LogLevel     string `envconfig:"CORAL_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"CORAL_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// StoreConfig points at the Elasticsearch cluster acting as the document store.
type StoreConfig struct {
	URL      string `envconfig:"CORAL_STORE_URL" required:"true"`
	Username string `envconfig:"CORAL_STORE_USERNAME"`
	Password string `envconfig:"CORAL_STORE_PASSWORD"`
}

// RedisConfig is optional; when no URL or address is set the idempotency
// layer is disabled instead of failing boot.
type RedisConfig struct {
	URL          string        `envconfig:"CORAL_REDIS_URL"`
	Address      string        `envconfig:"CORAL_REDIS_ADDR"`
	Password     string        `envconfig:"CORAL_REDIS_PASSWORD"`
	DB           int           `envconfig:"CORAL_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"CORAL_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"CORAL_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"CORAL_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"CORAL_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"CORAL_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// Enabled reports whether enough configuration exists to connect.
func (r RedisConfig) Enabled() bool {
	return r.URL != "" || r.Address != ""
}
