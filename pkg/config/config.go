package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App      AppConfig
	Storage  StorageConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Password PasswordConfig
	Seed     SeedConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Storage.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"PIZZADELIGHT_APP_ENV" default:"dev"`
	LogLevel     string `envconfig:"PIZZADELIGHT_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"PIZZADELIGHT_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// StorageConfig selects the blob store backing the persisted state.
type StorageConfig struct {
	Driver     string `envconfig:"PIZZADELIGHT_STORAGE_DRIVER" default:"memory"`
	SQLitePath string `envconfig:"PIZZADELIGHT_STORAGE_SQLITE_PATH" default:"storefront.db"`
}

func (s StorageConfig) validate() error {
	switch s.Driver {
	case StorageDriverMemory, StorageDriverRedis, StorageDriverSQLite:
		return nil
	}
	return fmt.Errorf("unknown storage driver %q (expected %s, %s, or %s)",
		s.Driver, StorageDriverMemory, StorageDriverRedis, StorageDriverSQLite)
}

type RedisConfig struct {
	URL          string        `envconfig:"PIZZADELIGHT_REDIS_URL"`
	Address      string        `envconfig:"PIZZADELIGHT_REDIS_ADDR"`
	Password     string        `envconfig:"PIZZADELIGHT_REDIS_PASSWORD"`
	DB           int           `envconfig:"PIZZADELIGHT_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"PIZZADELIGHT_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"PIZZADELIGHT_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"PIZZADELIGHT_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"PIZZADELIGHT_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"PIZZADELIGHT_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret            string `envconfig:"PIZZADELIGHT_JWT_SECRET" default:"dev-only-secret"`
	Issuer            string `envconfig:"PIZZADELIGHT_JWT_ISSUER" default:"pizzadelight"`
	ExpirationMinutes int    `envconfig:"PIZZADELIGHT_JWT_EXPIRATION_MINUTES" default:"720"`
}

// Expiration returns the access token TTL.
func (j JWTConfig) Expiration() time.Duration {
	if j.ExpirationMinutes <= 0 {
		return 0
	}
	return time.Duration(j.ExpirationMinutes) * time.Minute
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"PIZZADELIGHT_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"PIZZADELIGHT_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"PIZZADELIGHT_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"PIZZADELIGHT_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"PIZZADELIGHT_ARGON_KEY_LEN" default:"32"`
}

// SeedConfig carries the demo accounts created when the user list is empty.
type SeedConfig struct {
	AdminUsername    string `envconfig:"PIZZADELIGHT_SEED_ADMIN_USERNAME" default:"admin"`
	AdminPassword    string `envconfig:"PIZZADELIGHT_SEED_ADMIN_PASSWORD" default:"admin123"`
	AdminEmail       string `envconfig:"PIZZADELIGHT_SEED_ADMIN_EMAIL" default:"admin@pizzadelight.com"`
	CustomerUsername string `envconfig:"PIZZADELIGHT_SEED_CUSTOMER_USERNAME" default:"customer"`
	CustomerPassword string `envconfig:"PIZZADELIGHT_SEED_CUSTOMER_PASSWORD" default:"customer123"`
	CustomerEmail    string `envconfig:"PIZZADELIGHT_SEED_CUSTOMER_EMAIL" default:"john@example.com"`
}
