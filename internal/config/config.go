package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const defaultCacheTTL = 30 * time.Second

// Config aggregates runtime configuration for the service.
type Config struct {
	App      AppConfig
	Postgres PostgresConfig
	Redis    RedisConfig
	Cache    CacheConfig
	Logger   LoggerConfig
	Events   EventsConfig
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name                  string
	Env                   string
	Host                  string
	Port                  string
	Version               string
	RequestTimeoutSeconds int
}

// PostgresConfig holds DB connection values.
type PostgresConfig struct {
	DSN            string
	MaxConns       int32
	MinConns       int32
	RunMigrations  bool
	ConnMaxIdleSec int32
	ConnMaxLifeSec int32
}

// RedisConfig holds Redis connection values.
type RedisConfig struct {
	Addr            string
	Password        string
	DB              int
	OpTimeoutMillis int
}

// CacheConfig toggles the Redis-backed message cache.
type CacheConfig struct {
	Enabled    bool
	TTLSeconds int
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// EventsConfig controls forwarding of domain events to NATS. An empty NATSURL
// keeps events in process.
type EventsConfig struct {
	NATSURL       string
	SubjectPrefix string
}

// Load reads configuration from the environment (and a .env file when one is
// present), then validates it.
func Load() (*Config, error) {
	_ = godotenv.Load()

	redisCfg, err := loadRedis()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		App:      loadApp(),
		Postgres: loadPostgres(),
		Redis:    redisCfg,
		Cache: CacheConfig{
			Enabled:    getEnvAsBool("CACHE_ENABLED", false),
			TTLSeconds: getEnvAsInt("CACHE_TTL_SECONDS", int(defaultCacheTTL/time.Second)),
		},
		Logger: LoggerConfig{Level: getEnv("LOG_LEVEL", "info")},
		Events: EventsConfig{
			NATSURL:       os.Getenv("NATS_URL"),
			SubjectPrefix: getEnv("NATS_SUBJECT_PREFIX", "catalog"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadApp() AppConfig {
	return AppConfig{
		Name:                  getEnv("APP_NAME", "catalog-service"),
		Env:                   getEnv("APP_ENV", "development"),
		Host:                  getEnv("APP_HOST", "0.0.0.0"),
		Port:                  getEnv("APP_PORT", "8080"),
		Version:               getEnv("APP_VERSION", "dev"),
		RequestTimeoutSeconds: getEnvAsInt("HTTP_REQUEST_TIMEOUT_SECONDS", 0),
	}
}

func loadPostgres() PostgresConfig {
	return PostgresConfig{
		DSN:            os.Getenv("POSTGRES_DSN"),
		MaxConns:       int32(getEnvAsInt("POSTGRES_MAX_CONNS", 10)),
		MinConns:       int32(getEnvAsInt("POSTGRES_MIN_CONNS", 2)),
		RunMigrations:  getEnvAsBool("POSTGRES_RUN_MIGRATIONS", true),
		ConnMaxIdleSec: int32(getEnvAsInt("POSTGRES_CONN_MAX_IDLE_SECONDS", 30)),
		ConnMaxLifeSec: int32(getEnvAsInt("POSTGRES_CONN_MAX_LIFE_SECONDS", 300)),
	}
}

// loadRedis rejects a non-numeric REDIS_DB instead of falling back.
func loadRedis() (RedisConfig, error) {
	db, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return RedisConfig{}, fmt.Errorf("invalid REDIS_DB: %w", err)
	}
	return RedisConfig{
		Addr:            getEnv("REDIS_ADDR", "127.0.0.1:6379"),
		Password:        os.Getenv("REDIS_PASSWORD"),
		DB:              db,
		OpTimeoutMillis: getEnvAsInt("REDIS_OP_TIMEOUT_MS", 200),
	}, nil
}

// Validate reports every inconsistent setting at once.
func (c *Config) Validate() error {
	var errs []error
	if c.Postgres.DSN == "" {
		errs = append(errs, errors.New("POSTGRES_DSN is required"))
	}
	if c.Postgres.MinConns > c.Postgres.MaxConns {
		errs = append(errs, fmt.Errorf("POSTGRES_MIN_CONNS (%d) exceeds POSTGRES_MAX_CONNS (%d)",
			c.Postgres.MinConns, c.Postgres.MaxConns))
	}
	if c.Cache.Enabled && c.Redis.Addr == "" {
		errs = append(errs, errors.New("REDIS_ADDR is required when CACHE_ENABLED is set"))
	}
	return errors.Join(errs...)
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// RequestTimeout returns the per-request deadline; zero disables it.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

// OpTimeout bounds each Redis round-trip; zero keeps the client defaults.
func (r RedisConfig) OpTimeout() time.Duration {
	if r.OpTimeoutMillis <= 0 {
		return 0
	}
	return time.Duration(r.OpTimeoutMillis) * time.Millisecond
}

// TTL returns the cache entry lifetime.
func (c CacheConfig) TTL() time.Duration {
	if c.TTLSeconds <= 0 {
		return defaultCacheTTL
	}
	return time.Duration(c.TTLSeconds) * time.Second
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	parsed, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvAsBool(key string, fallback bool) bool {
	parsed, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return parsed
}
