package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration for the service.
type Config struct {
	App      AppConfig
	Auth     AuthConfig
	Source   SourceConfig
	Cache    CacheConfig
	Redis    RedisConfig
	Postgres PostgresConfig
	Logger   LoggerConfig
	CORS     CORSConfig
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

// AuthConfig holds the shared secret used to sign and verify access tokens.
type AuthConfig struct {
	SecretKey string
}

// SourceConfig describes the remote roster document.
type SourceConfig struct {
	URL       string
	SheetName string
	HeaderRow int
}

// CacheConfig controls how long a fetched document is served before refetching.
type CacheConfig struct {
	TTLSeconds int
}

// RedisConfig holds Redis connection values. An empty Addr disables the
// shared workbook byte cache.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// PostgresConfig holds DB connection values for the optional lookup audit log.
type PostgresConfig struct {
	DSN            string
	MaxConns       int32
	MinConns       int32
	RunMigrations  bool
	ConnMaxIdleSec int32
	ConnMaxLifeSec int32
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// CORSConfig names the browser origin allowed to call the lookup endpoint.
type CORSConfig struct {
	AllowOrigin string
}

// Load reads configuration from environment variables, applying defaults where
// possible. Missing SECRET_KEY or SOURCE_URL is a startup failure, not a
// per-request one.
func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	sourceURL := os.Getenv("SOURCE_URL")
	if sourceURL == "" {
		// name used by the first deployment of this service
		sourceURL = os.Getenv("ONEDRIVE_URL")
	}

	cfg := &Config{
		App: AppConfig{
			Name:                  getEnv("APP_NAME", "driver-registry"),
			Env:                   getEnv("APP_ENV", "development"),
			Host:                  getEnv("APP_HOST", "0.0.0.0"),
			Port:                  getEnv("APP_PORT", "8080"),
			Version:               getEnv("APP_VERSION", "dev"),
			RequestTimeoutSeconds: getEnvAsInt("HTTP_REQUEST_TIMEOUT_SECONDS", 90),
		},
		Auth: AuthConfig{
			SecretKey: os.Getenv("SECRET_KEY"),
		},
		Source: SourceConfig{
			URL:       sourceURL,
			SheetName: os.Getenv("SHEET_NAME"),
			HeaderRow: getEnvAsInt("HEADER_ROW", 12),
		},
		Cache: CacheConfig{
			TTLSeconds: getEnvAsInt("CACHE_TTL_SECONDS", 300),
		},
		Redis: RedisConfig{
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
		Postgres: PostgresConfig{
			DSN:            os.Getenv("POSTGRES_DSN"),
			MaxConns:       int32(getEnvAsInt("POSTGRES_MAX_CONNS", 10)),
			MinConns:       int32(getEnvAsInt("POSTGRES_MIN_CONNS", 2)),
			RunMigrations:  getEnvAsBool("POSTGRES_RUN_MIGRATIONS", true),
			ConnMaxIdleSec: int32(getEnvAsInt("POSTGRES_CONN_MAX_IDLE_SECONDS", 30)),
			ConnMaxLifeSec: int32(getEnvAsInt("POSTGRES_CONN_MAX_LIFE_SECONDS", 300)),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		CORS: CORSConfig{
			AllowOrigin: os.Getenv("CORS_ALLOW_ORIGIN"),
		},
	}

	if cfg.Auth.SecretKey == "" {
		return nil, fmt.Errorf("SECRET_KEY is required")
	}
	if cfg.Source.URL == "" {
		return nil, fmt.Errorf("SOURCE_URL is required")
	}
	if cfg.Source.HeaderRow < 1 {
		return nil, fmt.Errorf("HEADER_ROW must be >= 1")
	}

	return cfg, nil
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

// TTL returns the document cache time-to-live.
func (c CacheConfig) TTL() time.Duration {
	if c.TTLSeconds <= 0 {
		return 0
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
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvAsBool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return parsed
}
