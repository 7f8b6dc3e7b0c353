package config

import (
	"errors"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env      string         `json:"env"`
	Http     HttpConfig     `json:"http"`
	Postgres PostgresConfig `json:"postgres"`
	Redis    RedisConfig    `json:"redis"`
	Minio    MinioConfig    `json:"minio"`
	Auth     AuthConfig     `json:"auth"`
	Webhook  WebhookConfig  `json:"webhook"`
	Nearby   NearbyConfig   `json:"nearby"`
	Limits   LimitsConfig   `json:"limits"`
}

type HttpConfig struct {
	Port            string        `json:"port"`
	ReadTimeout     time.Duration `json:"read_timeout"`
	WriteTimeout    time.Duration `json:"write_timeout"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout"`
}

type PostgresConfig struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Database string `json:"database"`
	User     string `json:"user"`
	Password string `json:"password,omitempty"`
	SSLMode  string `json:"ssl_mode"`

	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
}

type RedisConfig struct {
	Addr     string `json:"addr"`
	Password string `json:"password,omitempty"`
	DB       int    `json:"db"`
}

type MinioConfig struct {
	Endpoint  string `json:"endpoint"`
	AccessKey string `json:"access_key,omitempty"`
	SecretKey string `json:"secret_key,omitempty"`
	Bucket    string `json:"bucket"`
	PublicURL string `json:"public_url"`
	UseSSL    bool   `json:"use_ssl"`
}

type AuthConfig struct {
	JWTSecret string `json:"jwt_secret,omitempty"`
	APIKey    string `json:"api_key,omitempty"`
}

type WebhookConfig struct {
	URL      string `json:"url"`
	Disabled bool   `json:"disabled"`
}

// NearbyConfig drives the dedup resolver. RadiusM is the merge radius in
// meters; it is configuration, never a literal at call sites.
type NearbyConfig struct {
	RadiusM       float64       `json:"radius_m"`
	MaxCandidates int           `json:"max_candidates"`
	CacheTTL      time.Duration `json:"cache_ttl"`
	CacheRefresh  time.Duration `json:"cache_refresh"`
}

// RateLimitConfig is a per-IP token bucket. IdleTTL bounds how long an
// idle client keeps its bucket before it is evicted.
type RateLimitConfig struct {
	RPS     int           `json:"rps"`
	Burst   int           `json:"burst"`
	IdleTTL time.Duration `json:"idle_ttl"`
}

// LimitsConfig splits the public surface from the admin one: admins get
// a far stricter bucket.
type LimitsConfig struct {
	Public RateLimitConfig `json:"public"`
	Admin  RateLimitConfig `json:"admin"`
}

func LoadConfig() (*Config, error) {
	stdLogger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		stdLogger.Warn(".env load warning", slog.Any("error", err))
	}

	cfg := &Config{
		Env: getEnv("ENV", "local"),
		Http: HttpConfig{
			Port:            getEnv("HTTP_PORT", ":8080"),
			ReadTimeout:     getEnvDuration("HTTP_READ_TIMEOUT", 10*time.Second),
			WriteTimeout:    getEnvDuration("HTTP_WRITE_TIMEOUT", 10*time.Second),
			ShutdownTimeout: getEnvDuration("HTTP_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Postgres: PostgresConfig{
			Host:            getEnv("POSTGRES_HOST", "pg-local"),
			Port:            getEnvInt("POSTGRES_PORT", 5432),
			Database:        getEnv("POSTGRES_DB", "insicuri_db"),
			User:            getEnv("POSTGRES_USER", "postgres"),
			Password:        getEnv("POSTGRES_PASSWORD", "postgres"),
			SSLMode:         getEnv("POSTGRES_SSL_MODE", "disable"),
			MaxConns:        20,
			MinConns:        1,
			MaxConnLifetime: 1 * time.Hour,
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "redis-local:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Minio: MinioConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", "minio-local:9000"),
			AccessKey: getEnv("MINIO_ACCESS_KEY", "minioadmin"),
			SecretKey: getEnv("MINIO_SECRET_KEY", "minioadmin"),
			Bucket:    getEnv("MINIO_BUCKET", "report-photos"),
			PublicURL: getEnv("MINIO_PUBLIC_URL", "http://minio-local:9000"),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
		},
		Auth: AuthConfig{
			JWTSecret: getEnv("JWT_SECRET", ""),
			APIKey:    getEnv("API_KEY", ""),
		},
		Webhook: WebhookConfig{
			URL:      getEnv("WEBHOOK_URL", ""),
			Disabled: getEnvBool("WEBHOOK_DISABLED", false),
		},
		Nearby: NearbyConfig{
			RadiusM:       getEnvFloat("NEARBY_RADIUS_M", 50),
			MaxCandidates: getEnvInt("NEARBY_MAX_CANDIDATES", 5),
			CacheTTL:      getEnvDuration("NEARBY_CACHE_TTL", 2*time.Minute),
			CacheRefresh:  getEnvDuration("NEARBY_CACHE_REFRESH", 30*time.Second),
		},
		Limits: LimitsConfig{
			Public: RateLimitConfig{
				RPS:     getEnvInt("RATE_PUBLIC_RPS", 10),
				Burst:   getEnvInt("RATE_PUBLIC_BURST", 20),
				IdleTTL: getEnvDuration("RATE_PUBLIC_IDLE_TTL", 5*time.Minute),
			},
			Admin: RateLimitConfig{
				RPS:     getEnvInt("RATE_ADMIN_RPS", 2),
				Burst:   getEnvInt("RATE_ADMIN_BURST", 5),
				IdleTTL: getEnvDuration("RATE_ADMIN_IDLE_TTL", 10*time.Minute),
			},
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	stdLogger.Info("Config loaded successfully",
		slog.String("env", cfg.Env),
		slog.String("http_port", cfg.Http.Port),
		slog.String("postgres_db", cfg.Postgres.Database),
		slog.String("redis_addr", cfg.Redis.Addr),
		slog.Float64("nearby_radius_m", cfg.Nearby.RadiusM))

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Http.Port == "" || c.Http.Port[0] != ':' {
		return errors.New("HTTP_PORT must start with ':' like ':8080'")
	}
	if c.Postgres.Host == "" {
		return errors.New("POSTGRES_HOST required")
	}
	if c.Auth.JWTSecret == "" {
		return errors.New("JWT_SECRET required")
	}
	if c.Nearby.RadiusM < 0 {
		return errors.New("NEARBY_RADIUS_M must be >= 0")
	}
	if c.Nearby.MaxCandidates < 1 {
		return errors.New("NEARBY_MAX_CANDIDATES must be >= 1")
	}
	if c.Limits.Public.RPS < 1 || c.Limits.Admin.RPS < 1 {
		return errors.New("rate limit RPS must be >= 1")
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
