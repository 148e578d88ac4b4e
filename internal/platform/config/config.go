package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"github.com/ulule/limiter/v3"
)

const (
	defaultPort           = "8080"
	defaultJWTSecret      = "a-very-secret-key-should-be-longer-and-random"
	defaultJWTIssuer      = "finacc"
	defaultRateLimit      = "300-M"
	defaultReportCacheTTL = 10 * time.Minute
	defaultMigrationsPath = "file://migrations"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool
	JWTSecret     string
	JWTIssuer     string
	LogLevel      slog.Level

	// RateLimit uses the ulule/limiter format, e.g. "300-M". Empty disables limiting.
	RateLimit          string
	CORSAllowedOrigins []string

	// Redis backs the report cache. An empty RedisAddr disables caching.
	RedisAddr      string
	RedisPassword  string
	RedisDB        int
	ReportCacheTTL time.Duration

	PostHogAPIKey   string
	PostHogEndpoint string

	MigrationsPath string
	AutoMigrate    bool
}

// LoadConfig loads configuration from environment variables and .env file if present.
// envFile overrides the default ".env" lookup when not empty.
func LoadConfig(envFile string) (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
	} else {
		_ = godotenv.Load()
	}

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", defaultPort)
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)
	viper.SetDefault("JWT_ISSUER", defaultJWTIssuer)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("RATE_LIMIT", defaultRateLimit)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("REPORT_CACHE_TTL", defaultReportCacheTTL.String())
	viper.SetDefault("POSTHOG_API_KEY", "")
	viper.SetDefault("POSTHOG_ENDPOINT", "https://eu.i.posthog.com")
	viper.SetDefault("MIGRATIONS_PATH", defaultMigrationsPath)
	viper.SetDefault("AUTO_MIGRATE", true)

	// Defaults, then .env values, then real environment variables.
	viper.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:     viper.GetString("PGSQL_URL"),
		Port:            viper.GetString("PORT"),
		IsProduction:    viper.GetBool("IS_PRODUCTION"),
		EnableDBCheck:   viper.GetBool("ENABLE_DB_CHECK"),
		JWTSecret:       viper.GetString("JWT_SECRET"),
		JWTIssuer:       viper.GetString("JWT_ISSUER"),
		RateLimit:       strings.TrimSpace(viper.GetString("RATE_LIMIT")),
		RedisAddr:       viper.GetString("REDIS_ADDR"),
		RedisPassword:   viper.GetString("REDIS_PASSWORD"),
		RedisDB:         viper.GetInt("REDIS_DB"),
		PostHogAPIKey:   viper.GetString("POSTHOG_API_KEY"),
		PostHogEndpoint: viper.GetString("POSTHOG_ENDPOINT"),
		MigrationsPath:  viper.GetString("MIGRATIONS_PATH"),
		AutoMigrate:     viper.GetBool("AUTO_MIGRATE"),
	}

	if cfg.DatabaseURL == "" {
		slog.Warn("PGSQL_URL environment variable not set")
	}
	if cfg.Port == "" {
		cfg.Port = defaultPort
		slog.Warn("PORT not set, using default", slog.String("port", cfg.Port))
	}
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		slog.Warn("JWT_SECRET not set, using default insecure key")
	}
	if cfg.JWTIssuer == "" {
		cfg.JWTIssuer = defaultJWTIssuer
	}
	if cfg.MigrationsPath == "" {
		cfg.MigrationsPath = defaultMigrationsPath
	}

	level, err := parseLogLevel(viper.GetString("LOG_LEVEL"))
	if err != nil {
		return nil, err
	}
	cfg.LogLevel = level

	if cfg.RateLimit != "" {
		if _, err := limiter.NewRateFromFormatted(cfg.RateLimit); err != nil {
			return nil, fmt.Errorf("invalid RATE_LIMIT %q: %w", cfg.RateLimit, err)
		}
	}

	cfg.CORSAllowedOrigins = splitList(viper.GetString("CORS_ALLOWED_ORIGINS"))

	ttlStr := viper.GetString("REPORT_CACHE_TTL")
	ttl, err := time.ParseDuration(ttlStr)
	if err != nil || ttl <= 0 {
		ttl = defaultReportCacheTTL
		slog.Warn("Invalid REPORT_CACHE_TTL, using default", slog.String("value", ttlStr), slog.String("default", ttl.String()))
	}
	cfg.ReportCacheTTL = ttl

	return cfg, nil
}

func parseLogLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid LOG_LEVEL %q: %w", s, err)
	}
	return level, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
