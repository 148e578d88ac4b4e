package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	portsrepo "github.com/SscSPs/finacc/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finacc/internal/core/ports/services"
	"github.com/SscSPs/finacc/internal/core/services"
	"github.com/SscSPs/finacc/internal/handlers"
	"github.com/SscSPs/finacc/internal/middleware"
	"github.com/SscSPs/finacc/internal/platform/config"
	"github.com/SscSPs/finacc/internal/repositories/cache"
	"github.com/SscSPs/finacc/internal/repositories/database/pgsql"
	"github.com/SscSPs/finacc/internal/utils"
	"github.com/SscSPs/finacc/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

var flagPort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadRuntime(os.Stdout)
		if err != nil {
			return err
		}
		if flagPort != "" {
			cfg.Port = flagPort
		}
		return serve(cmd.Context(), cfg, logger)
	},
}

func init() {
	serveCmd.Flags().StringVar(&flagPort, "port", "", "Listen port (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}

func serve(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	// Initialize database connection pool (for application use)
	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck, logger)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		return err
	}
	defer database.ClosePgxPool(dbPool, logger)

	if cfg.AutoMigrate {
		if err := runMigrations(ctx, cfg, logger, migrateUp); err != nil {
			return err
		}
	}

	reportCache, closeCache := openReportCache(ctx, cfg, logger)
	defer closeCache()

	container := services.NewServiceContainer(pgsql.NewRepositoryProvider(dbPool, reportCache))

	posthogClient := utils.InitializePosthogClient(cfg.PostHogAPIKey, cfg.PostHogEndpoint, logger)
	defer posthogClient.Close()

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	if cfg.RateLimit != "" {
		limiterInstance, err := middleware.NewRateLimiter(cfg.RateLimit)
		if err != nil {
			logger.Error("Failed to configure rate limiter", slog.String("error", err.Error()))
			return err
		}
		r.Use(middleware.RateLimit(limiterInstance))
	}

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		return err
	}

	handlers.RegisterRoutes(r, cfg, container, posthogClient)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		return err
	}
	return nil
}

// openReportCache connects the Redis report cache when REDIS_ADDR is set.
// Reports still work without it, so a failed connection only disables caching.
func openReportCache(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.ReportCache, func()) {
	if cfg.RedisAddr == "" {
		logger.Info("Report cache disabled, REDIS_ADDR not set")
		return nil, func() {}
	}
	client, err := cache.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		logger.Warn("Report cache disabled, Redis unavailable", slog.String("addr", cfg.RedisAddr), slog.String("error", err.Error()))
		return nil, func() {}
	}
	logger.Info("Report cache enabled", slog.String("addr", cfg.RedisAddr), slog.Duration("ttl", cfg.ReportCacheTTL))
	return cache.NewRedisReportCache(client, cfg.ReportCacheTTL), closeRedis(client, logger)
}

func closeRedis(client *redis.Client, logger *slog.Logger) func() {
	return func() {
		if err := client.Close(); err != nil {
			logger.Error("Error closing Redis client", slog.String("error", err.Error()))
		}
	}
}

// openServices builds the service container over a fresh pool, for one-shot commands.
func openServices(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*pgxpool.Pool, *portssvc.ServiceContainer, error) {
	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, true, logger)
	if err != nil {
		return nil, nil, err
	}
	return dbPool, services.NewServiceContainer(pgsql.NewRepositoryProvider(dbPool, nil)), nil
}
