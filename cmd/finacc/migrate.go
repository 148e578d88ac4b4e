package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/SscSPs/finacc/internal/platform/config"
	"github.com/SscSPs/finacc/pkg/database"
	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/spf13/cobra"
)

var flagDownSteps int

// migration is one action applied to an opened migrate instance.
type migration func(m *migrate.Migrate) error

func migrateUp(m *migrate.Migrate) error {
	return m.Up()
}

func migrateDownSteps(steps int) migration {
	return func(m *migrate.Migrate) error {
		if steps <= 0 {
			return m.Down()
		}
		return m.Steps(-steps)
	}
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply or roll back database migrations",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadRuntime(os.Stdout)
		if err != nil {
			return err
		}
		return runMigrations(cmd.Context(), cfg, logger, migrateUp)
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back migrations (all of them unless --steps is given)",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadRuntime(os.Stdout)
		if err != nil {
			return err
		}
		return runMigrations(cmd.Context(), cfg, logger, migrateDownSteps(flagDownSteps))
	},
}

func init() {
	migrateDownCmd.Flags().IntVar(&flagDownSteps, "steps", 1, "Number of migrations to roll back, 0 for all")
	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd)
	rootCmd.AddCommand(migrateCmd)
}

// runMigrations opens a temporary database/sql connection over the pgx driver
// and applies apply to the migrations found at cfg.MigrationsPath.
func runMigrations(ctx context.Context, cfg *config.Config, logger *slog.Logger, apply migration) error {
	logger.Info("Running database migrations...", slog.String("source", cfg.MigrationsPath))

	migrationDB, err := database.OpenSQL(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to open database connection for migrations", slog.String("error", err.Error()))
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		logger.Error("Could not create postgres driver instance for migrations", slog.String("error", err.Error()))
		return fmt.Errorf("migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(cfg.MigrationsPath, "postgres", driver)
	if err != nil {
		logger.Error("Could not create migrate instance", slog.String("error", err.Error()))
		return fmt.Errorf("migrate instance: %w", err)
	}

	applyErr := apply(m)
	if applyErr != nil && !errors.Is(applyErr, migrate.ErrNoChange) {
		logger.Error("Failed to apply migrations", slog.String("error", applyErr.Error()))
		return fmt.Errorf("apply migrations: %w", applyErr)
	}

	// Surface dirty state left behind by the run.
	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		logger.Error("Migration source error", slog.String("error", sourceErr.Error()))
		return sourceErr
	}
	if dbErr != nil {
		logger.Error("Migration database error", slog.String("error", dbErr.Error()))
		return dbErr
	}

	if errors.Is(applyErr, migrate.ErrNoChange) {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}
