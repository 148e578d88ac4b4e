package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/SscSPs/finacc/internal/platform/config"
	"github.com/spf13/cobra"
)

var flagEnvFile string

var rootCmd = &cobra.Command{
	Use:   "finacc",
	Short: "Small-business accounting backend",
	Long: "finacc keeps accounts, categories, counterparties, transactions and invoices for small businesses, " +
		"settles invoices against account balances and builds accrual P&L and cash-basis cash flow reports.",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagEnvFile, "env-file", "", "Env file to load instead of ./.env")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadRuntime reads the configuration and builds the JSON logger every command shares.
// Logs go to w so commands that print results can keep stdout clean.
func loadRuntime(w io.Writer) (*config.Config, *slog.Logger, error) {
	cfg, err := config.LoadConfig(flagEnvFile)
	if err != nil {
		return nil, nil, err
	}
	logger := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)
	return cfg, logger, nil
}

// stderrRuntime is loadRuntime for commands whose stdout is the result.
func stderrRuntime() (*config.Config, *slog.Logger, error) {
	return loadRuntime(os.Stderr)
}
