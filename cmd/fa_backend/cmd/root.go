// Package cmd provides the CLI commands of the bookkeeping backend.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/SscSPs/fin_automation_app/internal/platform/config"
	"github.com/spf13/cobra"
)

var (
	envFile string
	debug   bool

	// cfg is loaded once before any subcommand runs.
	cfg *config.Config
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "fa_backend",
	Short: "Bookkeeping backend for journal templates, ledger and expenses",
	Long: `fa_backend turns business events (down payments, full payments,
receivable settlements and manual entries) into balanced double-entry
journals and stores them in a ledger.

Example:
  fa_backend serve
  fa_backend migrate
  fa_backend chart`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if envFile != "" {
			cfg, err = config.LoadConfig(envFile)
		} else {
			cfg, err = config.LoadConfig()
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		level := cfg.LogLevel
		if debug {
			level = slog.LevelDebug
		}
		logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
		slog.SetDefault(logger)
		return nil
	},
}

// Execute adds all child commands to the root command and runs it.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "env file to load (default is .env when present)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(chartCmd)
}
