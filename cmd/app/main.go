package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/osse101/MarketBot_Go/internal/config"
	"github.com/osse101/MarketBot_Go/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:           "marketbot",
	Short:         "Keeps marketplace listings priced just under the competition",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(serveCmd, runCmd, migrateCmd, boundsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("Command failed", "error", err)
		os.Exit(1)
	}
}

// loadConfig loads configuration and initializes logging for a subcommand
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	initLogger(cfg)
	return cfg, nil
}
