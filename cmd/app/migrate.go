package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/osse101/MarketBot_Go/internal/database"
	"github.com/osse101/MarketBot_Go/internal/logger"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if !cfg.UsesDatabase() {
			return errors.New("migrate requires BOUNDS_BACKEND=postgres")
		}

		pool, err := database.NewPool(cmd.Context(), cfg.GetDBConnString(), cfg.DBMaxConns,
			database.DefaultMaxConnIdleTime, database.DefaultMaxConnLifetime)
		if err != nil {
			return err
		}
		defer pool.Close()

		if err := database.Migrate(cmd.Context(), pool); err != nil {
			return err
		}
		logger.Info("Migrations applied")
		return nil
	},
}
