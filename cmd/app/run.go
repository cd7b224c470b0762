package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/osse101/MarketBot_Go/internal/logger"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the loop without the control API until interrupted",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		a, err := newApp(ctx, cfg)
		if err != nil {
			return err
		}
		defer a.close()

		if err := a.controller.Start(ctx); err != nil {
			return err
		}

		<-ctx.Done()
		logger.Info("Interrupted, finishing current iteration")

		drainCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		a.drain(drainCtx)

		status := a.controller.Status()
		logger.Info("Stopped", "iterations", status.Iterations, "tracked_items", status.TrackedItems)
		return nil
	},
}
