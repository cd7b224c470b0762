package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/osse101/MarketBot_Go/internal/logger"
	"github.com/osse101/MarketBot_Go/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the control API; the loop starts on request or with AUTO_START",
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

		deps := server.Deps{
			Controller: a.controller,
			Items:      a.engine.Store(),
			Bounds:     a.bounds,
		}
		if a.pool != nil {
			deps.DBPool = a.pool
		}
		srv := server.NewServer(cfg.Port, cfg.APIKey, deps)

		serverErr := make(chan error, 1)
		go func() {
			logger.Info("Starting server", "port", cfg.Port)
			if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				serverErr <- err
			}
		}()

		if cfg.AutoStart {
			if err := a.controller.Start(ctx); err != nil {
				return err
			}
		}

		select {
		case <-ctx.Done():
			logger.Info("Shutting down")
		case err := <-serverErr:
			logger.Error("Server failed", "error", err)
			return err
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		if err := srv.Stop(shutdownCtx); err != nil {
			logger.Error("Server shutdown failed", "error", err)
		}
		a.drain(shutdownCtx)
		logger.Info("Stopped")
		return nil
	},
}
