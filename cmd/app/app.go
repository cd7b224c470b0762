package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/MarketBot_Go/internal/bounds"
	"github.com/osse101/MarketBot_Go/internal/config"
	"github.com/osse101/MarketBot_Go/internal/database"
	"github.com/osse101/MarketBot_Go/internal/database/postgres"
	"github.com/osse101/MarketBot_Go/internal/listing"
	"github.com/osse101/MarketBot_Go/internal/logger"
	"github.com/osse101/MarketBot_Go/internal/market"
	"github.com/osse101/MarketBot_Go/internal/notify"
	"github.com/osse101/MarketBot_Go/internal/reconcile"
	"github.com/osse101/MarketBot_Go/internal/remote"
	"github.com/osse101/MarketBot_Go/internal/worker"
)

// app holds every long-lived component built from one configuration
type app struct {
	cfg        *config.Config
	pool       *pgxpool.Pool
	bounds     *bounds.Service
	engine     *reconcile.Engine
	controller *reconcile.Controller
	workers    *worker.Pool
}

// openBounds returns the bound store selected by BOUNDS_BACKEND. The pool is
// nil for the memory backend.
func openBounds(ctx context.Context, cfg *config.Config) (*bounds.Service, *pgxpool.Pool, error) {
	if !cfg.UsesDatabase() {
		logger.Warn("Using in-memory bound store; bounds are lost on restart")
		return bounds.NewService(bounds.NewMemoryRepository()), nil, nil
	}

	pool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns,
		database.DefaultMaxConnIdleTime, database.DefaultMaxConnLifetime)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.Migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, nil, err
	}
	return bounds.NewService(postgres.NewBoundsRepository(pool)), pool, nil
}

// buildNotifier combines every configured channel. The log notifier is always
// included so pending sales show up even without Telegram or Discord.
func buildNotifier(cfg *config.Config, httpClient *http.Client) (notify.Notifier, error) {
	notifiers := notify.Multi{notify.LogNotifier{}}

	if cfg.TelegramToken != "" {
		exec := remote.NewExecutor(httpClient, remote.Config{
			MaxAttempts:    cfg.MaxAttempts,
			RequestTimeout: cfg.RequestTimeout,
			RetryBackoff:   cfg.RetryBackoff,
		})
		notifiers = append(notifiers, notify.NewTelegramNotifier(exec, notify.DefaultTelegramBaseURL, cfg.TelegramToken, cfg.TelegramChatID))
	}

	if cfg.DiscordWebhookURL != "" {
		session, err := notify.NewDiscordSession()
		if err != nil {
			return nil, err
		}
		discord, err := notify.NewDiscordNotifier(session, cfg.DiscordWebhookURL)
		if err != nil {
			return nil, err
		}
		notifiers = append(notifiers, discord)
	}

	return notifiers, nil
}

func newApp(ctx context.Context, cfg *config.Config) (*app, error) {
	boundsSvc, pool, err := openBounds(ctx, cfg)
	if err != nil {
		return nil, err
	}

	httpClient := &http.Client{}
	marketExec := remote.NewExecutor(httpClient, remote.Config{
		MaxAttempts:    cfg.MaxAttempts,
		RequestTimeout: cfg.RequestTimeout,
		RequestSpacing: cfg.RequestSpacing,
		RetryBackoff:   cfg.RetryBackoff,
	})
	client := market.NewClient(marketExec, market.Config{
		BaseURL:  cfg.MarketBaseURL,
		APIKey:   cfg.MarketAPIKey,
		Currency: cfg.MarketCurrency,
	})

	notifier, err := buildNotifier(cfg, httpClient)
	if err != nil {
		if pool != nil {
			pool.Close()
		}
		return nil, err
	}
	workers := worker.NewPool(worker.DefaultWorkers, worker.DefaultQueueSize)
	workers.Start()

	engine := reconcile.NewEngine(listing.NewStore(), client, boundsSvc, notify.NewDispatcher(notifier, workers), reconcile.Config{
		Cooldown:   cfg.ItemCooldown,
		DevMode:    cfg.DevMode,
		ResetEvery: cfg.ResetEvery,
	})

	return &app{
		cfg:        cfg,
		pool:       pool,
		bounds:     boundsSvc,
		engine:     engine,
		controller: reconcile.NewController(engine, cfg.LoopDelay),
		workers:    workers,
	}, nil
}

// drain stops the loop if it runs and waits for the current iteration to end
func (a *app) drain(ctx context.Context) {
	if a.controller.Running() {
		if err := a.controller.Stop(); err != nil {
			logger.Warn("Stop request ignored", "error", err)
		}
	}
	if err := a.controller.Wait(ctx); err != nil {
		logger.Error("Loop did not drain before timeout", "error", err)
	}
}

func (a *app) close() {
	a.workers.Stop()
	if a.pool != nil {
		a.pool.Close()
	}
}
