package main

import (
	"github.com/osse101/MarketBot_Go/internal/config"
	"github.com/osse101/MarketBot_Go/internal/logger"
)

// initLogger installs the default slog logger, tagged with the service
// identity so every line from one deployment can be filtered together.
func initLogger(cfg *config.Config) {
	logger.InitLogger(logger.NewConfig(cfg.LogLevel, cfg.LogFormat, cfg.ServiceName, cfg.Version, cfg.Environment))
}
