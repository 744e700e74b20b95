// Package main is the entry point for terrainwave.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/terrainwave/internal/app"
	"github.com/Faultbox/terrainwave/internal/config"
	"github.com/Faultbox/terrainwave/internal/logger"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== terrainwave ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	if cfg.Window.Headless && !cfg.Export.Enabled {
		logger.Warn("headless run with export disabled, nothing will be written")
	}

	if path := config.SavePath(); path != "" {
		if err := cfg.SaveTo(path); err != nil {
			logger.Error("failed to save config", zap.String("path", path), zap.Error(err))
			os.Exit(1)
		}
		logger.Debug("config saved", zap.String("path", path))
	}

	a, err := app.New(cfg)
	if err != nil {
		logger.Error("failed to start", zap.Error(err))
		os.Exit(1)
	}
	defer a.Close()

	if err := a.Run(); err != nil {
		logger.Error("run error", zap.Error(err))
		a.Close()
		logger.Sync()
		os.Exit(1)
	}

	logger.Info("terrainwave closed normally")
}
