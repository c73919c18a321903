// Package main is the entry point for the interactive scene demo.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/primscene/internal/config"
	"github.com/Faultbox/primscene/internal/demo"
	"github.com/Faultbox/primscene/internal/logger"
)

func main() {
	// Parse CLI flags first
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

	logger.Info("=== primscene ===", zap.String("preset", cfg.Scene.Preset))
	logger.Sugar.Debugf("Config: %+v", cfg)

	app, err := demo.New(cfg)
	if err != nil {
		logger.Error("failed to start demo", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	defer app.Close()

	if err := app.Run(); err != nil {
		logger.Error("demo error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("demo closed normally")
}
