// Package main runs the ocean with an on-screen parameter panel.
package main

import (
	"fmt"
	"os"
	"runtime"

	"go.uber.org/zap"

	"github.com/Faultbox/ocean/internal/app"
	"github.com/Faultbox/ocean/internal/config"
	"github.com/Faultbox/ocean/internal/logger"
)

func main() {
	runtime.LockOSThread()

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

	t, err := app.NewTuner(cfg)
	if err != nil {
		logger.Error("failed to create tuner", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	defer t.Close()

	if err := t.Run(); err != nil {
		logger.Error("tuner error", zap.Error(err))
		t.Close()
		logger.Sync()
		os.Exit(1)
	}
}
