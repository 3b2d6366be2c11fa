// Package main renders a top-down still of the ocean on the CPU, without a
// window or GPU.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/ocean/internal/app"
	"github.com/Faultbox/ocean/internal/config"
	"github.com/Faultbox/ocean/internal/engine/debug"
	"github.com/Faultbox/ocean/internal/engine/texture"
	"github.com/Faultbox/ocean/internal/engine/water"
	"github.com/Faultbox/ocean/internal/logger"
)

var (
	flagTime  = flag.Float64("t", 0, "Elapsed time in seconds")
	flagSize  = flag.Int("size", 512, "Samples per side")
	flagScale = flag.Int("scale", 0, "Resample the output to this many pixels per side (0 = no resampling)")
	flagOut   = flag.String("out", "", "Output directory (defaults to the screenshot dir)")
	flagStats = flag.Bool("stats", false, "Log the elevation range of the frame")
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

	if err := run(cfg); err != nil {
		logger.Error("preview failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	state, err := app.NewState(cfg, cfg.Graphics.Width, cfg.Graphics.Height, 1)
	if err != nil {
		return err
	}

	t := float32(*flagTime)
	u := water.Snapshot(state.Store, t, state.Material.Linear())
	pipeline := water.NewPipeline(state.Noise)

	if *flagStats {
		lo, hi := app.HeightRange(pipeline, &u, cfg.Surface.Width, cfg.Surface.Height, *flagSize)
		logger.Info("elevation range", zap.Float32("t", t), zap.Float32("min", lo), zap.Float32("max", hi))
	}

	img := app.RenderTopDown(pipeline, &u, cfg.Surface.Width, cfg.Surface.Height, *flagSize, state.Material.Linear())
	if *flagScale > 0 {
		img = texture.Scale(img, *flagScale, *flagScale)
	}

	dir := cfg.Debug.ScreenshotDir
	if *flagOut != "" {
		dir = *flagOut
	}
	path, err := debug.NewScreenshotCapture(dir, "preview").Capture(img)
	if err != nil {
		return err
	}
	logger.Info("preview written", zap.String("path", path), zap.Float32("t", t))
	return nil
}
