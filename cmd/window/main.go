package main

import (
	"os"

	"github.com/tomz197/backyard/internal/config"
	yardconfig "github.com/tomz197/backyard/internal/loop/config"
	"github.com/tomz197/backyard/internal/pixel"
)

func main() {
	logger := config.NewLogger(os.Stderr, "window")
	scale := config.GetEnvInt("YARD_WINDOW_SCALE", 1)

	cfg := yardconfig.FromEnv()
	g, err := pixel.NewGame(pixel.Options{
		Config: &cfg,
		Logger: logger,
	})
	if err != nil {
		logger.Fatal("failed to start yard", "err", err)
	}

	logger.Info("opening window", "width", cfg.WorldWidth, "height", cfg.WorldHeight, "scale", scale)
	if err := pixel.Run(g, "Backyard", max(scale, 1)); err != nil {
		logger.Fatal("window error", "err", err)
	}
}
