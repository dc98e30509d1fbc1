//go:build ebiten

package main

import (
	"errors"
	"flag"
	"os"

	"pixel-garden/internal/app"
	"pixel-garden/internal/sand"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	logger, err := app.NewLogger(os.Stderr, cfg.LogLevel)
	if err != nil {
		logger.Warn("falling back to info logging", "err", err)
	}
	logger.Info("Pixel Garden", "version", app.Version)
	if _, err := sand.ParseBindings(cfg.Bindings); err != nil {
		logger.Warn("ignoring -bind", "err", err)
	}

	box := sand.New(cfg.SimConfig())
	game := app.New(box, cfg, logger)
	size := box.World().Size()

	ebiten.SetWindowTitle("Pixel Garden")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal("game loop stopped", "err", err)
	}
}
