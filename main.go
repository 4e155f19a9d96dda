package main

import (
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/olivierh59500/dice-roll-go/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		config.Exitf("dice: %v", err)
	}
	logger := cfg.Logger()
	slog.SetDefault(logger)

	game, err := NewGame(cfg, logger)
	if err != nil {
		config.Exitf("dice: %v", err)
	}
	defer game.Close()

	// Set up Ebitengine game
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle("Dice")
	ebiten.SetTPS(cfg.TPS)

	// Run the game loop
	if err := ebiten.RunGame(game); err != nil {
		logger.Error("game loop", "err", err)
	}
}
