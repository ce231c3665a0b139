//go:build ebiten

package main

import (
	"context"
	"errors"

	"drizzle/internal/app"
	"drizzle/internal/log"
	"drizzle/internal/sims/rain"

	"github.com/hajimehoshi/ebiten/v2"
)

func runWindow(ctx context.Context, sim *rain.Rain, cfg *app.Config, logger *log.Logger) error {
	stroke, background, err := cfg.Colors()
	if err != nil {
		return err
	}
	game := app.New(sim, stroke, background, cfg.HUD, logger)
	defer stopOnDone(ctx, game.Stop)()

	w, h := game.Layout(0, 0)
	ebiten.SetWindowTitle("drizzle — " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
