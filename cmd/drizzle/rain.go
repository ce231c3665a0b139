package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"drizzle/internal/app"
	"drizzle/internal/core"
	"drizzle/internal/log"
	"drizzle/internal/sims/rain"

	"github.com/spf13/cobra"
)

func newRainCmd(cfg *app.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rain",
		Short: "Hold the mouse button to make it rain",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}
			logger := newLogger(cfg)

			factory, ok := core.Sims()["rain"]
			if !ok {
				return fmt.Errorf("rain simulation is not registered (have %v)", core.Names())
			}
			sim, ok := factory(cfg.RainConfig().Map()).(*rain.Rain)
			if !ok {
				return errors.New("rain factory returned an unexpected type")
			}

			if cfg.Headless {
				return runHeadless(cmd.Context(), cmd.OutOrStdout(), sim, cfg, logger)
			}
			return runWindow(cmd.Context(), sim, cfg, logger)
		},
	}
	cfg.BindRain(cmd.Flags())
	return cmd
}

// sweep holds the pointer down and drags it across the top of the surface,
// standing in for a user when there is no window.
type sweep struct {
	*rain.Rain
	pxPerSecond float64
}

func (s *sweep) Tick(now time.Duration) {
	w := s.Size().W
	x := int(now.Seconds()*s.pxPerSecond) % w
	s.PointerMove(x, 0)
	s.PointerDown()
	s.Rain.Tick(now)
}

func runHeadless(ctx context.Context, out io.Writer, sim *rain.Rain, cfg *app.Config, logger *log.Logger) error {
	loop := core.NewLoop(cfg.TPS)
	driver := &sweep{Rain: sim, pxPerSecond: float64(sim.Size().W) / 4}

	logger.Infof("headless rain for %v at %d tps", cfg.Duration, cfg.TPS)
	err := loop.Run(ctx, driver, cfg.Duration)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	falling, landed := sim.Stats()
	fmt.Fprintf(out, "drops: %d falling, %d landed\n", falling, landed)
	fmt.Fprint(out, terrainProfile(sim.Terrain(), sim.Size().H, 12))
	return nil
}

// terrainProfile renders column heights as a text histogram at most rows tall.
func terrainProfile(hm *core.Heightmap, height, rows int) string {
	base := (height/hm.Cell)*hm.Cell - hm.Cell
	heights := make([]int, hm.Columns())
	tallest := 0
	for col, floor := range hm.Floors() {
		heights[col] = (base - floor) / hm.Cell
		if heights[col] > tallest {
			tallest = heights[col]
		}
	}
	if tallest == 0 {
		return "(flat)\n"
	}
	scale := 1.0
	if tallest > rows {
		scale = float64(rows) / float64(tallest)
	} else {
		rows = tallest
	}

	var b strings.Builder
	for row := rows; row >= 1; row-- {
		for _, h := range heights {
			if float64(h)*scale >= float64(row)-0.5 {
				b.WriteByte('#')
			} else {
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
