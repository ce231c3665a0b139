package main

import (
	"flag"
	"fmt"
	"runtime"
	"sort"
	"sync"
	"time"

	"drizzle/internal/core"
	"drizzle/internal/sims/rain"
)

type paramSet struct {
	spawnInterval time.Duration
	maxSpeed      float64
}

func (p paramSet) String() string {
	return fmt.Sprintf("spawn=%v maxSpeed=%.2f", p.spawnInterval, p.maxSpeed)
}

type scenarioResult struct {
	params  paramSet
	drops   int
	landed  int
	tallest int
	settled time.Duration
}

func main() {
	seconds := flag.Int("seconds", 20, "simulated seconds per scenario")
	tps := flag.Int("tps", 60, "frames per simulated second")
	seed := flag.Int64("seed", 1, "seed for drop speeds")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	flag.Parse()

	base := rain.DefaultConfig()
	base.Width = 320
	base.Height = 240
	base.Seed = *seed

	var sets []paramSet
	for _, ms := range []int{50, 100, 200, 400} {
		for _, speed := range []float64{0.05, 0.1, 0.2, 0.4} {
			sets = append(sets, paramSet{spawnInterval: time.Duration(ms) * time.Millisecond, maxSpeed: speed})
		}
	}
	frames := *seconds * *tps

	fmt.Printf("Sweeping %d parameter sets (%d workers, %d frames)\n", len(sets), *workers, frames)

	jobs := make(chan paramSet)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for params := range jobs {
				results <- runScenario(base, params, *tps, frames)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, params := range sets {
			jobs <- params
		}
		close(jobs)
	}()

	var all []scenarioResult
	for res := range results {
		all = append(all, res)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].tallest > all[j].tallest })

	for i, res := range all {
		settled := "never"
		if res.settled > 0 {
			settled = res.settled.Round(time.Millisecond).String()
		}
		fmt.Printf("%2d) drops=%d landed=%d tallest=%d settled=%s %s\n",
			i+1, res.drops, res.landed, res.tallest, settled, res.params)
	}
}

// runScenario drags a held pointer back and forth across the top row and
// records how high the rain piles up.
func runScenario(base rain.Config, params paramSet, tps, frames int) scenarioResult {
	cfg := base
	cfg.SpawnInterval = params.spawnInterval
	cfg.MaxFallSpeed = params.maxSpeed

	sim := rain.New(cfg)
	sim.PointerDown()

	res := scenarioResult{params: params}
	loop := core.NewLoop(tps)
	width := cfg.Width
	loop.Replay(sim, frames, func(frame int, now time.Duration) {
		x := (frame * 3) % (2 * width)
		if x >= width {
			x = 2*width - 1 - x
		}
		sim.PointerMove(x, 0)
		if frame == frames/2 {
			sim.PointerUp()
		}
		if frame > frames/2 && res.settled == 0 {
			if falling, _ := sim.Stats(); falling == 0 {
				res.settled = now
			}
		}
	})

	base0 := (cfg.Height/cfg.GridSize)*cfg.GridSize - cfg.GridSize
	for _, floor := range sim.Terrain().Floors() {
		if h := (base0 - floor) / cfg.GridSize; h > res.tallest {
			res.tallest = h
		}
	}
	_, res.landed = sim.Stats()
	res.drops = len(sim.Particles())
	return res
}
