package rain

import (
	"time"

	"drizzle/internal/core"
)

// Rain drops glyphs from the cursor while the pointer is held down and piles
// them up on a per-column terrain.
type Rain struct {
	cfg     Config
	rng     *core.RNG
	terrain *core.Heightmap

	particles []Particle
	cols      []int

	cursorX, cursorY int
	pressing         bool

	lastTick  time.Duration
	lastSpawn time.Duration
}

// New returns a Rain simulation with the provided configuration.
func New(cfg Config) *Rain {
	def := DefaultConfig()
	if cfg.GridSize <= 0 {
		cfg.GridSize = def.GridSize
	}
	if !(cfg.MaxFallSpeed > 0) {
		cfg.MaxFallSpeed = def.MaxFallSpeed
	}
	r := &Rain{cfg: cfg}
	r.terrain = core.NewHeightmap(cfg.Width, cfg.Height, cfg.GridSize)
	r.Reset(cfg.Seed)
	return r
}

// Name returns the simulation identifier.
func (r *Rain) Name() string { return "rain" }

// Size returns the drawing surface dimensions.
func (r *Rain) Size() core.Size { return core.Size{W: r.cfg.Width, H: r.cfg.Height} }

// GridSize returns the cell size drops and terrain snap to.
func (r *Rain) GridSize() int { return r.cfg.GridSize }

// Config returns the active configuration, including HUD adjustments.
func (r *Rain) Config() Config { return r.cfg }

// Particles exposes the drops in spawn order.
func (r *Rain) Particles() []Particle { return r.particles }

// Terrain exposes the column floors.
func (r *Rain) Terrain() *core.Heightmap { return r.terrain }

// Reset removes every drop, flattens the terrain and reseeds the RNG.
func (r *Rain) Reset(seed int64) {
	r.rng = core.NewRNG(seed)
	r.terrain.Reset(r.cfg.Height)
	r.particles = r.particles[:0]
	r.cols = r.cols[:0]
	r.lastTick = 0
	r.lastSpawn = 0
}

// PointerMove records the cursor position in surface pixels.
func (r *Rain) PointerMove(x, y int) {
	r.cursorX = x
	r.cursorY = y
}

// PointerDown starts spawning at the cursor.
func (r *Rain) PointerDown() { r.pressing = true }

// PointerUp stops spawning.
func (r *Rain) PointerUp() { r.pressing = false }

// Pressing reports whether the pointer is held down.
func (r *Rain) Pressing() bool { return r.pressing }

// Spawn adds a drop at the given grid cell with a random fall speed. It
// reports false when col lies outside the terrain.
func (r *Rain) Spawn(col, row int) bool {
	if !r.terrain.Contains(col) {
		return false
	}
	g := float64(r.cfg.GridSize)
	r.particles = append(r.particles, Particle{
		X:     float64(col) * g,
		Y:     float64(row) * g,
		Speed: fallSpeed(func() float64 { return r.rng.Float64n(r.cfg.MaxFallSpeed) }),
	})
	r.cols = append(r.cols, col)
	return true
}

// fallSpeed draws until it gets a non-zero speed, so that only drops that
// reached the terrain ever report Landed.
func fallSpeed(draw func() float64) float64 {
	for {
		if v := draw(); v > 0 {
			return v
		}
	}
}

// Advance moves every falling drop by elapsed. A drop that reaches its
// column's floor is clamped to it, raises the floor by one cell and stops.
func (r *Rain) Advance(elapsed time.Duration) {
	if elapsed <= 0 {
		return
	}
	ms := float64(elapsed) / float64(time.Millisecond)
	for i := range r.particles {
		p := &r.particles[i]
		if p.Speed == 0 {
			continue
		}
		p.Y += p.Speed * ms

		col := r.cols[i]
		floor := float64(r.terrain.Floor(col))
		if p.Y >= floor {
			p.Y = floor
			r.terrain.Settle(col)
			p.Speed = 0
		}
	}
}

// Tick runs one frame: it spawns a drop under a held pointer at most once per
// spawn interval and then advances by the time since the previous frame.
func (r *Rain) Tick(now time.Duration) {
	if r.pressing && now-r.lastSpawn > r.cfg.SpawnInterval {
		g := r.cfg.GridSize
		r.Spawn(r.cursorX/g, r.cursorY/g)
		r.lastSpawn = now
	}
	r.Advance(now - r.lastTick)
	r.lastTick = now
}

// Stats counts falling and landed drops.
func (r *Rain) Stats() (falling, landed int) {
	for _, p := range r.particles {
		if p.Landed() {
			landed++
			continue
		}
		falling++
	}
	return falling, landed
}

func init() {
	core.Register("rain", func(cfg map[string]string) core.Sim {
		return New(FromMap(cfg))
	})
}
