package rain

import (
	"slices"
	"testing"
	"time"

	"drizzle/internal/core"
)

func smallRain() *Rain {
	cfg := DefaultConfig()
	cfg.Width = 100
	cfg.Height = 100
	return New(cfg)
}

func TestDropFallsUntilFloorThenFreezes(t *testing.T) {
	r := smallRain()
	if !r.Spawn(2, 0) {
		t.Fatal("spawn inside the surface was rejected")
	}
	r.particles[0].Speed = 0.05

	floor := float64(r.Terrain().Floor(2))
	if floor != 90 {
		t.Fatalf("initial floor = %v, want 90", floor)
	}

	prev := r.Particles()[0].Y
	for i := 0; i < 40 && !r.Particles()[0].Landed(); i++ {
		r.Advance(100 * time.Millisecond)
		y := r.Particles()[0].Y
		if y <= prev {
			t.Fatalf("step %d: y went from %v to %v", i, prev, y)
		}
		if y > floor {
			t.Fatalf("step %d: y=%v passed the floor %v", i, y, floor)
		}
		prev = y
	}

	p := r.Particles()[0]
	if !p.Landed() || p.Y != floor {
		t.Fatalf("drop did not land on the floor: %+v", p)
	}
	if got := r.Terrain().Floor(2); got != 80 {
		t.Fatalf("floor after landing = %d, want 80", got)
	}

	for i := 0; i < 5; i++ {
		r.Advance(time.Second)
	}
	if r.Particles()[0].Y != floor {
		t.Fatalf("landed drop moved to %v", r.Particles()[0].Y)
	}
	if got := r.Terrain().Floor(2); got != 80 {
		t.Fatalf("floor decremented again: %d", got)
	}
}

func TestStackedDropsRestOneCellHigher(t *testing.T) {
	r := smallRain()
	r.Spawn(4, 0)
	r.particles[0].Speed = 0.1
	r.Advance(2 * time.Second)

	r.Spawn(4, 1)
	r.particles[1].Speed = 0.15
	r.Advance(2 * time.Second)

	first, second := r.Particles()[0], r.Particles()[1]
	if first.Y != 90 || second.Y != 80 {
		t.Fatalf("resting heights = %v, %v; want 90, 80", first.Y, second.Y)
	}
	if got := r.Terrain().Floor(4); got != 70 {
		t.Fatalf("floor after two landings = %d, want 70", got)
	}
	if falling, landed := r.Stats(); falling != 0 || landed != 2 {
		t.Fatalf("stats = %d falling, %d landed", falling, landed)
	}
}

func TestDropSpawnedBelowFloorIsClamped(t *testing.T) {
	r := smallRain()
	r.Spawn(0, 9)
	r.particles[0].Speed = 0.1
	r.Advance(time.Millisecond)
	if r.Particles()[0].Y != 90 {
		t.Fatalf("y = %v, want clamp to 90", r.Particles()[0].Y)
	}
}

func TestAdvanceIgnoresNonPositiveElapsed(t *testing.T) {
	r := smallRain()
	r.Spawn(1, 0)
	r.particles[0].Speed = 0.1
	r.Advance(0)
	r.Advance(-time.Second)
	if r.Particles()[0].Y != 0 {
		t.Fatalf("drop moved without elapsed time: %v", r.Particles()[0].Y)
	}
}

func TestTickThrottlesSpawning(t *testing.T) {
	r := smallRain()
	r.PointerMove(25, 17)
	r.PointerDown()

	for _, ms := range []int{0, 100, 200, 201, 300, 400, 402} {
		r.Tick(time.Duration(ms) * time.Millisecond)
	}
	if got := len(r.Particles()); got != 2 {
		t.Fatalf("spawned %d drops, want 2", got)
	}
	p := r.Particles()[0]
	if p.X != 20 {
		t.Fatalf("spawn x = %v, want grid-aligned 20", p.X)
	}

	r.PointerUp()
	r.Tick(time.Second)
	if got := len(r.Particles()); got != 2 {
		t.Fatalf("spawned after pointer release: %d drops", got)
	}
}

func TestSpawnRejectsColumnsOutsideSurface(t *testing.T) {
	r := smallRain()
	if r.Spawn(-1, 0) || r.Spawn(10, 0) {
		t.Fatal("spawn outside the terrain should be rejected")
	}
	if len(r.Particles()) != 0 {
		t.Fatalf("rejected spawn left %d drops", len(r.Particles()))
	}
}

func TestSpawnSpeedWithinRange(t *testing.T) {
	r := smallRain()
	for i := 0; i < 200; i++ {
		r.Spawn(i%10, 0)
	}
	for i, p := range r.Particles() {
		if p.Speed <= 0 || p.Speed >= r.Config().MaxFallSpeed {
			t.Fatalf("drop %d speed %v outside (0, %v)", i, p.Speed, r.Config().MaxFallSpeed)
		}
		if p.Landed() {
			t.Fatalf("fresh drop %d reports landed", i)
		}
	}
}

func TestFallSpeedRedrawsZero(t *testing.T) {
	draws := []float64{0, 0, 0.1}
	calls := 0
	got := fallSpeed(func() float64 {
		v := draws[calls]
		calls++
		return v
	})
	if got != 0.1 || calls != 3 {
		t.Fatalf("fallSpeed = %v after %d draws, want 0.1 after 3", got, calls)
	}
}

func TestNewDefaultsNonPositiveMaxSpeed(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxFallSpeed = 0
	r := New(cfg)
	if got := r.Config().MaxFallSpeed; got != DefaultConfig().MaxFallSpeed {
		t.Fatalf("max speed = %v, want default", got)
	}
	if !r.Spawn(0, 0) || r.Particles()[0].Landed() {
		t.Fatal("spawn with defaulted max speed should produce a falling drop")
	}
}

func TestResetDeterministic(t *testing.T) {
	speeds := func(r *Rain) []float64 {
		out := make([]float64, 0, len(r.Particles()))
		for _, p := range r.Particles() {
			out = append(out, p.Speed)
		}
		return out
	}

	r := smallRain()
	for i := 0; i < 5; i++ {
		r.Spawn(i, 0)
	}
	first := speeds(r)

	r.Advance(time.Second)
	for i, p := range r.Particles() {
		floorHit := p.Y == float64(r.Terrain().Floor(i)+r.GridSize())
		if p.Landed() != floorHit {
			t.Fatalf("drop %d landed=%v at y=%v, floor now %d", i, p.Landed(), p.Y, r.Terrain().Floor(i))
		}
		if !p.Landed() && p.Speed != first[i] {
			t.Fatalf("falling drop %d changed speed from %v to %v", i, first[i], p.Speed)
		}
	}

	r.Reset(r.Config().Seed)
	if len(r.Particles()) != 0 {
		t.Fatal("Reset must remove every drop")
	}
	for col, floor := range r.Terrain().Floors() {
		if floor != 90 {
			t.Fatalf("column %d floor %d after reset", col, floor)
		}
	}
	for i := 0; i < 5; i++ {
		r.Spawn(i, 0)
	}
	if !slices.Equal(first, speeds(r)) {
		t.Fatal("Reset with the same seed produced different speeds")
	}
}

func TestSetParam(t *testing.T) {
	r := smallRain()
	if !r.SetParam(paramSpawnInterval, 60) {
		t.Fatal("spawn interval update rejected")
	}
	if r.Config().SpawnInterval != 60*time.Millisecond {
		t.Fatalf("spawn interval = %v", r.Config().SpawnInterval)
	}
	if r.SetParam(paramMaxFallSpeed, 0) {
		t.Fatal("zero max speed should be rejected")
	}
	if r.SetParam("gravity", 1) {
		t.Fatal("unknown key should be rejected")
	}
	params := r.Params()
	if len(params) != 2 || params[0].Value != 60 {
		t.Fatalf("params = %+v", params)
	}
}

func TestRegistered(t *testing.T) {
	factory, ok := core.Sims()["rain"]
	if !ok {
		t.Fatal("rain is not registered")
	}
	sim := factory(map[string]string{"w": "320", "h": "200"})
	if got := sim.Size(); got != (core.Size{W: 320, H: 200}) {
		t.Fatalf("size = %+v", got)
	}
	if _, ok := sim.(core.Pointer); !ok {
		t.Fatal("rain should accept pointer input")
	}
	if _, ok := sim.(core.Tunable); !ok {
		t.Fatal("rain should expose tunables")
	}
}
