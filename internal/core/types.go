package core

import (
	"sort"
	"time"
)

// Size describes the dimensions of a drawing surface in pixels.
type Size struct {
	W int
	H int
}

// Sim defines the minimal contract an animated simulation must implement.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	// Tick advances the simulation to now, measured from the first frame.
	Tick(now time.Duration)
}

// Pointer receives cursor events from the host window.
type Pointer interface {
	PointerMove(x, y int)
	PointerDown()
	PointerUp()
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) Sim

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}

// Names lists the registered simulations in sorted order.
func Names() []string {
	names := make([]string, 0, len(sims))
	for name := range sims {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
