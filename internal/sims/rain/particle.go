package rain

// Particle is a single raindrop. X is the left edge of its grid column and Y
// the top of the drop, both in pixels.
type Particle struct {
	X, Y float64
	// Speed is fixed at creation in pixels per millisecond and zeroed once the
	// drop lands.
	Speed float64
}

// Landed reports whether the drop has settled on the terrain. Spawned drops
// always start with a positive speed.
func (p Particle) Landed() bool { return p.Speed == 0 }
