package rain

import (
	"time"

	"drizzle/internal/core"
)

const (
	paramSpawnInterval = "spawn_ms"
	paramMaxFallSpeed  = "max_speed"
)

// Params lists the HUD-adjustable values.
func (r *Rain) Params() []core.Param {
	return []core.Param{
		{
			Key:   paramSpawnInterval,
			Label: "Spawn every (ms)",
			Type:  core.ParamTypeInt,
			Value: float64(r.cfg.SpawnInterval.Milliseconds()),
			Step:  20,
			Min:   20,
			Max:   2000,
		},
		{
			Key:   paramMaxFallSpeed,
			Label: "Max speed (px/ms)",
			Type:  core.ParamTypeFloat,
			Value: r.cfg.MaxFallSpeed,
			Step:  0.02,
			Min:   0.02,
			Max:   1,
		},
	}
}

// SetParam applies a HUD adjustment. Drops already in flight keep their speed.
func (r *Rain) SetParam(key string, value float64) bool {
	switch key {
	case paramSpawnInterval:
		if value < 0 {
			return false
		}
		r.cfg.SpawnInterval = time.Duration(value) * time.Millisecond
		return true
	case paramMaxFallSpeed:
		if value <= 0 {
			return false
		}
		r.cfg.MaxFallSpeed = value
		return true
	default:
		return false
	}
}
