package rain

import (
	"strconv"
	"time"
)

// Config controls the Rain simulation surface and spawning.
type Config struct {
	Width    int
	Height   int
	GridSize int

	SpawnInterval time.Duration
	// MaxFallSpeed bounds the random fall speed, in pixels per millisecond.
	MaxFallSpeed float64

	Seed int64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:         800,
		Height:        600,
		GridSize:      10,
		SpawnInterval: 200 * time.Millisecond,
		MaxFallSpeed:  0.2,
		Seed:          1,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["grid"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.GridSize = parsed
		}
	}
	if v, ok := cfg["spawn_ms"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.SpawnInterval = time.Duration(parsed) * time.Millisecond
		}
	}
	if v, ok := cfg["max_speed"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.MaxFallSpeed = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}

// Map is the inverse of FromMap.
func (c Config) Map() map[string]string {
	return map[string]string{
		"w":         strconv.Itoa(c.Width),
		"h":         strconv.Itoa(c.Height),
		"grid":      strconv.Itoa(c.GridSize),
		"spawn_ms":  strconv.FormatInt(c.SpawnInterval.Milliseconds(), 10),
		"max_speed": strconv.FormatFloat(c.MaxFallSpeed, 'f', -1, 64),
		"seed":      strconv.FormatInt(c.Seed, 10),
	}
}
