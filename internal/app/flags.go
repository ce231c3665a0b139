package app

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	"drizzle/internal/contact"
	"drizzle/internal/sims/rain"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides, e.g. DRIZZLE_GRID.
const EnvPrefix = "DRIZZLE"

// Config represents the command-line parameters for the application.
type Config struct {
	LogLevel string

	Width    int
	Height   int
	Grid     int
	SpawnMS  int
	MaxSpeed float64
	Seed     int64
	TPS      int

	Stroke     string
	Background string
	HUD        bool

	Headless bool
	Duration time.Duration

	Endpoint string
	Timeout  time.Duration
	LogFile  string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	r := rain.DefaultConfig()
	return &Config{
		LogLevel:   "info",
		Width:      r.Width,
		Height:     r.Height,
		Grid:       r.GridSize,
		SpawnMS:    int(r.SpawnInterval.Milliseconds()),
		MaxSpeed:   r.MaxFallSpeed,
		Seed:       r.Seed,
		TPS:        60,
		Stroke:     "#363636",
		Background: "#fafafa",
		HUD:        false,
		Duration:   10 * time.Second,
		Endpoint:   contact.DefaultEndpoint,
		Timeout:    contact.DefaultTimeout,
	}
}

// BindGlobal attaches flags shared by every command.
func (c *Config) BindGlobal(fs *pflag.FlagSet) {
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "debug, info, warn, error or none")
}

// BindRain attaches the rain animation flags.
func (c *Config) BindRain(fs *pflag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "surface width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "surface height in pixels")
	fs.IntVar(&c.Grid, "grid", c.Grid, "grid cell size in pixels")
	fs.IntVar(&c.SpawnMS, "spawn-ms", c.SpawnMS, "minimum milliseconds between drops while pressed")
	fs.Float64Var(&c.MaxSpeed, "max-speed", c.MaxSpeed, "upper bound of drop fall speed in px/ms")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for drop speeds")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.StringVar(&c.Stroke, "stroke", c.Stroke, "drop stroke color")
	fs.StringVar(&c.Background, "background", c.Background, "surface clear color")
	fs.BoolVar(&c.HUD, "hud", c.HUD, "show the parameter panel")
	fs.BoolVar(&c.Headless, "headless", c.Headless, "run without a window and print the terrain")
	fs.DurationVar(&c.Duration, "duration", c.Duration, "headless run length")
}

// BindContact attaches the contact form flags.
func (c *Config) BindContact(fs *pflag.FlagSet) {
	fs.StringVar(&c.Endpoint, "endpoint", c.Endpoint, "form relay URL")
	fs.DurationVar(&c.Timeout, "timeout", c.Timeout, "delivery timeout")
	fs.StringVar(&c.LogFile, "log-file", c.LogFile, "append logs to this file while the form is open")
}

// NewViper returns a viper instance reading DRIZZLE_* environment variables.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// Load resolves every flag in fs through v, so explicit flags win over the
// environment, which wins over the config file and the flag defaults.
func (c *Config) Load(v *viper.Viper, fs *pflag.FlagSet) error {
	if err := v.BindPFlags(fs); err != nil {
		return fmt.Errorf("bind flags: %w", err)
	}
	var err error
	fs.VisitAll(func(f *pflag.Flag) {
		if err != nil {
			return
		}
		if !v.IsSet(f.Name) || f.Changed {
			return
		}
		if serr := fs.Set(f.Name, v.GetString(f.Name)); serr != nil {
			err = fmt.Errorf("%s: %w", f.Name, serr)
		}
	})
	return err
}

// Validate rejects rain settings the simulation cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("surface size %dx%d must be positive", c.Width, c.Height)
	case c.Grid <= 0:
		return fmt.Errorf("grid %d must be positive", c.Grid)
	case c.SpawnMS < 0:
		return fmt.Errorf("spawn-ms %d must not be negative", c.SpawnMS)
	case !(c.MaxSpeed > 0):
		return fmt.Errorf("max-speed %v must be positive", c.MaxSpeed)
	case c.TPS <= 0:
		return fmt.Errorf("tps %d must be positive", c.TPS)
	}
	return nil
}

// RainConfig converts the flag values into a simulation config.
func (c *Config) RainConfig() rain.Config {
	return rain.Config{
		Width:         c.Width,
		Height:        c.Height,
		GridSize:      c.Grid,
		SpawnInterval: time.Duration(c.SpawnMS) * time.Millisecond,
		MaxFallSpeed:  c.MaxSpeed,
		Seed:          c.Seed,
	}
}

// Colors parses the stroke and background colors.
func (c *Config) Colors() (stroke, background color.Color, err error) {
	s, err := colorful.Hex(c.Stroke)
	if err != nil {
		return nil, nil, fmt.Errorf("stroke: %w", err)
	}
	b, err := colorful.Hex(c.Background)
	if err != nil {
		return nil, nil, fmt.Errorf("background: %w", err)
	}
	return s, b, nil
}
