package app

import (
	"flag"
	"strconv"
	"time"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Sim      string
	Scale    int
	TPS      int
	Interval time.Duration
	Seed     int64
	Width    int
	Height   int
	Pattern  string
	HUD      bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:      "life",
		Scale:    15,
		TPS:      60,
		Interval: 100 * time.Millisecond,
		Seed:     42,
		Width:    125,
		Height:   69,
		Pattern:  "random",
		HUD:      true,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "side of each cell tile in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.DurationVar(&c.Interval, "interval", c.Interval, "minimum time between generations")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "initial pattern, or random")
	fs.BoolVar(&c.HUD, "hud", c.HUD, "show the status line")
}

// SimOptions converts the config into the key/value map sim factories read.
func (c *Config) SimOptions() map[string]string {
	return map[string]string{
		"w":       strconv.Itoa(c.Width),
		"h":       strconv.Itoa(c.Height),
		"seed":    strconv.FormatInt(c.Seed, 10),
		"pattern": c.Pattern,
	}
}
