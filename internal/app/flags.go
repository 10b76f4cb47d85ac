package app

import (
	"flag"
	"strconv"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Sim        string
	Scale      int
	TPS        int
	Seed       int64
	Width      int
	Height     int
	ConfigPath string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "terrarium", Scale: 8, TPS: 30, Seed: 0, Width: 120, Height: 48}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset (0 uses the config seed)")
	fs.IntVar(&c.Width, "w", c.Width, "grid width in tiles")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in tiles")
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "optional YAML tuning file")
}

// FactoryOptions converts the flag values into the string map consumed by
// simulation factories.
func (c *Config) FactoryOptions() map[string]string {
	opts := map[string]string{
		"w": strconv.Itoa(c.Width),
		"h": strconv.Itoa(c.Height),
	}
	if c.Seed != 0 {
		opts["seed"] = strconv.FormatInt(c.Seed, 10)
	}
	return opts
}
