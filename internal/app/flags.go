package app

import "flag"

// Config represents the command-line parameters for the viewer.
type Config struct {
	Pattern string
	Scale   int
	TPS     int
	Seed    int64
	Width   int
	Height  int
	Density float64
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Pattern: "gosper-gun",
		Scale:   6,
		TPS:     10,
		Seed:    42,
		Width:   96,
		Height:  64,
		Density: 0.3,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "seed pattern name, or 'soup'/'random' for a generated start")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for generated patterns")
	fs.IntVar(&c.Width, "w", c.Width, "viewport width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "viewport height in cells")
	fs.Float64Var(&c.Density, "density", c.Density, "live-cell density for generated patterns")
}
