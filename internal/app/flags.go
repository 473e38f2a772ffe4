package app

import (
	"flag"
	"strings"
	"time"

	"thermal-heatmap/pkg/thermal"
)

// KVList collects repeatable key=value flags.
type KVList []string

func (l *KVList) String() string {
	return strings.Join(*l, ",")
}

// Set appends one key=value pair.
func (l *KVList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

// Map returns the pairs as a map; entries without '=' are skipped and later
// keys win.
func (l KVList) Map() map[string]string {
	out := make(map[string]string, len(l))
	for _, kv := range l {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			continue
		}
		out[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
	}
	return out
}

// Config represents the command-line parameters for the viewer.
type Config struct {
	Sources   int
	Edges     int
	Width     int
	Height    int
	Scale     int
	Seed      int64
	Random    bool
	Colormap  string
	Slideshow time.Duration
	Verbose   bool
	Set       KVList
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sources: 2, Edges: 3, Width: 256, Height: 256, Scale: 3, Seed: 42, Colormap: "hot", Slideshow: 3 * time.Second}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Sources, "sources", c.Sources, "number of heat sources")
	fs.IntVar(&c.Edges, "edges", c.Edges, "number of Bezier edges")
	fs.IntVar(&c.Width, "width", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "grid height in cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the first heatmap")
	fs.BoolVar(&c.Random, "random", c.Random, "ignore -seed and start from a random seed")
	fs.StringVar(&c.Colormap, "colormap", c.Colormap, "colormap name (hot, gray, ironbow)")
	fs.DurationVar(&c.Slideshow, "slideshow", c.Slideshow, "interval between heatmaps in slideshow mode")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "log generation details")
	fs.Var(&c.Set, "set", "parameter override in key=value form (repeatable)")
}

// ThermalConfig builds the generator config described by the flags.
func (c *Config) ThermalConfig() thermal.Config {
	cfg := thermal.DefaultConfig()
	cfg.Width = c.Width
	cfg.Height = c.Height
	if !c.Random {
		cfg = cfg.WithSeed(c.Seed)
	}
	thermal.ApplyMap(&cfg, c.Set.Map())
	return cfg
}
