package render

import (
	"fmt"
	"image/color"
	"sort"
)

// knot is one breakpoint of a piecewise-linear channel.
type knot struct{ x, y float64 }

type channel []knot

func (c channel) at(v float64) float64 {
	if v <= c[0].x {
		return c[0].y
	}
	for i := 1; i < len(c); i++ {
		if v <= c[i].x {
			a, b := c[i-1], c[i]
			return a.y + (b.y-a.y)*(v-a.x)/(b.x-a.x)
		}
	}
	return c[len(c)-1].y
}

// Colormap maps normalized intensities in [0, 1] to colors.
type Colormap struct {
	name    string
	r, g, b channel
	palette []color.RGBA
}

// Name returns the colormap identifier.
func (c *Colormap) Name() string { return c.name }

// At returns the color for v, clamped to [0, 1].
func (c *Colormap) At(v float64) color.RGBA {
	v = clamp01(v)
	return color.RGBA{
		R: channelByte(c.r.at(v)),
		G: channelByte(c.g.at(v)),
		B: channelByte(c.b.at(v)),
		A: 255,
	}
}

// Palette returns the 256-entry lookup table indexed by quantized level.
func (c *Colormap) Palette() []color.RGBA { return c.palette }

func newColormap(name string, r, g, b channel) *Colormap {
	c := &Colormap{name: name, r: r, g: g, b: b}
	c.palette = make([]color.RGBA, 256)
	for i := range c.palette {
		c.palette[i] = c.At(float64(i) / 255)
	}
	return c
}

func channelByte(v float64) uint8 {
	return uint8(clamp01(v)*255 + 0.5)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

var colormaps = map[string]*Colormap{
	// matplotlib "hot": red, then green, then blue ramp to white.
	"hot": newColormap("hot",
		channel{{0, 0.0416}, {0.365079, 1}, {1, 1}},
		channel{{0, 0}, {0.365079, 0}, {0.746032, 1}, {1, 1}},
		channel{{0, 0}, {0.746032, 0}, {1, 1}},
	),
	"gray": newColormap("gray",
		channel{{0, 0}, {1, 1}},
		channel{{0, 0}, {1, 1}},
		channel{{0, 0}, {1, 1}},
	),
	// Thermal camera style: black, indigo, magenta, orange, yellow, white.
	"ironbow": newColormap("ironbow",
		channel{{0, 0}, {0.15, 0.125}, {0.4, 0.8}, {0.7, 1}, {0.85, 1}, {1, 1}},
		channel{{0, 0}, {0.15, 0}, {0.4, 0}, {0.7, 0.5}, {0.85, 0.843}, {1, 1}},
		channel{{0, 0}, {0.15, 0.55}, {0.4, 0.467}, {0.7, 0}, {0.85, 0}, {1, 1}},
	),
}

// DefaultColormap is the colormap used when none is requested.
const DefaultColormap = "hot"

// LookupColormap returns the colormap registered under name.
func LookupColormap(name string) (*Colormap, error) {
	if name == "" {
		name = DefaultColormap
	}
	c, ok := colormaps[name]
	if !ok {
		return nil, fmt.Errorf("unknown colormap %q", name)
	}
	return c, nil
}

// ColormapNames lists the available colormaps in order.
func ColormapNames() []string {
	names := make([]string, 0, len(colormaps))
	for name := range colormaps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
