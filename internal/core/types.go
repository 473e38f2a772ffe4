package core

import (
	"sort"

	"thermal-heatmap/pkg/thermal"
)

// Preset names a heatmap request: how many sources and edges to place and
// which parameters to override on top of the caller's base config.
type Preset struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Sources     int               `json:"sources"`
	Edges       int               `json:"edges"`
	Overrides   map[string]string `json:"overrides,omitempty"`
}

// Config applies the preset's overrides to base.
func (p Preset) Config(base thermal.Config) thermal.Config {
	thermal.ApplyMap(&base, p.Overrides)
	return base
}

var presets = map[string]Preset{}

// Register adds a preset under its name. Empty names are ignored.
func Register(p Preset) {
	if p.Name == "" {
		return
	}
	presets[p.Name] = p
}

// LookupPreset returns the preset registered under name.
func LookupPreset(name string) (Preset, bool) {
	p, ok := presets[name]
	return p, ok
}

// Presets returns every registered preset ordered by name.
func Presets() []Preset {
	out := make([]Preset, 0, len(presets))
	for _, p := range presets {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
