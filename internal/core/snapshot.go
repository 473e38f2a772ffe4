package core

import (
	"strconv"

	"thermal-heatmap/pkg/thermal"
)

// Snapshot describes cfg and the requested counts as parameter groups.
func Snapshot(cfg thermal.Config, sources, edges int) ParameterSnapshot {
	p := cfg.Params
	seed := "random"
	if cfg.Seeded {
		seed = strconv.FormatInt(cfg.Seed, 10)
	}
	groups := []ParameterGroup{
		{
			Name: "Grid",
			Params: []Parameter{
				intParam("w", "Width", cfg.Width),
				intParam("h", "Height", cfg.Height),
				{Key: "seed", Label: "Seed", Type: ParamTypeInt, Value: seed},
				stringParam("falloff", "Falloff", string(p.Falloff)),
			},
		},
		{
			Name: "Sources",
			Params: []Parameter{
				intParam("sources", "Sources", sources),
				floatParam("source_spread", "Spread", p.SourceSpread),
				intParam("source_margin", "Margin", p.SourceMargin),
				floatParam("source_intensity_min", "Intensity min", p.SourceIntensityMin),
				floatParam("source_intensity_max", "Intensity max", p.SourceIntensityMax),
			},
		},
		{
			Name: "Edges",
			Params: []Parameter{
				intParam("edges", "Edges", edges),
				stringParam("edge_shape", "Shape", string(p.EdgeShape)),
				floatParam("edge_spread", "Spread", p.EdgeSpread),
				floatParam("edge_weight", "Weight", p.EdgeWeight),
				floatParam("edge_min_span", "Min span", p.EdgeMinSpan),
			},
		},
	}
	if p.EdgeShape == thermal.EdgeBlob {
		groups = append(groups, ParameterGroup{
			Name: "Blob",
			Params: []Parameter{
				intParam("blob_points", "Points", p.BlobPoints),
				floatParam("blob_radius", "Radius", p.BlobRadius),
				floatParam("blob_edgy", "Edgy", p.BlobEdgy),
			},
		})
	}
	return ParameterSnapshot{Groups: groups}
}

func intParam(key, label string, value int) Parameter {
	return Parameter{
		Key:   key,
		Label: label,
		Type:  ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func floatParam(key, label string, value float64) Parameter {
	return Parameter{
		Key:   key,
		Label: label,
		Type:  ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}

func stringParam(key, label, value string) Parameter {
	return Parameter{
		Key:   key,
		Label: label,
		Type:  ParamTypeString,
		Value: value,
	}
}
