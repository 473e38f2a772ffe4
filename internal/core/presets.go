package core

func init() {
	Register(Preset{
		Name:        "sources",
		Description: "five heat sources, no edges",
		Sources:     5,
	})
	Register(Preset{
		Name:        "edges",
		Description: "three open curves, no sources",
		Edges:       3,
	})
	Register(Preset{
		Name:        "combined",
		Description: "two heat sources crossed by three curves",
		Sources:     2,
		Edges:       3,
	})
	Register(Preset{
		Name:        "blobs",
		Description: "two heat sources and three closed blob outlines",
		Sources:     2,
		Edges:       3,
		Overrides:   map[string]string{"edge_shape": "blob"},
	})
}
