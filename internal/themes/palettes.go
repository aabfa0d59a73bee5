// SPDX-License-Identifier: MIT
package themes

// Palette defines the brand colors for a theme
type Palette struct {
	Name      string // "solar", "sunrise", etc.
	Primary   string // hex color #RRGGBB
	Secondary string // hex color #RRGGBB
}

// DefaultPalette is used when the configured palette is unknown
const DefaultPalette = "solar"

// GetPalette returns a palette by name
func GetPalette(name string) *Palette {
	palettes := map[string]*Palette{
		"solar": {
			Name:      "solar",
			Primary:   "#facc15",
			Secondary: "#2563eb",
		},
		"sunrise": {
			Name:      "sunrise",
			Primary:   "#f59e0b",
			Secondary: "#dc2626",
		},
		"leaf": {
			Name:      "leaf",
			Primary:   "#22c55e",
			Secondary: "#0f766e",
		},
		"slate": {
			Name:      "slate",
			Primary:   "#64748b",
			Secondary: "#0f172a",
		},
	}

	return palettes[name]
}

// ListPalettes returns all available palettes in order
func ListPalettes() []*Palette {
	names := []string{"solar", "sunrise", "leaf", "slate"}
	var palettes []*Palette
	for _, name := range names {
		if p := GetPalette(name); p != nil {
			palettes = append(palettes, p)
		}
	}
	return palettes
}
