// SPDX-License-Identifier: MIT
package themes

// Theme names accepted in config and the ?theme= query parameter
const (
	Dark  = "dark"
	Light = "light"
)

// Theme is a resolved visual variant of the site
type Theme struct {
	Name    string
	Palette *Palette
	Colors  *Colors
	CSS     string
}

// IsDark reports whether this is the dark variant
func (t *Theme) IsDark() bool {
	return t.Name == Dark
}

// Resolve builds a theme from a variant name and palette name, falling back to
// dark and the default palette for unknown values
func Resolve(name, paletteName string) *Theme {
	if name != Light {
		name = Dark
	}

	palette := GetPalette(paletteName)
	if palette == nil {
		palette = GetPalette(DefaultPalette)
	}

	colors := GenerateColors(palette, name == Dark)
	return &Theme{
		Name:    name,
		Palette: palette,
		Colors:  colors,
		CSS:     GenerateCSS(colors),
	}
}

// Valid reports whether name is a known theme variant
func Valid(name string) bool {
	return name == Dark || name == Light
}
