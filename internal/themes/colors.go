// SPDX-License-Identifier: MIT
package themes

// Colors represents all generated colors for a theme
type Colors struct {
	Primary         string // Main brand color
	PrimaryContrast string // Text on primary
	Secondary       string // Accent/highlight color
	Background      string // Page background
	BackgroundAlt   string // Alternating section background
	Surface         string // Card/container background
	Text            string // Main text color
	TextMuted       string // Secondary/muted text
	Border          string // Border/divider color
	NavScrolled     string // Navbar background once scrolled
	Success         string // Success state color
	Error           string // Error state color
}

// GenerateColors generates full color set from palette for light or dark mode
func GenerateColors(palette *Palette, darkMode bool) *Colors {
	if darkMode {
		return generateDarkColors(palette)
	}
	return generateLightColors(palette)
}

// generateLightColors creates colors for the light site
func generateLightColors(palette *Palette) *Colors {
	return &Colors{
		Primary:         palette.Primary,
		PrimaryContrast: "#0f172a",
		Secondary:       palette.Secondary,
		Background:      "#f8fafc",
		BackgroundAlt:   "#f1f5f9",
		Surface:         "#ffffff",
		Text:            "#0f172a",
		TextMuted:       "#64748b",
		Border:          "#e2e8f0",
		NavScrolled:     "rgba(255, 255, 255, 0.85)",
		Success:         "#22c55e",
		Error:           "#ef4444",
	}
}

// generateDarkColors creates colors for the dark site
func generateDarkColors(palette *Palette) *Colors {
	return &Colors{
		Primary:         palette.Primary,
		PrimaryContrast: "#000000",
		Secondary:       palette.Secondary,
		Background:      "#000000",
		BackgroundAlt:   "#0a0a0a",
		Surface:         "#0f0f0f",
		Text:            "#f8fafc",
		TextMuted:       "#9ca3af",
		Border:          "#1f1f1f",
		NavScrolled:     "rgba(0, 0, 0, 0.7)",
		Success:         "#22c55e",
		Error:           "#f87171",
	}
}
