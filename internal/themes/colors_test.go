// SPDX-License-Identifier: MIT
package themes

import (
	"strings"
	"testing"
)

func TestPaletteExists(t *testing.T) {
	palette := GetPalette("solar")
	if palette == nil {
		t.Fatal("solar palette not found")
	}
}

func TestGenerateLightModeColors(t *testing.T) {
	palette := GetPalette("solar")
	colors := GenerateColors(palette, false)

	if colors.Primary == "" {
		t.Fatal("Primary color not generated")
	}
	if colors.Background == "" {
		t.Fatal("Background color not generated")
	}
	if colors.Text == "" {
		t.Fatal("Text color not generated")
	}
}

func TestGenerateDarkModeColors(t *testing.T) {
	palette := GetPalette("solar")
	colors := GenerateColors(palette, true)

	if colors.Background != "#000000" {
		t.Errorf("expected black background in dark mode, got %s", colors.Background)
	}
	if colors.Primary != palette.Primary {
		t.Errorf("dark mode should keep brand primary, got %s", colors.Primary)
	}
}

func TestPaletteNamesUnique(t *testing.T) {
	palettes := ListPalettes()
	names := make(map[string]bool)
	for _, p := range palettes {
		if names[p.Name] {
			t.Errorf("duplicate palette name: %s", p.Name)
		}
		names[p.Name] = true
	}
	if len(palettes) == 0 {
		t.Fatal("no palettes")
	}
}

func TestGeneratedColorsAreHex(t *testing.T) {
	for _, dark := range []bool{false, true} {
		colors := GenerateColors(GetPalette("solar"), dark)

		colorMap := map[string]string{
			"Primary":    colors.Primary,
			"Secondary":  colors.Secondary,
			"Background": colors.Background,
			"Surface":    colors.Surface,
			"Text":       colors.Text,
		}

		for name, color := range colorMap {
			if !strings.HasPrefix(color, "#") {
				t.Errorf("%s should be hex format, got: %s", name, color)
			}
			if len(color) != 7 && len(color) != 4 {
				t.Errorf("%s invalid hex length: %s", name, color)
			}
		}
	}
}

func TestResolveFallsBack(t *testing.T) {
	th := Resolve("neon", "nope")
	if th.Name != Dark {
		t.Errorf("unknown theme should fall back to dark, got %s", th.Name)
	}
	if th.Palette.Name != DefaultPalette {
		t.Errorf("unknown palette should fall back to %s, got %s", DefaultPalette, th.Palette.Name)
	}
	if th.CSS == "" {
		t.Error("expected generated CSS")
	}

	light := Resolve(Light, "leaf")
	if light.IsDark() || light.Palette.Name != "leaf" {
		t.Errorf("unexpected theme %+v", light)
	}
}

func TestValid(t *testing.T) {
	if !Valid("dark") || !Valid("light") || Valid("sepia") {
		t.Error("unexpected Valid result")
	}
}
