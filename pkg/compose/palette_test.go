package compose

import (
	"testing"

	"github.com/amadad/phantom/pkg/brand"
)

func testPalette() brand.Palette {
	return brand.Palette{
		Background: "#f4f1ea",
		Primary:    "#1a2b3c",
		Accent:     "#e4572e",
		Secondary:  "#4a6fa5",
		Warm:       "#e8d5b7",
		Dark:       "#10151c",
		Light:      "#fafafa",
	}
}

func TestBuildPaletteOrdering(t *testing.T) {
	tests := []struct {
		name       string
		background string
		want       [PaletteSize]string
	}{
		{
			name:       "dark mode",
			background: "dark",
			want:       [PaletteSize]string{"#1a2b3c", "#10151c", "#e4572e", fixedNavy},
		},
		{
			name:       "warm mode",
			background: "warm",
			want:       [PaletteSize]string{"#e8d5b7", "#f4f1ea", "#e4572e", "#1a2b3c"},
		},
		{
			name:       "light mode",
			background: "light",
			want:       [PaletteSize]string{"#f4f1ea", "#e8d5b7", "#e4572e", "#1a2b3c"},
		},
		{
			name:       "unknown mode defaults to light ordering",
			background: "neon",
			want:       [PaletteSize]string{"#f4f1ea", "#e8d5b7", "#e4572e", "#1a2b3c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := brand.Visual{Palette: testPalette(), Background: tt.background}
			if got := BuildPalette(v); got != tt.want {
				t.Errorf("BuildPalette() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBuildPaletteFallbacks(t *testing.T) {
	p := testPalette()
	p.Warm = ""
	p.Dark = ""

	t.Run("warm falls back to background", func(t *testing.T) {
		v := brand.Visual{Palette: p, Background: "warm"}
		got := BuildPalette(v)
		if got[0] != p.Background {
			t.Errorf("rotation[0] = %q, want background %q", got[0], p.Background)
		}
	})

	t.Run("dark falls back to secondary", func(t *testing.T) {
		v := brand.Visual{Palette: p, Background: "dark"}
		got := BuildPalette(v)
		if got[1] != p.Secondary {
			t.Errorf("rotation[1] = %q, want secondary %q", got[1], p.Secondary)
		}
	})

	t.Run("dark falls back to primary when secondary empty", func(t *testing.T) {
		p2 := p
		p2.Secondary = ""
		v := brand.Visual{Palette: p2, Background: "dark"}
		got := BuildPalette(v)
		if got[1] != p2.Primary {
			t.Errorf("rotation[1] = %q, want primary %q", got[1], p2.Primary)
		}
	})
}

func TestBuildPalettePure(t *testing.T) {
	v := brand.Visual{Palette: testPalette(), Background: "warm"}
	if BuildPalette(v) != BuildPalette(v) {
		t.Error("BuildPalette is not deterministic")
	}
}
