package compose

import "github.com/amadad/phantom/pkg/brand"

// fixedNavy anchors the dark-mode rotation with a deep navy that works as a
// backdrop for any brand's light logo variant.
const fixedNavy = "#0f172a"

// PaletteSize is the length of the background rotation returned by BuildPalette.
const PaletteSize = 4

// BuildPalette derives the ordered background-color rotation from the brand
// palette and background mode. The rotation always has [PaletteSize] entries;
// the renderer indexes into it with the layout's background color index.
//
// Ordering by mode:
//   - dark: primary, dark (or secondary/primary fallback), accent, fixed navy
//   - warm: warm (or background fallback), background, accent, primary
//   - light (default): background, warm (or background fallback), accent, primary
func BuildPalette(v brand.Visual) [PaletteSize]string {
	p := v.Palette
	switch v.Background {
	case "dark":
		dark := p.Dark
		if dark == "" {
			dark = p.Secondary
		}
		if dark == "" {
			dark = p.Primary
		}
		return [PaletteSize]string{p.Primary, dark, p.Accent, fixedNavy}
	case "warm":
		warm := p.Warm
		if warm == "" {
			warm = p.Background
		}
		return [PaletteSize]string{warm, p.Background, p.Accent, p.Primary}
	default:
		warm := p.Warm
		if warm == "" {
			warm = p.Background
		}
		return [PaletteSize]string{p.Background, warm, p.Accent, p.Primary}
	}
}
