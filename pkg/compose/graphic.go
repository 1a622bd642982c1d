package compose

import (
	"image/color"

	"github.com/amadad/phantom/pkg/brand"
)

const (
	// gradientPeakAlpha is the accent gradient's opacity at the bottom of
	// the image zone.
	gradientPeakAlpha = 0.15
	// gradientCoverage is the fraction of the image zone's height covered
	// by the accent gradient, anchored at the bottom edge.
	gradientCoverage = 0.4
	// contrastBackingAlpha is the opacity of the flat black rectangle laid
	// under the text zone on dark backgrounds.
	contrastBackingAlpha = 0.15
)

// drawGraphicLayer paints the poster background: a background fill from the
// palette rotation, an accent gradient rising from the image zone's bottom
// edge, and on dark backgrounds a contrast backing behind the text zone.
func drawGraphicLayer(s Surface, lr LayoutResult, v brand.Visual, rotation [PaletteSize]string, canvas Zone) {
	bg := parseHex(rotation[lr.BGColorIndex%PaletteSize], color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})
	s.FillRect(canvas, bg, 1)

	if !lr.ImageZone.Empty() {
		accent := parseHex(v.Palette.Accent, color.NRGBA{R: 0x44, G: 0x44, B: 0x44, A: 0xff})
		z := lr.ImageZone
		gh := round(gradientCoverage * float64(z.Height))
		gz := Zone{X: z.X, Y: z.Y + z.Height - gh, Width: z.Width, Height: gh}

		top := accent
		top.A = 0
		bottom := accent
		peak := gradientPeakAlpha*255 + 0.5
		bottom.A = uint8(peak)
		s.LinearGradient(gz, top, bottom)
	}

	if lr.Background == BackgroundDark && !lr.TextZone.Empty() {
		s.FillRect(lr.TextZone, color.NRGBA{A: 0xff}, contrastBackingAlpha)
	}
}
