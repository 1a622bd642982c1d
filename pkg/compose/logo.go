package compose

import (
	"image"

	"github.com/disintegration/imaging"
)

// drawLogoLayer scales the logo to fit its zone preserving aspect ratio and
// bottom-aligns it. Horizontal placement depends on the layout: centered
// within the text column for split, canvas-centered when the alignment is
// center, otherwise at the zone's own x. The logo draws after the image
// layer so it stays visible.
func drawLogoLayer(s Surface, logo image.Image, lr LayoutResult, plan StylePlan, canvasWidth int) {
	if logo == nil || lr.LogoZone.Empty() {
		return
	}

	z := lr.LogoZone
	fitted := imaging.Fit(logo, z.Width, z.Height, imaging.Lanczos)
	fw := fitted.Bounds().Dx()
	fh := fitted.Bounds().Dy()

	x := z.X
	switch {
	case lr.Name == LayoutSplit && !lr.TextZone.Empty():
		x = lr.TextZone.X + (lr.TextZone.Width-fw)/2
	case plan.Alignment == AlignCenter:
		x = (canvasWidth - fw) / 2
	}
	y := z.Y + z.Height - fh

	s.DrawImage(fitted, x, y, 1)
}
