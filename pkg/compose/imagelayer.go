package compose

import (
	"image"
	"math"

	"github.com/disintegration/imaging"
)

// MinImageAlpha is the floor on content-image opacity. Layout dimming is
// capped here so a requested dim can darken the photo for legibility but
// never fully hide it.
const MinImageAlpha = 0.3

// drawImageLayer paints the content image into its zone with cover-fit
// semantics: the image is scaled until it fully covers the zone, center
// cropped, and composited at the layout's dim level. A nil image or empty
// zone is a no-op.
func drawImageLayer(s Surface, img image.Image, zone Zone, dim float64) {
	if img == nil || zone.Empty() {
		return
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}

	scale := math.Max(float64(zone.Width)/float64(b.Dx()), float64(zone.Height)/float64(b.Dy()))
	sw := int(math.Ceil(float64(b.Dx()) * scale))
	sh := int(math.Ceil(float64(b.Dy()) * scale))

	fitted := imaging.CropCenter(imaging.Resize(img, sw, sh, imaging.Lanczos), zone.Width, zone.Height)
	alpha := math.Max(MinImageAlpha, 1-dim)
	s.DrawImage(fitted, zone.X, zone.Y, alpha)
}
