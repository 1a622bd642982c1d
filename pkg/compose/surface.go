package compose

import (
	"image"
	"image/color"
	"image/draw"
	"io"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"

	"github.com/amadad/phantom/pkg/errors"
)

// Surface is the minimal drawing capability the layer pipeline targets.
// Keeping layers against this interface means the layout math is not tied
// to one rasterizer: the default canvas is software (gg), but any backend
// that can fill, clip, blit, and measure text can host the pipeline.
type Surface interface {
	// FillRect fills the zone with c at the given opacity (0..1).
	FillRect(z Zone, c color.Color, alpha float64)
	// LinearGradient fills the zone with a vertical gradient from top to bottom.
	LinearGradient(z Zone, top, bottom color.Color)
	// ClipRect restricts subsequent drawing to the zone until ResetClip.
	ClipRect(z Zone)
	// ResetClip removes the active clip region.
	ResetClip()
	// DrawImage blits img with its top-left corner at (x, y) at the given
	// opacity (0..1).
	DrawImage(img image.Image, x, y int, alpha float64)
	// SetFont sets the face used by MeasureText and FillText.
	SetFont(face font.Face)
	// MeasureText returns the advance width of s in pixels under the
	// current font face.
	MeasureText(s string) float64
	// FillText draws s with its baseline at (x, y) in color c.
	FillText(s string, x, y float64, c color.Color)
}

// Canvas is the software [Surface] backed by a gg drawing context.
type Canvas struct {
	dc *gg.Context
}

// NewCanvas creates a software canvas of the given pixel dimensions.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{dc: gg.NewContext(width, height)}
}

// FillRect implements [Surface].
func (c *Canvas) FillRect(z Zone, col color.Color, alpha float64) {
	c.dc.SetColor(withAlpha(col, alpha))
	c.dc.DrawRectangle(float64(z.X), float64(z.Y), float64(z.Width), float64(z.Height))
	c.dc.Fill()
}

// LinearGradient implements [Surface].
func (c *Canvas) LinearGradient(z Zone, top, bottom color.Color) {
	x := float64(z.X)
	grad := gg.NewLinearGradient(x, float64(z.Y), x, float64(z.Y+z.Height))
	grad.AddColorStop(0, top)
	grad.AddColorStop(1, bottom)
	c.dc.SetFillStyle(grad)
	c.dc.DrawRectangle(x, float64(z.Y), float64(z.Width), float64(z.Height))
	c.dc.Fill()
	c.dc.SetColor(color.Black) // restore a solid fill style
}

// ClipRect implements [Surface].
func (c *Canvas) ClipRect(z Zone) {
	c.dc.DrawRectangle(float64(z.X), float64(z.Y), float64(z.Width), float64(z.Height))
	c.dc.Clip()
}

// ResetClip implements [Surface].
func (c *Canvas) ResetClip() {
	c.dc.ResetClip()
}

// DrawImage implements [Surface]. Full-opacity draws go through gg; partial
// opacity composites through a uniform alpha mask.
func (c *Canvas) DrawImage(img image.Image, x, y int, alpha float64) {
	if alpha >= 1 {
		c.dc.DrawImage(img, x, y)
		return
	}
	if alpha <= 0 {
		return
	}
	dst, ok := c.dc.Image().(draw.Image)
	if !ok {
		c.dc.DrawImage(img, x, y)
		return
	}
	b := img.Bounds()
	rect := image.Rect(x, y, x+b.Dx(), y+b.Dy())
	mask := image.NewUniform(color.Alpha{A: uint8(alpha*255 + 0.5)})
	draw.DrawMask(dst, rect, img, b.Min, mask, image.Point{}, draw.Over)
}

// SetFont implements [Surface].
func (c *Canvas) SetFont(face font.Face) {
	c.dc.SetFontFace(face)
}

// MeasureText implements [Surface].
func (c *Canvas) MeasureText(s string) float64 {
	w, _ := c.dc.MeasureString(s)
	return w
}

// FillText implements [Surface].
func (c *Canvas) FillText(s string, x, y float64, col color.Color) {
	c.dc.SetColor(col)
	c.dc.DrawString(s, x, y)
}

// Image returns the underlying raster image.
func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

// EncodePNG writes the canvas as PNG to w.
func (c *Canvas) EncodePNG(w io.Writer) error {
	if err := c.dc.EncodePNG(w); err != nil {
		return errors.Wrap(errors.ErrCodeEncodeFailed, err, "encode PNG")
	}
	return nil
}

// withAlpha scales the alpha channel of c by alpha (0..1).
func withAlpha(c color.Color, alpha float64) color.Color {
	if alpha >= 1 {
		return c
	}
	if alpha < 0 {
		alpha = 0
	}
	r, g, b, a := c.RGBA()
	return color.NRGBA64{
		R: uint16(r),
		G: uint16(g),
		B: uint16(b),
		A: uint16(float64(a) * alpha),
	}
}
