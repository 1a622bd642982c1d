package compose

import (
	"image/color"
	"strings"

	"github.com/golang/freetype/truetype"

	"github.com/amadad/phantom/pkg/brand"
	"github.com/amadad/phantom/pkg/fonts"
)

// textPaddingRatio is the fraction of the text zone's width reserved as
// horizontal padding (split evenly between the two sides).
const textPaddingRatio = 0.08

// drawTypeLayer draws the optional accent-colored eyebrow line, the wrapped
// headline, and the optional caption into the text zone. Text wraps by
// greedy word accumulation against measured widths; once the zone's vertical
// space is exhausted remaining lines are dropped — there is no auto-shrink
// and no overflow into neighboring zones.
func drawTypeLayer(s Surface, lr LayoutResult, v brand.Visual, fnt *truetype.Font, headline, eyebrow, caption string) {
	z := lr.TextZone
	if z.Empty() || (headline == "" && eyebrow == "" && caption == "") {
		return
	}

	pad := round(textPaddingRatio * float64(z.Width))
	x := float64(z.X + pad/2)
	maxW := float64(z.Width - pad)
	bottom := float64(z.Y + z.Height)

	px := float64(sizeFor(v.Typography.Sizes, lr.TextSize))
	smPx := float64(sizeFor(v.Typography.Sizes, brand.SizeSM))
	lineHeight := v.Typography.LineHeight
	if lineHeight <= 0 {
		lineHeight = 1.2
	}

	bodyColor := textColor(v, lr.Background)
	accent := parseHex(v.Palette.Accent, color.NRGBA{R: 0xe4, G: 0x57, B: 0x2e, A: 0xff})

	s.ClipRect(z)
	defer s.ResetClip()

	y := float64(z.Y)

	if eyebrow != "" {
		s.SetFont(fonts.Face(fnt, smPx))
		if baseline := y + smPx; baseline <= bottom {
			s.FillText(strings.ToUpper(eyebrow), x, baseline, accent)
		}
		y += smPx * lineHeight
	}

	text := headline
	if v.Typography.Uppercase {
		text = strings.ToUpper(text)
	}
	s.SetFont(fonts.Face(fnt, px))
	for _, line := range wrapText(s, text, maxW) {
		baseline := y + px
		if baseline > bottom {
			return
		}
		s.FillText(line, x, baseline, bodyColor)
		y += px * lineHeight
	}

	if caption != "" {
		s.SetFont(fonts.Face(fnt, smPx))
		for _, line := range wrapText(s, caption, maxW) {
			baseline := y + smPx
			if baseline > bottom {
				return
			}
			s.FillText(line, x, baseline, bodyColor)
			y += smPx * lineHeight
		}
	}
}

// wrapText breaks text into lines by greedy word accumulation: words join
// the current line while its measured width stays within maxWidth. A single
// word wider than maxWidth gets its own line rather than being split.
func wrapText(s Surface, text string, maxWidth float64) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		candidate := line + " " + w
		if s.MeasureText(candidate) <= maxWidth {
			line = candidate
			continue
		}
		lines = append(lines, line)
		line = w
	}
	return append(lines, line)
}

// textColor resolves the body text color from the background mode: a light
// palette color on dark backgrounds, the brand's dark (or primary) color
// otherwise.
func textColor(v brand.Visual, background string) color.NRGBA {
	if background == BackgroundDark {
		return parseHex(v.Palette.Light, color.NRGBA{R: 0xf5, G: 0xf5, B: 0xf2, A: 0xff})
	}
	c := v.Palette.Dark
	if c == "" {
		c = v.Palette.Primary
	}
	return parseHex(c, color.NRGBA{R: 0x1a, G: 0x1a, B: 0x1a, A: 0xff})
}

// sizeFor reads a size category from the brand table, defaulting to the md
// entry (and finally 44px) so a partially validated table cannot zero out
// text.
func sizeFor(sizes map[string]int, category string) int {
	if px, ok := sizes[category]; ok && px > 0 {
		return px
	}
	if px, ok := sizes[brand.SizeMD]; ok && px > 0 {
		return px
	}
	return 44
}
