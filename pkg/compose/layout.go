package compose

import (
	"math"

	"github.com/amadad/phantom/pkg/brand"
	"github.com/amadad/phantom/pkg/errors"
)

// Zone is an axis-aligned pixel rectangle designating where one layer may
// paint. A zero-area zone means the layer is disabled for this render.
type Zone struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Empty reports whether the zone has zero area.
func (z Zone) Empty() bool { return z.Width <= 0 || z.Height <= 0 }

// LayoutResult holds the absolute pixel geometry computed for one render.
type LayoutResult struct {
	Name         string  `json:"name"`
	ImageZone    Zone    `json:"imageZone"`
	TextZone     Zone    `json:"textZone"`
	LogoZone     Zone    `json:"logoZone"`
	Background   string  `json:"background"`
	TextSize     string  `json:"textSize"`
	BGColorIndex int     `json:"bgColorIndex"`
	ImageDim     float64 `json:"imageDim"`
}

// densityMargins maps density settings to the margin ratio applied to the
// canvas's minimum dimension.
var densityMargins = map[string]float64{
	DensityRelaxed:  0.08,
	DensityModerate: 0.05,
	DensityTight:    0.025,
}

// verticalSplitThreshold decides split orientation: a canvas whose
// height/width ratio strictly exceeds it stacks image over text.
// A 1:1 square (ratio 1.0) therefore splits vertically.
const verticalSplitThreshold = 0.85

// ComputeLayout maps a style plan onto absolute pixel zones for the given
// canvas. All outputs are rounded integers and every non-empty zone lies
// within the canvas by construction.
//
// The background color index is resolved independently of the chosen
// geometry: it hashes the seed (or topic) modulo the brand's palette
// rotation count, so background cycling is decoupled from template choice.
//
// An unknown layout name returns an UNKNOWN_LAYOUT error: it indicates a
// broken planner contract, never a user-facing condition.
func ComputeLayout(plan StylePlan, width, height int, v brand.Visual, topic, seed string) (LayoutResult, error) {
	ratio, ok := densityMargins[plan.Density]
	if !ok {
		ratio = densityMargins[DensityModerate]
	}
	g := geometry{
		w:      width,
		h:      height,
		margin: round(ratio * float64(minInt(width, height))),
		align:  plan.Alignment,
	}

	var lr LayoutResult
	switch plan.Layout {
	case LayoutSplit:
		lr = g.split()
	case LayoutOverlay:
		lr = g.overlay()
	case LayoutTypeOnly:
		lr = g.typeOnly()
	case LayoutCard:
		lr = g.card()
	case LayoutFullBleed:
		lr = g.fullBleed()
	default:
		return LayoutResult{}, errors.New(errors.ErrCodeUnknownLayout, "unknown layout %q", plan.Layout)
	}

	lr.Name = plan.Layout
	lr.Background = plan.Background
	rotation := v.PaletteRotation
	if rotation <= 0 {
		rotation = PaletteSize
	}
	lr.BGColorIndex = int(hash32(seedBase(seed, topic)) % uint32(rotation))
	return lr, nil
}

// geometry bundles the shared inputs of the five layout functions.
type geometry struct {
	w, h   int
	margin int
	align  string
}

func (g geometry) innerW() int { return g.w - 2*g.margin }
func (g geometry) innerH() int { return g.h - 2*g.margin }

// split places the image beside the text, or above it when the canvas is
// tall: a height/width ratio strictly greater than verticalSplitThreshold
// stacks image over text.
func (g geometry) split() LayoutResult {
	gap := g.margin / 2

	if float64(g.h)/float64(g.w) > verticalSplitThreshold {
		imgH := round(0.55 * float64(g.innerH()))
		textY := g.margin + imgH + gap
		return LayoutResult{
			ImageZone: Zone{X: g.margin, Y: g.margin, Width: g.innerW(), Height: imgH},
			TextZone:  Zone{X: g.margin, Y: textY, Width: g.innerW(), Height: g.h - g.margin - textY},
			LogoZone:  g.logoZone(),
			TextSize:  brand.SizeLG,
		}
	}

	imgW := round(0.5 * float64(g.innerW()))
	textX := g.margin + imgW + gap
	textW := g.w - g.margin - textX

	var textY, textH int
	if g.align == AlignCenter {
		textH = round(0.6 * float64(g.innerH()))
		textY = (g.h - textH) / 2
	} else {
		textH = round(0.7 * float64(g.innerH()))
		textY = g.margin
	}

	return LayoutResult{
		ImageZone: Zone{X: g.margin, Y: g.margin, Width: imgW, Height: g.innerH()},
		TextZone:  Zone{X: textX, Y: textY, Width: textW, Height: textH},
		LogoZone:  g.logoZone(),
		TextSize:  brand.SizeLG,
	}
}

// overlay fills the canvas with the image and floats a text box over it,
// dimming the image to keep the text legible.
func (g geometry) overlay() LayoutResult {
	textW := round(0.7 * float64(g.w))
	textH := round(0.45 * float64(g.h))
	textY := (g.h - textH) / 2

	var textX int
	switch g.align {
	case AlignCenter:
		textX = (g.w - textW) / 2
	case AlignAsymmetric:
		textX = g.w - g.margin - textW
	default:
		textX = g.margin
	}

	return LayoutResult{
		ImageZone: Zone{Width: g.w, Height: g.h},
		TextZone:  Zone{X: textX, Y: textY, Width: textW, Height: textH},
		LogoZone:  g.logoZone(),
		TextSize:  brand.SizeLG,
		ImageDim:  0.4,
	}
}

// typeOnly dedicates the canvas to text at the largest size tier. The image
// zone is intentionally zero-area.
func (g geometry) typeOnly() LayoutResult {
	textH := round(0.65 * float64(g.innerH()))
	return LayoutResult{
		TextZone: Zone{X: g.margin, Y: (g.h - textH) / 2, Width: g.innerW(), Height: textH},
		LogoZone: g.logoZone(),
		TextSize: brand.SizeDisplay,
	}
}

// card stacks the image over a text strip, both inset by the margin.
func (g geometry) card() LayoutResult {
	gap := g.margin / 2
	imgH := round(0.65 * float64(g.innerH()))
	textY := g.margin + imgH + gap
	return LayoutResult{
		ImageZone: Zone{X: g.margin, Y: g.margin, Width: g.innerW(), Height: imgH},
		TextZone:  Zone{X: g.margin, Y: textY, Width: g.innerW(), Height: g.h - g.margin - textY},
		LogoZone:  g.logoZone(),
		TextSize:  brand.SizeMD,
	}
}

// fullBleed fills the canvas with the image, lightly dimmed, with a thin
// caption strip bottom-left and the logo top-right.
func (g geometry) fullBleed() LayoutResult {
	capH := round(0.12 * float64(g.h))
	logo := g.logoZone()
	logo.Y = g.margin

	return LayoutResult{
		ImageZone: Zone{Width: g.w, Height: g.h},
		TextZone:  Zone{X: g.margin, Y: g.h - g.margin - capH, Width: round(0.5 * float64(g.innerW())), Height: capH},
		LogoZone:  logo,
		TextSize:  brand.SizeSM,
		ImageDim:  0.15,
	}
}

// logoZone places the logo bottom-right by default, bottom-left when the
// alignment is asymmetric.
func (g geometry) logoZone() Zone {
	lw := round(0.12 * float64(minInt(g.w, g.h)))
	lh := round(0.4 * float64(lw))

	x := g.w - g.margin - lw
	if g.align == AlignAsymmetric {
		x = g.margin
	}
	return Zone{X: x, Y: g.h - g.margin - lh, Width: lw, Height: lh}
}

func round(f float64) int { return int(math.Round(f)) }

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
