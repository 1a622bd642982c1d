package compose

import "github.com/amadad/phantom/pkg/brand"

// Layout template names. These are the only names ComputeLayout accepts;
// anything else indicates a broken planner contract.
const (
	LayoutSplit     = "split"
	LayoutOverlay   = "overlay"
	LayoutTypeOnly  = "type-only"
	LayoutCard      = "card"
	LayoutFullBleed = "full-bleed"
)

// Density settings controlling margin size.
const (
	DensityRelaxed  = "relaxed"
	DensityModerate = "moderate"
	DensityTight    = "tight"
)

// Alignment settings controlling text and logo placement.
const (
	AlignLeft       = "left"
	AlignCenter     = "center"
	AlignAsymmetric = "asymmetric"
)

// Background modes.
const (
	BackgroundLight = "light"
	BackgroundDark  = "dark"
	BackgroundWarm  = "warm"
)

// StylePlan is the deterministic style tuple chosen for one render.
// It is pure and ephemeral: recomputed per call, never stored.
type StylePlan struct {
	Layout     string `json:"layout"`
	Density    string `json:"density"`
	Alignment  string `json:"alignment"`
	Background string `json:"background"`
}

// BuildStylePlan deterministically picks a style plan from the brand's
// visual configuration, the topic, and whether a content image is available.
// Identical inputs always yield identical outputs.
//
// Layout selection is weighted roulette-wheel sampling over the brand's
// allowed layouts (filtered by image availability): the salted seed hash,
// taken modulo the total weight, walks the candidates subtracting weights
// until the cursor goes negative. Density, alignment, and background are
// uniform hash-mod-length picks over the brand's variant lists, each with an
// independently salted seed so reweighting one axis never shifts another.
func BuildStylePlan(v brand.Visual, topic string, hasImage bool, seed string) StylePlan {
	base := seedBase(seed, topic)
	candidates := filterLayouts(v.Layouts, hasImage)

	return StylePlan{
		Layout:     pickWeighted(candidates, v.Variants.LayoutWeights, base+":layout"),
		Density:    pickUniform(v.Variants.Density, base+":density", v.Density),
		Alignment:  pickUniform(v.Variants.Alignment, base+":alignment", v.Alignment),
		Background: pickUniform(v.Variants.Background, base+":background", v.Background),
	}
}

// filterLayouts restricts the candidate set by image availability: without a
// content image only type-only templates qualify; with one, type-only is
// excluded so an image is never wasted on a text-only template. Either filter
// emptying the set falls back to a singleton.
func filterLayouts(layouts []string, hasImage bool) []string {
	var out []string
	for _, l := range layouts {
		if (l == LayoutTypeOnly) != hasImage {
			out = append(out, l)
		}
	}
	if len(out) == 0 {
		if hasImage {
			return []string{LayoutSplit}
		}
		return []string{LayoutTypeOnly}
	}
	return out
}

// pickWeighted performs deterministic roulette-wheel sampling over candidates.
// Weights come from the brand's layout weight map; unlisted candidates weigh 1
// and configured weights are clamped to a minimum of 1.
func pickWeighted(candidates []string, weights map[string]int, salted string) string {
	total := 0
	for _, c := range candidates {
		total += weightOf(weights, c)
	}
	cursor := int(hash32(salted) % uint32(total))
	for _, c := range candidates {
		cursor -= weightOf(weights, c)
		if cursor < 0 {
			return c
		}
	}
	// Unreachable: the cursor is strictly less than the total weight.
	return candidates[len(candidates)-1]
}

func weightOf(weights map[string]int, name string) int {
	if w, ok := weights[name]; ok && w > 1 {
		return w
	}
	return 1
}
