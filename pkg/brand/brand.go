// Package brand defines the brand visual configuration consumed by the
// composition pipeline, along with loaders for YAML, JSON, and TOML brand
// files.
//
// A brand file describes everything the renderer needs to produce on-brand
// posters: the color palette, typography, logo assets, the set of layout
// templates the brand allows, and per-axis variant lists used for
// deterministic style planning.
//
// Missing optional fields fall back to sensible defaults (see [Visual.ApplyDefaults]);
// only structurally required fields (a non-empty layout set, a complete
// typography size table) cause validation errors.
package brand

import (
	"github.com/amadad/phantom/pkg/errors"
)

// Size categories every brand typography table must cover.
const (
	SizeSM      = "sm"
	SizeMD      = "md"
	SizeLG      = "lg"
	SizeDisplay = "display"
)

// sizeCategories lists the categories required in Typography.Sizes.
var sizeCategories = []string{SizeSM, SizeMD, SizeLG, SizeDisplay}

// Brand is a loaded brand configuration.
type Brand struct {
	ID     string `yaml:"id" json:"id" toml:"id"`
	Name   string `yaml:"name" json:"name" toml:"name"`
	Visual Visual `yaml:"visual" json:"visual" toml:"visual"`
}

// Visual holds the visual configuration used by style planning, layout
// geometry, and the layer pipeline.
type Visual struct {
	Palette         Palette    `yaml:"palette" json:"palette" toml:"palette"`
	Typography      Typography `yaml:"typography" json:"typography" toml:"typography"`
	Logo            Logo       `yaml:"logo" json:"logo" toml:"logo"`
	Layouts         []string   `yaml:"layouts" json:"layouts" toml:"layouts"`
	Density         string     `yaml:"density" json:"density" toml:"density"`
	Alignment       string     `yaml:"alignment" json:"alignment" toml:"alignment"`
	Background      string     `yaml:"background" json:"background" toml:"background"`
	PaletteRotation int        `yaml:"paletteRotation" json:"paletteRotation" toml:"paletteRotation"`
	Variants        Variants   `yaml:"variants" json:"variants" toml:"variants"`
}

// Palette holds the brand's named hex colors (e.g. "#1a2b3c").
// Warm, Dark, and Light are optional; palette ordering falls back to
// neighboring colors when they are empty.
type Palette struct {
	Background string `yaml:"background" json:"background" toml:"background"`
	Primary    string `yaml:"primary" json:"primary" toml:"primary"`
	Accent     string `yaml:"accent" json:"accent" toml:"accent"`
	Secondary  string `yaml:"secondary" json:"secondary" toml:"secondary"`
	Warm       string `yaml:"warm" json:"warm" toml:"warm"`
	Dark       string `yaml:"dark" json:"dark" toml:"dark"`
	Light      string `yaml:"light" json:"light" toml:"light"`
}

// Typography configures headline text rendering.
type Typography struct {
	// Font is a path to a TrueType font file. Optional; when empty or
	// unreadable the renderer falls back to a generic serif face.
	Font string `yaml:"font" json:"font" toml:"font"`
	// Family is the display name of the typeface, informational only.
	Family string `yaml:"family" json:"family" toml:"family"`
	// Weight is the nominal font weight (400, 700, ...), informational only.
	Weight int `yaml:"weight" json:"weight" toml:"weight"`
	// LineHeight is a multiplier applied to the pixel size when advancing
	// between wrapped lines. Defaults to 1.2.
	LineHeight float64 `yaml:"lineHeight" json:"lineHeight" toml:"lineHeight"`
	// Uppercase forces headline text to upper case.
	Uppercase bool `yaml:"uppercase" json:"uppercase" toml:"uppercase"`
	// Sizes maps the size categories (sm, md, lg, display) to pixel sizes.
	Sizes map[string]int `yaml:"sizes" json:"sizes" toml:"sizes"`
}

// Logo holds per-background logo asset paths. PNG, JPEG, and SVG files are
// supported, as are data: URIs.
type Logo struct {
	Light string `yaml:"light" json:"light" toml:"light"` // used on light/warm backgrounds
	Dark  string `yaml:"dark" json:"dark" toml:"dark"`    // used on dark backgrounds
}

// Variants holds per-axis alternate choice lists for style planning.
// Empty lists mean "always use the brand's single configured default".
type Variants struct {
	// LayoutWeights biases layout selection. Unlisted layouts get weight 1;
	// listed weights below 1 are clamped to 1.
	LayoutWeights map[string]int `yaml:"layoutWeights" json:"layoutWeights" toml:"layoutWeights"`
	Density       []string       `yaml:"density" json:"density" toml:"density"`
	Alignment     []string       `yaml:"alignment" json:"alignment" toml:"alignment"`
	Background    []string       `yaml:"background" json:"background" toml:"background"`
}

// ApplyDefaults fills unset optional fields in place.
func (v *Visual) ApplyDefaults() {
	if v.Density == "" {
		v.Density = "moderate"
	}
	if v.Alignment == "" {
		v.Alignment = "left"
	}
	if v.Background == "" {
		v.Background = "light"
	}
	if v.PaletteRotation <= 0 {
		v.PaletteRotation = 4
	}
	if v.Typography.LineHeight <= 0 {
		v.Typography.LineHeight = 1.2
	}
}

// Validate checks the structural invariants of a brand visual:
// a non-empty layout set and a typography size table covering all four
// size categories. Returns an INVALID_CONFIG error on violation.
func (v *Visual) Validate() error {
	if len(v.Layouts) == 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "brand visual declares no layouts")
	}
	if v.Typography.Sizes == nil {
		return errors.New(errors.ErrCodeInvalidConfig, "brand typography declares no size table")
	}
	for _, cat := range sizeCategories {
		if _, ok := v.Typography.Sizes[cat]; !ok {
			return errors.New(errors.ErrCodeInvalidConfig, "brand typography sizes missing category %q", cat)
		}
	}
	return nil
}

// LogoFor returns the logo asset path appropriate for the given background
// mode: the dark-background variant for "dark", otherwise the light variant.
// Returns empty string if the brand declares no matching asset.
func (l Logo) LogoFor(background string) string {
	if background == "dark" {
		if l.Dark != "" {
			return l.Dark
		}
		return l.Light
	}
	if l.Light != "" {
		return l.Light
	}
	return l.Dark
}
