// Package pipeline provides the poster-composition pipeline for Phantom.
//
// This package ties the stages together — load brand, plan style, compute
// layout, paint, encode — so the CLI and library callers share one code
// path. It adds two things the core compose package intentionally leaves
// out: a request-keyed render cache, and the moodboard batch fan-out.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, logger)
//	opts := pipeline.Options{
//	    BrandPath: "brands/acme.yaml",
//	    Headline:  "Launch week",
//	    Ratio:     "square",
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("poster.png", result.PNG, 0o644)
//
// Batch generation fans out independent seeded renders and keeps partial
// results:
//
//	variants := runner.Moodboard(ctx, opts, 9)
//	for _, v := range variants {
//	    if v.Err == nil {
//	        // v.PNG holds one finished variant
//	    }
//	}
package pipeline

import "time"

// =============================================================================
// Default Values - Single Source of Truth for CLI and Library Callers
// =============================================================================

const (
	// DefaultRatio is the aspect ratio used when none is requested.
	DefaultRatio = "square"

	// DefaultMoodboardCount is the number of variants a moodboard renders.
	DefaultMoodboardCount = 9

	// TTLPoster is the render cache TTL. See pkg/cache for rationale.
	TTLPoster = 24 * time.Hour
)

// Options configures a pipeline run.
type Options struct {
	// BrandPath is the path to the brand file (YAML, JSON, or TOML).
	BrandPath string
	// Headline is the main poster text.
	Headline string
	// Eyebrow is the optional accent line above the headline.
	Eyebrow string
	// Caption is the optional subtext below the headline.
	Caption string
	// ImagePath is an optional content image file.
	ImagePath string
	// Ratio is an aspect-ratio key (square, portrait, story, landscape, wide).
	Ratio string
	// LogoPath overrides the logo when the brand declares no asset.
	LogoPath string
	// NoLogo suppresses the logo layer unconditionally.
	NoLogo bool
	// Topic feeds deterministic style selection when no seed is given.
	Topic string
	// Seed pins style selection for reproducible regeneration.
	Seed string
	// Refresh bypasses the render cache.
	Refresh bool
}

// withRatioDefault returns a copy of o with the default ratio applied.
func (o Options) withRatioDefault() Options {
	if o.Ratio == "" {
		o.Ratio = DefaultRatio
	}
	return o
}
