package cli

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/amadad/phantom/pkg/compose"
	"github.com/amadad/phantom/pkg/io"
	"github.com/amadad/phantom/pkg/pipeline"
)

// posterOpts holds the command-line flags shared by the poster commands
// (render, moodboard, plan).
type posterOpts struct {
	brand   string // brand file path (YAML, JSON, or TOML)
	eyebrow string // accent line above the headline
	caption string // subtext below the headline
	image   string // content image file
	ratio   string // aspect-ratio key
	logo    string // logo override (file path or data URI)
	noLogo  bool   // suppress the logo layer
	topic   string // topic driving deterministic style selection
	seed    string // seed pinning style selection
	refresh bool   // bypass the render cache
	noCache bool   // disable the render cache entirely
}

// addPosterFlags registers the flags shared by all poster commands.
func addPosterFlags(cmd *cobra.Command, opts *posterOpts) {
	cmd.Flags().StringVarP(&opts.brand, "brand", "b", "", "brand file (yaml, json, or toml)")
	cmd.Flags().StringVar(&opts.eyebrow, "eyebrow", "", "accent line above the headline")
	cmd.Flags().StringVar(&opts.caption, "caption", "", "subtext below the headline")
	cmd.Flags().StringVarP(&opts.image, "image", "i", "", "content image file")
	cmd.Flags().StringVarP(&opts.ratio, "ratio", "r", pipeline.DefaultRatio, "aspect ratio: "+ratioKeys())
	cmd.Flags().StringVar(&opts.logo, "logo", "", "logo file or data URI (overrides the brand asset)")
	cmd.Flags().BoolVar(&opts.noLogo, "no-logo", false, "suppress the logo layer")
	cmd.Flags().StringVarP(&opts.topic, "topic", "t", "", "topic driving style selection")
	cmd.Flags().StringVarP(&opts.seed, "seed", "s", "", "seed pinning style selection")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "re-render even on a cache hit")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the render cache")
	_ = cmd.MarkFlagRequired("brand")
}

// pipelineOptions converts the flags and positional headline into pipeline options.
func (o *posterOpts) pipelineOptions(headline string) pipeline.Options {
	return pipeline.Options{
		BrandPath: o.brand,
		Headline:  headline,
		Eyebrow:   o.eyebrow,
		Caption:   o.caption,
		ImagePath: o.image,
		Ratio:     o.ratio,
		LogoPath:  o.logo,
		NoLogo:    o.noLogo,
		Topic:     o.topic,
		Seed:      o.seed,
		Refresh:   o.refresh,
	}
}

// ratioKeys returns the supported aspect-ratio keys, sorted, comma-separated.
func ratioKeys() string {
	keys := make([]string, 0, len(compose.AspectRatios))
	for k := range compose.AspectRatios {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return strings.Join(keys, ", ")
}

// validateRatio checks that the requested ratio is supported.
func validateRatio(ratio string) error {
	if _, ok := compose.AspectRatios[ratio]; !ok {
		return fmt.Errorf("invalid ratio: %s (must be one of %s)", ratio, ratioKeys())
	}
	return nil
}

// defaultOutput derives the output path from the brand file and ratio,
// e.g. brands/acme.yaml + story -> acme_story.png.
func defaultOutput(brandPath, ratio string) string {
	base := filepath.Base(brandPath)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return fmt.Sprintf("%s_%s.png", base, ratio)
}

// renderCommand creates the render command for composing a single poster.
func (c *CLI) renderCommand() *cobra.Command {
	var opts posterOpts
	var output string

	cmd := &cobra.Command{
		Use:   "render [headline]",
		Short: "Compose a poster and write it as PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateRatio(opts.ratio); err != nil {
				return err
			}

			logger := loggerFromContext(cmd.Context())
			prog := newProgress(logger)

			runner := c.newRunner(opts.noCache)
			defer runner.Cache.Close()

			result, err := runner.Execute(cmd.Context(), opts.pipelineOptions(args[0]))
			if err != nil {
				return err
			}

			if output == "" {
				output = defaultOutput(opts.brand, opts.ratio)
			}
			if err := io.WritePNG(output, result.PNG); err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Rendered %s", output))

			printSuccess("Poster written")
			printFile(output)
			printPlanSummary(result.Plan.Layout, result.Plan.Density, result.Plan.Alignment, result.Plan.Background, result.CacheHit)
			return nil
		},
	}

	addPosterFlags(cmd, &opts)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output PNG path (default <brand>_<ratio>.png)")

	return cmd
}
