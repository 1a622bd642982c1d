package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/amadad/phantom/pkg/errors"
	"github.com/amadad/phantom/pkg/io"
	"github.com/amadad/phantom/pkg/pipeline"
)

// moodboardCommand creates the moodboard command for exploring style variants.
func (c *CLI) moodboardCommand() *cobra.Command {
	var opts posterOpts
	var count int
	var outDir string

	cmd := &cobra.Command{
		Use:   "moodboard [headline]",
		Short: "Render several seeded poster variants for comparison",
		Long:  `Moodboard renders N independently seeded variants of the same poster so you can pick a style direction. Each variant's seed is printed with its file; re-run render with --seed to reproduce the one you like.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateRatio(opts.ratio); err != nil {
				return err
			}

			logger := loggerFromContext(cmd.Context())
			prog := newProgress(logger)

			runner := c.newRunner(opts.noCache)
			defer runner.Cache.Close()

			spin := newSpinner(cmd.Context(), fmt.Sprintf("Rendering %d variants", count))
			spin.Start()
			variants := runner.Moodboard(cmd.Context(), opts.pipelineOptions(args[0]), count)
			spin.Stop()

			written := 0
			for _, v := range variants {
				if v.Err != nil {
					printWarning("Variant %s failed: %s", v.Seed, errors.UserMessage(v.Err))
					continue
				}
				path := filepath.Join(outDir, v.Seed+".png")
				if err := io.WritePNG(path, v.PNG); err != nil {
					printWarning("Variant %s: %s", v.Seed, err)
					continue
				}
				printFile(path)
				written++
			}

			if written == 0 {
				return fmt.Errorf("all %d variants failed", len(variants))
			}

			prog.done(fmt.Sprintf("Moodboard: %d/%d variants", written, len(variants)))
			printSuccess("%d variants written to %s", written, outDir)
			printDetail("Reproduce one: %s render %q --brand %s --seed <name>", appName, args[0], opts.brand)
			return nil
		},
	}

	addPosterFlags(cmd, &opts)
	cmd.Flags().IntVarP(&count, "count", "n", pipeline.DefaultMoodboardCount, "number of variants to render")
	cmd.Flags().StringVarP(&outDir, "out-dir", "d", "moodboard", "directory for variant PNGs")

	return cmd
}
