package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/amadad/phantom/pkg/compose"
	"github.com/amadad/phantom/pkg/io"
)

// planOutput is the JSON document printed by the plan command.
type planOutput struct {
	Plan   compose.StylePlan    `json:"plan"`
	Layout compose.LayoutResult `json:"layout"`
}

// planCommand creates the plan command, a debug tool that prints the style
// plan and layout geometry a render would use without rasterizing anything.
func (c *CLI) planCommand() *cobra.Command {
	var opts posterOpts
	var output string

	cmd := &cobra.Command{
		Use:   "plan [headline]",
		Short: "Print the style plan and layout without rendering",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateRatio(opts.ratio); err != nil {
				return err
			}

			runner := c.newRunner(true)
			plan, layout, err := runner.Plan(cmd.Context(), opts.pipelineOptions(args[0]))
			if err != nil {
				return err
			}

			doc := planOutput{Plan: plan, Layout: layout}
			if output != "" {
				if err := io.WriteJSON(output, doc); err != nil {
					return err
				}
				printSuccess("Plan written")
				printFile(output)
				return nil
			}

			data, err := json.MarshalIndent(doc, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(data))
			return nil
		},
	}

	addPosterFlags(cmd, &opts)
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the plan as JSON to a file instead of stdout")

	return cmd
}
