package commands

import (
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/curve/internal/app"
)

// defaultSampleWidth matches a typical plot canvas width in pixels.
const defaultSampleWidth = 800

func (c *CLI) newSampleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sample <expression>",
		Short: "Print the points drawn for an expression",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			window, err := windowFlag(cmd)
			if err != nil {
				return err
			}
			width, _ := cmd.Flags().GetInt("width")
			asJSON, _ := cmd.Flags().GetBool("json")
			full, _ := cmd.Flags().GetBool("full")

			return c.app.Sample(cmd.Context(), app.SampleOptions{
				Config:     c.configOptions(cmd),
				Expression: strings.Join(args, " "),
				Window:     window,
				Width:      width,
				JSON:       asJSON,
				Full:       full,
			})
		},
	}
	cmd.Flags().String("window", "", "View as x_min,x_max,y_min,y_max")
	cmd.Flags().Int("width", defaultSampleWidth, "Maximum number of points")
	cmd.Flags().Bool("json", false, "Print a JSON document instead of a table")
	cmd.Flags().Bool("full", false, "Print every sample in the view without thinning")
	return cmd
}
