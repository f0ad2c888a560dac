package commands

import (
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/curve/internal/app"
)

func (c *CLI) newPlotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plot [expression]",
		Short: "Plot an expression interactively",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			window, err := windowFlag(cmd)
			if err != nil {
				return err
			}
			watch, _ := cmd.Flags().GetBool("watch")
			outputMode, _ := cmd.Flags().GetString("output-mode")
			color, _ := cmd.Flags().GetString("color")
			ci, _ := cmd.Flags().GetBool("ci")

			// If --ci is set, override output-mode to "linear"
			if ci {
				outputMode = "linear"
			}

			return c.app.Plot(cmd.Context(), app.PlotOptions{
				Config:     c.configOptions(cmd),
				Expression: strings.Join(args, " "),
				Color:      color,
				Window:     window,
				Watch:      watch,
				OutputMode: outputMode,
			})
		},
	}
	cmd.Flags().BoolP("watch", "w", false, "Reload the config file when it changes")
	cmd.Flags().StringP("output-mode", "o", "auto", "Output mode: auto, tui, or linear")
	cmd.Flags().Bool("ci", false, "Use linear output mode (shorthand for --output-mode=linear)")
	cmd.Flags().String("color", "", "Curve color name")
	cmd.Flags().String("window", "", "Initial view as x_min,x_max,y_min,y_max")
	return cmd
}
