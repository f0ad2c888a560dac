// Package commands implements the CLI commands for curve.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/curve/internal/app"
	"go.trai.ch/curve/internal/build"
	"go.trai.ch/curve/internal/core/domain"
)

// CLI represents the command line interface for curve.
type CLI struct {
	app        Application
	rootCmd    *cobra.Command
	configPath string
}

// Application represents the application logic interface.
type Application interface {
	Plot(ctx context.Context, opts app.PlotOptions) error
	Sample(ctx context.Context, opts app.SampleOptions) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "curve",
		Short:         "Plot single-variable functions in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentFlags().StringVarP(&c.configPath, "config", "c", domain.ConfigFileName, "Path to the config file")

	rootCmd.AddCommand(c.newPlotCmd())
	rootCmd.AddCommand(c.newSampleCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

func (c *CLI) configOptions(cmd *cobra.Command) app.ConfigOptions {
	return app.ConfigOptions{
		Path:     c.configPath,
		Explicit: cmd.Flags().Changed("config"),
	}
}

// windowFlag parses the --window flag when it was set.
func windowFlag(cmd *cobra.Command) (*domain.Window, error) {
	if !cmd.Flags().Changed("window") {
		return nil, nil
	}
	raw, _ := cmd.Flags().GetString("window")
	w, err := domain.ParseWindow(raw)
	if err != nil {
		return nil, err
	}
	return &w, nil
}
