// Package cli builds the argument-free benchmark commands.
package cli

import (
	"context"
	"os"

	"github.com/san-kum/mandelbench/internal/bench"
	"github.com/san-kum/mandelbench/internal/config"
	"github.com/spf13/cobra"
)

// NewCommand returns a root command that runs the named preset and prints
// one timing line.
func NewCommand(use, preset string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: "time an escape-time Mandelbrot scan (" + preset + " preset)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, preset)
		},
	}
	cmd.CompletionOptions.DisableDefaultCmd = true

	return cmd
}

func run(cmd *cobra.Command, preset string) error {
	cfg, err := config.LoadPreset(preset)
	if err != nil {
		return err
	}
	params, err := cfg.Params()
	if err != nil {
		return err
	}
	if err := params.Validate(); err != nil {
		return err
	}

	// At this point usage information has already been printed if obviously incorrect.
	cmd.SilenceUsage = true

	report := bench.Run(params)
	return report.Write(cmd.OutOrStdout(), cfg.Label)
}

// Execute runs cmd and exits 1 on failure. Cobra has already printed the error.
func Execute(cmd *cobra.Command) {
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
