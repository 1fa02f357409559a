// Package main provides the CLI entry point for fluentxl.
package main

import (
	"fmt"
	"os"

	"github.com/gabrov/fluentxl/pkg/fluentxl"
	"github.com/gabrov/fluentxl/pkg/fluentxl/formula"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app holds the state shared by one command tree.
type app struct {
	verbose bool
	logger  *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	rootCmd := &cobra.Command{
		Use:   "fluentxl",
		Short: "Build and inspect Excel workbooks",
		Long: `fluentxl builds xlsx workbooks from YAML manifests and dumps
workbook content as JSON.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			if a.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			l, err := config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.logger = l
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(newBuildCmd(a), newDumpCmd(a), newDemoCmd(a), newFormulaCmd())
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func (a *app) workbookOptions() fluentxl.Options {
	opts := fluentxl.DefaultOptions()
	opts.Logger = a.logger
	return opts
}

func newFormulaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formula [ref...]",
		Short: "Print the SUM formula composed from references",
		Long: `Composes one additive formula from cell and range references.
Ranges are wrapped in SUM, single cells stay bare, and a leading "-"
subtracts a term. Use "--" before negated references.

Example:
  fluentxl formula -- A1:A5 -B1`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := formula.Compose(args...)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "=%s\n", f)
			return nil
		},
	}
}
