package main

import (
	"fmt"

	"github.com/gabrov/fluentxl/pkg/fluentxl/manifest"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newBuildCmd(a *app) *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "build [manifest.yaml]",
		Short: "Build a workbook from a YAML manifest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runBuild(args[0], outputPath)
		},
	}
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output xlsx path (required)")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}

func (a *app) runBuild(manifestPath, outputPath string) error {
	m, err := manifest.Load(manifestPath)
	if err != nil {
		return err
	}

	wb, err := manifest.Build(m, a.workbookOptions())
	if err != nil {
		return fmt.Errorf("build failed: %w", err)
	}
	defer wb.Close()

	if err := wb.SaveAs(outputPath); err != nil {
		return err
	}
	a.logger.Info("workbook built",
		zap.String("manifest", manifestPath),
		zap.String("output", outputPath),
		zap.Int("sheets", len(m.Sheets)))
	return nil
}
