package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gabrov/fluentxl/pkg/fluentxl"
	"github.com/gabrov/fluentxl/pkg/fluentxl/models"
	"github.com/gabrov/fluentxl/pkg/fluentxl/output"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type dumpFlags struct {
	outputPath    string
	pretty        bool
	formulas      bool
	links         bool
	sheetsDir     string
	printAreasDir string
}

func newDumpCmd(a *app) *cobra.Command {
	var flags dumpFlags

	cmd := &cobra.Command{
		Use:   "dump [input.xlsx]",
		Short: "Dump workbook content as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDump(cmd, args[0], flags)
		},
	}
	cmd.Flags().StringVarP(&flags.outputPath, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().BoolVar(&flags.pretty, "pretty", false, "Pretty-print JSON output")
	cmd.Flags().BoolVar(&flags.formulas, "formulas", false, "Include cell formulas")
	cmd.Flags().BoolVar(&flags.links, "links", false, "Include cell hyperlinks")
	cmd.Flags().StringVar(&flags.sheetsDir, "sheets-dir", "", "Directory for per-sheet output files")
	cmd.Flags().StringVar(&flags.printAreasDir, "print-areas-dir", "", "Directory for per-print-area output files")
	return cmd
}

func (a *app) runDump(cmd *cobra.Command, inputPath string, flags dumpFlags) error {
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	wb, err := fluentxl.Extract(inputPath, fluentxl.ExtractOptions{
		IncludeFormulas: flags.formulas,
		IncludeLinks:    flags.links,
	})
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	jsonData, err := output.ToJSON(wb, flags.pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if flags.outputPath != "" {
		if err := os.WriteFile(flags.outputPath, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	} else if flags.sheetsDir == "" && flags.printAreasDir == "" {
		fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
	}

	if flags.sheetsDir != "" {
		if err := writeSheetFiles(wb, flags.sheetsDir, flags.pretty); err != nil {
			return fmt.Errorf("failed to write sheet files: %w", err)
		}
	}

	if flags.printAreasDir != "" {
		if err := writePrintAreaFiles(wb, flags.printAreasDir, flags.pretty); err != nil {
			return fmt.Errorf("failed to write print area files: %w", err)
		}
	}

	a.logger.Debug("dumped workbook", zap.String("input", inputPath), zap.Int("sheets", len(wb.Sheets)))
	return nil
}

func writeSheetFiles(wb *models.WorkbookData, dir string, pretty bool) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	for sheetName, sheet := range wb.Sheets {
		jsonData, err := output.SheetToJSON(&sheet, pretty)
		if err != nil {
			return err
		}

		filename := filepath.Join(dir, sheetName+".json")
		if err := os.WriteFile(filename, jsonData, 0644); err != nil {
			return err
		}
	}

	return nil
}

func writePrintAreaFiles(wb *models.WorkbookData, dir string, pretty bool) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	for sheetName, sheet := range wb.Sheets {
		for i, area := range sheet.PrintAreas {
			view := fluentxl.PrintAreaView(wb.BookName, sheetName, sheet, area)
			jsonData, err := output.PrintAreaViewToJSON(&view, pretty)
			if err != nil {
				return err
			}

			filename := filepath.Join(dir, fmt.Sprintf("%s_area%d.json", sheetName, i+1))
			if err := os.WriteFile(filename, jsonData, 0644); err != nil {
				return err
			}
		}
	}

	return nil
}
