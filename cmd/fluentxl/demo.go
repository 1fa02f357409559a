package main

import (
	"github.com/gabrov/fluentxl/pkg/fluentxl"
	"github.com/gabrov/fluentxl/pkg/fluentxl/layout"
	"github.com/gabrov/fluentxl/pkg/fluentxl/style"
	"github.com/spf13/cobra"
	"github.com/xuri/excelize/v2"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

var quarters = []interface{}{"Q1", "Q2", "Q3", "Q4"}

var regions = []struct {
	name  string
	sales []interface{}
}{
	{"North", []interface{}{1200, 1350, 980, 1410}},
	{"South", []interface{}{860, 910, 1020, 1105}},
	{"East", []interface{}{1530, 1490, 1610, 1720}},
	{"West", []interface{}{640, 720, 700, 815}},
}

func newDemoCmd(a *app) *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Write a sample quarterly sales workbook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDemo(outputPath)
		},
	}
	cmd.Flags().StringVarP(&outputPath, "output", "o", "demo.xlsx", "Output xlsx path")
	return cmd
}

func (a *app) runDemo(outputPath string) error {
	wb := fluentxl.New(a.workbookOptions())
	defer wb.Close()

	if _, err := buildDemoSheet(wb); err != nil {
		return err
	}

	if err := wb.SaveAs(outputPath); err != nil {
		return err
	}
	a.logger.Info("demo workbook written", zap.String("output", outputPath))
	return nil
}

// buildDemoSheet lays out a region by quarter table with row and column
// totals and returns the first chain errors of every step combined.
func buildDemoSheet(wb *fluentxl.Workbook) (*fluentxl.Worksheet, error) {
	ws := wb.AddWorksheet("Sales")
	var errs []error
	cell := func(c *fluentxl.Cell) { errs = append(errs, c.Err()) }
	rng := func(r *fluentxl.Range) { errs = append(errs, r.Err()) }

	cell(ws.Cell("A1").WithValue("Quarterly sales").Bold().FontSize(14))
	rng(ws.Range("A1:F1").Merge())

	cell(ws.Cell("A2").WithValue("Region"))
	rng(ws.Range("B2:E2").WithValues(quarters...))
	cell(ws.Cell("F2").WithValue("Total"))
	rng(ws.Range("A2:F2").
		Bold().
		BackgroundTheme(style.Accent1, 0.4).
		Align(fluentxl.AlignCenter, fluentxl.AlignMiddle))

	names := make([]interface{}, len(regions))
	for i, r := range regions {
		names[i] = r.name
	}
	rng(ws.RangeAt(3, 1, 2+len(regions), 1).WithValues(names...))

	last := 2 + len(regions)
	for i, r := range regions {
		row := 3 + i
		rng(ws.RangeAt(row, 2, row, 5).WithValuesOriented(layout.Horizontal, r.sales...))
		cell(ws.CellAt(row, 6).WithSum(rangeRef(row, 2, row, 5)).Bold())
	}

	total := last + 1
	cell(ws.CellAt(total, 1).WithValue("Total").Bold())
	for col := 2; col <= 6; col++ {
		cell(ws.CellAt(total, col).
			WithSum(rangeRef(3, col, last, col)).
			Bold().
			Border(style.Top, style.BorderDouble, ""))
	}

	body := ws.RangeAt(3, 2, total, 6).NumberFormat(style.IntegerWithSeparator)
	body.WhenGreaterThan(1500, fluentxl.FontColor("006100"), fluentxl.Background("C6EFCE"))
	rng(body.WhenLessThan(750, fluentxl.FontColor("9C0006"), fluentxl.Background("FFC7CE")))

	table := ws.RangeAt(2, 1, total, 6).
		OutsideBorder(style.BorderMedium, "").
		InsideBorder(style.BorderThin, "BFBFBF")
	rng(table)

	cell(ws.CellAt(total+2, 1).WithValue("Q4 without East"))
	cell(ws.CellAt(total+2, 5).WithSum(rangeRef(3, 5, last, 5), "-E5").FormatCode("#,##0"))

	ws.AutoFitColumns().
		FreezePanes(2, 1).
		WithPrintArea(table.Address())
	errs = append(errs, ws.Err())

	return ws, multierr.Combine(errs...)
}

func rangeRef(r1, c1, r2, c2 int) string {
	from, _ := excelize.CoordinatesToCellName(c1, r1)
	to, _ := excelize.CoordinatesToCellName(c2, r2)
	return from + ":" + to
}
