package fluentxl

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gabrov/fluentxl/pkg/fluentxl/models"
	"github.com/gabrov/fluentxl/pkg/fluentxl/parser"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

const (
	defaultColumnWidth = 8.43
	maxColumnWidth     = 255
)

// Worksheet is one sheet of a Workbook.
type Worksheet struct {
	wb   *Workbook
	name string
	err  error
}

// Name returns the sheet name.
func (ws *Worksheet) Name() string {
	return ws.name
}

// Workbook returns the owning workbook.
func (ws *Worksheet) Workbook() *Workbook {
	return ws.wb
}

// Err returns the first error recorded on the worksheet.
func (ws *Worksheet) Err() error {
	return ws.err
}

func (ws *Worksheet) fail(ref, op string, err error) {
	if ws.err == nil {
		ws.err = NewOperationError(ws.name, ref, op, err)
	}
}

// Cell returns the cell at an A1 reference such as "B3" or "$B$3".
func (ws *Worksheet) Cell(ref string) *Cell {
	col, row, err := excelize.CellNameToCoordinates(strings.ReplaceAll(ref, "$", ""))
	if err != nil {
		c := newCell(ws, 1, 1)
		c.ref = ref
		c.err = NewOperationError(ws.name, ref, "cell", fmt.Errorf("%w: %v", ErrInvalidRef, err))
		return c
	}
	return ws.CellAt(row, col)
}

// CellAt returns the cell at 1-based row and column.
func (ws *Worksheet) CellAt(row, col int) *Cell {
	c := newCell(ws, row, col)
	if ws.err != nil {
		c.err = ws.err
		return c
	}
	ref, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		c.err = NewOperationError(ws.name, fmt.Sprintf("R%dC%d", row, col), "cell", fmt.Errorf("%w: %v", ErrInvalidRef, err))
		return c
	}
	c.ref = ref
	return c
}

// Range returns the range at an A1 reference such as "A1:D4". A single cell
// reference yields a 1x1 range. The corners may be given in any order.
func (ws *Worksheet) Range(ref string) *Range {
	area, ok := parser.ParseRangeToArea(ref)
	if !ok {
		r := newRange(ws, 1, 1, 1, 1)
		r.err = NewOperationError(ws.name, ref, "range", ErrInvalidRef)
		return r
	}
	return ws.RangeAt(area.R1, area.C1, area.R2, area.C2)
}

// RangeAt returns the range spanning rows r1..r2 and columns c1..c2.
func (ws *Worksheet) RangeAt(r1, c1, r2, c2 int) *Range {
	if r2 < r1 {
		r1, r2 = r2, r1
	}
	if c2 < c1 {
		c1, c2 = c2, c1
	}
	r := newRange(ws, r1, c1, r2, c2)
	if ws.err != nil {
		r.err = ws.err
		return r
	}
	if _, err := excelize.CoordinatesToCellName(c1, r1); err != nil {
		r.err = NewOperationError(ws.name, "", "range", fmt.Errorf("%w: %v", ErrInvalidRef, err))
		return r
	}
	if _, err := excelize.CoordinatesToCellName(c2, r2); err != nil {
		r.err = NewOperationError(ws.name, "", "range", fmt.Errorf("%w: %v", ErrInvalidRef, err))
	}
	return r
}

// Cells returns the cells of ref in row-major order.
func (ws *Worksheet) Cells(ref string) []*Cell {
	return ws.Range(ref).Cells()
}

// WithColumnWidth sets the width of a column ("B") or span of columns ("B:D").
func (ws *Worksheet) WithColumnWidth(cols string, width float64) *Worksheet {
	if ws.err != nil {
		return ws
	}
	start, end, _ := strings.Cut(cols, ":")
	if end == "" {
		end = start
	}
	if err := ws.wb.f.SetColWidth(ws.name, start, end, width); err != nil {
		ws.fail(cols, "column width", err)
	}
	return ws
}

// WithRowHeight sets the height of a 1-based row in points.
func (ws *Worksheet) WithRowHeight(row int, height float64) *Worksheet {
	if ws.err != nil {
		return ws
	}
	if err := ws.wb.f.SetRowHeight(ws.name, row, height); err != nil {
		ws.fail(fmt.Sprintf("%d:%d", row, row), "row height", err)
	}
	return ws
}

// AutoFitColumns sizes every column holding values to its longest rendered
// value. Columns without values keep their width.
func (ws *Worksheet) AutoFitColumns() *Worksheet {
	if ws.err != nil {
		return ws
	}
	rows, err := ws.wb.f.GetRows(ws.name)
	if err != nil {
		ws.fail("", "auto-fit columns", err)
		return ws
	}

	longest := make(map[int]int)
	for _, row := range rows {
		for colIdx, value := range row {
			for _, line := range strings.Split(value, "\n") {
				if n := utf8.RuneCountInString(line); n > longest[colIdx+1] {
					longest[colIdx+1] = n
				}
			}
		}
	}

	for col, n := range longest {
		if n == 0 {
			continue
		}
		name, err := excelize.ColumnNumberToName(col)
		if err != nil {
			ws.fail("", "auto-fit columns", err)
			return ws
		}
		width := float64(n) + 2
		if width < defaultColumnWidth {
			width = defaultColumnWidth
		}
		if width > maxColumnWidth {
			width = maxColumnWidth
		}
		if err := ws.wb.f.SetColWidth(ws.name, name, name, width); err != nil {
			ws.fail(name, "auto-fit columns", err)
			return ws
		}
	}
	return ws
}

// FreezePanes keeps the top rows and left columns visible while scrolling.
func (ws *Worksheet) FreezePanes(rows, cols int) *Worksheet {
	if ws.err != nil {
		return ws
	}
	if rows < 0 || cols < 0 {
		ws.fail("", "freeze panes", fmt.Errorf("negative split %d,%d", rows, cols))
		return ws
	}
	if rows == 0 && cols == 0 {
		if err := ws.wb.f.SetPanes(ws.name, &excelize.Panes{}); err != nil {
			ws.fail("", "freeze panes", err)
		}
		return ws
	}

	topLeft, err := excelize.CoordinatesToCellName(cols+1, rows+1)
	if err != nil {
		ws.fail("", "freeze panes", err)
		return ws
	}
	pane := "bottomRight"
	switch {
	case cols == 0:
		pane = "bottomLeft"
	case rows == 0:
		pane = "topRight"
	}
	err = ws.wb.f.SetPanes(ws.name, &excelize.Panes{
		Freeze:      true,
		XSplit:      cols,
		YSplit:      rows,
		TopLeftCell: topLeft,
		ActivePane:  pane,
		Selection: []excelize.Selection{
			{SQRef: topLeft, ActiveCell: topLeft, Pane: pane},
		},
	})
	if err != nil {
		ws.fail(topLeft, "freeze panes", err)
	}
	return ws
}

// WithPrintArea sets the sheet print area to one or more ranges.
func (ws *Worksheet) WithPrintArea(refs ...string) *Worksheet {
	if ws.err != nil {
		return ws
	}
	if len(refs) == 0 {
		ws.fail("", "print area", fmt.Errorf("%w: no range given", ErrInvalidRef))
		return ws
	}

	areas := make([]models.PrintArea, 0, len(refs))
	for _, ref := range refs {
		area, ok := parser.ParseRangeToArea(ref)
		if !ok {
			ws.fail(ref, "print area", ErrInvalidRef)
			return ws
		}
		areas = append(areas, area)
	}
	refersTo, err := parser.FormatPrintArea(ws.name, areas...)
	if err != nil {
		ws.fail("", "print area", err)
		return ws
	}

	for _, dn := range ws.wb.f.GetDefinedName() {
		if dn.Name != parser.PrintAreaName || dn.Scope != ws.name {
			continue
		}
		if err := ws.wb.f.DeleteDefinedName(&excelize.DefinedName{Name: dn.Name, Scope: dn.Scope}); err != nil {
			ws.fail(dn.RefersTo, "print area", err)
			return ws
		}
	}
	err = ws.wb.f.SetDefinedName(&excelize.DefinedName{
		Name:     parser.PrintAreaName,
		RefersTo: refersTo,
		Scope:    ws.name,
	})
	if err != nil {
		ws.fail(refersTo, "print area", err)
		return ws
	}
	ws.wb.log.Debug("set print area", zap.String("sheet", ws.name), zap.String("refers_to", refersTo))
	return ws
}

// PrintAreas returns the print areas defined for the sheet.
func (ws *Worksheet) PrintAreas() ([]models.PrintArea, error) {
	if ws.err != nil {
		return nil, ws.err
	}
	all, err := parser.ExtractPrintAreas(ws.wb.f)
	if err != nil {
		return nil, NewOperationError(ws.name, "", "print areas", err)
	}
	return all[ws.name], nil
}

// UsedRange returns the smallest range holding every value and formula of
// the sheet, or nil for an empty sheet.
func (ws *Worksheet) UsedRange() *Range {
	if ws.err != nil {
		r := newRange(ws, 1, 1, 1, 1)
		r.err = ws.err
		return r
	}
	b, ok, err := parser.UsedRange(ws.wb.f, ws.name)
	if err != nil {
		r := newRange(ws, 1, 1, 1, 1)
		r.err = NewOperationError(ws.name, "", "used range", err)
		return r
	}
	if !ok {
		return nil
	}
	return ws.RangeAt(b.MinRow, b.MinCol, b.MaxRow, b.MaxCol)
}

// Activate makes the sheet the active one.
func (ws *Worksheet) Activate() *Worksheet {
	if ws.err != nil {
		return ws
	}
	if err := ws.wb.SetActive(ws.name); err != nil {
		ws.fail("", "activate", err)
	}
	return ws
}

// restyle applies opts on top of the current style of every cell in the
// rectangle. Cells sharing a style are registered once.
func (ws *Worksheet) restyle(r1, c1, r2, c2 int, opts func(row, col int) []StyleOption) error {
	f := ws.wb.f
	type key struct {
		styleID int
		variant string
	}
	registered := make(map[key]int)

	for row := r1; row <= r2; row++ {
		for col := c1; col <= c2; col++ {
			cellOpts := opts(row, col)
			if len(cellOpts) == 0 {
				continue
			}
			ref, err := excelize.CoordinatesToCellName(col, row)
			if err != nil {
				return err
			}
			current, err := f.GetCellStyle(ws.name, ref)
			if err != nil {
				return err
			}

			k := key{styleID: current, variant: variantOf(row, col, r1, c1, r2, c2)}
			id, ok := registered[k]
			if !ok {
				st, err := f.GetStyle(current)
				if err != nil {
					return err
				}
				for _, opt := range cellOpts {
					if err := opt(st, f); err != nil {
						return err
					}
				}
				if id, err = f.NewStyle(st); err != nil {
					ws.wb.log.Debug("style rejected", zap.String("sheet", ws.name), zap.String("cell", ref), zap.Error(err))
					return err
				}
				registered[k] = id
			}
			if err := f.SetCellStyle(ws.name, ref, ref, id); err != nil {
				return err
			}
		}
	}
	return nil
}

// variantOf classifies a cell by its position on the rectangle's edges, so
// edge-dependent options are cached per position class.
func variantOf(row, col, r1, c1, r2, c2 int) string {
	var b [4]byte
	flag := func(i int, on bool) {
		b[i] = '0'
		if on {
			b[i] = '1'
		}
	}
	flag(0, row == r1)
	flag(1, row == r2)
	flag(2, col == c1)
	flag(3, col == c2)
	return string(b[:])
}
