package parser

import (
	"github.com/xuri/excelize/v2"
)

// Bounds is a 1-based inclusive rectangle of cells.
type Bounds struct {
	MinRow, MinCol int
	MaxRow, MaxCol int
}

// Ref returns the bounds in A1 range notation, e.g. "A1:D10".
func (b Bounds) Ref() (string, error) {
	startCell, err := excelize.CoordinatesToCellName(b.MinCol, b.MinRow)
	if err != nil {
		return "", err
	}
	endCell, err := excelize.CoordinatesToCellName(b.MaxCol, b.MaxRow)
	if err != nil {
		return "", err
	}
	return startCell + ":" + endCell, nil
}

// DataBounds finds the bounding box of cells for which occupied returns true.
// Row and column indexes passed to occupied are 0-based. It returns false
// when no cell is occupied.
func DataBounds(rows [][]string, occupied func(row, col int, value string) bool) (Bounds, bool) {
	b := Bounds{MinRow: -1, MinCol: -1, MaxRow: -1, MaxCol: -1}

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if !occupied(rowIdx, colIdx, cell) {
				continue
			}
			if b.MinRow < 0 || rowIdx < b.MinRow {
				b.MinRow = rowIdx
			}
			if b.MaxRow < 0 || rowIdx > b.MaxRow {
				b.MaxRow = rowIdx
			}
			if b.MinCol < 0 || colIdx < b.MinCol {
				b.MinCol = colIdx
			}
			if b.MaxCol < 0 || colIdx > b.MaxCol {
				b.MaxCol = colIdx
			}
		}
	}

	if b.MinRow < 0 {
		return Bounds{}, false
	}
	return Bounds{MinRow: b.MinRow + 1, MinCol: b.MinCol + 1, MaxRow: b.MaxRow + 1, MaxCol: b.MaxCol + 1}, true
}

// NonEmpty treats any non-empty value as occupied.
func NonEmpty(_, _ int, value string) bool {
	return value != ""
}

// UsedRange returns the bounding box of cells holding a value or a formula.
// It returns false for a sheet without content.
func UsedRange(f *excelize.File, sheetName string) (Bounds, bool, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return Bounds{}, false, err
	}
	if len(rows) == 0 {
		return Bounds{}, false, nil
	}

	var lookupErr error
	b, ok := DataBounds(rows, func(row, col int, value string) bool {
		if value != "" {
			return true
		}
		if lookupErr != nil {
			return false
		}
		cellName, err := excelize.CoordinatesToCellName(col+1, row+1)
		if err != nil {
			lookupErr = err
			return false
		}
		formula, err := f.GetCellFormula(sheetName, cellName)
		if err != nil {
			lookupErr = err
			return false
		}
		return formula != ""
	})
	if lookupErr != nil {
		return Bounds{}, false, lookupErr
	}
	return b, ok, nil
}

// ExtractMergedRanges lists the merged ranges of a sheet, e.g. "A1:D1".
func ExtractMergedRanges(f *excelize.File, sheetName string) ([]string, error) {
	merged, err := f.GetMergeCells(sheetName)
	if err != nil {
		return nil, err
	}

	var result []string
	for _, mc := range merged {
		result = append(result, mc.GetStartAxis()+":"+mc.GetEndAxis())
	}
	return result, nil
}
