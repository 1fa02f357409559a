// Package parser reads cell data, used ranges and print areas back from a workbook.
package parser

import (
	"strconv"

	"github.com/gabrov/fluentxl/pkg/fluentxl/models"
	"github.com/xuri/excelize/v2"
)

// CellOptions selects what ExtractCells reads besides values.
type CellOptions struct {
	// Formulas includes cell formulas. Formula cells without a cached
	// value are kept as empty strings.
	Formulas bool
	// Links includes cell hyperlinks.
	Links bool
}

// ExtractCells extracts cell data from a sheet.
// It returns a slice of CellRow containing non-empty rows.
func ExtractCells(f *excelize.File, sheetName string, opts CellOptions) ([]models.CellRow, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	var result []models.CellRow
	for rowIdx, row := range rows {
		rowNum := rowIdx + 1 // 1-based row index
		cellMap := make(map[string]interface{})
		formulaMap := make(map[string]string)
		linkMap := make(map[string]string)

		for colIdx, cellValue := range row {
			cellName, err := excelize.CoordinatesToCellName(colIdx+1, rowNum)
			if err != nil {
				return nil, err
			}

			formula := ""
			if opts.Formulas {
				if formula, err = f.GetCellFormula(sheetName, cellName); err != nil {
					return nil, err
				}
			}
			if cellValue == "" && formula == "" {
				continue
			}
			colStr := strconv.Itoa(colIdx + 1) // 1-based column index as string

			cellMap[colStr] = parseValue(cellValue)
			if formula != "" {
				formulaMap[colStr] = formula
			}

			if opts.Links {
				hasLink, target, err := f.GetCellHyperLink(sheetName, cellName)
				if err == nil && hasLink && target != "" {
					linkMap[colStr] = target
				}
			}
		}

		if len(cellMap) == 0 {
			continue
		}
		cellRow := models.CellRow{
			R: rowNum,
			C: cellMap,
		}
		if len(formulaMap) > 0 {
			cellRow.F = formulaMap
		}
		if len(linkMap) > 0 {
			cellRow.Links = linkMap
		}
		result = append(result, cellRow)
	}

	return result, nil
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) interface{} {
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	// Return as string
	return s
}
