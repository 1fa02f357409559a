package parser

import (
	"fmt"
	"strings"

	"github.com/gabrov/fluentxl/pkg/fluentxl/models"
	"github.com/xuri/excelize/v2"
)

// PrintAreaName is the reserved defined name holding a sheet's print area.
const PrintAreaName = "_xlnm.Print_Area"

// ExtractPrintAreas extracts print areas from a workbook.
// Returns a map of sheet name to list of print areas.
func ExtractPrintAreas(f *excelize.File) (map[string][]models.PrintArea, error) {
	result := make(map[string][]models.PrintArea)

	for _, dn := range f.GetDefinedName() {
		if !strings.EqualFold(dn.Name, PrintAreaName) {
			continue
		}
		sheetName, areas := parsePrintAreaReference(dn.RefersTo)
		if sheetName == "" {
			sheetName = dn.Scope
		}
		if sheetName != "" && len(areas) > 0 {
			result[sheetName] = append(result[sheetName], areas...)
		}
	}

	return result, nil
}

// parsePrintAreaReference parses a print area reference string.
// Format: 'SheetName'!$A$1:$D$10 or SheetName!$A$1:$D$10
func parsePrintAreaReference(ref string) (string, []models.PrintArea) {
	var areas []models.PrintArea

	// Split by comma for multiple print areas
	parts := strings.Split(ref, ",")

	var sheetName string
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		idx := strings.LastIndex(part, "!")
		if idx < 0 {
			continue
		}
		sheet := strings.ReplaceAll(strings.Trim(part[:idx], "'"), "''", "'")
		if sheetName == "" {
			sheetName = sheet
		}
		if area, ok := ParseRangeToArea(part[idx+1:]); ok {
			areas = append(areas, area)
		}
	}

	return sheetName, areas
}

// ParseRangeToArea parses a range string like $A$1:$D$10 to a PrintArea.
// A single cell yields a one-cell area.
func ParseRangeToArea(rangeStr string) (models.PrintArea, bool) {
	rangeStr = strings.ReplaceAll(strings.TrimSpace(rangeStr), "$", "")

	parts := strings.Split(rangeStr, ":")
	if len(parts) == 1 {
		parts = append(parts, parts[0])
	}
	if len(parts) != 2 {
		return models.PrintArea{}, false
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return models.PrintArea{}, false
	}
	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return models.PrintArea{}, false
	}
	if endRow < startRow {
		startRow, endRow = endRow, startRow
	}
	if endCol < startCol {
		startCol, endCol = endCol, startCol
	}

	return models.PrintArea{
		R1: startRow,
		C1: startCol,
		R2: endRow,
		C2: endCol,
	}, true
}

// FormatPrintArea renders areas as a defined-name reference on sheetName,
// e.g. 'Q1 Sales'!$A$1:$D$6.
func FormatPrintArea(sheetName string, areas ...models.PrintArea) (string, error) {
	sheet := QuoteSheetName(sheetName)
	refs := make([]string, 0, len(areas))
	for _, a := range areas {
		start, err := excelize.CoordinatesToCellName(a.C1, a.R1, true)
		if err != nil {
			return "", err
		}
		end, err := excelize.CoordinatesToCellName(a.C2, a.R2, true)
		if err != nil {
			return "", err
		}
		refs = append(refs, fmt.Sprintf("%s!%s:%s", sheet, start, end))
	}
	return strings.Join(refs, ","), nil
}

// QuoteSheetName quotes a sheet name for use in a reference when it holds
// anything other than letters, digits, underscores and dots.
func QuoteSheetName(name string) string {
	for _, r := range name {
		if !(r == '_' || r == '.' || r >= '0' && r <= '9' || r >= 'A' && r <= 'Z' || r >= 'a' && r <= 'z') {
			return "'" + strings.ReplaceAll(name, "'", "''") + "'"
		}
	}
	return name
}
