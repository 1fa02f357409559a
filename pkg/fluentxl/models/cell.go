// Package models defines the data read back from a workbook.
package models

// CellRow is one non-empty row of a sheet.
type CellRow struct {
	// R is the row index (1-based).
	R int `json:"r"`
	// C maps column index (string) to cell value.
	C map[string]interface{} `json:"c"`
	// F maps column index to formula, without the leading "=" (optional).
	F map[string]string `json:"f,omitempty"`
	// Links maps column index to hyperlink URL (optional).
	Links map[string]string `json:"links,omitempty"`
}
