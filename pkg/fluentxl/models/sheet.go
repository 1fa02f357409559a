package models

// SheetData is the content of a single sheet.
type SheetData struct {
	// Rows contains rows with cell values, formulas and links.
	Rows []CellRow `json:"rows,omitempty"`
	// UsedRange is the bounding range of non-empty cells (e.g. "A1:D6").
	UsedRange string `json:"used_range,omitempty"`
	// MergedRanges lists merged cell ranges.
	MergedRanges []string `json:"merged_ranges,omitempty"`
	// PrintAreas contains user-defined print areas.
	PrintAreas []PrintArea `json:"print_areas,omitempty"`
}
