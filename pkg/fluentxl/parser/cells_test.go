package parser

import (
	"path/filepath"
	"testing"

	"github.com/gabrov/fluentxl/pkg/fluentxl/models"
	"github.com/google/go-cmp/cmp"
	"github.com/xuri/excelize/v2"
)

func TestExtractCells(t *testing.T) {
	// Create a temporary Excel file for testing
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "A1", "Header1")
	f.SetCellValue(sheetName, "B1", "Header2")
	f.SetCellValue(sheetName, "A2", 100)
	f.SetCellValue(sheetName, "B2", 200.5)
	f.SetCellValue(sheetName, "A3", "Text")
	f.SetCellHyperLink(sheetName, "A3", "https://example.com", "External")

	tmpFile := filepath.Join(t.TempDir(), "test.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	f2, err := excelize.OpenFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to open test file: %v", err)
	}
	defer f2.Close()

	rows, err := ExtractCells(f2, sheetName, CellOptions{})
	if err != nil {
		t.Fatalf("ExtractCells failed: %v", err)
	}

	if len(rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(rows))
	}
	if rows[0].R != 1 {
		t.Errorf("Expected row 1, got %d", rows[0].R)
	}
	if rows[0].C["1"] != "Header1" {
		t.Errorf("Expected 'Header1', got %v", rows[0].C["1"])
	}
	if rows[1].C["1"] != int64(100) {
		t.Errorf("Expected int64(100), got %v (type: %T)", rows[1].C["1"], rows[1].C["1"])
	}
	if rows[1].C["2"] != 200.5 {
		t.Errorf("Expected 200.5, got %v", rows[1].C["2"])
	}
	if rows[2].Links != nil {
		t.Errorf("Expected no links without CellOptions.Links, got %v", rows[2].Links)
	}

	rows, err = ExtractCells(f2, sheetName, CellOptions{Links: true})
	if err != nil {
		t.Fatalf("ExtractCells with links failed: %v", err)
	}
	if rows[2].Links["1"] != "https://example.com" {
		t.Errorf("Expected hyperlink on A3, got %v", rows[2].Links)
	}
}

func TestExtractCellsFormulas(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetCellValue("Sheet1", "A1", 1)
	f.SetCellValue("Sheet1", "A2", 2)
	f.SetCellFormula("Sheet1", "A3", "SUM(A1:A2)")

	rows, err := ExtractCells(f, "Sheet1", CellOptions{Formulas: true})
	if err != nil {
		t.Fatalf("ExtractCells failed: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(rows))
	}
	if rows[2].F["1"] != "SUM(A1:A2)" {
		t.Errorf("Expected formula on A3, got %v", rows[2].F)
	}
	if rows[0].F != nil {
		t.Errorf("Expected no formulas on row 1, got %v", rows[0].F)
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		input    string
		expected interface{}
	}{
		{"123", int64(123)},
		{"123.45", 123.45},
		{"-100", int64(-100)},
		{"hello", "hello"},
		{"", ""},
	}

	for _, tt := range tests {
		result := parseValue(tt.input)
		if result != tt.expected {
			t.Errorf("parseValue(%q) = %v (type: %T), expected %v (type: %T)",
				tt.input, result, result, tt.expected, tt.expected)
		}
	}
}

func TestDataBounds(t *testing.T) {
	rows := [][]string{
		{},
		{"", "x", ""},
		{"", "", "", "y"},
	}

	b, ok := DataBounds(rows, NonEmpty)
	if !ok {
		t.Fatal("Expected bounds")
	}
	want := Bounds{MinRow: 2, MinCol: 2, MaxRow: 3, MaxCol: 4}
	if diff := cmp.Diff(want, b); diff != "" {
		t.Errorf("DataBounds mismatch (-want +got):\n%s", diff)
	}
	if ref, _ := b.Ref(); ref != "B2:D3" {
		t.Errorf("Expected B2:D3, got %s", ref)
	}

	if _, ok := DataBounds([][]string{{"", ""}}, NonEmpty); ok {
		t.Error("Expected no bounds for empty rows")
	}
}

func TestUsedRange(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	if _, ok, err := UsedRange(f, "Sheet1"); err != nil || ok {
		t.Fatalf("Expected empty sheet to have no used range, got ok=%v err=%v", ok, err)
	}

	f.SetCellValue("Sheet1", "B2", "x")
	f.SetCellValue("Sheet1", "C2", 1)
	f.SetCellFormula("Sheet1", "C4", "SUM(C2:C3)")

	b, ok, err := UsedRange(f, "Sheet1")
	if err != nil || !ok {
		t.Fatalf("UsedRange failed: ok=%v err=%v", ok, err)
	}
	if ref, _ := b.Ref(); ref != "B2:C4" {
		t.Errorf("Expected B2:C4, got %s", ref)
	}
}

func TestPrintAreas(t *testing.T) {
	tests := []struct {
		ref       string
		sheetName string
		areas     []models.PrintArea
	}{
		{"Sheet1!$A$1:$D$10", "Sheet1", []models.PrintArea{{R1: 1, C1: 1, R2: 10, C2: 4}}},
		{"'Q1 Sales'!$B$2:$C$3,'Q1 Sales'!$E$1", "Q1 Sales", []models.PrintArea{
			{R1: 2, C1: 2, R2: 3, C2: 3},
			{R1: 1, C1: 5, R2: 1, C2: 5},
		}},
		{"'It''s'!$A$1:$A$2", "It's", []models.PrintArea{{R1: 1, C1: 1, R2: 2, C2: 1}}},
	}

	for _, tt := range tests {
		sheetName, areas := parsePrintAreaReference(tt.ref)
		if sheetName != tt.sheetName {
			t.Errorf("parsePrintAreaReference(%q) sheet = %q, expected %q", tt.ref, sheetName, tt.sheetName)
		}
		if diff := cmp.Diff(tt.areas, areas); diff != "" {
			t.Errorf("parsePrintAreaReference(%q) mismatch (-want +got):\n%s", tt.ref, diff)
		}
	}
}

func TestFormatPrintArea(t *testing.T) {
	tests := []struct {
		sheetName string
		areas     []models.PrintArea
		expected  string
	}{
		{"Sheet1", []models.PrintArea{{R1: 1, C1: 1, R2: 6, C2: 4}}, "Sheet1!$A$1:$D$6"},
		{"Q1 Sales", []models.PrintArea{{R1: 2, C1: 2, R2: 3, C2: 3}}, "'Q1 Sales'!$B$2:$C$3"},
		{"It's", []models.PrintArea{{R1: 1, C1: 1, R2: 1, C2: 1}}, "'It''s'!$A$1:$A$1"},
	}

	for _, tt := range tests {
		result, err := FormatPrintArea(tt.sheetName, tt.areas...)
		if err != nil {
			t.Errorf("FormatPrintArea(%q) failed: %v", tt.sheetName, err)
			continue
		}
		if result != tt.expected {
			t.Errorf("FormatPrintArea(%q) = %q, expected %q", tt.sheetName, result, tt.expected)
		}
	}
}
