package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/gabrov/fluentxl/pkg/fluentxl/models"
)

func TestToJSON(t *testing.T) {
	wb := &models.WorkbookData{
		BookName:   "book.xlsx",
		SheetOrder: []string{"Sheet1"},
		Sheets: map[string]models.SheetData{
			"Sheet1": {
				Rows: []models.CellRow{
					{R: 1, C: map[string]interface{}{"1": "Q1"}, F: map[string]string{"2": "SUM(A1:A4)"}},
				},
				UsedRange: "A1:B1",
			},
		},
	}

	compact, err := ToJSON(wb, false)
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}
	if bytes.Contains(compact, []byte("\n")) {
		t.Error("Expected compact output on one line")
	}

	pretty, err := ToJSON(wb, true)
	if err != nil {
		t.Fatalf("ToJSON pretty failed: %v", err)
	}
	if !bytes.Contains(pretty, []byte("\n  ")) {
		t.Error("Expected indented output")
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(compact, &decoded); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}
	sheets := decoded["sheets"].(map[string]interface{})
	sheet := sheets["Sheet1"].(map[string]interface{})
	if sheet["used_range"] != "A1:B1" {
		t.Errorf("Expected used_range A1:B1, got %v", sheet["used_range"])
	}
	if _, ok := sheet["print_areas"]; ok {
		t.Error("Expected empty print_areas to be omitted")
	}
}
