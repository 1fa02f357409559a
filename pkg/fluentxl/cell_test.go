package fluentxl

import (
	"archive/zip"
	"bytes"
	"errors"
	"io"
	"regexp"
	"strings"
	"testing"

	"github.com/gabrov/fluentxl/pkg/fluentxl/formula"
	"github.com/gabrov/fluentxl/pkg/fluentxl/style"
	"github.com/xuri/excelize/v2"
)

func cellStyle(t *testing.T, ws *Worksheet, ref string) *excelize.Style {
	t.Helper()
	f := ws.Workbook().File()
	id, err := f.GetCellStyle(ws.Name(), ref)
	if err != nil {
		t.Fatalf("GetCellStyle(%s) failed: %v", ref, err)
	}
	st, err := f.GetStyle(id)
	if err != nil {
		t.Fatalf("GetStyle(%d) failed: %v", id, err)
	}
	return st
}

func borderStyle(st *excelize.Style, side style.BorderSide) int {
	for _, b := range st.Border {
		if b.Type == side.Type() {
			return b.Style
		}
	}
	return 0
}

func hasFill(st *excelize.Style, hex string) bool {
	for _, c := range st.Fill.Color {
		if strings.HasSuffix(strings.ToUpper(c), hex) {
			return true
		}
	}
	return false
}

func TestCellValueAndFormula(t *testing.T) {
	ws := newTestWorkbook(t, DefaultOptions()).AddWorksheet("Sheet")

	c := ws.Cell("B3").WithValue(12.5)
	if err := c.Err(); err != nil {
		t.Fatalf("WithValue failed: %v", err)
	}
	if c.Address() != "B3" || c.Row() != 3 || c.Column() != 2 {
		t.Errorf("Unexpected position %s (%d,%d)", c.Address(), c.Row(), c.Column())
	}
	if v, _ := c.Value(); v != "12.5" {
		t.Errorf("Expected 12.5, got %q", v)
	}

	// nil leaves the existing value in place
	c.WithValue(nil)
	if v, _ := c.Value(); v != "12.5" {
		t.Errorf("Expected nil to keep 12.5, got %q", v)
	}

	ws.Cell("$C$4").WithFormula("=B3*2")
	if f, _ := ws.Cell("C4").Formula(); f != "B3*2" {
		t.Errorf("Expected formula B3*2, got %q", f)
	}
}

func TestCellWithSum(t *testing.T) {
	ws := newTestWorkbook(t, DefaultOptions()).AddWorksheet("Sheet")

	tests := []struct {
		ref      string
		refs     []string
		expected string
	}{
		{"A10", []string{"A1:A5"}, "SUM(A1:A5)"},
		{"B10", []string{"B1"}, "SUM(B1)"},
		{"C10", []string{"A1:A5", "-B1:B5"}, "SUM(A1:A5)+-SUM(B1:B5)"},
		{"D10", []string{"A1", "B2"}, "A1+B2"},
	}

	for _, tt := range tests {
		c := ws.Cell(tt.ref).WithSum(tt.refs...)
		if err := c.Err(); err != nil {
			t.Errorf("WithSum(%q) failed: %v", tt.refs, err)
			continue
		}
		if f, _ := c.Formula(); f != tt.expected {
			t.Errorf("WithSum(%q) formula = %q, expected %q", tt.refs, f, tt.expected)
		}
	}

	c := ws.Cell("E10").WithSum().WithValue(1)
	if !errors.Is(c.Err(), formula.ErrInvalidArgument) {
		t.Errorf("Expected ErrInvalidArgument, got %v", c.Err())
	}
	if v, _ := ws.Cell("E10").Value(); v != "" {
		t.Errorf("Setters after a failure must not write, got %q", v)
	}
}

func TestCellInvalidRef(t *testing.T) {
	ws := newTestWorkbook(t, DefaultOptions()).AddWorksheet("Sheet")

	if err := ws.Cell("1A").WithValue(1).Err(); !errors.Is(err, ErrInvalidRef) {
		t.Errorf("Expected ErrInvalidRef, got %v", err)
	}
	if err := ws.CellAt(0, 1).WithValue(1).Err(); !errors.Is(err, ErrInvalidRef) {
		t.Errorf("Expected ErrInvalidRef for row 0, got %v", err)
	}
}

func TestCellStyleChain(t *testing.T) {
	ws := newTestWorkbook(t, DefaultOptions()).AddWorksheet("Sheet")

	c := ws.Cell("A1").
		WithValue(1234.5).
		Bold().
		Italic().
		FontSize(14).
		FontColor("#c00000").
		Background("DDEBF7").
		Border(style.Bottom, style.BorderDouble, "").
		Align(AlignCenter, AlignMiddle).
		NumberFormat(style.Precision2WithSeparator)
	if err := c.Err(); err != nil {
		t.Fatalf("Style chain failed: %v", err)
	}

	st := cellStyle(t, ws, "A1")
	if st.Font == nil || !st.Font.Bold || !st.Font.Italic || st.Font.Size != 14 {
		t.Errorf("Unexpected font %+v", st.Font)
	}
	if !strings.HasSuffix(strings.ToUpper(st.Font.Color), "C00000") {
		t.Errorf("Expected font color C00000, got %q", st.Font.Color)
	}
	if !hasFill(st, "DDEBF7") {
		t.Errorf("Expected fill DDEBF7, got %+v", st.Fill)
	}
	if borderStyle(st, style.Bottom) != int(style.BorderDouble) {
		t.Errorf("Expected double bottom border, got %+v", st.Border)
	}
	if st.Alignment == nil || st.Alignment.Horizontal != "center" || st.Alignment.Vertical != "center" {
		t.Errorf("Unexpected alignment %+v", st.Alignment)
	}
	if st.NumFmt != style.Precision2WithSeparator.ID() {
		t.Errorf("Expected NumFmt %d, got %d", style.Precision2WithSeparator.ID(), st.NumFmt)
	}
}

func TestCellStyleAccumulates(t *testing.T) {
	ws := newTestWorkbook(t, DefaultOptions()).AddWorksheet("Sheet")

	ws.Cell("A1").Bold()
	ws.Cell("A1").Outline(style.BorderThin, "")
	ws.Cell("A1").Border(style.Left, style.BorderThick, "")
	ws.Cell("A1").Border(style.Top, style.BorderNone, "")

	st := cellStyle(t, ws, "A1")
	if st.Font == nil || !st.Font.Bold {
		t.Error("Bold lost after later style changes")
	}
	if borderStyle(st, style.Left) != int(style.BorderThick) {
		t.Errorf("Expected thick left border, got %+v", st.Border)
	}
	if borderStyle(st, style.Right) != int(style.BorderThin) {
		t.Errorf("Expected thin right border, got %+v", st.Border)
	}
	if borderStyle(st, style.Top) != 0 {
		t.Errorf("Expected top border removed, got %+v", st.Border)
	}
}

func TestCellFormatCode(t *testing.T) {
	ws := newTestWorkbook(t, DefaultOptions()).AddWorksheet("Sheet")

	ws.Cell("A1").FormatCode("0.00%")
	if st := cellStyle(t, ws, "A1"); st.NumFmt != style.PercentPrecision2.ID() {
		t.Errorf("Expected built-in id %d, got %d", style.PercentPrecision2.ID(), st.NumFmt)
	}

	code := `#,##0.00 "EUR"`
	ws.Cell("A2").FormatCode(code)
	st := cellStyle(t, ws, "A2")
	if st.CustomNumFmt == nil || *st.CustomNumFmt != code {
		t.Errorf("Expected custom format %q, got %v", code, st.CustomNumFmt)
	}
}

func TestCellStyleErrors(t *testing.T) {
	ws := newTestWorkbook(t, DefaultOptions()).AddWorksheet("Sheet")

	if err := ws.Cell("A1").FontColor("not-a-color").Err(); err == nil {
		t.Error("Expected invalid color error")
	}
	if err := ws.Cell("A2").NumberFormat(style.NumberFormat(5)).Err(); err == nil {
		t.Error("Expected unknown number format error")
	}
	if err := ws.Cell("A3").FontSize(0).Err(); err == nil {
		t.Error("Expected font size error")
	}
}

func TestCellThemeColors(t *testing.T) {
	ws := newTestWorkbook(t, DefaultOptions()).AddWorksheet("Sheet")

	ws.Cell("A1").FontTheme(style.Accent2, 0).BackgroundTheme(style.Accent1, 0.8)

	st := cellStyle(t, ws, "A1")
	if st.Font == nil || st.Font.ColorTheme == nil || *st.Font.ColorTheme != style.Accent2.Index() {
		t.Errorf("Expected font theme %d, got %+v", style.Accent2.Index(), st.Font)
	}
	want := resolveTheme(ws.Workbook().File(), style.Accent1, 0.8)
	if !hasFill(st, want) {
		t.Errorf("Expected fill %s, got %+v", want, st.Fill)
	}
}

// withAccent1 rewrites the accent1 color of a saved workbook's theme part.
func withAccent1(t *testing.T, data []byte, hex string) []byte {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("zip.NewReader: %v", err)
	}
	accent := regexp.MustCompile(`(<a:accent1>\s*<a:srgbClr val=")[0-9A-Fa-f]{6}`)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, zf := range zr.File {
		rc, err := zf.Open()
		if err != nil {
			t.Fatalf("open %s: %v", zf.Name, err)
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("read %s: %v", zf.Name, err)
		}
		if strings.HasPrefix(zf.Name, "xl/theme/") {
			if !accent.Match(content) {
				t.Fatalf("no accent1 color in %s", zf.Name)
			}
			content = accent.ReplaceAll(content, []byte("${1}"+hex))
		}
		w, err := zw.Create(zf.Name)
		if err != nil {
			t.Fatalf("create %s: %v", zf.Name, err)
		}
		if _, err := w.Write(content); err != nil {
			t.Fatalf("write %s: %v", zf.Name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("zip close: %v", err)
	}
	return buf.Bytes()
}

func TestCellBackgroundThemeUsesWorkbookTheme(t *testing.T) {
	src := newTestWorkbook(t, DefaultOptions())
	src.AddWorksheet("Sheet")
	var buf bytes.Buffer
	if _, err := src.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo failed: %v", err)
	}

	wb, err := OpenReader(bytes.NewReader(withAccent1(t, buf.Bytes(), "123456")), DefaultOptions())
	if err != nil {
		t.Fatalf("OpenReader failed: %v", err)
	}
	defer wb.Close()
	ws := wb.Worksheet("Sheet")

	ws.Cell("A1").BackgroundTheme(style.Accent1, 0)
	if st := cellStyle(t, ws, "A1"); !hasFill(st, "123456") {
		t.Errorf("Expected fill from workbook theme, got %+v", st.Fill)
	}

	// Slots missing from the theme part use the default palette.
	ws.Cell("A2").BackgroundTheme(style.Hyperlink, 0)
	if st := cellStyle(t, ws, "A2"); !hasFill(st, style.Hyperlink.Hex()) {
		t.Errorf("Expected default hyperlink fill, got %+v", st.Fill)
	}

	if got := resolveTheme(nil, style.Accent1, 0); got != style.Accent1.Hex() {
		t.Errorf("resolveTheme without a file = %q, expected %q", got, style.Accent1.Hex())
	}
}

func TestCellHyperlink(t *testing.T) {
	ws := newTestWorkbook(t, DefaultOptions()).AddWorksheet("Sheet")

	c := ws.Cell("A1").WithValue("docs").WithHyperlink("https://example.com/docs")
	if err := c.Err(); err != nil {
		t.Fatalf("WithHyperlink failed: %v", err)
	}
	ok, target, err := ws.Workbook().File().GetCellHyperLink("Sheet", "A1")
	if err != nil || !ok || target != "https://example.com/docs" {
		t.Errorf("Unexpected hyperlink %v %q %v", ok, target, err)
	}
	if st := cellStyle(t, ws, "A1"); st.Font == nil || st.Font.Underline != "single" {
		t.Errorf("Expected underlined hyperlink font, got %+v", st.Font)
	}
}
