package style

import (
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestParseBorderKind(t *testing.T) {
	tests := []struct {
		input    string
		expected BorderKind
	}{
		{"thin", BorderThin},
		{"Medium", BorderMedium},
		{"medium-dashed", BorderMediumDashed},
		{"dash dot dot", BorderDashDotDot},
		{"none", BorderNone},
	}

	for _, tt := range tests {
		result, err := ParseBorderKind(tt.input)
		if err != nil {
			t.Errorf("ParseBorderKind(%q) failed: %v", tt.input, err)
			continue
		}
		if result != tt.expected {
			t.Errorf("ParseBorderKind(%q) = %v, expected %v", tt.input, result, tt.expected)
		}
	}

	if _, err := ParseBorderKind("zigzag"); err == nil {
		t.Error("Expected error for unknown border kind")
	}
}

func TestBorderSideType(t *testing.T) {
	tests := []struct {
		side     BorderSide
		expected string
	}{
		{Left, "left"},
		{Right, "right"},
		{Top, "top"},
		{Bottom, "bottom"},
		{DiagonalUp, "diagonalUp"},
		{DiagonalDown, "diagonalDown"},
		{BorderSide(42), ""},
	}

	for _, tt := range tests {
		if result := tt.side.Type(); result != tt.expected {
			t.Errorf("BorderSide(%d).Type() = %q, expected %q", int(tt.side), result, tt.expected)
		}
	}
}

func TestNormalizeColor(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		wantErr  bool
	}{
		{"#ff0000", "FF0000", false},
		{"00ff00", "00FF00", false},
		{"FF0000FF", "0000FF", false},
		{"red", "", true},
		{"#12345", "", true},
		{"GGGGGG", "", true},
	}

	for _, tt := range tests {
		result, err := NormalizeColor(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("NormalizeColor(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if result != tt.expected {
			t.Errorf("NormalizeColor(%q) = %q, expected %q", tt.input, result, tt.expected)
		}
	}
}

func TestApplyTint(t *testing.T) {
	tests := []struct {
		hex      string
		tint     float64
		expected string
	}{
		{"4472C4", 0, "4472C4"},
		{"4472c4", 0, "4472C4"},
		{"000000", 1, "FFFFFF"},
		{"FFFFFF", -1, "000000"},
		{"000000", 3, "FFFFFF"},
		{"nothex", 0.5, "nothex"},
	}

	for _, tt := range tests {
		if result := ApplyTint(tt.hex, tt.tint); result != tt.expected {
			t.Errorf("ApplyTint(%q, %v) = %q, expected %q", tt.hex, tt.tint, result, tt.expected)
		}
	}
}

func TestApplyTintMatchesExcelize(t *testing.T) {
	for _, c := range []ThemeColor{Accent1, Accent2, Text2, Background2} {
		for _, tint := range []float64{0.4, 0.8, -0.25, -0.5} {
			want := strings.TrimPrefix(excelize.ThemeColor(c.Hex(), tint), "FF")
			if got := c.WithTint(tint); got != want {
				t.Errorf("%s.WithTint(%v) = %q, expected %q", c, tint, got, want)
			}
		}
	}
}

func TestThemeColor(t *testing.T) {
	if Accent1.Hex() != "4472C4" {
		t.Errorf("Accent1.Hex() = %q", Accent1.Hex())
	}
	if Text1.WithTint(0) != "000000" {
		t.Errorf("Text1.WithTint(0) = %q", Text1.WithTint(0))
	}
	if Accent1.Index() != 4 {
		t.Errorf("Accent1.Index() = %d, expected 4", Accent1.Index())
	}

	c, err := ParseThemeColor("Followed-Hyperlink")
	if err != nil || c != FollowedHyperlink {
		t.Errorf("ParseThemeColor = %v, %v", c, err)
	}
	if ThemeColor(99).Valid() {
		t.Error("ThemeColor(99) should be invalid")
	}
}

func TestNumberFormats(t *testing.T) {
	tests := []struct {
		name string
		id   int
		code string
	}{
		{"general", 0, "General"},
		{"precision2", 2, "0.00"},
		{"percent_integer", 9, "0%"},
		{"integer_with_separator", 3, "#,##0"},
		{"text", 49, "@"},
	}

	for _, tt := range tests {
		f, err := ParseNumberFormat(tt.name)
		if err != nil {
			t.Errorf("ParseNumberFormat(%q) failed: %v", tt.name, err)
			continue
		}
		if f.ID() != tt.id || f.Code() != tt.code {
			t.Errorf("%s: got id=%d code=%q, expected id=%d code=%q", tt.name, f.ID(), f.Code(), tt.id, tt.code)
		}
		if back, ok := LookupCode(tt.code); !ok || back != f {
			t.Errorf("LookupCode(%q) = %v, %v", tt.code, back, ok)
		}
	}

	if NumberFormat(5).Valid() {
		t.Error("NumberFormat(5) is not a built-in format")
	}

	all := NumberFormats()
	for i := 1; i < len(all); i++ {
		if all[i-1] >= all[i] {
			t.Fatalf("NumberFormats not sorted at %d", i)
		}
	}
}
