package style

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ThemeColor is a color slot of the workbook theme.
type ThemeColor int

// Theme color slots, in the order of the theme color scheme.
const (
	Background1 ThemeColor = iota
	Text1
	Background2
	Text2
	Accent1
	Accent2
	Accent3
	Accent4
	Accent5
	Accent6
	Hyperlink
	FollowedHyperlink
)

var themeColors = []struct {
	name string
	hex  string
}{
	{"background1", "FFFFFF"},
	{"text1", "000000"},
	{"background2", "E7E6E6"},
	{"text2", "44546A"},
	{"accent1", "4472C4"},
	{"accent2", "ED7D31"},
	{"accent3", "A5A5A5"},
	{"accent4", "FFC000"},
	{"accent5", "5B9BD5"},
	{"accent6", "70AD47"},
	{"hyperlink", "0563C1"},
	{"followed_hyperlink", "954F72"},
}

// Valid reports whether t names a theme slot.
func (t ThemeColor) Valid() bool {
	return t >= 0 && int(t) < len(themeColors)
}

// Index returns the theme index stored in the style.
func (t ThemeColor) Index() int {
	return int(t)
}

// Hex returns the default Office theme color as RRGGBB.
func (t ThemeColor) Hex() string {
	if !t.Valid() {
		return ""
	}
	return themeColors[t].hex
}

// WithTint returns the theme color lightened (tint > 0) or darkened (tint < 0).
func (t ThemeColor) WithTint(tint float64) string {
	return ApplyTint(t.Hex(), tint)
}

func (t ThemeColor) String() string {
	if !t.Valid() {
		return fmt.Sprintf("ThemeColor(%d)", int(t))
	}
	return themeColors[t].name
}

// ParseThemeColor parses a slot name such as "accent1" or "text2".
func ParseThemeColor(s string) (ThemeColor, error) {
	key := normalizeName(s)
	for i, c := range themeColors {
		if c.name == key {
			return ThemeColor(i), nil
		}
	}
	return 0, fmt.Errorf("unknown theme color: %q", s)
}

// NormalizeColor accepts "#RRGGBB", "RRGGBB" or "AARRGGBB" and returns the
// upper-case RRGGBB form.
func NormalizeColor(s string) (string, error) {
	hex := strings.ToUpper(strings.TrimPrefix(strings.TrimSpace(s), "#"))
	if len(hex) == 8 {
		hex = hex[2:]
	}
	if len(hex) != 6 {
		return "", fmt.Errorf("invalid color: %q", s)
	}
	if _, err := strconv.ParseUint(hex, 16, 32); err != nil {
		return "", fmt.Errorf("invalid color: %q", s)
	}
	return hex, nil
}

// ApplyTint applies a tint in [-1, 1] to an RRGGBB color: negative tints
// darken toward black, positive ones lighten toward white.
func ApplyTint(hex string, tint float64) string {
	if _, err := strconv.ParseUint(hex, 16, 32); err != nil || len(hex) != 6 {
		return hex
	}
	tint = math.Max(-1, math.Min(1, tint))
	if tint == 0 {
		return strings.ToUpper(hex)
	}
	c := excelize.ThemeColor(hex, tint)
	return strings.ToUpper(c[len(c)-6:])
}
