// Package style holds the enumerations used to style cells: border kinds and
// sides, theme colors and built-in number formats.
package style

import (
	"fmt"
	"strings"
)

// BorderKind is a border line style.
type BorderKind int

// Border kinds. Values are the excelize border style indexes.
const (
	BorderNone             BorderKind = 0
	BorderThin             BorderKind = 1
	BorderMedium           BorderKind = 2
	BorderDashed           BorderKind = 3
	BorderDotted           BorderKind = 4
	BorderThick            BorderKind = 5
	BorderDouble           BorderKind = 6
	BorderHair             BorderKind = 7
	BorderMediumDashed     BorderKind = 8
	BorderDashDot          BorderKind = 9
	BorderMediumDashDot    BorderKind = 10
	BorderDashDotDot       BorderKind = 11
	BorderMediumDashDotDot BorderKind = 12
	BorderSlantDashDot     BorderKind = 13
)

var borderKindNames = map[BorderKind]string{
	BorderNone:             "none",
	BorderThin:             "thin",
	BorderMedium:           "medium",
	BorderDashed:           "dashed",
	BorderDotted:           "dotted",
	BorderThick:            "thick",
	BorderDouble:           "double",
	BorderHair:             "hair",
	BorderMediumDashed:     "medium_dashed",
	BorderDashDot:          "dash_dot",
	BorderMediumDashDot:    "medium_dash_dot",
	BorderDashDotDot:       "dash_dot_dot",
	BorderMediumDashDotDot: "medium_dash_dot_dot",
	BorderSlantDashDot:     "slant_dash_dot",
}

func (k BorderKind) String() string {
	if name, ok := borderKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("BorderKind(%d)", int(k))
}

// ParseBorderKind parses a border kind name such as "thin" or "medium_dashed".
// Dashes and spaces are accepted in place of underscores.
func ParseBorderKind(s string) (BorderKind, error) {
	key := normalizeName(s)
	for kind, name := range borderKindNames {
		if name == key {
			return kind, nil
		}
	}
	return BorderNone, fmt.Errorf("unknown border kind: %q", s)
}

// BorderSide is one edge of a cell.
type BorderSide int

const (
	Left BorderSide = iota
	Right
	Top
	Bottom
	DiagonalUp
	DiagonalDown
)

// Type returns the excelize border type for the side.
func (s BorderSide) Type() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	case DiagonalUp:
		return "diagonalUp"
	case DiagonalDown:
		return "diagonalDown"
	}
	return ""
}

func (s BorderSide) String() string {
	if t := s.Type(); t != "" {
		return t
	}
	return fmt.Sprintf("BorderSide(%d)", int(s))
}

// Edges are the four sides forming a cell outline.
var Edges = []BorderSide{Left, Right, Top, Bottom}

func normalizeName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer("-", "_", " ", "_").Replace(s)
}
