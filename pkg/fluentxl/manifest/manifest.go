// Package manifest describes a workbook in YAML and builds it with fluentxl.
package manifest

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Manifest is a declarative workbook description.
type Manifest struct {
	// BoundsPolicy overrides how range values that do not fit are handled:
	// clip, strict or extend.
	BoundsPolicy string `yaml:"bounds_policy,omitempty"`
	// Active names the sheet shown on open.
	Active string  `yaml:"active,omitempty"`
	Sheets []Sheet `yaml:"sheets"`
}

// Sheet describes one worksheet.
type Sheet struct {
	Name string `yaml:"name"`
	// Columns maps a column ("B") or span ("B:D") to a width.
	Columns map[string]float64 `yaml:"columns,omitempty"`
	// Rows maps a 1-based row to a height in points.
	Rows      map[int]float64 `yaml:"rows,omitempty"`
	AutoFit   bool            `yaml:"auto_fit,omitempty"`
	Freeze    *Freeze         `yaml:"freeze,omitempty"`
	Cells     []Cell          `yaml:"cells,omitempty"`
	Ranges    []Range         `yaml:"ranges,omitempty"`
	PrintArea []string        `yaml:"print_area,omitempty"`
}

// Freeze keeps the top rows and left columns visible.
type Freeze struct {
	Rows    int `yaml:"rows"`
	Columns int `yaml:"columns"`
}

// Cell sets one cell. At most one of Value, Formula and Sum is used.
type Cell struct {
	Ref     string      `yaml:"ref"`
	Value   interface{} `yaml:"value,omitempty"`
	Formula string      `yaml:"formula,omitempty"`
	Sum     []string    `yaml:"sum,omitempty"`
	Link    string      `yaml:"link,omitempty"`
	Style   *Style      `yaml:"style,omitempty"`
}

// Range sets a block of cells.
type Range struct {
	Ref    string        `yaml:"ref"`
	Values []interface{} `yaml:"values,omitempty"`
	// Orientation forces horizontal or vertical placement of Values.
	Orientation string      `yaml:"orientation,omitempty"`
	Merge       bool        `yaml:"merge,omitempty"`
	Style       *Style      `yaml:"style,omitempty"`
	Outside     *BorderSpec `yaml:"outside_border,omitempty"`
	Inside      *BorderSpec `yaml:"inside_border,omitempty"`
	Conditional []Rule      `yaml:"conditional,omitempty"`
}

// Style lists style settings. Zero values leave the setting untouched.
type Style struct {
	Bold            bool        `yaml:"bold,omitempty"`
	Italic          bool        `yaml:"italic,omitempty"`
	Underline       bool        `yaml:"underline,omitempty"`
	Strike          bool        `yaml:"strike,omitempty"`
	Font            string      `yaml:"font,omitempty"`
	Size            float64     `yaml:"size,omitempty"`
	Color           string      `yaml:"color,omitempty"`
	FontTheme       *ThemeRef   `yaml:"font_theme,omitempty"`
	Background      string      `yaml:"background,omitempty"`
	BackgroundTheme *ThemeRef   `yaml:"background_theme,omitempty"`
	Border          *BorderSpec `yaml:"border,omitempty"`
	Align           string      `yaml:"align,omitempty"`
	VAlign          string      `yaml:"valign,omitempty"`
	Wrap            bool        `yaml:"wrap,omitempty"`
	Indent          int         `yaml:"indent,omitempty"`
	// Format is a built-in number format name such as "precision2".
	Format string `yaml:"format,omitempty"`
	// FormatCode is a number format code such as "#,##0.00".
	FormatCode string `yaml:"format_code,omitempty"`
}

// ThemeRef names a theme color slot with an optional tint.
type ThemeRef struct {
	Color string  `yaml:"color"`
	Tint  float64 `yaml:"tint,omitempty"`
}

// BorderSpec is a border kind and optional color.
type BorderSpec struct {
	Kind  string `yaml:"kind"`
	Color string `yaml:"color,omitempty"`
}

// Rule is a conditional formatting rule. When is one of greater_than,
// less_than, equal_to, not_equal_to, between, formula or duplicate.
type Rule struct {
	When    string      `yaml:"when"`
	Value   interface{} `yaml:"value,omitempty"`
	Min     interface{} `yaml:"min,omitempty"`
	Max     interface{} `yaml:"max,omitempty"`
	Formula string      `yaml:"formula,omitempty"`
	Style   Style       `yaml:"style"`
}

// Load reads a manifest file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a manifest. Unknown fields are rejected.
func Parse(data []byte) (*Manifest, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	m := &Manifest{}
	if err := dec.Decode(m); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// Validate checks the manifest structure. Cell references and style values
// are checked when the workbook is built.
func (m *Manifest) Validate() error {
	if len(m.Sheets) == 0 {
		return fmt.Errorf("manifest has no sheets")
	}
	seen := make(map[string]bool)
	for i, s := range m.Sheets {
		if s.Name == "" {
			return fmt.Errorf("sheet %d: missing name", i+1)
		}
		if seen[s.Name] {
			return fmt.Errorf("sheet %q: duplicate name", s.Name)
		}
		seen[s.Name] = true

		for _, c := range s.Cells {
			if c.Ref == "" {
				return fmt.Errorf("sheet %q: cell without ref", s.Name)
			}
			set := 0
			if c.Value != nil {
				set++
			}
			if c.Formula != "" {
				set++
			}
			if len(c.Sum) > 0 {
				set++
			}
			if set > 1 {
				return fmt.Errorf("sheet %q cell %s: value, formula and sum are exclusive", s.Name, c.Ref)
			}
		}
		for _, r := range s.Ranges {
			if r.Ref == "" {
				return fmt.Errorf("sheet %q: range without ref", s.Name)
			}
		}
	}
	if m.Active != "" && !seen[m.Active] {
		return fmt.Errorf("active sheet %q is not defined", m.Active)
	}
	return nil
}
