package manifest

import (
	"fmt"
	"strings"

	"github.com/gabrov/fluentxl/pkg/fluentxl"
	"github.com/gabrov/fluentxl/pkg/fluentxl/layout"
	"github.com/gabrov/fluentxl/pkg/fluentxl/style"
)

// Build creates a workbook from m. The caller owns the returned workbook and
// must Close it.
func Build(m *Manifest, opts fluentxl.Options) (*fluentxl.Workbook, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	if m.BoundsPolicy != "" {
		policy, err := layout.ParseBoundsPolicy(m.BoundsPolicy)
		if err != nil {
			return nil, err
		}
		opts.BoundsPolicy = policy
	}

	wb := fluentxl.New(opts)
	for _, s := range m.Sheets {
		if err := buildSheet(wb, s); err != nil {
			wb.Close()
			return nil, err
		}
	}
	if m.Active != "" {
		if err := wb.SetActive(m.Active); err != nil {
			wb.Close()
			return nil, err
		}
	}
	return wb, nil
}

func buildSheet(wb *fluentxl.Workbook, s Sheet) error {
	ws := wb.AddWorksheet(s.Name)
	if err := ws.Err(); err != nil {
		return err
	}

	for _, c := range s.Cells {
		if err := buildCell(ws, c); err != nil {
			return err
		}
	}
	for _, r := range s.Ranges {
		if err := buildRange(ws, r); err != nil {
			return err
		}
	}

	if s.AutoFit {
		ws.AutoFitColumns()
	}
	for cols, width := range s.Columns {
		ws.WithColumnWidth(cols, width)
	}
	for row, height := range s.Rows {
		ws.WithRowHeight(row, height)
	}
	if s.Freeze != nil {
		ws.FreezePanes(s.Freeze.Rows, s.Freeze.Columns)
	}
	if len(s.PrintArea) > 0 {
		ws.WithPrintArea(s.PrintArea...)
	}
	return ws.Err()
}

func buildCell(ws *fluentxl.Worksheet, c Cell) error {
	cell := ws.Cell(c.Ref)
	switch {
	case c.Formula != "":
		cell.WithFormula(c.Formula)
	case len(c.Sum) > 0:
		cell.WithSum(c.Sum...)
	default:
		cell.WithValue(c.Value)
	}
	if c.Link != "" {
		cell.WithHyperlink(c.Link)
	}
	if c.Style != nil {
		opts, err := c.Style.Options()
		if err != nil {
			return fmt.Errorf("sheet %q cell %s: %w", ws.Name(), c.Ref, err)
		}
		cell.WithStyle(opts...)
	}
	return cell.Err()
}

func buildRange(ws *fluentxl.Worksheet, r Range) error {
	rng := ws.Range(r.Ref)
	if len(r.Values) > 0 {
		if r.Orientation == "" {
			rng.WithValues(r.Values...)
		} else {
			o, err := layout.ParseOrientation(r.Orientation)
			if err != nil {
				return fmt.Errorf("sheet %q range %s: %w", ws.Name(), r.Ref, err)
			}
			rng.WithValuesOriented(o, r.Values...)
		}
	}
	if r.Merge {
		rng.Merge()
	}
	if r.Style != nil {
		opts, err := r.Style.Options()
		if err != nil {
			return fmt.Errorf("sheet %q range %s: %w", ws.Name(), r.Ref, err)
		}
		rng.WithStyle(opts...)
	}
	if r.Outside != nil {
		kind, color, err := r.Outside.parse()
		if err != nil {
			return fmt.Errorf("sheet %q range %s: %w", ws.Name(), r.Ref, err)
		}
		rng.OutsideBorder(kind, color)
	}
	if r.Inside != nil {
		kind, color, err := r.Inside.parse()
		if err != nil {
			return fmt.Errorf("sheet %q range %s: %w", ws.Name(), r.Ref, err)
		}
		rng.InsideBorder(kind, color)
	}
	for _, rule := range r.Conditional {
		if err := rule.apply(rng); err != nil {
			return fmt.Errorf("sheet %q range %s: %w", ws.Name(), r.Ref, err)
		}
	}
	return rng.Err()
}

func (b *BorderSpec) parse() (style.BorderKind, string, error) {
	kind, err := style.ParseBorderKind(b.Kind)
	if err != nil {
		return style.BorderNone, "", err
	}
	return kind, b.Color, nil
}

func (t *ThemeRef) parse() (style.ThemeColor, error) {
	return style.ParseThemeColor(t.Color)
}

// Options converts the style into fluentxl style options.
func (s *Style) Options() ([]fluentxl.StyleOption, error) {
	var opts []fluentxl.StyleOption
	if s.Bold {
		opts = append(opts, fluentxl.Bold(true))
	}
	if s.Italic {
		opts = append(opts, fluentxl.Italic(true))
	}
	if s.Underline {
		opts = append(opts, fluentxl.Underline(true))
	}
	if s.Strike {
		opts = append(opts, fluentxl.Strike(true))
	}
	if s.Font != "" {
		opts = append(opts, fluentxl.FontName(s.Font))
	}
	if s.Size != 0 {
		opts = append(opts, fluentxl.FontSize(s.Size))
	}
	if s.Color != "" {
		opts = append(opts, fluentxl.FontColor(s.Color))
	}
	if s.FontTheme != nil {
		theme, err := s.FontTheme.parse()
		if err != nil {
			return nil, err
		}
		opts = append(opts, fluentxl.FontTheme(theme, s.FontTheme.Tint))
	}
	if s.Background != "" {
		opts = append(opts, fluentxl.Background(s.Background))
	}
	if s.BackgroundTheme != nil {
		theme, err := s.BackgroundTheme.parse()
		if err != nil {
			return nil, err
		}
		opts = append(opts, fluentxl.BackgroundTheme(theme, s.BackgroundTheme.Tint))
	}
	if s.Border != nil {
		kind, color, err := s.Border.parse()
		if err != nil {
			return nil, err
		}
		opts = append(opts, fluentxl.Outline(kind, color))
	}
	if s.Align != "" || s.VAlign != "" {
		h, err := parseHAlign(s.Align)
		if err != nil {
			return nil, err
		}
		v, err := parseVAlign(s.VAlign)
		if err != nil {
			return nil, err
		}
		opts = append(opts, fluentxl.Align(h, v))
	}
	if s.Wrap {
		opts = append(opts, fluentxl.Wrap(true))
	}
	if s.Indent != 0 {
		opts = append(opts, fluentxl.Indent(s.Indent))
	}
	if s.Format != "" {
		f, err := style.ParseNumberFormat(s.Format)
		if err != nil {
			return nil, err
		}
		opts = append(opts, fluentxl.NumberFormat(f))
	}
	if s.FormatCode != "" {
		opts = append(opts, fluentxl.FormatCode(s.FormatCode))
	}
	return opts, nil
}

func (r Rule) apply(rng *fluentxl.Range) error {
	opts, err := r.Style.Options()
	if err != nil {
		return err
	}
	switch strings.ToLower(r.When) {
	case "greater_than", ">":
		rng.WhenGreaterThan(r.Value, opts...)
	case "less_than", "<":
		rng.WhenLessThan(r.Value, opts...)
	case "equal_to", "==":
		rng.WhenEqualTo(r.Value, opts...)
	case "not_equal_to", "!=":
		rng.WhenNotEqualTo(r.Value, opts...)
	case "between":
		rng.WhenBetween(r.Min, r.Max, opts...)
	case "formula":
		rng.WhenFormula(r.Formula, opts...)
	case "duplicate":
		rng.WhenDuplicate(opts...)
	default:
		return fmt.Errorf("unknown conditional rule %q", r.When)
	}
	return nil
}

func parseHAlign(s string) (fluentxl.HAlign, error) {
	switch strings.ToLower(s) {
	case "", "general":
		return fluentxl.AlignGeneral, nil
	case "left":
		return fluentxl.AlignLeft, nil
	case "center":
		return fluentxl.AlignCenter, nil
	case "right":
		return fluentxl.AlignRight, nil
	case "fill":
		return fluentxl.AlignFill, nil
	case "justify":
		return fluentxl.AlignJustify, nil
	case "center_across":
		return fluentxl.AlignCenterAcross, nil
	case "distributed":
		return fluentxl.AlignDistributed, nil
	}
	return fluentxl.AlignGeneral, fmt.Errorf("unknown horizontal alignment %q", s)
}

func parseVAlign(s string) (fluentxl.VAlign, error) {
	switch strings.ToLower(s) {
	case "", "bottom":
		return fluentxl.AlignBottom, nil
	case "top":
		return fluentxl.AlignTop, nil
	case "center", "middle":
		return fluentxl.AlignMiddle, nil
	case "justify":
		return fluentxl.AlignVJustify, nil
	}
	return fluentxl.AlignBottom, fmt.Errorf("unknown vertical alignment %q", s)
}
