package fluentxl

import (
	"fmt"

	"github.com/gabrov/fluentxl/pkg/fluentxl/style"
	"github.com/xuri/excelize/v2"
)

// StyleOption mutates a cell style. f is the file the style is registered
// in, for options that read workbook parts such as the theme.
type StyleOption func(st *excelize.Style, f *excelize.File) error

func styleOnly(fn func(st *excelize.Style) error) StyleOption {
	return func(st *excelize.Style, _ *excelize.File) error {
		return fn(st)
	}
}

// HAlign is a horizontal alignment.
type HAlign string

const (
	AlignGeneral      HAlign = ""
	AlignLeft         HAlign = "left"
	AlignCenter       HAlign = "center"
	AlignRight        HAlign = "right"
	AlignFill         HAlign = "fill"
	AlignJustify      HAlign = "justify"
	AlignCenterAcross HAlign = "centerContinuous"
	AlignDistributed  HAlign = "distributed"
)

// VAlign is a vertical alignment.
type VAlign string

const (
	AlignBottom   VAlign = ""
	AlignTop      VAlign = "top"
	AlignMiddle   VAlign = "center"
	AlignVJustify VAlign = "justify"
)

func font(st *excelize.Style) *excelize.Font {
	if st.Font == nil {
		st.Font = &excelize.Font{}
	}
	return st.Font
}

func alignment(st *excelize.Style) *excelize.Alignment {
	if st.Alignment == nil {
		st.Alignment = &excelize.Alignment{}
	}
	return st.Alignment
}

// Bold sets or clears bold text.
func Bold(on bool) StyleOption {
	return styleOnly(func(st *excelize.Style) error {
		font(st).Bold = on
		return nil
	})
}

// Italic sets or clears italic text.
func Italic(on bool) StyleOption {
	return styleOnly(func(st *excelize.Style) error {
		font(st).Italic = on
		return nil
	})
}

// Underline sets single underlining, or clears it.
func Underline(on bool) StyleOption {
	return styleOnly(func(st *excelize.Style) error {
		font(st).Underline = ""
		if on {
			font(st).Underline = "single"
		}
		return nil
	})
}

// Strike sets or clears strikethrough.
func Strike(on bool) StyleOption {
	return styleOnly(func(st *excelize.Style) error {
		font(st).Strike = on
		return nil
	})
}

// FontName sets the font family.
func FontName(name string) StyleOption {
	return styleOnly(func(st *excelize.Style) error {
		font(st).Family = name
		return nil
	})
}

// FontSize sets the font size in points.
func FontSize(size float64) StyleOption {
	return styleOnly(func(st *excelize.Style) error {
		if size <= 0 || size > 409 {
			return fmt.Errorf("font size %v out of range (0, 409]", size)
		}
		font(st).Size = size
		return nil
	})
}

// FontColor sets an RGB font color.
func FontColor(hex string) StyleOption {
	return styleOnly(func(st *excelize.Style) error {
		c, err := style.NormalizeColor(hex)
		if err != nil {
			return err
		}
		f := font(st)
		f.Color = c
		f.ColorTheme = nil
		f.ColorTint = 0
		return nil
	})
}

// FontTheme sets the font color to a theme slot with a tint in [-1, 1].
func FontTheme(theme style.ThemeColor, tint float64) StyleOption {
	return styleOnly(func(st *excelize.Style) error {
		if !theme.Valid() {
			return fmt.Errorf("invalid theme color %d", int(theme))
		}
		idx := theme.Index()
		f := font(st)
		f.Color = ""
		f.ColorTheme = &idx
		f.ColorTint = tint
		return nil
	})
}

// Background sets a solid fill color.
func Background(hex string) StyleOption {
	return styleOnly(func(st *excelize.Style) error {
		c, err := style.NormalizeColor(hex)
		if err != nil {
			return err
		}
		st.Fill = excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{c}}
		return nil
	})
}

// BackgroundTheme sets a solid fill from a theme slot. The slot is resolved
// against the workbook theme, or the default Office palette when the
// workbook has none.
func BackgroundTheme(theme style.ThemeColor, tint float64) StyleOption {
	return func(st *excelize.Style, f *excelize.File) error {
		if !theme.Valid() {
			return fmt.Errorf("invalid theme color %d", int(theme))
		}
		return Background(resolveTheme(f, theme, tint))(st, f)
	}
}

// resolveTheme returns the RRGGBB color of a theme slot with tint applied.
func resolveTheme(f *excelize.File, theme style.ThemeColor, tint float64) string {
	if f == nil {
		return theme.WithTint(tint)
	}
	idx := theme.Index()
	// GetBaseColor strips the alpha from the fallback when the theme lacks the slot.
	base := f.GetBaseColor("FF"+theme.Hex(), 0, &idx)
	if len(base) != 6 {
		base = theme.Hex()
	}
	return style.ApplyTint(base, tint)
}

// NoFill removes the cell fill.
func NoFill() StyleOption {
	return styleOnly(func(st *excelize.Style) error {
		st.Fill = excelize.Fill{}
		return nil
	})
}

// Border sets one side's border. An empty color means automatic (black).
func Border(side style.BorderSide, kind style.BorderKind, color string) StyleOption {
	return styleOnly(func(st *excelize.Style) error {
		if side.Type() == "" {
			return fmt.Errorf("invalid border side %d", int(side))
		}
		if color != "" {
			c, err := style.NormalizeColor(color)
			if err != nil {
				return err
			}
			color = c
		}

		borders := st.Border[:0:0]
		for _, b := range st.Border {
			if b.Type != side.Type() {
				borders = append(borders, b)
			}
		}
		if kind != style.BorderNone {
			borders = append(borders, excelize.Border{Type: side.Type(), Color: color, Style: int(kind)})
		}
		st.Border = borders
		return nil
	})
}

// Outline sets the same border on all four edges.
func Outline(kind style.BorderKind, color string) StyleOption {
	return Borders(style.Edges, kind, color)
}

// Borders sets the same border on each of sides.
func Borders(sides []style.BorderSide, kind style.BorderKind, color string) StyleOption {
	return styleOnly(func(st *excelize.Style) error {
		for _, side := range sides {
			if err := Border(side, kind, color)(st, nil); err != nil {
				return err
			}
		}
		return nil
	})
}

// Align sets horizontal and vertical alignment.
func Align(h HAlign, v VAlign) StyleOption {
	return styleOnly(func(st *excelize.Style) error {
		a := alignment(st)
		a.Horizontal = string(h)
		a.Vertical = string(v)
		return nil
	})
}

// Wrap sets or clears text wrapping.
func Wrap(on bool) StyleOption {
	return styleOnly(func(st *excelize.Style) error {
		alignment(st).WrapText = on
		return nil
	})
}

// Indent sets the indentation level.
func Indent(level int) StyleOption {
	return styleOnly(func(st *excelize.Style) error {
		if level < 0 || level > 250 {
			return fmt.Errorf("indent %d out of range [0, 250]", level)
		}
		alignment(st).Indent = level
		return nil
	})
}

// NumberFormat applies a built-in number format.
func NumberFormat(f style.NumberFormat) StyleOption {
	return styleOnly(func(st *excelize.Style) error {
		if !f.Valid() {
			return fmt.Errorf("unknown built-in number format %d", f.ID())
		}
		st.NumFmt = f.ID()
		st.CustomNumFmt = nil
		return nil
	})
}

// FormatCode applies a number format code. Codes matching a built-in format
// use its id; anything else becomes a custom format.
func FormatCode(code string) StyleOption {
	return styleOnly(func(st *excelize.Style) error {
		if code == "" {
			return fmt.Errorf("empty number format code")
		}
		if f, ok := style.LookupCode(code); ok {
			return NumberFormat(f)(st, nil)
		}
		st.NumFmt = 0
		st.CustomNumFmt = &code
		return nil
	})
}
