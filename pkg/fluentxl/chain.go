package fluentxl

import "github.com/gabrov/fluentxl/pkg/fluentxl/style"

// styleChain provides the chainable style setters shared by Cell and Range.
// Every setter returns the owning *T.
type styleChain[T any] struct {
	self  *T
	apply func(opts []StyleOption)
}

// WithStyle applies opts in order.
func (s styleChain[T]) WithStyle(opts ...StyleOption) *T {
	s.apply(opts)
	return s.self
}

// Bold makes the text bold.
func (s styleChain[T]) Bold() *T { return s.WithStyle(Bold(true)) }

// Italic makes the text italic.
func (s styleChain[T]) Italic() *T { return s.WithStyle(Italic(true)) }

// Underline underlines the text.
func (s styleChain[T]) Underline() *T { return s.WithStyle(Underline(true)) }

// Strike strikes the text through.
func (s styleChain[T]) Strike() *T { return s.WithStyle(Strike(true)) }

// FontName sets the font family.
func (s styleChain[T]) FontName(name string) *T { return s.WithStyle(FontName(name)) }

// FontSize sets the font size in points.
func (s styleChain[T]) FontSize(size float64) *T { return s.WithStyle(FontSize(size)) }

// FontColor sets an RGB font color such as "C00000".
func (s styleChain[T]) FontColor(hex string) *T { return s.WithStyle(FontColor(hex)) }

// FontTheme sets the font color to a theme slot with a tint in [-1, 1].
func (s styleChain[T]) FontTheme(theme style.ThemeColor, tint float64) *T {
	return s.WithStyle(FontTheme(theme, tint))
}

// Background sets a solid fill color.
func (s styleChain[T]) Background(hex string) *T { return s.WithStyle(Background(hex)) }

// BackgroundTheme sets a solid fill from a theme slot of the workbook.
func (s styleChain[T]) BackgroundTheme(theme style.ThemeColor, tint float64) *T {
	return s.WithStyle(BackgroundTheme(theme, tint))
}

// Border sets the border of one side.
func (s styleChain[T]) Border(side style.BorderSide, kind style.BorderKind, color string) *T {
	return s.WithStyle(Border(side, kind, color))
}

// Outline borders every edge of each cell.
func (s styleChain[T]) Outline(kind style.BorderKind, color string) *T {
	return s.WithStyle(Outline(kind, color))
}

// Align sets horizontal and vertical alignment.
func (s styleChain[T]) Align(h HAlign, v VAlign) *T { return s.WithStyle(Align(h, v)) }

// Wrap turns on text wrapping.
func (s styleChain[T]) Wrap() *T { return s.WithStyle(Wrap(true)) }

// Indent sets the indentation level.
func (s styleChain[T]) Indent(level int) *T { return s.WithStyle(Indent(level)) }

// NumberFormat applies a built-in number format.
func (s styleChain[T]) NumberFormat(f style.NumberFormat) *T {
	return s.WithStyle(NumberFormat(f))
}

// FormatCode applies a number format code such as "#,##0.00 \"USD\"".
func (s styleChain[T]) FormatCode(code string) *T { return s.WithStyle(FormatCode(code)) }
