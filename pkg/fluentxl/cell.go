package fluentxl

import (
	"strings"

	"github.com/gabrov/fluentxl/pkg/fluentxl/formula"
	"github.com/gabrov/fluentxl/pkg/fluentxl/style"
)

// Cell is a single worksheet cell. Setters return the cell so calls can be
// chained; the first failure is kept in Err and later setters do nothing.
type Cell struct {
	styleChain[Cell]

	ws  *Worksheet
	ref string
	row int
	col int
	err error
}

func newCell(ws *Worksheet, row, col int) *Cell {
	c := &Cell{ws: ws, row: row, col: col}
	c.styleChain = styleChain[Cell]{self: c, apply: c.applyStyle}
	return c
}

// Address returns the A1 reference of the cell.
func (c *Cell) Address() string {
	return c.ref
}

// Row returns the 1-based row.
func (c *Cell) Row() int {
	return c.row
}

// Column returns the 1-based column.
func (c *Cell) Column() int {
	return c.col
}

// Worksheet returns the owning worksheet.
func (c *Cell) Worksheet() *Worksheet {
	return c.ws
}

// Err returns the first error recorded on the cell.
func (c *Cell) Err() error {
	return c.err
}

func (c *Cell) fail(op string, err error) {
	if c.err == nil {
		c.err = NewOperationError(c.ws.name, c.ref, op, err)
	}
}

// WithValue assigns a scalar value. A nil value leaves the cell unchanged.
func (c *Cell) WithValue(v interface{}) *Cell {
	if c.err != nil || v == nil {
		return c
	}
	if err := c.ws.wb.f.SetCellValue(c.ws.name, c.ref, v); err != nil {
		c.fail("set value", err)
	}
	return c
}

// WithFormula assigns a formula. A leading "=" is optional.
func (c *Cell) WithFormula(f string) *Cell {
	if c.err != nil {
		return c
	}
	if err := c.ws.wb.f.SetCellFormula(c.ws.name, c.ref, strings.TrimPrefix(strings.TrimSpace(f), "=")); err != nil {
		c.fail("set formula", err)
	}
	return c
}

// WithSum assigns the sum of refs as the cell formula. See formula.Compose
// for how ranges, single cells and "-" prefixes are combined.
func (c *Cell) WithSum(refs ...string) *Cell {
	if c.err != nil {
		return c
	}
	f, err := formula.Compose(refs...)
	if err != nil {
		c.fail("sum", err)
		return c
	}
	return c.WithFormula(f)
}

// WithHyperlink links the cell to an external URL and gives it the
// hyperlink font.
func (c *Cell) WithHyperlink(url string) *Cell {
	if c.err != nil {
		return c
	}
	if err := c.ws.wb.f.SetCellHyperLink(c.ws.name, c.ref, url, "External"); err != nil {
		c.fail("set hyperlink", err)
		return c
	}
	return c.WithStyle(FontTheme(style.Hyperlink, 0), Underline(true))
}

// Value returns the formatted cell value.
func (c *Cell) Value() (string, error) {
	if c.err != nil {
		return "", c.err
	}
	v, err := c.ws.wb.f.GetCellValue(c.ws.name, c.ref)
	if err != nil {
		return "", NewOperationError(c.ws.name, c.ref, "get value", err)
	}
	return v, nil
}

// Formula returns the cell formula without the leading "=".
func (c *Cell) Formula() (string, error) {
	if c.err != nil {
		return "", c.err
	}
	f, err := c.ws.wb.f.GetCellFormula(c.ws.name, c.ref)
	if err != nil {
		return "", NewOperationError(c.ws.name, c.ref, "get formula", err)
	}
	return f, nil
}

func (c *Cell) applyStyle(opts []StyleOption) {
	if c.err != nil || len(opts) == 0 {
		return
	}
	err := c.ws.restyle(c.row, c.col, c.row, c.col, func(int, int) []StyleOption { return opts })
	if err != nil {
		c.fail("style", err)
	}
}
