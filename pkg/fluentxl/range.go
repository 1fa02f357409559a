package fluentxl

import (
	"github.com/gabrov/fluentxl/pkg/fluentxl/layout"
	"github.com/gabrov/fluentxl/pkg/fluentxl/style"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// Range is a rectangular block of cells. Style setters apply to every cell,
// merged onto each cell's existing style.
type Range struct {
	styleChain[Range]

	ws     *Worksheet
	r1, c1 int
	r2, c2 int
	err    error
}

var _ layout.Grid = (*Range)(nil)

func newRange(ws *Worksheet, r1, c1, r2, c2 int) *Range {
	r := &Range{ws: ws, r1: r1, c1: c1, r2: r2, c2: c2}
	r.styleChain = styleChain[Range]{self: r, apply: r.applyStyle}
	return r
}

// Address returns the range in A1 notation, e.g. "A1:D4".
func (r *Range) Address() string {
	start, _ := excelize.CoordinatesToCellName(r.c1, r.r1)
	end, _ := excelize.CoordinatesToCellName(r.c2, r.r2)
	return start + ":" + end
}

// RowCount returns the number of rows.
func (r *Range) RowCount() int {
	return r.r2 - r.r1 + 1
}

// ColumnCount returns the number of columns.
func (r *Range) ColumnCount() int {
	return r.c2 - r.c1 + 1
}

// Worksheet returns the owning worksheet.
func (r *Range) Worksheet() *Worksheet {
	return r.ws
}

// Err returns the first error recorded on the range.
func (r *Range) Err() error {
	return r.err
}

func (r *Range) fail(op string, err error) {
	if r.err == nil {
		r.err = NewOperationError(r.ws.name, r.Address(), op, err)
	}
}

// CellAt returns the cell at a 1-based position relative to the range's
// top-left corner. Positions outside the range are allowed.
func (r *Range) CellAt(row, col int) *Cell {
	c := r.ws.CellAt(r.r1+row-1, r.c1+col-1)
	if c.err == nil && r.err != nil {
		c.err = r.err
	}
	return c
}

// Cells returns every cell of the range in row-major order.
func (r *Range) Cells() []*Cell {
	cells := make([]*Cell, 0, r.RowCount()*r.ColumnCount())
	for row := 1; row <= r.RowCount(); row++ {
		for col := 1; col <= r.ColumnCount(); col++ {
			cells = append(cells, r.CellAt(row, col))
		}
	}
	return cells
}

// SetValueAt writes v at a 1-based position relative to the range.
func (r *Range) SetValueAt(row, col int, v interface{}) error {
	c := r.CellAt(row, col).WithValue(v)
	return c.Err()
}

// WithValues lays values out along the range: across the row for a single-row
// range of several columns, down the first column otherwise. Nil values are
// skipped. Values that do not fit are handled per Options.BoundsPolicy.
func (r *Range) WithValues(values ...interface{}) *Range {
	return r.WithValuesOriented(layout.Resolve(r.RowCount(), r.ColumnCount()), values...)
}

// WithValuesOriented lays values out along the given orientation. The
// capacity is the range's extent on that axis, so Vertical on a single-row
// range holds one value under Clip.
func (r *Range) WithValuesOriented(o layout.Orientation, values ...interface{}) *Range {
	if r.err != nil {
		return r
	}
	policy := r.ws.wb.opts.BoundsPolicy
	n, err := layout.Place(r, values, o, policy)
	if err != nil {
		r.fail("set values", err)
		return r
	}
	r.ws.wb.log.Debug("placed values",
		zap.String("sheet", r.ws.name),
		zap.String("range", r.Address()),
		zap.Stringer("orientation", o),
		zap.Stringer("policy", policy),
		zap.Int("written", n))
	return r
}

// Merge merges the range into one cell.
func (r *Range) Merge() *Range {
	if r.err != nil {
		return r
	}
	start, _ := excelize.CoordinatesToCellName(r.c1, r.r1)
	end, _ := excelize.CoordinatesToCellName(r.c2, r.r2)
	if err := r.ws.wb.f.MergeCell(r.ws.name, start, end); err != nil {
		r.fail("merge", err)
	}
	return r
}

// OutsideBorder draws a border around the range as a whole.
func (r *Range) OutsideBorder(kind style.BorderKind, color string) *Range {
	return r.restyle("outside border", func(row, col int) []StyleOption {
		var opts []StyleOption
		if row == r.r1 {
			opts = append(opts, Border(style.Top, kind, color))
		}
		if row == r.r2 {
			opts = append(opts, Border(style.Bottom, kind, color))
		}
		if col == r.c1 {
			opts = append(opts, Border(style.Left, kind, color))
		}
		if col == r.c2 {
			opts = append(opts, Border(style.Right, kind, color))
		}
		return opts
	})
}

// InsideBorder draws borders between the cells of the range.
func (r *Range) InsideBorder(kind style.BorderKind, color string) *Range {
	return r.restyle("inside border", func(row, col int) []StyleOption {
		var opts []StyleOption
		if row > r.r1 {
			opts = append(opts, Border(style.Top, kind, color))
		}
		if row < r.r2 {
			opts = append(opts, Border(style.Bottom, kind, color))
		}
		if col > r.c1 {
			opts = append(opts, Border(style.Left, kind, color))
		}
		if col < r.c2 {
			opts = append(opts, Border(style.Right, kind, color))
		}
		return opts
	})
}

func (r *Range) applyStyle(opts []StyleOption) {
	if len(opts) == 0 {
		return
	}
	r.restyle("style", func(int, int) []StyleOption { return opts })
}

func (r *Range) restyle(op string, opts func(row, col int) []StyleOption) *Range {
	if r.err != nil {
		return r
	}
	if err := r.ws.restyle(r.r1, r.c1, r.r2, r.c2, opts); err != nil {
		r.fail(op, err)
	}
	return r
}
