// Package layout distributes a flat value sequence over a rectangular region.
package layout

import (
	"errors"
	"fmt"
	"strings"
)

// Orientation is the axis along which values are laid out.
type Orientation int

const (
	// Vertical places values down the first column.
	Vertical Orientation = iota
	// Horizontal places values along the first row.
	Horizontal
)

func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	}
	return fmt.Sprintf("Orientation(%d)", int(o))
}

// ParseOrientation parses "horizontal"/"row" or "vertical"/"column".
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "horizontal", "row":
		return Horizontal, nil
	case "vertical", "column":
		return Vertical, nil
	}
	return Vertical, fmt.Errorf("invalid orientation: %q (must be horizontal or vertical)", s)
}

// BoundsPolicy decides what happens to values that do not fit the region.
type BoundsPolicy int

const (
	// Clip drops values beyond the region.
	Clip BoundsPolicy = iota
	// Strict rejects the whole sequence with an *OverflowError.
	Strict
	// Extend keeps writing past the region bounds.
	Extend
)

func (p BoundsPolicy) String() string {
	switch p {
	case Clip:
		return "clip"
	case Strict:
		return "strict"
	case Extend:
		return "extend"
	}
	return fmt.Sprintf("BoundsPolicy(%d)", int(p))
}

// ParseBoundsPolicy parses "clip", "strict" or "extend".
func ParseBoundsPolicy(s string) (BoundsPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "clip", "":
		return Clip, nil
	case "strict":
		return Strict, nil
	case "extend":
		return Extend, nil
	}
	return Clip, fmt.Errorf("invalid bounds policy: %q (must be clip, strict, or extend)", s)
}

// ErrOverflow indicates more values than the region can hold.
var ErrOverflow = errors.New("values exceed region")

// OverflowError reports a sequence rejected under Strict.
type OverflowError struct {
	Orientation Orientation
	Capacity    int
	Count       int
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("%d values exceed %s capacity %d", e.Count, e.Orientation, e.Capacity)
}

// Is matches ErrOverflow.
func (e *OverflowError) Is(target error) bool {
	return target == ErrOverflow
}

// Grid is a rectangular region of addressable cells. Coordinates are 1-based
// and relative to the region's top-left cell.
type Grid interface {
	RowCount() int
	ColumnCount() int
	SetValueAt(row, col int, value interface{}) error
}

// Resolve infers the orientation of a region: Horizontal for a single row of
// several columns, Vertical otherwise (including 1x1).
func Resolve(rows, cols int) Orientation {
	if rows == 1 && cols > 1 {
		return Horizontal
	}
	return Vertical
}

// PlaceAuto places values using the orientation inferred from g's shape.
func PlaceAuto(g Grid, values []interface{}, policy BoundsPolicy) (int, error) {
	return Place(g, values, Resolve(g.RowCount(), g.ColumnCount()), policy)
}

// Place writes values along the first row (Horizontal) or first column
// (Vertical) of g. Nil values are skipped, leaving the cell untouched.
// It returns the number of cells written.
func Place(g Grid, values []interface{}, o Orientation, policy BoundsPolicy) (int, error) {
	capacity := g.RowCount()
	if o == Horizontal {
		capacity = g.ColumnCount()
	}

	limit := len(values)
	if limit > capacity {
		switch policy {
		case Strict:
			return 0, &OverflowError{Orientation: o, Capacity: capacity, Count: limit}
		case Clip:
			limit = capacity
		}
	}

	written := 0
	for i := 0; i < limit; i++ {
		if values[i] == nil {
			continue
		}
		row, col := i+1, 1
		if o == Horizontal {
			row, col = 1, i+1
		}
		if err := g.SetValueAt(row, col, values[i]); err != nil {
			return written, err
		}
		written++
	}
	return written, nil
}
