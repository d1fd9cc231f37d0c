package regrid

import "fmt"

// TableAxis selects which axis of a table is addressed.
// Row and column mappings and measures are never mixed between axes.
type TableAxis int

const (
	Rows TableAxis = iota
	Columns
)

// Axes lists both table axes in row, column order.
var Axes = [2]TableAxis{Rows, Columns}

func (a TableAxis) String() string {
	switch a {
	case Rows:
		return "Rows"
	case Columns:
		return "Columns"
	}
	return fmt.Sprintf("TableAxis(%d)", int(a))
}

// Cross returns the other axis.
func (a TableAxis) Cross() TableAxis {
	if a == Rows {
		return Columns
	}
	return Rows
}

// LogIdx is the logical index of a row or column
// in the underlying dataset. It is stable across
// sorting, filtering and reordering.
type LogIdx int

// VisIdx is the visual index of a row or column,
// its position on screen after the current remap.
// Valid values are within [0, NumVisible).
type VisIdx int

// VisOffset is a signed distance between two visual indices.
type VisOffset int

// Add returns the visual index moved by offset.
// The result may be negative or beyond the visible count,
// lookups treat such indices as out of range.
func (v VisIdx) Add(offset VisOffset) VisIdx {
	return v + VisIdx(offset)
}

// Sub returns the offset from other to v.
func (v VisIdx) Sub(other VisIdx) VisOffset {
	return VisOffset(v - other)
}

// AxisPair holds one value per table axis.
type AxisPair[T any] struct {
	Row T
	Col T
}

// NewAxisPair returns an AxisPair with the passed row and column values.
func NewAxisPair[T any](row, col T) AxisPair[T] {
	return AxisPair[T]{Row: row, Col: col}
}

// Get returns the value for axis.
func (p *AxisPair[T]) Get(axis TableAxis) T {
	return *p.Ptr(axis)
}

// Set sets the value for axis.
func (p *AxisPair[T]) Set(axis TableAxis, value T) {
	*p.Ptr(axis) = value
}

// Ptr returns a pointer to the value for axis.
func (p *AxisPair[T]) Ptr(axis TableAxis) *T {
	switch axis {
	case Rows:
		return &p.Row
	case Columns:
		return &p.Col
	}
	panic(fmt.Sprintf("invalid %s", axis))
}
