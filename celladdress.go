package regrid

import "fmt"

// Index is the type set of the two index spaces a CellAddress can live in.
type Index interface {
	LogIdx | VisIdx
}

// CellAddress addresses one cell by row and column.
// Both fields always share the same index space,
// a logical row is never paired with a visual column.
type CellAddress[T Index] struct {
	Row T
	Col T
}

// NewCellAddress returns a CellAddress for row and col.
func NewCellAddress[T Index](row, col T) CellAddress[T] {
	return CellAddress[T]{Row: row, Col: col}
}

// Get returns the index of the address along axis.
func (c CellAddress[T]) Get(axis TableAxis) T {
	switch axis {
	case Rows:
		return c.Row
	case Columns:
		return c.Col
	}
	panic(fmt.Sprintf("invalid %s", axis))
}

// Ptr returns a pointer to the index of the address along axis.
func (c *CellAddress[T]) Ptr(axis TableAxis) *T {
	switch axis {
	case Rows:
		return &c.Row
	case Columns:
		return &c.Col
	}
	panic(fmt.Sprintf("invalid %s", axis))
}

// With returns a copy of the address with the index along axis replaced.
func (c CellAddress[T]) With(axis TableAxis, idx T) CellAddress[T] {
	*c.Ptr(axis) = idx
	return c
}

func (c CellAddress[T]) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}
