package regrid

// Remapper provides the source a RemapSpec is built against.
// The keys of a Remapper are what sort and filter specs
// refer to by their Column field.
type Remapper interface {
	// SourceLen returns the number of logical indices of the axis.
	SourceLen() int

	// NumKeys returns the number of keys that can be
	// used for sorting and filtering.
	NumKeys() int

	// Key returns the value of key for a logical index.
	Key(log LogIdx, key int) any
}

// RowsRemapper returns a Remapper for the rows of view.
// The keys are the columns of view and a key value is a cell.
func RowsRemapper(view View) Remapper {
	return rowsRemapper{view}
}

type rowsRemapper struct {
	view View
}

func (r rowsRemapper) SourceLen() int { return r.view.NumRows() }
func (r rowsRemapper) NumKeys() int   { return NumCols(r.view) }

func (r rowsRemapper) Key(log LogIdx, key int) any {
	return r.view.Cell(int(log), key)
}

// ColumnsRemapper returns a Remapper for the columns of view
// with a single key, the column title.
func ColumnsRemapper(view View) Remapper {
	return columnsRemapper{view.Columns()}
}

type columnsRemapper struct {
	titles []string
}

func (r columnsRemapper) SourceLen() int { return len(r.titles) }
func (r columnsRemapper) NumKeys() int   { return 1 }

func (r columnsRemapper) Key(log LogIdx, key int) any {
	if key != 0 || log < 0 || int(log) >= len(r.titles) {
		return nil
	}
	return r.titles[log]
}

// LenRemapper returns a Remapper for an axis of length n
// without any keys. Only Retain and Predicate specs
// can be built against it.
func LenRemapper(n int) Remapper {
	return lenRemapper(n)
}

type lenRemapper int

func (r lenRemapper) SourceLen() int { return int(r) }
func (lenRemapper) NumKeys() int     { return 0 }

func (lenRemapper) Key(LogIdx, int) any {
	return nil
}

// AxisRemapper returns the Remapper of view for axis.
func AxisRemapper(view View, axis TableAxis) Remapper {
	if axis == Columns {
		return ColumnsRemapper(view)
	}
	return RowsRemapper(view)
}
