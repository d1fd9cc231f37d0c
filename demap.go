package regrid

// CellDemap resolves visual indices to logical indices
// per axis. It is the only translation point from the
// visual to the logical coordinate space.
type CellDemap interface {
	// LogIdx returns the logical index shown at the
	// visual index vis of axis or false if there is none.
	LogIdx(axis TableAxis, vis VisIdx) (LogIdx, bool)
}

// CellRemap is a CellDemap that also translates
// logical indices back to visual indices.
type CellRemap interface {
	CellDemap

	// VisIdx returns the visual index of the logical
	// index log of axis or false if log is not visible.
	VisIdx(axis TableAxis, log LogIdx) (VisIdx, bool)
}

// LogCell returns the logical address of the visual cell address vis
// or false if either axis can't be resolved.
func LogCell(demap CellDemap, vis CellAddress[VisIdx]) (log CellAddress[LogIdx], ok bool) {
	if log.Row, ok = demap.LogIdx(Rows, vis.Row); !ok {
		return CellAddress[LogIdx]{}, false
	}
	if log.Col, ok = demap.LogIdx(Columns, vis.Col); !ok {
		return CellAddress[LogIdx]{}, false
	}
	return log, true
}

// VisCell returns the visual address of the logical cell address log
// or false if the row or column is not visible.
func VisCell(remap CellRemap, log CellAddress[LogIdx]) (vis CellAddress[VisIdx], ok bool) {
	if vis.Row, ok = remap.VisIdx(Rows, log.Row); !ok {
		return CellAddress[VisIdx]{}, false
	}
	if vis.Col, ok = remap.VisIdx(Columns, log.Col); !ok {
		return CellAddress[VisIdx]{}, false
	}
	return vis, true
}

var _ CellRemap = RemapPair{}

// RemapPair combines the Remap of the rows and columns
// of a table into a CellRemap.
// A nil Remap resolves nothing.
type RemapPair AxisPair[*Remap]

// NewRemapPair returns a RemapPair for rows and cols.
func NewRemapPair(rows, cols *Remap) RemapPair {
	return RemapPair{Row: rows, Col: cols}
}

func (p RemapPair) remap(axis TableAxis) *Remap {
	if axis == Columns {
		return p.Col
	}
	return p.Row
}

func (p RemapPair) LogIdx(axis TableAxis, vis VisIdx) (LogIdx, bool) {
	remap := p.remap(axis)
	if remap == nil {
		return 0, false
	}
	return remap.LogIdx(vis)
}

func (p RemapPair) VisIdx(axis TableAxis, log LogIdx) (VisIdx, bool) {
	remap := p.remap(axis)
	if remap == nil {
		return 0, false
	}
	return remap.VisIdx(log)
}
