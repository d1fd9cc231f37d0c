package regrid

var _ View = new(RemappedView)

// RemappedView presents a Source View in visual order.
// Row and column indices of a RemappedView are visual indices
// that are translated to logical indices of Source
// through the RowRemap and ColRemap.
//
// A nil Remap leaves its axis untransformed.
type RemappedView struct {
	Source   View
	RowRemap *Remap
	ColRemap *Remap
}

// NewRemappedView returns a RemappedView of source.
func NewRemappedView(source View, rows, cols *Remap) *RemappedView {
	return &RemappedView{Source: source, RowRemap: rows, ColRemap: cols}
}

func (view *RemappedView) Title() string {
	return view.Source.Title()
}

func (view *RemappedView) Columns() []string {
	sourceCols := view.Source.Columns()
	if view.ColRemap == nil {
		return sourceCols
	}
	mappedCols := make([]string, 0, view.ColRemap.NumVisible())
	for _, log := range view.ColRemap.All() {
		if int(log) < len(sourceCols) {
			mappedCols = append(mappedCols, sourceCols[log])
		} else {
			mappedCols = append(mappedCols, "")
		}
	}
	return mappedCols
}

func (view *RemappedView) NumRows() int {
	if view.RowRemap == nil {
		return view.Source.NumRows()
	}
	return view.RowRemap.NumVisible()
}

func (view *RemappedView) Cell(row, col int) any {
	log, ok := view.LogCell(CellAddress[VisIdx]{Row: VisIdx(row), Col: VisIdx(col)})
	if !ok {
		return nil
	}
	return LogCellValue(view.Source, log)
}

// LogIdx implements CellDemap.
func (view *RemappedView) LogIdx(axis TableAxis, vis VisIdx) (LogIdx, bool) {
	remap := view.RowRemap
	n := view.Source.NumRows()
	if axis == Columns {
		remap = view.ColRemap
		n = NumCols(view.Source)
	}
	if remap == nil {
		if vis < 0 || int(vis) >= n {
			return 0, false
		}
		return LogIdx(vis), true
	}
	return remap.LogIdx(vis)
}

// LogCell returns the logical address in Source of the visual address vis.
func (view *RemappedView) LogCell(vis CellAddress[VisIdx]) (CellAddress[LogIdx], bool) {
	return LogCell(view, vis)
}
