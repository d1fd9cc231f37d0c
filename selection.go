package regrid

import "fmt"

// IndicesSelectionKind is the variant of an IndicesSelection.
type IndicesSelectionKind int

const (
	IndicesNoSelection IndicesSelectionKind = iota
	IndicesSingle
)

// IndicesSelection is the selection along a single axis.
// It carries the visual and the logical index together
// so that it can be translated after a remap without ambiguity.
// The zero value selects nothing.
type IndicesSelection struct {
	kind IndicesSelectionKind
	vis  VisIdx
	log  LogIdx
}

// NoIndicesSelection returns an IndicesSelection selecting nothing.
func NoIndicesSelection() IndicesSelection {
	return IndicesSelection{}
}

// SingleIndex returns an IndicesSelection of one index.
func SingleIndex(vis VisIdx, log LogIdx) IndicesSelection {
	return IndicesSelection{kind: IndicesSingle, vis: vis, log: log}
}

func (s IndicesSelection) Kind() IndicesSelectionKind { return s.kind }

// Single returns the selected index or false if nothing is selected.
func (s IndicesSelection) Single() (vis VisIdx, log LogIdx, ok bool) {
	if s.kind != IndicesSingle {
		return 0, 0, false
	}
	return s.vis, s.log, true
}

// IsVisSelected reports if the visual index vis is selected.
func (s IndicesSelection) IsVisSelected(vis VisIdx) bool {
	return s.kind == IndicesSingle && s.vis == vis
}

func (s IndicesSelection) String() string {
	if s.kind == IndicesSingle {
		return fmt.Sprintf("Single(vis %d, log %d)", s.vis, s.log)
	}
	return "NoSelection"
}

// SingleCell is one selected cell
// addressed in both coordinate spaces.
type SingleCell struct {
	Vis CellAddress[VisIdx]
	Log CellAddress[LogIdx]
}

// SingleAxisSlice is one selected row (Axis == Rows)
// or column (Axis == Columns).
type SingleAxisSlice struct {
	Axis TableAxis
	Vis  VisIdx
	Log  LogIdx
}

// SelectionKind is the variant of a TableSelection.
type SelectionKind int

const (
	NoSelection SelectionKind = iota
	SingleCellSelection
	SingleSliceSelection
)

func (k SelectionKind) String() string {
	switch k {
	case NoSelection:
		return "NoSelection"
	case SingleCellSelection:
		return "SingleCell"
	case SingleSliceSelection:
		return "SingleSlice"
	}
	return fmt.Sprintf("SelectionKind(%d)", int(k))
}

// TableSelection is the selection of a whole table:
// nothing, a single cell or a single row or column.
// The zero value selects nothing.
//
// The visual and logical addresses of a selection
// denote the same cell under the remap that was current
// when the selection was created. After a remap
// a selection has to be passed through Revalidate.
type TableSelection struct {
	kind  SelectionKind
	cell  SingleCell
	slice SingleAxisSlice
}

// CellSelection returns a TableSelection of cell.
func CellSelection(cell SingleCell) TableSelection {
	return TableSelection{kind: SingleCellSelection, cell: cell}
}

// SliceSelection returns a TableSelection of a row or column.
func SliceSelection(slice SingleAxisSlice) TableSelection {
	return TableSelection{kind: SingleSliceSelection, slice: slice}
}

// SelectVisCell returns the selection of the visual cell vis
// or false if demap can't resolve it.
func SelectVisCell(demap CellDemap, vis CellAddress[VisIdx]) (TableSelection, bool) {
	log, ok := LogCell(demap, vis)
	if !ok {
		return TableSelection{}, false
	}
	return CellSelection(SingleCell{Vis: vis, Log: log}), true
}

// SelectVisSlice returns the selection of the visual row or column vis
// or false if demap can't resolve it.
func SelectVisSlice(demap CellDemap, axis TableAxis, vis VisIdx) (TableSelection, bool) {
	log, ok := demap.LogIdx(axis, vis)
	if !ok {
		return TableSelection{}, false
	}
	return SliceSelection(SingleAxisSlice{Axis: axis, Vis: vis, Log: log}), true
}

func (s TableSelection) Kind() SelectionKind { return s.kind }

// IsEmpty reports if nothing is selected.
func (s TableSelection) IsEmpty() bool { return s.kind == NoSelection }

// Cell returns the selected cell or false
// if the selection is not a single cell.
func (s TableSelection) Cell() (SingleCell, bool) {
	return s.cell, s.kind == SingleCellSelection
}

// Slice returns the selected row or column or false
// if the selection is not a single slice.
func (s TableSelection) Slice() (SingleAxisSlice, bool) {
	return s.slice, s.kind == SingleSliceSelection
}

// MoveFocus returns the selection moved by offset along axis.
//
// Without a selection the focus moves to the visual origin.
// A selected cell moves to the neighbouring visual cell.
// The move only succeeds if demap resolves the target,
// otherwise the unchanged selection and false are returned,
// so a move never produces an out of range selection.
//
// A selected row or column can't be moved,
// MoveFocus returns it unchanged together with false.
//
// Parameters:
//   - axis: Rows moves up or down, Columns moves left or right
//   - offset: Signed number of visual indices to move
//   - demap: Translates the target visual cell to its logical cell
//
// Returns:
//   - The moved selection, or s if the move failed
//   - true if the move succeeded
//
// Example:
//
//	sel, ok := sel.MoveFocus(regrid.Columns, -1, regrid.NewRemapPair(rows, cols))
//	if !ok {
//		// at the left edge
//	}
func (s TableSelection) MoveFocus(axis TableAxis, offset VisOffset, demap CellDemap) (TableSelection, bool) {
	switch s.kind {
	case NoSelection:
		moved, ok := SelectVisCell(demap, CellAddress[VisIdx]{})
		if !ok {
			return s, false
		}
		return moved, true

	case SingleCellSelection:
		vis := s.cell.Vis.With(axis, s.cell.Vis.Get(axis).Add(offset))
		moved, ok := SelectVisCell(demap, vis)
		if !ok {
			return s, false
		}
		return moved, true

	case SingleSliceSelection:
		return s, false
	}
	panic(fmt.Sprintf("invalid %s", s.kind))
}

// ToAxisSelection projects the selection onto axis.
// A selected row or column only projects
// onto its own axis.
func (s TableSelection) ToAxisSelection(axis TableAxis) IndicesSelection {
	switch s.kind {
	case SingleCellSelection:
		return SingleIndex(s.cell.Vis.Get(axis), s.cell.Log.Get(axis))
	case SingleSliceSelection:
		if s.slice.Axis == axis {
			return SingleIndex(s.slice.Vis, s.slice.Log)
		}
	}
	return NoIndicesSelection()
}

// SelectionStatus classifies a cell relative to a TableSelection.
type SelectionStatus int

const (
	NotSelected SelectionStatus = iota
	Primary
	// AlsoSelected is reserved for multi-selections.
	AlsoSelected
)

// IsSelected reports if the status is not NotSelected.
func (s SelectionStatus) IsSelected() bool { return s != NotSelected }

func (s SelectionStatus) String() string {
	switch s {
	case NotSelected:
		return "NotSelected"
	case Primary:
		return "Primary"
	case AlsoSelected:
		return "AlsoSelected"
	}
	return fmt.Sprintf("SelectionStatus(%d)", int(s))
}

// CellStatus returns the SelectionStatus of the visual cell vis.
// Only the cell of a single cell selection is Primary.
func (s TableSelection) CellStatus(vis CellAddress[VisIdx]) SelectionStatus {
	if s.kind == SingleCellSelection && s.cell.Vis == vis {
		return Primary
	}
	return NotSelected
}

// Revalidate translates the selection to the current remap
// by looking up its logical address.
// A selection whose logical row or column is no longer visible
// becomes NoSelection.
func (s TableSelection) Revalidate(remap CellRemap) TableSelection {
	switch s.kind {
	case SingleCellSelection:
		vis, ok := VisCell(remap, s.cell.Log)
		if !ok {
			return TableSelection{}
		}
		if log, ok := LogCell(remap, vis); !ok || log != s.cell.Log {
			return TableSelection{}
		}
		return CellSelection(SingleCell{Vis: vis, Log: s.cell.Log})

	case SingleSliceSelection:
		vis, ok := remap.VisIdx(s.slice.Axis, s.slice.Log)
		if !ok {
			return TableSelection{}
		}
		return SliceSelection(SingleAxisSlice{Axis: s.slice.Axis, Vis: vis, Log: s.slice.Log})
	}
	return TableSelection{}
}

func (s TableSelection) String() string {
	switch s.kind {
	case SingleCellSelection:
		return fmt.Sprintf("SingleCell(vis %s, log %s)", s.cell.Vis, s.cell.Log)
	case SingleSliceSelection:
		return fmt.Sprintf("SingleSlice(%s, vis %d, log %d)", s.slice.Axis, s.slice.Vis, s.slice.Log)
	}
	return "NoSelection"
}
