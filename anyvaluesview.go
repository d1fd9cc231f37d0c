package regrid

var _ View = new(AnyValuesView)

// AnyValuesView is an in-memory View with cells of any type.
// Rows may be shorter than Cols, missing cells are nil.
type AnyValuesView struct {
	Tit  string
	Cols []string
	Rows [][]any
}

// SnapshotView copies all cells of source into an AnyValuesView.
// Snapshotting a RemappedView freezes the current visual order
// so later remaps of the table don't affect the copy.
func SnapshotView(source View) *AnyValuesView {
	cols := source.Columns()
	snapshot := &AnyValuesView{
		Tit:  source.Title(),
		Cols: append([]string(nil), cols...),
		Rows: make([][]any, source.NumRows()),
	}
	for row := range snapshot.Rows {
		cells := make([]any, len(cols))
		for col := range cells {
			cells[col] = source.Cell(row, col)
		}
		snapshot.Rows[row] = cells
	}
	return snapshot
}

func (view *AnyValuesView) Title() string     { return view.Tit }
func (view *AnyValuesView) Columns() []string { return view.Cols }
func (view *AnyValuesView) NumRows() int      { return len(view.Rows) }

func (view *AnyValuesView) Cell(row, col int) any {
	if row < 0 || row >= len(view.Rows) {
		return nil
	}
	if cells := view.Rows[row]; col >= 0 && col < len(cells) {
		return cells[col]
	}
	return nil
}
