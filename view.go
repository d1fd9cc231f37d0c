package regrid

// View is the read access to the dataset a table indexes into.
// Row and column indices of a View are logical indices,
// a View knows nothing about sorting or filtering.
type View interface {
	// Title of the dataset, may be empty.
	Title() string

	// Columns returns the column titles which also
	// define the number of columns.
	Columns() []string

	// NumRows returns the number of rows.
	NumRows() int

	// Cell returns the value at row and col
	// or nil if the indices are out of bounds.
	Cell(row, col int) any
}

// NumCols returns the number of columns of view.
func NumCols(view View) int {
	return len(view.Columns())
}

// LogCellValue returns the cell of view at a logical cell address.
func LogCellValue(view View, log CellAddress[LogIdx]) any {
	return view.Cell(int(log.Row), int(log.Col))
}
