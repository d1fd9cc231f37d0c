package regrid

import (
	"strings"
)

var _ View = new(StringsView)

// StringsView is a View with string cells,
// the data source for CSV and spreadsheet data.
//
// A row within Rows can have fewer slice elements than Cols,
// in which case empty strings are returned for the missing cells.
type StringsView struct {
	Tit  string
	Cols []string
	Rows [][]string
}

// NewStringsView returns a StringsView with the columns cols.
// If no cols are passed, the first row of rows is used as header
// and removed from the data rows.
// Column titles are trimmed of leading and trailing whitespace.
//
//	view := regrid.NewStringsView(
//	    "Users",
//	    [][]string{
//	        {"Name", "Age"}, // This becomes the header
//	        {"alice", "30"},
//	        {"bob", "25"},
//	    },
//	)
func NewStringsView(title string, rows [][]string, cols ...string) *StringsView {
	if len(cols) == 0 && len(rows) > 0 {
		cols = rows[0]
		rows = rows[1:]
	}
	for i, col := range cols {
		cols[i] = strings.TrimSpace(col)
	}
	return &StringsView{Tit: title, Cols: cols, Rows: rows}
}

func (view *StringsView) Title() string     { return view.Tit }
func (view *StringsView) Columns() []string { return view.Cols }
func (view *StringsView) NumRows() int      { return len(view.Rows) }

// Cell returns the string at row and col,
// an empty string for a missing cell of a short row,
// or nil if row or col are out of bounds.
func (view *StringsView) Cell(row, col int) any {
	if row < 0 || col < 0 || row >= len(view.Rows) || col >= len(view.Cols) {
		return nil
	}
	if col >= len(view.Rows[row]) {
		return ""
	}
	return view.Rows[row][col]
}
