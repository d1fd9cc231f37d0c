package regrid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func peopleView() *StringsView {
	return NewStringsView("People", [][]string{
		{"Name", "Age"},
		{"carol", "41"},
		{"alice", "30"},
		{"bob", "25"},
	})
}

func TestNewTable(t *testing.T) {
	table, err := NewTable(peopleView(), DefaultTableConfig())
	require.NoError(t, err)
	assert.NotEmpty(t, table.ID())
	assert.Equal(t, 3, table.NumVisible(Rows))
	assert.Equal(t, 2, table.NumVisible(Columns))
	assert.True(t, table.Remap(Rows).IsIdentity())
	assert.Equal(t, NoSelection, table.Selection().Kind())
	assert.Empty(t, table.DrainNotifications())

	// column widths from content: "carol" + 2 padding, "Age" + 2 padding
	assert.Equal(t, 7.0, table.Measure(Columns).PixelLength(0))
	assert.Equal(t, 5.0, table.Measure(Columns).PixelLength(1))
	assert.Equal(t, 3.0, table.Measure(Rows).TotalPixelLength())

	_, err = NewTable(nil, DefaultTableConfig())
	require.Error(t, err)

	config := DefaultTableConfig()
	config.RowHeight = 0
	_, err = NewTable(peopleView(), config)
	require.Error(t, err)

	require.Panics(t, func() { MustNewTable(peopleView(), config) })
}

func TestTable_SortKeepsSelection(t *testing.T) {
	table := MustNewTable(peopleView(), DefaultTableConfig())
	require.True(t, table.SelectCell(visCell(0, 1)))
	notes := table.DrainNotifications()
	require.Len(t, notes, 2)
	assert.Equal(t, table.ID(), notes[0].Table)
	assert.Empty(t, table.DrainNotifications(), "drained")

	// sort by age ascending: bob, alice, carol
	require.NoError(t, table.ToggleSort(1, false))
	assert.Equal(t, []LogIdx{2, 1, 0}, table.Remap(Rows).LogIndices())
	assert.Equal(t, "bob", table.VisibleView().Cell(0, 0))

	cell, ok := table.Selection().Cell()
	require.True(t, ok)
	assert.Equal(t, visCell(2, 1), cell.Vis, "carol moved to the last row")
	assert.Equal(t, logCell(0, 1), cell.Log)
	notes = table.DrainNotifications()
	require.Len(t, notes, 1)
	assert.Equal(t, SelectIndices{Table: table.ID(), Axis: Rows, Indices: SingleIndex(2, 0)}, notes[0])

	// toggle to descending
	require.NoError(t, table.ToggleSort(1, false))
	assert.Equal(t, []LogIdx{0, 1, 2}, table.Remap(Rows).LogIndices())
	dir, ok := table.RemapSpec(Rows).SortDirectionOf(1)
	require.True(t, ok)
	assert.Equal(t, Descending, dir)

	require.NoError(t, table.ClearSort())
	assert.True(t, table.Remap(Rows).IsIdentity())

	require.ErrorIs(t, table.ToggleSort(5, false), ErrInvalidSpec)
	assert.True(t, table.Remap(Rows).IsIdentity(), "unchanged after error")
}

func TestTable_FilterHidesSelection(t *testing.T) {
	table := MustNewTable(peopleView(), DefaultTableConfig())
	require.True(t, table.SelectCell(visCell(1, 0)))
	table.DrainNotifications()

	err := table.SetRemapSpec(Rows, RemapSpec{Filters: []FilterSpec{{
		Column: 0,
		Keep:   func(cell any) bool { return cell != "alice" },
	}}})
	require.NoError(t, err)
	assert.Equal(t, 2, table.NumVisible(Rows))
	assert.Equal(t, 2, table.Measure(Rows).Len())
	assert.Equal(t, NoSelection, table.Selection().Kind())
	notes := table.DrainNotifications()
	require.Len(t, notes, 2)
	assert.Equal(t, IndicesNoSelection, notes[0].Indices.Kind())
}

func TestTable_MoveFocus(t *testing.T) {
	table := MustNewTable(peopleView(), DefaultTableConfig())
	require.True(t, table.MoveFocus(Rows, 1), "first move selects the origin")
	assert.Equal(t, Primary, table.CellStatus(visCell(0, 0)))
	require.True(t, table.MoveFocus(Rows, 2))
	require.False(t, table.MoveFocus(Rows, 1))
	require.True(t, table.MoveFocus(Columns, 1))
	require.False(t, table.MoveFocus(Columns, 5))

	cell, _ := table.Selection().Cell()
	assert.Equal(t, visCell(2, 1), cell.Vis)

	require.True(t, table.SelectSlice(Columns, 1))
	assert.False(t, table.MoveFocus(Rows, 1))
	require.False(t, table.SelectSlice(Columns, 2))

	table.ClearSelection()
	assert.Equal(t, NoSelection, table.Selection().Kind())
	require.False(t, table.SelectCell(visCell(3, 0)))

	empty := MustNewTable(NewStringsView("", nil, "A"), DefaultTableConfig())
	assert.False(t, empty.MoveFocus(Rows, 1))
	assert.Equal(t, NoSelection, empty.Selection().Kind())
}

func TestTable_Columns(t *testing.T) {
	table := MustNewTable(peopleView(), DefaultTableConfig())
	require.True(t, table.SelectCell(visCell(0, 1)))

	require.NoError(t, table.SetVisibleColumns([]LogIdx{1, 0}))
	assert.Equal(t, []string{"Age", "Name"}, table.VisibleView().Columns())
	assert.Equal(t, 5.0, table.Measure(Columns).PixelLength(0), "width follows the column")
	cell, _ := table.Selection().Cell()
	assert.Equal(t, visCell(0, 0), cell.Vis)

	require.NoError(t, table.HideColumns(0))
	assert.Equal(t, []string{"Age"}, table.VisibleView().Columns())

	require.NoError(t, table.HideColumns(1))
	assert.Equal(t, 0, table.NumVisible(Columns))
	assert.Equal(t, NoSelection, table.Selection().Kind())

	require.NoError(t, table.SetVisibleColumns(nil))
	assert.True(t, table.Remap(Columns).IsIdentity())
	require.ErrorIs(t, table.SetVisibleColumns([]LogIdx{0, 0}), ErrInvalidSpec)
}

func TestTable_SetData(t *testing.T) {
	table := MustNewTable(peopleView(), DefaultTableConfig())
	require.NoError(t, table.SetVisibleColumns([]LogIdx{1}))
	require.NoError(t, table.ToggleSort(0, false))
	require.True(t, table.SelectCell(visCell(0, 0)))
	table.DrainNotifications()

	// data with a single column makes the column spec invalid
	err := table.SetData(NewStringsView("", [][]string{{"x"}}, "Only"))
	require.ErrorIs(t, err, ErrInvalidSpec)
	assert.Equal(t, 3, table.NumVisible(Rows), "unchanged after error")

	more := NewStringsView("People", [][]string{
		{"Name", "Age"},
		{"dave", "52"},
		{"alice", "30"},
	})
	require.NoError(t, table.SetData(more))
	assert.Equal(t, []LogIdx{1, 0}, table.Remap(Rows).LogIndices(), "sort spec reapplied")
	cell, ok := table.Selection().Cell()
	require.True(t, ok, "logical cell (1, 1) still exists")
	assert.Equal(t, logCell(1, 1), cell.Log)
	assert.Equal(t, visCell(0, 0), cell.Vis)
}

func TestTable_RemapCache(t *testing.T) {
	table := MustNewTable(peopleView(), DefaultTableConfig())
	require.NoError(t, table.ToggleSort(0, false))
	first := table.Remap(Rows)
	require.NoError(t, table.ToggleSort(0, false))
	require.NoError(t, table.ToggleSort(0, false))
	assert.Same(t, first, table.Remap(Rows), "ascending remap served from cache")
	assert.Equal(t, 2, table.cache.len())

	require.NoError(t, table.SetRemapSpec(Rows, RemapSpec{Predicate: func(LogIdx) bool { return true }}))
	assert.Equal(t, 2, table.cache.len(), "specs with functions are not cached")

	require.NoError(t, table.SetData(peopleView()))
	assert.Equal(t, 0, table.cache.len())
}

func TestTable_Geometry(t *testing.T) {
	table := MustNewTable(peopleView(), DefaultTableConfig())

	vis, ok := table.CellAtPixel(7, 1)
	require.True(t, ok)
	assert.Equal(t, visCell(1, 1), vis)
	_, ok = table.CellAtPixel(12, 0)
	assert.False(t, ok)
	_, ok = table.CellAtPixel(0, 3)
	assert.False(t, ok)

	x, y, w, h := table.CellRect(visCell(2, 1))
	assert.Equal(t, []float64{7, 2, 5, 1}, []float64{x, y, w, h})

	require.ErrorIs(t, table.Resize(Rows, 0, 2), ErrUnsupported)
	require.NoError(t, table.Resize(Columns, 1, 9))
	assert.Equal(t, 16.0, table.Measure(Columns).TotalPixelLength())

	size, err := table.ResizeToPixel(Columns, 0, 3)
	require.NoError(t, err)
	assert.Equal(t, 3.0, size)
	size, err = table.ResizeToPixel(Columns, 0, -10)
	require.NoError(t, err)
	assert.Equal(t, 1.0, size, "clamped to min size")

	require.ErrorIs(t, table.Resize(Columns, 2, 9), ErrIndexOutOfRange)

	config := DefaultTableConfig()
	config.ColumnMeasure = MeasureFixed
	fixed := MustNewTable(peopleView(), config)
	assert.False(t, fixed.AutoSizeColumns())
	assert.Equal(t, 24.0, fixed.Measure(Columns).TotalPixelLength())
}
