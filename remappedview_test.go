package regrid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestRemappedView(t *testing.T) {
	source := NewStringsView("Title", [][]string{
		{"A", "B", "C"},
		{"a0", "b0", "c0"},
		{"a1", "b1"},
		{"a2", "b2", "c2"},
	})
	view := NewRemappedView(
		source,
		MustBuildRemap(RemapSpec{Retain: []LogIdx{2, 0}}, LenRemapper(3)),
		MustBuildRemap(RemapSpec{Retain: []LogIdx{2, 1}}, LenRemapper(3)),
	)
	assert.Equal(t, "Title", view.Title())
	assert.Equal(t, []string{"C", "B"}, view.Columns())
	assert.Equal(t, 2, view.NumRows())
	assert.Equal(t, "c2", view.Cell(0, 0))
	assert.Equal(t, "b0", view.Cell(1, 1))
	assert.Nil(t, view.Cell(2, 0))
	assert.Nil(t, view.Cell(0, -1))

	log, ok := view.LogCell(visCell(1, 0))
	require.True(t, ok)
	assert.Equal(t, logCell(0, 2), log)

	untransformed := NewRemappedView(source, nil, nil)
	assert.Equal(t, source.Columns(), untransformed.Columns())
	assert.Equal(t, 3, untransformed.NumRows())
	assert.Equal(t, "", untransformed.Cell(1, 2), "short row")
	assert.Nil(t, untransformed.Cell(3, 0))
}

func TestSnapshotView(t *testing.T) {
	table := MustNewTable(peopleView(), DefaultTableConfig())
	require.NoError(t, table.ToggleSort(0, false))
	snapshot := SnapshotView(table.VisibleView())

	require.NoError(t, table.ClearSort())
	assert.Equal(t, "carol", table.VisibleView().Cell(0, 0))
	assert.Equal(t, "People", snapshot.Title())
	assert.Equal(t, []string{"Name", "Age"}, snapshot.Columns())
	assert.Equal(t, [][]any{{"alice", "30"}, {"bob", "25"}, {"carol", "41"}}, snapshot.Rows)

	short := &AnyValuesView{Cols: []string{"A", "B"}, Rows: [][]any{{1}}}
	assert.Equal(t, 1, short.Cell(0, 0))
	assert.Nil(t, short.Cell(0, 1), "missing cell")
	assert.Nil(t, short.Cell(1, 0))
}

func TestProperty_RemappedViewCells(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		numRows := rapid.IntRange(0, 10).Draw(t, "numRows")
		numCols := rapid.IntRange(1, 5).Draw(t, "numCols")
		source := &AnyValuesView{Cols: make([]string, numCols)}
		for range numRows {
			cells := make([]any, numCols)
			for col := range cells {
				cells[col] = rapid.IntRange(0, 9).Draw(t, "cell")
			}
			source.Rows = append(source.Rows, cells)
		}
		rows := MustBuildRemap(RemapSpec{Sort: []SortSpec{{Column: rapid.IntRange(0, numCols-1).Draw(t, "sortCol")}}}, RowsRemapper(source))
		cols := MustBuildRemap(RemapSpec{Retain: rapid.Permutation(logIndices(numCols)).Draw(t, "cols")}, ColumnsRemapper(source))
		view := NewRemappedView(source, rows, cols)

		for visRow := range view.NumRows() {
			for visCol := range NumCols(view) {
				log, ok := view.LogCell(visCell(visRow, visCol))
				require.True(t, ok)
				require.Equal(t, source.Cell(int(log.Row), int(log.Col)), view.Cell(visRow, visCol))
			}
		}
	})
}
