package exceltable

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/ungerik/go-fs"
	"github.com/xuri/excelize/v2"

	"github.com/domonda/go-regrid"
)

// workbook returns the bytes of an Excel file with the passed sheets.
// The first sheet replaces the default sheet of a new file.
func workbook(t *testing.T, sheets map[string][][]any, order ...string) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i, name := range order {
		if i == 0 {
			require.NoError(t, f.SetSheetName("Sheet1", name))
		} else {
			_, err := f.NewSheet(name)
			require.NoError(t, err)
		}
		for r, row := range sheets[name] {
			cell, err := excelize.CoordinatesToCellName(1, r+1)
			require.NoError(t, err)
			require.NoError(t, f.SetSheetRow(name, cell, &row))
		}
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func TestReadSheet(t *testing.T) {
	data := workbook(t, map[string][][]any{
		"People": {
			{"Name", "", "Age"},
			{"alice", "", 30},
			{},
			{"bob", "", 25},
		},
		"Empty": {},
	}, "People", "Empty")

	view, err := ReadSheet(bytes.NewReader(data), "", false)
	require.NoError(t, err)
	require.Equal(t, "People", view.Title())
	require.Equal(t, []string{"Name", "Age"}, view.Columns())
	require.Equal(t, 2, view.NumRows())
	require.Equal(t, "bob", view.Cell(1, 0))
	require.Equal(t, "25", view.Cell(1, 1))

	_, err = ReadSheet(bytes.NewReader(data), "Empty", false)
	require.ErrorIs(t, err, ErrEmptySheet)

	_, err = ReadSheet(bytes.NewReader(data), "Missing", false)
	var notExist ErrSheetNotExist
	require.True(t, errors.As(err, &notExist))
	require.Equal(t, "Missing", notExist.SheetName)

	views, err := ReadAllSheets(bytes.NewReader(data), true)
	require.NoError(t, err)
	require.Len(t, views, 1)

	_, err = ReadSheet(bytes.NewReader([]byte("not a zip")), "", false)
	require.Error(t, err)
}

func TestReadFile(t *testing.T) {
	data := workbook(t, map[string][][]any{
		"Data": {{"key"}, {3}, {1}, {2}},
	}, "Data")
	file := fs.File(filepath.Join(t.TempDir(), "data.xlsx"))
	require.NoError(t, file.WriteAll(data))

	view, err := ReadFile(file, "Data")
	require.NoError(t, err)

	table, err := regrid.NewTable(view, regrid.DefaultTableConfig())
	require.NoError(t, err)
	require.NoError(t, table.ToggleSort(0, false))
	require.Equal(t, []regrid.LogIdx{1, 2, 0}, table.Remap(regrid.Rows).LogIndices())
}
