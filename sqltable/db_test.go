package sqltable

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/domonda/go-regrid"
)

func peopleTable(t *testing.T) *regrid.Table {
	t.Helper()
	table, err := regrid.NewTable(
		regrid.NewStringsView("People", [][]string{
			{"Name", "Age"},
			{"carol", "41"},
			{"alice", "30"},
			{"bob", "25"},
		}),
		regrid.DefaultTableConfig(),
	)
	require.NoError(t, err)
	return table
}

func TestNewTableDB(t *testing.T) {
	ctx := context.Background()
	table := peopleTable(t)
	db := NewTableDB("people", table)
	defer db.Close()

	view, err := QueryView(ctx, db, "all", `SELECT * FROM people`)
	require.NoError(t, err)
	assert.Equal(t, "all", view.Title())
	assert.Equal(t, []string{"Name", "Age"}, view.Columns())
	assert.Equal(t, "carol", view.Cell(0, 0))

	// queries follow the current remap of the table
	require.NoError(t, table.ToggleSort(1, false))
	view, err = QueryView(ctx, db, "", `select Name from people limit 2`)
	require.NoError(t, err)
	assert.Equal(t, []string{"Name"}, view.Columns())
	assert.Equal(t, [][]any{{"bob"}, {"alice"}}, view.Rows)

	view, err = QueryView(ctx, db, "", `SELECT Age, Name FROM people LIMIT 5 OFFSET 2`)
	require.NoError(t, err)
	assert.Equal(t, [][]any{{"41", "carol"}}, view.Rows)

	_, err = QueryView(ctx, db, "", `SELECT * FROM other`)
	require.Error(t, err)
	_, err = QueryView(ctx, db, "", `SELECT Height FROM people`)
	require.Error(t, err)
}

func TestNewViewDB(t *testing.T) {
	ctx := context.Background()
	db := NewViewDB("numbers", &regrid.AnyValuesView{
		Cols: []string{"n", "bad"},
		Rows: [][]any{{1, nil}, {2, struct{ X int }{}}},
	})
	defer db.Close()

	view, err := QueryView(ctx, db, "", `SELECT n FROM numbers`)
	require.NoError(t, err)
	assert.Equal(t, [][]any{{int64(1)}, {int64(2)}}, view.Rows)

	_, err = QueryView(ctx, db, "", `SELECT bad FROM numbers`)
	require.Error(t, err, "struct is no driver.Value")
}

func TestQueryView_SQLite(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "test.db")

	db, err := sql.Open("sqlite3", "file:"+path)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, `
		CREATE TABLE items (id INTEGER PRIMARY KEY, name TEXT, price REAL, data BLOB);
		INSERT INTO items (name, price, data) VALUES ('pear', 1.5, x'01'), ('apple', 0.5, NULL), ('fig', 3.25, NULL);
	`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = OpenSQLite(ctx, path)
	require.NoError(t, err)
	defer db.Close()

	view, err := QueryView(ctx, db, "items", `SELECT name, price, data FROM items WHERE price > ? ORDER BY id`, 0.1)
	require.NoError(t, err)
	assert.Equal(t, []string{"name", "price", "data"}, view.Columns())
	require.Equal(t, 3, view.NumRows())
	assert.Equal(t, []byte{1}, view.Cell(0, 2))
	assert.Nil(t, view.Cell(1, 2))

	table := regrid.MustNewTable(view, regrid.DefaultTableConfig())
	require.NoError(t, table.ToggleSort(1, false))
	assert.Equal(t, []regrid.LogIdx{1, 0, 2}, table.Remap(regrid.Rows).LogIndices())

	_, err = db.ExecContext(ctx, `DELETE FROM items`)
	require.Error(t, err, "opened read only")

	_, err = OpenSQLite(ctx, filepath.Join(t.TempDir(), "missing.db"))
	require.Error(t, err)
}
