package sqltable

import (
	"context"
	"database/sql"
	"database/sql/driver"

	"github.com/domonda/go-regrid"
)

// NewViewsDB returns a read only DB that serves
// the views by name to SELECT queries, see NewViewDB.
func NewViewsDB(views map[string]regrid.View) *sql.DB {
	return sql.OpenDB(database{
		lookup: func(name string) regrid.View { return views[name] },
	})
}

// NewViewDB returns a read only DB serving view as viewName.
//
// Supported queries have the form
//
//	SELECT * | col1, "col 2" FROM viewName [LIMIT n [OFFSET m]]
//
// Rows are returned in the order of the view.
func NewViewDB(viewName string, view regrid.View) *sql.DB {
	return NewViewsDB(map[string]regrid.View{
		viewName: view,
	})
}

// NewTableDB returns a read only DB serving the visible rows
// and columns of table in visual order as tableName.
// Every query reads a snapshot of the table taken
// when the query is prepared.
func NewTableDB(tableName string, table *regrid.Table) *sql.DB {
	return sql.OpenDB(database{
		lookup: func(name string) regrid.View {
			if name != tableName {
				return nil
			}
			return regrid.SnapshotView(table.VisibleView())
		},
	})
}

type database struct {
	lookup func(name string) regrid.View
}

func (c database) Connect(context.Context) (driver.Conn, error) {
	return c, nil
}

func (c database) Driver() driver.Driver {
	return c
}

func (c database) Open(string) (driver.Conn, error) {
	return c, nil
}

func (c database) Prepare(query string) (driver.Stmt, error) {
	return newStmt(c.lookup, query)
}

func (database) Close() error {
	return nil
}

func (c database) Begin() (driver.Tx, error) {
	return c, nil
}

func (database) Commit() error {
	return nil
}

func (database) Rollback() error {
	return nil
}
