package sqltable

import "database/sql"

var _ Rows = &sql.Rows{}

// Rows abstracts the methods of *sql.Rows
// used to scan a query result into a view.
//
// Any *sql.Rows satisfies Rows, whether it comes from a real
// database like SQLite or from the in-memory driver
// of this package querying a Table.
// Tests can pass their own implementation
// to ScanRowsAsView without opening a database.
//
// Usage example:
//
//	rows, err := db.QueryContext(ctx, "SELECT name, age FROM people")
//	if err != nil {
//		return err
//	}
//	view, err := sqltable.ScanRowsAsView(ctx, rows)
//	if err != nil {
//		return err
//	}
//	table, err := regrid.NewTable(view, regrid.DefaultTableConfig())
//
// The Rows interface follows the same usage patterns as sql.Rows:
//  1. Call Next() to advance to each row
//  2. Call Scan() to read column values into variables
//  3. Call Close() when done to release resources
//  4. Call Err() to check for iteration errors
type Rows interface {
	// Columns returns the names of the columns in the result set.
	Columns() ([]string, error)

	// Scan copies the column values from the current row into the variables
	// pointed to by dest.
	Scan(dest ...any) error

	// Close closes the Rows, preventing further enumeration.
	Close() error

	// Next prepares the next result row for reading with Scan.
	Next() bool

	// Err returns the error, if any, that was encountered during iteration.
	Err() error
}
