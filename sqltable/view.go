// Package sqltable loads SQL query results as regrid views
// and serves views or the visible part of a regrid.Table
// to database/sql clients through a read only virtual driver.
package sqltable

import (
	"context"
	"database/sql"
	"slices"

	"github.com/domonda/go-regrid"
	"github.com/domonda/go-regrid/internal/log"
)

// Queryer is implemented by *sql.DB, *sql.Conn and *sql.Tx.
type Queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// QueryView executes query and returns the result as view with title.
func QueryView(ctx context.Context, db Queryer, title, query string, args ...any) (*regrid.AnyValuesView, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	view, err := ScanRowsAsView(ctx, rows)
	if err != nil {
		return nil, err
	}
	view.Tit = title
	log.Debug(log.CatData, "queried view", "query", query, "rows", len(view.Rows), "cols", len(view.Cols))
	return view, nil
}

// ScanRowsAsView scans all rows into an AnyValuesView
// and closes rows.
func ScanRowsAsView(ctx context.Context, rows Rows) (*regrid.AnyValuesView, error) {
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	view := &regrid.AnyValuesView{Cols: columns}

	for rows.Next() {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		scannedValues := make([]any, len(columns))
		valueScanners := make([]any, len(columns))
		for i := range valueScanners {
			valueScanners[i] = valueScanner{&scannedValues[i]}
		}
		err = rows.Scan(valueScanners...)
		if err != nil {
			return view, err
		}
		view.Rows = append(view.Rows, scannedValues)
	}
	return view, rows.Err()
}

var _ sql.Scanner = new(valueScanner)

type valueScanner struct {
	dest *any
}

// Scan implements the database/sql.Scanner interface.
func (s valueScanner) Scan(src any) error {
	if b, ok := src.([]byte); ok {
		// Copy bytes because they won't be valid after this method call
		src = slices.Clone(b)
	}
	*s.dest = src
	return nil
}
