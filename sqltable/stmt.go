package sqltable

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"io"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/domonda/go-regrid"
)

var _ driver.Stmt = new(stmt)

type stmt struct {
	view regrid.View
}

func newStmt(lookup func(string) regrid.View, query string) (*stmt, error) {
	queryColumns, table, offset, limit, err := parseQuery(query)
	if err != nil {
		return nil, err
	}
	view := lookup(table)
	if view == nil {
		return nil, fmt.Errorf("view %q not found", table)
	}

	var cols, rows *regrid.Remap
	if !slices.Equal(queryColumns, []string{"*"}) {
		sourceColumns := view.Columns()
		logs := make([]regrid.LogIdx, len(queryColumns))
		for i, queryColumn := range queryColumns {
			col := slices.Index(sourceColumns, queryColumn)
			if col == -1 {
				return nil, fmt.Errorf("column %q not found", queryColumn)
			}
			logs[i] = regrid.LogIdx(col)
		}
		cols, err = regrid.NewSelectedRemap(logs, len(sourceColumns))
		if err != nil {
			return nil, err
		}
	}
	if offset > 0 || limit > 0 {
		numRows := view.NumRows()
		first := min(offset, numRows)
		last := numRows
		if limit > 0 {
			last = min(first+limit, numRows)
		}
		logs := make([]regrid.LogIdx, 0, last-first)
		for row := first; row < last; row++ {
			logs = append(logs, regrid.LogIdx(row))
		}
		rows, err = regrid.NewSelectedRemap(logs, numRows)
		if err != nil {
			return nil, err
		}
	}
	if cols == nil && rows == nil {
		return &stmt{view: view}, nil
	}
	return &stmt{view: regrid.NewRemappedView(view, rows, cols)}, nil
}

func (s *stmt) Close() error {
	return nil
}

func (s *stmt) NumInput() int {
	return 0
}

func (s *stmt) Exec(args []driver.Value) (driver.Result, error) {
	return nil, errors.New("Exec not implemented")
}

func (s *stmt) Query(args []driver.Value) (driver.Rows, error) {
	return &driverRows{view: s.view}, nil
}

var _ driver.Rows = new(driverRows)

type driverRows struct {
	view     regrid.View
	rowIndex int
}

func (r *driverRows) Columns() []string {
	return r.view.Columns()
}

func (r *driverRows) Close() error {
	r.rowIndex = -1
	return nil
}

func (r *driverRows) Next(dest []driver.Value) (err error) {
	if r.rowIndex < 0 || r.rowIndex >= r.view.NumRows() {
		return io.EOF
	}
	for col := range dest {
		dest[col], err = driverValue(r.view.Cell(r.rowIndex, col))
		if err != nil {
			return err
		}
	}
	r.rowIndex++
	return nil
}

func driverValue(val any) (driver.Value, error) {
	v, err := driver.DefaultParameterConverter.ConvertValue(val)
	if err != nil {
		return nil, fmt.Errorf("value %#v is not a driver.Value: %w", val, err)
	}
	return v, nil
}

var queryRegexp = regexp.MustCompile(`^(?i:SELECT)\s+(\*|(?:[a-zA-Z]\w*|"[^"]+")(?:\s*,\s*[a-zA-Z]\w*|\s*,\s*"[^"]+")*)\s+(?i:FROM)\s+([a-zA-Z][\w.]*|"[a-zA-Z][\w.]*")(?:\s+(?i:LIMIT)\s+(\d+)(?:\s+(?i:OFFSET)\s+(\d+))?)?(?:\s*;)*$`)

func parseQuery(query string) (columns []string, table string, offset, limit int, err error) {
	query = strings.TrimSpace(query)
	m := queryRegexp.FindStringSubmatch(query)
	if len(m) != 5 {
		return nil, "", 0, 0, fmt.Errorf("invalid query %q", query)
	}
	columns = splitColumns(m[1])
	table = unquote(m[2])
	if m[3] != "" {
		limit, err = strconv.Atoi(m[3])
		if err != nil {
			return nil, "", 0, 0, fmt.Errorf("invalid LIMIT in query %q: %w", query, err)
		}
	}
	if m[4] != "" {
		offset, err = strconv.Atoi(m[4])
		if err != nil {
			return nil, "", 0, 0, fmt.Errorf("invalid OFFSET in query %q: %w", query, err)
		}
	}
	return columns, table, offset, limit, nil
}

// splitColumns splits a comma separated column list
// where quoted names may contain commas.
func splitColumns(list string) []string {
	var (
		columns []string
		start   int
		quoted  bool
	)
	for i, r := range list {
		switch r {
		case '"':
			quoted = !quoted
		case ',':
			if !quoted {
				columns = append(columns, unquote(strings.TrimSpace(list[start:i])))
				start = i + 1
			}
		}
	}
	return append(columns, unquote(strings.TrimSpace(list[start:])))
}

func unquote(str string) string {
	if len(str) >= 2 && str[0] == '"' && str[len(str)-1] == '"' {
		return str[1 : len(str)-1]
	}
	return str
}
