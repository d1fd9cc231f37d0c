package sqltable

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQuery_Keywords(t *testing.T) {
	// keyword case and table quoting combine freely
	tables := map[string]string{
		`people`:      "people",
		`hr.people`:   "hr.people",
		`"people"`:    "people",
		`"hr.people"`: "hr.people",
	}
	for _, kw := range [][2]string{{"select", "from"}, {"SELECT", "FROM"}, {"Select", "From"}} {
		for from, wantTable := range tables {
			for cols, wantCols := range map[string][]string{
				`*`:                       {"*"},
				`id,Name , "Zip Code",x1`: {"id", "Name", "Zip Code", "x1"},
			} {
				query := fmt.Sprintf("%s %s %s %s", kw[0], cols, kw[1], from)
				gotCols, gotTable, offset, limit, err := parseQuery(query)
				require.NoError(t, err, query)
				assert.Equal(t, wantCols, gotCols, query)
				assert.Equal(t, wantTable, gotTable, query)
				assert.Zero(t, offset, query)
				assert.Zero(t, limit, query)
			}
		}
	}
}

func TestParseQuery(t *testing.T) {
	tests := []struct {
		query      string
		wantCols   []string
		wantTable  string
		wantOffset int
		wantLimit  int
	}{
		{
			query:      `select "First Name", age from people limit 10 offset 5;`,
			wantCols:   []string{"First Name", "age"},
			wantTable:  "people",
			wantOffset: 5,
			wantLimit:  10,
		},
		{
			query:     `SELECT "a,b" FROM t LIMIT 3`,
			wantCols:  []string{"a,b"},
			wantTable: "t",
			wantLimit: 3,
		},
		{
			query:     "  SELECT * FROM t ;; ",
			wantCols:  []string{"*"},
			wantTable: "t",
		},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			cols, table, offset, limit, err := parseQuery(tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.wantCols, cols)
			assert.Equal(t, tt.wantTable, table)
			assert.Equal(t, tt.wantOffset, offset)
			assert.Equal(t, tt.wantLimit, limit)
		})
	}
}

func TestParseQuery_Invalid(t *testing.T) {
	for _, query := range []string{
		"",
		`SELECT *,b FROM "my.table"`,
		`SELECT a,* FROM "my.table"`,
		`SELECT a FROM t OFFSET 3`,
		`SELECT a FROM t WHERE a = 1`,
		`DELETE FROM t`,
	} {
		_, _, _, _, err := parseQuery(query)
		assert.Error(t, err, query)
	}
}
