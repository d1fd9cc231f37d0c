package regrid

import (
	"fmt"
	"reflect"
	"strings"
	"time"
)

// FormatCell formats a cell value as string for display and export.
// Nil values and nil pointers are formatted as empty string,
// pointers are dereferenced, time.Time uses RFC 3339
// and fmt.Stringer values their String method.
func FormatCell(cell any) string {
	v := derefCell(cell)
	if !v.IsValid() {
		return ""
	}
	if t, ok := v.Interface().(time.Time); ok {
		return t.Format(time.RFC3339)
	}
	switch x := cell.(type) {
	case string:
		return x
	case []byte:
		return string(x)
	case fmt.Stringer:
		return x.String()
	case error:
		return x.Error()
	}
	if v.Kind() == reflect.Struct && v.NumField() == 0 {
		return ""
	}
	return fmt.Sprint(v.Interface())
}

// ViewStrings returns all cells of view formatted with FormatCell.
// If headerRow is true the column titles are returned as first row.
func ViewStrings(view View, headerRow bool) [][]string {
	numCols := NumCols(view)
	rows := make([][]string, 0, view.NumRows()+1)
	if headerRow {
		rows = append(rows, view.Columns())
	}
	for row := range view.NumRows() {
		rowStrs := make([]string, numCols)
		for col := range rowStrs {
			rowStrs[col] = FormatCell(view.Cell(row, col))
		}
		rows = append(rows, rowStrs)
	}
	return rows
}

// RemoveEmptyStringRows removes all rows
// where every cell is empty or whitespace only.
func RemoveEmptyStringRows(rows [][]string) [][]string {
	result := rows[:0]
	for _, row := range rows {
		if !isEmptyStrings(row) {
			result = append(result, row)
		}
	}
	return result
}

// RemoveEmptyStringColumns removes all columns
// where every cell of every row is empty or whitespace only.
// Rows may have different lengths, the rows are modified in place.
// It returns the number of columns of the longest remaining row.
func RemoveEmptyStringColumns(rows [][]string) (numCols int) {
	for _, row := range rows {
		numCols = max(numCols, len(row))
	}
	keep := make([]bool, numCols)
	for _, row := range rows {
		for col, cell := range row {
			if strings.TrimSpace(cell) != "" {
				keep[col] = true
			}
		}
	}
	numCols = 0
	for i, row := range rows {
		result := row[:0]
		for col, cell := range row {
			if keep[col] {
				result = append(result, cell)
			}
		}
		rows[i] = result
		numCols = max(numCols, len(result))
	}
	return numCols
}

func isEmptyStrings(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
