package regrid

import (
	"cmp"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// CompareCells is the default comparison of cell values
// used for sorting. It returns a negative number if a < b,
// a positive number if a > b and zero if they are equal.
//
// Ordering rules:
//   - nil (and nil pointers) sort before everything else
//   - numbers compare numerically, including strings that parse as numbers
//   - time.Time values compare chronologically
//   - bools sort false before true
//   - strings compare lexically
//   - everything else compares by its fmt.Sprint representation
func CompareCells(a, b any) int {
	va, vb := derefCell(a), derefCell(b)
	switch {
	case !va.IsValid() && !vb.IsValid():
		return 0
	case !va.IsValid():
		return -1
	case !vb.IsValid():
		return 1
	}

	if ta, ok := va.Interface().(time.Time); ok {
		if tb, ok := vb.Interface().(time.Time); ok {
			return ta.Compare(tb)
		}
	}

	if ia, ok := intValue(va); ok {
		if ib, ok := intValue(vb); ok {
			return cmp.Compare(ia, ib)
		}
	}
	if fa, ok := floatValue(va); ok {
		if fb, ok := floatValue(vb); ok {
			return cmp.Compare(fa, fb)
		}
	}

	if va.Kind() == reflect.Bool && vb.Kind() == reflect.Bool {
		switch {
		case va.Bool() == vb.Bool():
			return 0
		case !va.Bool():
			return -1
		default:
			return 1
		}
	}

	if va.Kind() == reflect.String && vb.Kind() == reflect.String {
		return strings.Compare(va.String(), vb.String())
	}
	return strings.Compare(fmt.Sprint(va.Interface()), fmt.Sprint(vb.Interface()))
}

func derefCell(cell any) reflect.Value {
	v := reflect.ValueOf(cell)
	for v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}

func intValue(v reflect.Value) (int64, bool) {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int(), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := v.Uint()
		if u > 1<<63-1 {
			return 0, false
		}
		return int64(u), true
	case reflect.String:
		i, err := strconv.ParseInt(strings.TrimSpace(v.String()), 10, 64)
		return i, err == nil
	}
	return 0, false
}

func floatValue(v reflect.Value) (float64, bool) {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(v.Uint()), true
	case reflect.Float32, reflect.Float64:
		return v.Float(), true
	case reflect.String:
		f, err := strconv.ParseFloat(strings.TrimSpace(v.String()), 64)
		return f, err == nil
	}
	return 0, false
}
