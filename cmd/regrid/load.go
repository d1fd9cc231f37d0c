package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	fs "github.com/ungerik/go-fs"

	"github.com/domonda/go-regrid"
	"github.com/domonda/go-regrid/csvtable"
	"github.com/domonda/go-regrid/exceltable"
	"github.com/domonda/go-regrid/internal/log"
	"github.com/domonda/go-regrid/sqltable"
)

// sourceFlags select what is loaded from a file.
type sourceFlags struct {
	sheet string
	query string
}

func (s *sourceFlags) register(flags *pflag.FlagSet) {
	flags.StringVar(&s.sheet, "sheet", "", "Excel sheet to load (default: first sheet)")
	flags.StringVar(&s.query, "query", "", "SQL query for SQLite database files")
}

// remapFlags transform the rows and columns of a loaded table.
type remapFlags struct {
	sort   []string
	filter []string
	hide   []string
}

func (r *remapFlags) register(flags *pflag.FlagSet) {
	flags.StringArrayVar(&r.sort, "sort", nil, "sort by `column[:asc|desc]`, repeat for more keys")
	flags.StringArrayVar(&r.filter, "filter", nil, "keep rows where `column=value` or column!=value")
	flags.StringSliceVar(&r.hide, "hide", nil, "columns to hide")
}

// loadView reads the data of the file at path
// choosing the reader by file extension.
func loadView(ctx context.Context, cfg Config, src sourceFlags, path string) (regrid.View, error) {
	file := fs.File(path)
	if !file.Exists() {
		return nil, fmt.Errorf("file not found: %s", path)
	}
	log.Debug(log.CatData, "Loading data", "path", path)

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".xlsx", ".xlsm":
		return exceltable.ReadFile(file, src.sheet)

	case ".db", ".sqlite", ".sqlite3":
		if src.query == "" {
			return nil, errors.New("--query is required for SQLite files")
		}
		db, err := sqltable.OpenSQLite(ctx, path)
		if err != nil {
			return nil, err
		}
		defer db.Close()
		return sqltable.QueryView(ctx, db, strings.TrimSuffix(file.Name(), filepath.Ext(path)), src.query)

	default:
		view, format, err := csvtable.ReadFile(file, &cfg.CSV)
		if err != nil {
			return nil, err
		}
		log.Debug(log.CatData, "Detected CSV format", "path", path, "format", format)
		return view, nil
	}
}

// openTable loads the file at path into a Table
// and applies the remap flags.
func (a *app) openTable(ctx context.Context, path string) (*regrid.Table, error) {
	view, err := loadView(ctx, a.cfg, a.source, path)
	if err != nil {
		return nil, err
	}
	table, err := regrid.NewTable(view, a.cfg.Table)
	if err != nil {
		return nil, err
	}
	if err := a.remap.apply(table); err != nil {
		return nil, err
	}
	return table, nil
}

func (r *remapFlags) apply(table *regrid.Table) error {
	view := table.Data()
	spec := table.RemapSpec(regrid.Rows)
	for _, f := range r.filter {
		filter, err := parseFilter(view, f)
		if err != nil {
			return err
		}
		spec.Filters = append(spec.Filters, filter)
	}
	for _, s := range r.sort {
		sort, err := parseSort(view, s)
		if err != nil {
			return err
		}
		spec.Sort = append(spec.Sort, sort)
	}
	if err := table.SetRemapSpec(regrid.Rows, spec); err != nil {
		return err
	}

	hidden := make([]regrid.LogIdx, 0, len(r.hide))
	for _, h := range r.hide {
		col, err := columnIndex(view, h)
		if err != nil {
			return err
		}
		hidden = append(hidden, col)
	}
	if len(hidden) == 0 {
		return nil
	}
	return table.HideColumns(hidden...)
}

// columnIndex resolves ref as case insensitive column title
// or as zero based column index.
func columnIndex(view regrid.View, ref string) (regrid.LogIdx, error) {
	cols := view.Columns()
	for i, title := range cols {
		if strings.EqualFold(title, ref) {
			return regrid.LogIdx(i), nil
		}
	}
	if i, err := strconv.Atoi(ref); err == nil && i >= 0 && i < len(cols) {
		return regrid.LogIdx(i), nil
	}
	return 0, fmt.Errorf("unknown column %q", ref)
}

func parseSort(view regrid.View, arg string) (regrid.SortSpec, error) {
	ref, direction := arg, regrid.Ascending
	if i := strings.LastIndexByte(arg, ':'); i >= 0 {
		switch strings.ToLower(arg[i+1:]) {
		case "asc":
			ref = arg[:i]
		case "desc":
			ref, direction = arg[:i], regrid.Descending
		}
	}
	col, err := columnIndex(view, ref)
	if err != nil {
		return regrid.SortSpec{}, fmt.Errorf("--sort %s: %w", arg, err)
	}
	return regrid.SortSpec{Column: int(col), Direction: direction}, nil
}

func parseFilter(view regrid.View, arg string) (regrid.FilterSpec, error) {
	ref, value, negate := "", "", false
	if r, v, ok := strings.Cut(arg, "!="); ok {
		ref, value, negate = r, v, true
	} else if r, v, ok := strings.Cut(arg, "="); ok {
		ref, value = r, v
	} else {
		return regrid.FilterSpec{}, fmt.Errorf("--filter %s: expected column=value or column!=value", arg)
	}
	col, err := columnIndex(view, ref)
	if err != nil {
		return regrid.FilterSpec{}, fmt.Errorf("--filter %s: %w", arg, err)
	}
	return regrid.FilterSpec{
		Column: int(col),
		Keep: func(cell any) bool {
			return (regrid.FormatCell(cell) == value) != negate
		},
	}, nil
}
