// Package exceltable reads sheets of Excel files (.xlsx, .xlsm, .xltm, .xltx)
// as regrid.StringsView data sources using github.com/xuri/excelize/v2.
//
// The first non empty row of a sheet is used as column titles,
// empty rows and columns are removed and the sheet name
// becomes the title of the view.
package exceltable

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/ungerik/go-fs"
	"github.com/xuri/excelize/v2"

	"github.com/domonda/go-regrid"
	"github.com/domonda/go-regrid/internal/log"
)

// ReadSheet reads the sheet with the passed name from the Excel data of reader.
// An empty sheet name reads the first sheet.
//
// If rawCellStrings is true, cell values are returned without applying
// the number format of the cell, else as Excel displays them.
func ReadSheet(reader io.Reader, sheet string, rawCellStrings bool) (view *regrid.StringsView, err error) {
	f, e := excelize.OpenReader(reader)
	if e != nil {
		return nil, e
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()
	if sheet == "" {
		sheet = f.GetSheetName(0)
		if sheet == "" {
			return nil, ErrSheetNotExist{SheetName: "<FirstSheet>"}
		}
	}
	return readSheet(f, sheet, rawCellStrings)
}

// ReadAllSheets reads all non empty sheets from the Excel data of reader.
func ReadAllSheets(reader io.Reader, rawCellStrings bool) (views []*regrid.StringsView, err error) {
	f, e := excelize.OpenReader(reader)
	if e != nil {
		return nil, e
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()
	for _, sheet := range f.GetSheetList() {
		view, err := readSheet(f, sheet, rawCellStrings)
		if err != nil {
			if errors.Is(err, ErrEmptySheet) {
				log.Debug(log.CatData, "skipping empty sheet", "sheet", sheet)
				continue
			}
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

// ReadFile reads a sheet of an Excel file,
// see ReadSheet for the sheet argument.
func ReadFile(file fs.FileReader, sheet string) (*regrid.StringsView, error) {
	data, err := file.ReadAll()
	if err != nil {
		return nil, err
	}
	view, err := ReadSheet(bytes.NewReader(data), sheet, false)
	if err != nil {
		return nil, fmt.Errorf("reading Excel file %s: %w", file.Name(), err)
	}
	log.Info(log.CatData, "read Excel sheet", "file", file.Name(), "sheet", view.Title(), "rows", view.NumRows())
	return view, nil
}

func readSheet(f *excelize.File, sheet string, rawCellStrings bool) (*regrid.StringsView, error) {
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: rawCellStrings})
	if err != nil {
		return nil, err
	}
	rows = regrid.RemoveEmptyStringRows(rows)
	numCols := regrid.RemoveEmptyStringColumns(rows)
	if len(rows) == 0 || numCols == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptySheet, sheet)
	}
	columns := rows[0]
	if len(columns) < numCols {
		columns = append(columns, make([]string, numCols-len(columns))...)
	}
	return regrid.NewStringsView(sheet, rows[1:], columns...), nil
}
