// Package htmltable writes views and the visible part
// of a regrid.Table as HTML table elements.
//
// Cell values are HTML escaped unless a CellFormatter
// returns raw HTML. When writing a regrid.Table the
// selection is rendered as CSS classes:
// the selected cell gets the primary class,
// the cells of a selected row or column the selected class.
//
//	writer := htmltable.NewWriter().
//	    WithHeaderRow(true).
//	    WithTableClass("my-table")
//
//	err := writer.WriteTable(ctx, os.Stdout, table)
package htmltable

import (
	"context"
	"errors"
	"html/template"
	"io"
	"maps"

	"github.com/domonda/go-regrid"
)

// Writer writes HTML tables.
// All With methods return a modified copy of the Writer.
type Writer struct {
	tableClass       string
	selectedClass    string
	primaryClass     string
	caption          *string
	columnFormatters map[regrid.LogIdx]CellFormatter
	nilValue         template.HTML
	headerRow        bool
	headerTemplate   *template.Template
	rowTemplate      *template.Template
	footerTemplate   *template.Template
}

// NewWriter returns a Writer without header row
// using the CSS classes "selected" and "primary"
// for selected cells.
func NewWriter() *Writer {
	return &Writer{
		selectedClass:    "selected",
		primaryClass:     "primary",
		columnFormatters: make(map[regrid.LogIdx]CellFormatter),
		headerTemplate:   HeaderTemplate,
		rowTemplate:      RowTemplate,
		footerTemplate:   FooterTemplate,
	}
}

func (w *Writer) clone() *Writer {
	c := new(Writer)
	*c = *w
	return c
}

// WriteView writes all rows and columns of view.
// Column formatters are looked up by the column index of view.
func (w *Writer) WriteView(ctx context.Context, dest io.Writer, view regrid.View) error {
	identity := func(col int) regrid.LogIdx { return regrid.LogIdx(col) }
	return w.writeView(ctx, dest, view, identity, regrid.TableSelection{})
}

// WriteTable writes the visible rows and columns of table
// in visual order with its selection as CSS classes.
// Column formatters are looked up by logical column
// so they follow reordered columns.
func (w *Writer) WriteTable(ctx context.Context, dest io.Writer, table *regrid.Table) error {
	view := table.VisibleView()
	logCol := func(col int) regrid.LogIdx {
		log, _ := view.LogIdx(regrid.Columns, regrid.VisIdx(col))
		return log
	}
	return w.writeView(ctx, dest, view, logCol, table.Selection())
}

func (w *Writer) writeView(ctx context.Context, dest io.Writer, view regrid.View, logCol func(int) regrid.LogIdx, sel regrid.TableSelection) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	var (
		columns   = view.Columns()
		slice, _  = sel.Slice()
		isSlice   = sel.Kind() == regrid.SingleSliceSelection
		templData = &RowTemplateContext{
			TemplateContext: TemplateContext{
				TableClass: w.tableClass,
				Caption:    view.Title(),
			},
			Cells: make([]CellTemplateContext, len(columns)),
		}
	)
	if w.caption != nil {
		templData.Caption = *w.caption
	}
	colClass := func(col int) string {
		if isSlice && slice.Axis == regrid.Columns && slice.Vis == regrid.VisIdx(col) {
			return w.selectedClass
		}
		return ""
	}

	err := w.headerTemplate.Execute(dest, templData.TemplateContext)
	if err != nil {
		return err
	}

	if w.headerRow {
		templData.IsHeaderRow = true
		for col, title := range columns {
			templData.Cells[col] = CellTemplateContext{
				HTML:  template.HTML(template.HTMLEscapeString(title)), //#nosec G203
				Class: colClass(col),
			}
		}
		err = w.rowTemplate.Execute(dest, templData)
		if err != nil {
			return err
		}
		templData.IsHeaderRow = false
		templData.RowIndex++
	}

	for row, numRows := 0, view.NumRows(); row < numRows; row++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		templData.Class = ""
		if isSlice && slice.Axis == regrid.Rows && slice.Vis == regrid.VisIdx(row) {
			templData.Class = w.selectedClass
		}
		for col := range columns {
			html, err := w.cellHTML(ctx, view.Cell(row, col), logCol(col))
			if err != nil {
				return err
			}
			class := colClass(col)
			switch sel.CellStatus(regrid.NewCellAddress(regrid.VisIdx(row), regrid.VisIdx(col))) {
			case regrid.Primary:
				class = w.primaryClass
			case regrid.AlsoSelected:
				class = w.selectedClass
			}
			templData.Cells[col] = CellTemplateContext{HTML: html, Class: class}
		}
		err = w.rowTemplate.Execute(dest, templData)
		if err != nil {
			return err
		}
		templData.RowIndex++
	}

	return w.footerTemplate.Execute(dest, templData.TemplateContext)
}

func (w *Writer) cellHTML(ctx context.Context, cell any, col regrid.LogIdx) (template.HTML, error) {
	if formatter, ok := w.columnFormatters[col]; ok {
		html, err := formatter.FormatCell(ctx, cell)
		if err == nil {
			return html, nil
		}
		if !errors.Is(err, errors.ErrUnsupported) {
			return "", err
		}
	}
	if cell == nil {
		return w.nilValue, nil
	}
	return template.HTML(escapeCell(cell)), nil //#nosec G203
}

// WithColumnFormatter returns a new writer with the passed formatter
// registered for the logical column col.
// If nil is passed as formatter, then a previous registered column formatter is removed.
func (w *Writer) WithColumnFormatter(col regrid.LogIdx, formatter CellFormatter) *Writer {
	mod := w.clone()
	mod.columnFormatters = maps.Clone(w.columnFormatters)
	if formatter != nil {
		mod.columnFormatters[col] = formatter
	} else {
		delete(mod.columnFormatters, col)
	}
	return mod
}

func (w *Writer) WithHeaderRow(headerRow bool) *Writer {
	mod := w.clone()
	mod.headerRow = headerRow
	return mod
}

func (w *Writer) WithTableClass(tableClass string) *Writer {
	mod := w.clone()
	mod.tableClass = tableClass
	return mod
}

// WithSelectionClasses sets the CSS classes for cells of a selected
// row or column and for the single selected cell.
func (w *Writer) WithSelectionClasses(selected, primary string) *Writer {
	mod := w.clone()
	mod.selectedClass = selected
	mod.primaryClass = primary
	return mod
}

// WithCaption overrides the caption that defaults to the view title.
func (w *Writer) WithCaption(caption string) *Writer {
	mod := w.clone()
	mod.caption = &caption
	return mod
}

func (w *Writer) WithNilValue(nilValue template.HTML) *Writer {
	mod := w.clone()
	mod.nilValue = nilValue
	return mod
}

func (w *Writer) WithTemplates(header, row, footer *template.Template) *Writer {
	mod := w.clone()
	mod.headerTemplate = header
	mod.rowTemplate = row
	mod.footerTemplate = footer
	return mod
}
