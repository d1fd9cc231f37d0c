package csvtable

import (
	"bytes"
	"context"
	"io"
	"strings"

	"github.com/domonda/go-types/charset"
	"github.com/mattn/go-runewidth"

	"github.com/domonda/go-regrid"
)

// Encoder is an interface to encode byte strings.
type Encoder interface {
	Bytes([]byte) ([]byte, error)
}

// EncoderFunc implements the Encoder interface for a function.
type EncoderFunc func([]byte) ([]byte, error)

func (f EncoderFunc) Bytes(data []byte) ([]byte, error) {
	return f(data)
}

// CharsetEncoder returns an Encoder from UTF-8
// to the charset encoding with the passed name.
func CharsetEncoder(encoding string) (Encoder, error) {
	enc, err := charset.GetEncoding(encoding)
	if err != nil {
		return nil, err
	}
	return EncoderFunc(enc.Encode), nil
}

type Padding int

const (
	NoPadding Padding = iota
	AlignLeft
	AlignRight
	AlignCenter
)

// Writer writes views and tables as CSV.
// The With methods return a modified copy of the Writer.
type Writer struct {
	formatCell       func(any) string
	padding          Padding
	headerRow        bool
	quoteAllFields   bool
	quoteEmptyFields bool
	escapeQuotes     string
	nilValue         string
	delimiter        rune
	newLine          string
	encoder          Encoder
}

// NewWriter returns a Writer using ';' as delimiter
// and "\r\n" as line endings without header row.
func NewWriter() *Writer {
	return &Writer{
		formatCell:   regrid.FormatCell,
		padding:      NoPadding,
		escapeQuotes: `""`,
		delimiter:    ';',
		newLine:      "\r\n",
	}
}

// NewWriterForFormat returns a Writer for format
// with an Encoder for non UTF-8 encodings.
func NewWriterForFormat(format *Format) (*Writer, error) {
	if err := format.Validate(); err != nil {
		return nil, err
	}
	w := NewWriter().
		WithDelimiter(rune(format.Separator[0])).
		WithNewLine(format.Newline)
	if format.Encoding != "UTF-8" {
		enc, err := CharsetEncoder(format.Encoding)
		if err != nil {
			return nil, err
		}
		w = w.WithEncoder(enc)
	}
	return w, nil
}

func (w *Writer) clone() *Writer {
	c := new(Writer)
	*c = *w
	return c
}

// WriteTable writes the visible rows and columns
// of table in visual order.
func (w *Writer) WriteTable(ctx context.Context, dest io.Writer, table *regrid.Table) error {
	return w.WriteView(ctx, dest, table.VisibleView())
}

// WriteView writes view to dest formatted as CSV.
func (w *Writer) WriteView(ctx context.Context, dest io.Writer, view regrid.View) error {
	rows, err := w.ViewStrings(ctx, view)
	if err != nil {
		return err
	}
	var widths []int
	if w.padding != NoPadding {
		widths = columnWidths(rows, len(view.Columns()))
	}

	rowBuf := bytes.NewBuffer(make([]byte, 0, 1024))
	for _, row := range rows {
		for col, str := range row {
			if col > 0 {
				rowBuf.WriteRune(w.delimiter)
			}
			if widths != nil {
				str = pad(str, widths[col], w.padding)
			}
			rowBuf.WriteString(str)
		}
		rowBuf.WriteString(w.newLine)

		line := rowBuf.Bytes()
		if w.encoder != nil {
			line, err = w.encoder.Bytes(line)
			if err != nil {
				return err
			}
		}
		if _, err = dest.Write(line); err != nil {
			return err
		}
		rowBuf.Reset()
	}
	return nil
}

// ViewStrings returns the escaped CSV fields of view
// including the header row if enabled.
func (w *Writer) ViewStrings(ctx context.Context, view regrid.View) ([][]string, error) {
	var (
		columns = view.Columns()
		numRows = view.NumRows()
		rows    = make([][]string, 0, numRows+1)
	)
	if w.headerRow {
		header := make([]string, len(columns))
		for col, title := range columns {
			header[col] = w.escapeString(title)
		}
		rows = append(rows, header)
	}
	for row := range numRows {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		rowStrs := make([]string, len(columns))
		for col := range columns {
			rowStrs[col] = w.cellString(view.Cell(row, col))
		}
		rows = append(rows, rowStrs)
	}
	return rows, nil
}

func (w *Writer) cellString(cell any) string {
	if cell == nil {
		return w.escapeString(w.nilValue)
	}
	return w.escapeString(w.formatCell(cell))
}

func (w *Writer) escapeString(str string) string {
	// \n alone is valid within quotes
	str = strings.ReplaceAll(str, "\r", "")
	switch {
	case w.quoteAllFields || strings.ContainsRune(str, w.delimiter) || strings.ContainsAny(str, "\n\""):
		return `"` + strings.ReplaceAll(str, `"`, w.escapeQuotes) + `"`
	case w.quoteEmptyFields && str == "":
		return `""`
	}
	return str
}

func columnWidths(rows [][]string, numCols int) []int {
	widths := make([]int, numCols)
	for _, row := range rows {
		for col, str := range row {
			widths[col] = max(widths[col], runewidth.StringWidth(str))
		}
	}
	return widths
}

func pad(str string, width int, padding Padding) string {
	switch padding {
	case AlignLeft:
		return runewidth.FillRight(str, width)
	case AlignRight:
		return runewidth.FillLeft(str, width)
	case AlignCenter:
		total := width - runewidth.StringWidth(str)
		if total <= 0 {
			return str
		}
		return strings.Repeat(" ", total/2) + str + strings.Repeat(" ", (total+1)/2)
	}
	return str
}

func (w *Writer) WithHeaderRow(headerRow bool) *Writer {
	mod := w.clone()
	mod.headerRow = headerRow
	return mod
}

// WithCellFormatter returns a Writer that formats non nil cells with format.
// A nil format resets to regrid.FormatCell.
func (w *Writer) WithCellFormatter(format func(any) string) *Writer {
	mod := w.clone()
	mod.formatCell = format
	if format == nil {
		mod.formatCell = regrid.FormatCell
	}
	return mod
}

func (w *Writer) WithPadding(padding Padding) *Writer {
	mod := w.clone()
	mod.padding = padding
	return mod
}

func (w *Writer) WithQuoteAllFields(quoteAllFields bool) *Writer {
	mod := w.clone()
	mod.quoteAllFields = quoteAllFields
	return mod
}

func (w *Writer) WithQuoteEmptyFields(quoteEmptyFields bool) *Writer {
	mod := w.clone()
	mod.quoteEmptyFields = quoteEmptyFields
	return mod
}

func (w *Writer) WithNilValue(nilValue string) *Writer {
	mod := w.clone()
	mod.nilValue = nilValue
	return mod
}

func (w *Writer) WithEscapeQuotes(escapeQuotes string) *Writer {
	mod := w.clone()
	mod.escapeQuotes = escapeQuotes
	return mod
}

func (w *Writer) WithDelimiter(delimiter rune) *Writer {
	mod := w.clone()
	mod.delimiter = delimiter
	return mod
}

func (w *Writer) WithNewLine(newLine string) *Writer {
	mod := w.clone()
	mod.newLine = newLine
	return mod
}

func (w *Writer) WithEncoder(encoder Encoder) *Writer {
	mod := w.clone()
	mod.encoder = encoder
	return mod
}

func (w *Writer) Delimiter() rune { return w.delimiter }
func (w *Writer) NewLine() string { return w.newLine }
