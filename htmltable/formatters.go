package htmltable

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"strings"

	"github.com/domonda/go-regrid"
)

// CellFormatter formats a cell value as HTML.
// Returning an error wrapping errors.ErrUnsupported
// makes the Writer fall back to its default formatting.
type CellFormatter interface {
	FormatCell(ctx context.Context, cell any) (template.HTML, error)
}

// CellFormatterFunc implements CellFormatter for a function.
type CellFormatterFunc func(ctx context.Context, cell any) (template.HTML, error)

func (f CellFormatterFunc) FormatCell(ctx context.Context, cell any) (template.HTML, error) {
	return f(ctx, cell)
}

var (
	HTMLPreCellFormatter CellFormatterFunc = func(ctx context.Context, cell any) (template.HTML, error) {
		return template.HTML("<pre>" + escapeCell(cell) + "</pre>"), nil //#nosec G203
	}

	HTMLCodeCellFormatter CellFormatterFunc = func(ctx context.Context, cell any) (template.HTML, error) {
		return template.HTML("<code>" + escapeCell(cell) + "</code>"), nil //#nosec G203
	}

	// ValueAsHTMLAnchorCellFormatter returns an HTML anchor element
	// with the escaped cell value as id and inner text.
	ValueAsHTMLAnchorCellFormatter CellFormatterFunc = func(ctx context.Context, cell any) (template.HTML, error) {
		return template.HTML(fmt.Sprintf("<a id='%[1]s'>%[1]s</a>", escapeCell(cell))), nil //#nosec G203
	}

	_ CellFormatter = JSONCellFormatter("")
	_ CellFormatter = HTMLSpanClassCellFormatter("")
	_ CellFormatter = Raw("")
)

func escapeCell(cell any) string {
	return template.HTMLEscapeString(regrid.FormatCell(cell))
}

// JSONCellFormatter formats JSON cell values indented
// with its string value within a pre element.
// An empty JSONCellFormatter formats compact JSON.
// Strings and byte slices are interpreted as JSON text,
// other values are marshalled to JSON.
type JSONCellFormatter string

var jsonTextEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

func (indent JSONCellFormatter) FormatCell(ctx context.Context, cell any) (template.HTML, error) {
	var src []byte
	switch x := cell.(type) {
	case nil:
		return "", errors.ErrUnsupported
	case json.RawMessage:
		src = x
	case []byte:
		src = x
	case string:
		src = []byte(x)
	default:
		var err error
		src, err = json.Marshal(cell)
		if err != nil {
			return "", err
		}
	}
	if len(bytes.TrimSpace(src)) == 0 {
		return "", errors.ErrUnsupported
	}
	var buf bytes.Buffer
	if indent == "" {
		if err := json.Compact(&buf, src); err != nil {
			return "", err
		}
	} else if err := json.Indent(&buf, src, "", string(indent)); err != nil {
		return "", err
	}
	return template.HTML("<pre>" + jsonTextEscaper.Replace(buf.String()) + "</pre>"), nil //#nosec G203
}

// HTMLSpanClassCellFormatter formats the cell value within an HTML span element
// with the class of the underlying string value.
type HTMLSpanClassCellFormatter string

func (class HTMLSpanClassCellFormatter) FormatCell(ctx context.Context, cell any) (template.HTML, error) {
	return template.HTML(fmt.Sprintf("<span class='%s'>%s</span>", template.HTMLEscapeString(string(class)), escapeCell(cell))), nil //#nosec G203
}

// Raw is a CellFormatter that ignores the cell
// and always returns its HTML string.
type Raw string

func (r Raw) FormatCell(ctx context.Context, cell any) (template.HTML, error) {
	return template.HTML(r), nil //#nosec G203
}
