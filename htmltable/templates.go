package htmltable

import "html/template"

// templates is the default template set,
// the "class" template renders an optional class attribute.
var templates = template.Must(template.New("htmltable").Parse(`
{{- define "class"}}{{if .}} class='{{.}}'{{end}}{{end -}}

{{- define "header"}}<table{{template "class" .TableClass}}>
{{if .Caption}}  <caption>{{.Caption}}</caption>
{{end}}{{end -}}

{{- define "row"}}
{{- if .IsHeaderRow}}  <tr>{{range .Cells}}<th{{template "class" .Class}}>{{.HTML}}</th>{{end}}</tr>
{{else}}  <tr{{template "class" .Class}}>{{range .Cells}}<td{{template "class" .Class}}>{{.HTML}}</td>{{end}}</tr>
{{end}}{{end -}}

{{- define "footer"}}</table>{{end -}}
`))

// Default templates of a Writer, replaceable with Writer.WithTemplates.
// HeaderTemplate and FooterTemplate are executed with a TemplateContext,
// RowTemplate with a RowTemplateContext.
var (
	HeaderTemplate = templates.Lookup("header")
	RowTemplate    = templates.Lookup("row")
	FooterTemplate = templates.Lookup("footer")
)

type TemplateContext struct {
	TableClass string
	Caption    string
}

type RowTemplateContext struct {
	TemplateContext

	IsHeaderRow bool
	RowIndex    int

	// Class of the row, set for a selected row
	Class string
	Cells []CellTemplateContext
}

type CellTemplateContext struct {
	HTML template.HTML

	// Class of the cell, set for selected cells
	Class string
}
