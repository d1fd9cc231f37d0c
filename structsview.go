package regrid

import (
	"fmt"
	"go/token"
	"reflect"
	"strings"
	"unicode"
)

// FieldNaming defines how struct fields
// are mapped to column titles by NewStructsView.
//
// nil is a valid value for *FieldNaming
// and uses all exported struct fields
// with their field name as column title.
type FieldNaming struct {
	// Tag is the struct field tag used as column title.
	// If Tag is empty, then every struct field is treated as untagged.
	Tag string
	// Ignore is the tag value that excludes a field.
	Ignore string
	// Untagged is called with the struct field name to
	// return a title for fields without a Tag.
	// If Untagged is nil, then the struct field name is used.
	Untagged func(fieldName string) (column string)
}

// DefaultFieldNaming uses the "col" tag,
// skips fields tagged with "-"
// and spaces the names of untagged fields.
var DefaultFieldNaming = FieldNaming{
	Tag:      "col",
	Ignore:   "-",
	Untagged: SpacePascalCase,
}

func (n *FieldNaming) String() string {
	if n == nil {
		return `FieldNaming{Tag: "", Ignore: ""}`
	}
	return fmt.Sprintf("FieldNaming{Tag: %#v, Ignore: %#v}", n.Tag, n.Ignore)
}

// Column returns the column title for a struct field
// and false if the field is ignored.
func (n *FieldNaming) Column(field reflect.StructField) (string, bool) {
	if n == nil {
		return field.Name, true
	}
	if n.Tag != "" {
		if tag, ok := field.Tag.Lookup(n.Tag); ok {
			if i := strings.IndexByte(tag, ','); i != -1 {
				tag = tag[:i]
			}
			if n.Ignore != "" && tag == n.Ignore {
				return "", false
			}
			if tag != "" {
				return tag, true
			}
		}
	}
	if n.Untagged == nil {
		return field.Name, true
	}
	return n.Untagged(field.Name), true
}

// StructsView is a View of a slice of structs
// or struct pointers with one row per element.
// The exported fields are the columns,
// fields of anonymously embedded structs are inlined.
type StructsView[T any] struct {
	title   string
	columns []string
	fields  [][]int // reflect field index per column
	rows    []T
}

// NewStructsView returns a View of rows.
// It panics if T is not a struct or struct pointer type.
func NewStructsView[T any](title string, naming *FieldNaming, rows []T) *StructsView[T] {
	structType := reflect.TypeFor[T]()
	if structType.Kind() == reflect.Pointer {
		structType = structType.Elem()
	}
	if structType.Kind() != reflect.Struct {
		panic(fmt.Errorf("rows must be structs or struct pointers, got %s", reflect.TypeFor[T]()))
	}
	view := &StructsView[T]{title: title, rows: rows}
	view.addFields(structType, nil, naming)
	return view
}

func (view *StructsView[T]) addFields(structType reflect.Type, parent []int, naming *FieldNaming) {
	for i := range structType.NumField() {
		field := structType.Field(i)
		index := append(parent[:len(parent):len(parent)], i)
		if field.Anonymous {
			embedded := field.Type
			if embedded.Kind() == reflect.Pointer {
				embedded = embedded.Elem()
			}
			if embedded.Kind() == reflect.Struct {
				view.addFields(embedded, index, naming)
				continue
			}
		}
		if !token.IsExported(field.Name) {
			continue
		}
		column, ok := naming.Column(field)
		if !ok {
			continue
		}
		view.columns = append(view.columns, column)
		view.fields = append(view.fields, index)
	}
}

func (view *StructsView[T]) Title() string     { return view.title }
func (view *StructsView[T]) Columns() []string { return view.columns }
func (view *StructsView[T]) NumRows() int      { return len(view.rows) }

// Rows returns the underlying slice.
func (view *StructsView[T]) Rows() []T { return view.rows }

// Cell returns the field value of a row.
// Nil row pointers and nil embedded struct pointers return nil.
func (view *StructsView[T]) Cell(row, col int) any {
	if row < 0 || col < 0 || row >= len(view.rows) || col >= len(view.columns) {
		return nil
	}
	strct := reflect.ValueOf(&view.rows[row]).Elem()
	if strct.Kind() == reflect.Pointer {
		if strct.IsNil() {
			return nil
		}
		strct = strct.Elem()
	}
	field, err := strct.FieldByIndexErr(view.fields[col])
	if err != nil {
		return nil
	}
	return field.Interface()
}

// SpacePascalCase inserts spaces before upper case
// characters within PascalCase like names.
// It also replaces underscore '_' characters with spaces.
func SpacePascalCase(name string) string {
	b := strings.Builder{}
	b.Grow(len(name) + 4)
	lastWasUpper := true
	lastWasSpace := true
	for _, r := range name {
		if r == '_' {
			if !lastWasSpace {
				b.WriteByte(' ')
			}
			lastWasUpper = false
			lastWasSpace = true
			continue
		}
		isUpper := unicode.IsUpper(r)
		if isUpper && !lastWasUpper && !lastWasSpace {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
		lastWasUpper = isUpper
		lastWasSpace = unicode.IsSpace(r)
	}
	return strings.TrimSpace(b.String())
}
