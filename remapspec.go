package regrid

import (
	"fmt"
	"slices"
	"strings"
)

// SortDirection is the direction of a sort key.
type SortDirection int

const (
	Ascending SortDirection = iota
	Descending
)

// Toggle returns the opposite direction.
func (d SortDirection) Toggle() SortDirection {
	if d == Ascending {
		return Descending
	}
	return Ascending
}

func (d SortDirection) String() string {
	switch d {
	case Ascending:
		return "asc"
	case Descending:
		return "desc"
	}
	return fmt.Sprintf("SortDirection(%d)", int(d))
}

// SortSpec sorts by one key of a Remapper.
type SortSpec struct {
	// Column is the key index of the Remapper,
	// the logical column for a row remap.
	Column int

	Direction SortDirection

	// Compare optionally overrides CompareCells
	// for the values of this key.
	Compare func(a, b any) int
}

// FilterSpec keeps only the logical indices
// whose key value passes Keep.
type FilterSpec struct {
	Column int
	Keep   func(cell any) bool
}

// RemapSpec declares the transform of one table axis.
// It is pure data without mapping state, BuildRemap
// turns it into a Remap for a concrete source.
//
// The zero RemapSpec is the identity transform.
//
// Filtering is applied before sorting so that the sort
// only has to order the retained indices.
type RemapSpec struct {
	// Sort keys in order of precedence.
	// Ties of all keys keep the base order.
	Sort []SortSpec

	// Filters all have to pass for an index to stay visible.
	Filters []FilterSpec

	// Predicate is an optional filter over logical indices.
	Predicate func(LogIdx) bool

	// Retain is an optional explicit set of visible logical indices.
	// Its order is the base order before sorting,
	// which makes it usable for hiding and reordering columns.
	// A nil Retain keeps all indices in source order.
	Retain []LogIdx
}

// IsIdentity reports if the spec does not transform the axis.
func (s RemapSpec) IsIdentity() bool {
	return len(s.Sort) == 0 && len(s.Filters) == 0 && s.Predicate == nil && s.Retain == nil
}

// SortBy replaces all sort keys with a single one.
func (s *RemapSpec) SortBy(column int, direction SortDirection) {
	s.Sort = []SortSpec{{Column: column, Direction: direction}}
}

// ClearSort removes all sort keys.
func (s *RemapSpec) ClearSort() {
	s.Sort = nil
}

// SortDirectionOf returns the direction column is sorted by
// and false if column is not a sort key.
func (s RemapSpec) SortDirectionOf(column int) (SortDirection, bool) {
	for _, sort := range s.Sort {
		if sort.Column == column {
			return sort.Direction, true
		}
	}
	return Ascending, false
}

// ToggleSort implements the usual header click behaviour.
//
// Without extend the column becomes the only sort key,
// toggling its direction if it already was the primary key.
// With extend the column is appended as lowest precedence
// key, or its direction is toggled if it is a key already.
func (s *RemapSpec) ToggleSort(column int, extend bool) {
	i := slices.IndexFunc(s.Sort, func(sort SortSpec) bool { return sort.Column == column })
	switch {
	case extend && i >= 0:
		s.Sort = slices.Clone(s.Sort)
		s.Sort[i].Direction = s.Sort[i].Direction.Toggle()
	case extend:
		s.Sort = append(slices.Clone(s.Sort), SortSpec{Column: column})
	case i == 0:
		s.Sort = []SortSpec{{Column: column, Direction: s.Sort[0].Direction.Toggle(), Compare: s.Sort[0].Compare}}
	default:
		s.SortBy(column, Ascending)
	}
}

// CacheKey returns a string that identifies the spec
// and true if the spec consists only of comparable data.
// Specs with filter functions or custom compare functions
// can't be identified and return false.
func (s RemapSpec) CacheKey() (string, bool) {
	if len(s.Filters) > 0 || s.Predicate != nil {
		return "", false
	}
	var b strings.Builder
	b.WriteString("sort:")
	for i, sort := range s.Sort {
		if sort.Compare != nil {
			return "", false
		}
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "%d/%s", sort.Column, sort.Direction)
	}
	if s.Retain != nil {
		b.WriteString(";retain:")
		for i, log := range s.Retain {
			if i > 0 {
				b.WriteByte(',')
			}
			fmt.Fprintf(&b, "%d", log)
		}
	}
	return b.String(), true
}

func (s RemapSpec) String() string {
	if s.IsIdentity() {
		return "identity"
	}
	var parts []string
	for _, sort := range s.Sort {
		parts = append(parts, fmt.Sprintf("sort %d %s", sort.Column, sort.Direction))
	}
	if len(s.Filters) > 0 {
		parts = append(parts, fmt.Sprintf("%d filters", len(s.Filters)))
	}
	if s.Predicate != nil {
		parts = append(parts, "predicate")
	}
	if s.Retain != nil {
		parts = append(parts, fmt.Sprintf("retain %d", len(s.Retain)))
	}
	return strings.Join(parts, ", ")
}
