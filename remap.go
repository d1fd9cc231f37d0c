package regrid

import (
	"fmt"
	"iter"
	"slices"
)

// RemapKind is the variant of a Remap.
type RemapKind int

const (
	// RemapIdentity maps every visual index to the
	// numerically equal logical index.
	RemapIdentity RemapKind = iota

	// RemapPermutation reorders all logical indices
	// without hiding any of them.
	RemapPermutation

	// RemapSelected shows an ordered subset of the logical indices.
	RemapSelected
)

func (k RemapKind) String() string {
	switch k {
	case RemapIdentity:
		return "Identity"
	case RemapPermutation:
		return "Permutation"
	case RemapSelected:
		return "Selected"
	}
	return fmt.Sprintf("RemapKind(%d)", int(k))
}

// Remap is the realized mapping between visual and logical
// indices of one table axis.
//
// A Remap is immutable after it has been built
// and can be shared for reading without synchronization.
// Changes of the RemapSpec or the source length
// always build a new Remap.
//
// For every visual index in [0, NumVisible) there is exactly
// one logical index and no two visual indices map to the
// same logical index. The reverse index is built eagerly
// so both directions are O(1).
type Remap struct {
	kind      RemapKind
	sourceLen int
	toLog     []LogIdx // nil for RemapIdentity
	toVis     []VisIdx // nil for RemapIdentity, -1 for hidden indices
}

// IdentityRemap returns the Remap of an untransformed axis of length n.
func IdentityRemap(n int) *Remap {
	return &Remap{kind: RemapIdentity, sourceLen: max(n, 0)}
}

// BuildRemap builds the Remap described by spec for source.
//
// The base order is spec.Retain or all logical indices
// in source order. Indices failing any of spec.Filters
// or spec.Predicate are removed before the remaining
// indices are stably sorted by spec.Sort.
//
// The kind of the returned Remap follows from spec:
// an identity spec returns an Identity Remap,
// a result keeping all indices is a Permutation
// and a result dropping indices is a Selected Remap.
// The reverse index from logical to visual index
// is built eagerly, so Remap.VisIdx is O(1).
//
// Parameters:
//   - spec: Sort keys, filters, predicate and retained indices of the axis
//   - source: Provides the axis length and the keys of the logical indices
//
// Returns:
//   - The Remap of the axis, never nil without error
//   - ErrInvalidSpec if a sort or filter key is not a key of source,
//     or if spec.Retain contains an index outside of
//     [0, source.SourceLen()) or the same index more than once
//
// Example:
//
//	rows, err := regrid.BuildRemap(
//		regrid.RemapSpec{Sort: []regrid.SortSpec{{Column: 1, Direction: regrid.Descending}}},
//		regrid.RowsRemapper(view),
//	)
//	if err != nil {
//		return err
//	}
//	firstRow, _ := rows.LogIdx(0)
func BuildRemap(spec RemapSpec, source Remapper) (*Remap, error) {
	n := source.SourceLen()
	numKeys := source.NumKeys()
	for _, sort := range spec.Sort {
		if sort.Column < 0 || sort.Column >= numKeys {
			return nil, fmt.Errorf("%w: sort column %d not in [0..%d)", ErrInvalidSpec, sort.Column, numKeys)
		}
	}
	for _, filter := range spec.Filters {
		if filter.Column < 0 || filter.Column >= numKeys {
			return nil, fmt.Errorf("%w: filter column %d not in [0..%d)", ErrInvalidSpec, filter.Column, numKeys)
		}
		if filter.Keep == nil {
			return nil, fmt.Errorf("%w: filter for column %d has no Keep function", ErrInvalidSpec, filter.Column)
		}
	}

	if spec.IsIdentity() {
		return IdentityRemap(n), nil
	}

	var order []LogIdx
	if spec.Retain != nil {
		seen := make([]bool, n)
		order = make([]LogIdx, 0, len(spec.Retain))
		for _, log := range spec.Retain {
			if log < 0 || int(log) >= n {
				return nil, fmt.Errorf("%w: retained index %d not in [0..%d)", ErrInvalidSpec, log, n)
			}
			if seen[log] {
				return nil, fmt.Errorf("%w: retained index %d listed more than once", ErrInvalidSpec, log)
			}
			seen[log] = true
			order = append(order, log)
		}
	} else {
		order = make([]LogIdx, n)
		for i := range order {
			order[i] = LogIdx(i)
		}
	}

	if len(spec.Filters) > 0 || spec.Predicate != nil {
		order = slices.DeleteFunc(order, func(log LogIdx) bool {
			if spec.Predicate != nil && !spec.Predicate(log) {
				return true
			}
			for _, filter := range spec.Filters {
				if !filter.Keep(source.Key(log, filter.Column)) {
					return true
				}
			}
			return false
		})
	}

	if len(spec.Sort) > 0 {
		slices.SortStableFunc(order, func(a, b LogIdx) int {
			for _, sort := range spec.Sort {
				compare := sort.Compare
				if compare == nil {
					compare = CompareCells
				}
				c := compare(source.Key(a, sort.Column), source.Key(b, sort.Column))
				if c == 0 {
					continue
				}
				if sort.Direction == Descending {
					return -c
				}
				return c
			}
			return 0
		})
	}

	return newRemap(order, n), nil
}

// MustBuildRemap calls BuildRemap and panics on an error.
func MustBuildRemap(spec RemapSpec, source Remapper) *Remap {
	remap, err := BuildRemap(spec, source)
	if err != nil {
		panic(err)
	}
	return remap
}

// NewSelectedRemap returns a Remap showing the logical
// indices in order out of sourceLen indices.
// The same preconditions as for RemapSpec.Retain apply.
func NewSelectedRemap(order []LogIdx, sourceLen int) (*Remap, error) {
	return BuildRemap(RemapSpec{Retain: slices.Clone(order)}, LenRemapper(sourceLen))
}

func newRemap(order []LogIdx, sourceLen int) *Remap {
	toVis := make([]VisIdx, sourceLen)
	for i := range toVis {
		toVis[i] = -1
	}
	for vis, log := range order {
		toVis[log] = VisIdx(vis)
	}
	kind := RemapSelected
	if len(order) == sourceLen {
		kind = RemapPermutation
	}
	return &Remap{
		kind:      kind,
		sourceLen: sourceLen,
		toLog:     order,
		toVis:     toVis,
	}
}

// Kind returns the variant of the Remap.
func (r *Remap) Kind() RemapKind {
	return r.kind
}

// IsIdentity reports if the Remap is the identity variant.
func (r *Remap) IsIdentity() bool {
	return r.kind == RemapIdentity
}

// SourceLen returns the number of logical indices of the axis.
func (r *Remap) SourceLen() int {
	return r.sourceLen
}

// NumVisible returns the number of visual indices.
func (r *Remap) NumVisible() int {
	switch r.kind {
	case RemapIdentity:
		return r.sourceLen
	case RemapPermutation, RemapSelected:
		return len(r.toLog)
	}
	panic(fmt.Sprintf("invalid %s", r.kind))
}

// LogIdx returns the logical index shown at vis
// or false if vis is not in [0, NumVisible).
func (r *Remap) LogIdx(vis VisIdx) (LogIdx, bool) {
	switch r.kind {
	case RemapIdentity:
		if vis < 0 || int(vis) >= r.sourceLen {
			return 0, false
		}
		return LogIdx(vis), true
	case RemapPermutation, RemapSelected:
		if vis < 0 || int(vis) >= len(r.toLog) {
			return 0, false
		}
		return r.toLog[vis], true
	}
	panic(fmt.Sprintf("invalid %s", r.kind))
}

// VisIdx returns the visual index of log
// or false if log is hidden or not a valid logical index.
func (r *Remap) VisIdx(log LogIdx) (VisIdx, bool) {
	if log < 0 || int(log) >= r.sourceLen {
		return 0, false
	}
	switch r.kind {
	case RemapIdentity:
		return VisIdx(log), true
	case RemapPermutation, RemapSelected:
		vis := r.toVis[log]
		return vis, vis >= 0
	}
	panic(fmt.Sprintf("invalid %s", r.kind))
}

// All iterates the visual indices in order
// together with their logical indices.
func (r *Remap) All() iter.Seq2[VisIdx, LogIdx] {
	return func(yield func(VisIdx, LogIdx) bool) {
		for vis := range VisIdx(r.NumVisible()) {
			log, _ := r.LogIdx(vis)
			if !yield(vis, log) {
				return
			}
		}
	}
}

// LogIndices returns the logical indices in visual order.
func (r *Remap) LogIndices() []LogIdx {
	indices := make([]LogIdx, 0, r.NumVisible())
	for _, log := range r.All() {
		indices = append(indices, log)
	}
	return indices
}

func (r *Remap) String() string {
	return fmt.Sprintf("Remap{%s %d/%d}", r.kind, r.NumVisible(), r.sourceLen)
}
