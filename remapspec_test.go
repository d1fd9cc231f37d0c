package regrid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemapSpec_ToggleSort(t *testing.T) {
	var spec RemapSpec
	require.True(t, spec.IsIdentity())

	spec.ToggleSort(2, false)
	assert.Equal(t, []SortSpec{{Column: 2, Direction: Ascending}}, spec.Sort)

	spec.ToggleSort(2, false)
	assert.Equal(t, []SortSpec{{Column: 2, Direction: Descending}}, spec.Sort)

	spec.ToggleSort(0, true)
	assert.Equal(t, []SortSpec{{Column: 2, Direction: Descending}, {Column: 0}}, spec.Sort)

	before := spec.Sort
	spec.ToggleSort(0, true)
	assert.Equal(t, Descending, spec.Sort[1].Direction)
	assert.Equal(t, Ascending, before[1].Direction, "toggling does not mutate shared sort slices")

	spec.ToggleSort(0, false)
	assert.Equal(t, []SortSpec{{Column: 0, Direction: Ascending}}, spec.Sort, "secondary key becomes the only key")

	dir, ok := spec.SortDirectionOf(0)
	assert.True(t, ok)
	assert.Equal(t, Ascending, dir)
	_, ok = spec.SortDirectionOf(2)
	assert.False(t, ok)

	spec.ClearSort()
	assert.True(t, spec.IsIdentity())
}

func TestRemapSpec_CacheKey(t *testing.T) {
	tests := []struct {
		name    string
		spec    RemapSpec
		wantKey string
		wantOK  bool
	}{
		{name: "identity", spec: RemapSpec{}, wantKey: "sort:", wantOK: true},
		{
			name:    "sort",
			spec:    RemapSpec{Sort: []SortSpec{{Column: 1, Direction: Descending}, {Column: 0}}},
			wantKey: "sort:1/desc,0/asc",
			wantOK:  true,
		},
		{name: "retain", spec: RemapSpec{Retain: []LogIdx{2, 0}}, wantKey: "sort:;retain:2,0", wantOK: true},
		{name: "empty retain", spec: RemapSpec{Retain: []LogIdx{}}, wantKey: "sort:;retain:", wantOK: true},
		{name: "predicate", spec: RemapSpec{Predicate: func(LogIdx) bool { return true }}},
		{name: "filter", spec: RemapSpec{Filters: []FilterSpec{{Keep: func(any) bool { return true }}}}},
		{name: "custom compare", spec: RemapSpec{Sort: []SortSpec{{Compare: CompareCells}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, ok := tt.spec.CacheKey()
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantKey, key)
		})
	}
}

func TestRemapSpec_String(t *testing.T) {
	assert.Equal(t, "identity", RemapSpec{}.String())
	spec := RemapSpec{
		Sort:      []SortSpec{{Column: 1, Direction: Descending}},
		Predicate: func(LogIdx) bool { return true },
		Retain:    []LogIdx{0},
	}
	assert.Equal(t, "sort 1 desc, predicate, retain 1", spec.String())
	assert.Equal(t, "asc", Descending.Toggle().String())
}
