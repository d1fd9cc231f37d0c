package regrid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContentWidths(t *testing.T) {
	view := NewStringsView("", [][]string{
		{"Name", "City", "Note"},
		{"Zoë", "東京", "first line\nsecond"},
		{"Al", "", "x"},
	})
	assert.Equal(t, []float64{4, 4, 10}, ContentWidths(view, 0, 0))
	assert.Equal(t, []float64{6, 6, 8}, ContentWidths(view, 2, 8))
	assert.Empty(t, ContentWidths(NewStringsView("", nil), 1, 0))
}
