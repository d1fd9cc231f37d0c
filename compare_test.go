package regrid

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCompareCells(t *testing.T) {
	var nilPtr *int
	one := 1
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		a, b any
		want int
	}{
		{name: "nil equal", a: nil, b: nilPtr, want: 0},
		{name: "nil first", a: nil, b: 0, want: -1},
		{name: "nil last", a: "", b: nil, want: 1},
		{name: "ints", a: 2, b: 10, want: -1},
		{name: "int and uint", a: uint8(7), b: int64(7), want: 0},
		{name: "pointer deref", a: &one, b: 0, want: 1},
		{name: "numeric strings", a: "9", b: "10", want: -1},
		{name: "float strings", a: "2.5", b: "2.25", want: 1},
		{name: "int and float", a: 2, b: 2.5, want: -1},
		{name: "strings", a: "b", b: "a", want: 1},
		{name: "mixed string and number", a: "x", b: "10", want: 1},
		{name: "bools", a: false, b: true, want: -1},
		{name: "times", a: t0, b: t0.Add(time.Hour), want: -1},
		{name: "fallback", a: []int{1}, b: []int{2}, want: -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CompareCells(tt.a, tt.b))
		})
	}
}
