package regrid

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// ContentWidths returns the display width of every logical column
// of view: the widest terminal cell width of the column title and
// all formatted cells plus pad, limited to maxWidth if maxWidth > 0.
// Multi line cells are measured by their widest line.
func ContentWidths(view View, pad, maxWidth float64) []float64 {
	titles := view.Columns()
	widths := make([]int, len(titles))
	for col, title := range titles {
		widths[col] = displayWidth(title)
	}
	for row := range view.NumRows() {
		for col := range widths {
			widths[col] = max(widths[col], displayWidth(FormatCell(view.Cell(row, col))))
		}
	}
	result := make([]float64, len(widths))
	for col, w := range widths {
		result[col] = float64(w) + pad
		if maxWidth > 0 {
			result[col] = min(result[col], maxWidth)
		}
	}
	return result
}

func displayWidth(s string) int {
	width := 0
	for line := range strings.Lines(s) {
		width = max(width, runewidth.StringWidth(strings.TrimRight(line, "\r\n")))
	}
	return width
}
