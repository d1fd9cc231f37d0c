package regrid

import (
	"fmt"
	"math"
)

// AxisMeasure is the pixel geometry of one table axis.
// It assigns every visual index a size and an offset,
// the sum of the sizes of all visual indices before it.
//
// Offsets never decrease with growing visual index
// and the offset of visual index 0 is always 0.
//
// An AxisMeasure is only mutated by explicit resize operations
// and by changes of the axis length or remap, never by selection.
//
// Two implementations exist:
//   - FixedAxisMeasure: uniform size, all queries in O(1),
//     resizing returns ErrUnsupported
//   - StoredAxisMeasure: individual size per logical index,
//     offsets are cumulative sums and pixel lookups
//     use binary search in O(log n)
//
// For every visual index v with a non zero size
// VisAtPixel(PixelOffset(v)) returns v, also for fractional sizes.
//
// Example:
//
//	m := regrid.NewStoredAxisMeasure(20, 4)
//	m.SetAxisLength(100)
//	_ = m.SetSize(3, 35.5)
//	first, last, ok := m.VisRange(scrollY, scrollY+viewportHeight)
type AxisMeasure interface {
	// Len returns the number of visual indices.
	Len() int

	// SetAxisLength resizes the axis to n visual indices
	// mapped one to one to logical indices,
	// appending indices with the default size or truncating.
	SetAxisLength(n int)

	// ApplyRemap resizes the axis to the visible indices of remap.
	// Measures storing individual sizes keep them attached
	// to the logical indices, so a resized column keeps its
	// size when it moves to a different visual position.
	ApplyRemap(remap *Remap)

	// PixelOffset returns the sum of the sizes of all
	// visual indices before vis. It returns 0 for vis <= 0
	// and TotalPixelLength for vis >= Len.
	PixelOffset(vis VisIdx) float64

	// PixelLength returns the size of vis
	// or 0 if vis is out of range.
	PixelLength(vis VisIdx) float64

	// FarPixel returns the pixel offset of the far edge of vis.
	FarPixel(vis VisIdx) float64

	// TotalPixelLength returns the sum of all sizes.
	TotalPixelLength() float64

	// VisAtPixel returns the visual index covering the pixel px
	// or false if px is not in [0, TotalPixelLength).
	VisAtPixel(px float64) (VisIdx, bool)

	// VisRange returns the first and last visual index
	// overlapping the pixel range [p0, p1)
	// or false if no index overlaps.
	VisRange(p0, p1 float64) (first, last VisIdx, ok bool)

	// CanResize reports if SetSize is possible for vis.
	CanResize(vis VisIdx) bool

	// SetSize sets the size of vis.
	SetSize(vis VisIdx, size float64) error

	// SetFarPixel resizes vis so that its far edge is at px,
	// limited by the minimum size of the measure.
	// It returns the resulting size.
	SetFarPixel(vis VisIdx, px float64) (float64, error)
}

func checkSize(size float64) error {
	if size < 0 || math.IsNaN(size) || math.IsInf(size, 0) {
		return fmt.Errorf("%w: %g", ErrInvalidSize, size)
	}
	return nil
}

func checkVisRange(vis VisIdx, length int) error {
	if vis < 0 || int(vis) >= length {
		return fmt.Errorf("%w: visual index %d not in [0..%d)", ErrIndexOutOfRange, vis, length)
	}
	return nil
}
