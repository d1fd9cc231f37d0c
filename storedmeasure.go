package regrid

import (
	"fmt"
	"sort"
)

var _ AxisMeasure = new(StoredAxisMeasure)

// StoredAxisMeasure is an AxisMeasure storing an individual size
// for every index.
//
// Sizes are stored per logical index and projected through the
// current Remap, so reordering or filtering an axis keeps every
// row or column at the size it was given.
//
// Cumulative offsets are cached and recomputed lazily:
// SetSize only marks the offsets from the resized index on as stale,
// the next offset query or pixel lookup recomputes the stale part.
// A chain of resizes thus costs O(1) per resize.
type StoredAxisMeasure struct {
	defaultSize float64
	minSize     float64

	remap    *Remap
	logSizes []float64 // indexed by LogIdx
	visSizes []float64 // indexed by VisIdx

	// offsets[i] is the sum of visSizes[:i],
	// only offsets[:validOffsets] are up to date.
	offsets      []float64
	validOffsets int
}

// NewStoredAxisMeasure returns an empty StoredAxisMeasure.
// New indices get defaultSize, resizing by pixel position
// never shrinks an index below minSize.
// It panics for negative or NaN sizes.
func NewStoredAxisMeasure(defaultSize, minSize float64) *StoredAxisMeasure {
	if err := checkSize(defaultSize); err != nil {
		panic(err)
	}
	if err := checkSize(minSize); err != nil {
		panic(err)
	}
	return &StoredAxisMeasure{
		defaultSize:  defaultSize,
		minSize:      minSize,
		remap:        IdentityRemap(0),
		offsets:      []float64{0},
		validOffsets: 1,
	}
}

// DefaultSize returns the size of newly added indices.
func (m *StoredAxisMeasure) DefaultSize() float64 { return m.defaultSize }

// MinSize returns the minimum size SetFarPixel resizes to.
func (m *StoredAxisMeasure) MinSize() float64 { return m.minSize }

func (m *StoredAxisMeasure) Len() int { return len(m.visSizes) }

func (m *StoredAxisMeasure) SetAxisLength(n int) {
	n = max(n, 0)
	if !m.remap.IsIdentity() {
		m.ApplyRemap(IdentityRemap(n))
		return
	}
	m.resizeLogSizes(n)
	m.remap = IdentityRemap(n)
	oldLen := len(m.visSizes)
	m.visSizes = append(m.visSizes[:0], m.logSizes...)
	m.resizeOffsets(n)
	// offsets up to the shorter length stay valid
	m.validOffsets = min(m.validOffsets, min(oldLen, n)+1)
}

func (m *StoredAxisMeasure) ApplyRemap(remap *Remap) {
	m.resizeLogSizes(remap.SourceLen())
	m.remap = remap
	m.visSizes = m.visSizes[:0]
	for _, log := range remap.All() {
		m.visSizes = append(m.visSizes, m.logSizes[log])
	}
	m.resizeOffsets(len(m.visSizes))
	m.validOffsets = 1
}

func (m *StoredAxisMeasure) resizeLogSizes(n int) {
	if n <= len(m.logSizes) {
		m.logSizes = m.logSizes[:n]
		return
	}
	for len(m.logSizes) < n {
		m.logSizes = append(m.logSizes, m.defaultSize)
	}
}

func (m *StoredAxisMeasure) resizeOffsets(n int) {
	if cap(m.offsets) >= n+1 {
		m.offsets = m.offsets[:n+1]
	} else {
		offsets := make([]float64, n+1)
		copy(offsets, m.offsets)
		m.offsets = offsets
	}
	m.offsets[0] = 0
}

// ensureOffsets makes offsets[:upto+1] valid.
func (m *StoredAxisMeasure) ensureOffsets(upto int) {
	for i := m.validOffsets; i <= upto; i++ {
		m.offsets[i] = m.offsets[i-1] + m.visSizes[i-1]
	}
	m.validOffsets = max(m.validOffsets, upto+1)
}

// invalidateAfter marks all offsets depending on the size of vis as stale.
func (m *StoredAxisMeasure) invalidateAfter(vis VisIdx) {
	m.validOffsets = min(m.validOffsets, int(vis)+1)
}

func (m *StoredAxisMeasure) PixelOffset(vis VisIdx) float64 {
	if vis <= 0 {
		return 0
	}
	i := min(int(vis), len(m.visSizes))
	m.ensureOffsets(i)
	return m.offsets[i]
}

func (m *StoredAxisMeasure) PixelLength(vis VisIdx) float64 {
	if vis < 0 || int(vis) >= len(m.visSizes) {
		return 0
	}
	return m.visSizes[vis]
}

func (m *StoredAxisMeasure) FarPixel(vis VisIdx) float64 {
	return m.PixelOffset(vis) + m.PixelLength(vis)
}

func (m *StoredAxisMeasure) TotalPixelLength() float64 {
	return m.PixelOffset(VisIdx(len(m.visSizes)))
}

func (m *StoredAxisMeasure) VisAtPixel(px float64) (VisIdx, bool) {
	n := len(m.visSizes)
	if !(px >= 0 && px < m.TotalPixelLength()) {
		return 0, false
	}
	// first index whose far edge is beyond px,
	// which skips zero sized indices at the same offset
	i := sort.Search(n, func(i int) bool { return m.offsets[i+1] > px })
	if i >= n {
		return 0, false
	}
	return VisIdx(i), true
}

func (m *StoredAxisMeasure) VisRange(p0, p1 float64) (first, last VisIdx, ok bool) {
	n := len(m.visSizes)
	p0 = max(p0, 0)
	p1 = min(p1, m.TotalPixelLength())
	if !(p0 < p1) {
		return 0, 0, false
	}
	first, ok = m.VisAtPixel(p0)
	if !ok {
		return 0, 0, false
	}
	// last index starting before p1
	end := sort.Search(n, func(i int) bool { return m.offsets[i] >= p1 })
	return first, VisIdx(max(end-1, int(first))), true
}

func (m *StoredAxisMeasure) CanResize(vis VisIdx) bool {
	return vis >= 0 && int(vis) < len(m.visSizes)
}

func (m *StoredAxisMeasure) SetSize(vis VisIdx, size float64) error {
	if err := checkVisRange(vis, len(m.visSizes)); err != nil {
		return err
	}
	if err := checkSize(size); err != nil {
		return err
	}
	m.visSizes[vis] = size
	if log, ok := m.remap.LogIdx(vis); ok {
		m.logSizes[log] = size
	}
	m.invalidateAfter(vis)
	return nil
}

func (m *StoredAxisMeasure) SetFarPixel(vis VisIdx, px float64) (float64, error) {
	if err := checkVisRange(vis, len(m.visSizes)); err != nil {
		return 0, err
	}
	size := max(px-m.PixelOffset(vis), m.minSize)
	return size, m.SetSize(vis, size)
}

// LogSize returns the size stored for a logical index,
// including hidden ones, or false if log is out of range.
func (m *StoredAxisMeasure) LogSize(log LogIdx) (float64, bool) {
	if log < 0 || int(log) >= len(m.logSizes) {
		return 0, false
	}
	return m.logSizes[log], true
}

// SetLogSize sets the size of a logical index.
// The index does not have to be visible.
func (m *StoredAxisMeasure) SetLogSize(log LogIdx, size float64) error {
	if log < 0 || int(log) >= len(m.logSizes) {
		return fmt.Errorf("%w: logical index %d not in [0..%d)", ErrIndexOutOfRange, log, len(m.logSizes))
	}
	if err := checkSize(size); err != nil {
		return err
	}
	m.logSizes[log] = size
	if vis, ok := m.remap.VisIdx(log); ok {
		m.visSizes[vis] = size
		m.invalidateAfter(vis)
	}
	return nil
}

func (m *StoredAxisMeasure) String() string {
	return fmt.Sprintf("StoredAxisMeasure{%d of %d, total %g}", len(m.visSizes), len(m.logSizes), m.TotalPixelLength())
}
