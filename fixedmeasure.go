package regrid

import "fmt"

var _ AxisMeasure = new(FixedAxisMeasure)

// FixedAxisMeasure is an AxisMeasure where every index has the same size.
// All offsets and lookups are computed arithmetically in O(1)
// and individual indices can't be resized.
type FixedAxisMeasure struct {
	size   float64
	length int
}

// NewFixedAxisMeasure returns a FixedAxisMeasure with uniform size
// and zero length. It panics for a negative or NaN size.
func NewFixedAxisMeasure(size float64) *FixedAxisMeasure {
	if err := checkSize(size); err != nil {
		panic(err)
	}
	return &FixedAxisMeasure{size: size}
}

// Size returns the uniform size of all indices.
func (m *FixedAxisMeasure) Size() float64 { return m.size }

func (m *FixedAxisMeasure) Len() int { return m.length }

func (m *FixedAxisMeasure) SetAxisLength(n int) {
	m.length = max(n, 0)
}

func (m *FixedAxisMeasure) ApplyRemap(remap *Remap) {
	m.SetAxisLength(remap.NumVisible())
}

func (m *FixedAxisMeasure) PixelOffset(vis VisIdx) float64 {
	if vis <= 0 {
		return 0
	}
	return float64(min(int(vis), m.length)) * m.size
}

func (m *FixedAxisMeasure) PixelLength(vis VisIdx) float64 {
	if vis < 0 || int(vis) >= m.length {
		return 0
	}
	return m.size
}

func (m *FixedAxisMeasure) FarPixel(vis VisIdx) float64 {
	return m.PixelOffset(vis) + m.PixelLength(vis)
}

func (m *FixedAxisMeasure) TotalPixelLength() float64 {
	return float64(m.length) * m.size
}

func (m *FixedAxisMeasure) VisAtPixel(px float64) (VisIdx, bool) {
	if !(px >= 0 && px < m.TotalPixelLength()) {
		return 0, false
	}
	return VisIdx(m.floorIndex(px)), true
}

// floorIndex returns the last index in [0, length) whose
// PixelOffset is not after px.
// The quotient px/size is corrected against PixelOffset
// because it can round to either neighbor for fractional sizes.
func (m *FixedAxisMeasure) floorIndex(px float64) int {
	vis := int(px / m.size)
	if float64(vis+1)*m.size <= px {
		vis++
	}
	if vis > 0 && float64(vis)*m.size > px {
		vis--
	}
	return min(max(vis, 0), m.length-1)
}

func (m *FixedAxisMeasure) VisRange(p0, p1 float64) (first, last VisIdx, ok bool) {
	p0 = max(p0, 0)
	p1 = min(p1, m.TotalPixelLength())
	if !(p0 < p1) {
		return 0, 0, false
	}
	first = VisIdx(m.floorIndex(p0))
	// last index starting before p1
	end := m.floorIndex(p1)
	if end > int(first) && m.PixelOffset(VisIdx(end)) >= p1 {
		end--
	}
	return first, VisIdx(end), true
}

func (m *FixedAxisMeasure) CanResize(VisIdx) bool { return false }

func (m *FixedAxisMeasure) SetSize(vis VisIdx, size float64) error {
	return fmt.Errorf("%w: can't resize index %d of a fixed size axis", ErrUnsupported, vis)
}

func (m *FixedAxisMeasure) SetFarPixel(vis VisIdx, px float64) (float64, error) {
	return m.size, fmt.Errorf("%w: can't resize index %d of a fixed size axis", ErrUnsupported, vis)
}

func (m *FixedAxisMeasure) String() string {
	return fmt.Sprintf("FixedAxisMeasure{%d x %g}", m.length, m.size)
}
