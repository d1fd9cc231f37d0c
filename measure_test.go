package regrid

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestFixedAxisMeasure(t *testing.T) {
	m := NewFixedAxisMeasure(20)
	assert.Equal(t, 0.0, m.PixelOffset(0), "empty axis")
	assert.Equal(t, 0.0, m.TotalPixelLength())
	_, ok := m.VisAtPixel(0)
	assert.False(t, ok, "empty axis has no index at 0")

	m.SetAxisLength(5)
	assert.Equal(t, 5, m.Len())
	assert.Equal(t, 60.0, m.PixelOffset(3))
	assert.Equal(t, 100.0, m.PixelOffset(7), "clamped to total")
	assert.Equal(t, 20.0, m.PixelLength(4))
	assert.Equal(t, 0.0, m.PixelLength(5))
	assert.Equal(t, 80.0, m.FarPixel(3))
	assert.Equal(t, 100.0, m.TotalPixelLength())

	vis, ok := m.VisAtPixel(65)
	require.True(t, ok)
	assert.Equal(t, VisIdx(3), vis)

	vis, ok = m.VisAtPixel(99.9)
	require.True(t, ok)
	assert.Equal(t, VisIdx(4), vis)

	for _, px := range []float64{-0.1, 100, 1000, math.NaN()} {
		_, ok = m.VisAtPixel(px)
		assert.False(t, ok, "pixel %g", px)
	}

	first, last, ok := m.VisRange(10, 50)
	require.True(t, ok)
	assert.Equal(t, VisIdx(0), first)
	assert.Equal(t, VisIdx(2), last)

	first, last, ok = m.VisRange(-30, 500)
	require.True(t, ok)
	assert.Equal(t, VisIdx(0), first)
	assert.Equal(t, VisIdx(4), last)

	first, last, ok = m.VisRange(20, 60)
	require.True(t, ok)
	assert.Equal(t, VisIdx(1), first)
	assert.Equal(t, VisIdx(2), last, "index 3 starts at the end of the range")

	_, _, ok = m.VisRange(100, 200)
	assert.False(t, ok)

	assert.False(t, m.CanResize(0))
	require.ErrorIs(t, m.SetSize(0, 30), ErrUnsupported)
	_, err := m.SetFarPixel(0, 30)
	require.ErrorIs(t, err, ErrUnsupported)

	m.ApplyRemap(MustBuildRemap(RemapSpec{Retain: []LogIdx{4, 1}}, LenRemapper(5)))
	assert.Equal(t, 2, m.Len())
	assert.Equal(t, 40.0, m.TotalPixelLength())

	require.Panics(t, func() { NewFixedAxisMeasure(-1) })
}

func TestStoredAxisMeasure(t *testing.T) {
	m := NewStoredAxisMeasure(10, 5)
	assert.Equal(t, 0.0, m.PixelOffset(0))
	assert.Equal(t, 0.0, m.TotalPixelLength())

	m.SetAxisLength(4)
	assert.Equal(t, 4, m.Len())
	assert.Equal(t, 40.0, m.TotalPixelLength())

	require.True(t, m.CanResize(1))
	require.NoError(t, m.SetSize(1, 30))
	assert.Equal(t, 0.0, m.PixelOffset(0))
	assert.Equal(t, 10.0, m.PixelOffset(1))
	assert.Equal(t, 40.0, m.PixelOffset(2))
	assert.Equal(t, 50.0, m.PixelOffset(3))
	assert.Equal(t, 60.0, m.PixelOffset(4))
	assert.Equal(t, 60.0, m.TotalPixelLength())

	vis, ok := m.VisAtPixel(39.5)
	require.True(t, ok)
	assert.Equal(t, VisIdx(1), vis)
	vis, ok = m.VisAtPixel(40)
	require.True(t, ok)
	assert.Equal(t, VisIdx(2), vis)
	_, ok = m.VisAtPixel(60)
	assert.False(t, ok)

	first, last, ok := m.VisRange(15, 45)
	require.True(t, ok)
	assert.Equal(t, VisIdx(1), first)
	assert.Equal(t, VisIdx(2), last)

	require.ErrorIs(t, m.SetSize(4, 10), ErrIndexOutOfRange)
	require.ErrorIs(t, m.SetSize(-1, 10), ErrIndexOutOfRange)
	require.ErrorIs(t, m.SetSize(0, -1), ErrInvalidSize)
	require.ErrorIs(t, m.SetSize(0, math.NaN()), ErrInvalidSize)

	size, err := m.SetFarPixel(2, 42)
	require.NoError(t, err)
	assert.Equal(t, 5.0, size, "clamped to min size")
	size, err = m.SetFarPixel(2, 62)
	require.NoError(t, err)
	assert.Equal(t, 22.0, size)
	assert.Equal(t, 72.0, m.TotalPixelLength())

	m.SetAxisLength(2)
	assert.Equal(t, 40.0, m.TotalPixelLength())
	m.SetAxisLength(3)
	assert.Equal(t, 50.0, m.TotalPixelLength(), "new index gets default size")
}

func TestStoredAxisMeasure_ZeroSizes(t *testing.T) {
	m := NewStoredAxisMeasure(10, 0)
	m.SetAxisLength(3)
	require.NoError(t, m.SetSize(1, 0))

	vis, ok := m.VisAtPixel(10)
	require.True(t, ok)
	assert.Equal(t, VisIdx(2), vis, "zero sized index is skipped")
	assert.Equal(t, m.PixelOffset(1), m.PixelOffset(2))
}

func TestStoredAxisMeasure_ApplyRemap(t *testing.T) {
	m := NewStoredAxisMeasure(10, 1)
	m.SetAxisLength(3)
	require.NoError(t, m.SetSize(0, 25))

	m.ApplyRemap(MustBuildRemap(RemapSpec{Retain: []LogIdx{2, 0}}, LenRemapper(3)))
	assert.Equal(t, 2, m.Len())
	assert.Equal(t, 10.0, m.PixelLength(0))
	assert.Equal(t, 25.0, m.PixelLength(1), "size follows logical index 0")
	assert.Equal(t, 35.0, m.TotalPixelLength())

	// resizing a hidden logical index only changes the stored size
	require.NoError(t, m.SetLogSize(1, 7))
	assert.Equal(t, 35.0, m.TotalPixelLength())

	// resizing visual index 0 changes logical index 2
	require.NoError(t, m.SetSize(0, 12))
	size, ok := m.LogSize(2)
	require.True(t, ok)
	assert.Equal(t, 12.0, size)

	m.ApplyRemap(IdentityRemap(3))
	assert.Equal(t, []float64{25, 7, 12}, []float64{m.PixelLength(0), m.PixelLength(1), m.PixelLength(2)})
	assert.Equal(t, 44.0, m.TotalPixelLength())

	m.SetAxisLength(4)
	assert.Equal(t, 54.0, m.TotalPixelLength())

	require.ErrorIs(t, m.SetLogSize(4, 1), ErrIndexOutOfRange)
	_, ok = m.LogSize(4)
	assert.False(t, ok)
}

func TestProperty_AxisMeasureOffsets(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		genSize := rapid.OneOf(rapid.Just(0.0), rapid.Float64Range(0.01, 50))
		sizes := rapid.SliceOfN(genSize, 0, 60).Draw(t, "sizes")
		m := NewStoredAxisMeasure(10, 0)
		m.SetAxisLength(len(sizes))
		for vis, size := range sizes {
			require.NoError(t, m.SetSize(VisIdx(vis), size))
		}

		// interleave some resizes with queries
		numResizes := rapid.IntRange(0, 10).Draw(t, "numResizes")
		for i := 0; i < numResizes && len(sizes) > 0; i++ {
			vis := rapid.IntRange(0, len(sizes)-1).Draw(t, "vis")
			size := genSize.Draw(t, "size")
			sizes[vis] = size
			require.NoError(t, m.SetSize(VisIdx(vis), size))
			_ = m.PixelOffset(VisIdx(rapid.IntRange(0, len(sizes)).Draw(t, "query")))
		}

		sum := 0.0
		for vis, size := range sizes {
			require.Equal(t, sum, m.PixelOffset(VisIdx(vis)))
			if size > 0 {
				requireVisAtOwnPixels(t, m, VisIdx(vis))
			}
			sum += size
		}
		require.Equal(t, sum, m.PixelOffset(VisIdx(len(sizes))))
		require.Equal(t, sum, m.TotalPixelLength())
	})
}

func TestProperty_FixedAxisMeasure(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		size := rapid.Float64Range(0.01, 50).Draw(t, "size")
		n := rapid.IntRange(0, 500).Draw(t, "n")
		m := NewFixedAxisMeasure(size)
		m.SetAxisLength(n)

		require.Equal(t, float64(n)*size, m.PixelOffset(VisIdx(n)))
		for vis := range VisIdx(n) {
			require.LessOrEqual(t, m.PixelOffset(vis), m.PixelOffset(vis+1))
			requireVisAtOwnPixels(t, m, vis)
		}
	})
}

func TestFixedAxisMeasure_FractionalSize(t *testing.T) {
	for _, size := range []float64{0.1, 0.3, 0.7, 1.1, 2.3, 3.3, 7.7, 0.01, 12.34} {
		m := NewFixedAxisMeasure(size)
		m.SetAxisLength(10000)
		for vis := range VisIdx(10000) {
			got, ok := m.VisAtPixel(m.PixelOffset(vis))
			require.True(t, ok)
			require.Equal(t, vis, got, "size %g offset %g", size, m.PixelOffset(vis))
		}
	}
}

// requireVisAtOwnPixels checks that the first pixel of a non empty index
// maps back to it and that the span of the index covers only itself.
func requireVisAtOwnPixels(t require.TestingT, m AxisMeasure, vis VisIdx) {
	got, ok := m.VisAtPixel(m.PixelOffset(vis))
	require.True(t, ok)
	require.Equal(t, vis, got)

	first, last, ok := m.VisRange(m.PixelOffset(vis), m.PixelOffset(vis+1))
	require.True(t, ok)
	require.Equal(t, vis, first)
	require.Equal(t, vis, last)
}
