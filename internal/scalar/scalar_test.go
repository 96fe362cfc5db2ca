package scalar

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassification(t *testing.T) {
	t.Parallel()

	assert.True(t, IsNaN(math.NaN()))
	assert.False(t, IsNaN(1.0))

	assert.True(t, IsInf(math.Inf(1)))
	assert.True(t, IsInf(math.Inf(-1)))
	assert.False(t, IsInf(math.MaxFloat64))

	assert.True(t, IsFinite(0.0))
	assert.False(t, IsFinite(math.NaN()))
	assert.False(t, IsFinite(math.Inf(1)))
}

func TestIsNormalBoundaries(t *testing.T) {
	t.Parallel()

	assert.True(t, IsNormal(1.0))
	assert.True(t, IsNormal(SmallestNormal[float64]()))
	assert.True(t, IsNormal(-SmallestNormal[float64]()))
	assert.False(t, IsNormal(SmallestNormal[float64]()/2))
	assert.False(t, IsNormal(0.0))
	assert.False(t, IsNormal(math.Inf(1)))
	assert.False(t, IsNormal(math.NaN()))

	assert.True(t, IsNormal(SmallestNormal[float32]()))
	assert.False(t, IsNormal(SmallestNormal[float32]()/2))
}

func TestConstants(t *testing.T) {
	t.Parallel()

	assert.Equal(t, float32(math.MaxFloat32), MaxFinite[float32]())
	assert.Equal(t, math.MaxFloat64, MaxFinite[float64]())

	// ulpOfOne is the gap to the next value after 1.
	assert.Equal(t, math.Nextafter(1, 2)-1, UlpOfOne[float64]())
	assert.Equal(t, float64(UlpOfOne[float32]()), float64(math.Nextafter32(1, 2)-1))

	assert.True(t, math.IsInf(float64(Inf[float32]()), 1))
	assert.True(t, IsNaN(NaN[float64]()))
}

func TestFMA(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 10.0, FMA(2.0, 3.0, 4.0))

	// A case where separate rounding loses the low bits.
	x := 1.0 + 0x1p-30
	got := FMA(x, x, -1)
	want := 0x1p-29 + 0x1p-60
	assert.Equal(t, want, got)
}

func TestBitsRoundTrip(t *testing.T) {
	t.Parallel()

	for _, v := range []float64{0, 1.5, -2.25, math.Inf(1), 1e-310} {
		b := AppendBits(nil, v)
		assert.Len(t, b, 8)
		assert.Equal(t, math.Float64bits(v), math.Float64bits(FromBits[float64](b)))
	}

	for _, v := range []float32{0, 1.5, -2.25, float32(math.Inf(-1))} {
		b := AppendBits(nil, v)
		assert.Len(t, b, 4)
		assert.Equal(t, v, FromBits[float32](b))
	}

	assert.Equal(t, 4, ByteLen[float32]())
	assert.Equal(t, 8, ByteLen[float64]())
}

func TestCopysignAbs(t *testing.T) {
	t.Parallel()

	assert.Equal(t, -3.0, Copysign(3.0, -0.5))
	assert.Equal(t, 3.0, Copysign(-3.0, 2.0))
	assert.True(t, math.Signbit(float64(Copysign(float32(0), float32(-1)))))

	assert.Equal(t, 2.5, Abs(-2.5))
	assert.Equal(t, 2.5, Abs(2.5))
}
