package algocomplex

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLengthBasic(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 5.0, New(3.0, 4.0).Length())
	assert.Equal(t, 5.0, New(-3.0, -4.0).Length())
	assert.Equal(t, 0.0, Zero[float64]().Length())
	assert.True(t, math.IsInf(Infinity[float64]().Length(), 1))
	assert.True(t, math.IsInf(New(math.NaN(), 1.0).Length(), 1))
}

func TestLengthAvoidsOverflow(t *testing.T) {
	t.Parallel()

	// x*x + y*y overflows, but the length itself is representable.
	l := New(3e200, 4e200).Length()
	assert.InEpsilon(t, 5e200, l, 1e-14)

	l32 := New[float32](3e20, 4e20).Length()
	assert.InEpsilon(t, float32(5e20), l32, 1e-6)

	// Underflowing squares are just as safe.
	l = New(3e-200, 4e-200).Length()
	assert.InEpsilon(t, 5e-200, l, 1e-14)
}

func TestPhase(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0.0, New(2.0, 0.0).Phase())
	assert.InDelta(t, math.Pi/2, New(0.0, 3.0).Phase(), 1e-15)
	assert.InDelta(t, math.Pi, New(-2.0, 0.0).Phase(), 1e-15)
	assert.InDelta(t, -3*math.Pi/4, New(-1.0, -1.0).Phase(), 1e-15)

	// Undefined at the two points with no angle.
	assert.True(t, math.IsNaN(Zero[float64]().Phase()))
	assert.True(t, math.IsNaN(Infinity[float64]().Phase()))
	assert.True(t, math.IsNaN(New(math.NaN(), 2.0).Phase()))
}

func TestPolarRoundTrip(t *testing.T) {
	t.Parallel()

	values := []Complex[float64]{
		New(1.0, 1.0),
		New(-3.0, 4.0),
		New(0.001, -1000.0),
		New(-2.5, -1e-9),
		New(1e-310, 1e-310), // subnormal components
	}

	for _, z := range values {
		length, phase := z.Polar()
		assertTol(t, FromPolar(length, phase), z, 1e-12, "round trip of %v", z)
	}
}

func TestFromPolar(t *testing.T) {
	t.Parallel()

	// Negative length reflects through the origin.
	z := FromPolar(-2.0, 0.0)
	assert.True(t, z.Equal(New(-2.0, 0.0)))

	// Non-finite phase is allowed exactly at the two phaseless points.
	assert.True(t, FromPolar(0.0, math.NaN()).Equal(Zero[float64]()))
	assert.True(t, FromPolar(math.Inf(1), math.Inf(1)).Equal(Infinity[float64]()))

	require.Panics(t, func() {
		FromPolar(1.0, math.NaN())
	})
	require.Panics(t, func() {
		FromPolar(-2.5, math.Inf(1))
	})
}

func TestLengthSquaredDocumentedHazard(t *testing.T) {
	t.Parallel()

	// LengthSquared is the scale-sensitive primitive: it overflows where
	// Length does not.
	z := New(1e200, 1e200)
	assert.True(t, math.IsInf(z.LengthSquared(), 1))
	assert.False(t, math.IsInf(z.Length(), 1))
}
