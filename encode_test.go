package algocomplex

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONRoundTrip(t *testing.T) {
	t.Parallel()

	values := []Complex[float64]{
		Zero[float64](),
		New(1.5, -2.5),
		New(-1e300, 1e-300),
	}

	data, err := json.Marshal(values)
	require.NoError(t, err)

	var decoded []Complex[float64]
	require.NoError(t, json.Unmarshal(data, &decoded))

	opt := cmp.Comparer(func(a, b Complex[float64]) bool { return a.Equal(b) })
	if diff := cmp.Diff(values, decoded, opt); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestJSONFormat(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(New(1.5, -2.5))
	require.NoError(t, err)
	assert.JSONEq(t, "[1.5, -2.5]", string(data))

	var z Complex[float32]
	require.NoError(t, json.Unmarshal([]byte("[0.5, 2]"), &z))
	assert.True(t, z.Equal(New[float32](0.5, 2)))
}

func TestJSONErrors(t *testing.T) {
	t.Parallel()

	var z Complex[float64]
	err := z.UnmarshalJSON([]byte("[1.5]"))
	require.ErrorIs(t, err, ErrInvalidLength)

	err = z.UnmarshalJSON([]byte("[1, 2, 3]"))
	require.ErrorIs(t, err, ErrInvalidLength)

	err = z.UnmarshalJSON([]byte(`{"re": 1}`))
	require.Error(t, err)

	// Non-finite components are the float codec's problem, and it refuses.
	_, err = json.Marshal(Infinity[float64]())
	require.Error(t, err)
}

func TestBinaryRoundTrip(t *testing.T) {
	t.Parallel()

	values := []Complex[float64]{
		Zero[float64](),
		New(1.5, -2.5),
		New(math.Inf(1), 3.0), // raw storage survives, unlike Real/Imag
		New(math.Copysign(0, -1), 1e-310),
	}

	for _, z := range values {
		data, err := z.MarshalBinary()
		require.NoError(t, err)
		assert.Len(t, data, 16)

		var decoded Complex[float64]
		require.NoError(t, decoded.UnmarshalBinary(data))

		gx, gy := decoded.RawComponents()
		wx, wy := z.RawComponents()
		assert.Equal(t, math.Float64bits(wx), math.Float64bits(gx), "raw x of %v", z)
		assert.Equal(t, math.Float64bits(wy), math.Float64bits(gy), "raw y of %v", z)
	}
}

func TestBinaryFloat32Width(t *testing.T) {
	t.Parallel()

	z := New[float32](1.5, -2.5)
	data, err := z.MarshalBinary()
	require.NoError(t, err)
	assert.Len(t, data, 8)

	var decoded Complex[float32]
	require.NoError(t, decoded.UnmarshalBinary(data))
	assert.True(t, decoded.Equal(z))

	require.ErrorIs(t, decoded.UnmarshalBinary(data[:7]), ErrInvalidLength)
}

func TestParse(t *testing.T) {
	t.Parallel()

	z, err := Parse[float64]("(1.5, -2.5)")
	require.NoError(t, err)
	assert.True(t, z.Equal(New(1.5, -2.5)))

	z, err = Parse[float64]("3.25")
	require.NoError(t, err)
	assert.True(t, z.Equal(New(3.25, 0.0)))

	z, err = Parse[float64]("inf")
	require.NoError(t, err)
	assert.True(t, z.Equal(Infinity[float64]()))

	// Parse accepts everything String produces.
	for _, w := range []Complex[float64]{New(-0.125, 1e20), Zero[float64](), Infinity[float64]()} {
		got, err := Parse[float64](w.String())
		require.NoError(t, err)
		assert.True(t, got.Equal(w), "round trip of %q", w.String())
	}
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"", "(1, 2", "(1; 2)", "abc", "(1, 2, 3)"} {
		_, err := Parse[float64](s)
		assert.ErrorIs(t, err, ErrSyntax, "input %q", s)
	}

	_, err := Parse[float64]("1e999")
	assert.ErrorIs(t, err, ErrRange)

	_, err = Parse[float32]("(1e, 0)")
	assert.ErrorIs(t, err, ErrSyntax)
	_, err = Parse[float32]("(1e39, 0)")
	assert.ErrorIs(t, err, ErrRange)
}
